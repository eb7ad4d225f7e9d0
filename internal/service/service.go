package service

import (
	"context"

	"foodhub/internal/model"
)

// DishService defines operations for dish management.
type DishService interface {
	// List retrieves all dishes, newest first.
	List(ctx context.Context) ([]model.Dish, error)

	// Filter retrieves dishes matching the raw query parameters.
	Filter(ctx context.Context, query model.DishFilterQuery) ([]model.Dish, error)

	// GetByID retrieves a single dish by ID.
	GetByID(ctx context.Context, id int64) (*model.Dish, error)

	// Create validates the request and stores a new dish.
	Create(ctx context.Context, req *model.CreateDishRequest) (*model.Dish, error)

	// Update applies the supplied fields to an existing dish.
	Update(ctx context.Context, id int64, req *model.UpdateDishRequest) (*model.Dish, error)

	// Delete removes a dish.
	Delete(ctx context.Context, id int64) error

	// Count returns the number of stored dishes.
	Count(ctx context.Context) (int, error)
}

// CategoryService defines operations for category management.
type CategoryService interface {
	// List retrieves all categories, oldest first.
	List(ctx context.Context) ([]model.Category, error)

	// GetByID retrieves a single category by ID.
	GetByID(ctx context.Context, id int64) (*model.Category, error)

	// Create validates the request and stores a new category.
	Create(ctx context.Context, req *model.CreateCategoryRequest) (*model.Category, error)

	// Update applies the supplied fields to an existing category.
	Update(ctx context.Context, id int64, req *model.UpdateCategoryRequest) (*model.Category, error)

	// Delete removes a category.
	Delete(ctx context.Context, id int64) error
}
