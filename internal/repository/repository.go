package repository

import (
	"context"

	"foodhub/internal/model"
)

// DishRepository defines the interface for dish data access operations.
// Every method runs exactly one statement.
type DishRepository interface {
	// List retrieves all dishes, newest first.
	List(ctx context.Context) ([]model.Dish, error)

	// ListFiltered retrieves dishes matching the filter in the requested order.
	ListFiltered(ctx context.Context, filter model.DishFilter) ([]model.Dish, error)

	// GetByID retrieves a single dish. Returns nil when no row matches.
	GetByID(ctx context.Context, id int64) (*model.Dish, error)

	// Create inserts a dish and returns the stored row.
	Create(ctx context.Context, dish model.NewDish) (*model.Dish, error)

	// Update applies a partial update and returns the stored row.
	// Returns nil when no row matches.
	Update(ctx context.Context, id int64, patch model.DishPatch) (*model.Dish, error)

	// Delete removes a dish and reports whether a row was deleted.
	Delete(ctx context.Context, id int64) (bool, error)

	// Count returns the number of stored dishes.
	Count(ctx context.Context) (int, error)
}

// CategoryRepository defines the interface for category data access operations.
// Every method runs exactly one statement.
type CategoryRepository interface {
	// List retrieves all categories, oldest first.
	List(ctx context.Context) ([]model.Category, error)

	// GetByID retrieves a single category. Returns nil when no row matches.
	GetByID(ctx context.Context, id int64) (*model.Category, error)

	// Create inserts a category and returns the stored row.
	Create(ctx context.Context, category model.NewCategory) (*model.Category, error)

	// Update applies a partial update and returns the stored row.
	// Returns nil when no row matches.
	Update(ctx context.Context, id int64, patch model.CategoryPatch) (*model.Category, error)

	// Delete removes a category and reports whether a row was deleted.
	Delete(ctx context.Context, id int64) (bool, error)
}
