package service

import (
	"context"
	"strings"

	"foodhub/internal/events"
	"foodhub/internal/model"
	"foodhub/internal/repository"

	"github.com/rs/zerolog"
)

// categoryService implements CategoryService.
type categoryService struct {
	categoryRepo repository.CategoryRepository
	publisher    events.Publisher
	logger       zerolog.Logger
}

// NewCategoryService creates a new category service.
func NewCategoryService(categoryRepo repository.CategoryRepository, publisher events.Publisher, logger zerolog.Logger) CategoryService {
	return &categoryService{
		categoryRepo: categoryRepo,
		publisher:    publisher,
		logger:       logger.With().Str("service", "category").Logger(),
	}
}

// List retrieves all categories, oldest first.
func (s *categoryService) List(ctx context.Context) ([]model.Category, error) {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list categories")
		return nil, model.NewStorageError("Error fetching categories", err)
	}

	return categories, nil
}

// GetByID retrieves a single category by ID.
func (s *categoryService) GetByID(ctx context.Context, id int64) (*model.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int64("category_id", id).Msg("failed to get category by ID")
		return nil, model.NewStorageError("Error fetching category", err)
	}

	if category == nil {
		return nil, model.ErrCategoryNotFound
	}

	return category, nil
}

// Create validates the request and stores a new category.
// A duplicate title surfaces as a storage error.
func (s *categoryService) Create(ctx context.Context, req *model.CreateCategoryRequest) (*model.Category, error) {
	if req == nil || strings.TrimSpace(req.Title) == "" {
		return nil, model.NewValidationError("Please provide title")
	}

	in := model.NewCategory{
		Title:   strings.TrimSpace(req.Title),
		IconURL: nonEmpty(req.IconURL),
	}

	category, err := s.categoryRepo.Create(ctx, in)
	if err != nil {
		s.logger.Error().Err(err).Str("title", in.Title).Msg("failed to create category")
		return nil, model.NewStorageError("Error adding category", err)
	}

	s.logger.Info().Int64("category_id", category.ID).Str("title", category.Title).Msg("category created")
	s.publish(ctx, events.CategoryCreated, category.ID, category)

	return category, nil
}

// Update applies the supplied fields to an existing category. An empty patch
// returns the stored row unchanged.
func (s *categoryService) Update(ctx context.Context, id int64, req *model.UpdateCategoryRequest) (*model.Category, error) {
	var patch model.CategoryPatch
	if req != nil {
		patch.Title = nonEmpty(req.Title)
		patch.IconURL = nonEmpty(req.IconURL)
	}

	category, err := s.categoryRepo.Update(ctx, id, patch)
	if err != nil {
		s.logger.Error().Err(err).Int64("category_id", id).Msg("failed to update category")
		return nil, model.NewStorageError("Error updating category", err)
	}

	if category == nil {
		return nil, model.ErrCategoryNotFound
	}

	if patch.IsEmpty() {
		return category, nil
	}

	s.logger.Info().Int64("category_id", id).Msg("category updated")
	s.publish(ctx, events.CategoryUpdated, category.ID, category)

	return category, nil
}

// Delete removes a category.
func (s *categoryService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.categoryRepo.Delete(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int64("category_id", id).Msg("failed to delete category")
		return model.NewStorageError("Error deleting category", err)
	}

	if !deleted {
		return model.ErrCategoryNotFound
	}

	s.logger.Info().Int64("category_id", id).Msg("category deleted")
	s.publish(ctx, events.CategoryDeleted, id, nil)

	return nil
}

func (s *categoryService) publish(ctx context.Context, eventType string, id int64, data interface{}) {
	event := events.NewEvent(eventType, "category", id, data)
	if err := s.publisher.Publish(context.WithoutCancel(ctx), event); err != nil {
		s.logger.Warn().Err(err).
			Str("event_type", eventType).
			Int64("category_id", id).
			Msg("failed to publish category event")
	}
}
