package service

import (
	"context"
	"strings"

	"foodhub/internal/events"
	"foodhub/internal/model"
	"foodhub/internal/repository"

	"github.com/rs/zerolog"
)

const missingDishFields = "Please provide all required fields: title, description, price, image_url"

// dishService implements DishService.
type dishService struct {
	dishRepo  repository.DishRepository
	publisher events.Publisher
	logger    zerolog.Logger
}

// NewDishService creates a new dish service.
func NewDishService(dishRepo repository.DishRepository, publisher events.Publisher, logger zerolog.Logger) DishService {
	return &dishService{
		dishRepo:  dishRepo,
		publisher: publisher,
		logger:    logger.With().Str("service", "dish").Logger(),
	}
}

// List retrieves all dishes, newest first.
func (s *dishService) List(ctx context.Context) ([]model.Dish, error) {
	dishes, err := s.dishRepo.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list dishes")
		return nil, model.NewStorageError("Error fetching dishes", err)
	}

	s.logger.Debug().Int("count", len(dishes)).Msg("retrieved dishes")

	return dishes, nil
}

// Filter parses the query parameters and retrieves the matching dishes.
func (s *dishService) Filter(ctx context.Context, query model.DishFilterQuery) ([]model.Dish, error) {
	filter, err := parseDishFilter(query)
	if err != nil {
		s.logger.Debug().Err(err).Msg("invalid dish filter")
		return nil, err
	}

	dishes, err := s.dishRepo.ListFiltered(ctx, filter)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to filter dishes")
		return nil, model.NewStorageError("Error fetching dishes", err)
	}

	s.logger.Debug().
		Int("count", len(dishes)).
		Str("sort_by", string(filter.SortBy)).
		Msg("retrieved filtered dishes")

	return dishes, nil
}

func parseDishFilter(query model.DishFilterQuery) (model.DishFilter, error) {
	var (
		filter model.DishFilter
		err    error
	)

	if filter.MinPrice, err = queryFloat("minPrice", query.MinPrice); err != nil {
		return filter, err
	}
	if filter.MaxPrice, err = queryFloat("maxPrice", query.MaxPrice); err != nil {
		return filter, err
	}
	if filter.MinRating, err = queryFloat("minRating", query.MinRating); err != nil {
		return filter, err
	}
	filter.SortBy = model.ParseDishSort(strings.TrimSpace(query.SortBy))

	return filter, nil
}

// GetByID retrieves a single dish by ID.
func (s *dishService) GetByID(ctx context.Context, id int64) (*model.Dish, error) {
	dish, err := s.dishRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int64("dish_id", id).Msg("failed to get dish by ID")
		return nil, model.NewStorageError("Error fetching dish", err)
	}

	if dish == nil {
		return nil, model.ErrDishNotFound
	}

	return dish, nil
}

// Create validates the request and stores a new dish.
func (s *dishService) Create(ctx context.Context, req *model.CreateDishRequest) (*model.Dish, error) {
	in, err := validateCreateDish(req)
	if err != nil {
		s.logger.Debug().Err(err).Msg("invalid dish")
		return nil, err
	}

	dish, err := s.dishRepo.Create(ctx, in)
	if err != nil {
		s.logger.Error().Err(err).Str("title", in.Title).Msg("failed to create dish")
		return nil, model.NewStorageError("Error adding dish", err)
	}

	s.logger.Info().Int64("dish_id", dish.ID).Str("title", dish.Title).Msg("dish created")
	s.publish(ctx, events.DishCreated, dish.ID, dish)

	return dish, nil
}

func validateCreateDish(req *model.CreateDishRequest) (model.NewDish, error) {
	var in model.NewDish
	if req == nil {
		return in, model.NewValidationError(missingDishFields)
	}

	in.Title = strings.TrimSpace(req.Title)
	in.Description = strings.TrimSpace(req.Description)
	in.ImageURL = strings.TrimSpace(req.ImageURL)
	if in.Title == "" || in.Description == "" || in.ImageURL == "" || req.Price == nil || req.Price.IsEmpty() {
		return in, model.NewValidationError(missingDishFields)
	}

	price, err := optionalPrice(req.Price)
	if err != nil {
		return in, err
	}
	in.Price = *price

	stars, err := optionalStars(req.Stars)
	if err != nil {
		return in, err
	}
	if stars != nil {
		in.Stars = *stars
	}

	ratings, err := optionalInt("ratings", req.Ratings)
	if err != nil {
		return in, err
	}
	if ratings != nil {
		in.Ratings = *ratings
	}

	return in, nil
}

// Update applies the supplied fields to an existing dish. An empty patch
// returns the stored row unchanged.
func (s *dishService) Update(ctx context.Context, id int64, req *model.UpdateDishRequest) (*model.Dish, error) {
	patch, err := validateDishPatch(req)
	if err != nil {
		s.logger.Debug().Err(err).Int64("dish_id", id).Msg("invalid dish update")
		return nil, err
	}

	dish, err := s.dishRepo.Update(ctx, id, patch)
	if err != nil {
		s.logger.Error().Err(err).Int64("dish_id", id).Msg("failed to update dish")
		return nil, model.NewStorageError("Error updating dish", err)
	}

	if dish == nil {
		return nil, model.ErrDishNotFound
	}

	if patch.IsEmpty() {
		return dish, nil
	}

	s.logger.Info().Int64("dish_id", id).Msg("dish updated")
	s.publish(ctx, events.DishUpdated, dish.ID, dish)

	return dish, nil
}

func validateDishPatch(req *model.UpdateDishRequest) (model.DishPatch, error) {
	var (
		patch model.DishPatch
		err   error
	)
	if req == nil {
		return patch, nil
	}

	patch.Title = nonEmpty(req.Title)
	patch.Description = nonEmpty(req.Description)
	patch.ImageURL = nonEmpty(req.ImageURL)

	if patch.Price, err = optionalPrice(req.Price); err != nil {
		return patch, err
	}
	if patch.Stars, err = optionalStars(req.Stars); err != nil {
		return patch, err
	}
	if patch.Ratings, err = optionalInt("ratings", req.Ratings); err != nil {
		return patch, err
	}

	return patch, nil
}

// Delete removes a dish.
func (s *dishService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.dishRepo.Delete(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int64("dish_id", id).Msg("failed to delete dish")
		return model.NewStorageError("Error deleting dish", err)
	}

	if !deleted {
		return model.ErrDishNotFound
	}

	s.logger.Info().Int64("dish_id", id).Msg("dish deleted")
	s.publish(ctx, events.DishDeleted, id, nil)

	return nil
}

// Count returns the number of stored dishes.
func (s *dishService) Count(ctx context.Context) (int, error) {
	count, err := s.dishRepo.Count(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to count dishes")
		return 0, model.NewStorageError("Error counting dishes", err)
	}
	return count, nil
}

// publish emits a change event. The write has already succeeded, so failures are only logged.
func (s *dishService) publish(ctx context.Context, eventType string, id int64, data interface{}) {
	event := events.NewEvent(eventType, "dish", id, data)
	if err := s.publisher.Publish(context.WithoutCancel(ctx), event); err != nil {
		s.logger.Warn().Err(err).
			Str("event_type", eventType).
			Int64("dish_id", id).
			Msg("failed to publish dish event")
	}
}
