package catalog

import (
	"context"
	"fmt"

	"foodhub/internal/repository"
	"foodhub/internal/service"

	"github.com/rs/zerolog"
)

// Result summarises a seeding run.
type Result struct {
	CategoriesCreated int
	CategoriesSkipped int
	DishesCreated     int
	Skipped           bool
}

// Seeder writes a catalog through the service layer so seeded rows are
// validated and announced like API writes.
type Seeder struct {
	dishes     service.DishService
	categories service.CategoryService
	logger     zerolog.Logger
}

// NewSeeder creates a new catalog seeder.
func NewSeeder(dishes service.DishService, categories service.CategoryService, logger zerolog.Logger) *Seeder {
	return &Seeder{
		dishes:     dishes,
		categories: categories,
		logger:     logger.With().Str("component", "seeder").Logger(),
	}
}

// Seed inserts the catalog's categories, then its dishes. When dishes already
// exist the run is skipped unless force is set. Categories whose title is
// already taken are skipped.
func (s *Seeder) Seed(ctx context.Context, cat *Catalog, force bool) (Result, error) {
	var result Result

	if !force {
		count, err := s.dishes.Count(ctx)
		if err != nil {
			return result, fmt.Errorf("failed to count existing dishes: %w", err)
		}
		if count > 0 {
			s.logger.Info().Int("existing_dishes", count).Msg("dishes already present, skipping seed")
			result.Skipped = true
			return result, nil
		}
	}

	for i := range cat.Categories {
		req := &cat.Categories[i]

		if _, err := s.categories.Create(ctx, req); err != nil {
			if repository.IsUniqueViolation(err) {
				s.logger.Debug().Str("title", req.Title).Msg("category already exists")
				result.CategoriesSkipped++
				continue
			}
			return result, fmt.Errorf("failed to seed category %q: %w", req.Title, err)
		}
		result.CategoriesCreated++
	}

	for i := range cat.Dishes {
		req := &cat.Dishes[i]

		if _, err := s.dishes.Create(ctx, req); err != nil {
			return result, fmt.Errorf("failed to seed dish %q: %w", req.Title, err)
		}
		result.DishesCreated++
	}

	s.logger.Info().
		Int("categories_created", result.CategoriesCreated).
		Int("categories_skipped", result.CategoriesSkipped).
		Int("dishes_created", result.DishesCreated).
		Msg("catalog seeded")

	return result, nil
}
