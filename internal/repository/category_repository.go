package repository

import (
	"context"
	"errors"
	"fmt"

	"foodhub/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

const categoryColumns = `id, title, icon_url, created_at`

// categoryRepository implements the CategoryRepository interface using PostgreSQL.
type categoryRepository struct {
	db     DB
	logger zerolog.Logger
}

// NewCategoryRepository creates a new PostgreSQL-backed category repository.
func NewCategoryRepository(db DB, logger zerolog.Logger) CategoryRepository {
	return &categoryRepository{
		db:     db,
		logger: logger.With().Str("repository", "category").Logger(),
	}
}

// List retrieves all categories, oldest first.
func (r *categoryRepository) List(ctx context.Context) ([]model.Category, error) {
	query := `
		SELECT ` + categoryColumns + `
		FROM categories
		ORDER BY created_at ASC, id ASC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query categories")
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	categories := []model.Category{}
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan category row")
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, *c)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating category rows")
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	return categories, nil
}

// GetByID retrieves a single category by its ID.
func (r *categoryRepository) GetByID(ctx context.Context, id int64) (*model.Category, error) {
	query := `
		SELECT ` + categoryColumns + `
		FROM categories
		WHERE id = $1
	`

	c, err := scanCategory(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Int64("category_id", id).Msg("category not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Int64("category_id", id).Msg("failed to query category")
		return nil, fmt.Errorf("failed to query category: %w", err)
	}

	return c, nil
}

// Create inserts a category and returns the stored row.
func (r *categoryRepository) Create(ctx context.Context, in model.NewCategory) (*model.Category, error) {
	query := `
		INSERT INTO categories (title, icon_url)
		VALUES ($1, $2)
		RETURNING ` + categoryColumns

	c, err := scanCategory(r.db.QueryRow(ctx, query, in.Title, in.IconURL))
	if err != nil {
		r.logger.Error().Err(err).Str("title", in.Title).Msg("failed to create category")
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	r.logger.Debug().Int64("category_id", c.ID).Msg("category created successfully")

	return c, nil
}

// Update applies a partial update. Nil patch fields keep the stored value.
func (r *categoryRepository) Update(ctx context.Context, id int64, patch model.CategoryPatch) (*model.Category, error) {
	query := `
		UPDATE categories
		SET title    = COALESCE($1, title),
		    icon_url = COALESCE($2, icon_url)
		WHERE id = $3
		RETURNING ` + categoryColumns

	c, err := scanCategory(r.db.QueryRow(ctx, query, patch.Title, patch.IconURL, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Int64("category_id", id).Msg("category to update not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Int64("category_id", id).Msg("failed to update category")
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	return c, nil
}

// Delete removes a category and reports whether a row was deleted.
func (r *categoryRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		r.logger.Error().Err(err).Int64("category_id", id).Msg("failed to delete category")
		return false, fmt.Errorf("failed to delete category: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

func scanCategory(row pgx.Row) (*model.Category, error) {
	var c model.Category
	if err := row.Scan(&c.ID, &c.Title, &c.IconURL, &c.CreatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}
