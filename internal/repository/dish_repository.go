package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"foodhub/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

const dishColumns = `id, title, description, stars, ratings, price, image_url, created_at, updated_at`

// dishOrderBy is the closed set of ORDER BY clauses a filter may select.
var dishOrderBy = map[model.DishSort]string{
	model.SortNewest:    "created_at DESC, id DESC",
	model.SortPriceLow:  "price ASC, id ASC",
	model.SortPriceHigh: "price DESC, id DESC",
	model.SortRating:    "stars DESC, id DESC",
}

// dishRepository implements the DishRepository interface using PostgreSQL.
type dishRepository struct {
	db     DB
	logger zerolog.Logger
}

// NewDishRepository creates a new PostgreSQL-backed dish repository.
func NewDishRepository(db DB, logger zerolog.Logger) DishRepository {
	return &dishRepository{
		db:     db,
		logger: logger.With().Str("repository", "dish").Logger(),
	}
}

// List retrieves all dishes, newest first.
func (r *dishRepository) List(ctx context.Context) ([]model.Dish, error) {
	query := `
		SELECT ` + dishColumns + `
		FROM dishes
		ORDER BY created_at DESC, id DESC
	`

	return r.queryDishes(ctx, query)
}

// ListFiltered retrieves dishes matching the filter in the requested order.
func (r *dishRepository) ListFiltered(ctx context.Context, filter model.DishFilter) ([]model.Dish, error) {
	query, args := buildDishFilterQuery(filter)

	return r.queryDishes(ctx, query, args...)
}

// buildDishFilterQuery renders the filter as a statement with positional
// placeholders. Filter values are only ever passed as bound arguments.
func buildDishFilterQuery(filter model.DishFilter) (string, []any) {
	var (
		conditions []string
		args       []any
	)

	addCondition := func(expr string, value float64) {
		args = append(args, value)
		conditions = append(conditions, expr+" $"+strconv.Itoa(len(args)))
	}

	if filter.MinPrice != nil {
		addCondition("price >=", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		addCondition("price <=", *filter.MaxPrice)
	}
	if filter.MinRating != nil {
		addCondition("stars >=", *filter.MinRating)
	}

	var sb strings.Builder
	sb.WriteString("SELECT ")
	sb.WriteString(dishColumns)
	sb.WriteString(" FROM dishes")
	if len(conditions) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(conditions, " AND "))
	}

	orderBy, ok := dishOrderBy[filter.SortBy]
	if !ok {
		orderBy = dishOrderBy[model.SortNewest]
	}
	sb.WriteString(" ORDER BY ")
	sb.WriteString(orderBy)

	return sb.String(), args
}

// GetByID retrieves a single dish by its ID.
func (r *dishRepository) GetByID(ctx context.Context, id int64) (*model.Dish, error) {
	query := `
		SELECT ` + dishColumns + `
		FROM dishes
		WHERE id = $1
	`

	dish, err := scanDish(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Int64("dish_id", id).Msg("dish not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Int64("dish_id", id).Msg("failed to query dish")
		return nil, fmt.Errorf("failed to query dish: %w", err)
	}

	return dish, nil
}

// Create inserts a dish and returns the stored row.
func (r *dishRepository) Create(ctx context.Context, in model.NewDish) (*model.Dish, error) {
	query := `
		INSERT INTO dishes (title, description, stars, ratings, price, image_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + dishColumns

	dish, err := scanDish(r.db.QueryRow(ctx, query,
		in.Title,
		in.Description,
		in.Stars,
		in.Ratings,
		in.Price,
		in.ImageURL,
	))
	if err != nil {
		r.logger.Error().Err(err).Str("title", in.Title).Msg("failed to create dish")
		return nil, fmt.Errorf("failed to create dish: %w", err)
	}

	r.logger.Debug().Int64("dish_id", dish.ID).Msg("dish created successfully")

	return dish, nil
}

// Update applies a partial update. Nil patch fields keep the stored value.
func (r *dishRepository) Update(ctx context.Context, id int64, patch model.DishPatch) (*model.Dish, error) {
	query := `
		UPDATE dishes
		SET title       = COALESCE($1, title),
		    description = COALESCE($2, description),
		    stars       = COALESCE($3, stars),
		    ratings     = COALESCE($4, ratings),
		    price       = COALESCE($5, price),
		    image_url   = COALESCE($6, image_url)
		WHERE id = $7
		RETURNING ` + dishColumns

	dish, err := scanDish(r.db.QueryRow(ctx, query,
		patch.Title,
		patch.Description,
		patch.Stars,
		patch.Ratings,
		patch.Price,
		patch.ImageURL,
		id,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Int64("dish_id", id).Msg("dish to update not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Int64("dish_id", id).Msg("failed to update dish")
		return nil, fmt.Errorf("failed to update dish: %w", err)
	}

	r.logger.Debug().Int64("dish_id", id).Msg("dish updated successfully")

	return dish, nil
}

// Delete removes a dish and reports whether a row was deleted.
func (r *dishRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM dishes WHERE id = $1`, id)
	if err != nil {
		r.logger.Error().Err(err).Int64("dish_id", id).Msg("failed to delete dish")
		return false, fmt.Errorf("failed to delete dish: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// Count returns the number of stored dishes.
func (r *dishRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM dishes`).Scan(&count); err != nil {
		r.logger.Error().Err(err).Msg("failed to count dishes")
		return 0, fmt.Errorf("failed to count dishes: %w", err)
	}

	return count, nil
}

func (r *dishRepository) queryDishes(ctx context.Context, query string, args ...any) ([]model.Dish, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query dishes")
		return nil, fmt.Errorf("failed to query dishes: %w", err)
	}
	defer rows.Close()

	dishes := []model.Dish{}
	for rows.Next() {
		dish, err := scanDish(rows)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan dish row")
			return nil, fmt.Errorf("failed to scan dish: %w", err)
		}
		dishes = append(dishes, *dish)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating dish rows")
		return nil, fmt.Errorf("error iterating dishes: %w", err)
	}

	return dishes, nil
}

func scanDish(row pgx.Row) (*model.Dish, error) {
	var d model.Dish
	err := row.Scan(
		&d.ID,
		&d.Title,
		&d.Description,
		&d.Stars,
		&d.Ratings,
		&d.Price,
		&d.ImageURL,
		&d.CreatedAt,
		&d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
