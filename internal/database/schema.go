package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
)

// Execer is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type Execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// schema only ever creates missing objects; it never alters or drops existing data.
const schema = `
	CREATE TABLE IF NOT EXISTS categories (
		id         SERIAL PRIMARY KEY,
		title      VARCHAR(100) NOT NULL UNIQUE,
		icon_url   VARCHAR(255),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_categories_created_at ON categories(created_at);

	CREATE TABLE IF NOT EXISTS dishes (
		id          SERIAL PRIMARY KEY,
		title       VARCHAR(100) NOT NULL,
		description TEXT NOT NULL,
		stars       DECIMAL(3, 2) NOT NULL DEFAULT 0,
		ratings     INTEGER NOT NULL DEFAULT 0,
		price       DECIMAL(8, 2) NOT NULL,
		image_url   VARCHAR(255) NOT NULL,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_dishes_created_at ON dishes(created_at DESC);

	CREATE OR REPLACE FUNCTION dishes_touch_updated_at() RETURNS TRIGGER AS $$
	BEGIN
		NEW.updated_at = NOW();
		RETURN NEW;
	END;
	$$ LANGUAGE plpgsql;

	CREATE OR REPLACE TRIGGER dishes_touch_updated_at
		BEFORE UPDATE ON dishes
		FOR EACH ROW
		WHEN (OLD.* IS DISTINCT FROM NEW.*)
		EXECUTE FUNCTION dishes_touch_updated_at();
`

// EnsureSchema creates the categories and dishes tables when they do not exist.
// It is safe to call on every start.
func EnsureSchema(ctx context.Context, db Execer, logger zerolog.Logger) error {
	logger.Info().Msg("ensuring database schema")

	if _, err := db.Exec(ctx, schema); err != nil {
		logger.Error().Err(err).Msg("failed to initialise database schema")
		return fmt.Errorf("failed to initialise database schema: %w", err)
	}

	logger.Info().Msg("database schema ready")

	return nil
}
