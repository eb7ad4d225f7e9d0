package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"foodhub/internal/catalog"
	"foodhub/internal/config"
	"foodhub/internal/database"
	"foodhub/internal/events"
	"foodhub/internal/repository"
	"foodhub/internal/service"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting foodhub catalog seed")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	if err := database.EnsureSchema(ctx, pool, logger); err != nil {
		return err
	}

	cat, err := loadCatalog(ctx, cfg, logger)
	if err != nil {
		return err
	}

	publisher := events.Publisher(events.NopPublisher{})
	if cfg.Kafka.Enabled {
		kp, err := events.NewKafkaPublisher(cfg.Kafka, logger)
		if err != nil {
			return fmt.Errorf("failed to initialize event publisher: %w", err)
		}
		publisher = kp
	}
	defer publisher.Close()

	dishService := service.NewDishService(repository.NewDishRepository(pool, logger), publisher, logger)
	categoryService := service.NewCategoryService(repository.NewCategoryRepository(pool, logger), publisher, logger)

	seeder := catalog.NewSeeder(dishService, categoryService, logger)
	result, err := seeder.Seed(ctx, cat, cfg.Seed.Force)
	if err != nil {
		return fmt.Errorf("seed failed: %w", err)
	}

	if result.Skipped {
		logger.Info().Msg("database already seeded; set FORCE_SEED=true to seed again")
		return nil
	}

	logger.Info().
		Int("categories_created", result.CategoriesCreated).
		Int("categories_skipped", result.CategoriesSkipped).
		Int("dishes_created", result.DishesCreated).
		Msg("seed completed")

	return nil
}

// loadCatalog reads SEED_FILE through S3 (when enabled) with a local fallback,
// or returns the built-in catalog when no file is configured.
func loadCatalog(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*catalog.Catalog, error) {
	if cfg.Seed.File == "" {
		logger.Info().Msg("SEED_FILE not set, using built-in catalog")
		return catalog.DefaultCatalog()
	}

	fileLoader := catalog.NewFileLoader(logger)

	var s3Loader catalog.Loader
	if cfg.S3.Enabled {
		l, err := catalog.NewS3Loader(ctx, cfg.S3.Bucket, cfg.S3.Region, logger)
		if err != nil {
			logger.Warn().
				Err(err).
				Msg("failed to initialise S3 loader, falling back to local file system only")
		} else {
			s3Loader = l
		}
	}

	loader := catalog.NewFallbackLoader(s3Loader, fileLoader, cfg.S3.Prefix, cfg.S3.Enabled, logger)

	cat, err := loader.Load(ctx, cfg.Seed.File)
	if err != nil {
		return nil, fmt.Errorf("failed to load seed catalog: %w", err)
	}
	return cat, nil
}
