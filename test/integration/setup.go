package integration

import (
	"context"
	"net/url"
	"strconv"
	"testing"
	"time"

	"foodhub/internal/config"
	"foodhub/internal/database"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestDB represents a test database instance.
type TestDB struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	ConnStr   string
}

// SetupTestDB creates a PostgreSQL test container, a connection pool and the catalog schema.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	// Create PostgreSQL container
	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	// Get connection string
	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	u, err := url.Parse(connStr)
	if err != nil {
		t.Fatalf("failed to parse connection string: %v", err)
	}
	port, err := strconv.Atoi(u.Port())
	if err != nil {
		t.Fatalf("failed to parse container port: %v", err)
	}

	dbConfig := config.DatabaseConfig{
		Host:            u.Hostname(),
		Port:            port,
		User:            "testuser",
		Password:        "testpass",
		Database:        "testdb",
		SSLMode:         "disable",
		MaxConnections:  10,
		MinConnections:  2,
		MaxConnLifetime: 300,
	}

	logger := zerolog.Nop()
	pool, err := database.NewPool(ctx, dbConfig, logger)
	if err != nil {
		t.Fatalf("failed to create connection pool: %v", err)
	}

	if err := database.EnsureSchema(ctx, pool, logger); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		pool.Close()
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return &TestDB{
		Container: postgresContainer,
		Pool:      pool,
		ConnStr:   connStr,
	}
}

// SeedDishes inserts test dishes one at a time so created_at increases with id.
func SeedDishes(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	dishes := []struct {
		title   string
		price   float64
		stars   float64
		ratings int
	}{
		{"Margherita", 8.50, 4.5, 120},
		{"Caesar Salad", 6.00, 3.9, 45},
		{"Ribeye Steak", 24.00, 4.8, 310},
		{"Veggie Burger", 9.75, 4.1, 88},
	}

	for _, d := range dishes {
		_, err := pool.Exec(ctx,
			`INSERT INTO dishes (title, description, price, image_url, stars, ratings)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			d.title, d.title+" description", d.price, "http://img.test/"+d.title+".png", d.stars, d.ratings,
		)
		if err != nil {
			t.Fatalf("failed to seed dish %s: %v", d.title, err)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

// CleanupDB cleans all data from test tables.
func CleanupDB(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	_, err := pool.Exec(context.Background(), "TRUNCATE dishes, categories RESTART IDENTITY")
	if err != nil {
		t.Logf("failed to clean tables: %v", err)
	}
}

// itoa formats an id for use in a request path.
func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
