// Package testutil provides test helpers, including PostgreSQL container
// management for repository integration tests.
package testutil

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/ironvale/forge/internal/config"
	"github.com/ironvale/forge/internal/storage/postgres"
)

// PostgresContainer wraps a testcontainers PostgreSQL instance. The
// container itself is owned by t.Cleanup; tests interact through the pools
// and the connection config.
type PostgresContainer struct {
	Pool    *postgres.Pool
	RawPool *pgxpool.Pool
	Config  config.DatabaseConfig
}

// NewPool starts a PostgreSQL test container with the forge schema applied
// and returns the raw pool for repository constructors. The container is
// terminated via t.Cleanup.
//
// Precondition: Docker must be available.
func NewPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	pc := NewPostgresContainer(t)
	pc.ApplyMigrations(t)
	return pc.RawPool
}

// NewPostgresContainer starts a PostgreSQL test container and returns
// a connected Pool.
//
// Precondition: Docker must be available.
// Postcondition: Returns a running container with a connected pool,
// or fails the test.
func NewPostgresContainer(t *testing.T) *PostgresContainer {
	t.Helper()
	ctx := context.Background()
	start := time.Now()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "test",
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_DB":       "test",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(30 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Fatalf("starting postgres container: %v [%s]", err, time.Since(start))
	}

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("getting container host: %v", err)
	}

	mappedPort, err := container.MappedPort(ctx, "5432")
	if err != nil {
		t.Fatalf("getting mapped port: %v", err)
	}

	dbCfg := config.DatabaseConfig{
		Host:            host,
		Port:            mappedPort.Int(),
		User:            "test",
		Password:        "test",
		Name:            "test",
		SSLMode:         "disable",
		MaxConns:        5,
		MinConns:        1,
		MaxConnLifetime: 5 * time.Minute,
	}

	pool, err := postgres.NewPool(ctx, dbCfg)
	if err != nil {
		t.Fatalf("configuring test pool: %v [%s]", err, time.Since(start))
	}
	if err := pool.Health(ctx, 10*time.Second); err != nil {
		pool.Close()
		_ = container.Terminate(ctx)
		t.Fatalf("test postgres unreachable: %v [%s]", err, time.Since(start))
	}

	t.Logf("postgres container started [%s]", time.Since(start))

	pc := &PostgresContainer{
		Pool:    pool,
		RawPool: pool.DB(),
		Config:  dbCfg,
	}

	t.Cleanup(func() {
		pool.Close()
		_ = container.Terminate(ctx)
	})

	return pc
}

// ApplyMigrations runs the schema creation SQL directly for tests.
// This avoids requiring the migrate tool in the test environment and must
// stay in step with the files under migrations/.
//
// Precondition: Pool must be connected.
// Postcondition: The weapons and weapon_modifiers tables exist in the test
// database.
func (pc *PostgresContainer) ApplyMigrations(t *testing.T) {
	t.Helper()
	ctx := context.Background()
	start := time.Now()

	schema := `
		CREATE TABLE IF NOT EXISTS weapons (
			id              TEXT             PRIMARY KEY,
			owner           TEXT             NOT NULL,
			base_name       TEXT             NOT NULL,
			name            TEXT             NOT NULL,
			weapon_type     TEXT             NOT NULL,
			rarity          TEXT             NOT NULL,
			element         TEXT             NOT NULL,
			damage          DOUBLE PRECISION NOT NULL,
			critical_chance DOUBLE PRECISION NOT NULL,
			critical_damage DOUBLE PRECISION NOT NULL,
			attack_speed    DOUBLE PRECISION NOT NULL,
			reach           DOUBLE PRECISION NOT NULL,
			weight          DOUBLE PRECISION NOT NULL,
			level           INTEGER          NOT NULL,
			growth_rate     DOUBLE PRECISION NOT NULL,
			created_at      TIMESTAMPTZ      NOT NULL DEFAULT NOW(),
			updated_at      TIMESTAMPTZ      NOT NULL DEFAULT NOW()
		);
		CREATE INDEX IF NOT EXISTS idx_weapons_owner ON weapons (owner);

		CREATE TABLE IF NOT EXISTS weapon_modifiers (
			weapon_id TEXT             NOT NULL REFERENCES weapons(id) ON DELETE CASCADE,
			position  INTEGER          NOT NULL,
			stat      TEXT             NOT NULL,
			kind      TEXT             NOT NULL,
			value     DOUBLE PRECISION NOT NULL,
			PRIMARY KEY (weapon_id, position)
		);
	`

	_, err := pc.RawPool.Exec(ctx, schema)
	if err != nil {
		t.Fatalf("applying migrations: %v", err)
	}
	t.Logf("migrations applied [%s]", time.Since(start))
}

// DSN returns the connection string for the test database.
func (pc *PostgresContainer) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		pc.Config.User, pc.Config.Password,
		pc.Config.Host, pc.Config.Port,
		pc.Config.Name, pc.Config.SSLMode,
	)
}
