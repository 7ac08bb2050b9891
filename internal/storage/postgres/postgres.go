// Package postgres provides PostgreSQL persistence for forged weapons using
// pgx v5.
package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ironvale/forge/internal/config"
)

// Pool wraps a pgx connection pool. Repositories are obtained from it, so
// one Pool is the single database handle a binary carries.
type Pool struct {
	pool *pgxpool.Pool
}

// NewPool builds a connection pool from cfg. Connections open lazily; a
// successful return means the configuration parsed, not that the server is
// reachable. Callers confirm reachability with Health before first use.
//
// Postcondition: returns a Pool ready to hand out repositories, or an error
// describing the configuration problem.
func NewPool(ctx context.Context, cfg config.DatabaseConfig) (*Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("parsing database config: %w", err)
	}

	poolCfg.MaxConns = cfg.MaxConns
	poolCfg.MinConns = cfg.MinConns
	poolCfg.MaxConnLifetime = cfg.MaxConnLifetime

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}
	return &Pool{pool: pool}, nil
}

// Health confirms the database answers within the given timeout. This is
// the reachability gate NewPool defers; run it once after construction and
// any time a caller needs a bounded liveness answer.
//
// Precondition: the pool must not be closed.
func (p *Pool) Health(ctx context.Context, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := p.pool.Ping(ctx); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}
	return nil
}

// Armory returns the weapon repository backed by this pool.
func (p *Pool) Armory() *ArmoryRepository {
	return NewArmoryRepository(p.pool)
}

// Close releases all pool resources. The Pool and any repositories obtained
// from it are unusable afterwards.
func (p *Pool) Close() {
	p.pool.Close()
}

// DB exposes the underlying pgxpool.Pool for callers that need raw access,
// such as test fixtures applying schema.
func (p *Pool) DB() *pgxpool.Pool {
	return p.pool
}
