package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	"blog-backend/internal/config"
)

// PostgresDB owns the pgx connection pool and its lifecycle.
type PostgresDB struct {
	Pool   *pgxpool.Pool
	Config *config.DatabaseConfig
}

func NewPostgresDB(cfg *config.DatabaseConfig) *PostgresDB {
	return &PostgresDB{Config: cfg}
}

func (db *PostgresDB) connString() string {
	return fmt.Sprintf(
		"postgresql://%s:%s@%s:%d/%s?sslmode=%s",
		db.Config.User,
		db.Config.Password,
		db.Config.Host,
		db.Config.Port,
		db.Config.Database,
		db.Config.SSLMode,
	)
}

func (db *PostgresDB) poolConfig() (*pgxpool.Config, error) {
	cfg, err := pgxpool.ParseConfig(db.connString())
	if err != nil {
		return nil, fmt.Errorf("parse database config: %w", err)
	}

	cfg.MaxConns = db.Config.MaxConns
	cfg.MinConns = db.Config.MinConns
	cfg.ConnConfig.ConnectTimeout = db.Config.ConnectTimeout

	return cfg, nil
}

// Connect establishes the pool, retrying with exponential backoff. Each
// attempt gets its own timeout and is verified with a ping.
func (db *PostgresDB) Connect(ctx context.Context) error {
	cfg, err := db.poolConfig()
	if err != nil {
		return err
	}

	var lastErr error
	for attempt := 1; attempt <= db.Config.MaxRetries; attempt++ {
		connectCtx, cancel := context.WithTimeout(ctx, db.Config.ConnectTimeout)
		pool, err := pgxpool.NewWithConfig(connectCtx, cfg)
		cancel()

		if err == nil {
			if pingErr := pool.Ping(ctx); pingErr != nil {
				pool.Close()
				err = pingErr
			} else {
				log.Info().Int("attempt", attempt).Msg("connected to postgres")
				db.Pool = pool
				return nil
			}
		}
		lastErr = err
		log.Warn().Err(err).Int("attempt", attempt).Msg("postgres connection failed")

		if attempt < db.Config.MaxRetries {
			delay := db.Config.RetryDelay * time.Duration(1<<uint(attempt-1))
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return fmt.Errorf("connection cancelled: %w", ctx.Err())
			}
		}
	}

	return fmt.Errorf("failed to connect after %d attempts: %w", db.Config.MaxRetries, lastErr)
}

// HealthCheck pings the pool with a short timeout.
func (db *PostgresDB) HealthCheck(ctx context.Context) error {
	if db.Pool == nil {
		return fmt.Errorf("database pool is not initialized")
	}

	healthCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.Pool.Ping(healthCtx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}

	return nil
}

func (db *PostgresDB) Close() {
	if db.Pool != nil {
		db.Pool.Close()
	}
}
