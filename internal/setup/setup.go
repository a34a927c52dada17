// Package setup is responsible for setting up components.
package setup

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/matt-dz/tripmeal/internal/config"
	"github.com/matt-dz/tripmeal/internal/database"
	"github.com/matt-dz/tripmeal/internal/env"
	"github.com/matt-dz/tripmeal/internal/log"
)

// Logger builds the application logger at the configured level.
func Logger(conf config.Config) (*slog.Logger, error) {
	level, err := conf.LogLevel.Level()
	if err != nil {
		return nil, fmt.Errorf("parsing log level: %w", err)
	}
	return log.New(level), nil
}

// Database connects to Postgres and bootstraps the schema.
func Database(ctx context.Context, conf config.Config) (*database.Database, error) {
	// Creating DB connection
	pool, err := pgxpool.New(ctx, conf.Database.URL())
	if err != nil {
		return nil, fmt.Errorf("creating database pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	db := database.NewDatabase(pool)
	if err := db.EnsureSchema(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing database: %w", err)
	}

	return db, nil
}

// Admin checks the configured admin account. The admin registers through the
// normal form, so a missing account is only reported. Requires env.Database.
func Admin(ctx context.Context, env *env.Env) error {
	username := env.Config.AdminUsername
	if username == "" {
		env.Logger.InfoContext(ctx, "ADMIN_USERNAME not set, no user will see every recipe")
		return nil
	}

	exists, err := env.Database.UsernameExists(ctx, username)
	if err != nil {
		return fmt.Errorf("checking admin account: %w", err)
	}
	if !exists {
		env.Logger.WarnContext(ctx, "admin account not registered yet", slog.String("username", username))
		return nil
	}

	env.Logger.InfoContext(ctx, "admin account found", slog.String("username", username))
	return nil
}
