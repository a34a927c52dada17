// Package env provides a structure for managing application-wide dependencies.
package env

import (
	"context"
	"log/slog"

	"github.com/matt-dz/tripmeal/internal/config"
	"github.com/matt-dz/tripmeal/internal/database"
	"github.com/matt-dz/tripmeal/internal/log"
)

type envKeyType struct{}

var envKey envKeyType

type Env struct {
	Logger   *slog.Logger
	Database database.Querier
	Config   config.Config
}

func New(logger *slog.Logger, db database.Querier, conf config.Config) *Env {
	if logger == nil {
		logger = log.NullLogger()
	}

	return &Env{
		Logger:   logger,
		Database: db,
		Config:   conf,
	}
}

// Null returns an Env that discards logs and has no database.
func Null() *Env {
	return &Env{
		Logger: log.NullLogger(),
	}
}

func WithCtx(ctx context.Context, env *Env) context.Context {
	return context.WithValue(ctx, envKey, env)
}

// EnvFromCtx returns the Env stored in ctx, or Null if there is none.
func EnvFromCtx(ctx context.Context) *Env {
	if env, ok := ctx.Value(envKey).(*Env); ok && env != nil {
		return env
	}
	return Null()
}
