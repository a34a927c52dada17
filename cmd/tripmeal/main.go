package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/matt-dz/tripmeal/internal/api"
	"github.com/matt-dz/tripmeal/internal/config"
	"github.com/matt-dz/tripmeal/internal/env"
	"github.com/matt-dz/tripmeal/internal/log"
	"github.com/matt-dz/tripmeal/internal/setup"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	const setupTime = 30 * time.Second
	setupCtx, cancel := context.WithTimeout(ctx, setupTime)
	defer cancel()

	conf, err := config.LoadConfig()
	if err != nil {
		log.New(nil).Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger, err := setup.Logger(conf)
	if err != nil {
		log.New(nil).Error("failed to setup logger", slog.Any("error", err))
		os.Exit(1)
	}

	db, err := setup.Database(setupCtx, conf)
	if err != nil {
		logger.Error("failed to setup database", slog.Any("error", err))
		os.Exit(1)
	}
	defer db.Close()

	env := env.New(logger, db, conf)

	logger.DebugContext(ctx, "checking admin account")
	if err := setup.Admin(setupCtx, env); err != nil {
		logger.Error("failed to check admin account", slog.Any("error", err))
		os.Exit(1)
	}

	if err := api.Start(ctx, env); err != nil {
		env.Logger.Error("server failed", slog.Any("error", err))
		os.Exit(1)
	}
}
