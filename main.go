package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"tourism-webapp/cache"
	"tourism-webapp/config"
	"tourism-webapp/database"
	"tourism-webapp/database/memstore"
	"tourism-webapp/handlers"
	"tourism-webapp/logger"
	"tourism-webapp/router"
	"tourism-webapp/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps := handlers.Deps{Config: cfg}

	switch cfg.Store.Driver {
	case config.DriverMemory:
		store := memstore.New()
		deps.Stores, deps.Store = store.Stores(), store
		logger.Warn("using in-memory store, data is lost on exit")
	default:
		store, err := database.Connect(ctx, cfg.Store)
		if err != nil {
			logger.Error("cannot connect to MongoDB", "error", err)
			os.Exit(1)
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Store.OpTimeout)
			defer cancel()
			if err := store.Disconnect(shutdownCtx); err != nil {
				logger.Warn("MongoDB disconnect failed", "error", err)
			}
		}()
		if err := store.EnsureIndexes(ctx); err != nil {
			logger.Error("cannot create indexes", "error", err)
			os.Exit(1)
		}
		deps.Stores, deps.Store = store.Stores(), store
	}

	deps.Cache = service.NoCache
	if cfg.Cache.Enabled() {
		client, err := cache.Connect(ctx, cfg.Cache.RedisURL)
		if err != nil {
			logger.Warn("destination cache disabled", "error", err)
		} else {
			defer client.Close()
			deps.Cache = cache.NewDestinations(client, cfg.Cache.TTL)
		}
	}

	app := router.NewApp(handlers.New(deps), cfg)

	go func() {
		<-ctx.Done()
		if err := app.Shutdown(); err != nil {
			logger.Error("shutdown failed", "error", err)
		}
	}()

	logger.Info("server starting", "port", cfg.Server.Port, "store", cfg.Store.Driver)
	if err := app.Listen(":" + cfg.Server.Port); err != nil {
		logger.Error("server stopped", "error", err)
	}
}
