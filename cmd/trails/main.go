package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/goliatone/go-router"

	"github.com/goliatone/go-trails/pkg/activity"
	"github.com/goliatone/go-trails/pkg/httpapi"
	"github.com/goliatone/go-trails/pkg/interfaces/logger"
	"github.com/goliatone/go-trails/pkg/storage"
	"github.com/goliatone/go-trails/pkg/trails"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("trails: %v", err)
	}
}

func run() error {
	ctx := context.Background()
	lgr := logger.Default()

	cfg, err := loadConfig(ctx, os.Getenv("TRAILS_CONFIG"))
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	db, err := storage.Open(ctx, cfg.Persistence, lgr)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	module, err := trails.NewModule(trails.ModuleOptions{
		Config:  cfg,
		Storage: storage.NewBunProviders(db),
		Logger:  lgr,
		Hooks:   []activity.Hook{auditLogHook(lgr)},
	})
	if err != nil {
		return fmt.Errorf("build module: %w", err)
	}

	api, err := httpapi.New(module)
	if err != nil {
		return err
	}

	srv := router.NewFiberAdapter(func(*fiber.App) *fiber.App {
		return router.DefaultFiberOptions(fiber.New(fiber.Config{
			AppName: "go-trails",
		}))
	})
	srv.WrappedRouter().Use(recover.New())
	api.Mount(srv)

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	lgr.Info("starting trails server", "addr", addr, "driver", cfg.Persistence.Driver)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(addr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case <-quit:
	}

	lgr.Info("shutting down trails server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		lgr.Error("server shutdown error", "error", err)
	}
	return nil
}

func auditLogHook(lgr logger.Logger) activity.Hook {
	return activity.HookFunc(func(_ context.Context, evt activity.Event) {
		lgr.Info("trails audit",
			"verb", evt.Verb,
			"actor", evt.ActorID,
			"object", evt.ObjectID,
			"metadata", evt.Metadata,
		)
	})
}
