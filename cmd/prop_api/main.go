// Package main Proplogic API
// @title Proplogic API
// @version 1.0
// @description Checks, evaluates and analyzes propositional formulas and runs boolean VM programs
// @BasePath /
package main

import (
	"log/slog"
	"os"

	"github.com/labstack/echo/v4"

	_ "github.com/DjordjeVuckovic/proplogic/internal/docs"
	"github.com/DjordjeVuckovic/proplogic/internal/pipeline"
	"github.com/DjordjeVuckovic/proplogic/internal/router"
	"github.com/DjordjeVuckovic/proplogic/internal/server"
	"github.com/DjordjeVuckovic/proplogic/internal/storage/factory"
	pkgserver "github.com/DjordjeVuckovic/proplogic/pkg/server"
)

func main() {
	cfg, err := NewAppConfig().Load()
	if err != nil {
		slog.Error("Failed to load app configuration", "error", err)
		os.Exit(1)
	}

	p, err := pipeline.New(cfg.Pipeline)
	if err != nil {
		slog.Error("Failed to create pipeline", "error", err)
		os.Exit(1)
	}

	health := pkgserver.NewCompositeHealthChecker(pkgserver.NewOkHealthChecker())

	s := server.New(cfg.Server, health).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks().
		SetupOpenApi()

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(200, "Proplogic API is running")
	})

	var routerOpts []router.Option
	if cfg.StorageConfig != nil {
		store, err := factory.NewStorer(s.Context(), cfg.StorageConfig)
		if err != nil {
			slog.Error("Failed to create verdict store", "error", err)
			os.Exit(1)
		}
		defer store.Close()

		health.Add(pkgserver.AsHealthChecker(store))
		routerOpts = append(routerOpts, router.WithStore(store))
		slog.Info("Verdict storage enabled", "type", cfg.StorageConfig.Type)
	}

	router.New(s.Echo, p, routerOpts...).Bind()

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started, cleaning up resources...")
	}()

	if err := s.Start(); err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}
