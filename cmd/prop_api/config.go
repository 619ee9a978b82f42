package main

import (
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/proplogic/internal/pipeline"
	"github.com/DjordjeVuckovic/proplogic/internal/server"
	"github.com/DjordjeVuckovic/proplogic/internal/storage/factory"
	"github.com/DjordjeVuckovic/proplogic/pkg/config/env"
)

type AppConfig struct {
	ENV string
}

func NewAppConfig() *AppConfig {
	return &AppConfig{
		ENV: env.Current(),
	}
}

type PropAPIConfig struct {
	Server   *server.Config
	Pipeline pipeline.Config
	// StorageConfig is nil when STORAGE_TYPE is unset, which disables
	// verdict storage.
	StorageConfig *factory.StorageConfig
}

func (as *AppConfig) Load() (*PropAPIConfig, error) {
	if err := env.LoadDotEnv(as.ENV, "cmd/prop_api/.env"); err != nil {
		slog.Info("Failed to load .env, continuing with existing environment variables", "error", err)
	}

	serverCfg, err := server.LoadConfig()
	if err != nil {
		return nil, err
	}

	pipelineCfg, err := pipeline.LoadEnv()
	if err != nil {
		slog.Error("Failed to load pipeline configuration from environment", "error", err)
		return nil, err
	}

	cfg := &PropAPIConfig{Server: serverCfg, Pipeline: pipelineCfg}
	if os.Getenv("STORAGE_TYPE") == "" {
		return cfg, nil
	}

	storageCfg, err := factory.LoadEnv()
	if err != nil {
		slog.Error("Failed to load storage configuration from environment", "error", err)
		return nil, err
	}
	cfg.StorageConfig = storageCfg

	return cfg, nil
}
