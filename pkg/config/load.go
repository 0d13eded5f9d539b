package config

import (
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Load reads the App configuration from the environment. A .env file in the
// working directory is applied first when present; a missing file is not an
// error.
func Load(logger *slog.Logger) (*App, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug("no .env file found, using system environment variables")
	} else {
		logger.Info("environment variables loaded from .env file")
	}

	var cfg App
	if err := envconfig.Process("LEDGER", &cfg); err != nil {
		return nil, err
	}

	logger.Info("app config loaded",
		"env", cfg.Env,
		"ingest_workers", cfg.Ingest.Workers,
		"ingest_buffer", cfg.Ingest.Buffer,
		"log_format", cfg.Log.Format,
	)
	return &cfg, nil
}
