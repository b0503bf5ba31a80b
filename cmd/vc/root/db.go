package root

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"vitacoach/internal/config"
	"vitacoach/internal/engine"
	"vitacoach/internal/logging"
	"vitacoach/internal/storage"
)

// loadConfig reads env/.env and applies the persistent flags on top.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}
	if p := strings.TrimSpace(flagDBPath); p != "" {
		cfg.DBPath = p
	}
	if l := strings.TrimSpace(flagLogLevel); l != "" {
		cfg.LogLevel = l
	}
	return cfg, nil
}

func openService(ctx context.Context, cmd *cobra.Command, opts ...engine.Option) (*engine.Service, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	return openServiceWith(ctx, cmd, cfg, logging.New(cmd.ErrOrStderr(), cfg.LogLevel), opts...)
}

func openServiceWith(ctx context.Context, cmd *cobra.Command, cfg config.Config, log logging.Logger, opts ...engine.Option) (*engine.Service, func(), error) {
	db, err := storage.Open(ctx, cfg.DBPath)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = db.Close()
	}
	log.Debug(ctx, "database opened", "path", cfg.DBPath, "command", cmd.Name())
	opts = append([]engine.Option{engine.WithLogger(log)}, opts...)
	return engine.NewService(db, opts...), cleanup, nil
}
