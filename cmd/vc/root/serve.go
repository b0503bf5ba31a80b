package root

import (
	"github.com/spf13/cobra"

	"vitacoach/internal/api"
	"vitacoach/internal/logging"
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the JSON API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Addr = addr
			}
			if err := cfg.ValidateServer(); err != nil {
				return err
			}
			level := cfg.LogLevel
			if flagLogLevel == "" && level == "warn" {
				level = "info"
			}
			log := logging.New(cmd.ErrOrStderr(), level)

			ctx := cmd.Context()
			svc, cleanup, err := openServiceWith(ctx, cmd, cfg, log)
			if err != nil {
				return err
			}
			defer cleanup()

			srv := api.New(svc, api.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL), log.With("component", "api"))
			return srv.Run(ctx, cfg.Addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides VITACOACH_ADDR)")
	return cmd
}
