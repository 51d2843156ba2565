package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mithrel/profilemd/internal/config"
	"github.com/mithrel/profilemd/internal/server"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP render service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)
			applyConfigFlagOverrides(cmd, app.Cfg, map[string]string{
				"listen": "server.addr",
				"cors":   "server.cors_origins",
			})
			if err := config.Validate(app.Cfg); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			addr := app.Cfg.GetString("server.addr")
			app.Log.Info("starting render service", zap.String("addr", addr), zap.Strings("cors_origins", app.Cfg.GetStringSlice("server.cors_origins")))
			return server.New(app.Cfg, app.Log).ListenAndServe(ctx, addr)
		},
	}
	cmd.Flags().String("listen", "", "listen address (overrides server.addr)")
	cmd.Flags().StringSlice("cors", nil, "allowed CORS origins (overrides server.cors_origins)")
	return cmd
}
