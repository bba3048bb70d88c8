package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	ttcalerts "github.com/theoremus-urban-solutions/ttc-alerts"
)

func newServeCmd(a *app) *cobra.Command {
	var port int
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve extraction over HTTP",
		Long: `Serve extraction over HTTP until interrupted.

Endpoints:
  POST /api/alerts/markup     advisory feed JSON
  POST /api/alerts/bulletin   bulletin text (?kind=all|disruptions|accessibility)
  GET  /api/health
  GET  /metrics

Both POST endpoints accept ?format= with any output format.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := ttcalerts.ServerConfig{
				Port:         a.cfg.Server.Port,
				ReadTimeout:  a.cfg.ReadTimeout(),
				WriteTimeout: a.cfg.WriteTimeout(),
			}
			if port > 0 {
				cfg.Port = port
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return ttcalerts.NewServer(a.parser, cfg, a.logger, a.metrics).Run(ctx)
		},
	}
	cmd.Flags().IntVarP(&port, "port", "p", 0, "listen port (overrides config)")
	return cmd
}
