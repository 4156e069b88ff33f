package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rgehrsitz/sustainsim/internal/api"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve [config-file]",
		Short: "Serve simulations over HTTP",
		Long: "Starts the JSON API (GET /health, /presets, /policies; POST /simulate).\n" +
			"Policies from the optional config file are available to every request.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, _ := cmd.Flags().GetString("addr")

			cfg, err := loadConfiguration(args, "")
			if err != nil {
				return err
			}
			registry, err := cfg.Registry()
			if err != nil {
				return err
			}

			server := api.NewServer(registry, commandLogger(cmd))
			server.Parser.Policies = cfg.Policies
			server.DefaultPreset = cfg.Preset

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return server.Serve(ctx, addr, cmd.OutOrStdout())
		},
	}
	cmd.Flags().String("addr", ":8080", "Listen address")
	return cmd
}
