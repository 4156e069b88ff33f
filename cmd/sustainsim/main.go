package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/rgehrsitz/sustainsim/internal/config"
	"github.com/rgehrsitz/sustainsim/internal/logging"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "sustainsim",
		Short: "Resource/desire sustainability simulator",
		Long: "Simulates resource and desire stocks under a cultural-maturity index\n" +
			"and classifies the final sustainability score against a verdict policy.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")

	root.AddCommand(simulateCmd())
	root.AddCommand(validateCmd())
	root.AddCommand(presetsCmd())
	root.AddCommand(policiesCmd())
	root.AddCommand(serveCmd())
	root.AddCommand(versionCmd())
	return root
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "sustainsim %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(cmd.OutOrStdout(), info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.Main.Path + " " + bi.GoVersion
	}
	return ""
}

// commandLogger builds the stderr logger at the --log-level of cmd
func commandLogger(cmd *cobra.Command) *slog.Logger {
	level, _ := cmd.Flags().GetString("log-level")
	return logging.NewLogger(level, cmd.ErrOrStderr())
}

// loadConfiguration reads the file named in args, or the preset when no
// file is given. A file's own preset key takes precedence over the flag.
func loadConfiguration(args []string, preset string) (*config.Configuration, error) {
	if len(args) == 0 {
		return config.FromPreset(preset)
	}
	return config.NewInputParser().LoadFromFile(args[0])
}
