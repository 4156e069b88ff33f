package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rgehrsitz/sustainsim/internal/logging"
	"github.com/rgehrsitz/sustainsim/internal/tui"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "sustainsim-tui [config-file]",
		Short:         "Interactive sustainability simulator",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			preset, _ := cmd.Flags().GetString("preset")
			logFile, _ := cmd.Flags().GetString("log-file")

			configPath := ""
			if len(args) == 1 {
				configPath = args[0]
				if _, err := os.Stat(configPath); os.IsNotExist(err) {
					return fmt.Errorf("config file not found: %s", configPath)
				}
			}

			// The screen belongs to the TUI, so logs only go to a file
			var logOut io.Writer = io.Discard
			if logFile != "" {
				f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
				if err != nil {
					return fmt.Errorf("cannot open log file: %w", err)
				}
				defer f.Close()
				logOut = f
			}
			level, _ := cmd.Flags().GetString("log-level")
			logger := logging.NewAdapter(logging.NewLogger(level, logOut))

			model := tui.NewModel(configPath, preset).WithLogger(logger)
			p := tea.NewProgram(model, tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("error running TUI: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringP("preset", "p", "", "Preset to start from when no config file is given")
	cmd.Flags().String("log-file", "", "Append logs to this file")
	cmd.Flags().String("log-level", "debug", "Log level for --log-file (debug, info, warn, error)")
	return cmd
}
