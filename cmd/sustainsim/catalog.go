package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rgehrsitz/sustainsim/internal/config"
)

func presetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the built-in presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tMATURITY\tPOLICY\tDESCRIPTION")
			for _, p := range config.Presets() {
				marker := ""
				if p.Name == config.DefaultPreset {
					marker = " (default)"
				}
				fmt.Fprintf(w, "%s%s\t%s\t%s\t%s\n", p.Name, marker, p.Simulation.Aggregation, p.Simulation.VerdictPolicy, p.Description)
			}
			return w.Flush()
		},
	}
}

func policiesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "policies [config-file]",
		Short: "Print the verdict policy tables",
		Long:  "Prints the built-in verdict policies plus any defined in the given config file.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfiguration(args, "")
			if err != nil {
				return err
			}
			registry, err := cfg.Registry()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i, p := range registry.Policies() {
				if i > 0 {
					fmt.Fprintln(out)
				}
				fmt.Fprintf(out, "%s\n", p.Name)
				if p.Description != "" {
					fmt.Fprintf(out, "  %s\n", p.Description)
				}
				w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
				for j := 0; j <= len(p.Bands); j++ {
					v := p.Floor
					if j < len(p.Bands) {
						v = p.Bands[j].Verdict
					}
					fmt.Fprintf(w, "  %s\t%s\t%s\t%s\n", p.RangeLabel(j), v.Label, v.Tone, v.Description)
				}
				if err := w.Flush(); err != nil {
					return err
				}
			}
			return nil
		},
	}
	return cmd
}
