package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rgehrsitz/sustainsim/internal/calculation"
	"github.com/rgehrsitz/sustainsim/internal/domain"
	"github.com/rgehrsitz/sustainsim/internal/logging"
	"github.com/rgehrsitz/sustainsim/internal/output"
)

func simulateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate [config-file]",
		Short: "Run a simulation and print the trajectory and verdict",
		Long: "Runs one simulation. Without a config file the --preset is used as is;\n" +
			"--years, --mode and --policy override whatever was loaded.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			preset, _ := cmd.Flags().GetString("preset")
			format, _ := cmd.Flags().GetString("format")
			policy, _ := cmd.Flags().GetString("policy")
			mode, _ := cmd.Flags().GetString("mode")
			years, _ := cmd.Flags().GetInt("years")

			formatter := output.GetFormatterByName(format)
			if formatter == nil {
				return fmt.Errorf("unsupported format %q (available: %s)",
					format, strings.Join(output.AvailableFormatters(), ", "))
			}

			cfg, err := loadConfiguration(args, preset)
			if err != nil {
				return err
			}
			if policy != "" {
				cfg.Simulation.VerdictPolicy = policy
			}
			if mode != "" {
				cfg.Simulation.Aggregation = domain.AggregationMode(mode)
			}
			if cmd.Flags().Changed("years") {
				cfg.Simulation.HorizonYears = years
			}

			registry, err := cfg.Registry()
			if err != nil {
				return err
			}

			logger := commandLogger(cmd)
			engine := calculation.NewSimulationEngineWithPolicies(registry)
			engine.SetLogger(logging.NewAdapter(logger))

			result, err := engine.Simulate(cfg.Simulation)
			if err != nil {
				return fmt.Errorf("simulation failed: %w", err)
			}
			logger.Info("simulation complete", "preset", cfg.Preset, "final_score", result.FinalScore, "verdict", result.Verdict.Label)

			return output.WriteFormatted(cmd.OutOrStdout(), formatter, result)
		},
	}

	cmd.Flags().StringP("preset", "p", "", "Preset to start from when no config file is given (classic, weighted, balanced, harmony)")
	cmd.Flags().StringP("format", "f", "console", "Output format ("+strings.Join(output.AvailableFormatters(), ", ")+")")
	cmd.Flags().String("policy", "", "Verdict policy override")
	cmd.Flags().String("mode", "", "Maturity aggregation override (fixed, weighted, mean, minimum)")
	cmd.Flags().IntP("years", "y", 0, "Horizon override in years")
	return cmd
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [config-file]",
		Short: "Validate a configuration file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfiguration(args, "")
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Configuration is valid (preset %s, %s, policy %s, %d years)\n",
				cfg.Preset, cfg.Simulation.Aggregation, cfg.Simulation.VerdictPolicy, cfg.Simulation.HorizonYears)
			return nil
		},
	}
}
