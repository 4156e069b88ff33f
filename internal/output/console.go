package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rgehrsitz/sustainsim/internal/domain"
)

// ConsoleFormatter prints a human-readable report with the full year table
type ConsoleFormatter struct{}

func (ConsoleFormatter) Name() string { return "console" }

func (ConsoleFormatter) Format(result *domain.SimulationResult) ([]byte, error) {
	var buf bytes.Buffer
	cfg := result.Config
	rule := strings.Repeat("=", 60)

	fmt.Fprintln(&buf, rule)
	fmt.Fprintln(&buf, "SUSTAINABILITY SIMULATION")
	fmt.Fprintln(&buf, rule)
	fmt.Fprintf(&buf, "Aggregation:          %s\n", cfg.Aggregation)
	fmt.Fprintf(&buf, "Maturity index T:     %s\n", FormatFixed(result.MaturityIndex, 4))
	if result.HarmonyIndex != nil {
		fmt.Fprintf(&buf, "Harmony index S:      %s\n", FormatFixed(*result.HarmonyIndex, 4))
	}
	fmt.Fprintf(&buf, "Initial R / D:        %s / %s\n", FormatFixed(cfg.InitialResource, 2), FormatFixed(cfg.InitialDesire, 2))
	fmt.Fprintf(&buf, "Growth rates α / β:   %s / %s\n", FormatFixed(cfg.DesireGrowthRate, 2), FormatFixed(cfg.ResourceGrowthRate, 2))
	fmt.Fprintf(&buf, "Horizon:              %d years\n", cfg.HorizonYears)
	fmt.Fprintf(&buf, "Verdict policy:       %s\n", result.Policy)
	fmt.Fprintln(&buf)

	traj := result.Trajectory
	fmt.Fprintf(&buf, "%5s %12s %12s %12s\n", "YEAR", "RESOURCE", "DESIRE", "SCORE")
	fmt.Fprintln(&buf, strings.Repeat("-", 44))
	for i := 0; i < traj.Len(); i++ {
		fmt.Fprintf(&buf, "%5d %12s %12s %12s\n",
			traj.Years[i],
			FormatFixed(traj.Resource[i], 2),
			FormatFixed(traj.Desire[i], 2),
			FormatFixed(traj.Score[i], 2))
	}
	fmt.Fprintln(&buf)

	fmt.Fprintf(&buf, "FINAL SCORE %s → %s\n", FormatFixed(result.FinalScore, 2), result.Verdict.Label)
	if result.Verdict.Description != "" {
		fmt.Fprintf(&buf, "  %s\n", result.Verdict.Description)
	}
	return buf.Bytes(), nil
}
