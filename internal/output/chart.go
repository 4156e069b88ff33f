package output

import (
	"fmt"
	"strings"

	"github.com/rgehrsitz/sustainsim/internal/domain"
	"github.com/rgehrsitz/sustainsim/internal/tui/components"
	"github.com/rgehrsitz/sustainsim/internal/tui/tuistyles"
)

// ChartFormatter draws the resource/desire and score charts as text
type ChartFormatter struct {
	Width  int
	Height int
}

func (ChartFormatter) Name() string { return "chart" }

func (c ChartFormatter) Format(result *domain.SimulationResult) ([]byte, error) {
	traj := result.Trajectory
	labels := make([]string, len(traj.Years))
	for i, y := range traj.Years {
		labels[i] = fmt.Sprintf("%d", y)
	}

	stocks := components.NewASCIIChart("Resource and desire").
		AddSeries("Resource R(n)", traj.Resource, tuistyles.ColorSuccess).
		AddSeries("Desire D(n)", traj.Desire, tuistyles.ColorDanger).
		WithLabels(labels).
		WithSize(c.Width, c.Height).
		WithAxisLabels("year", "")

	score := components.NewASCIIChart("Score T(n) × (R − D)").
		AddSeries("Score", traj.Score, tuistyles.ColorInfo).
		WithLabels(labels).
		WithSize(c.Width, c.Height).
		WithBaseline(0).
		WithAxisLabels("year", "")

	var b strings.Builder
	b.WriteString(stocks.Render())
	b.WriteString("\n\n")
	b.WriteString(score.Render())
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Final score %s → %s\n", FormatFixed(result.FinalScore, 2), result.Verdict.Label)
	return []byte(b.String()), nil
}
