package scenes

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/sustainsim/internal/domain"
	"github.com/rgehrsitz/sustainsim/internal/output"
	"github.com/rgehrsitz/sustainsim/internal/tui/components"
	"github.com/rgehrsitz/sustainsim/internal/tui/tuistyles"
)

// ResultsModel shows the charts and verdict of the latest run
type ResultsModel struct {
	result *domain.SimulationResult
	err    error
	width  int
	height int
}

// NewResultsModel creates a new results scene model
func NewResultsModel() *ResultsModel {
	return &ResultsModel{}
}

// SetResult replaces the displayed run and clears any previous error
func (m *ResultsModel) SetResult(result *domain.SimulationResult) {
	m.result = result
	m.err = nil
}

// SetError keeps the last good run on screen but flags the rejected input
func (m *ResultsModel) SetError(err error) {
	m.err = err
}

// Result returns the displayed run
func (m *ResultsModel) Result() *domain.SimulationResult {
	return m.result
}

// SetSize updates the scene dimensions
func (m *ResultsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *ResultsModel) chartSize() (int, int) {
	width := m.width - 4
	if width < 40 {
		width = 40
	}
	height := (m.height - 22) / 2
	if height < 5 {
		height = 5
	}
	return width, height
}

// View renders the results scene
func (m *ResultsModel) View() string {
	if m.result == nil {
		if m.err != nil {
			return tuistyles.ErrorStyle.Render("Error: " + m.err.Error())
		}
		return tuistyles.InfoStyle.Render("Running simulation...")
	}

	parts := []string{renderKeyMetrics(m.result)}
	if m.err != nil {
		parts = append(parts, tuistyles.ErrorStyle.Render("Rejected: "+m.err.Error()))
	}

	width, height := m.chartSize()
	traj := m.result.Trajectory
	labels := make([]string, len(traj.Years))
	for i, y := range traj.Years {
		labels[i] = fmt.Sprintf("%d", y)
	}

	stocks := components.NewASCIIChart("Resource and desire").
		AddSeries("Resource R(n)", traj.Resource, tuistyles.ColorChartLine1).
		AddSeries("Desire D(n)", traj.Desire, tuistyles.ColorChartLine2).
		WithLabels(labels).
		WithSize(width, height)

	score := components.NewASCIIChart("Sustainability score").
		AddSeries("Score", traj.Score, tuistyles.ColorChartLine3).
		WithLabels(labels).
		WithSize(width, height).
		WithBaseline(0)

	parts = append(parts, stocks.Render(), score.Render())
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// renderKeyMetrics renders the key metrics as cards
func renderKeyMetrics(result *domain.SimulationResult) string {
	cards := []*components.MetricCard{
		components.NewMetricCard("Maturity index T", output.FormatFixed(result.MaturityIndex, 3)),
	}

	if result.HarmonyIndex != nil {
		cards = append(cards, components.NewMetricCard("Harmony index S", output.FormatFixed(*result.HarmonyIndex, 3)))
	}

	cards = append(cards,
		components.NewMetricCard(
			fmt.Sprintf("Final score (year %d)", result.Config.HorizonYears),
			output.FormatFixed(result.FinalScore, 2),
		),
		components.NewMetricCard("Verdict", result.Verdict.Label).
			WithTone(result.Verdict.Tone).
			WithDescription(result.Verdict.Description).
			WithWidth(40),
	)

	return components.MetricGrid(cards, len(cards))
}
