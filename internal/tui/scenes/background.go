package scenes

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/sustainsim/internal/domain"
	"github.com/rgehrsitz/sustainsim/internal/tui/tuistyles"
)

// BackgroundModel explains the model equations and the maturity components
type BackgroundModel struct {
	mode    domain.AggregationMode
	weights domain.ComponentWeights
	width   int
}

// NewBackgroundModel creates a new background scene model
func NewBackgroundModel() *BackgroundModel {
	return &BackgroundModel{mode: domain.AggregationWeighted, weights: domain.DefaultWeights()}
}

// SetConfig picks up the aggregation mode and weights to describe
func (m *BackgroundModel) SetConfig(cfg domain.SimulationConfig) {
	m.mode = cfg.Aggregation
	m.weights = cfg.Weights
}

// SetSize updates the scene dimensions
func (m *BackgroundModel) SetSize(width, _ int) {
	m.width = width
}

func (m *BackgroundModel) maturityEquation() string {
	switch m.mode {
	case domain.AggregationFixed:
		return "T = T0, a fixed scalar in [0, 1]"
	case domain.AggregationMean:
		return "T = (t1 + t2 + t3 + t4) / 4"
	case domain.AggregationMinimum:
		return "T = min(t1, t2, t3, t4)"
	default:
		w := m.weights
		return "T = (" +
			trimFloat(w.DiplomacySecurity) + "·t1 + " +
			trimFloat(w.PrimaryIndustryEnergy) + "·t2 + " +
			trimFloat(w.EducationWelfare) + "·t3 + " +
			trimFloat(w.CultureSpirit) + "·t4) / Σw"
	}
}

// View renders the background page
func (m *BackgroundModel) View() string {
	section := lipgloss.NewStyle().Bold(true).Foreground(tuistyles.ColorAccent)
	body := lipgloss.NewStyle().Foreground(tuistyles.ColorForeground)

	var b strings.Builder
	b.WriteString(tuistyles.TitleStyle.Render("Background"))
	b.WriteString("\n\n")

	b.WriteString(section.Render("Yearly update"))
	b.WriteString("\n")
	b.WriteString(body.Render(strings.Join([]string{
		"  D(n+1) = D(n) + α·(1 − T)    desire creeps up faster in an immature culture",
		"  R(n+1) = R(n) + β·T          resource grows with maturity",
		"  Score(n) = T·(R(n) − D(n))   margin of resource over desire, scaled by maturity",
	}, "\n")))
	b.WriteString("\n\n")

	b.WriteString(section.Render("Maturity index (" + m.mode.String() + ")"))
	b.WriteString("\n  ")
	b.WriteString(body.Render(m.maturityEquation()))
	b.WriteString("\n")
	b.WriteString(tuistyles.SubtitleStyle.Render("  Harmony S = min(t1..t4) is shown as a readout and does not feed the update."))
	b.WriteString("\n\n")

	b.WriteString(section.Render("Components"))
	b.WriteString("\n")
	b.WriteString(body.Render(strings.Join([]string{
		"  t1 Diplomacy & security        external stability and conflict avoidance",
		"  t2 Primary industry & energy   the material base that feeds the resource stock",
		"  t3 Education & welfare         capacity to plan and to share",
		"  t4 Culture & spirit            restraint on desire itself",
	}, "\n")))
	b.WriteString("\n\n")

	b.WriteString(section.Render("Reading the score"))
	b.WriteString("\n")
	b.WriteString(body.Render("  A positive score means resource still outpaces desire at the horizon.\n" +
		"  Whenever α·(1 − T) exceeds β·T the gap closes by a fixed amount each year and the score\n" +
		"  eventually turns negative."))

	return b.String()
}

func trimFloat(v float64) string {
	return decimal.NewFromFloat(v).String()
}
