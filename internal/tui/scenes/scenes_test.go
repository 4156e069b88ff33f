package scenes

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgehrsitz/sustainsim/internal/config"
	"github.com/rgehrsitz/sustainsim/internal/domain"
	"github.com/rgehrsitz/sustainsim/internal/tui/tuimsg"
	"github.com/rgehrsitz/sustainsim/internal/verdict"
)

func threeBand(t *testing.T) verdict.Policy {
	t.Helper()
	p, err := verdict.NewRegistry().Get(verdict.ThreeBand)
	require.NoError(t, err)
	return p
}

func TestInterpretationModel_ActiveRow(t *testing.T) {
	m := NewInterpretationModel()
	assert.Equal(t, -1, m.ActiveRow())

	m.SetPolicy(threeBand(t))
	assert.Equal(t, -1, m.ActiveRow(), "no score yet")

	m.SetScore(25)
	assert.Equal(t, 0, m.ActiveRow())
	m.SetScore(9.875)
	assert.Equal(t, 1, m.ActiveRow())
	m.SetScore(-1)
	assert.Equal(t, 2, m.ActiveRow())

	view := m.View()
	assert.Contains(t, view, verdict.LabelHighlySustainable)
	assert.Contains(t, view, verdict.LabelUnsustainable)
	assert.Contains(t, view, "score ≤ 0.00")
}

func TestParametersModel_ComponentSliders(t *testing.T) {
	m := NewParametersModel()
	cfg := config.Default()
	m.SetConfig(cfg, config.DefaultRanges(), nil)
	assert.Contains(t, m.View(), "t4 Culture & spirit")
	assert.NotContains(t, m.View(), "Maturity index T")

	// horizon, R0, D0, then t1
	for i := 0; i < 3; i++ {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	require.Equal(t, "maturity_components.diplomacy_security", m.Focused())

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	require.NotNil(t, cmd)
	changed, ok := cmd().(tuimsg.ParametersChangedMsg)
	require.True(t, ok)
	assert.InDelta(t, 0.55, changed.Config.Components.DiplomacySecurity, 1e-12)
	assert.Equal(t, 0.5, changed.Config.Components.CultureSpirit)
	assert.True(t, m.Modified())
}

func TestParametersModel_FixedModeSlider(t *testing.T) {
	m := NewParametersModel()
	cfg := config.Default()
	cfg.Aggregation = domain.AggregationFixed
	m.SetConfig(cfg, config.DefaultRanges(), nil)
	assert.Contains(t, m.View(), "Maturity index T")
	assert.NotContains(t, m.View(), "t1 Diplomacy")
}

func TestParametersModel_NoMoveNoMessage(t *testing.T) {
	m := NewParametersModel()
	cfg := config.Default()
	cfg.HorizonYears = 1
	m.SetConfig(cfg, config.DefaultRanges(), nil)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Nil(t, cmd, "horizon is already at its minimum")
	assert.False(t, m.Modified())
}

func TestParametersModel_MoveWritesOnlyThatSlider(t *testing.T) {
	m := NewParametersModel()
	cfg := config.Default()
	cfg.HorizonYears = 80
	ranges := config.DefaultRanges()
	ranges.HorizonYears = config.Range{Min: 1, Max: 50, Step: 1}
	m.SetConfig(cfg, ranges, nil)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	require.Equal(t, KeyInitialResource, m.Focused())

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	require.NotNil(t, cmd)
	changed := cmd().(tuimsg.ParametersChangedMsg)
	assert.Equal(t, 105.0, changed.Config.InitialResource)
	assert.Equal(t, 80, changed.Config.HorizonYears, "horizon outside the slider range is left alone")
	assert.Equal(t, 80, m.Config().HorizonYears)
	assert.NotContains(t, m.View(), "outside the slider range")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Contains(t, m.View(), "Configured value 80 is outside the slider range.")
}

func TestParametersModel_DetailPanel(t *testing.T) {
	m := NewParametersModel()
	m.SetConfig(config.Default(), config.DefaultRanges(), nil)
	assert.Contains(t, m.View(), "Number of yearly steps after year 0.")

	for i := 0; i < 3; i++ {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	view := m.View()
	assert.Contains(t, view, "External stability and conflict avoidance.")
	assert.NotContains(t, view, "Number of yearly steps after year 0.")
}

func TestParametersModel_PolicyCycleWithoutPolicies(t *testing.T) {
	m := NewParametersModel()
	m.SetConfig(config.Default(), config.DefaultRanges(), nil)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("v")})
	assert.Nil(t, cmd)
}

func TestBackgroundModel_Equation(t *testing.T) {
	m := NewBackgroundModel()
	cfg := config.Default()
	m.SetConfig(cfg)
	assert.Contains(t, m.View(), "T = (0.3·t1 + 0.3·t2 + 0.2·t3 + 0.2·t4) / Σw")

	cfg.Aggregation = domain.AggregationMinimum
	m.SetConfig(cfg)
	assert.Contains(t, m.View(), "T = min(t1, t2, t3, t4)")
}

func TestResultsModel_States(t *testing.T) {
	m := NewResultsModel()
	assert.Contains(t, m.View(), "Running simulation")

	m.SetError(assert.AnError)
	assert.Contains(t, m.View(), "Error:")
}
