package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgehrsitz/sustainsim/internal/domain"
	"github.com/rgehrsitz/sustainsim/internal/tui/tuimsg"
	"github.com/rgehrsitz/sustainsim/internal/verdict"
)

// drive feeds msg to the model and keeps running the returned commands
// until the chain settles
func drive(t *testing.T, m tea.Model, msg tea.Msg) Model {
	t.Helper()
	for i := 0; msg != nil && i < 10; i++ {
		if _, quit := msg.(tea.QuitMsg); quit {
			break
		}
		var cmd tea.Cmd
		m, cmd = m.Update(msg)
		if cmd == nil {
			break
		}
		msg = cmd()
	}
	return m.(Model)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func loaded(t *testing.T, preset string) Model {
	t.Helper()
	m := NewModel("", preset)
	m = drive(t, m, m.Init()())
	require.NotNil(t, m.Result(), "initial simulation should have run")
	return m
}

func TestModel_LoadsPresetAndSimulates(t *testing.T) {
	m := NewModel("", "classic")
	assert.Contains(t, m.View(), "Loading")

	m = loaded(t, "classic")
	result := m.Result()
	assert.InDelta(t, 7.5, result.FinalScore, 1e-12)
	assert.Equal(t, verdict.TwoBand, result.Policy)
	assert.Equal(t, verdict.LabelSustainable, result.Verdict.Label)
	assert.Len(t, result.Trajectory.Score, 21)

	view := m.View()
	assert.Contains(t, view, "Sustainability Simulator")
	assert.Contains(t, view, "Resource and desire")
	assert.Contains(t, view, verdict.LabelSustainable)
}

func TestModel_SliderChangeResimulates(t *testing.T) {
	m := loaded(t, "classic")
	require.Equal(t, "horizon_years", m.parametersModel.Focused())

	m = drive(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 21, m.Result().Config.HorizonYears)
	assert.InDelta(t, 7.375, m.Result().FinalScore, 1e-12)
	assert.Len(t, m.Result().Trajectory.Years, 22)

	m = drive(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = drive(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 19, m.Result().Config.HorizonYears)
}

func TestModel_MaturitySliderMovesScore(t *testing.T) {
	m := loaded(t, "classic")

	for i := 0; i < 3; i++ {
		m = drive(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	require.Equal(t, "initial_maturity", m.parametersModel.Focused())

	m = drive(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.InDelta(t, 0.55, m.Result().MaturityIndex, 1e-12)
}

func TestModel_CycleAggregationAndPolicy(t *testing.T) {
	m := loaded(t, "classic")
	require.Nil(t, m.Result().HarmonyIndex)

	m = drive(t, m, runes("a"))
	assert.Equal(t, domain.AggregationWeighted, m.Result().Config.Aggregation)
	require.NotNil(t, m.Result().HarmonyIndex)
	assert.InDelta(t, 0.5, *m.Result().HarmonyIndex, 1e-12)

	// four-band, three-band, two-band in registry order; two-band wraps around
	m = drive(t, m, runes("v"))
	assert.Equal(t, verdict.FourBand, m.Result().Policy)
	assert.Equal(t, verdict.LabelStablySustainable, m.Result().Verdict.Label)
}

func TestModel_Reset(t *testing.T) {
	m := loaded(t, "weighted")
	m = drive(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = drive(t, m, runes("a"))
	require.True(t, m.parametersModel.Modified())

	m = drive(t, m, runes("r"))
	assert.False(t, m.parametersModel.Modified())
	assert.Equal(t, 20, m.Result().Config.HorizonYears)
	assert.Equal(t, domain.AggregationWeighted, m.Result().Config.Aggregation)
}

func TestModel_RejectedInputKeepsLastResult(t *testing.T) {
	m := loaded(t, "weighted")
	good := m.Result()

	bad := good.Config
	bad.HorizonYears = 0
	m = drive(t, m, tuimsg.ParametersChangedMsg{Config: bad})

	assert.Same(t, good, m.Result())
	assert.Contains(t, m.View(), "Rejected")
	assert.Contains(t, m.View(), "horizon_years")
}

func TestModel_DropsStaleResults(t *testing.T) {
	m := loaded(t, "weighted")
	current := m.Result()

	stale := &domain.SimulationResult{FinalScore: -99}
	m = drive(t, m, SimulationCompleteMsg{Seq: m.seq - 1, Result: stale})
	assert.Same(t, current, m.Result())
}

func TestModel_Navigation(t *testing.T) {
	m := loaded(t, "weighted")

	tests := []struct {
		key   tea.KeyMsg
		scene Scene
		want  string
	}{
		{runes("2"), SceneBackground, "Yearly update"},
		{runes("3"), SceneInterpretation, "Score interpretation: three-band"},
		{runes("?"), SceneHelp, "Keyboard shortcuts"},
		{tea.KeyMsg{Type: tea.KeyEsc}, SceneInterpretation, "Score interpretation: three-band"},
		{tea.KeyMsg{Type: tea.KeyEsc}, SceneModel, "Parameters"},
		{tea.KeyMsg{Type: tea.KeyTab}, SceneBackground, "Background"},
		{runes("1"), SceneModel, "Parameters"},
	}

	for _, tt := range tests {
		m = drive(t, m, tt.key)
		assert.Equal(t, tt.scene, m.CurrentScene(), tt.key.String())
		assert.Contains(t, m.View(), tt.want, tt.key.String())
	}
}

func TestModel_SlidersIgnoredOffModelPage(t *testing.T) {
	m := loaded(t, "weighted")
	m = drive(t, m, runes("2"))
	m = drive(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 20, m.Result().Config.HorizonYears)
}

func TestModel_LoadErrorQuits(t *testing.T) {
	m := drive(t, NewModel("", "no-such-preset"), ErrorMsg{Err: errors.New("unknown preset: no-such-preset")})
	assert.Contains(t, m.View(), "unknown preset")

	_, cmd := m.Update(runes("x"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_WideLayout(t *testing.T) {
	m := loaded(t, "harmony")
	m = drive(t, m, tea.WindowSizeMsg{Width: 180, Height: 60})
	assert.Contains(t, m.View(), "Harmony index S")
}
