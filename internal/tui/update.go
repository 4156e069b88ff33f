package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/sustainsim/internal/calculation"
	"github.com/rgehrsitz/sustainsim/internal/domain"
	"github.com/rgehrsitz/sustainsim/internal/tui/tuimsg"
)

var globalKeys = struct {
	Quit, Help, Back, Model, Background, Interpretation, Next key.Binding
}{
	Quit:           key.NewBinding(key.WithKeys("ctrl+c", "q")),
	Help:           key.NewBinding(key.WithKeys("?")),
	Back:           key.NewBinding(key.WithKeys("esc")),
	Model:          key.NewBinding(key.WithKeys("1")),
	Background:     key.NewBinding(key.WithKeys("2")),
	Interpretation: key.NewBinding(key.WithKeys("3")),
	Next:           key.NewBinding(key.WithKeys("tab")),
}

// sideBySideWidth is the terminal width from which sliders and charts share a row
const (
	sideBySideWidth = 150
	parametersWidth = 76
)

// Update handles all messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case NavigateMsg:
		if msg.Scene != m.currentScene {
			m.previousScene = m.currentScene
			m.currentScene = msg.Scene
		}
		return m, nil

	case ErrorMsg:
		m.err = msg.Err
		m.loading = false
		return m, nil

	case ConfigLoadedMsg:
		return m.applyConfig(msg)

	case tuimsg.ParametersChangedMsg:
		return m.requestSimulation(msg.Config)

	case tuimsg.ResetParametersMsg:
		if m.config == nil {
			return m, nil
		}
		m.parametersModel.SetConfig(m.config.Simulation, m.config.Ranges, m.engine.Policies.List())
		return m.requestSimulation(m.config.Simulation)

	case SimulationCompleteMsg:
		if msg.Seq != m.seq {
			return m, nil
		}
		if msg.Err != nil {
			m.logger.Warnf("simulation rejected: %v", msg.Err)
			m.resultsModel.SetError(msg.Err)
			return m, nil
		}
		m.resultsModel.SetResult(msg.Result)
		m.interpretationModel.SetScore(msg.Result.FinalScore)
		return m, nil
	}

	return m.updateCurrentScene(msg)
}

func (m Model) applyConfig(msg ConfigLoadedMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	registry, err := msg.Config.Registry()
	if err != nil {
		m.err = err
		return m, nil
	}

	m.config = msg.Config
	m.engine = calculation.NewSimulationEngineWithPolicies(registry)
	m.engine.SetLogger(m.logger)
	m.logger.Infof("loaded preset %q with %d policies", msg.Config.Preset, len(registry.List()))

	m.parametersModel.SetConfig(msg.Config.Simulation, msg.Config.Ranges, registry.List())
	m.resize()
	return m.requestSimulation(msg.Config.Simulation)
}

// requestSimulation refreshes the static pages and schedules an engine run
func (m Model) requestSimulation(cfg domain.SimulationConfig) (tea.Model, tea.Cmd) {
	if m.engine == nil {
		return m, nil
	}
	m.seq++
	m.backgroundModel.SetConfig(cfg)
	if p, err := m.engine.Policies.Get(cfg.VerdictPolicy); err == nil {
		m.interpretationModel.SetPolicy(p)
	}
	return m, simulateCmd(m.engine, cfg, m.seq)
}

func (m *Model) resize() {
	resultsWidth := m.width
	if m.width >= sideBySideWidth {
		resultsWidth = m.width - parametersWidth
	}
	m.parametersModel.SetSize(parametersWidth, m.height)
	m.resultsModel.SetSize(resultsWidth, m.height)
	m.backgroundModel.SetSize(m.width, m.height)
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, globalKeys.Quit) {
		return m, tea.Quit
	}

	// A failed load leaves nothing to show; any key exits
	if m.err != nil && m.config == nil {
		return m, tea.Quit
	}

	switch {
	case key.Matches(msg, globalKeys.Help):
		return m.navigate(SceneHelp)
	case key.Matches(msg, globalKeys.Back):
		// esc leaves help for the page it was opened from
		if m.currentScene == SceneHelp {
			return m.navigate(m.previousScene)
		}
		if m.currentScene != SceneModel {
			return m.navigate(SceneModel)
		}
		return m, nil
	case key.Matches(msg, globalKeys.Model):
		return m.navigate(SceneModel)
	case key.Matches(msg, globalKeys.Background):
		return m.navigate(SceneBackground)
	case key.Matches(msg, globalKeys.Interpretation):
		return m.navigate(SceneInterpretation)
	case key.Matches(msg, globalKeys.Next):
		return m.navigate((m.currentScene + 1) % (SceneHelp + 1))
	}

	return m.updateCurrentScene(msg)
}

func (m Model) navigate(s Scene) (tea.Model, tea.Cmd) {
	if s != m.currentScene {
		m.previousScene = m.currentScene
		m.currentScene = s
	}
	return m, nil
}

// updateCurrentScene delegates updates to the current scene's model
func (m Model) updateCurrentScene(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.currentScene {
	case SceneModel:
		updated, cmd := m.parametersModel.Update(msg)
		m.parametersModel = updated
		return m, cmd
	}
	return m, nil
}
