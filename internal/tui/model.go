// Package tui is the interactive front end: parameter sliders, trajectory
// charts and the verdict, re-simulated on every change.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/sustainsim/internal/calculation"
	"github.com/rgehrsitz/sustainsim/internal/config"
	"github.com/rgehrsitz/sustainsim/internal/domain"
	"github.com/rgehrsitz/sustainsim/internal/tui/scenes"
)

// Model represents the entire application state
type Model struct {
	// Navigation
	currentScene  Scene
	previousScene Scene

	// Terminal dimensions
	width  int
	height int

	// Configuration source
	configPath string
	presetName string
	config     *config.Configuration

	engine *calculation.SimulationEngine
	logger calculation.Logger

	// seq numbers simulation requests so stale results can be dropped
	seq int

	parametersModel     *scenes.ParametersModel
	resultsModel        *scenes.ResultsModel
	backgroundModel     *scenes.BackgroundModel
	interpretationModel *scenes.InterpretationModel

	// Error state; only load failures land here, rejected inputs are shown inline
	err error

	loading bool
}

// NewModel creates a new application model. With an empty configPath the
// named preset is used as is.
func NewModel(configPath, presetName string) Model {
	return Model{
		currentScene:        SceneModel,
		configPath:          configPath,
		presetName:          presetName,
		logger:              calculation.NopLogger{},
		parametersModel:     scenes.NewParametersModel(),
		resultsModel:        scenes.NewResultsModel(),
		backgroundModel:     scenes.NewBackgroundModel(),
		interpretationModel: scenes.NewInterpretationModel(),
		width:               80,
		height:              24,
		loading:             true,
	}
}

// WithLogger sets the logger handed to the simulation engine
func (m Model) WithLogger(l calculation.Logger) Model {
	if l == nil {
		l = calculation.NopLogger{}
	}
	m.logger = l
	return m
}

// Init initializes the model (required by tea.Model interface)
func (m Model) Init() tea.Cmd {
	return loadConfigCmd(m.configPath, m.presetName)
}

// Result returns the latest successful simulation
func (m Model) Result() *domain.SimulationResult {
	return m.resultsModel.Result()
}

// CurrentScene returns the scene on screen
func (m Model) CurrentScene() Scene {
	return m.currentScene
}

// loadConfigCmd returns a command that loads the configuration file or preset
func loadConfigCmd(path, preset string) tea.Cmd {
	return func() tea.Msg {
		var (
			cfg *config.Configuration
			err error
		)
		if path == "" {
			cfg, err = config.FromPreset(preset)
		} else {
			cfg, err = config.NewInputParser().LoadFromFile(path)
		}
		if err != nil {
			return ErrorMsg{Err: err}
		}
		return ConfigLoadedMsg{Config: cfg}
	}
}

// simulateCmd runs the engine once
func simulateCmd(engine *calculation.SimulationEngine, cfg domain.SimulationConfig, seq int) tea.Cmd {
	return func() tea.Msg {
		result, err := engine.Simulate(cfg)
		return SimulationCompleteMsg{Seq: seq, Result: result, Err: err}
	}
}

func (s Scene) String() string {
	switch s {
	case SceneModel:
		return "Model"
	case SceneBackground:
		return "Background"
	case SceneInterpretation:
		return "Interpretation"
	case SceneHelp:
		return "Help"
	default:
		return "Unknown"
	}
}
