package tui

import (
	"github.com/rgehrsitz/sustainsim/internal/config"
	"github.com/rgehrsitz/sustainsim/internal/domain"
)

// Scene represents different screens in the TUI
type Scene int

const (
	SceneModel Scene = iota
	SceneBackground
	SceneInterpretation
	SceneHelp
)

// Message types for the Bubble Tea update cycle

// NavigateMsg switches to a different scene
type NavigateMsg struct {
	Scene Scene
}

// ErrorMsg displays an error to the user
type ErrorMsg struct {
	Err error
}

// ConfigLoadedMsg signals configuration has been loaded
type ConfigLoadedMsg struct {
	Config *config.Configuration
}

// SimulationCompleteMsg carries the outcome of one engine run. Seq lets the
// model drop results that were overtaken by a newer parameter change.
type SimulationCompleteMsg struct {
	Seq    int
	Result *domain.SimulationResult
	Err    error
}
