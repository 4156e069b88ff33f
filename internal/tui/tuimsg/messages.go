// Package tuimsg holds the messages scenes send back to the root model.
package tuimsg

import (
	"github.com/rgehrsitz/sustainsim/internal/domain"
)

// ParametersChangedMsg carries the configuration after a slider or mode change
type ParametersChangedMsg struct {
	Config domain.SimulationConfig
}

// ResetParametersMsg asks the root model to restore the loaded configuration
type ResetParametersMsg struct{}
