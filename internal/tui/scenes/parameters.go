package scenes

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/sustainsim/internal/config"
	"github.com/rgehrsitz/sustainsim/internal/domain"
	"github.com/rgehrsitz/sustainsim/internal/tui/components"
	"github.com/rgehrsitz/sustainsim/internal/tui/tuimsg"
	"github.com/rgehrsitz/sustainsim/internal/tui/tuistyles"
)

// Slider keys, named after the configuration fields they drive
const (
	KeyHorizon         = "horizon_years"
	KeyInitialResource = "initial_resource"
	KeyInitialDesire   = "initial_desire"
	KeyInitialMaturity = "initial_maturity"
	KeyDesireGrowth    = "desire_growth_rate"
	KeyResourceGrowth  = "resource_growth_rate"
)

var componentLabels = [domain.ComponentCount]string{
	"t1 Diplomacy & security",
	"t2 Primary industry & energy",
	"t3 Education & welfare",
	"t4 Culture & spirit",
}

var componentDescriptions = [domain.ComponentCount]string{
	"External stability and conflict avoidance.",
	"The material base that feeds the resource stock.",
	"Capacity to plan and to share.",
	"Restraint on desire itself.",
}

var sliderDescriptions = map[string]string{
	KeyHorizon:         "Number of yearly steps after year 0.",
	KeyInitialResource: "Resource stock R at year 0.",
	KeyInitialDesire:   "Desire level D at year 0.",
	KeyInitialMaturity: "Maturity T held fixed for the whole run.",
	KeyDesireGrowth:    "Desire grows by α·(1 − T) each year.",
	KeyResourceGrowth:  "Resource grows by β·T each year.",
}

const (
	sliderLabelWidth = 30
	detailBarWidth   = 40
)

var parameterKeys = struct {
	Up, Down, Left, Right, Mode, Policy, Reset key.Binding
}{
	Up:     key.NewBinding(key.WithKeys("up", "k")),
	Down:   key.NewBinding(key.WithKeys("down", "j")),
	Left:   key.NewBinding(key.WithKeys("left", "h", "-")),
	Right:  key.NewBinding(key.WithKeys("right", "l", "+")),
	Mode:   key.NewBinding(key.WithKeys("a")),
	Policy: key.NewBinding(key.WithKeys("v")),
	Reset:  key.NewBinding(key.WithKeys("r")),
}

// ParametersModel edits the simulation inputs with one slider per parameter
type ParametersModel struct {
	cfg           domain.SimulationConfig
	ranges        config.ParameterRanges
	policies      []string
	sliders       []*components.ParameterSlider
	focusedSlider int
	width         int
	height        int
	modified      bool
}

// NewParametersModel creates a new parameters scene model
func NewParametersModel() *ParametersModel {
	return &ParametersModel{
		ranges: config.DefaultRanges(),
	}
}

// SetConfig loads a configuration into the sliders. policies is the list
// the policy key cycles through.
func (m *ParametersModel) SetConfig(cfg domain.SimulationConfig, ranges config.ParameterRanges, policies []string) {
	m.cfg = cfg
	m.ranges = ranges
	m.policies = policies
	m.modified = false
	m.buildSliders()
}

// Config returns the configuration as currently edited
func (m *ParametersModel) Config() domain.SimulationConfig {
	return m.cfg
}

// Modified reports whether anything changed since the last SetConfig
func (m *ParametersModel) Modified() bool {
	return m.modified
}

// Focused returns the key of the focused slider
func (m *ParametersModel) Focused() string {
	if m.focusedSlider < len(m.sliders) {
		return m.sliders[m.focusedSlider].Key
	}
	return ""
}

// SetSize updates the scene dimensions
func (m *ParametersModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// buildSliders lays out the sliders for the current aggregation mode
func (m *ParametersModel) buildSliders() {
	r := m.ranges
	sliders := []*components.ParameterSlider{
		components.NewParameterSlider(KeyHorizon, "Years simulated", float64(m.cfg.HorizonYears),
			r.HorizonYears.Min, r.HorizonYears.Max, r.HorizonYears.Step).
			WithFormat("%.0f").
			WithUnit(" yrs"),
		components.NewParameterSlider(KeyInitialResource, "Initial resource R(0)", m.cfg.InitialResource,
			r.InitialResource.Min, r.InitialResource.Max, r.InitialResource.Step).
			WithFormat("%.0f"),
		components.NewParameterSlider(KeyInitialDesire, "Initial desire D(0)", m.cfg.InitialDesire,
			r.InitialDesire.Min, r.InitialDesire.Max, r.InitialDesire.Step).
			WithFormat("%.0f"),
	}

	if m.cfg.Aggregation.UsesComponents() {
		values := m.cfg.Components.Values()
		for i, label := range componentLabels {
			sliders = append(sliders, components.NewParameterSlider(
				"maturity_components."+domain.ComponentNames[i], label, values[i],
				r.Component.Min, r.Component.Max, r.Component.Step).
				WithDescription(componentDescriptions[i]))
		}
	} else {
		sliders = append(sliders, components.NewParameterSlider(KeyInitialMaturity, "Maturity index T", m.cfg.InitialMaturity,
			r.InitialMaturity.Min, r.InitialMaturity.Max, r.InitialMaturity.Step))
	}

	sliders = append(sliders,
		components.NewParameterSlider(KeyDesireGrowth, "Desire growth α", m.cfg.DesireGrowthRate,
			r.DesireGrowthRate.Min, r.DesireGrowthRate.Max, r.DesireGrowthRate.Step),
		components.NewParameterSlider(KeyResourceGrowth, "Resource growth β", m.cfg.ResourceGrowthRate,
			r.ResourceGrowthRate.Min, r.ResourceGrowthRate.Max, r.ResourceGrowthRate.Step),
	)

	for _, s := range sliders {
		s.WithWidth(20)
		if desc, ok := sliderDescriptions[s.Key]; ok {
			s.WithDescription(desc)
		}
	}

	m.sliders = sliders
	if m.focusedSlider >= len(m.sliders) {
		m.focusedSlider = len(m.sliders) - 1
	}
	m.sliders[m.focusedSlider].SetFocused(true)
}

// Update handles messages for the parameters scene
func (m *ParametersModel) Update(msg tea.Msg) (*ParametersModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}

	return m, nil
}

// handleKeyPress processes keyboard input
func (m *ParametersModel) handleKeyPress(msg tea.KeyMsg) (*ParametersModel, tea.Cmd) {
	if len(m.sliders) == 0 {
		return m, nil
	}

	switch {
	case key.Matches(msg, parameterKeys.Up):
		m.moveFocus(-1)
		return m, nil

	case key.Matches(msg, parameterKeys.Down):
		m.moveFocus(1)
		return m, nil

	case key.Matches(msg, parameterKeys.Left):
		if s := m.sliders[m.focusedSlider]; s.Decrement() {
			return m, m.applyChange(s)
		}
		return m, nil

	case key.Matches(msg, parameterKeys.Right):
		if s := m.sliders[m.focusedSlider]; s.Increment() {
			return m, m.applyChange(s)
		}
		return m, nil

	case key.Matches(msg, parameterKeys.Mode):
		m.cfg.Aggregation = m.cfg.Aggregation.Next()
		m.buildSliders()
		m.modified = true
		return m, m.changed()

	case key.Matches(msg, parameterKeys.Policy):
		if next := m.nextPolicy(); next != "" {
			m.cfg.VerdictPolicy = next
			m.modified = true
			return m, m.changed()
		}
		return m, nil

	case key.Matches(msg, parameterKeys.Reset):
		return m, func() tea.Msg { return tuimsg.ResetParametersMsg{} }
	}

	return m, nil
}

func (m *ParametersModel) moveFocus(delta int) {
	next := m.focusedSlider + delta
	if next < 0 || next >= len(m.sliders) {
		return
	}
	m.sliders[m.focusedSlider].SetFocused(false)
	m.focusedSlider = next
	m.sliders[m.focusedSlider].SetFocused(true)
}

func (m *ParametersModel) nextPolicy() string {
	if len(m.policies) == 0 {
		return ""
	}
	for i, name := range m.policies {
		if name == m.cfg.VerdictPolicy {
			return m.policies[(i+1)%len(m.policies)]
		}
	}
	return m.policies[0]
}

// applyChange writes the slider that moved back into the configuration.
// Other fields keep their loaded values even when they lie outside the
// slider bounds.
func (m *ParametersModel) applyChange(s *components.ParameterSlider) tea.Cmd {
	switch s.Key {
	case KeyHorizon:
		m.cfg.HorizonYears = int(s.Value)
	case KeyInitialResource:
		m.cfg.InitialResource = s.Value
	case KeyInitialDesire:
		m.cfg.InitialDesire = s.Value
	case KeyInitialMaturity:
		m.cfg.InitialMaturity = s.Value
	case KeyDesireGrowth:
		m.cfg.DesireGrowthRate = s.Value
	case KeyResourceGrowth:
		m.cfg.ResourceGrowthRate = s.Value
	default:
		name, _ := strings.CutPrefix(s.Key, "maturity_components.")
		for i, n := range domain.ComponentNames {
			if n == name {
				m.cfg.Components.Set(i, s.Value)
			}
		}
	}
	m.modified = true
	return m.changed()
}

// field returns the configured value behind a slider key with its range
func (m *ParametersModel) field(key string) (float64, config.Range, bool) {
	r := m.ranges
	switch key {
	case KeyHorizon:
		return float64(m.cfg.HorizonYears), r.HorizonYears, true
	case KeyInitialResource:
		return m.cfg.InitialResource, r.InitialResource, true
	case KeyInitialDesire:
		return m.cfg.InitialDesire, r.InitialDesire, true
	case KeyInitialMaturity:
		return m.cfg.InitialMaturity, r.InitialMaturity, true
	case KeyDesireGrowth:
		return m.cfg.DesireGrowthRate, r.DesireGrowthRate, true
	case KeyResourceGrowth:
		return m.cfg.ResourceGrowthRate, r.ResourceGrowthRate, true
	}
	name, _ := strings.CutPrefix(key, "maturity_components.")
	for i, n := range domain.ComponentNames {
		if n == name {
			return m.cfg.Components.Values()[i], r.Component, true
		}
	}
	return 0, config.Range{}, false
}

func (m *ParametersModel) changed() tea.Cmd {
	cfg := m.cfg
	return func() tea.Msg {
		return tuimsg.ParametersChangedMsg{Config: cfg}
	}
}

// View renders the parameters scene
func (m *ParametersModel) View() string {
	if len(m.sliders) == 0 {
		return "No configuration loaded."
	}

	title := tuistyles.TitleStyle.Render("Parameters")
	mode := tuistyles.SubtitleStyle.Render(fmt.Sprintf("Maturity: %s  •  Policy: %s",
		m.cfg.Aggregation, m.cfg.VerdictPolicy))

	rows := make([]string, 0, len(m.sliders))
	for _, s := range m.sliders {
		rows = append(rows, s.RenderCompact(sliderLabelWidth))
	}

	container := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(tuistyles.ColorBorder).
		Padding(0, 1)

	focused := m.sliders[m.focusedSlider]
	detail := focused.RenderDetail(detailBarWidth)
	if v, r, ok := m.field(focused.Key); ok && !r.Contains(v) {
		detail += "\n" + tuistyles.ErrorStyle.Render(
			fmt.Sprintf("Configured value %g is outside the slider range.", v))
	}
	detail = container.Render(detail)

	parts := []string{title, mode, container.Render(strings.Join(rows, "\n")), detail}
	if m.modified {
		parts = append(parts, tuistyles.InfoStyle.Render("Modified • r to reset"))
	}
	parts = append(parts, renderParameterHelp())

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// renderParameterHelp renders keyboard shortcuts
func renderParameterHelp() string {
	pairs := [][2]string{
		{"↑↓", "select"},
		{"←→", "adjust"},
		{"a", "maturity mode"},
		{"v", "policy"},
		{"r", "reset"},
	}
	items := make([]string, 0, len(pairs))
	for _, p := range pairs {
		items = append(items, tuistyles.HelpKeyStyle.Render(p[0])+" "+tuistyles.HelpDescStyle.Render(p[1]))
	}
	return strings.Join(items, "  ")
}
