package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rgehrsitz/sustainsim/internal/tui/tuistyles"
)

// ParameterSlider displays an adjustable parameter with visual slider
type ParameterSlider struct {
	Key         string // identifies the parameter the slider drives
	Label       string
	Value       float64
	Min         float64
	Max         float64
	Step        float64
	Unit        string // e.g., " years"
	Format      string // e.g., "%.2f", "%.0f"
	Width       int    // Total width of slider bar
	IsFocused   bool
	Description string
}

// NewParameterSlider creates a new parameter slider. The starting value is
// clamped into [min, max].
func NewParameterSlider(key, label string, value, min, max, step float64) *ParameterSlider {
	p := &ParameterSlider{
		Key:    key,
		Label:  label,
		Min:    min,
		Max:    max,
		Step:   step,
		Format: "%.2f",
		Width:  30,
	}
	p.SetValue(value)
	return p
}

// WithUnit sets the unit suffix
func (p *ParameterSlider) WithUnit(unit string) *ParameterSlider {
	p.Unit = unit
	return p
}

// WithFormat sets the value format string
func (p *ParameterSlider) WithFormat(format string) *ParameterSlider {
	p.Format = format
	return p
}

// WithWidth sets the slider width
func (p *ParameterSlider) WithWidth(width int) *ParameterSlider {
	p.Width = width
	return p
}

// SetFocused sets the focus state
func (p *ParameterSlider) SetFocused(focused bool) *ParameterSlider {
	p.IsFocused = focused
	return p
}

// WithDescription adds a description/help text
func (p *ParameterSlider) WithDescription(desc string) *ParameterSlider {
	p.Description = desc
	return p
}

// Increment increases the value by step and reports whether it moved
func (p *ParameterSlider) Increment() bool {
	return p.nudge(1)
}

// Decrement decreases the value by step and reports whether it moved
func (p *ParameterSlider) Decrement() bool {
	return p.nudge(-1)
}

// nudge moves one step along the grid anchored at Min, so repeated
// presses land on 0.1, 0.2, ... instead of accumulating float error.
func (p *ParameterSlider) nudge(dir float64) bool {
	if p.Step <= 0 {
		return false
	}
	before := p.Value
	steps := math.Round((p.Value-p.Min)/p.Step) + dir
	p.SetValue(p.Min + steps*p.Step)
	return p.Value != before
}

// SetValue sets the value directly, clamping to min/max. Values are rounded
// to 1e-9 to shed binary representation noise.
func (p *ParameterSlider) SetValue(value float64) {
	value = math.Round(value*1e9) / 1e9
	p.Value = math.Max(p.Min, math.Min(p.Max, value))
}

// Percentage returns the value as a percentage of the range
func (p *ParameterSlider) Percentage() float64 {
	if p.Max == p.Min {
		return 0
	}
	return (p.Value - p.Min) / (p.Max - p.Min)
}

// RenderDetail returns a multi-line panel for the focused parameter: label,
// value, a full-width bar, the range and the description
func (p *ParameterSlider) RenderDetail(barWidth int) string {
	label := tuistyles.ParameterLabelStyle.Foreground(tuistyles.ColorPrimary).Render(p.Label)
	value := tuistyles.ParameterValueStyle.Foreground(tuistyles.ColorAccent).Render(p.formatValue(p.Value))

	muted := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted)
	lines := []string{
		label + "  " + value,
		p.renderBar(barWidth),
		muted.Render(fmt.Sprintf("%s  ─  %s  (step %s)",
			p.formatValue(p.Min), p.formatValue(p.Max), fmt.Sprintf(p.Format, p.Step))),
	}
	if p.Description != "" {
		lines = append(lines, muted.Italic(true).Render(p.Description))
	}
	return strings.Join(lines, "\n")
}

func (p *ParameterSlider) formatValue(v float64) string {
	return fmt.Sprintf(p.Format, v) + p.Unit
}

// RenderCompact returns a single-line version with the label padded to
// labelWidth so a column of sliders lines up
func (p *ParameterSlider) RenderCompact(labelWidth int) string {
	valueStr := p.formatValue(p.Value)

	labelStyle := tuistyles.ParameterLabelStyle
	valueStyle := tuistyles.ParameterValueStyle
	marker := "  "

	if p.IsFocused {
		labelStyle = labelStyle.Foreground(tuistyles.ColorPrimary)
		valueStyle = valueStyle.Foreground(tuistyles.ColorAccent)
		marker = tuistyles.SelectedItemStyle.Render("▸ ")
	}

	label := labelStyle.Render(fmt.Sprintf("%-*s", labelWidth, p.Label))
	value := valueStyle.Render(fmt.Sprintf("%-12s", valueStr))

	return marker + label + " " + value + " " + p.renderBar(p.Width)
}

// renderBar draws a width-cell track with the thumb at the current value
func (p *ParameterSlider) renderBar(width int) string {
	filled := int(math.Round(float64(width-1) * p.Percentage()))

	var bar strings.Builder
	bar.WriteString("[")

	thumbStyle := tuistyles.SliderThumbStyle
	trackStyle := tuistyles.SliderTrackStyle

	for i := 0; i < width; i++ {
		if i == filled {
			bar.WriteString(thumbStyle.Render("●"))
		} else if i < filled {
			bar.WriteString(thumbStyle.Render("━"))
		} else {
			bar.WriteString(trackStyle.Render("─"))
		}
	}

	bar.WriteString("]")
	return bar.String()
}
