// Package tuistyles holds the palette and lipgloss styles shared by the TUI,
// its components and the chart formatter.
package tuistyles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/sustainsim/internal/domain"
)

// Colors
var (
	ColorPrimary   = lipgloss.Color("#4FB286")
	ColorSecondary = lipgloss.Color("#3C896D")
	ColorAccent    = lipgloss.Color("#F2C14E")
	ColorSuccess   = lipgloss.Color("#5FD068")
	ColorWarning   = lipgloss.Color("#F78154")
	ColorDanger    = lipgloss.Color("#E5484D")
	ColorInfo      = lipgloss.Color("#5DA9E9")

	ColorBackground = lipgloss.Color("#1B1F23")
	ColorForeground = lipgloss.Color("#E6EDF3")
	ColorMuted      = lipgloss.Color("#7D8590")
	ColorBorder     = lipgloss.Color("#30363D")

	ColorChartLine1 = lipgloss.Color("#5FD068")
	ColorChartLine2 = lipgloss.Color("#E5484D")
	ColorChartLine3 = lipgloss.Color("#5DA9E9")
	ColorChartLine4 = lipgloss.Color("#F2C14E")
)

// Base styles
var (
	AppStyle = lipgloss.NewStyle().Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(ColorForeground).
			Background(ColorBorder).
			Padding(0, 1)

	StatusKeyStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(1, 2)

	ActiveBorderStyle = BorderStyle.
				BorderForeground(ColorPrimary)

	SelectedItemStyle = lipgloss.NewStyle().
				Foreground(ColorAccent).
				Bold(true)

	UnselectedItemStyle = lipgloss.NewStyle().
				Foreground(ColorForeground)

	MetricLabelStyle = lipgloss.NewStyle().
				Foreground(ColorMuted)

	MetricValueStyle = lipgloss.NewStyle().
				Foreground(ColorForeground).
				Bold(true)

	ParameterLabelStyle = lipgloss.NewStyle().
				Foreground(ColorForeground)

	ParameterValueStyle = lipgloss.NewStyle().
				Foreground(ColorSecondary).
				Bold(true)

	SliderTrackStyle = lipgloss.NewStyle().Foreground(ColorBorder)
	SliderThumbStyle = lipgloss.NewStyle().Foreground(ColorPrimary)

	HelpKeyStyle  = lipgloss.NewStyle().Foreground(ColorAccent).Bold(true)
	HelpDescStyle = lipgloss.NewStyle().Foreground(ColorMuted)

	ErrorStyle = lipgloss.NewStyle().Foreground(ColorDanger).Bold(true)
	InfoStyle  = lipgloss.NewStyle().Foreground(ColorInfo)

	TableHeaderStyle = lipgloss.NewStyle().
				Foreground(ColorPrimary).
				Bold(true)

	TableCellStyle = lipgloss.NewStyle().
			Foreground(ColorForeground)

	TableHighlightStyle = lipgloss.NewStyle().
				Foreground(ColorBackground).
				Background(ColorAccent).
				Bold(true)
)

// ToneColor maps a verdict tone onto the palette
func ToneColor(t domain.Tone) lipgloss.Color {
	switch t {
	case domain.TonePositive:
		return ColorSuccess
	case domain.ToneCaution:
		return ColorWarning
	default:
		return ColorDanger
	}
}

// VerdictStyle returns the bold style a verdict label is painted with
func VerdictStyle(t domain.Tone) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ToneColor(t)).Bold(true)
}

// ToneIndicator returns a one-character marker for a tone
func ToneIndicator(t domain.Tone) string {
	switch t {
	case domain.TonePositive:
		return "▲"
	case domain.ToneCaution:
		return "◆"
	default:
		return "▼"
	}
}
