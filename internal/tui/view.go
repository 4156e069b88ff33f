package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the current state of the application
func (m Model) View() string {
	if m.loading {
		return m.renderLoading()
	}

	if m.err != nil {
		return m.renderError()
	}

	var content string
	switch m.currentScene {
	case SceneModel:
		content = m.renderModel()
	case SceneBackground:
		content = m.backgroundModel.View()
	case SceneInterpretation:
		content = m.interpretationModel.View()
	case SceneHelp:
		content = m.renderHelp()
	default:
		content = "Unknown scene"
	}

	return m.renderApp(content)
}

// renderApp wraps content with title bar, status bar, and main container
func (m Model) renderApp(content string) string {
	titleBar := m.renderTitleBar()
	statusBar := m.renderStatusBar()

	// Title (2) + status (1) + padding (1)
	contentHeight := max(m.height-4, 1)

	contentContainer := AppStyle.
		Height(contentHeight).
		Render(content)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		titleBar,
		contentContainer,
		statusBar,
	)
}

// renderTitleBar renders the application title and breadcrumb
func (m Model) renderTitleBar() string {
	title := TitleStyle.Render("Sustainability Simulator")

	breadcrumb := m.currentScene.String()
	if m.config != nil {
		breadcrumb = fmt.Sprintf("%s / preset %s", breadcrumb, m.config.Preset)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		SubtitleStyle.Render(breadcrumb),
	)
}

// renderStatusBar renders the bottom status bar with keyboard shortcuts
func (m Model) renderStatusBar() string {
	shortcuts := []string{
		formatShortcut("1", "model"),
		formatShortcut("2", "background"),
		formatShortcut("3", "interpretation"),
		formatShortcut("?", "help"),
		formatShortcut("q", "quit"),
	}

	statusText := strings.Join(shortcuts, " • ")

	if r := m.Result(); r != nil {
		verdict := VerdictStyle(r.Verdict.Tone).Render(ToneIndicator(r.Verdict.Tone) + " " + r.Verdict.Label)
		width := m.width - lipgloss.Width(statusText) - lipgloss.Width(verdict) - 4
		statusText = statusText + strings.Repeat(" ", max(0, width)) + verdict
	}

	return StatusBarStyle.Width(m.width).Render(statusText)
}

// formatShortcut formats a keyboard shortcut with key and description
func formatShortcut(key, desc string) string {
	return StatusKeyStyle.Render(key) + " " + desc
}

// renderLoading renders a loading message
func (m Model) renderLoading() string {
	return m.renderApp(BorderStyle.Render("⠋ Loading configuration..."))
}

// renderError renders an error message
func (m Model) renderError() string {
	content := ErrorStyle.Render(
		fmt.Sprintf("Error: %s\n\nPress any key to exit...", m.err.Error()),
	)
	return m.renderApp(content)
}

// renderModel places sliders and charts side by side on wide terminals
func (m Model) renderModel() string {
	params := m.parametersModel.View()
	results := m.resultsModel.View()
	if m.width >= sideBySideWidth {
		return lipgloss.JoinHorizontal(lipgloss.Top, params, "  ", results)
	}
	return lipgloss.JoinVertical(lipgloss.Left, params, "", results)
}

// renderHelp renders the help screen
func (m Model) renderHelp() string {
	sections := []struct {
		title string
		keys  [][2]string
	}{
		{"PAGES", [][2]string{
			{"1", "Model: sliders, charts and verdict"},
			{"2", "Background: model equations"},
			{"3", "Interpretation: verdict bands of the active policy"},
			{"tab", "Next page"},
			{"?", "This help"},
			{"esc", "Close help, or back to the model page"},
			{"q/ctrl+c", "Quit"},
		}},
		{"MODEL PAGE", [][2]string{
			{"↑/↓ k/j", "Select parameter"},
			{"←/→ h/l", "Adjust parameter (re-runs the simulation)"},
			{"a", "Cycle maturity aggregation"},
			{"v", "Cycle verdict policy"},
			{"r", "Reset to the loaded configuration"},
		}},
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render("Keyboard shortcuts"))
	b.WriteString("\n")
	for _, s := range sections {
		b.WriteString("\n")
		b.WriteString(SubtitleStyle.Render(s.title))
		b.WriteString("\n")
		for _, k := range s.keys {
			b.WriteString("  " + HelpKeyStyle.Render(fmt.Sprintf("%-10s", k[0])) + " " + HelpDescStyle.Render(k[1]) + "\n")
		}
	}

	return BorderStyle.Render(strings.TrimRight(b.String(), "\n"))
}
