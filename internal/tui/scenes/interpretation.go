package scenes

import (
	"fmt"
	"strings"

	"github.com/rgehrsitz/sustainsim/internal/output"
	"github.com/rgehrsitz/sustainsim/internal/tui/tuistyles"
	"github.com/rgehrsitz/sustainsim/internal/verdict"
)

// InterpretationModel shows the band table of the active verdict policy
type InterpretationModel struct {
	policy   *verdict.Policy
	score    float64
	hasScore bool
}

// NewInterpretationModel creates a new interpretation scene model
func NewInterpretationModel() *InterpretationModel {
	return &InterpretationModel{}
}

// SetPolicy selects the policy to tabulate
func (m *InterpretationModel) SetPolicy(p verdict.Policy) {
	m.policy = &p
}

// SetScore marks which band the latest final score fell into
func (m *InterpretationModel) SetScore(score float64) {
	m.score = score
	m.hasScore = true
}

// ActiveRow returns the table row of the latest score, or -1 when unknown
func (m *InterpretationModel) ActiveRow() int {
	if m.policy == nil || !m.hasScore {
		return -1
	}
	if i := m.policy.BandIndex(m.score); i >= 0 {
		return i
	}
	return len(m.policy.Bands)
}

// View renders the interpretation page
func (m *InterpretationModel) View() string {
	if m.policy == nil {
		return tuistyles.InfoStyle.Render("No policy selected.")
	}
	p := *m.policy

	var b strings.Builder
	b.WriteString(tuistyles.TitleStyle.Render("Score interpretation: " + p.Name))
	b.WriteString("\n")
	if p.Description != "" {
		b.WriteString(tuistyles.SubtitleStyle.Render(p.Description))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	header := fmt.Sprintf("  %-22s  %-24s  %s", "RANGE", "VERDICT", "MEANING")
	b.WriteString(tuistyles.TableHeaderStyle.Render(header))
	b.WriteString("\n")

	active := m.ActiveRow()
	for i := 0; i <= len(p.Bands); i++ {
		v := p.Floor
		if i < len(p.Bands) {
			v = p.Bands[i].Verdict
		}

		marker := "  "
		if i == active {
			marker = tuistyles.SelectedItemStyle.Render("▸ ")
		}
		label := tuistyles.VerdictStyle(v.Tone).Render(fmt.Sprintf("%-24s", v.Label))
		rangeText := tuistyles.TableCellStyle.Render(fmt.Sprintf("%-22s", p.RangeLabel(i)))
		b.WriteString(marker + rangeText + "  " + label + "  " + tuistyles.TableCellStyle.Render(v.Description))
		b.WriteString("\n")
	}

	if m.hasScore {
		b.WriteString("\n")
		b.WriteString(tuistyles.SubtitleStyle.Render("Latest final score: " + output.FormatFixed(m.score, 2)))
	}
	b.WriteString("\n")
	b.WriteString(tuistyles.SubtitleStyle.Render("Press v on the model page to switch policy."))

	return b.String()
}
