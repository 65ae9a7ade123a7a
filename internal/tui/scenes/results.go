package scenes

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/sgfin/internal/domain"
	"github.com/rgehrsitz/sgfin/internal/output"
	"github.com/rgehrsitz/sgfin/internal/report"
	"github.com/rgehrsitz/sgfin/internal/tui/components"
	"github.com/rgehrsitz/sgfin/internal/tui/tuistyles"
)

// ResultsModel represents the results display scene
type ResultsModel struct {
	title   string
	report  *domain.Report
	summary report.ValidationSummary
	width   int
	height  int
}

// NewResultsModel creates a new results scene model
func NewResultsModel() *ResultsModel {
	return &ResultsModel{}
}

// SetResults updates the results to display
func (m *ResultsModel) SetResults(title string, r *domain.Report, summary report.ValidationSummary) {
	m.title = title
	m.report = r
	m.summary = summary
}

// Report returns the report on display.
func (m *ResultsModel) Report() *domain.Report {
	return m.report
}

// SetSize updates the scene dimensions
func (m *ResultsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles messages for the results scene
func (m *ResultsModel) Update(msg tea.Msg) (*ResultsModel, tea.Cmd) {
	return m, nil
}

func (m *ResultsModel) columns() int {
	if m.width >= 100 {
		return 3
	}
	if m.width >= 66 {
		return 2
	}
	return 1
}

// View renders the results scene
func (m *ResultsModel) View() string {
	if m.report == nil || len(m.report.Entries) == 0 {
		return tuistyles.BorderStyle.Render("No results to display.\n\nChoose a calculator from the home screen first.\n\nPress ESC to go back.")
	}

	sections := []string{
		lipgloss.JoinVertical(lipgloss.Left,
			tuistyles.TitleStyle.Render(m.title),
			tuistyles.SubtitleStyle.Render(fmt.Sprintf("Report %s", m.report.ID)),
		),
	}

	for _, e := range m.report.Entries {
		sections = append(sections, "", m.renderEntry(e))
	}

	if notes := m.renderNotes(); notes != "" {
		sections = append(sections, "", notes)
	}
	sections = append(sections, "", tuistyles.SubtitleStyle.Render("esc to go back • h for home"))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *ResultsModel) renderEntry(e domain.ReportEntry) string {
	title := e.Calculator().Title()
	if e.Label != "" {
		title += " - " + e.Label
	}

	headline, hasHeadline := output.Headline(e.Result)
	var cards []*components.MetricCard
	for _, f := range e.Result.Fields() {
		c := components.FieldCard(f)
		if hasHeadline && f.Key == headline.Key {
			c.WithHighlight(true)
		}
		cards = append(cards, c)
	}

	parts := []string{
		tuistyles.SectionStyle.Render(title),
		components.MetricGrid(cards, m.columns()),
	}
	if br, ok := e.Result.(domain.BracketedResult); ok && len(br.Lines()) > 0 {
		parts = append(parts, "", components.BracketTable(br.Lines()))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m *ResultsModel) renderNotes() string {
	var b strings.Builder
	for _, e := range m.summary.Errors {
		b.WriteString(tuistyles.ErrorStyle.Render("✗ " + e))
		b.WriteString("\n")
	}
	for _, w := range m.summary.Warnings {
		b.WriteString(tuistyles.WarningStyle.Render("! " + w))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
