package scenes

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/sgfin/internal/domain"
	"github.com/rgehrsitz/sgfin/internal/tui/tuimsg"
	"github.com/rgehrsitz/sgfin/internal/tui/tuistyles"
)

// FormModel edits the inputs of one calculator, one text input per schema
// field.
type FormModel struct {
	calculator domain.CalculatorID
	fields     []domain.InputField
	inputs     []textinput.Model
	focused    int
	errField   string
	errText    string
	width      int
	height     int
}

// NewFormModel creates an empty form; call SetCalculator before use.
func NewFormModel() *FormModel {
	return &FormModel{}
}

// SetCalculator rebuilds the form for id, keeping nothing from the previous
// calculator.
func (m *FormModel) SetCalculator(id domain.CalculatorID) tea.Cmd {
	m.calculator = id
	m.fields = domain.Schema(id)
	m.inputs = make([]textinput.Model, len(m.fields))
	m.focused = 0
	m.ClearError()

	for i, f := range m.fields {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 32
		ti.Width = 24
		ti.Placeholder = placeholder(f)
		m.inputs[i] = ti
	}
	if len(m.inputs) == 0 {
		return nil
	}
	return m.inputs[0].Focus()
}

func placeholder(f domain.InputField) string {
	switch {
	case len(f.Options) > 0:
		return strings.Join(f.Options, " | ")
	case f.Kind == domain.KindFlag:
		return "yes | no"
	case f.Default != "":
		return f.Default
	case !f.Required:
		return "optional"
	}
	return ""
}

// Calculator returns the calculator being edited.
func (m *FormModel) Calculator() domain.CalculatorID {
	return m.calculator
}

// SetSize updates the scene dimensions
func (m *FormModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetValue fills a field by key.
func (m *FormModel) SetValue(key, value string) {
	for i, f := range m.fields {
		if f.Key == key {
			m.inputs[i].SetValue(value)
			return
		}
	}
}

// Values returns the non-blank field values keyed by schema key.
func (m *FormModel) Values() map[string]string {
	out := make(map[string]string, len(m.inputs))
	for i, f := range m.fields {
		if v := strings.TrimSpace(m.inputs[i].Value()); v != "" {
			out[f.Key] = v
		}
	}
	return out
}

// SetError shows an error banner and moves focus to the offending field.
func (m *FormModel) SetError(err error) tea.Cmd {
	m.errText = err.Error()
	m.errField = ""
	ce, ok := domain.AsCalculationError(err)
	if !ok || ce.Field == "" {
		return nil
	}
	m.errField = ce.Field
	for i, f := range m.fields {
		if f.Key == ce.Field {
			return m.focus(i)
		}
	}
	return nil
}

// ClearError removes the error banner.
func (m *FormModel) ClearError() {
	m.errField = ""
	m.errText = ""
}

// Err returns the text of the error banner.
func (m *FormModel) Err() string {
	return m.errText
}

func (m *FormModel) focus(i int) tea.Cmd {
	if len(m.inputs) == 0 {
		return nil
	}
	m.inputs[m.focused].Blur()
	m.focused = (i + len(m.inputs)) % len(m.inputs)
	return m.inputs[m.focused].Focus()
}

// Update handles messages for the form scene
func (m *FormModel) Update(msg tea.Msg) (*FormModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, key.NewBinding(key.WithKeys("tab", "down"))):
			return m, m.focus(m.focused + 1)

		case key.Matches(keyMsg, key.NewBinding(key.WithKeys("shift+tab", "up"))):
			return m, m.focus(m.focused - 1)

		case key.Matches(keyMsg, key.NewBinding(key.WithKeys("enter", "ctrl+s"))):
			id, values := m.calculator, m.Values()
			return m, func() tea.Msg {
				return tuimsg.CalculateRequestedMsg{Calculator: id, Values: values}
			}
		}
	}

	if len(m.inputs) == 0 {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	return m, cmd
}

// View renders the form
func (m *FormModel) View() string {
	var content strings.Builder

	content.WriteString(tuistyles.SectionStyle.Render(m.calculator.Title()))
	content.WriteString("\n\n")

	for i, f := range m.fields {
		labelStyle := tuistyles.FieldLabelStyle
		if i == m.focused {
			labelStyle = tuistyles.FocusedFieldLabelStyle
		}
		label := f.Label
		if f.Required && f.Default == "" {
			label += " *"
		}
		row := lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), m.inputs[i].View())
		if f.Key == m.errField {
			row += " " + tuistyles.ErrorStyle.Render("✗")
		}
		content.WriteString(row)
		content.WriteString("\n")
	}

	if m.errText != "" {
		content.WriteString("\n")
		content.WriteString(tuistyles.ErrorStyle.Render("Error: " + m.errText))
		content.WriteString("\n")
	}

	content.WriteString("\n")
	content.WriteString(tuistyles.SubtitleStyle.Render("tab/shift+tab to move • enter to calculate • esc to go back"))

	return tuistyles.BorderStyle.Render(content.String())
}
