package tui

import (
	"sort"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/formdeck/formdeck-cli/pkg/models"
)

// FormEditorModel is the expanded edit form for one card: a text input
// per field, cycled with tab/shift+tab, with the record's validation
// errors shown under their fields.
type FormEditorModel struct {
	formID     int
	names      []string
	inputs     []textinput.Model
	errors     map[string][]models.FieldError
	focusIndex int
}

// NewFormEditor builds an editor pre-filled with the record's current
// values. Field order is alphabetical so it is stable across sessions.
func NewFormEditor(record models.FormRecord) *FormEditorModel {
	names := make([]string, 0, len(record.Fields))
	for name := range record.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	m := &FormEditorModel{
		formID: record.ID,
		names:  names,
		inputs: make([]textinput.Model, len(names)),
		errors: record.Errors,
	}

	for i, name := range names {
		ti := textinput.New()
		ti.SetValue(record.Fields[name])
		ti.CharLimit = 1024
		ti.Width = 48
		ti.Prompt = ""
		m.inputs[i] = ti
	}
	m.applyFocus()

	return m
}

// FormID returns the id of the record being edited.
func (m *FormEditorModel) FormID() int {
	return m.formID
}

// Values harvests the editor's current values back into a field mapping.
func (m *FormEditorModel) Values() map[string]string {
	values := make(map[string]string, len(m.names))
	for i, name := range m.names {
		values[name] = m.inputs[i].Value()
	}
	return values
}

// Update routes a key to the focused input, handling field cycling.
func (m *FormEditorModel) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "tab", "down":
			m.moveFocus(1)
			return nil
		case "shift+tab", "up":
			m.moveFocus(-1)
			return nil
		}
	}

	if m.focusIndex < 0 || m.focusIndex >= len(m.inputs) {
		return nil
	}
	var cmd tea.Cmd
	m.inputs[m.focusIndex], cmd = m.inputs[m.focusIndex].Update(msg)
	return cmd
}

func (m *FormEditorModel) moveFocus(delta int) {
	if len(m.inputs) == 0 {
		return
	}
	m.focusIndex = (m.focusIndex + delta + len(m.inputs)) % len(m.inputs)
	m.applyFocus()
}

func (m *FormEditorModel) applyFocus() {
	for i := range m.inputs {
		if i == m.focusIndex {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
}

// View renders the field list with labels, inputs and per-field errors.
func (m *FormEditorModel) View() string {
	var lines []string
	for i, name := range m.names {
		lines = append(lines, FieldLabelStyle.Render(name))
		lines = append(lines, "    "+m.inputs[i].View())
		for _, fieldErr := range m.errors[name] {
			lines = append(lines, FieldErrorStyle.Render("! "+fieldErr.Message))
		}
	}
	out := ""
	for i, line := range lines {
		if i > 0 {
			out += "\n"
		}
		out += line
	}
	return out
}
