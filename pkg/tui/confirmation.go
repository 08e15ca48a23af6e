package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ConfirmationModel handles an inline confirm prompt. While active it
// captures y/n keys and replaces the owning card's action list.
type ConfirmationModel struct {
	active    bool
	message   string
	onConfirm func() tea.Cmd
	onCancel  func() tea.Cmd
}

// NewConfirmation creates a new confirmation model
func NewConfirmation() *ConfirmationModel {
	return &ConfirmationModel{}
}

// Show activates the confirmation with the given message and callbacks.
func (m *ConfirmationModel) Show(message string, onConfirm, onCancel func() tea.Cmd) {
	m.active = true
	m.message = message
	m.onConfirm = onConfirm
	m.onCancel = onCancel
}

// Hide deactivates the confirmation
func (m *ConfirmationModel) Hide() {
	m.active = false
}

// Active returns whether the confirmation is currently shown
func (m *ConfirmationModel) Active() bool {
	return m.active
}

// Update handles key events for the confirmation
func (m *ConfirmationModel) Update(msg tea.KeyMsg) tea.Cmd {
	if !m.active {
		return nil
	}

	switch msg.String() {
	case "y", "Y":
		m.active = false
		if m.onConfirm != nil {
			return m.onConfirm()
		}
		return nil

	case "n", "N", "esc":
		m.active = false
		if m.onCancel != nil {
			return m.onCancel()
		}
		return nil
	}

	return nil
}

// View renders the confirmation message with its y/n options.
func (m *ConfirmationModel) View() string {
	if !m.active {
		return ""
	}

	yes := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDanger)).Bold(true).Render("y")
	no := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSuccess)).Bold(true).Render("n")
	return fmt.Sprintf("%s (%s/%s)", m.message, yes, no)
}
