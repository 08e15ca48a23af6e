package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Color constants
const (
	ColorActive   = "170" // Purple/magenta for active elements
	ColorInactive = "240" // Gray for inactive elements
	ColorSelected = "236" // Dark gray for background selection
	ColorNormal   = "245" // Light gray for normal text
	ColorDim      = "241" // Dimmer gray
	ColorWarning  = "214" // Orange/yellow for warnings and changes
	ColorDanger   = "196" // Red for dangerous actions and errors
	ColorSuccess  = "28"  // Green for new records
	ColorWhite    = "255" // White
	ColorBorder   = "243" // Border gray
)

// Common styles
var (
	PanelTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorActive))

	SelectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorActive)).
			Background(lipgloss.Color(ColorSelected)).
			Bold(true)

	NormalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorNormal))

	DimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDim))

	// Card status styles
	NewCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSuccess))

	ChangedCardStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorWarning))

	DeletedCardStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorDim)).
				Strikethrough(true)

	EditingCardStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorActive)).
				Bold(true)

	ErrorMarkerStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorDanger)).
				Bold(true)

	DraggingCardStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorWhite)).
				Background(lipgloss.Color(ColorInactive)).
				Bold(true)

	// Gap styles
	GapStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorInactive))

	GapOverStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorActive)).
			Bold(true)

	// Field editor styles
	FieldLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDim)).
			PaddingLeft(4)

	FieldErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDanger)).
			PaddingLeft(4)

	// Footer styles
	HelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDim))

	StatusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorWarning))
)
