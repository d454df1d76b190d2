package multiselect

import "github.com/charmbracelet/lipgloss"

// Colors matching the storefront palette in pkg/storefront/styles.go.
var (
	Primary      = lipgloss.Color("212")
	Success      = lipgloss.Color("42")
	Muted        = lipgloss.Color("241")
	BorderNormal = lipgloss.Color("240")
)

// Trigger styles. The trigger is the always-visible line holding the
// selection badges; its border brightens while the control is focused
// or its overlay is open.
var (
	TriggerStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderNormal).
			Padding(0, 1)

	TriggerActiveStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(Primary).
				Padding(0, 1)

	PlaceholderStyle = lipgloss.NewStyle().Foreground(Muted)
)

// Badge styles for the selected-value chips on the trigger line.
var (
	BadgeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("237"))

	BadgeFocusedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("255")).
				Background(Primary).
				Bold(true)
)

// Overlay styles for the dropdown option list.
var (
	OverlayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(0, 1)

	RowNormalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	RowSelectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("255"))

	RowCursorStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("237")).
			Foreground(lipgloss.Color("255")).
			Bold(true)

	CursorStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	CheckStyle = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	FilterStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	MutedTextStyle = lipgloss.NewStyle().Foreground(Muted)
)
