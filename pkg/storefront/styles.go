package storefront

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette. The multiselect package mirrors these values for its
// exported styles.
var (
	primaryColor   = lipgloss.Color("212") // pink, brand accent
	secondaryColor = lipgloss.Color("141") // purple
	warningColor   = lipgloss.Color("214") // orange
	cyanColor      = lipgloss.Color("45")  // cyan
	successColor   = lipgloss.Color("42")  // green
	errorColor     = lipgloss.Color("196") // red
	mutedColor     = lipgloss.Color("241") // gray
)

// Chrome styles: title bar, view tabs, hints and the status line.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	tabStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Padding(0, 1)

	tabActiveStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("237")).
			Padding(0, 1)

	subtleStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	statusStyle = lipgloss.NewStyle().
			Foreground(successColor)

	statusErrorStyle = lipgloss.NewStyle().
				Foreground(errorColor).
				Bold(true)
)

// Content styles shared by the views.
var (
	sectionTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(secondaryColor)

	labelStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	priceStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(successColor)

	brandStyle = lipgloss.NewStyle().
			Foreground(cyanColor)

	selectedRowStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("237")).
				Foreground(lipgloss.Color("255")).
				Bold(true)

	timestampStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	detailBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	errorBannerStyle = lipgloss.NewStyle().
				Foreground(errorColor).
				Bold(true)

	successBannerStyle = lipgloss.NewStyle().
				Foreground(successColor).
				Bold(true)
)

// highlightRow pads content to width and applies the selected-row
// background.
func highlightRow(content string, width int) string {
	w := lipgloss.Width(content)
	if w < width {
		content += strings.Repeat(" ", width-w)
	}
	return selectedRowStyle.Render(content)
}
