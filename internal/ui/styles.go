package ui

import "github.com/charmbracelet/lipgloss"

var (
	ColorCyan     = lipgloss.Color("#00FFFF")
	ColorGreen    = lipgloss.Color("#00FF00")
	ColorYellow   = lipgloss.Color("#FFFF00")
	ColorRed      = lipgloss.Color("#FF0000")
	ColorWhite    = lipgloss.Color("#FFFFFF")
	ColorDarkGray = lipgloss.Color("8")
)

var (
	hashStyle        = lipgloss.NewStyle().Foreground(ColorYellow)
	ownAuthorStyle   = lipgloss.NewStyle().Foreground(ColorGreen)
	otherAuthorStyle = lipgloss.NewStyle().Foreground(ColorRed)
	labelStyle       = lipgloss.NewStyle().Foreground(ColorCyan).Bold(true)
	dimStyle         = lipgloss.NewStyle().Foreground(ColorDarkGray)
)

// Label renders a bold cyan label, used for branch names in headers.
func Label(s string) string {
	return labelStyle.Render(s)
}

// Dim renders de-emphasized helper text.
func Dim(s string) string {
	return dimStyle.Render(s)
}
