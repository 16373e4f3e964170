package tui

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha subset.
const (
	colorRed      lipgloss.Color = "#f38ba8"
	colorPeach    lipgloss.Color = "#fab387"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorLavender lipgloss.Color = "#b4befe"
	colorText     lipgloss.Color = "#cdd6f4"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorSurface1 lipgloss.Color = "#45475a"
	colorBase     lipgloss.Color = "#1e1e2e"
)

var (
	displayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorLavender).
			Foreground(colorText).
			Bold(true).
			Align(lipgloss.Right).
			Padding(0, 1)

	displayErrorStyle = displayStyle.
				BorderForeground(colorRed).
				Foreground(colorRed)

	keyStyle = lipgloss.NewStyle().
			Width(5).
			Align(lipgloss.Center).
			Foreground(colorText).
			Background(colorSurface1).
			Margin(0, 1, 0, 0)

	operatorKeyStyle = keyStyle.Foreground(colorPeach)

	pressedKeyStyle = keyStyle.
			Foreground(colorBase).
			Background(colorPeach).
			Bold(true)

	blockedKeyStyle = keyStyle.Foreground(colorOverlay0)

	equalsKeyStyle = keyStyle.Foreground(colorGreen)

	helpStyle = lipgloss.NewStyle().Foreground(colorOverlay0)
)
