package ui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	colorCyan   = lipgloss.Color("#8BE9FD")
	colorWhite  = lipgloss.Color("#F8F8F2")
	colorGray   = lipgloss.Color("#6272A4")
	colorPanel  = lipgloss.Color("#44475A")
	colorGreen  = lipgloss.Color("#50FA7B")

	// canvasBackground fills device pixels not covered by any unit.
	canvasBackground = "#282a36"
	// hoverRingColor outlines the hovered unit on the overlay layer.
	hoverRingColor = "#f8f8f2"

	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	labelStyle  = lipgloss.NewStyle().Foreground(colorGray)
	valueStyle  = lipgloss.NewStyle().Foreground(colorWhite)
	helpStyle   = lipgloss.NewStyle().Foreground(colorGray)
	linkStyle   = lipgloss.NewStyle().Foreground(colorGreen)
	promptStyle = lipgloss.NewStyle().Foreground(colorCyan).Bold(true)

	tooltipBackground = colorPanel
	tooltipText       = lipgloss.NewStyle().Foreground(colorWhite).Background(tooltipBackground)
	tooltipTitle      = lipgloss.NewStyle().Foreground(colorWhite).Background(tooltipBackground).Bold(true)
	tooltipDim        = lipgloss.NewStyle().Foreground(colorGray).Background(tooltipBackground)
	tooltipPad        = lipgloss.NewStyle().Background(tooltipBackground)
	arrowStyle        = lipgloss.NewStyle().Foreground(colorPanel)
)
