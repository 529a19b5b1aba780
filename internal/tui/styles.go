package tui

import "github.com/charmbracelet/lipgloss"

// Palette. Adaptive colors keep the menu readable on light terminals.
var (
	colorAccent = lipgloss.AdaptiveColor{Light: "#1B7F5B", Dark: "#7FD1AE"}
	colorFrame  = lipgloss.AdaptiveColor{Light: "#6B7F78", Dark: "#4F6A61"}
	colorBad    = lipgloss.AdaptiveColor{Light: "#C0392B", Dark: "#F1786B"}
	colorGood   = lipgloss.AdaptiveColor{Light: "#1E8449", Dark: "#58D68D"}
	colorWarn   = lipgloss.AdaptiveColor{Light: "#B9770E", Dark: "#F5C26B"}
	colorMuted  = lipgloss.AdaptiveColor{Light: "#8A8A8A", Dark: "#7A7A7A"}
)

var (
	StyleApp = lipgloss.NewStyle().Margin(1, 2)

	StyleTopBar = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(colorFrame).
			MarginBottom(1)

	StyleTitle    = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	StyleSubtitle = lipgloss.NewStyle().Foreground(colorFrame)

	StyleHeader = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true).
			Underline(true)

	StyleStatusGood = lipgloss.NewStyle().Foreground(colorGood)
	StyleStatusBad  = lipgloss.NewStyle().Foreground(colorBad).Bold(true)
	StyleStatusWarn = lipgloss.NewStyle().Foreground(colorWarn).Bold(true)

	// Panes share one shape and differ by border colour.
	pane            = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).MarginRight(1)
	StyleCard       = pane.BorderForeground(colorFrame)
	StyleActiveCard = pane.BorderForeground(colorAccent)
	StyleWarnCard   = pane.BorderForeground(colorWarn)

	StyleItem         = lipgloss.NewStyle().PaddingLeft(2)
	StyleItemSelected = lipgloss.NewStyle().
				PaddingLeft(1).
				Border(lipgloss.ThickBorder(), false, false, false, true).
				BorderForeground(colorAccent).
				Foreground(colorAccent).
				Bold(true)

	// Interfaces the router cannot be configured on.
	StyleUnmanaged = lipgloss.NewStyle().Foreground(colorMuted).Italic(true)

	StyleLabel = lipgloss.NewStyle().Foreground(colorFrame).Bold(true)
	StyleHint  = lipgloss.NewStyle().Foreground(colorMuted)
)
