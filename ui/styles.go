// Package ui provides the interactive hosts for VPN Launcher.
// This file contains the terminal styles of the picker.
package ui

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent    = lipgloss.AdaptiveColor{Light: "#1565C0", Dark: "#64B5F6"}
	colorConnected = lipgloss.AdaptiveColor{Light: "#2E7D32", Dark: "#81C784"}
	colorError     = lipgloss.AdaptiveColor{Light: "#C62828", Dark: "#E57373"}
	colorMuted     = lipgloss.AdaptiveColor{Light: "#757575", Dark: "#9E9E9E"}

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent).
			MarginBottom(1)

	itemStyle = lipgloss.NewStyle().
			PaddingLeft(2)

	selectedItemStyle = lipgloss.NewStyle().
				PaddingLeft(1).
				Border(lipgloss.NormalBorder(), false, false, false, true).
				BorderForeground(colorAccent).
				Foreground(colorAccent).
				Bold(true)

	subtextStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			PaddingLeft(4)

	connectedBadge = lipgloss.NewStyle().
			Foreground(colorConnected).
			Render("●")

	disconnectedBadge = lipgloss.NewStyle().
				Foreground(colorMuted).
				Render("○")

	statusStyle = lipgloss.NewStyle().
			MarginTop(1).
			Foreground(colorConnected)

	errorStyle = lipgloss.NewStyle().
			MarginTop(1).
			Foreground(colorError)

	helpStyle = lipgloss.NewStyle().
			MarginTop(1).
			Foreground(colorMuted)
)
