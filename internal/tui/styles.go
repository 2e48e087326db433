// ============================================================================
// rechenwerk - Numeric formula library
// ============================================================================
//
// Package:     tui
// Description: Styles for the formula browser
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/msto63/rechenwerk/internal/render"
)

// Styles
var (
	// Title styles
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(render.ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(render.ColorMuted).
			Italic(true)

	// Box styles
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(render.ColorDimmed).
			Padding(0, 1)

	FocusedBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(render.ColorPrimary).
			Padding(0, 1)

	// Status styles
	StatusBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#374151")).
			Foreground(lipgloss.Color("#F9FAFB")).
			Padding(0, 1)

	StatusErrorStyle = lipgloss.NewStyle().
				Foreground(render.ColorError)

	// Help style
	HelpStyle = lipgloss.NewStyle().
			Foreground(render.ColorMuted)

	// List item styles
	SelectedItemStyle = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder(), false, false, false, true).
				BorderForeground(render.ColorPrimary).
				Foreground(render.ColorPrimary).
				Bold(true).
				Padding(0, 0, 0, 1)

	ListItemStyle = lipgloss.NewStyle().
			Padding(0, 0, 0, 2)
)

// RenderError renders an error line for the status bar
func RenderError(err string) string {
	return StatusErrorStyle.Render("Error: " + err)
}

// RenderHelp renders the key help line
func RenderHelp(help string) string {
	return HelpStyle.Render(help)
}
