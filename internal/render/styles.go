// ============================================================================
// rechenwerk - Numeric formula library
// ============================================================================
//
// Package:     render
// Description: Styles for the terminal table view
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package render

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/msto63/rechenwerk/pkg/core/health"
)

// Color palette shared with the terminal UI
var (
	ColorPrimary = lipgloss.Color("#8B5CF6") // Violet
	ColorSuccess = lipgloss.Color("#10B981") // Emerald
	ColorWarning = lipgloss.Color("#F59E0B") // Amber
	ColorError   = lipgloss.Color("#EF4444") // Red
	ColorMuted   = lipgloss.Color("#94A3B8") // Slate 400
	ColorDimmed  = lipgloss.Color("#64748B") // Slate 500
)

// Styles groups the lipgloss styles of the table view. Without color every
// style renders plain text.
type Styles struct {
	Title   lipgloss.Style
	Header  lipgloss.Style
	Key     lipgloss.Style
	Value   lipgloss.Style
	Muted   lipgloss.Style
	OK      lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
}

// NewStyles creates the styles for renderer
func NewStyles(renderer *lipgloss.Renderer, color bool) Styles {
	plain := renderer.NewStyle()
	if !color {
		return Styles{
			Title:   plain,
			Header:  plain,
			Key:     plain,
			Value:   plain,
			Muted:   plain,
			OK:      plain,
			Warning: plain,
			Error:   plain,
		}
	}
	return Styles{
		Title: plain.
			Foreground(ColorPrimary).
			Bold(true),
		Header: plain.
			Foreground(ColorMuted).
			Bold(true),
		Key: plain.
			Foreground(ColorMuted),
		Value: plain,
		Muted: plain.
			Foreground(ColorDimmed).
			Italic(true),
		OK: plain.
			Foreground(ColorSuccess),
		Warning: plain.
			Foreground(ColorWarning),
		Error: plain.
			Foreground(ColorError).
			Bold(true),
	}
}

// Status returns the style for an outcome status
func (s Styles) Status(status string) lipgloss.Style {
	switch status {
	case "ok":
		return s.OK
	case "not_computable", "invalid":
		return s.Warning
	default:
		return s.Error
	}
}

// Health returns the style for a self check status
func (s Styles) Health(status health.Status) lipgloss.Style {
	switch status {
	case health.StatusHealthy:
		return s.OK
	case health.StatusDegraded:
		return s.Warning
	default:
		return s.Error
	}
}
