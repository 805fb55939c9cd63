package tui

import "github.com/charmbracelet/lipgloss"

// Styles contains the style definitions for the picker.
type Styles struct {
	Title      lipgloss.Style
	Suggestion lipgloss.Style
	Highlight  lipgloss.Style
	Header     lipgloss.Style
	Entry      lipgloss.Style
	Cursor     lipgloss.Style
	Remove     lipgloss.Style
	Dim        lipgloss.Style
}

// NewStyles creates a new Styles instance with default values.
func NewStyles() *Styles {
	return &Styles{
		Title:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		Suggestion: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Highlight:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Background(lipgloss.Color("238")).Bold(true),
		Header:     lipgloss.NewStyle().Bold(true),
		Entry:      lipgloss.NewStyle(),
		Cursor:     lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Remove:     lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true), // red
		Dim:        lipgloss.NewStyle().Faint(true),
	}
}
