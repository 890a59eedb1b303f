// Package ui holds the terminal styles shared by the commands.
package ui

import "github.com/charmbracelet/lipgloss"

// Semantic colors, ANSI codes for broad terminal compatibility.
const (
	ColorSuccess lipgloss.Color = "2" // green
	ColorError   lipgloss.Color = "1" // red
	ColorWarning lipgloss.Color = "3" // yellow
	ColorMuted   lipgloss.Color = "8" // gray (bright black)
	ColorAccent  lipgloss.Color = "6" // cyan
)

var (
	successStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	errorStyle   = lipgloss.NewStyle().Foreground(ColorError)
	mutedStyle   = lipgloss.NewStyle().Foreground(ColorMuted)
	headingStyle = lipgloss.NewStyle().Foreground(ColorAccent).Bold(true)
)

// Success renders text in the success color.
func Success(s string) string { return successStyle.Render(s) }

// Error renders text in the error color.
func Error(s string) string { return errorStyle.Render(s) }

// Muted renders de-emphasized text.
func Muted(s string) string { return mutedStyle.Render(s) }

// Heading renders a section heading.
func Heading(s string) string { return headingStyle.Render(s) }
