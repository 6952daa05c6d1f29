package tui

import "github.com/charmbracelet/lipgloss"

// Color palette - keeping it minimal and accessible.
var (
	ColorPrimary   = lipgloss.Color("39")  // Blue
	ColorSecondary = lipgloss.Color("245") // Gray
	ColorSuccess   = lipgloss.Color("34")  // Green
	ColorWarning   = lipgloss.Color("214") // Orange
	ColorError     = lipgloss.Color("196") // Red
	ColorMuted     = lipgloss.Color("240") // Dark gray
	ColorHighlight = lipgloss.Color("229") // Pale yellow
)

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Foreground(ColorPrimary)

	CellStyle = lipgloss.NewStyle().
			Padding(0, 1)

	NullStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(ColorMuted)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			MarginTop(1)
)

// Symbols for visual feedback.
const (
	SymbolCheck  = "✓"
	SymbolCross  = "✗"
	SymbolBullet = "•"
	SymbolNull   = "∅"
)
