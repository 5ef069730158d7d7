package ui

import "github.com/charmbracelet/lipgloss"

var (
	// TitleStyle uses ANSI 6 (cyan), readable on both light and dark terminals
	TitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true).MarginBottom(1)

	// UsageStyle is for usage lines and command names
	UsageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))

	// DescStyle dims descriptions
	DescStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	FlagStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)
