package cliutil

import "github.com/charmbracelet/lipgloss"

// Styles for pretty output
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F39C12"))

	KeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#3498DB")).
			Bold(true)

	OperatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9B59B6"))

	ValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#2ECC71"))

	DimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7F8C8D"))

	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#2ECC71")).
			Bold(true)
)
