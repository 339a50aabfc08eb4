package main

import "github.com/charmbracelet/lipgloss"

type Style struct {
	Title            lipgloss.Style
	UserMessage      lipgloss.Style
	AssistantMessage lipgloss.Style
	ErrorLine        lipgloss.Style
	Waiting          lipgloss.Style
	Input            lipgloss.Style
	Help             lipgloss.Style
}

type BorderColors struct {
	User      string
	Assistant string
}

func DefaultStyles() *Style {
	lightModeColors := BorderColors{
		User:      "#FFB6C1", // light pink
		Assistant: "#ADD8E6", // light blue
	}

	darkModeColors := BorderColors{
		User:      "#DD7090",
		Assistant: "#7090DD",
	}

	return &Style{
		Title: lipgloss.NewStyle().Bold(true).Padding(0, 1),
		UserMessage: lipgloss.NewStyle().Border(lipgloss.NormalBorder()).
			Padding(0, 1).
			BorderForeground(lipgloss.AdaptiveColor{
				Light: lightModeColors.User,
				Dark:  darkModeColors.User,
			}),
		AssistantMessage: lipgloss.NewStyle().Border(lipgloss.NormalBorder()).
			Padding(0, 1).
			BorderForeground(lipgloss.AdaptiveColor{
				Light: lightModeColors.Assistant,
				Dark:  darkModeColors.Assistant,
			}),
		ErrorLine: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Waiting:   lipgloss.NewStyle().Faint(true),
		Input: lipgloss.NewStyle().Border(lipgloss.NormalBorder()).
			Padding(0, 1),
		Help: lipgloss.NewStyle().Faint(true),
	}
}
