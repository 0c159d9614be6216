package main

import "github.com/charmbracelet/lipgloss"

type styles struct {
	Title   lipgloss.Style
	Content lipgloss.Style
	Gauge   lipgloss.Style
	Status  lipgloss.Style
	Error   lipgloss.Style
	Help    lipgloss.Style
}

func defaultStyles(r *lipgloss.Renderer) styles {
	return styles{
		Title:   r.NewStyle().Bold(true),
		Content: r.NewStyle().Reverse(true),
		Gauge:   r.NewStyle().Foreground(lipgloss.Color("6")),
		Status:  r.NewStyle().Faint(true),
		Error:   r.NewStyle().Foreground(lipgloss.Color("1")),
		Help:    r.NewStyle().Faint(true),
	}
}
