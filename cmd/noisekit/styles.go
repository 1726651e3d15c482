package main

import "github.com/charmbracelet/lipgloss"

// Height ramp for the heatmap render, low terrain to high.
var rampStyles = []lipgloss.Style{
	lipgloss.NewStyle().Foreground(lipgloss.Color("#1B4F72")), // deep water
	lipgloss.NewStyle().Foreground(lipgloss.Color("#2E86C1")), // shallow water
	lipgloss.NewStyle().Foreground(lipgloss.Color("#F7DC6F")), // sand
	lipgloss.NewStyle().Foreground(lipgloss.Color("#58D68D")), // grass
	lipgloss.NewStyle().Foreground(lipgloss.Color("#1E8449")), // forest
	lipgloss.NewStyle().Foreground(lipgloss.Color("#839192")), // rock
	lipgloss.NewStyle().Foreground(lipgloss.Color("#FDFEFE")), // snow
}

// asciiRamp is the monochrome fallback, one rune per band.
const asciiRamp = " .:-=+*#%@"
