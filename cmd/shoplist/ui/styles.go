package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	accent = lipgloss.Color("#8BC34A")
	muted  = lipgloss.Color("#8a94a6")
	danger = lipgloss.Color("#e53935")

	titleStyle    = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	subtitleStyle = lipgloss.NewStyle().Foreground(muted)
	labelStyle    = lipgloss.NewStyle().Width(12)
	focusedLabel  = labelStyle.Foreground(accent).Bold(true)
	errorStyle    = lipgloss.NewStyle().Foreground(danger)
	statusStyle   = lipgloss.NewStyle().Foreground(muted).Italic(true)
	cursorStyle   = lipgloss.NewStyle().Foreground(accent).Bold(true)
	doneStyle     = lipgloss.NewStyle().Foreground(muted).Strikethrough(true)
	qtyStyle      = lipgloss.NewStyle().Foreground(muted)
	barFull       = lipgloss.NewStyle().Foreground(accent)
	barEmpty      = lipgloss.NewStyle().Foreground(muted)
)

const barWidth = 30

// progressBar draws percent (0-100) as a fixed width bar.
func progressBar(percent int) string {
	filled := percent * barWidth / 100
	return barFull.Render(strings.Repeat("█", filled)) + barEmpty.Render(strings.Repeat("░", barWidth-filled))
}
