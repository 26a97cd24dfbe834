package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/quillforge/sidekick/pkg/models"
)

var (
	activePaneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("205"))

	inactivePaneStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("240"))

	paneTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Padding(0, 1)

	statusBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("62")).
			Foreground(lipgloss.Color("230")).
			Padding(0, 1)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	userBubbleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	assistantBubbleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("252")).
				Padding(0, 1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

var stageStatusColors = map[models.StageStatus]lipgloss.Color{
	models.StagePending:   lipgloss.Color("240"),
	models.StageActive:    lipgloss.Color("214"),
	models.StageCompleted: lipgloss.Color("42"),
	models.StageError:     lipgloss.Color("196"),
}

var severityColors = map[models.Severity]lipgloss.Color{
	models.SeverityLow:    lipgloss.Color("42"),
	models.SeverityMedium: lipgloss.Color("214"),
	models.SeverityHigh:   lipgloss.Color("196"),
}

// stageGlyph renders the one-character badge for a stage status.
func stageGlyph(status models.StageStatus) string {
	glyph := "○"
	switch status {
	case models.StageActive:
		glyph = "◐"
	case models.StageCompleted:
		glyph = "●"
	case models.StageError:
		glyph = "✗"
	}
	return lipgloss.NewStyle().Foreground(stageStatusColors[status]).Render(glyph)
}

// priorityBadge renders an action's priority marker.
func priorityBadge(p models.Priority) string {
	switch p {
	case models.PriorityHigh:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render("!")
	case models.PriorityMedium:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Render("·")
	default:
		return dimStyle.Render("·")
	}
}

// progressBar renders a fixed-width percent bar.
func progressBar(width int, ratio float64) string {
	if width < 2 {
		return ""
	}
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	filled := int(ratio * float64(width))
	if filled > width {
		filled = width
	}
	done := lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Render(strings.Repeat("█", filled))
	rest := dimStyle.Render(strings.Repeat("░", width-filled))
	return done + rest
}
