package tui

import (
	"charm.land/lipgloss/v2"

	"github.com/raphi011/choose/internal/ui/styles"
)

// Style functions pick up theme changes made by styles.Init.

// FrameStyle wraps the menu (left border only)
func FrameStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		BorderLeft(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(styles.Primary).
		MarginTop(1).
		MarginBottom(1).
		PaddingLeft(2).
		PaddingRight(2)
}

// PromptStyle for the question text
func PromptStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.Primary)
}

// RuleStyle for the border lines around the question
func RuleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(styles.Muted)
}

// ChoiceSelectedStyle for the highlighted choice
func ChoiceSelectedStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.Accent)
}

// ChoiceNormalStyle for the other choices and the summary
func ChoiceNormalStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(styles.Normal)
}
