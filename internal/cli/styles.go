// Package cli provides styled terminal output using lipgloss.
package cli

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/mjelks/bloomdex/internal/model"
)

var (
	// PrimaryColor is the main theme color.
	PrimaryColor = lipgloss.Color("#45B7D1")
	// ErrorColor indicates errors or failure messages.
	ErrorColor = lipgloss.Color("#FF6B6B")
	// InfoColor indicates informational messages.
	InfoColor = lipgloss.Color("#95E1D3")
	// SubtleColor indicates less prominent UI elements.
	SubtleColor = lipgloss.Color("#666666")

	// TitleStyle is used for section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			MarginBottom(1)

	// ErrorStyle formats error messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)

	// InfoStyle formats informational messages.
	InfoStyle = lipgloss.NewStyle().
			Foreground(InfoColor)

	// SubtleStyle formats less prominent text.
	SubtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// BoldStyle makes text bold.
	BoldStyle = lipgloss.NewStyle().
			Bold(true)

	// DisclaimerStyle frames the dataset disclaimer shown with format output.
	DisclaimerStyle = lipgloss.NewStyle().
			Italic(true).
			Foreground(SubtleColor)
)

// LevelStyle returns a bold style in the level's palette color.
func LevelStyle(lvl model.Level) lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(lvl.Color))
}

// tierColors keys display colors by suitability tier.
var tierColors = map[model.SuitabilityTier]lipgloss.Color{
	model.TierHigh:             lipgloss.Color("#4ECDC4"),
	model.TierContextDependent: lipgloss.Color("#FFE66D"),
	model.TierMedium:           lipgloss.Color("#95E1D3"),
	model.TierLow:              lipgloss.Color("#666666"),
}

// TierStyle returns the style for a suitability tier badge.
func TierStyle(t model.SuitabilityTier) lipgloss.Style {
	c, ok := tierColors[t]
	if !ok {
		c = InfoColor
	}
	return lipgloss.NewStyle().Foreground(c)
}
