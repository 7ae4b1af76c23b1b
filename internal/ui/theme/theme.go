// Package theme holds the shared lipgloss palette and styles for CLI
// output.
package theme

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/gradewise/internal/history"
	"github.com/abhisek/gradewise/internal/reward"
)

// Color palette — calm classroom tones
var (
	Primary   = lipgloss.Color("#8B5CF6") // Vivid Purple
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#F97316") // Orange
	Success   = lipgloss.Color("#22C55E") // Green
	Warning   = lipgloss.Color("#EAB308") // Amber
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Tier colors
var (
	BronzeColor   = lipgloss.Color("#CD7F32")
	SilverColor   = lipgloss.Color("#C0C0C0")
	GoldColor     = lipgloss.Color("#FFD700")
	PlatinumColor = lipgloss.Color("#E5E4E2")
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Label = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)

	Section = lipgloss.NewStyle().
		Foreground(Accent).
		Bold(true).
		MarginTop(1)
)

// Outcome styles
var (
	GoodScore = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	MidScore = lipgloss.NewStyle().
			Foreground(Warning).
			Bold(true)

	LowScore = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// Alert styles
var (
	AlertHigh = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	AlertMedium = lipgloss.NewStyle().
			Foreground(Warning)

	AlertLow = lipgloss.NewStyle().
			Foreground(TextDim)
)

var tierStyles = map[reward.Type]lipgloss.Style{
	reward.Bronze:   lipgloss.NewStyle().Foreground(BronzeColor).Bold(true),
	reward.Silver:   lipgloss.NewStyle().Foreground(SilverColor).Bold(true),
	reward.Gold:     lipgloss.NewStyle().Foreground(GoldColor).Bold(true),
	reward.Platinum: lipgloss.NewStyle().Foreground(PlatinumColor).Bold(true),
}

// TierStyle returns the display style for a reward tier.
func TierStyle(t reward.Type) lipgloss.Style {
	if s, ok := tierStyles[t]; ok {
		return s
	}
	return Body
}

// ScoreStyle picks a style by similarity score band.
func ScoreStyle(score float64) lipgloss.Style {
	switch {
	case score >= 0.8:
		return GoodScore
	case score >= 0.6:
		return MidScore
	default:
		return LowScore
	}
}

// SeverityStyle returns the display style for an alert severity.
func SeverityStyle(s history.Severity) lipgloss.Style {
	switch s {
	case history.SeverityHigh:
		return AlertHigh
	case history.SeverityMedium:
		return AlertMedium
	default:
		return AlertLow
	}
}
