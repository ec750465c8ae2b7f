package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/auditlens/auditlens/pkg/finding"
)

// Color palette inspired by top security tools
var (
	// Brand colors
	Primary   = lipgloss.Color("#7D56F4") // Purple
	Secondary = lipgloss.Color("#00D4AA") // Cyan/Teal

	// Severity colors (matching OWASP/Nuclei standards)
	CriticalColor = lipgloss.Color("#FF0000") // Bright red
	HighColor     = lipgloss.Color("#FF6B6B") // Red/Orange
	MediumColor   = lipgloss.Color("#FFD93D") // Yellow
	LowColor      = lipgloss.Color("#6BCB77") // Green

	// Status colors
	Success = lipgloss.Color("#00D26A")
	Warning = lipgloss.Color("#FFB800")
	Error   = lipgloss.Color("#FF3838")
	Muted   = lipgloss.Color("#6B7280")
)

// Pre-configured styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA"))

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(Muted)

	BracketStyle = lipgloss.NewStyle().
			Foreground(Muted)

	IDStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FAFAFA"))

	DetailStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#C9CCD3"))

	SuccessStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Success)

	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Error)

	ChipStyle = lipgloss.NewStyle().
			Foreground(Muted)

	ActiveChipStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Secondary)

	SectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary)

	criticalStyle = lipgloss.NewStyle().Bold(true).Foreground(CriticalColor)
	highStyle     = lipgloss.NewStyle().Bold(true).Foreground(HighColor)
	mediumStyle   = lipgloss.NewStyle().Foreground(MediumColor)
	lowStyle      = lipgloss.NewStyle().Foreground(LowColor)
	unknownStyle  = lipgloss.NewStyle().Foreground(Muted)
)

// SeverityStyle returns the lipgloss style for a severity badge.
func SeverityStyle(sev finding.Severity) lipgloss.Style {
	switch sev {
	case finding.Critical:
		return criticalStyle
	case finding.High:
		return highStyle
	case finding.Medium:
		return mediumStyle
	case finding.Low:
		return lowStyle
	default:
		return unknownStyle
	}
}
