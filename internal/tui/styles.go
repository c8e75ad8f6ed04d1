package tui

import (
	"github.com/charmbracelet/lipgloss"

	"runwalk_timer/internal/models"
)

var (
	ColorFgPrimary = lipgloss.Color("#ABB2BF")
	ColorFgMuted   = lipgloss.Color("#636B78")
	ColorRed       = lipgloss.Color("#E06C75")
	ColorGreen     = lipgloss.Color("#98C379")
	ColorYellow    = lipgloss.Color("#E5C07B")
	ColorBlue      = lipgloss.Color("#61AFEF")
	ColorMagenta   = lipgloss.Color("#C678DD")
	ColorBorder    = lipgloss.Color("#3F4451")
)

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(1, 2)

	ClockStyle = lipgloss.NewStyle().Bold(true)

	MutedStyle = lipgloss.NewStyle().Foreground(ColorFgMuted)

	ErrorStyle = lipgloss.NewStyle().Foreground(ColorRed)

	// Calendar cells
	DayStyle = lipgloss.NewStyle().
			Width(cellWidth).
			Foreground(ColorFgPrimary)

	OutsideDayStyle = DayStyle.Foreground(ColorFgMuted)

	TodayStyle = DayStyle.Bold(true).Underline(true)
)

// phaseColors gives each phase its banner color.
var phaseColors = map[models.Phase]lipgloss.Color{
	models.PhaseWarmup: ColorYellow,
	models.PhaseRun:    ColorGreen,
	models.PhaseWalk:   ColorBlue,
	models.PhaseFinish: ColorMagenta,
}

// PhaseStyle returns the banner style for p.
func PhaseStyle(p models.Phase) lipgloss.Style {
	c, ok := phaseColors[p]
	if !ok {
		c = ColorFgPrimary
	}
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#282C34")).
		Background(c).
		Padding(0, 2)
}
