package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"runwalk_timer/internal/models"
)

const cellWidth = 8

var weekdayHeader = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

func (m Model) View() string {
	var body string
	if m.view == viewCalendar {
		body = m.renderCalendar()
	} else {
		body = m.renderTimer()
	}
	parts := []string{TitleStyle.Render("Run/Walk Timer"), body}
	if m.err != nil {
		parts = append(parts, ErrorStyle.Render("error: "+m.err.Error()))
	}
	parts = append(parts, m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) renderTimer() string {
	s := m.snap
	status := "paused"
	if s.IsRunning {
		status = "running"
	}
	lines := []string{
		PhaseStyle(s.Phase).Render(string(s.Phase)),
		"",
		ClockStyle.Render(s.IntervalText),
		"",
		fmt.Sprintf("Set %d / %d", s.CurrentSet, s.Sets),
		"Total " + s.TotalText,
		MutedStyle.Render(status),
	}
	return BoxStyle.Render(strings.Join(lines, "\n"))
}

func (m Model) renderCalendar() string {
	var b strings.Builder
	title := m.cal.Title
	if title == "" {
		title = fmt.Sprintf("%s %d", m.month, m.year)
	}
	b.WriteString(ClockStyle.Render(title))
	b.WriteString("\n\n")

	for _, d := range weekdayHeader {
		b.WriteString(MutedStyle.Width(cellWidth).Render(d))
	}
	b.WriteString("\n")

	for i, d := range m.cal.Days {
		b.WriteString(m.renderDay(d))
		if i%7 == 6 {
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.summary.Week.Text)
	b.WriteString("\n")
	b.WriteString(m.summary.Month.Text)
	return BoxStyle.Render(b.String())
}

// renderDay is the day number plus the distance or minutes label and a
// gym badge, clipped to the cell width.
func (m Model) renderDay(d models.CalendarDay) string {
	label := fmt.Sprintf("%2d", d.Day)
	if !d.InMonth {
		return OutsideDayStyle.Render(label)
	}
	style := DayStyle
	if d.Date == m.today {
		style = TodayStyle
	}
	switch {
	case d.DistanceLabel != "":
		label += " " + d.DistanceLabel
		style = style.Foreground(ColorGreen)
	case d.MinutesLabel != "":
		label += " " + d.MinutesLabel
		style = style.Foreground(ColorGreen)
	}
	if d.GymBadge {
		label += "G"
		style = style.Foreground(ColorMagenta)
	}
	if r := []rune(label); len(r) > cellWidth {
		label = string(r[:cellWidth])
	}
	return style.Render(label)
}
