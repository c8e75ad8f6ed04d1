package tui

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"runwalk_timer/internal/models"
	"runwalk_timer/internal/service"
)

type view int

const (
	viewTimer view = iota
	viewCalendar
)

const callTimeout = 5 * time.Second

// Messages
type (
	snapshotMsg models.Snapshot

	signalMsg struct {
		signal models.Signal
		tones  []models.Tone
	}

	calendarMsg struct {
		cal     models.CalendarMonth
		summary models.Summary
		err     error
	}
)

// Model is the terminal front end of the timer and the run log calendar.
type Model struct {
	timer  service.Timer
	runLog service.RunLog
	bell   io.Writer

	keys KeyMap
	help help.Model

	snap models.Snapshot
	view view

	year    int
	month   time.Month
	today   models.DateKey
	cal     models.CalendarMonth
	summary models.Summary
	err     error

	width int
}

// New builds the model. Signals ring the terminal bell on bell; nil
// keeps the timer silent.
func New(s *service.Service, bell io.Writer) Model {
	today := s.RunLog.Today()
	return Model{
		timer:  s.Timer,
		runLog: s.RunLog,
		bell:   bell,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		snap:   s.Timer.Snapshot(),
		year:   today.Year(),
		month:  today.Month(),
		today:  today,
	}
}

func (m Model) Init() tea.Cmd {
	return m.loadCalendarCmd()
}

// timerCmd runs a timer control off the event loop.
func (m Model) timerCmd(op func(context.Context) models.Snapshot) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), callTimeout)
		defer cancel()
		return snapshotMsg(op(ctx))
	}
}

// loadCalendarCmd fetches the grid and the summary for the selected month.
// The summary is anchored on today inside the current month and on the
// 1st otherwise.
func (m Model) loadCalendarCmd() tea.Cmd {
	runLog, year, month, today := m.runLog, m.year, m.month, m.today
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), callTimeout)
		defer cancel()

		cal, err := runLog.CalendarMonth(ctx, year, month)
		if err != nil {
			return calendarMsg{err: err}
		}
		ref := models.NewDateKey(year, month, 1)
		if today.Year() == year && today.Month() == month {
			ref = today
		}
		sum, err := runLog.Summary(ctx, ref)
		return calendarMsg{cal: cal, summary: sum, err: err}
	}
}

// ringCmd writes one bell per tone.
func ringCmd(w io.Writer, tones []models.Tone) tea.Cmd {
	if w == nil || len(tones) == 0 {
		return nil
	}
	return func() tea.Msg {
		_, _ = io.WriteString(w, strings.Repeat("\a", len(tones)))
		return nil
	}
}

func (m Model) shiftMonth(delta int) Model {
	t := time.Date(m.year, m.month+time.Month(delta), 1, 0, 0, 0, 0, time.UTC)
	m.year, m.month = t.Year(), t.Month()
	return m
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case snapshotMsg:
		m.snap = models.Snapshot(msg)
		return m, nil

	case signalMsg:
		return m, ringCmd(m.bell, msg.tones)

	case calendarMsg:
		m.err = msg.err
		if msg.err == nil {
			m.cal, m.summary = msg.cal, msg.summary
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Toggle):
		return m, m.timerCmd(m.timer.Toggle)
	case key.Matches(msg, m.keys.Reset):
		return m, m.timerCmd(m.timer.Reset)
	case key.Matches(msg, m.keys.Calendar):
		if m.view == viewCalendar {
			m.view = viewTimer
			return m, nil
		}
		m.view = viewCalendar
		return m, m.loadCalendarCmd()
	}

	if m.view != viewCalendar {
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.PrevMonth):
		m = m.shiftMonth(-1)
		return m, m.loadCalendarCmd()
	case key.Matches(msg, m.keys.NextMonth):
		m = m.shiftMonth(1)
		return m, m.loadCalendarCmd()
	}
	return m, nil
}
