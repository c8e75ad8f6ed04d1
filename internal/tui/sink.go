package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"runwalk_timer/internal/models"
)

type sender interface {
	Send(msg tea.Msg)
}

// Sink forwards timer renders and signals into a running program. Calls
// made before Attach are dropped.
type Sink struct {
	mu sync.RWMutex
	p  sender
}

func NewSink() *Sink { return &Sink{} }

// Attach sets the program that receives messages.
func (s *Sink) Attach(p sender) {
	s.mu.Lock()
	s.p = p
	s.mu.Unlock()
}

func (s *Sink) send(msg tea.Msg) {
	s.mu.RLock()
	p := s.p
	s.mu.RUnlock()
	if p != nil {
		p.Send(msg)
	}
}

func (s *Sink) Render(snap models.Snapshot) {
	s.send(snapshotMsg(snap))
}

func (s *Sink) Signal(sig models.Signal, tones []models.Tone) {
	s.send(signalMsg{signal: sig, tones: tones})
}
