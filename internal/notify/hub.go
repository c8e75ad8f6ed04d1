// Package notify fans timer output out to display clients: rendered
// snapshots, beep signals and keep-awake requests.
package notify

import (
	"sync"

	"runwalk_timer/internal/logger"
	"runwalk_timer/internal/models"
)

// Envelope types.
const (
	TypeState  = "state"
	TypeSignal = "signal"
	TypeWake   = "wake"
)

const (
	WakeAcquire = "acquire"
	WakeRelease = "release"
)

type Message struct {
	Type string `json:"type"`
	Data any    `json:"data,omitempty"`
}

type SignalData struct {
	Signal models.Signal `json:"signal"`
	Tones  []models.Tone `json:"tones"`
}

type WakeData struct {
	Action string `json:"action"`
}

// Hub is a non-blocking broadcaster. Slow subscribers lose messages rather
// than stall the timer.
type Hub struct {
	mu     sync.Mutex
	subs   map[int]chan Message
	nextID int
	buffer int

	last  *Message
	awake bool
	log   *logger.Logger
}

func NewHub(buffer int, log *logger.Logger) *Hub {
	if buffer <= 0 {
		buffer = 16
	}
	return &Hub{subs: map[int]chan Message{}, buffer: buffer, log: logger.OrNop(log)}
}

// Subscribe registers a listener. The channel starts with the latest state
// and, while the wake lock is held, an acquire message. The returned func
// unsubscribes and closes the channel.
func (h *Hub) Subscribe() (<-chan Message, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.nextID
	h.nextID++
	// room for the replayed state and wake messages
	ch := make(chan Message, h.buffer+2)
	if h.last != nil {
		ch <- *h.last
	}
	if h.awake {
		ch <- Message{Type: TypeWake, Data: WakeData{Action: WakeAcquire}}
	}
	h.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			delete(h.subs, id)
			close(ch)
		})
	}
}

// Subscribers is the number of live subscriptions.
func (h *Hub) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

// Publish delivers m to every subscriber without blocking.
func (h *Hub) Publish(m Message) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.publishLocked(m)
}

func (h *Hub) publishLocked(m Message) {
	if m.Type == TypeState {
		cp := m
		h.last = &cp
	}
	for id, ch := range h.subs {
		select {
		case ch <- m:
		default:
			h.log.Debugw("notify_dropped", "subscriber", id, "type", m.Type)
		}
	}
}

// Render publishes a state envelope.
func (h *Hub) Render(snap models.Snapshot) {
	h.Publish(Message{Type: TypeState, Data: snap})
}

// Signal publishes a signal envelope with its tone table.
func (h *Hub) Signal(sig models.Signal, tones []models.Tone) {
	h.Publish(Message{Type: TypeSignal, Data: SignalData{Signal: sig, Tones: tones}})
}

// Acquire asks clients to keep their screen awake. The request stays
// pending until Release, so a display that connects mid-workout is told
// on Subscribe.
func (h *Hub) Acquire() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.awake = true
	h.publishLocked(Message{Type: TypeWake, Data: WakeData{Action: WakeAcquire}})
	return nil
}

// Release lets clients turn their screen off again.
func (h *Hub) Release() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.awake = false
	h.publishLocked(Message{Type: TypeWake, Data: WakeData{Action: WakeRelease}})
	return nil
}
