package service

import (
	"sync"

	"runwalk_timer/internal/logger"
)

// WakeGuard makes Acquire/Release idempotent over a WakeLock and swallows
// its errors. A failed acquire leaves the guard released.
type WakeGuard struct {
	mu   sync.Mutex
	lock WakeLock
	held bool
	log  *logger.Logger
}

func NewWakeGuard(lock WakeLock, log *logger.Logger) *WakeGuard {
	return &WakeGuard{lock: lock, log: logger.OrNop(log)}
}

func (g *WakeGuard) Acquire() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.held || g.lock == nil {
		return
	}
	if err := g.lock.Acquire(); err != nil {
		g.log.Debugw("wake_acquire_failed", "error", err)
		return
	}
	g.held = true
}

func (g *WakeGuard) Release() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.held {
		return
	}
	g.held = false
	if err := g.lock.Release(); err != nil {
		g.log.Debugw("wake_release_failed", "error", err)
	}
}

func (g *WakeGuard) Held() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.held
}
