package service

import (
	"sync"
	"time"
)

// TickerScheduler runs fn on a time.Ticker in a single goroutine.
type TickerScheduler struct {
	period time.Duration

	mu   sync.Mutex
	stop chan struct{}
	done chan struct{}
}

var _ Scheduler = (*TickerScheduler)(nil)

func NewTickerScheduler(period time.Duration) *TickerScheduler {
	if period <= 0 {
		period = time.Second
	}
	return &TickerScheduler{period: period}
}

// Start replaces any running loop with a new one calling fn every period.
// The loop ends when fn returns false or Stop is called.
func (s *TickerScheduler) Start(fn func(now time.Time) bool) {
	s.Stop()

	s.mu.Lock()
	defer s.mu.Unlock()
	stop, done := make(chan struct{}), make(chan struct{})
	s.stop, s.done = stop, done

	go func() {
		defer close(done)
		t := time.NewTicker(s.period)
		defer t.Stop()
		for {
			select {
			case <-stop:
				return
			case now := <-t.C:
				// Stop may race with a pending tick; stop wins.
				select {
				case <-stop:
					return
				default:
				}
				if !fn(now) {
					return
				}
			}
		}
	}()
}

// Stop cancels the loop and waits for it to exit, so fn is never called
// after Stop returns. It must not be called from inside fn.
func (s *TickerScheduler) Stop() {
	s.mu.Lock()
	stop, done := s.stop, s.done
	s.stop, s.done = nil, nil
	s.mu.Unlock()

	if stop == nil {
		return
	}
	close(stop)
	<-done
}
