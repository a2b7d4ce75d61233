// Package clock schedules the game's timed callbacks: the once-a-second countdown and
// the hint auto-hide. Game code depends on Scheduler so tests can drive time by hand.
package clock

import (
	"context"
	"sync"
	"time"
)

// Timer is a scheduled callback that can be cancelled
type Timer interface {
	// Stop prevents any further calls. Returns false if the timer had already stopped or fired.
	Stop() bool
}

// Scheduler runs callbacks after a delay or on a fixed period
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
	Every(d time.Duration, f func()) Timer
}

// Real schedules callbacks against the wall clock. Callbacks run on their own goroutines.
type Real struct{}

// NewReal creates a wall-clock scheduler
func NewReal() Real {
	return Real{}
}

// AfterFunc calls f once after d
func (Real) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Every calls f once per period until stopped
func (Real) Every(d time.Duration, f func()) Timer {
	ctx, cancel := context.WithCancel(context.Background())
	t := &ticker{cancel: cancel}
	go t.run(ctx, d, f)
	return t
}

type ticker struct {
	cancel context.CancelFunc
	once   sync.Once
}

func (t *ticker) run(ctx context.Context, d time.Duration, f func()) {
	tk := time.NewTicker(d)
	defer tk.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-tk.C:
			// A stop may race with a tick that was already delivered
			if ctx.Err() != nil {
				return
			}
			f()
		}
	}
}

func (t *ticker) Stop() bool {
	stopped := false
	t.once.Do(func() {
		t.cancel()
		stopped = true
	})
	return stopped
}
