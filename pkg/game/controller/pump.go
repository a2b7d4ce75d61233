package controller

import (
	"context"
	"sync"

	"witchlair/pkg/game/renderer"
	"witchlair/pkg/game/session"
	"witchlair/pkg/game/state"
)

// Pump renders session changes on its own goroutine. Bursts of changes collapse into
// one frame of the newest snapshot. Pump implements session.Observer.
type Pump struct {
	r renderer.Renderer

	mu     sync.Mutex
	latest *state.Snapshot
	wake   chan struct{}
}

var _ session.Observer = (*Pump)(nil)

// NewPump creates a pump drawing with r
func NewPump(r renderer.Renderer) *Pump {
	return &Pump{r: r, wake: make(chan struct{}, 1)}
}

// Changed queues a snapshot for drawing
func (p *Pump) Changed(s state.Snapshot) {
	p.mu.Lock()
	p.latest = &s
	p.mu.Unlock()

	select {
	case p.wake <- struct{}{}:
	default:
	}
}

// Rejected shows the notice on the next frame
func (p *Pump) Rejected(n session.Notice) {
	p.r.ShowNotice(n.Message)
}

// Run draws queued snapshots until ctx is done
func (p *Pump) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-p.wake:
			p.Drain()
		}
	}
}

// Drain draws the newest queued snapshot, if any. Returns false when nothing was queued.
func (p *Pump) Drain() bool {
	p.mu.Lock()
	s := p.latest
	p.latest = nil
	p.mu.Unlock()

	if s == nil {
		return false
	}
	p.r.RenderFrame(*s)
	return true
}
