package clock

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestManual_AfterFuncFiresOnce(t *testing.T) {
	m := NewManual()
	calls := 0
	m.AfterFunc(8*time.Second, func() { calls++ })

	m.Advance(7 * time.Second)
	if calls != 0 {
		t.Errorf("calls after 7s = %d, want 0", calls)
	}
	m.Advance(time.Second)
	if calls != 1 {
		t.Errorf("calls after 8s = %d, want 1", calls)
	}
	m.Advance(time.Minute)
	if calls != 1 {
		t.Errorf("calls after 68s = %d, want 1", calls)
	}
	if m.Pending() != 0 {
		t.Errorf("Pending = %d, want 0", m.Pending())
	}
}

func TestManual_EveryFiresPerPeriod(t *testing.T) {
	m := NewManual()
	calls := 0
	timer := m.Every(time.Second, func() { calls++ })

	m.Advance(5 * time.Second)
	if calls != 5 {
		t.Errorf("calls after 5s = %d, want 5", calls)
	}
	if !timer.Stop() {
		t.Error("Stop = false, want true for a live timer")
	}
	if timer.Stop() {
		t.Error("second Stop = true, want false")
	}
	m.Advance(5 * time.Second)
	if calls != 5 {
		t.Errorf("calls after stop = %d, want 5", calls)
	}
}

func TestManual_CallbackCanStopItself(t *testing.T) {
	m := NewManual()
	calls := 0
	var timer Timer
	timer = m.Every(time.Second, func() {
		calls++
		if calls == 3 {
			timer.Stop()
		}
	})
	m.Advance(10 * time.Second)
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
}

func TestManual_FiresInDueOrder(t *testing.T) {
	m := NewManual()
	var order []string
	m.AfterFunc(3*time.Second, func() { order = append(order, "late") })
	m.AfterFunc(time.Second, func() { order = append(order, "early") })
	m.Advance(5 * time.Second)
	if len(order) != 2 || order[0] != "early" || order[1] != "late" {
		t.Errorf("order = %v, want [early late]", order)
	}
	if m.Now() != 5*time.Second {
		t.Errorf("Now = %v, want 5s", m.Now())
	}
}

func TestReal_EveryStops(t *testing.T) {
	var calls atomic.Int32
	timer := NewReal().Every(5*time.Millisecond, func() { calls.Add(1) })
	time.Sleep(30 * time.Millisecond)
	timer.Stop()
	seen := calls.Load()
	if seen == 0 {
		t.Fatal("ticker never fired")
	}
	time.Sleep(30 * time.Millisecond)
	// One tick may already have been in flight when Stop ran
	if got := calls.Load(); got > seen+1 {
		t.Errorf("calls after Stop = %d, want at most %d", got, seen+1)
	}
}
