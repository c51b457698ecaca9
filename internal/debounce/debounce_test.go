package debounce

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestRapidTriggersCoalesce(t *testing.T) {
	var calls atomic.Int32
	d := New(30 * time.Millisecond)
	defer d.Stop()

	for i := 0; i < 5; i++ {
		d.Trigger(func() { calls.Add(1) })
		time.Sleep(5 * time.Millisecond)
	}

	time.Sleep(100 * time.Millisecond)
	if got := calls.Load(); got != 1 {
		t.Errorf("got %d calls, want 1", got)
	}
}

func TestSpacedTriggersFireSeparately(t *testing.T) {
	var calls atomic.Int32
	d := New(20 * time.Millisecond)
	defer d.Stop()

	d.Trigger(func() { calls.Add(1) })
	time.Sleep(60 * time.Millisecond)
	d.Trigger(func() { calls.Add(1) })
	time.Sleep(60 * time.Millisecond)

	if got := calls.Load(); got != 2 {
		t.Errorf("got %d calls, want 2", got)
	}
}

func TestLastFunctionWins(t *testing.T) {
	var got atomic.Int32
	d := New(20 * time.Millisecond)
	defer d.Stop()

	d.Trigger(func() { got.Store(1) })
	d.Trigger(func() { got.Store(2) })

	time.Sleep(80 * time.Millisecond)
	if v := got.Load(); v != 2 {
		t.Errorf("got %d, want the last scheduled function to run", v)
	}
}

func TestStopCancelsPending(t *testing.T) {
	var calls atomic.Int32
	d := New(20 * time.Millisecond)

	d.Trigger(func() { calls.Add(1) })
	d.Stop()

	time.Sleep(80 * time.Millisecond)
	if got := calls.Load(); got != 0 {
		t.Errorf("got %d calls after Stop, want 0", got)
	}
}

func TestZeroDelayUsesDefault(t *testing.T) {
	d := New(0)
	defer d.Stop()
	if d.delay != DefaultDelay {
		t.Errorf("delay = %v, want %v", d.delay, DefaultDelay)
	}
}
