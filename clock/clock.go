// Package clock is a single-threaded virtual-time scheduler. It provides the
// two primitives page animations suspend on: a timed delay (AfterFunc) and a
// next-frame callback (RequestFrame). Time only moves when Tick is called, so
// the host decides what a frame is and tests can step time exactly.
package clock

import (
	"container/heap"
	"time"
)

// Timer is a pending AfterFunc callback
type Timer struct {
	c        *Clock
	deadline time.Duration
	seq      uint64
	fn       func()
	index    int // position in the heap, -1 once fired or stopped
}

// Stop cancels the timer. It returns false if the timer already fired or was stopped.
func (t *Timer) Stop() bool {
	if t == nil || t.index < 0 {
		return false
	}
	heap.Remove(&t.c.timers, t.index)
	t.index = -1
	return true
}

// Clock advances virtual time and runs due callbacks on the caller's goroutine
type Clock struct {
	now    time.Duration
	seq    uint64
	timers timerHeap
	frames []func()
	ticks  uint64
}

// New creates a clock at t=0
func New() *Clock {
	return &Clock{}
}

// Now returns the current virtual time
func (c *Clock) Now() time.Duration {
	return c.now
}

// Ticks returns how many times Tick has run
func (c *Clock) Ticks() uint64 {
	return c.ticks
}

// Pending returns the number of scheduled timers plus requested frames
func (c *Clock) Pending() int {
	return len(c.timers) + len(c.frames)
}

// AfterFunc schedules fn to run once virtual time reaches now+d.
// A non-positive d fires on the next Tick, or later in the current one when
// scheduled from a callback.
func (c *Clock) AfterFunc(d time.Duration, fn func()) *Timer {
	if d < 0 {
		d = 0
	}
	c.seq++
	t := &Timer{c: c, deadline: c.now + d, seq: c.seq, fn: fn}
	heap.Push(&c.timers, t)
	return t
}

// RequestFrame schedules fn to run once on the next Tick, after due timers
func (c *Clock) RequestFrame(fn func()) {
	c.frames = append(c.frames, fn)
}

// Tick advances virtual time by dt, fires every timer that is due (in deadline
// order, including timers scheduled by callbacks within this tick) and then
// runs the frame callbacks that were requested before the tick began.
func (c *Clock) Tick(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	c.ticks++
	target := c.now + dt
	frames := c.frames
	c.frames = nil

	for len(c.timers) > 0 && c.timers[0].deadline <= target {
		t := heap.Pop(&c.timers).(*Timer)
		t.index = -1
		// Callbacks observe the time they were scheduled for
		c.now = t.deadline
		t.fn()
	}
	c.now = target

	for _, fn := range frames {
		fn()
	}
}

// timerHeap orders timers by deadline, then by scheduling order
type timerHeap []*Timer

func (h timerHeap) Len() int { return len(h) }

func (h timerHeap) Less(i, j int) bool {
	if h[i].deadline == h[j].deadline {
		return h[i].seq < h[j].seq
	}
	return h[i].deadline < h[j].deadline
}

func (h timerHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *timerHeap) Push(x any) {
	t := x.(*Timer)
	t.index = len(*h)
	*h = append(*h, t)
}

func (h *timerHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return t
}
