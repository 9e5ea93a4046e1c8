package typing

import (
	"time"

	"github.com/automoto/folio/clock"
)

// TextSink receives the visible text after every transition
type TextSink interface {
	SetText(text string)
}

// Scheduler runs fn once after d. The loop suspends on it between steps.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) *clock.Timer
}

// Loop is a running typewriter. It never terminates on its own; Stop ends it.
type Loop struct {
	sink  TextSink
	seq   Sequence
	cfg   Config
	sched Scheduler

	cursor  Cursor
	text    string
	timer   *clock.Timer
	running bool
	steps   int
}

// Start writes the initial state Typing(0, 0) and schedules the first step.
// A missing sink or scheduler, or an empty sequence, yields a loop that never
// starts.
func Start(sink TextSink, seq Sequence, cfg Config, sched Scheduler) *Loop {
	l := &Loop{sink: sink, seq: seq, cfg: cfg, sched: sched}
	if sink == nil || sched == nil || seq.Len() == 0 {
		return l
	}
	l.running = true
	l.write()
	l.schedule()
	return l
}

func (l *Loop) schedule() {
	l.timer = l.sched.AfterFunc(Delay(l.cursor, l.seq, l.cfg), l.step)
}

func (l *Loop) step() {
	if !l.running {
		return
	}
	l.cursor = Next(l.cursor, l.seq)
	l.steps++
	l.write()
	l.schedule()
}

func (l *Loop) write() {
	l.text = l.cursor.Text(l.seq)
	l.sink.SetText(l.text)
}

// Stop cancels the pending step. The sink keeps the last written text.
func (l *Loop) Stop() {
	if l == nil || !l.running {
		return
	}
	l.running = false
	l.timer.Stop()
}

// Running reports whether the loop is scheduled
func (l *Loop) Running() bool {
	return l != nil && l.running
}

// Cursor returns the current state
func (l *Loop) Cursor() Cursor {
	return l.cursor
}

// Text returns the last text written to the sink
func (l *Loop) Text() string {
	return l.text
}

// Steps counts transitions since Start
func (l *Loop) Steps() int {
	return l.steps
}
