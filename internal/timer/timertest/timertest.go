// Package timertest provides a controllable clock and tick source for tests.
package timertest

import (
	"sync"
	"time"
)

// Clock is a manually advanced clock.
type Clock struct {
	mu  sync.Mutex
	now time.Time
}

// NewClock returns a clock frozen at start.
func NewClock(start time.Time) *Clock {
	return &Clock{now: start}
}

// Now returns the frozen time.
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// Set jumps the clock to t.
func (c *Clock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

type entry struct {
	fn        func()
	cancelled bool
}

// Scheduler records tick sources and fires them only when asked.
type Scheduler struct {
	mu      sync.Mutex
	entries []*entry
}

// NewScheduler returns an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Every registers fn. The interval is ignored.
func (s *Scheduler) Every(_ time.Duration, fn func()) func() {
	e := &entry{fn: fn}
	s.mu.Lock()
	s.entries = append(s.entries, e)
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		e.cancelled = true
		s.mu.Unlock()
	}
}

// Fire invokes every tick source that has not been cancelled.
func (s *Scheduler) Fire() {
	for _, fn := range s.collect(false) {
		fn()
	}
}

// FireAll invokes every tick source ever registered, cancelled ones included,
// the way a late delivery from a stopped ticker would.
func (s *Scheduler) FireAll() {
	for _, fn := range s.collect(true) {
		fn()
	}
}

// Active returns the number of tick sources that have not been cancelled.
func (s *Scheduler) Active() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, e := range s.entries {
		if !e.cancelled {
			n++
		}
	}
	return n
}

// Registered returns the number of tick sources ever created.
func (s *Scheduler) Registered() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

func (s *Scheduler) collect(all bool) []func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	var fns []func()
	for _, e := range s.entries {
		if all || !e.cancelled {
			fns = append(fns, e.fn)
		}
	}
	return fns
}
