// Package timer implements the countdown state machine.
//
// A countdown fixes its end time when it starts and derives the remaining
// time from the wall clock on every tick. Nothing is counted down in memory,
// so a countdown survives the process being suspended, and a Snapshot taken
// before the process exits can be restored later without losing time.
//
//	Idle --Start--> Running --Tick (remaining > 0)--> Running
//	Running --Tick (remaining <= 0)--> Finished --Acknowledge--> Idle
//	Running --Stop--> Idle
package timer

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sliicy/meatdairy/internal/presets"
)

// DefaultTickInterval is how often a running countdown is re-evaluated.
const DefaultTickInterval = time.Second

// Controller errors.
var (
	ErrNoPreset        = errors.New("choose a preset first")
	ErrUnknownPreset   = presets.ErrUnknownPreset
	ErrNotAcknowledged = errors.New("countdown finished; acknowledge it before starting another")
	ErrInvalidSnapshot = errors.New("invalid timer snapshot")
)

// State is a point-in-time view of the countdown.
type State struct {
	Status           Status
	RunID            string
	PresetIndex      int
	Preset           presets.Preset
	StartedAt        time.Time
	EndsAt           time.Time
	Remaining        time.Duration
	NotifyOnComplete bool

	// Rev increases on every status change. A higher Rev is a newer state.
	Rev uint64
}

// RemainingText formats Remaining as HH:MM:SS
func (s State) RemainingText() string {
	return FormatRemaining(s.Remaining)
}

// Snapshot returns the persistable part of s
func (s State) Snapshot() Snapshot {
	return Snapshot{
		Status:           s.Status,
		RunID:            s.RunID,
		PresetIndex:      s.PresetIndex,
		StartedAt:        s.StartedAt,
		EndsAt:           s.EndsAt,
		NotifyOnComplete: s.NotifyOnComplete,
	}
}

// Progress returns the elapsed fraction of the countdown in [0, 1]
func (s State) Progress() float64 {
	switch s.Status {
	case StatusFinished:
		return 1
	case StatusRunning:
		total := s.EndsAt.Sub(s.StartedAt)
		if total <= 0 {
			return 1
		}
		p := 1 - float64(s.Remaining)/float64(total)
		if p < 0 {
			return 0
		}
		if p > 1 {
			return 1
		}
		return p
	default:
		return 0
	}
}

// Completion describes a countdown that reached zero.
type Completion struct {
	RunID            string
	PresetIndex      int
	Preset           presets.Preset
	StartedAt        time.Time
	EndsAt           time.Time
	FinishedAt       time.Time
	NotifyOnComplete bool
}

// Snapshot is the part of State that must outlive the process.
type Snapshot struct {
	Status           Status    `json:"status"`
	RunID            string    `json:"run_id,omitempty"`
	PresetIndex      int       `json:"preset_index"`
	StartedAt        time.Time `json:"started_at,omitempty"`
	EndsAt           time.Time `json:"ends_at,omitempty"`
	NotifyOnComplete bool      `json:"notify_on_complete"`
}

// Option configures a Controller.
type Option func(*Controller)

// WithClock replaces the wall clock.
func WithClock(clock Clock) Option {
	return func(c *Controller) { c.clock = clock }
}

// WithScheduler replaces the tick source. A nil scheduler disables automatic
// ticking; the caller then drives Tick itself.
func WithScheduler(s Scheduler) Option {
	return func(c *Controller) { c.scheduler = s }
}

// WithTickInterval changes the tick cadence.
func WithTickInterval(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.interval = d
		}
	}
}

// Controller owns the single countdown. All methods are safe for concurrent use.
type Controller struct {
	mu sync.Mutex

	table     *presets.Table
	clock     Clock
	scheduler Scheduler
	interval  time.Duration

	state State
	rev   uint64

	// gen identifies the current tick source. Callbacks from a cancelled
	// source carry an older generation and are dropped.
	gen    uint64
	cancel func()

	onTick        func(State)
	onFinish      func(Completion)
	onStateChange func(oldState, newState State)
}

// NewController creates an idle controller over table.
func NewController(table *presets.Table, opts ...Option) *Controller {
	c := &Controller{
		table:     table,
		clock:     SystemClock{},
		scheduler: TickerScheduler{},
		interval:  DefaultTickInterval,
		state:     State{Status: StatusIdle},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// OnTick sets the callback invoked with the fresh state on every tick that leaves the countdown running.
func (c *Controller) OnTick(fn func(State)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onTick = fn
}

// OnFinish sets the callback invoked exactly once per countdown that reaches zero.
func (c *Controller) OnFinish(fn func(Completion)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onFinish = fn
}

// OnStateChange sets the callback invoked on every status transition.
func (c *Controller) OnStateChange(fn func(oldState, newState State)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onStateChange = fn
}

// State returns the current state. Remaining reflects the last tick.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// SetNotifyOnComplete toggles the completion sound for the current and future countdowns.
func (c *Controller) SetNotifyOnComplete(on bool) {
	c.mu.Lock()
	c.state.NotifyOnComplete = on
	c.mu.Unlock()
}

// Start begins a countdown for the preset at index.
// Starting while a countdown is running is a no-op that returns the running state.
func (c *Controller) Start(index int) (State, error) {
	c.mu.Lock()

	switch c.state.Status {
	case StatusRunning:
		s := c.state
		c.mu.Unlock()
		return s, nil
	case StatusFinished:
		s := c.state
		c.mu.Unlock()
		return s, ErrNotAcknowledged
	}

	p, err := c.table.At(index)
	if err != nil {
		s := c.state
		c.mu.Unlock()
		return s, err
	}
	if p.IsPlaceholder() {
		s := c.state
		c.mu.Unlock()
		return s, ErrNoPreset
	}

	now := c.clock.Now()
	old := c.state
	c.state = State{
		Status:           StatusRunning,
		RunID:            uuid.NewString(),
		PresetIndex:      index,
		Preset:           p,
		StartedAt:        now,
		EndsAt:           now.Add(p.Duration),
		Remaining:        p.Duration,
		NotifyOnComplete: old.NotifyOnComplete,
	}
	c.stamp()
	c.beginTicking()
	s := c.state
	onChange, onTick := c.onStateChange, c.onTick
	c.mu.Unlock()

	if onChange != nil {
		onChange(old, s)
	}
	if onTick != nil {
		onTick(s)
	}
	return s, nil
}

// Tick re-evaluates the running countdown against the wall clock.
// It is a no-op unless the countdown is running.
func (c *Controller) Tick() State {
	c.mu.Lock()
	return c.tickLocked()
}

// Current returns the state with Remaining recomputed from the wall clock.
// Unlike Tick it does not invoke OnTick, so it is safe to call from an OnTick
// consumer. A countdown found past its end time still finishes, firing the
// state change and completion callbacks once.
func (c *Controller) Current() State {
	c.mu.Lock()
	if c.state.Status != StatusRunning {
		s := c.state
		c.mu.Unlock()
		return s
	}

	now := c.clock.Now()
	remaining := c.state.EndsAt.Sub(now)
	if remaining <= 0 {
		return c.finishLocked(now)
	}
	c.state.Remaining = remaining
	s := c.state
	c.mu.Unlock()
	return s
}

// tickFrom is the scheduler callback for tick source gen.
func (c *Controller) tickFrom(gen uint64) {
	c.mu.Lock()
	if gen != c.gen {
		c.mu.Unlock()
		return
	}
	c.tickLocked()
}

// tickLocked must be called with c.mu held and releases it.
func (c *Controller) tickLocked() State {
	if c.state.Status != StatusRunning {
		s := c.state
		c.mu.Unlock()
		return s
	}

	now := c.clock.Now()
	remaining := c.state.EndsAt.Sub(now)
	if remaining > 0 {
		c.state.Remaining = remaining
		s := c.state
		onTick := c.onTick
		c.mu.Unlock()

		if onTick != nil {
			onTick(s)
		}
		return s
	}

	return c.finishLocked(now)
}

// finishLocked must be called with c.mu held on a running countdown and releases it.
func (c *Controller) finishLocked(now time.Time) State {
	old := c.state
	c.stopTicking()
	c.state.Status = StatusFinished
	c.state.Remaining = 0
	c.stamp()
	s := c.state
	done := Completion{
		RunID:            s.RunID,
		PresetIndex:      s.PresetIndex,
		Preset:           s.Preset,
		StartedAt:        s.StartedAt,
		EndsAt:           s.EndsAt,
		FinishedAt:       now,
		NotifyOnComplete: s.NotifyOnComplete,
	}
	onChange, onFinish := c.onStateChange, c.onFinish
	c.mu.Unlock()

	if onChange != nil {
		onChange(old, s)
	}
	if onFinish != nil {
		onFinish(done)
	}
	return s
}

// Stop cancels a running countdown without firing the completion callback.
// Once Stop returns no tick from the cancelled countdown changes state.
func (c *Controller) Stop() State {
	c.mu.Lock()
	if c.state.Status != StatusRunning {
		s := c.state
		c.mu.Unlock()
		return s
	}

	old := c.state
	c.stopTicking()
	c.state = State{Status: StatusIdle, NotifyOnComplete: old.NotifyOnComplete}
	c.stamp()
	s := c.state
	onChange := c.onStateChange
	c.mu.Unlock()

	if onChange != nil {
		onChange(old, s)
	}
	return s
}

// Acknowledge returns a finished countdown to idle.
func (c *Controller) Acknowledge() State {
	c.mu.Lock()
	if c.state.Status != StatusFinished {
		s := c.state
		c.mu.Unlock()
		return s
	}

	old := c.state
	c.state = State{Status: StatusIdle, NotifyOnComplete: old.NotifyOnComplete}
	c.stamp()
	s := c.state
	onChange := c.onStateChange
	c.mu.Unlock()

	if onChange != nil {
		onChange(old, s)
	}
	return s
}

// Snapshot captures the state needed to resume after the process exits.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Snapshot()
}

// Restore replaces the current state with snap, recomputing the remaining
// time from the wall clock. A running snapshot whose end time has already
// passed finishes immediately and fires the completion callback once.
// Restore does not invoke OnStateChange for the restored state itself.
func (c *Controller) Restore(snap Snapshot) (State, error) {
	var p presets.Preset
	if snap.Status != StatusIdle {
		var err error
		p, err = c.table.At(snap.PresetIndex)
		if err != nil {
			return c.State(), fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
		}
		if p.IsPlaceholder() || snap.EndsAt.IsZero() || snap.EndsAt.Before(snap.StartedAt) {
			return c.State(), ErrInvalidSnapshot
		}
	}

	c.mu.Lock()
	c.stopTicking()

	switch snap.Status {
	case StatusIdle:
		c.state = State{Status: StatusIdle, NotifyOnComplete: snap.NotifyOnComplete}
		c.stamp()
	case StatusFinished:
		c.state = State{
			Status:           StatusFinished,
			RunID:            snap.RunID,
			PresetIndex:      snap.PresetIndex,
			Preset:           p,
			StartedAt:        snap.StartedAt,
			EndsAt:           snap.EndsAt,
			NotifyOnComplete: snap.NotifyOnComplete,
		}
		c.stamp()
	case StatusRunning:
		c.state = State{
			Status:           StatusRunning,
			RunID:            snap.RunID,
			PresetIndex:      snap.PresetIndex,
			Preset:           p,
			StartedAt:        snap.StartedAt,
			EndsAt:           snap.EndsAt,
			NotifyOnComplete: snap.NotifyOnComplete,
		}
		if c.state.RunID == "" {
			c.state.RunID = uuid.NewString()
		}
		c.stamp()
		now := c.clock.Now()
		remaining := snap.EndsAt.Sub(now)
		if remaining <= 0 {
			return c.finishLocked(now), nil
		}
		c.state.Remaining = remaining
		c.beginTicking()
	default:
		c.mu.Unlock()
		return c.State(), fmt.Errorf("%w: status %d", ErrInvalidSnapshot, snap.Status)
	}

	s := c.state
	c.mu.Unlock()
	return s, nil
}

// Close cancels any tick source without changing state, so a snapshot taken
// afterwards still describes a running countdown.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopTicking()
}

// stamp marks c.state as a new revision. It must be called with c.mu held.
func (c *Controller) stamp() {
	c.rev++
	c.state.Rev = c.rev
}

// beginTicking must be called with c.mu held.
func (c *Controller) beginTicking() {
	c.stopTicking()
	if c.scheduler == nil {
		return
	}
	gen := c.gen
	c.cancel = c.scheduler.Every(c.interval, func() { c.tickFrom(gen) })
}

// stopTicking must be called with c.mu held.
func (c *Controller) stopTicking() {
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.gen++
}
