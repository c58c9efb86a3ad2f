// Package app ties the countdown controller to saved preferences, the
// persisted countdown, history and alerts. The interactive screen and the
// CLI commands render its state and forward user intents to it.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/sliicy/meatdairy/internal/models"
	"github.com/sliicy/meatdairy/internal/notify"
	"github.com/sliicy/meatdairy/internal/presets"
	"github.com/sliicy/meatdairy/internal/timer"
)

// DefaultSyncInterval is how often Wait re-reads the persisted countdown to
// notice changes made by other meatdairy processes.
const DefaultSyncInterval = 2 * time.Second

var (
	// ErrRunning is returned when the preset is changed during a countdown.
	ErrRunning = errors.New("stop the countdown before choosing another preset")

	// ErrNotRunning is returned by Wait when there is nothing to wait for.
	ErrNotRunning = errors.New("no countdown is running")
)

// Store persists preferences, the live countdown and the history.
type Store interface {
	LoadPreferences() (*models.Preferences, error)
	SavePreferences(selectedPresetIndex int, notifyOnComplete bool) error
	LoadTimer() (*timer.Snapshot, error)
	SaveTimer(snap timer.Snapshot) error
	RecordRun(run *models.Run) error
}

// Preferences are the user's saved choices.
type Preferences struct {
	SelectedPresetIndex int
	NotifyOnComplete    bool
}

// Options configures Open.
type Options struct {
	Table        *presets.Table
	Store        Store
	Alerter      *notify.Alerter
	Logger       *slog.Logger
	Clock        timer.Clock
	Scheduler    timer.Scheduler // nil means a real ticker
	TickInterval time.Duration
	SyncInterval time.Duration
}

// App is the screen-independent session.
type App struct {
	table   *presets.Table
	store   Store
	alerter *notify.Alerter
	log     *slog.Logger
	clock   timer.Clock
	ctrl    *timer.Controller

	syncInterval time.Duration

	mu       sync.Mutex
	prefs    Preferences
	onUpdate func(timer.State)
	waiters  []chan timer.State

	// saveMu orders snapshot writes; savedRev is the newest revision written.
	saveMu   sync.Mutex
	savedRev uint64
}

// Open loads the saved preferences and resumes any persisted countdown.
// A countdown that ended while no process was watching finishes immediately
// and raises its completion alert.
func Open(opts Options) (*App, error) {
	if opts.Store == nil {
		return nil, errors.New("app: store is required")
	}

	a := &App{
		table:        opts.Table,
		store:        opts.Store,
		alerter:      opts.Alerter,
		log:          opts.Logger,
		clock:        opts.Clock,
		syncInterval: opts.SyncInterval,
	}
	if a.table == nil {
		a.table = presets.Default()
	}
	if a.alerter == nil {
		a.alerter = &notify.Alerter{}
	}
	if a.log == nil {
		a.log = slog.Default()
	}
	if a.clock == nil {
		a.clock = timer.SystemClock{}
	}
	if a.syncInterval <= 0 {
		a.syncInterval = DefaultSyncInterval
	}

	ctrlOpts := []timer.Option{timer.WithClock(a.clock), timer.WithTickInterval(opts.TickInterval)}
	if opts.Scheduler != nil {
		ctrlOpts = append(ctrlOpts, timer.WithScheduler(opts.Scheduler))
	}
	a.ctrl = timer.NewController(a.table, ctrlOpts...)

	if err := a.loadPreferences(); err != nil {
		return nil, err
	}

	a.ctrl.OnStateChange(a.handleStateChange)
	a.ctrl.OnFinish(a.handleFinish)
	a.ctrl.OnTick(a.publish)

	if err := a.restore(); err != nil {
		return nil, err
	}
	a.ctrl.SetNotifyOnComplete(a.prefs.NotifyOnComplete)

	return a, nil
}

func (a *App) loadPreferences() error {
	saved, err := a.store.LoadPreferences()
	if err != nil {
		return fmt.Errorf("load preferences: %w", err)
	}

	prefs := Preferences{}
	if saved != nil {
		prefs.SelectedPresetIndex = saved.SelectedPresetIndex
		prefs.NotifyOnComplete = saved.NotifyOnComplete
	}

	normalized := a.table.Normalize(prefs.SelectedPresetIndex)
	if normalized != prefs.SelectedPresetIndex {
		a.log.Info("saved preset no longer exists, resetting selection", "saved", prefs.SelectedPresetIndex)
		prefs.SelectedPresetIndex = normalized
		if err := a.store.SavePreferences(prefs.SelectedPresetIndex, prefs.NotifyOnComplete); err != nil {
			return fmt.Errorf("save preferences: %w", err)
		}
	}

	a.prefs = prefs
	return nil
}

func (a *App) restore() error {
	snap, err := a.store.LoadTimer()
	if err != nil {
		return fmt.Errorf("load countdown: %w", err)
	}
	if snap == nil {
		return nil
	}

	s, err := a.ctrl.Restore(*snap)
	if err != nil {
		a.log.Warn("discarding unusable saved countdown", "error", err)
		if err := a.store.SaveTimer(timer.Snapshot{Status: timer.StatusIdle}); err != nil {
			return fmt.Errorf("clear countdown: %w", err)
		}
		return nil
	}

	a.log.Info("resumed countdown", "run_id", s.RunID, "status", s.Status.String(), "remaining", s.Remaining)
	return nil
}

// OnUpdate sets a callback that receives every tick and transition.
// It runs on the ticking goroutine and must not block.
func (a *App) OnUpdate(fn func(timer.State)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.onUpdate = fn
}

// Table returns the preset table.
func (a *App) Table() *presets.Table {
	return a.table
}

// Preferences returns the current preferences.
func (a *App) Preferences() Preferences {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.prefs
}

// SelectedPreset returns the preset the next Start will use.
func (a *App) SelectedPreset() presets.Preset {
	p, _ := a.table.At(a.Preferences().SelectedPresetIndex)
	return p
}

// State returns the countdown state, re-evaluated against the wall clock.
// It does not publish an update, so OnUpdate consumers may call it freely.
func (a *App) State() timer.State {
	return a.ctrl.Current()
}

// SelectPreset changes and saves the selection. It is refused while a countdown runs.
func (a *App) SelectPreset(index int) error {
	if _, err := a.table.At(index); err != nil {
		return err
	}
	if a.ctrl.State().Status == timer.StatusRunning {
		return ErrRunning
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.store.SavePreferences(index, a.prefs.NotifyOnComplete); err != nil {
		return fmt.Errorf("save preferences: %w", err)
	}
	a.prefs.SelectedPresetIndex = index
	a.log.Debug("preset selected", "index", index)
	return nil
}

// SetNotify changes and saves whether a sound plays on completion.
func (a *App) SetNotify(on bool) error {
	a.mu.Lock()
	if err := a.store.SavePreferences(a.prefs.SelectedPresetIndex, on); err != nil {
		a.mu.Unlock()
		return fmt.Errorf("save preferences: %w", err)
	}
	a.prefs.NotifyOnComplete = on
	a.mu.Unlock()

	a.ctrl.SetNotifyOnComplete(on)
	if s := a.ctrl.State(); s.Status == timer.StatusRunning {
		a.persist(s)
	}
	return nil
}

// Start begins a countdown for the selected preset.
// Starting while a countdown runs returns the running state unchanged.
func (a *App) Start() (timer.State, error) {
	return a.ctrl.Start(a.Preferences().SelectedPresetIndex)
}

// StartPreset selects index and starts it. While a countdown runs the
// selection is left alone and the running state is returned.
func (a *App) StartPreset(index int) (timer.State, error) {
	if s := a.ctrl.State(); s.Status == timer.StatusRunning {
		return s, nil
	}
	if err := a.SelectPreset(index); err != nil {
		return a.ctrl.State(), err
	}
	return a.Start()
}

// Stop cancels a running countdown.
func (a *App) Stop() timer.State {
	return a.ctrl.Stop()
}

// Acknowledge clears a finished countdown.
func (a *App) Acknowledge() timer.State {
	return a.ctrl.Acknowledge()
}

// Background is called when the screen is left. A running countdown gets a sticky alert.
func (a *App) Background() {
	a.alerter.Backgrounded(a.ctrl.State())
}

// Foreground is called when the screen is shown again.
func (a *App) Foreground() {
	a.alerter.Foregrounded()
}

// Sync reconciles the controller with the persisted countdown, which other
// meatdairy processes may have started, stopped or finished.
func (a *App) Sync() error {
	snap, err := a.store.LoadTimer()
	if err != nil {
		return fmt.Errorf("load countdown: %w", err)
	}

	cur := a.ctrl.Snapshot()
	if snap == nil {
		switch cur.Status {
		case timer.StatusRunning:
			a.log.Info("countdown stopped elsewhere", "run_id", cur.RunID)
			a.ctrl.Stop()
		case timer.StatusFinished:
			a.ctrl.Acknowledge()
		}
		return nil
	}

	if snap.RunID == cur.RunID && snap.Status == cur.Status {
		return nil
	}
	if snap.RunID == cur.RunID && cur.Status == timer.StatusFinished {
		// Our own finish is newer than what is on disk.
		return nil
	}

	s, err := a.ctrl.Restore(*snap)
	if err != nil {
		return err
	}
	if s.Status != timer.StatusRunning {
		a.release(s)
	}
	a.publish(s)
	return nil
}

// Wait blocks until the countdown finishes, is stopped, or ctx is done.
func (a *App) Wait(ctx context.Context) (timer.State, error) {
	ch := make(chan timer.State, 1)
	a.mu.Lock()
	a.waiters = append(a.waiters, ch)
	a.mu.Unlock()
	defer a.removeWaiter(ch)

	s := a.ctrl.Tick()
	switch s.Status {
	case timer.StatusFinished:
		return s, nil
	case timer.StatusIdle:
		return s, ErrNotRunning
	}

	resync := time.NewTicker(a.syncInterval)
	defer resync.Stop()

	for {
		select {
		case s := <-ch:
			return s, nil
		case <-resync.C:
			if err := a.Sync(); err != nil {
				a.log.Warn("sync failed", "error", err)
			}
		case <-ctx.Done():
			return a.ctrl.State(), ctx.Err()
		}
	}
}

// Close stops ticking. The countdown stays persisted and resumes on the next Open.
func (a *App) Close() {
	a.ctrl.Close()
}

func (a *App) handleStateChange(oldState, newState timer.State) {
	a.persist(newState)

	if oldState.Status == timer.StatusRunning && newState.Status == timer.StatusIdle {
		now := a.clock.Now()
		a.record(&models.Run{
			RunID:       oldState.RunID,
			PresetIndex: oldState.PresetIndex,
			PresetLabel: oldState.Preset.Label,
			StartedAt:   oldState.StartedAt,
			EndsAt:      oldState.EndsAt,
			FinishedAt:  &now,
			Outcome:     models.OutcomeCancelled,
		})
		a.log.Info("countdown stopped", "run_id", oldState.RunID, "preset", oldState.Preset.Label)
	}
	if newState.Status == timer.StatusRunning && oldState.Status != timer.StatusRunning {
		a.log.Info("countdown started", "run_id", newState.RunID, "preset", newState.Preset.Label, "ends_at", newState.EndsAt)
	}

	if newState.Status == timer.StatusIdle {
		a.release(newState)
	}
	a.publish(newState)
}

func (a *App) handleFinish(c timer.Completion) {
	finishedAt := c.FinishedAt
	a.record(&models.Run{
		RunID:       c.RunID,
		PresetIndex: c.PresetIndex,
		PresetLabel: c.Preset.Label,
		StartedAt:   c.StartedAt,
		EndsAt:      c.EndsAt,
		FinishedAt:  &finishedAt,
		Outcome:     models.OutcomeCompleted,
	})
	a.log.Info("countdown finished", "run_id", c.RunID, "preset", c.Preset.Label)
	a.alerter.Finished(c)
	a.release(a.ctrl.State())
}

// persist writes s unless a newer revision has already been written.
// State change hooks run outside the controller lock and may arrive out of order.
func (a *App) persist(s timer.State) {
	a.saveMu.Lock()
	defer a.saveMu.Unlock()
	if s.Rev < a.savedRev {
		a.log.Debug("skipping stale countdown snapshot", "run_id", s.RunID, "rev", s.Rev, "saved_rev", a.savedRev)
		return
	}
	if err := a.store.SaveTimer(s.Snapshot()); err != nil {
		a.log.Error("failed to persist countdown", "run_id", s.RunID, "error", err)
		return
	}
	a.savedRev = s.Rev
}

func (a *App) record(run *models.Run) {
	if err := a.store.RecordRun(run); err != nil {
		a.log.Error("failed to record run", "run_id", run.RunID, "error", err)
	}
}

func (a *App) publish(s timer.State) {
	a.mu.Lock()
	fn := a.onUpdate
	a.mu.Unlock()
	if fn != nil {
		fn(s)
	}
}

func (a *App) release(s timer.State) {
	a.mu.Lock()
	waiters := a.waiters
	a.waiters = nil
	a.mu.Unlock()

	for _, ch := range waiters {
		select {
		case ch <- s:
		default:
		}
	}
}

func (a *App) removeWaiter(ch chan timer.State) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for i, w := range a.waiters {
		if w == ch {
			a.waiters = append(a.waiters[:i], a.waiters[i+1:]...)
			return
		}
	}
}
