package notify

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/sliicy/meatdairy/internal/presets"
	"github.com/sliicy/meatdairy/internal/timer"
)

type recordingNotifier struct {
	shown     []Alert
	dismissed int
	err       error
}

func (r *recordingNotifier) Show(alert Alert) error {
	r.shown = append(r.shown, alert)
	return r.err
}

func (r *recordingNotifier) Dismiss() error {
	r.dismissed++
	return r.err
}

type recordingFeedback struct {
	sounds    int
	vibrated  [][]time.Duration
	soundErr  error
	hapticErr error
}

func (r *recordingFeedback) PlaySound() error {
	r.sounds++
	return r.soundErr
}

func (r *recordingFeedback) Vibrate(pattern []time.Duration) error {
	r.vibrated = append(r.vibrated, pattern)
	return r.hapticErr
}

func completion(notify bool) timer.Completion {
	start := time.Date(2024, 6, 1, 13, 5, 0, 0, time.Local)
	return timer.Completion{
		RunID:            "run",
		PresetIndex:      1,
		Preset:           presets.Preset{Label: "6 Hours", Duration: 6 * time.Hour},
		StartedAt:        start,
		EndsAt:           start.Add(6 * time.Hour),
		FinishedAt:       start.Add(6 * time.Hour),
		NotifyOnComplete: notify,
	}
}

func TestCompletionAlert(t *testing.T) {
	alert := CompletionAlert(completion(false), language.English)

	assert.Equal(t, TitleDairyNow, alert.Title)
	assert.Equal(t, "6 Hours have elapsed since 01:05 PM.", alert.Body)
	assert.False(t, alert.Sticky)

	alert = CompletionAlert(completion(false), language.Hebrew)
	assert.Equal(t, "6 Hours elapsed since 01:05 PM.", alert.Body)
}

func TestPendingAlert(t *testing.T) {
	end := time.Date(2024, 6, 1, 19, 5, 0, 0, time.Local)
	alert := PendingAlert(timer.State{Status: timer.StatusRunning, EndsAt: end})

	assert.Equal(t, TitleDairyAt, alert.Title)
	assert.Equal(t, "07:05 PM", alert.Body)
	assert.True(t, alert.Sticky)
}

func TestAlerterFinishedWithSound(t *testing.T) {
	n := &recordingNotifier{}
	f := &recordingFeedback{}
	a := &Alerter{Notifier: n, Feedback: f, Locale: language.English}

	a.Finished(completion(true))

	require.Len(t, n.shown, 1)
	assert.Equal(t, TitleDairyNow, n.shown[0].Title)
	assert.Equal(t, 1, n.dismissed)
	assert.Equal(t, 1, f.sounds)
	require.Len(t, f.vibrated, 1)
	assert.Equal(t, DefaultVibration, f.vibrated[0])
}

func TestAlerterFinishedSilent(t *testing.T) {
	f := &recordingFeedback{}
	a := &Alerter{Notifier: &recordingNotifier{}, Feedback: f, Pattern: []time.Duration{0, time.Second}}

	a.Finished(completion(false))

	assert.Equal(t, 0, f.sounds)
	require.Len(t, f.vibrated, 1)
	assert.Equal(t, []time.Duration{0, time.Second}, f.vibrated[0])
}

func TestAlerterSwallowsFeedbackFailures(t *testing.T) {
	n := &recordingNotifier{err: errors.New("no display")}
	f := &recordingFeedback{soundErr: errors.New("no speaker"), hapticErr: ErrNoHaptics}
	a := &Alerter{Notifier: n, Feedback: f}

	assert.NotPanics(t, func() { a.Finished(completion(true)) })
	assert.Len(t, n.shown, 1)
	assert.Equal(t, 1, f.sounds)
	assert.Len(t, f.vibrated, 1)
}

func TestAlerterBackgroundedOnlyWhileRunning(t *testing.T) {
	n := &recordingNotifier{}
	a := &Alerter{Notifier: n}

	a.Backgrounded(timer.State{Status: timer.StatusIdle})
	assert.Empty(t, n.shown)

	a.Backgrounded(timer.State{Status: timer.StatusRunning, EndsAt: time.Now()})
	require.Len(t, n.shown, 1)
	assert.True(t, n.shown[0].Sticky)

	a.Foregrounded()
	assert.Equal(t, 1, n.dismissed)
}

func TestAlerterWithoutCollaborators(t *testing.T) {
	a := &Alerter{}
	assert.NotPanics(t, func() {
		a.Finished(completion(true))
		a.Backgrounded(timer.State{Status: timer.StatusRunning})
		a.Foregrounded()
	})
}

func TestBanner(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	b := NewBanner(10 * time.Second)
	b.now = func() time.Time { return now }

	_, ok := b.Current()
	assert.False(t, ok)

	require.NoError(t, b.Show(Alert{Title: "sticky", Sticky: true}))
	now = now.Add(time.Hour)
	got, ok := b.Current()
	require.True(t, ok)
	assert.Equal(t, "sticky", got.Title)

	require.NoError(t, b.Dismiss())
	_, ok = b.Current()
	assert.False(t, ok)

	require.NoError(t, b.Show(Alert{Title: "brief"}))
	now = now.Add(9 * time.Second)
	_, ok = b.Current()
	assert.True(t, ok)
	now = now.Add(time.Second)
	_, ok = b.Current()
	assert.False(t, ok)
}

func TestMulti(t *testing.T) {
	a := &recordingNotifier{}
	b := &recordingNotifier{err: errors.New("boom")}
	m := NewMulti(a, nil)
	m.Add(b)
	m.Add(nil)

	err := m.Show(Alert{Title: "x"})
	assert.ErrorContains(t, err, "boom")
	assert.Len(t, a.shown, 1)
	assert.Len(t, b.shown, 1)

	err = m.Dismiss()
	assert.Error(t, err)
	assert.Equal(t, 1, a.dismissed)
}

func TestDesktop(t *testing.T) {
	var got []string
	d := NewDesktop("icon.png")
	d.send = func(title, body, icon string) error {
		got = []string{title, body, icon}
		return nil
	}

	require.NoError(t, d.Show(Alert{Title: "t", Body: "b"}))
	assert.Equal(t, []string{"t", "b", "icon.png"}, got)
	assert.NoError(t, d.Dismiss())
}

func TestBeeper(t *testing.T) {
	calls := 0
	b := &Beeper{beep: func() error { calls++; return nil }}

	assert.NoError(t, b.PlaySound())
	assert.Equal(t, 1, calls)
	assert.ErrorIs(t, b.Vibrate(DefaultVibration), ErrNoHaptics)
}
