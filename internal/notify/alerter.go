package notify

import (
	"log/slog"
	"time"

	"golang.org/x/text/language"

	"github.com/sliicy/meatdairy/internal/timer"
)

// Alert titles.
const (
	TitleDairyNow = "You can eat dairy now!"
	TitleDairyAt  = "You can eat dairy at"
)

// CompletionAlert builds the auto-dismissing alert shown when a countdown finishes.
func CompletionAlert(c timer.Completion, locale language.Tag) Alert {
	return Alert{
		Title:  TitleDairyNow,
		Body:   timer.Pluralize(c.Preset.Label, locale) + " elapsed since " + timer.FormatClockTime(c.StartedAt) + ".",
		Sticky: false,
	}
}

// PendingAlert builds the sticky alert shown while a countdown runs unattended.
func PendingAlert(s timer.State) Alert {
	return Alert{
		Title:  TitleDairyAt,
		Body:   timer.FormatClockTime(s.EndsAt),
		Sticky: true,
	}
}

// Alerter performs the side effects around the countdown lifecycle.
// None of its methods fail: delivery problems are logged and dropped.
type Alerter struct {
	Notifier Notifier
	Feedback Feedback
	Pattern  []time.Duration
	Locale   language.Tag
	Logger   *slog.Logger
}

// Finished replaces any pending alert with the completion alert, plays the
// sound when the user asked for it, and always vibrates.
func (a *Alerter) Finished(c timer.Completion) {
	log := a.logger()

	if a.Notifier != nil {
		if err := a.Notifier.Dismiss(); err != nil {
			log.Debug("dismiss before completion failed", "error", err)
		}
		if err := a.Notifier.Show(CompletionAlert(c, a.Locale)); err != nil {
			log.Warn("completion alert failed", "run_id", c.RunID, "error", err)
		}
	}

	if a.Feedback == nil {
		return
	}
	if c.NotifyOnComplete {
		if err := a.Feedback.PlaySound(); err != nil {
			log.Debug("sound unavailable", "error", err)
		}
	}
	pattern := a.Pattern
	if len(pattern) == 0 {
		pattern = DefaultVibration
	}
	if err := a.Feedback.Vibrate(pattern); err != nil {
		log.Debug("vibration unavailable", "error", err)
	}
}

// Backgrounded shows the sticky pending alert when the screen is left while a countdown runs.
func (a *Alerter) Backgrounded(s timer.State) {
	if a.Notifier == nil || s.Status != timer.StatusRunning {
		return
	}
	if err := a.Notifier.Show(PendingAlert(s)); err != nil {
		a.logger().Warn("pending alert failed", "run_id", s.RunID, "error", err)
	}
}

// Foregrounded removes whatever alert is showing.
func (a *Alerter) Foregrounded() {
	if a.Notifier == nil {
		return
	}
	if err := a.Notifier.Dismiss(); err != nil {
		a.logger().Debug("dismiss failed", "error", err)
	}
}

func (a *Alerter) logger() *slog.Logger {
	if a.Logger != nil {
		return a.Logger
	}
	return slog.Default()
}
