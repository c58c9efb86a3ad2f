package notify

import (
	"errors"
	"time"

	"github.com/gen2brain/beeep"
)

// ErrNoHaptics is returned by feedback devices that cannot vibrate.
var ErrNoHaptics = errors.New("no vibration device")

// DefaultVibration is a single three second buzz.
var DefaultVibration = []time.Duration{0, 3 * time.Second}

// Feedback plays sounds and vibration patterns. Callers treat every error as non-fatal.
type Feedback interface {
	Vibrate(pattern []time.Duration) error
	PlaySound() error
}

// Beeper plays the platform beep. It has no vibration motor.
type Beeper struct {
	beep func() error
}

// NewBeeper creates a Beeper using the default beep tone.
func NewBeeper() *Beeper {
	return &Beeper{
		beep: func() error {
			return beeep.Beep(beeep.DefaultFreq, beeep.DefaultDuration)
		},
	}
}

// PlaySound plays the default notification beep.
func (b *Beeper) PlaySound() error {
	return b.beep()
}

// Vibrate always fails with ErrNoHaptics.
func (b *Beeper) Vibrate(pattern []time.Duration) error {
	return ErrNoHaptics
}
