package notify

import (
	"github.com/gen2brain/beeep"
)

// Desktop shows alerts as operating system notifications.
//
// Desktop notifications cannot be pinned or withdrawn portably, so sticky
// alerts are shown like any other and Dismiss does nothing.
type Desktop struct {
	Icon string
	send func(title, body, icon string) error
}

// NewDesktop creates a desktop notifier.
func NewDesktop(icon string) *Desktop {
	return &Desktop{
		Icon: icon,
		send: func(title, body, icon string) error {
			return beeep.Notify(title, body, icon)
		},
	}
}

// Show sends the alert to the desktop.
func (d *Desktop) Show(alert Alert) error {
	return d.send(alert.Title, alert.Body, d.Icon)
}

// Dismiss is a no-op.
func (d *Desktop) Dismiss() error {
	return nil
}
