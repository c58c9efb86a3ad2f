// Package notify delivers user-visible alerts and best-effort sound and
// vibration feedback for the countdown.
package notify

import (
	"errors"
	"sync"
)

// Alert is a user-visible message. A sticky alert stays until Dismiss is called.
type Alert struct {
	Title  string
	Body   string
	Sticky bool
}

// Notifier displays and removes alerts.
type Notifier interface {
	Show(alert Alert) error
	Dismiss() error
}

// Multi fans an alert out to several notifiers.
type Multi struct {
	mu        sync.Mutex
	notifiers []Notifier
}

// NewMulti combines notifiers. Nil entries are skipped.
func NewMulti(notifiers ...Notifier) *Multi {
	m := &Multi{}
	for _, n := range notifiers {
		if n != nil {
			m.notifiers = append(m.notifiers, n)
		}
	}
	return m
}

// Add appends another notifier.
func (m *Multi) Add(n Notifier) {
	if n == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notifiers = append(m.notifiers, n)
}

// Show delivers the alert to every notifier and joins their errors.
func (m *Multi) Show(alert Alert) error {
	var errs []error
	for _, n := range m.list() {
		if err := n.Show(alert); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Dismiss removes the current alert from every notifier.
func (m *Multi) Dismiss() error {
	var errs []error
	for _, n := range m.list() {
		if err := n.Dismiss(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m *Multi) list() []Notifier {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Notifier, len(m.notifiers))
	copy(out, m.notifiers)
	return out
}
