package timer

import "fmt"

// Status is the countdown lifecycle state.
type Status uint8

const (
	// StatusIdle means no countdown is active.
	StatusIdle Status = iota

	// StatusRunning means a countdown is active and ticking.
	StatusRunning

	// StatusFinished means the countdown reached zero and is waiting to be acknowledged.
	StatusFinished
)

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusRunning:
		return "running"
	case StatusFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// ParseStatus is the inverse of String.
func ParseStatus(s string) (Status, error) {
	switch s {
	case "idle", "":
		return StatusIdle, nil
	case "running":
		return StatusRunning, nil
	case "finished":
		return StatusFinished, nil
	default:
		return StatusIdle, fmt.Errorf("unknown timer status %q", s)
	}
}
