package timer

import (
	"fmt"
	"time"
)

// ClockLayout is the 12-hour wall-clock layout used in alerts ("03:07 PM").
const ClockLayout = "03:04 PM"

// FormatRemaining formats d as zero-padded HH:MM:SS, dropping any
// sub-second remainder. Non-positive durations format as 00:00:00.
func FormatRemaining(d time.Duration) string {
	if d <= 0 {
		return "00:00:00"
	}
	total := int64(d / time.Second)
	hours := total / 3600
	minutes := total % 3600 / 60
	seconds := total % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}

// FormatRemainingMillis is FormatRemaining for a millisecond count.
func FormatRemainingMillis(ms int64) string {
	return FormatRemaining(time.Duration(ms) * time.Millisecond)
}

// FormatClockTime formats t in the local time zone as "hh:mm AM/PM".
func FormatClockTime(t time.Time) string {
	return t.In(time.Local).Format(ClockLayout)
}
