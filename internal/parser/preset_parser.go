package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/sliicy/meatdairy/internal/presets"
)

var (
	relativeRegex = regexp.MustCompile(`^(\d+)\s*(s|sec|secs|second|seconds|m|min|mins|minute|minutes|h|hr|hrs|hour|hours)$`)
	compactRegex  = regexp.MustCompile(`^(\d+h)?(\d+m)?(\d+s)?$`)
)

// ResolvePreset turns a command-line argument into a preset index
// Supported formats:
// - index (e.g., "3")
// - exact label (e.g., "1 Hour", "5 second demo")
// - compact duration (e.g., "6h", "5h31m", "5s")
// - X unit (e.g., "6 hours", "90 minutes")
// A duration must match a preset exactly.
func ResolvePreset(table *presets.Table, input string) (int, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return 0, fmt.Errorf("no preset given")
	}

	if index, err := strconv.Atoi(input); err == nil {
		if _, err := table.At(index); err != nil {
			return 0, fmt.Errorf("preset index must be between 0 and %d", table.Len()-1)
		}
		return index, nil
	}

	if index, _, err := table.Lookup(input); err == nil {
		return index, nil
	}

	d, err := ParseWaitDuration(input)
	if err != nil {
		return 0, fmt.Errorf("unknown preset %q. Use an index, a label, or a duration like 6h (see 'meatdairy presets')", input)
	}

	index, _, err := table.FindDuration(d)
	if err != nil {
		return 0, fmt.Errorf("no preset lasts %s (see 'meatdairy presets')", d)
	}
	return index, nil
}

// ParseWaitDuration parses "6h", "5h31m", "6 hours", "90 minutes"
func ParseWaitDuration(input string) (time.Duration, error) {
	input = strings.ToLower(strings.TrimSpace(input))

	if matches := relativeRegex.FindStringSubmatch(input); len(matches) == 3 {
		amount, err := strconv.Atoi(matches[1])
		if err != nil {
			return 0, fmt.Errorf("invalid number")
		}
		return time.Duration(amount) * unitOf(matches[2]), nil
	}

	if input != "" && compactRegex.MatchString(input) {
		d, err := time.ParseDuration(input)
		if err != nil {
			return 0, err
		}
		return d, nil
	}

	return 0, fmt.Errorf("invalid duration format. Use: 6h, 5h31m, X hours, or X minutes")
}

func unitOf(unit string) time.Duration {
	switch unit {
	case "h", "hr", "hrs", "hour", "hours":
		return time.Hour
	case "m", "min", "mins", "minute", "minutes":
		return time.Minute
	default:
		return time.Second
	}
}
