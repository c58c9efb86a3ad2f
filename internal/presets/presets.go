// Package presets holds the table of waiting durations (minhagim) the user can pick from.
package presets

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	// ErrUnknownPreset is returned for an index or label outside the table.
	ErrUnknownPreset = errors.New("unknown preset")

	// ErrInvalidTable is returned when a table does not have exactly one placeholder row.
	ErrInvalidTable = errors.New("preset table must contain exactly one placeholder")
)

// Preset is one selectable waiting duration
type Preset struct {
	Label    string        // shown in the picker and used in the completion message
	Custom   string        // who holds this custom
	Duration time.Duration // zero only for the placeholder row
}

// IsPlaceholder reports whether this row is the "please choose" entry
func (p Preset) IsPlaceholder() bool {
	return p.Duration == 0
}

// Millis returns the duration in milliseconds
func (p Preset) Millis() int64 {
	return p.Duration.Milliseconds()
}

// Table is an immutable, ordered list of presets. The index of a preset is its selection position.
type Table struct {
	presets []Preset
}

// Default returns the built-in table
func Default() *Table {
	t, err := NewTable([]Preset{
		{Label: "Select a minhag", Custom: "", Duration: 0},
		{Label: "6 Hours", Custom: "Most Sephardic and many Ashkenazic communities", Duration: 6 * time.Hour},
		{Label: "5 Hours and 31 Minutes", Custom: "Just over five and a half hours", Duration: 5*time.Hour + 31*time.Minute},
		{Label: "5 Hours and 1 Minute", Custom: "Just over five hours", Duration: 5*time.Hour + time.Minute},
		{Label: "3 Hours", Custom: "German communities", Duration: 3 * time.Hour},
		{Label: "1 Hour", Custom: "Dutch communities", Duration: time.Hour},
		{Label: "5 Second Demo", Custom: "Try the finish alert without waiting", Duration: 5 * time.Second},
	})
	if err != nil {
		panic(err)
	}
	return t
}

// NewTable validates and copies the given rows
func NewTable(rows []Preset) (*Table, error) {
	placeholders := 0
	for _, p := range rows {
		if p.Duration < 0 {
			return nil, fmt.Errorf("preset %q has negative duration", p.Label)
		}
		if p.IsPlaceholder() {
			placeholders++
		}
	}
	if placeholders != 1 {
		return nil, ErrInvalidTable
	}

	copied := make([]Preset, len(rows))
	copy(copied, rows)
	return &Table{presets: copied}, nil
}

// Len returns the number of rows, placeholder included
func (t *Table) Len() int {
	return len(t.presets)
}

// All returns a copy of every row in selection order
func (t *Table) All() []Preset {
	out := make([]Preset, len(t.presets))
	copy(out, t.presets)
	return out
}

// At returns the preset at index
func (t *Table) At(index int) (Preset, error) {
	if index < 0 || index >= len(t.presets) {
		return Preset{}, fmt.Errorf("%w: index %d", ErrUnknownPreset, index)
	}
	return t.presets[index], nil
}

// Duration returns the waiting duration for index. The placeholder yields 0.
func (t *Table) Duration(index int) (time.Duration, error) {
	p, err := t.At(index)
	if err != nil {
		return 0, err
	}
	return p.Duration, nil
}

// Millis returns the waiting duration for index in milliseconds
func (t *Table) Millis(index int) (int64, error) {
	d, err := t.Duration(index)
	if err != nil {
		return 0, err
	}
	return d.Milliseconds(), nil
}

// Lookup finds a preset by label, ignoring case and surrounding whitespace
func (t *Table) Lookup(label string) (int, Preset, error) {
	label = strings.TrimSpace(label)
	for i, p := range t.presets {
		if strings.EqualFold(p.Label, label) {
			return i, p, nil
		}
	}
	return -1, Preset{}, fmt.Errorf("%w: %q", ErrUnknownPreset, label)
}

// FindDuration returns the first real preset with exactly duration d
func (t *Table) FindDuration(d time.Duration) (int, Preset, error) {
	if d > 0 {
		for i, p := range t.presets {
			if p.Duration == d {
				return i, p, nil
			}
		}
	}
	return -1, Preset{}, fmt.Errorf("%w: no preset lasts %s", ErrUnknownPreset, d)
}

// IsPlaceholder reports whether index is the "please choose" row.
// Out-of-range indexes are not placeholders; At reports them.
func (t *Table) IsPlaceholder(index int) bool {
	p, err := t.At(index)
	return err == nil && p.IsPlaceholder()
}

// Placeholder returns the index of the "please choose" row
func (t *Table) Placeholder() int {
	for i, p := range t.presets {
		if p.IsPlaceholder() {
			return i
		}
	}
	return 0
}

// Normalize maps a saved selection that no longer fits the table back to the first row
func (t *Table) Normalize(index int) int {
	if index < 0 || index >= len(t.presets) {
		return 0
	}
	return index
}
