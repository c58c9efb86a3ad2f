package presets

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTable(t *testing.T) {
	table := Default()

	require.Equal(t, 7, table.Len())

	tests := []struct {
		index int
		label string
		want  time.Duration
	}{
		{0, "Select a minhag", 0},
		{1, "6 Hours", 6 * time.Hour},
		{2, "5 Hours and 31 Minutes", 5*time.Hour + 31*time.Minute},
		{3, "5 Hours and 1 Minute", 5*time.Hour + time.Minute},
		{4, "3 Hours", 3 * time.Hour},
		{5, "1 Hour", time.Hour},
		{6, "5 Second Demo", 5 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			p, err := table.At(tt.index)
			require.NoError(t, err)
			assert.Equal(t, tt.label, p.Label)
			assert.Equal(t, tt.want, p.Duration)
		})
	}
}

func TestMillis(t *testing.T) {
	table := Default()

	ms, err := table.Millis(1)
	require.NoError(t, err)
	assert.Equal(t, int64(21_600_000), ms)

	ms, err = table.Millis(5)
	require.NoError(t, err)
	assert.Equal(t, int64(3_600_000), ms)
}

func TestExactlyOnePlaceholder(t *testing.T) {
	table := Default()

	count := 0
	for i := 0; i < table.Len(); i++ {
		if table.IsPlaceholder(i) {
			count++
		}
	}
	assert.Equal(t, 1, count)
	assert.Equal(t, 0, table.Placeholder())
	assert.False(t, table.IsPlaceholder(99))
}

func TestNewTableRejectsBadPlaceholderCount(t *testing.T) {
	_, err := NewTable([]Preset{{Label: "1 Hour", Duration: time.Hour}})
	assert.ErrorIs(t, err, ErrInvalidTable)

	_, err = NewTable([]Preset{{Label: "a"}, {Label: "b"}})
	assert.ErrorIs(t, err, ErrInvalidTable)

	_, err = NewTable([]Preset{{Label: "a"}, {Label: "neg", Duration: -time.Second}})
	assert.Error(t, err)
}

func TestAtOutOfRange(t *testing.T) {
	table := Default()

	_, err := table.At(-1)
	assert.ErrorIs(t, err, ErrUnknownPreset)

	_, err = table.Duration(table.Len())
	assert.ErrorIs(t, err, ErrUnknownPreset)
}

func TestLookup(t *testing.T) {
	table := Default()

	i, p, err := table.Lookup("  1 hour ")
	require.NoError(t, err)
	assert.Equal(t, 5, i)
	assert.Equal(t, time.Hour, p.Duration)

	_, _, err = table.Lookup("4 Hours")
	assert.ErrorIs(t, err, ErrUnknownPreset)
}

func TestFindDuration(t *testing.T) {
	table := Default()

	i, _, err := table.FindDuration(5*time.Hour + 31*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 2, i)

	_, _, err = table.FindDuration(0)
	assert.ErrorIs(t, err, ErrUnknownPreset)
}

func TestNormalize(t *testing.T) {
	table := Default()

	assert.Equal(t, 3, table.Normalize(3))
	assert.Equal(t, 0, table.Normalize(table.Len()))
	assert.Equal(t, 0, table.Normalize(-4))
}

func TestAllReturnsCopy(t *testing.T) {
	table := Default()

	all := table.All()
	all[1].Duration = time.Minute

	d, err := table.Duration(1)
	require.NoError(t, err)
	assert.Equal(t, 6*time.Hour, d)
}
