package timer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestFormatRemaining(t *testing.T) {
	tests := []struct {
		name string
		in   time.Duration
		want string
	}{
		{"zero", 0, "00:00:00"},
		{"negative", -500 * time.Millisecond, "00:00:00"},
		{"sub-second", 999 * time.Millisecond, "00:00:00"},
		{"one of each", 3661000 * time.Millisecond, "01:01:01"},
		{"floors fraction", 59*time.Second + 900*time.Millisecond, "00:00:59"},
		{"six hours", 6 * time.Hour, "06:00:00"},
		{"over a day", 100 * time.Hour, "100:00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatRemaining(tt.in))
		})
	}
}

func TestFormatRemainingMillis(t *testing.T) {
	assert.Equal(t, "00:00:00", FormatRemainingMillis(0))
	assert.Equal(t, "00:00:00", FormatRemainingMillis(-500))
	assert.Equal(t, "01:01:01", FormatRemainingMillis(3661000))
	assert.Equal(t, "05:31:00", FormatRemainingMillis(19860000))
}

func TestFormatClockTime(t *testing.T) {
	tests := []struct {
		hour, min int
		want      string
	}{
		{15, 7, "03:07 PM"},
		{0, 0, "12:00 AM"},
		{12, 30, "12:30 PM"},
		{9, 5, "09:05 AM"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			ts := time.Date(2024, 6, 1, tt.hour, tt.min, 42, 0, time.Local)
			assert.Equal(t, tt.want, FormatClockTime(ts))
		})
	}
}

func TestFormatClockTimeUsesLocalZone(t *testing.T) {
	ts := time.Date(2024, 6, 1, 15, 7, 0, 0, time.Local)
	assert.Equal(t, FormatClockTime(ts), FormatClockTime(ts.UTC()))
}

func TestPluralize(t *testing.T) {
	assert.Equal(t, "1 Hour has", Pluralize("1 Hour", language.English))
	assert.Equal(t, "6 Hours have", Pluralize("6 Hours", language.English))
	assert.Equal(t, "5 Hours and 31 Minutes have", Pluralize("5 Hours and 31 Minutes", language.AmericanEnglish))
	assert.Equal(t, "5 Second Demo has", Pluralize("5 Second Demo", language.BritishEnglish))
	assert.Equal(t, "3 HOURS have", Pluralize("3 HOURS", language.English))

	for _, tag := range []language.Tag{language.Hebrew, language.French, language.MustParse("yi")} {
		assert.Equal(t, "1 Hour", Pluralize("1 Hour", tag), tag.String())
		assert.Equal(t, "6 Hours", Pluralize("6 Hours", tag), tag.String())
	}
}

func TestParseLocale(t *testing.T) {
	tests := []struct {
		in   string
		base string
	}{
		{"en_US.UTF-8", "en"},
		{"he_IL.UTF-8", "he"},
		{"fr-CA", "fr"},
		{"de_DE@euro", "de"},
		{"C", "en"},
		{"POSIX", "en"},
		{"", "en"},
		{"!!not a locale", "en"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			base, _ := ParseLocale(tt.in).Base()
			assert.Equal(t, tt.base, base.String())
		})
	}
}

func TestDetectLocale(t *testing.T) {
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_MESSAGES", "")
	t.Setenv("LANG", "he_IL.UTF-8")

	base, _ := DetectLocale("").Base()
	assert.Equal(t, "he", base.String())

	base, _ = DetectLocale("en_GB").Base()
	assert.Equal(t, "en", base.String())

	t.Setenv("LANG", "")
	assert.Equal(t, language.English, DetectLocale(""))
}

func TestStatusRoundTrip(t *testing.T) {
	for _, s := range []Status{StatusIdle, StatusRunning, StatusFinished} {
		got, err := ParseStatus(s.String())
		assert.NoError(t, err)
		assert.Equal(t, s, got)
	}
	_, err := ParseStatus("paused")
	assert.Error(t, err)
	assert.Equal(t, "unknown", Status(7).String())
}
