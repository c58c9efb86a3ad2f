package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(filepath.Join(dir, "config.yaml"))
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "meatdairy.db"), cfg.Database.Path)
	assert.Equal(t, filepath.Join(dir, "meatdairy.log"), cfg.Log.Path)
	assert.Equal(t, DefaultLookupURL, cfg.LookupURL)
	assert.True(t, cfg.Notifications.Desktop)
	assert.Equal(t, []time.Duration{0, 3 * time.Second}, cfg.Notifications.Vibration)
	assert.False(t, cfg.UI.ReduceMotion)
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
database:
  path: /tmp/other.db
log:
  level: debug
locale: he_IL.UTF-8
notifications:
  desktop: false
  vibration: ["0s", "500ms", "200ms", "500ms"]
  banner_ttl: 1m
ui:
  reduce_motion: true
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/other.db", cfg.Database.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, filepath.Join(dir, "meatdairy.log"), cfg.Log.Path)
	assert.Equal(t, "he_IL.UTF-8", cfg.Locale)
	assert.False(t, cfg.Notifications.Desktop)
	assert.Equal(t, []time.Duration{0, 500 * time.Millisecond, 200 * time.Millisecond, 500 * time.Millisecond}, cfg.Notifications.Vibration)
	assert.Equal(t, time.Minute, cfg.Notifications.BannerTTL)
	assert.True(t, cfg.UI.ReduceMotion)
	assert.Equal(t, DefaultLookupURL, cfg.LookupURL)
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad yaml", "database: [unterminated"},
		{"bad level", "log:\n  level: loud\n"},
		{"empty db path", "database:\n  path: \"\"\n"},
		{"negative vibration", "notifications:\n  vibration: [\"-1s\"]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.body), 0644))

			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestSaveThenLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sub", "config.yaml")

	cfg := Default(dir)
	cfg.Locale = "fr"
	cfg.Notifications.BannerTTL = 5 * time.Second
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"":        slog.LevelInfo,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	}
	for in, want := range tests {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestOpenLogger(t *testing.T) {
	dir := t.TempDir()
	cfg := Default(dir)
	cfg.Log.Path = filepath.Join(dir, "logs", "app.log")

	logger, closer, err := cfg.OpenLogger()
	require.NoError(t, err)
	logger.Info("countdown started", "preset", "1 Hour")
	logger.Debug("hidden at info level")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(cfg.Log.Path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "countdown started")
	assert.Contains(t, string(data), "preset=\"1 Hour\"")
	assert.NotContains(t, string(data), "hidden at info level")
}
