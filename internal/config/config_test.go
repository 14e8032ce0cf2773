package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hookwire/event"
)

func TestDefaultConfigValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.True(t, cfg.Observe.Keyboard)
	assert.False(t, cfg.Observe.Motion)
	assert.Equal(t, "Escape", cfg.Observe.ExitKey)
}

func TestValidateRejectsUnknownKeys(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Observe.Keys = []string{"A", "NoSuchKey"}
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Reserve.Keys = []string{"Bogus"}
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Observe.ExitKey = "Bogus"
	assert.Error(t, cfg.Validate())
}

func TestValidateRecordPath(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Record.Enabled = true
	cfg.Record.Path = ""
	assert.Error(t, cfg.Validate())
}

func TestParseKeys(t *testing.T) {
	keys, err := ParseKeys([]string{"Escape", "F1", "A"})
	require.NoError(t, err)
	assert.Equal(t, []event.Key{event.KeyEscape, event.KeyF1, event.KeyA}, keys)

	_, err = ParseKeys([]string{"NoSuchKey"})
	assert.Error(t, err)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hooklog.toml")

	cfg := DefaultConfig()
	cfg.Observe.Keys = []string{"A", "B"}
	cfg.Reserve.Synthetic = true
	cfg.Logging.Level = "debug"
	require.NoError(t, SaveConfig(cfg, path))

	loader := NewLoader(path)
	loaded, err := loader.Load()
	require.NoError(t, err)

	assert.Equal(t, cfg.Observe.Keys, loaded.Observe.Keys)
	assert.True(t, loaded.Reserve.Synthetic)
	assert.Equal(t, "debug", loaded.Logging.Level)
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	loader := NewLoader(filepath.Join(t.TempDir(), "absent.toml"))
	cfg, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Observe, cfg.Observe)
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("[observe]\nkeys = [\"Bogus\"]\n"), 0o644))

	loader := NewLoader(path)
	_, err := loader.Load()
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("HOOKWIRE_LOG_LEVEL", "warn")
	t.Setenv("HOOKWIRE_RECORD_PATH", "/tmp/override.db")

	cfg := DefaultConfig()
	cfg.ApplyEnvOverrides()
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "/tmp/override.db", cfg.Record.Path)
}

func TestLoadOrCreateWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new.toml")
	cfg, created, err := LoadOrCreate(path)
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotNil(t, cfg)

	_, err = os.Stat(path)
	assert.NoError(t, err)

	_, created, err = LoadOrCreate(path)
	require.NoError(t, err)
	assert.False(t, created)
}
