// Package config handles configuration loading and validation for the
// hooklog daemon.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"

	"hookwire/event"
)

// Config is the hooklog daemon configuration.
type Config struct {
	Version int `toml:"version" json:"version" yaml:"version"`

	Observe ObserveConfig `toml:"observe" json:"observe" yaml:"observe"`
	Reserve ReserveConfig `toml:"reserve" json:"reserve" yaml:"reserve"`
	Record  RecordConfig  `toml:"record" json:"record" yaml:"record"`
	Logging LogConfig     `toml:"logging" json:"logging" yaml:"logging"`
}

// ObserveConfig selects which event classes the daemon logs.
type ObserveConfig struct {
	Keyboard bool `toml:"keyboard" json:"keyboard" yaml:"keyboard"`
	Mouse    bool `toml:"mouse" json:"mouse" yaml:"mouse"`
	Motion   bool `toml:"motion" json:"motion" yaml:"motion"`
	Wheel    bool `toml:"wheel" json:"wheel" yaml:"wheel"`

	// Keys restricts keyboard logging to the named keys. Empty means all
	// keys. Names follow the event.Key constants without the prefix, e.g.
	// "Escape", "A", "F1".
	Keys []string `toml:"keys" json:"keys" yaml:"keys"`

	// ExitKey stops the daemon when pressed. Empty disables.
	ExitKey string `toml:"exit_key" json:"exit_key" yaml:"exit_key"`
}

// ReserveConfig controls the reservation filter.
type ReserveConfig struct {
	// Synthetic withholds synthetically tagged events from the OS.
	Synthetic bool `toml:"synthetic" json:"synthetic" yaml:"synthetic"`

	// Keys lists keys to withhold from the OS.
	Keys []string `toml:"keys" json:"keys" yaml:"keys"`
}

// RecordConfig controls SQLite event persistence.
type RecordConfig struct {
	Enabled bool   `toml:"enabled" json:"enabled" yaml:"enabled"`
	Path    string `toml:"path" json:"path" yaml:"path"`
}

// LogConfig mirrors internal/logging.Config in file form.
type LogConfig struct {
	Level    string `toml:"level" json:"level" yaml:"level"`
	Format   string `toml:"format" json:"format" yaml:"format"`
	Output   string `toml:"output" json:"output" yaml:"output"`
	FilePath string `toml:"file_path" json:"file_path" yaml:"file_path"`
}

// Version is the current config schema version.
const Version = 1

// DefaultConfig returns the default daemon configuration.
func DefaultConfig() *Config {
	return &Config{
		Version: Version,
		Observe: ObserveConfig{
			Keyboard: true,
			Mouse:    true,
			Motion:   false,
			Wheel:    true,
			ExitKey:  "Escape",
		},
		Record: RecordConfig{
			Path: defaultRecordPath(),
		},
		Logging: LogConfig{
			Level:  "info",
			Format: "text",
			Output: "stderr",
		},
	}
}

func defaultRecordPath() string {
	switch runtime.GOOS {
	case "windows":
		appData := os.Getenv("LOCALAPPDATA")
		if appData == "" {
			appData = os.Getenv("APPDATA")
		}
		return filepath.Join(appData, "hookwire", "events.db")
	default:
		dataHome := os.Getenv("XDG_DATA_HOME")
		if dataHome == "" {
			homeDir, _ := os.UserHomeDir()
			dataHome = filepath.Join(homeDir, ".local", "share")
		}
		return filepath.Join(dataHome, "hookwire", "events.db")
	}
}

// ConfigPath returns the default config file location.
func ConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		appData := os.Getenv("APPDATA")
		return filepath.Join(appData, "hookwire", "hooklog.toml")
	default:
		configHome := os.Getenv("XDG_CONFIG_HOME")
		if configHome == "" {
			homeDir, _ := os.UserHomeDir()
			configHome = filepath.Join(homeDir, ".config")
		}
		return filepath.Join(configHome, "hookwire", "hooklog.toml")
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Version > Version {
		return fmt.Errorf("config version %d is newer than supported version %d", c.Version, Version)
	}
	for _, name := range c.Observe.Keys {
		if _, err := ParseKey(name); err != nil {
			return fmt.Errorf("observe.keys: %w", err)
		}
	}
	for _, name := range c.Reserve.Keys {
		if _, err := ParseKey(name); err != nil {
			return fmt.Errorf("reserve.keys: %w", err)
		}
	}
	if c.Observe.ExitKey != "" {
		if _, err := ParseKey(c.Observe.ExitKey); err != nil {
			return fmt.Errorf("observe.exit_key: %w", err)
		}
	}
	if c.Record.Enabled && c.Record.Path == "" {
		return fmt.Errorf("record.path required when record.enabled")
	}
	return nil
}

// ApplyEnvOverrides applies HOOKWIRE_* environment overrides.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("HOOKWIRE_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("HOOKWIRE_LOG_FORMAT"); v != "" {
		c.Logging.Format = v
	}
	if v := os.Getenv("HOOKWIRE_RECORD_PATH"); v != "" {
		c.Record.Path = v
	}
}

// Clone returns a deep copy.
func (c *Config) Clone() *Config {
	cp := *c
	cp.Observe.Keys = append([]string(nil), c.Observe.Keys...)
	cp.Reserve.Keys = append([]string(nil), c.Reserve.Keys...)
	return &cp
}

// SaveConfig writes the configuration to path as TOML.
func SaveConfig(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create config file: %w", err)
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}

// ParseKey resolves a key name like "Escape" or "F1" to its code.
func ParseKey(name string) (event.Key, error) {
	if k, ok := event.KeyByName(name); ok {
		return k, nil
	}
	return event.KeyUndefined, fmt.Errorf("unknown key name %q", name)
}

// ParseKeys resolves a list of key names. Validate has already vetted
// the names when the list comes from a loaded config.
func ParseKeys(names []string) ([]event.Key, error) {
	keys := make([]event.Key, 0, len(names))
	for _, name := range names {
		k, err := ParseKey(name)
		if err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, nil
}
