package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
)

// Interaction modes for shortcut-driven recording.
const (
	ModePushToTalk = "PushToTalk"
	ModeToggle     = "Toggle"
)

type Config struct {
	// Shortcuts maps shortcut id to a "+"-delimited binding string, e.g.
	// "transcribe": "ctrl+mouse4". Bindings without a mouse button are
	// skipped at startup; they belong to an OS-native shortcut path.
	Shortcuts     map[string]string `json:"shortcuts"`
	Mode          string            `json:"mode"` // "PushToTalk" or "Toggle"
	Audio         AudioConfig       `json:"audio"`
	RecordingsDir string            `json:"recordings_dir"`
	LogLevel      string            `json:"log_level"`
}

type AudioConfig struct {
	DeviceID   string `json:"device_id"`
	SampleRate int    `json:"sample_rate"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Shortcuts: map[string]string{
			"transcribe": "ctrl+mouse4",
			"cancel":     "esc+mouse4",
		},
		Mode: ModePushToTalk,
		Audio: AudioConfig{
			DeviceID:   "",
			SampleRate: 16000,
		},
		RecordingsDir: defaultRecordingsDir(),
		LogLevel:      "info",
	}
}

// Load reads the config from disk, layering it over the defaults.
func Load() (*Config, error) {
	cfg := Default()

	if data, err := os.ReadFile(configPath()); err == nil {
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// Save writes the config to disk.
func (c *Config) Save() error {
	path := configPath()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// configPath returns the platform-specific config file path.
func configPath() string {
	var base string

	switch runtime.GOOS {
	case "darwin":
		base = os.Getenv("HOME") + "/Library/Application Support"
	case "windows":
		base = os.Getenv("APPDATA")
	default: // linux
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			base = xdg
		} else {
			base = os.Getenv("HOME") + "/.config"
		}
	}

	return filepath.Join(base, "babbl", "config.json")
}

// defaultRecordingsDir returns the platform-specific recordings directory.
func defaultRecordingsDir() string {
	var base string

	switch runtime.GOOS {
	case "darwin":
		base = os.Getenv("HOME") + "/Library/Application Support"
	case "windows":
		base = os.Getenv("LOCALAPPDATA")
	default:
		if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
			base = xdg
		} else {
			base = os.Getenv("HOME") + "/.local/share"
		}
	}

	return filepath.Join(base, "babbl", "recordings")
}
