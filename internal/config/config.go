// Package config holds the app-level configuration file. Everything
// hydration-related lives in the persisted state; this file only carries
// machine-local preferences.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all sipli configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Widget     WidgetConfig     `toml:"widget"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	// StatePath overrides the default shared state file location.
	StatePath string `toml:"state_path,omitempty"`
	// QuickVolumesML are the one-keystroke amounts offered when logging.
	QuickVolumesML []float64 `toml:"quick_volumes_ml"`
	// HistoryDays is the default window for history views.
	HistoryDays int `toml:"history_days"`
}

// WidgetConfig holds widget-process settings.
type WidgetConfig struct {
	// RefreshMinutes caps staleness between widget refreshes. The
	// widget also refreshes at local midnight regardless.
	RefreshMinutes int `toml:"refresh_minutes"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			QuickVolumesML: []float64{200, 350, 500, 750},
			HistoryDays:    14,
		},
		Widget: WidgetConfig{
			RefreshMinutes: 15,
		},
		Appearance: AppearanceConfig{
			Theme: "lagoon",
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "sipli")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "sipli")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.Widget.RefreshMinutes <= 0 {
		cfg.Widget.RefreshMinutes = DefaultConfig().Widget.RefreshMinutes
	}
	if cfg.General.HistoryDays <= 0 {
		cfg.General.HistoryDays = DefaultConfig().General.HistoryDays
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}
