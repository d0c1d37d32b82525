package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "NATURALREMINDER_"

type Config struct {
	// ListName names the logical list; the store file is <ListName>.csv.
	ListName string `koanf:"list_name"`
	DataDir  string `koanf:"data_dir"`

	// RemoveNotificationWhenDismissed discards an alert dismissed
	// without a named action; when false the alert is snoozed by
	// SnoozeNotificationWhenDismissed minutes instead.
	RemoveNotificationWhenDismissed bool `koanf:"remove_notification_when_dismissed"`
	SnoozeNotificationWhenDismissed int  `koanf:"snooze_notification_when_dismissed"`

	SnoozeMenuMinutes    []int `koanf:"snooze_menu_minutes"`
	DarkMode             bool  `koanf:"dark_mode"`
	DesktopNotifications bool  `koanf:"desktop_notifications"`
	SchedulerBuffer      int   `koanf:"scheduler_buffer"`
}

// Load layers defaults, the YAML config file (if present) and
// NATURALREMINDER_* environment variables, in that order.
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(NewDefaultProvider(), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if configPath != "" {
		configPath = ExpandPath(configPath)
		if _, err := os.Stat(configPath); err == nil {
			if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("load config file: %w", err)
			}
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("load env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.normalize()
	return &cfg, nil
}

// Save writes the current settings back to the YAML file so the
// settings panel survives restarts.
func Save(configPath string, cfg *Config) error {
	configPath = ExpandPath(configPath)
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	out, err := yaml.Parser().Marshal(map[string]interface{}{
		"list_name":                          cfg.ListName,
		"data_dir":                           cfg.DataDir,
		"remove_notification_when_dismissed": cfg.RemoveNotificationWhenDismissed,
		"snooze_notification_when_dismissed": cfg.SnoozeNotificationWhenDismissed,
		"snooze_menu_minutes":                cfg.SnoozeMenuMinutes,
		"dark_mode":                          cfg.DarkMode,
		"desktop_notifications":              cfg.DesktopNotifications,
		"scheduler_buffer":                   cfg.SchedulerBuffer,
	})
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(configPath, out, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// StorePath is the reminders file for the configured list.
func (c *Config) StorePath() string {
	return filepath.Join(ExpandPath(c.DataDir), c.ListName+".csv")
}

// LogPath is where slog output goes; a TUI cannot log to stdout.
func (c *Config) LogPath() string {
	return filepath.Join(ExpandPath(c.DataDir), "naturalreminder.log")
}

func (c *Config) normalize() {
	if strings.TrimSpace(c.ListName) == "" {
		c.ListName = "dates"
	}
	if strings.TrimSpace(c.DataDir) == "" {
		c.DataDir = "~/.naturalreminder"
	}
	if c.SnoozeNotificationWhenDismissed <= 0 {
		c.SnoozeNotificationWhenDismissed = 5
	}
	if len(c.SnoozeMenuMinutes) == 0 {
		c.SnoozeMenuMinutes = []int{5, 10, 15, 30, 60, 120, 240}
	}
	if c.SchedulerBuffer <= 0 {
		c.SchedulerBuffer = 64
	}
}

func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~/") || path == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		if path == "~" {
			return home
		}
		return filepath.Join(home, path[2:])
	}
	return path
}
