package config

import (
	"github.com/knadh/koanf/providers/confmap"

	"github.com/jpcarrera/NaturalReminder/internal/scheduler"
)

func DefaultConfig() map[string]interface{} {
	return map[string]interface{}{
		"list_name": "dates",
		"data_dir":  "~/.naturalreminder",
		// Default-dismissal policy: discard the alert. Set to false to
		// snooze dismissed alerts by snooze_notification_when_dismissed.
		"remove_notification_when_dismissed": true,
		"snooze_notification_when_dismissed": 5,
		"snooze_menu_minutes":                append([]int(nil), scheduler.DefaultSnoozeMenuMinutes...),
		"dark_mode":                          false,
		"desktop_notifications":              true,
		"scheduler_buffer":                   64,
	}
}

func NewDefaultProvider() *confmap.Confmap {
	return confmap.Provider(DefaultConfig(), ".")
}

func GetDefaultConfigPath() string {
	return "~/.naturalreminder/config.yaml"
}
