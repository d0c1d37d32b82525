package scheduler

import (
	"strconv"
	"time"
)

// ActionKind is the user's response to a delivered alert.
type ActionKind string

const (
	ActionDone    ActionKind = "done"
	ActionSnooze  ActionKind = "snooze"
	ActionDismiss ActionKind = "dismiss"
)

// Action pairs a kind with the snooze offset when Kind is ActionSnooze.
type Action struct {
	Kind   ActionKind
	Snooze time.Duration
}

func Done() Action {
	return Action{Kind: ActionDone}
}

func SnoozeFor(d time.Duration) Action {
	return Action{Kind: ActionSnooze, Snooze: d}
}

func Dismiss() Action {
	return Action{Kind: ActionDismiss}
}

// DefaultSnoozeMenuMinutes seeds the snooze_menu_minutes config key;
// a config file can replace the whole menu.
var DefaultSnoozeMenuMinutes = []int{5, 10, 15, 30, 60, 120, 240}

// SnoozeLabel renders a menu entry, e.g. "5 min" or "2 hours".
func SnoozeLabel(minutes int) string {
	switch {
	case minutes < 60:
		return strconv.Itoa(minutes) + " min"
	case minutes == 60:
		return "1 hour"
	default:
		return strconv.Itoa(minutes/60) + " hours"
	}
}
