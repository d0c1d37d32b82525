package model

import (
	"fmt"
	"time"
)

// TimeLeft renders the countdown shown next to a dated item.
func TimeLeft(now, date time.Time) string {
	if now.After(date) {
		return "Missed"
	}

	if sameDay(now, date) {
		left := date.Sub(now)
		if left < time.Minute {
			return "Now"
		}
		hours := int(left / time.Hour)
		minutes := int(left/time.Minute) % 60
		if hours == 0 {
			return fmt.Sprintf("In %dm", minutes)
		}
		return fmt.Sprintf("In %dh %dm", hours, minutes)
	}

	if sameDay(now.AddDate(0, 0, 1), date) {
		return "Tomorrow"
	}

	days := int(date.Sub(now).Hours() / 24)
	return fmt.Sprintf("In %d days", days+1)
}

// FormatDate renders the absolute date column, e.g. "08.10.23 - 15:04".
func FormatDate(date time.Time) string {
	return date.Format("02.01.06 - 15:04")
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
