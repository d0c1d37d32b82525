package model

import (
	"testing"
	"time"
)

func TestTimeLeftPastDate(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.Local)
	if got := TimeLeft(now, now.Add(-time.Minute)); got != "Missed" {
		t.Fatalf("TimeLeft = %q, want Missed", got)
	}
}

func TestTimeLeftUnderAMinute(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.Local)
	if got := TimeLeft(now, now.Add(30*time.Second)); got != "Now" {
		t.Fatalf("TimeLeft = %q, want Now", got)
	}
}

func TestTimeLeftSameDay(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.Local)

	if got := TimeLeft(now, now.Add(25*time.Minute)); got != "In 25m" {
		t.Fatalf("TimeLeft = %q, want In 25m", got)
	}
	if got := TimeLeft(now, now.Add(2*time.Hour+5*time.Minute)); got != "In 2h 5m" {
		t.Fatalf("TimeLeft = %q, want In 2h 5m", got)
	}
}

func TestTimeLeftTomorrow(t *testing.T) {
	now := time.Date(2026, 9, 1, 23, 0, 0, 0, time.Local)
	tomorrow := time.Date(2026, 9, 2, 9, 0, 0, 0, time.Local)
	if got := TimeLeft(now, tomorrow); got != "Tomorrow" {
		t.Fatalf("TimeLeft = %q, want Tomorrow", got)
	}
}

func TestTimeLeftInDays(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.Local)
	target := time.Date(2026, 9, 5, 12, 30, 0, 0, time.Local)
	if got := TimeLeft(now, target); got != "In 5 days" {
		t.Fatalf("TimeLeft = %q, want In 5 days", got)
	}
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2023, 10, 8, 15, 4, 0, 0, time.Local)
	if got := FormatDate(d); got != "08.10.23 - 15:04" {
		t.Fatalf("FormatDate = %q", got)
	}
}
