package nldate

import (
	"testing"
	"time"
)

func TestParseRecognizesTomorrow(t *testing.T) {
	p := NewWhenParser()
	base := time.Date(2026, 9, 1, 12, 0, 0, 0, time.Local)

	m, ok := p.Parse("call the dentist tomorrow", base)
	if !ok {
		t.Fatal("expected a date match")
	}
	if m.Text == "" {
		t.Fatal("expected the matched span text")
	}
	if m.Time.Day() != 2 || m.Time.Month() != time.September {
		t.Fatalf("resolved time = %v, want September 2nd", m.Time)
	}
}

func TestParsePlainTextHasNoMatch(t *testing.T) {
	p := NewWhenParser()
	base := time.Date(2026, 9, 1, 12, 0, 0, 0, time.Local)

	if _, ok := p.Parse("buy milk", base); ok {
		t.Fatal("expected no date match for plain text")
	}
}
