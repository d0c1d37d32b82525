package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jpcarrera/NaturalReminder/internal/model"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "dates.csv"))
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := tempStore(t)

	date := time.Date(2026, 9, 2, 15, 0, 0, 0, time.Local)
	items := []model.Item{
		{ID: "one", Text: "meeting", Date: &date},
		{ID: "two", Text: "buy milk"},
		{ID: "three", Text: "old thing", CrossedOut: true},
	}

	if err := store.Save(items); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	got, err := store.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(got) != len(items) {
		t.Fatalf("loaded %d items, want %d", len(got), len(items))
	}
	for i, want := range items {
		if got[i].ID != want.ID || got[i].Text != want.Text || got[i].CrossedOut != want.CrossedOut {
			t.Fatalf("item %d = %+v, want %+v", i, got[i], want)
		}
		if (got[i].Date == nil) != (want.Date == nil) {
			t.Fatalf("item %d date presence mismatch", i)
		}
		if want.Date != nil && !got[i].Date.Equal(*want.Date) {
			t.Fatalf("item %d date = %v, want %v", i, got[i].Date, want.Date)
		}
	}
}

func TestLoadMissingFileReturnsEmpty(t *testing.T) {
	store := tempStore(t)
	got, err := store.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty list, got %d items", len(got))
	}
}

func TestSaveWritesHeaderRow(t *testing.T) {
	store := tempStore(t)
	if err := store.Save(nil); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	raw, err := os.ReadFile(store.Path())
	if err != nil {
		t.Fatalf("read file: %v", err)
	}
	if !strings.HasPrefix(string(raw), "id,text,date,isCrossedOut\n") {
		t.Fatalf("missing header, got %q", string(raw))
	}
}

func TestLoadSkipsMalformedRows(t *testing.T) {
	store := tempStore(t)
	raw := strings.Join([]string{
		"id,text,date,isCrossedOut",
		"ok,fine item,,false",
		"short,only three fields,false",
		"badbool,thing,,TRUE",
		"baddate,thing,not a date,false",
		"",
	}, "\n")
	if err := os.WriteFile(store.Path(), []byte(raw), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(got) != 1 || got[0].ID != "ok" {
		t.Fatalf("expected the single well-formed row, got %+v", got)
	}
}

func TestEmbeddedCommaCorruptsRow(t *testing.T) {
	store := tempStore(t)
	items := []model.Item{
		{ID: "a", Text: "eggs, milk, bread"},
		{ID: "b", Text: "plain"},
	}
	if err := store.Save(items); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	// The comma-bearing row shifts its columns and is dropped on reload.
	if len(got) != 1 || got[0].ID != "b" {
		t.Fatalf("expected only the plain row to survive, got %+v", got)
	}
}

func TestSaveReplacesPreviousContents(t *testing.T) {
	store := tempStore(t)
	if err := store.Save([]model.Item{{ID: "a", Text: "first"}}); err != nil {
		t.Fatalf("first save failed: %v", err)
	}
	if err := store.Save([]model.Item{{ID: "b", Text: "second"}}); err != nil {
		t.Fatalf("second save failed: %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(got) != 1 || got[0].ID != "b" {
		t.Fatalf("expected replaced contents, got %+v", got)
	}

	// The atomic replace must not leave temp files behind.
	entries, err := os.ReadDir(filepath.Dir(store.Path()))
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected only the reminders file, found %d entries", len(entries))
	}
}
