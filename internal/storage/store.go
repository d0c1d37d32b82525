package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jpcarrera/NaturalReminder/internal/model"
)

// TimeLayout is the fixed-width timestamp used in the reminders file.
const TimeLayout = "2006-01-02 15:04:05"

const header = "id,text,date,isCrossedOut"

// Store persists the reminder list as a comma-delimited text file with a
// header row and one row per item. Fields are not escaped: a reminder
// whose text contains a comma shifts the columns and the row is dropped
// on the next load. That matches the file format this store inherits;
// files written elsewhere stay readable here and vice versa.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Path() string {
	return s.path
}

// Save writes the whole list, replacing the previous file atomically so a
// crash mid-write never leaves a truncated file behind.
func (s *Store) Save(items []model.Item) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create reminders dir: %w", err)
	}

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n")
	for _, it := range items {
		b.WriteString(encodeRow(it))
		b.WriteString("\n")
	}

	tmp, err := os.CreateTemp(dir, ".reminders-*.csv")
	if err != nil {
		return fmt.Errorf("create temp reminders file: %w", err)
	}
	if _, err := tmp.WriteString(b.String()); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write reminders file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close reminders file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace reminders file: %w", err)
	}
	return nil
}

// Load reads the reminder list back. A missing file is an empty list.
// Rows that fail to parse are skipped, never fatal.
func (s *Store) Load() ([]model.Item, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read reminders file: %w", err)
	}

	lines := strings.Split(string(raw), "\n")
	if len(lines) <= 1 {
		return nil, nil
	}

	out := make([]model.Item, 0, len(lines)-1)
	for _, line := range lines[1:] {
		it, ok := decodeRow(line)
		if !ok {
			continue
		}
		out = append(out, it)
	}
	return out, nil
}

func encodeRow(it model.Item) string {
	date := ""
	if it.Date != nil {
		date = it.Date.Format(TimeLayout)
	}
	return strings.Join([]string{
		it.ID,
		it.Text,
		date,
		formatBool(it.CrossedOut),
	}, ",")
}

func decodeRow(line string) (model.Item, bool) {
	cols := strings.Split(line, ",")
	for i := range cols {
		cols[i] = strings.TrimSpace(cols[i])
	}
	if len(cols) < 4 {
		return model.Item{}, false
	}

	crossed, ok := parseBool(cols[3])
	if !ok {
		return model.Item{}, false
	}

	it := model.Item{ID: cols[0], Text: cols[1], CrossedOut: crossed}
	if cols[2] != "" {
		date, err := time.ParseInLocation(TimeLayout, cols[2], time.Local)
		if err != nil {
			return model.Item{}, false
		}
		it.Date = &date
	}
	return it, true
}

func formatBool(v bool) string {
	if v {
		return "true"
	}
	return "false"
}

// parseBool accepts only the literal tokens the file format uses.
func parseBool(s string) (bool, bool) {
	switch s {
	case "true":
		return true, true
	case "false":
		return false, true
	default:
		return false, false
	}
}
