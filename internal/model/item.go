package model

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Item is a single reminder entry. ID is assigned at creation and never
// changes; it is the join key across the collection, the alert scheduler
// and the persisted file.
type Item struct {
	ID         string
	Text       string
	Date       *time.Time
	CrossedOut bool
}

func NewItem(text string) Item {
	return Item{ID: uuid.NewString(), Text: text}
}

func NewDatedItem(text string, date time.Time) Item {
	return Item{ID: uuid.NewString(), Text: text, Date: &date}
}

func (i Item) HasDate() bool {
	return i.Date != nil
}

func (i Item) Validate() error {
	if strings.TrimSpace(i.ID) == "" {
		return errors.New("model: item id is required")
	}
	if strings.TrimSpace(i.Text) == "" {
		return errors.New("model: item text is required")
	}
	return nil
}

// Sorted returns the display order: incomplete items before crossed-out
// ones, dated items ascending within each group, dateless items after
// dated ones. The sort is stable so dateless items keep insertion order
// among themselves. Display indices are 1-based positions in this slice.
func Sorted(items []Item) []Item {
	out := make([]Item, len(items))
	copy(out, items)
	sort.SliceStable(out, func(a, b int) bool {
		return Less(out[a], out[b])
	})
	return out
}

func Less(a, b Item) bool {
	if a.CrossedOut != b.CrossedOut {
		return !a.CrossedOut
	}
	switch {
	case a.Date != nil && b.Date != nil:
		return a.Date.Before(*b.Date)
	case a.Date != nil:
		return true
	default:
		return false
	}
}
