package reminders

import (
	"log/slog"
	"sync"
	"time"

	"github.com/jpcarrera/NaturalReminder/internal/model"
)

// Saver persists the full list after each mutation.
type Saver interface {
	Save(items []model.Item) error
}

// Collection is the single writable owner of the reminder list. Every
// mutation saves the whole list synchronously before returning; the
// lists are small enough that a full rewrite per edit is cheaper than
// being clever. Save failures never roll back the in-memory state: the
// running session stays authoritative, the error is logged and offered
// on Errs for the UI to surface.
type Collection struct {
	mu       sync.Mutex
	items    []model.Item
	store    Saver
	log      *slog.Logger
	errs     chan error
	onChange func()
}

func NewCollection(store Saver, log *slog.Logger) *Collection {
	if log == nil {
		log = slog.Default()
	}
	c := &Collection{
		store: store,
		log:   log,
		errs:  make(chan error, 8),
	}
	return c
}

// SetOnChange registers a callback invoked after every completed
// mutation, outside the collection lock. The UI uses it to refresh.
func (c *Collection) SetOnChange(fn func()) {
	c.lock()
	c.onChange = fn
	c.unlock()
}

// Errs delivers save failures. Sends never block; when nobody listens
// the failure is still logged.
func (c *Collection) Errs() <-chan error {
	return c.errs
}

// Replace swaps in a freshly loaded list without persisting it back.
func (c *Collection) Replace(items []model.Item) {
	c.lock()
	c.items = make([]model.Item, len(items))
	copy(c.items, items)
	c.unlock()
	c.notify()
}

func (c *Collection) Add(it model.Item) {
	c.lock()
	c.items = append(c.items, it)
	c.persist()
	c.unlock()
	c.notify()
}

// RemoveByID drops the matching item. Absent ids are a no-op.
func (c *Collection) RemoveByID(id string) bool {
	c.lock()
	removed := false
	for i, it := range c.items {
		if it.ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			removed = true
			break
		}
	}
	if removed {
		c.persist()
	}
	c.unlock()
	if removed {
		c.notify()
	}
	return removed
}

// CrossOutByID toggles the completion flag and returns the updated item.
func (c *Collection) CrossOutByID(id string) (model.Item, bool) {
	c.lock()
	var out model.Item
	found := false
	for i := range c.items {
		if c.items[i].ID == id {
			c.items[i].CrossedOut = !c.items[i].CrossedOut
			out = c.items[i]
			found = true
			break
		}
	}
	if found {
		c.persist()
	}
	c.unlock()
	if found {
		c.notify()
	}
	return out, found
}

// CrossOutByPosition toggles the item at the given 1-based display
// position. The sorted view is computed under the same lock as the
// mutation, so the position cannot drift between lookup and toggle.
// Out-of-range positions are a no-op.
func (c *Collection) CrossOutByPosition(pos int) (model.Item, bool) {
	c.lock()
	id, ok := c.idAtPosition(pos)
	if !ok {
		c.unlock()
		return model.Item{}, false
	}
	var out model.Item
	for i := range c.items {
		if c.items[i].ID == id {
			c.items[i].CrossedOut = !c.items[i].CrossedOut
			out = c.items[i]
			break
		}
	}
	c.persist()
	c.unlock()
	c.notify()
	return out, true
}

// RemoveByPosition removes the item at the given 1-based display
// position, with the same single-lock discipline as CrossOutByPosition.
func (c *Collection) RemoveByPosition(pos int) (model.Item, bool) {
	c.lock()
	id, ok := c.idAtPosition(pos)
	if !ok {
		c.unlock()
		return model.Item{}, false
	}
	var out model.Item
	for i := range c.items {
		if c.items[i].ID == id {
			out = c.items[i]
			c.items = append(c.items[:i], c.items[i+1:]...)
			break
		}
	}
	c.persist()
	c.unlock()
	c.notify()
	return out, true
}

// RescheduleByID replaces the item's date and returns the updated item.
func (c *Collection) RescheduleByID(id string, date time.Time) (model.Item, bool) {
	c.lock()
	var out model.Item
	found := false
	for i := range c.items {
		if c.items[i].ID == id {
			d := date
			c.items[i].Date = &d
			out = c.items[i]
			found = true
			break
		}
	}
	if found {
		c.persist()
	}
	c.unlock()
	if found {
		c.notify()
	}
	return out, found
}

func (c *Collection) Find(id string) (model.Item, bool) {
	c.lock()
	defer c.unlock()
	for _, it := range c.items {
		if it.ID == id {
			return it, true
		}
	}
	return model.Item{}, false
}

// All returns a copy of the list in insertion order.
func (c *Collection) All() []model.Item {
	c.lock()
	defer c.unlock()
	out := make([]model.Item, len(c.items))
	copy(out, c.items)
	return out
}

// Sorted returns a copy of the list in display order (model.Sorted).
func (c *Collection) Sorted() []model.Item {
	return model.Sorted(c.All())
}

func (c *Collection) Len() int {
	c.lock()
	defer c.unlock()
	return len(c.items)
}

// idAtPosition resolves a 1-based display position against the current
// sort order. Caller holds the lock.
func (c *Collection) idAtPosition(pos int) (string, bool) {
	sorted := model.Sorted(c.items)
	if pos < 1 || pos > len(sorted) {
		return "", false
	}
	return sorted[pos-1].ID, true
}

// persist writes the full list. Caller holds the lock.
func (c *Collection) persist() {
	if c.store == nil {
		return
	}
	snapshot := make([]model.Item, len(c.items))
	copy(snapshot, c.items)
	if err := c.store.Save(snapshot); err != nil {
		c.log.Error("save reminders failed", "err", err)
		select {
		case c.errs <- err:
		default:
		}
	}
}

func (c *Collection) notify() {
	c.lock()
	fn := c.onChange
	c.unlock()
	if fn != nil {
		fn()
	}
}

func (c *Collection) lock()   { c.mu.Lock() }
func (c *Collection) unlock() { c.mu.Unlock() }
