package reminders

import (
	"errors"
	"testing"
	"time"

	"github.com/jpcarrera/NaturalReminder/internal/model"
)

type recordingSaver struct {
	saves [][]model.Item
	err   error
}

func (r *recordingSaver) Save(items []model.Item) error {
	snapshot := make([]model.Item, len(items))
	copy(snapshot, items)
	r.saves = append(r.saves, snapshot)
	return r.err
}

func TestAddPersistsFullList(t *testing.T) {
	saver := &recordingSaver{}
	c := NewCollection(saver, nil)

	c.Add(model.Item{ID: "a", Text: "one"})
	c.Add(model.Item{ID: "b", Text: "two"})

	if len(saver.saves) != 2 {
		t.Fatalf("expected 2 saves, got %d", len(saver.saves))
	}
	last := saver.saves[1]
	if len(last) != 2 || last[0].ID != "a" || last[1].ID != "b" {
		t.Fatalf("unexpected persisted list: %+v", last)
	}
}

func TestRemoveByIDIsIdempotent(t *testing.T) {
	saver := &recordingSaver{}
	c := NewCollection(saver, nil)
	c.Add(model.Item{ID: "a", Text: "one"})

	if !c.RemoveByID("a") {
		t.Fatal("expected removal")
	}
	if c.RemoveByID("a") {
		t.Fatal("second removal should be a no-op")
	}
	if c.Len() != 0 {
		t.Fatalf("expected empty collection, len=%d", c.Len())
	}
	// The no-op must not trigger another save.
	if len(saver.saves) != 2 {
		t.Fatalf("expected 2 saves (add + remove), got %d", len(saver.saves))
	}
}

func TestCrossOutByIDToggles(t *testing.T) {
	c := NewCollection(&recordingSaver{}, nil)
	c.Add(model.Item{ID: "a", Text: "one"})

	it, ok := c.CrossOutByID("a")
	if !ok || !it.CrossedOut {
		t.Fatalf("expected crossed-out item, got %+v ok=%v", it, ok)
	}
	it, ok = c.CrossOutByID("a")
	if !ok || it.CrossedOut {
		t.Fatalf("expected toggle back, got %+v ok=%v", it, ok)
	}
	if _, ok := c.CrossOutByID("missing"); ok {
		t.Fatal("missing id should be a no-op")
	}
}

func TestCrossOutByPositionUsesDisplayOrder(t *testing.T) {
	c := NewCollection(&recordingSaver{}, nil)
	later := time.Now().Add(2 * time.Hour)
	sooner := time.Now().Add(time.Hour)
	c.Add(model.Item{ID: "later", Text: "later", Date: &later})
	c.Add(model.Item{ID: "sooner", Text: "sooner", Date: &sooner})

	// Display position 1 is the soonest date, not insertion order.
	it, ok := c.CrossOutByPosition(1)
	if !ok || it.ID != "sooner" {
		t.Fatalf("position 1 = %+v ok=%v, want sooner", it, ok)
	}
}

func TestPositionOutOfRangeIsNoOp(t *testing.T) {
	saver := &recordingSaver{}
	c := NewCollection(saver, nil)
	c.Add(model.Item{ID: "a", Text: "one"})

	if _, ok := c.CrossOutByPosition(2); ok {
		t.Fatal("stale position should be a no-op")
	}
	if _, ok := c.CrossOutByPosition(0); ok {
		t.Fatal("position 0 should be a no-op")
	}
	if _, ok := c.RemoveByPosition(5); ok {
		t.Fatal("out-of-range removal should be a no-op")
	}
	if len(saver.saves) != 1 {
		t.Fatalf("no-ops must not persist, saves=%d", len(saver.saves))
	}
}

func TestRemoveByPositionRemovesRenderedItem(t *testing.T) {
	c := NewCollection(&recordingSaver{}, nil)
	c.Add(model.Item{ID: "open", Text: "open"})
	c.Add(model.Item{ID: "done", Text: "done", CrossedOut: true})

	// Crossed-out items sort last, so position 2 is "done".
	it, ok := c.RemoveByPosition(2)
	if !ok || it.ID != "done" {
		t.Fatalf("position 2 = %+v ok=%v, want done", it, ok)
	}
	if c.Len() != 1 {
		t.Fatalf("expected one item left, len=%d", c.Len())
	}
}

func TestRescheduleByIDReplacesDate(t *testing.T) {
	c := NewCollection(&recordingSaver{}, nil)
	c.Add(model.Item{ID: "a", Text: "one"})

	when := time.Date(2026, 9, 2, 10, 0, 0, 0, time.Local)
	it, ok := c.RescheduleByID("a", when)
	if !ok || it.Date == nil || !it.Date.Equal(when) {
		t.Fatalf("reschedule = %+v ok=%v", it, ok)
	}
	if _, ok := c.RescheduleByID("missing", when); ok {
		t.Fatal("missing id should be a no-op")
	}
}

func TestSaveFailureIsExposedNotFatal(t *testing.T) {
	saver := &recordingSaver{err: errors.New("disk full")}
	c := NewCollection(saver, nil)

	c.Add(model.Item{ID: "a", Text: "one"})

	// Memory state stays authoritative.
	if _, ok := c.Find("a"); !ok {
		t.Fatal("item must remain in memory after save failure")
	}
	select {
	case err := <-c.Errs():
		if err == nil {
			t.Fatal("expected save error")
		}
	default:
		t.Fatal("expected save error on Errs channel")
	}
}

func TestOnChangeFiresAfterMutations(t *testing.T) {
	c := NewCollection(&recordingSaver{}, nil)
	calls := 0
	c.SetOnChange(func() { calls++ })

	c.Add(model.Item{ID: "a", Text: "one"})
	c.CrossOutByID("a")
	c.RemoveByID("a")
	c.RemoveByID("a") // no-op, no notification

	if calls != 3 {
		t.Fatalf("expected 3 change notifications, got %d", calls)
	}
}

func TestAllReturnsInsertionOrderCopy(t *testing.T) {
	c := NewCollection(&recordingSaver{}, nil)
	d := time.Now().Add(time.Hour)
	c.Add(model.Item{ID: "b", Text: "later added first"})
	c.Add(model.Item{ID: "a", Text: "dated", Date: &d})

	all := c.All()
	if all[0].ID != "b" || all[1].ID != "a" {
		t.Fatalf("All must keep insertion order, got %+v", all)
	}
	all[0].Text = "mutated"
	if it, _ := c.Find("b"); it.Text != "later added first" {
		t.Fatal("All must return a copy")
	}
}
