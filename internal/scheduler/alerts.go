package scheduler

import (
	"log/slog"
	"sync"
	"time"

	"github.com/jpcarrera/NaturalReminder/internal/model"
	"github.com/jpcarrera/NaturalReminder/internal/reminders"
)

// alertBody is the fixed notification body; the item text is the title.
const alertBody = "now"

// State of the alert belonging to one reminder id.
type State string

const (
	StateNone      State = "none"
	StatePending   State = "pending"
	StateDelivered State = "delivered"
)

// Config is the dismissal policy for alerts closed without choosing a
// named action.
type Config struct {
	// DiscardOnDismiss drops the alert outright; when false the alert
	// is snoozed by DismissSnooze instead.
	DiscardOnDismiss bool
	DismissSnooze    time.Duration
}

// Alerts keeps the pending-alert set in lockstep with the reminder
// list: exactly one pending alert per item that has a future date and
// is not crossed out; none otherwise. Every date or cross-out change it
// makes goes through the Collection's mutation API so persistence stays
// centralized. All entry points share one mutex, so an alert-delivery
// callback cannot interleave with a UI mutation mid check-then-act.
type Alerts struct {
	mu        sync.Mutex
	engine    *Engine
	list      *reminders.Collection
	notifier  Notifier
	clock     func() time.Time
	cfg       Config
	log       *slog.Logger
	delivered map[string]bool
}

func NewAlerts(engine *Engine, list *reminders.Collection, notifier Notifier, cfg Config, log *slog.Logger) *Alerts {
	if notifier == nil {
		notifier = NoopNotifier{}
	}
	if log == nil {
		log = slog.Default()
	}
	if cfg.DismissSnooze <= 0 {
		cfg.DismissSnooze = 5 * time.Minute
	}
	return &Alerts{
		engine:    engine,
		list:      list,
		notifier:  notifier,
		clock:     time.Now,
		cfg:       cfg,
		log:       log,
		delivered: make(map[string]bool),
	}
}

// SetClock replaces the time source; tests use it to pin "now".
func (a *Alerts) SetClock(clock func() time.Time) {
	a.mu.Lock()
	a.clock = clock
	a.mu.Unlock()
}

// SetConfig swaps the dismissal policy at runtime (settings panel).
func (a *Alerts) SetConfig(cfg Config) {
	a.mu.Lock()
	if cfg.DismissSnooze <= 0 {
		cfg.DismissSnooze = 5 * time.Minute
	}
	a.cfg = cfg
	a.mu.Unlock()
}

// Sync re-evaluates one item after a mutation: an active future-dated
// item gets exactly one pending alert, anything else gets none.
func (a *Alerts) Sync(it model.Item) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.sync(it)
}

func (a *Alerts) sync(it model.Item) {
	if it.Date != nil && !it.CrossedOut && it.Date.After(a.clock()) {
		delete(a.delivered, it.ID)
		if err := a.engine.Schedule(Request{
			ID:     it.ID,
			Title:  it.Text,
			Body:   alertBody,
			FireAt: *it.Date,
		}); err != nil {
			a.log.Error("schedule alert failed", "id", it.ID, "err", err)
		}
		return
	}
	a.engine.Cancel(it.ID)
}

// Drop cancels whatever alert id has; used when the item is removed.
func (a *Alerts) Drop(id string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.engine.Cancel(id)
	delete(a.delivered, id)
}

// RescheduleAll cancels every pending alert and re-evaluates each item
// from scratch. Run after a full list reload so no stale alert survives
// a restart.
func (a *Alerts) RescheduleAll(items []model.Item) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.engine.CancelAll()
	a.delivered = make(map[string]bool)
	for _, it := range items {
		a.sync(it)
	}
}

// Deliver records that the platform fired the alert and shows it.
func (a *Alerts) Deliver(d Delivery) {
	a.mu.Lock()
	a.delivered[d.ID] = true
	a.mu.Unlock()
	if err := a.notifier.Send(Notification{Title: d.Title, Body: d.Body}); err != nil {
		a.log.Warn("desktop notification failed", "id", d.ID, "err", err)
	}
}

// Apply runs the user's chosen action for a delivered alert.
func (a *Alerts) Apply(id string, act Action) {
	a.mu.Lock()
	defer a.mu.Unlock()

	switch act.Kind {
	case ActionDone:
		if it, ok := a.list.Find(id); ok && !it.CrossedOut {
			a.list.CrossOutByID(id)
		}
		a.engine.Cancel(id)
		delete(a.delivered, id)
	case ActionSnooze:
		a.snooze(id, act.Snooze)
	case ActionDismiss:
		if a.cfg.DiscardOnDismiss {
			delete(a.delivered, id)
			return
		}
		a.snooze(id, a.cfg.DismissSnooze)
	}
}

func (a *Alerts) snooze(id string, offset time.Duration) {
	next := a.clock().Add(offset)
	it, ok := a.list.RescheduleByID(id, next)
	if !ok {
		delete(a.delivered, id)
		return
	}
	a.sync(it)
}

// State reports where id sits in the none/pending/delivered machine.
func (a *Alerts) State(id string) State {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.engine.Pending(id) {
		return StatePending
	}
	if a.delivered[id] {
		return StateDelivered
	}
	return StateNone
}
