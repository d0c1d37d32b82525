package scheduler

import (
	"container/heap"
	"errors"
	"sync"
	"sync/atomic"
	"time"
)

var ErrInvalidFireTime = errors.New("scheduler: invalid fire time")

// Request asks the engine to fire an alert for a reminder id.
type Request struct {
	ID     string
	Title  string
	Body   string
	FireAt time.Time
}

// Delivery is emitted on the engine's channel when an alert fires.
type Delivery struct {
	ID      string
	Title   string
	Body    string
	FiredAt time.Time
}

type queueItem struct {
	req      Request
	canceled bool
}

type priorityQueue []*queueItem

func (pq priorityQueue) Len() int { return len(pq) }

func (pq priorityQueue) Less(i, j int) bool {
	return pq[i].req.FireAt.Before(pq[j].req.FireAt)
}

func (pq priorityQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
}

func (pq *priorityQueue) Push(x any) {
	*pq = append(*pq, x.(*queueItem))
}

func (pq *priorityQueue) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[0 : n-1]
	return item
}

// Engine holds at most one pending alert per reminder id on a timer
// heap and emits a Delivery when the earliest one comes due.
// Scheduling an id that already has a pending alert replaces it;
// canceling id X never disturbs any other id.
type Engine struct {
	mu      sync.Mutex
	queue   priorityQueue
	pending map[string]*queueItem
	out     chan Delivery
	wakeup  chan struct{}
	stopCh  chan struct{}
	doneCh  chan struct{}
	started bool
	stopped bool
	dropped uint64
}

func NewEngine(bufferSize int) *Engine {
	if bufferSize <= 0 {
		bufferSize = 1
	}
	return &Engine{
		queue:   make(priorityQueue, 0),
		pending: make(map[string]*queueItem),
		out:     make(chan Delivery, bufferSize),
		wakeup:  make(chan struct{}, 1),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}
}

func (e *Engine) C() <-chan Delivery {
	return e.out
}

func (e *Engine) Start() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.started {
		return
	}
	e.started = true
	heap.Init(&e.queue)
	go e.loop()
}

func (e *Engine) Stop() {
	e.mu.Lock()
	if !e.started || e.stopped {
		e.mu.Unlock()
		return
	}
	e.stopped = true
	close(e.stopCh)
	e.mu.Unlock()
	<-e.doneCh
}

// Schedule arms the alert for req.ID, replacing any pending one.
func (e *Engine) Schedule(req Request) error {
	if req.FireAt.IsZero() {
		return ErrInvalidFireTime
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.stopped {
		return errors.New("scheduler: engine stopped")
	}

	if old, ok := e.pending[req.ID]; ok {
		old.canceled = true
	}
	item := &queueItem{req: req}
	heap.Push(&e.queue, item)
	e.pending[req.ID] = item
	e.signalWakeup()
	return nil
}

// Cancel disarms the pending alert for id, if any.
func (e *Engine) Cancel(id string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if item, ok := e.pending[id]; ok {
		item.canceled = true
		delete(e.pending, id)
		e.signalWakeup()
	}
}

func (e *Engine) CancelAll() {
	e.mu.Lock()
	defer e.mu.Unlock()
	for id, item := range e.pending {
		item.canceled = true
		delete(e.pending, id)
	}
	e.signalWakeup()
}

// Pending reports whether id currently has an armed alert.
func (e *Engine) Pending(id string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	_, ok := e.pending[id]
	return ok
}

func (e *Engine) PendingCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.pending)
}

func (e *Engine) Dropped() uint64 {
	return atomic.LoadUint64(&e.dropped)
}

func (e *Engine) loop() {
	defer close(e.doneCh)
	defer close(e.out)

	var timer *time.Timer
	for {
		next, hasNext := e.peek()
		if !hasNext {
			select {
			case <-e.wakeup:
				continue
			case <-e.stopCh:
				return
			}
		}

		wait := time.Until(next.FireAt)
		if wait < 0 {
			wait = 0
		}
		timer = resetTimer(timer, wait)

		select {
		case <-timer.C:
			due := e.popDue(time.Now())
			for _, d := range due {
				select {
				case e.out <- d:
				default:
					atomic.AddUint64(&e.dropped, 1)
				}
			}
		case <-e.wakeup:
			continue
		case <-e.stopCh:
			if timer != nil {
				stopTimer(timer)
			}
			return
		}
	}
}

func (e *Engine) signalWakeup() {
	select {
	case e.wakeup <- struct{}{}:
	default:
	}
}

// peek returns the earliest live request, discarding canceled entries
// that have bubbled to the top of the heap.
func (e *Engine) peek() (Request, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for len(e.queue) > 0 {
		if e.queue[0].canceled {
			heap.Pop(&e.queue)
			continue
		}
		return e.queue[0].req, true
	}
	return Request{}, false
}

func (e *Engine) popDue(now time.Time) []Delivery {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]Delivery, 0)
	for len(e.queue) > 0 {
		head := e.queue[0]
		if !head.canceled && head.req.FireAt.After(now) {
			break
		}
		item := heap.Pop(&e.queue).(*queueItem)
		if item.canceled {
			continue
		}
		if e.pending[item.req.ID] == item {
			delete(e.pending, item.req.ID)
		}
		out = append(out, Delivery{
			ID:      item.req.ID,
			Title:   item.req.Title,
			Body:    item.req.Body,
			FiredAt: now,
		})
	}
	return out
}

func resetTimer(timer *time.Timer, d time.Duration) *time.Timer {
	if timer == nil {
		return time.NewTimer(d)
	}
	stopTimer(timer)
	timer.Reset(d)
	return timer
}

func stopTimer(timer *time.Timer) {
	if timer == nil {
		return
	}
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
}
