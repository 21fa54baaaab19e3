package toast

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultDuration applies when a toast is added without one.
const DefaultDuration = 5 * time.Second

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Toast is a transient, non-blocking user notification.
type Toast struct {
	ID         string        `json:"id"`
	Title      string        `json:"title,omitempty"`
	Message    string        `json:"message"`
	Severity   Severity      `json:"severity"`
	Duration   time.Duration `json:"duration"`
	Persistent bool          `json:"persistent"`
}

// Listener receives the full active list on every change.
type Listener func([]Toast)

// Hub is the process-wide toast queue. It is an explicitly owned object
// injected into whatever needs to publish or subscribe, created at startup
// and alive for the process lifetime.
type Hub struct {
	mu          sync.Mutex
	defaultDur  time.Duration
	toasts      []Toast
	subscribers map[int]Listener
	nextSubID   int
	timers      map[string]*time.Timer
}

// NewHub builds a hub. A non-positive defaultDuration falls back to
// DefaultDuration.
func NewHub(defaultDuration time.Duration) *Hub {
	if defaultDuration <= 0 {
		defaultDuration = DefaultDuration
	}
	return &Hub{
		defaultDur:  defaultDuration,
		subscribers: make(map[int]Listener),
		timers:      make(map[string]*time.Timer),
	}
}

// Subscribe registers a listener and immediately delivers the current list.
// The returned function unsubscribes.
func (h *Hub) Subscribe(listener Listener) func() {
	h.mu.Lock()
	id := h.nextSubID
	h.nextSubID++
	h.subscribers[id] = listener
	snapshot := h.snapshotLocked()
	h.mu.Unlock()

	listener(snapshot)

	return func() {
		h.mu.Lock()
		delete(h.subscribers, id)
		h.mu.Unlock()
	}
}

// Add assigns a unique id, applies the default duration when unspecified,
// appends and notifies. Non-persistent toasts are removed automatically when
// their duration elapses.
func (h *Hub) Add(t Toast) Toast {
	h.mu.Lock()
	t.ID = uuid.NewString()
	if t.Severity == "" {
		t.Severity = SeverityInfo
	}
	if t.Duration <= 0 {
		t.Duration = h.defaultDur
	}
	h.toasts = append(h.toasts, t)
	if !t.Persistent {
		id := t.ID
		h.timers[id] = time.AfterFunc(t.Duration, func() {
			h.Remove(id)
		})
	}
	h.mu.Unlock()

	h.notify()
	return t
}

// Remove deletes a toast by id and notifies. Removing an absent id is a
// no-op.
func (h *Hub) Remove(id string) {
	h.mu.Lock()
	removed := false
	kept := h.toasts[:0]
	for _, t := range h.toasts {
		if t.ID == id {
			removed = true
			continue
		}
		kept = append(kept, t)
	}
	h.toasts = kept
	if timer, ok := h.timers[id]; ok {
		timer.Stop()
		delete(h.timers, id)
	}
	h.mu.Unlock()

	if removed {
		h.notify()
	}
}

// ClearAll empties the active list and notifies.
func (h *Hub) ClearAll() {
	h.mu.Lock()
	for id, timer := range h.timers {
		timer.Stop()
		delete(h.timers, id)
	}
	h.toasts = nil
	h.mu.Unlock()

	h.notify()
}

// Active returns a copy of the current list.
func (h *Hub) Active() []Toast {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.snapshotLocked()
}

// Success publishes a success toast with the default duration.
func (h *Hub) Success(message string) Toast {
	return h.Add(Toast{Message: message, Severity: SeveritySuccess})
}

// Error publishes an error toast with the default duration.
func (h *Hub) Error(message string) Toast {
	return h.Add(Toast{Message: message, Severity: SeverityError})
}

func (h *Hub) snapshotLocked() []Toast {
	snapshot := make([]Toast, len(h.toasts))
	copy(snapshot, h.toasts)
	return snapshot
}

func (h *Hub) notify() {
	h.mu.Lock()
	listeners := make([]Listener, 0, len(h.subscribers))
	for _, listener := range h.subscribers {
		listeners = append(listeners, listener)
	}
	snapshot := h.snapshotLocked()
	h.mu.Unlock()

	for _, listener := range listeners {
		listener(snapshot)
	}
}
