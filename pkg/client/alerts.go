package client

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

const defaultAlertTimeout = 5 * time.Second

// Alert kinds, used by UIs to pick styling.
const (
	AlertSuccess = "success"
	AlertDanger  = "danger"
)

// Alert is a dismissible message with a unique id.
type Alert struct {
	ID   string
	Msg  string
	Type string
}

// Alerts is an ordered queue of auto-expiring alerts. Each alert carries its
// own removal timer, so dismissing one early never disturbs the others.
type Alerts struct {
	mu      sync.Mutex
	timeout time.Duration
	items   []Alert
	timers  map[string]*time.Timer
}

// NewAlerts creates an alert queue whose entries expire after timeout.
func NewAlerts(timeout time.Duration) *Alerts {
	return &Alerts{
		timeout: timeout,
		timers:  make(map[string]*time.Timer),
	}
}

// Add enqueues an alert and schedules its auto-dismissal, returning its id.
func (a *Alerts) Add(msg, alertType string) string {
	a.mu.Lock()
	defer a.mu.Unlock()

	id := uuid.NewString()
	a.items = append(a.items, Alert{ID: id, Msg: msg, Type: alertType})
	a.timers[id] = time.AfterFunc(a.timeout, func() {
		a.Remove(id)
	})
	return id
}

// Remove dismisses an alert early and cancels its timer. Removing an alert
// that already expired is a no-op.
func (a *Alerts) Remove(id string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if timer, ok := a.timers[id]; ok {
		timer.Stop()
		delete(a.timers, id)
	}
	kept := a.items[:0]
	for _, alert := range a.items {
		if alert.ID != id {
			kept = append(kept, alert)
		}
	}
	a.items = kept
}

// List returns the current alerts in insertion order.
func (a *Alerts) List() []Alert {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]Alert, len(a.items))
	copy(out, a.items)
	return out
}
