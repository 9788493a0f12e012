package feed

import (
	"sync"
	"time"

	"github.com/hallview/hallview/internal/event_bus"
)

const (
	StatePending = "pending"
	StateOK      = "ok"
	StateFailed  = "failed"
)

// CycleStatus describes the outcome of the most recent refresh cycle.
type CycleStatus struct {
	State         string    `json:"state"`
	CycleID       string    `json:"cycleId,omitempty"`
	FinishedAt    time.Time `json:"finishedAt"`
	EventCount    int       `json:"eventCount"`
	RejectedCount int       `json:"rejectedCount"`
	Reason        string    `json:"reason,omitempty"`
	Details       string    `json:"details,omitempty"`
}

// StatusTracker follows refresh outcomes on the event bus so handlers can
// report the current pipeline state without touching the refresher.
type StatusTracker struct {
	mu     sync.RWMutex
	status CycleStatus
}

func NewStatusTracker(bus *event_bus.EventBus) *StatusTracker {
	t := &StatusTracker{status: CycleStatus{State: StatePending}}

	event_bus.SubscribeTyped[event_bus.CalendarRefreshed](bus, event_bus.TypeCalendarRefreshed,
		func(e event_bus.EventT[event_bus.CalendarRefreshed]) error {
			t.mu.Lock()
			defer t.mu.Unlock()
			t.status = CycleStatus{
				State:         StateOK,
				CycleID:       e.Data.CycleID,
				FinishedAt:    e.Timestamp,
				EventCount:    e.Data.EventCount,
				RejectedCount: e.Data.RejectedCount,
			}
			return nil
		})

	event_bus.SubscribeTyped[event_bus.CalendarRefreshFailed](bus, event_bus.TypeCalendarRefreshFailed,
		func(e event_bus.EventT[event_bus.CalendarRefreshFailed]) error {
			t.mu.Lock()
			defer t.mu.Unlock()
			t.status = CycleStatus{
				State:      StateFailed,
				CycleID:    e.Data.CycleID,
				FinishedAt: e.Timestamp,
				Reason:     e.Data.Reason,
				Details:    e.Data.Details,
			}
			return nil
		})

	return t
}

// Current returns a copy of the latest cycle status.
func (t *StatusTracker) Current() CycleStatus {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.status
}

// Failed reports whether the most recent cycle gave up.
func (t *StatusTracker) Failed() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.status.State == StateFailed
}
