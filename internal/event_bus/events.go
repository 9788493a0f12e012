package event_bus

import "time"

const (
	TypeCalendarRefreshed     EventType = "calendar.refreshed"
	TypeCalendarRefreshFailed EventType = "calendar.refresh_failed"
)

// CalendarRefreshed is published after a fetch cycle has replaced the event
// store contents.
type CalendarRefreshed struct {
	CycleID       string
	EventCount    int
	RejectedCount int
	Duration      time.Duration
}

// CalendarRefreshFailed is published when a fetch cycle gives up. Reason is
// "transient" for exhausted retries and "contract" for responses that did not
// match the expected shape.
type CalendarRefreshFailed struct {
	CycleID string
	Reason  string
	Details string
}
