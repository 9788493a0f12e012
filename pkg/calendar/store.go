package calendar

import "sync"

// Store holds the current snapshot of calendar data: a mapping from the
// exact start_date string to that day's ordered event list. Events with
// distinct date strings are never merged, even if they resolve to the same
// instant. The refresh cycle is the only writer; it replaces the contents
// wholesale on every run. Reads are safe from any goroutine.
type Store struct {
	mu   sync.RWMutex
	days map[string][]Event
}

func NewStore() *Store {
	return &Store{days: make(map[string][]Event)}
}

// Clear empties the snapshot.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.days = make(map[string][]Event)
}

// Add appends the event to its day and re-sorts that day's list. Per-day
// cardinality is small, so a full re-sort per insert is fine.
func (s *Store) Add(event Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	day := append(s.days[event.StartDate], event)
	SortEvents(day)
	s.days[event.StartDate] = day
}

// Get returns a copy of the ordered event list for the given date key, or
// an empty slice if the day has no events.
func (s *Store) Get(dateKey string) []Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Event(nil), s.days[dateKey]...)
}

// TotalCount returns the number of events across all days.
func (s *Store) TotalCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	total := 0
	for _, day := range s.days {
		total += len(day)
	}
	return total
}
