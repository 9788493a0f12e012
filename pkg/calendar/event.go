package calendar

// RawEvent is a single loosely-typed record from the backend feed. Field
// presence and types are unknown until Normalize validates them.
type RawEvent map[string]any

// Event is a normalized calendar entry. Once built by Normalize it is
// treated as immutable: StartDate is always a validated YYYY-MM-DD string
// and AllDay is always decided.
type Event struct {
	Summary        string
	Description    string
	Location       string
	StartDate      string
	StartTime      string
	EndDate        string
	EndTime        string
	AllDay         bool
	Status         string
	Classification string
	Type           string
	Recurring      bool
}
