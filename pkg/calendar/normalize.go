package calendar

import (
	"errors"
	"fmt"
)

var ErrNotAnObject = errors.New("event is not an object")

// Normalize validates one raw record and builds the canonical Event for it.
// A record is rejected when it is not an object, when neither "date" nor
// "start_date" holds a non-empty string, or when the effective start date is
// not a valid YYYY-MM-DD string. Everything else is filled with defaults so
// a single malformed record never aborts the whole batch.
func Normalize(raw RawEvent) (Event, error) {
	if raw == nil {
		return Event{}, ErrNotAnObject
	}

	startDate := stringField(raw, "date")
	if startDate == "" {
		startDate = stringField(raw, "start_date")
	}
	if startDate == "" {
		return Event{}, errors.New("event has no start date")
	}
	if _, err := ParseDate(startDate); err != nil {
		return Event{}, fmt.Errorf("invalid start date: %w", err)
	}

	startTime := stringField(raw, "start_time")

	// An absent start time makes the event all-day; an explicit "00:00:00"
	// does not.
	allDay := boolField(raw, "is_all_day") || startTime == ""

	event := Event{
		Summary:        stringField(raw, "summary"),
		Description:    stringField(raw, "description"),
		Location:       stringField(raw, "location"),
		StartDate:      startDate,
		StartTime:      startTime,
		EndDate:        stringField(raw, "end_date"),
		EndTime:        stringField(raw, "end_time"),
		AllDay:         allDay,
		Status:         stringField(raw, "status"),
		Classification: stringField(raw, "classification"),
		Type:           stringField(raw, "type"),
		Recurring:      truthyField(raw, "recurrence"),
	}

	if event.Summary == "" {
		event.Summary = "Untitled Event"
	}
	if event.Status == "" {
		event.Status = "confirmed"
	}
	if event.Classification == "" {
		event.Classification = "public"
	}

	return event, nil
}

func stringField(raw RawEvent, key string) string {
	s, _ := raw[key].(string)
	return s
}

func boolField(raw RawEvent, key string) bool {
	b, _ := raw[key].(bool)
	return b
}

// truthyField reports whether the field is present with a non-empty value,
// matching the loose presence check the feed producers rely on.
func truthyField(raw RawEvent, key string) bool {
	switch v := raw[key].(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != ""
	case float64:
		return v != 0
	default:
		return true
	}
}
