package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_FillsDefaults(t *testing.T) {
	event, err := Normalize(RawEvent{"start_date": "2024-06-01"})

	assert.NoError(t, err)
	assert.Equal(t, "Untitled Event", event.Summary)
	assert.Equal(t, "", event.Description)
	assert.Equal(t, "", event.Location)
	assert.Equal(t, "confirmed", event.Status)
	assert.Equal(t, "public", event.Classification)
	assert.Equal(t, "2024-06-01", event.StartDate)
	assert.True(t, event.AllDay)
}

func TestNormalize_DateAliasTakesPrecedence(t *testing.T) {
	event, err := Normalize(RawEvent{
		"date":       "2024-06-02",
		"start_date": "2024-06-01",
	})

	assert.NoError(t, err)
	assert.Equal(t, "2024-06-02", event.StartDate)
}

func TestNormalize_Rejections(t *testing.T) {
	testCases := []struct {
		name string
		raw  RawEvent
	}{
		{"nil record", nil},
		{"no date at all", RawEvent{"summary": "Dateless"}},
		{"date has wrong type", RawEvent{"date": 20240601.0}},
		{"empty date string", RawEvent{"start_date": ""}},
		{"free-form date", RawEvent{"start_date": "June 1, 2024"}},
		{"out of range month", RawEvent{"start_date": "2024-13-01"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Normalize(tc.raw)
			assert.Error(t, err)
		})
	}
}

func TestNormalize_AllDayClassification(t *testing.T) {
	testCases := []struct {
		name   string
		raw    RawEvent
		allDay bool
	}{
		{
			name:   "explicit flag wins over timed start",
			raw:    RawEvent{"start_date": "2024-06-01", "start_time": "09:00:00", "is_all_day": true},
			allDay: true,
		},
		{
			name:   "absent start time means all-day",
			raw:    RawEvent{"start_date": "2024-06-01"},
			allDay: true,
		},
		{
			name:   "flag false with absent time is still all-day",
			raw:    RawEvent{"start_date": "2024-06-01", "is_all_day": false},
			allDay: true,
		},
		{
			name:   "explicit midnight is a timed event",
			raw:    RawEvent{"start_date": "2024-06-01", "start_time": "00:00:00"},
			allDay: false,
		},
		{
			name:   "morning start time is a timed event",
			raw:    RawEvent{"start_date": "2024-06-01", "start_time": "09:00:00"},
			allDay: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			event, err := Normalize(tc.raw)
			assert.NoError(t, err)
			assert.Equal(t, tc.allDay, event.AllDay)
		})
	}
}

func TestNormalize_RecurrencePresence(t *testing.T) {
	testCases := []struct {
		name      string
		raw       RawEvent
		recurring bool
	}{
		{"bool true", RawEvent{"start_date": "2024-06-01", "recurrence": true}, true},
		{"rule string", RawEvent{"start_date": "2024-06-01", "recurrence": "FREQ=WEEKLY"}, true},
		{"bool false", RawEvent{"start_date": "2024-06-01", "recurrence": false}, false},
		{"empty string", RawEvent{"start_date": "2024-06-01", "recurrence": ""}, false},
		{"zero number", RawEvent{"start_date": "2024-06-01", "recurrence": 0.0}, false},
		{"absent", RawEvent{"start_date": "2024-06-01"}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			event, err := Normalize(tc.raw)
			assert.NoError(t, err)
			assert.Equal(t, tc.recurring, event.Recurring)
		})
	}
}

func TestNormalize_IsPure(t *testing.T) {
	raw := RawEvent{
		"start_date": "2024-06-01",
		"start_time": "09:00:00",
		"summary":    "Standup",
		"location":   "Kitchen",
	}

	first, err := Normalize(raw)
	assert.NoError(t, err)
	second, err := Normalize(raw)
	assert.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, raw, 4)
}
