package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStore_AddKeepsDayOrdered(t *testing.T) {
	store := NewStore()
	store.Add(Event{Summary: "Lunch", StartDate: "2024-06-01", StartTime: "12:00:00"})
	store.Add(Event{Summary: "Standup", StartDate: "2024-06-01", StartTime: "09:00:00"})
	store.Add(Event{Summary: "Holiday", StartDate: "2024-06-01", AllDay: true})

	day := store.Get("2024-06-01")

	assert.Len(t, day, 3)
	assert.Equal(t, "Holiday", day[0].Summary)
	assert.Equal(t, "Standup", day[1].Summary)
	assert.Equal(t, "Lunch", day[2].Summary)
}

func TestStore_DistinctDateStringsNotMerged(t *testing.T) {
	// 2024-02-31 resolves to the same instant as 2024-03-02, but grouping is
	// by the exact date string, so the two days must stay separate.
	store := NewStore()
	store.Add(Event{Summary: "Rolled over", StartDate: "2024-02-31", AllDay: true})
	store.Add(Event{Summary: "Real March day", StartDate: "2024-03-02", AllDay: true})

	assert.Len(t, store.Get("2024-02-31"), 1)
	assert.Len(t, store.Get("2024-03-02"), 1)
	assert.Equal(t, 2, store.TotalCount())
}

func TestStore_GetMissingDayIsEmpty(t *testing.T) {
	store := NewStore()
	assert.Empty(t, store.Get("2024-06-01"))
}

func TestStore_GetReturnsCopy(t *testing.T) {
	store := NewStore()
	store.Add(Event{Summary: "Original", StartDate: "2024-06-01", AllDay: true})

	day := store.Get("2024-06-01")
	day[0].Summary = "Mutated"

	assert.Equal(t, "Original", store.Get("2024-06-01")[0].Summary)
}

func TestStore_ClearAndTotalCount(t *testing.T) {
	store := NewStore()
	store.Add(Event{StartDate: "2024-06-01", AllDay: true})
	store.Add(Event{StartDate: "2024-06-01", StartTime: "09:00:00"})
	store.Add(Event{StartDate: "2024-06-02", AllDay: true})
	assert.Equal(t, 3, store.TotalCount())

	store.Clear()

	assert.Equal(t, 0, store.TotalCount())
	assert.Empty(t, store.Get("2024-06-01"))
}
