package calendar

import "sort"

// Compare orders two events of the same day. All-day events come before
// timed ones; two all-day events compare by start date alone and two timed
// events by their full start instant. When either side fails to parse the
// pair is treated as equal, so Compare never panics but is not a strict
// total order. Callers must use a stable sort to keep the output
// deterministic.
func Compare(a, b Event) int {
	if a.AllDay && b.AllDay {
		dateA, errA := ParseDate(a.StartDate)
		dateB, errB := ParseDate(b.StartDate)
		if errA != nil || errB != nil {
			return 0
		}
		return dateA.Compare(dateB)
	}

	if a.AllDay {
		return -1
	}
	if b.AllDay {
		return 1
	}

	timeA, errA := ParseDateTime(a.StartDate, a.StartTime)
	timeB, errB := ParseDateTime(b.StartDate, b.StartTime)
	if errA != nil || errB != nil {
		return 0
	}
	return timeA.Compare(timeB)
}

// SortEvents sorts one day's event list in place using Compare.
func SortEvents(events []Event) {
	sort.SliceStable(events, func(i, j int) bool {
		return Compare(events[i], events[j]) < 0
	})
}
