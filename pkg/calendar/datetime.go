package calendar

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

const dayKeyLayout = "2006-01-02"

var (
	datePattern = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)
	timePattern = regexp.MustCompile(`^(\d{2}):(\d{2}):(\d{2})$`)
)

// ParseDate parses a YYYY-MM-DD string into a local-time instant at midnight.
// Year must be in [1900,2100], month in [1,12] and day in [1,31]. There is no
// per-month day-count check, so a date like 2024-02-31 is accepted and rolls
// forward the way time.Date resolves out-of-range days.
func ParseDate(dateStr string) (time.Time, error) {
	year, month, day, err := parseDateParts(dateStr)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local), nil
}

// ParseDateTime parses a YYYY-MM-DD date and an HH:MM:SS clock time into a
// single local-time instant. An explicit "00:00:00" produces the same instant
// as ParseDate but is a distinct, timed classification for the caller.
func ParseDateTime(dateStr, timeStr string) (time.Time, error) {
	year, month, day, err := parseDateParts(dateStr)
	if err != nil {
		return time.Time{}, err
	}

	m := timePattern.FindStringSubmatch(timeStr)
	if m == nil {
		return time.Time{}, fmt.Errorf("invalid time format: %q", timeStr)
	}

	hours, _ := strconv.Atoi(m[1])
	minutes, _ := strconv.Atoi(m[2])
	seconds, _ := strconv.Atoi(m[3])

	if hours > 23 || minutes > 59 || seconds > 59 {
		return time.Time{}, fmt.Errorf("time components out of range: %q", timeStr)
	}

	return time.Date(year, time.Month(month), day, hours, minutes, seconds, 0, time.Local), nil
}

func parseDateParts(dateStr string) (year, month, day int, err error) {
	m := datePattern.FindStringSubmatch(dateStr)
	if m == nil {
		return 0, 0, 0, fmt.Errorf("invalid date format: %q", dateStr)
	}

	year, _ = strconv.Atoi(m[1])
	month, _ = strconv.Atoi(m[2])
	day, _ = strconv.Atoi(m[3])

	if year < 1900 || year > 2100 || month < 1 || month > 12 || day < 1 || day > 31 {
		return 0, 0, 0, fmt.Errorf("date components out of range: %q", dateStr)
	}

	return year, month, day, nil
}

// DayKey formats t as the YYYY-MM-DD string used to key the store, in t's
// own location.
func DayKey(t time.Time) string {
	return t.Format(dayKeyLayout)
}
