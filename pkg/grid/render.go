package grid

import (
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/hallview/hallview/internal/utils"
	"github.com/hallview/hallview/pkg/calendar"
)

const timeBadgeLayout = "3:04 PM"

// EventRow is one rendered event inside a day cell. Display strings are
// HTML-escaped so stored event fields cannot inject markup downstream.
type EventRow struct {
	Summary        string `json:"summary"`
	Location       string `json:"location,omitempty"`
	Time           string `json:"time,omitempty"`
	AllDay         bool   `json:"allDay"`
	Recurring      bool   `json:"recurring"`
	Status         string `json:"status"`
	Classification string `json:"classification"`
	Title          string `json:"title"`
}

// CellView is the renderer's output for one day of the window.
type CellView struct {
	Date      string     `json:"date"`
	DayName   string     `json:"dayName"`
	DayNumber string     `json:"dayNumber"`
	IsToday   bool       `json:"isToday"`
	HasEvents bool       `json:"hasEvents"`
	Category  string     `json:"category,omitempty"`
	Title     string     `json:"title,omitempty"`
	Events    []EventRow `json:"events,omitempty"`
}

// View is the full rendered grid. An empty store renders as a single
// no-events placeholder instead of day cells.
type View struct {
	NoEvents bool       `json:"noEvents"`
	Cells    []CellView `json:"cells,omitempty"`
}

type Renderer struct {
	windowDays int
}

func NewRenderer(windowDays int) *Renderer {
	if windowDays <= 0 {
		windowDays = 3
	}
	return &Renderer{windowDays: windowDays}
}

// Window projects the store over [today, today+windowDays) truncated to
// local midnight. Day cells are looked up by the local YYYY-MM-DD key, the
// same form the store is keyed by.
func (r *Renderer) Window(today time.Time, store *calendar.Store) View {
	if store.TotalCount() == 0 {
		return View{NoEvents: true}
	}

	start := utils.StartOfDay(today)
	cells := make([]CellView, 0, r.windowDays)
	for i := 0; i < r.windowDays; i++ {
		day := start.AddDate(0, 0, i)
		key := calendar.DayKey(day)
		events := store.Get(key)

		cell := CellView{
			Date:      key,
			DayName:   day.Format("Mon"),
			DayNumber: fmt.Sprintf("%02d", day.Day()),
			IsToday:   i == 0,
			HasEvents: len(events) > 0,
		}
		if len(events) > 0 {
			cell.Category = category(events)
			cell.Title = tooltip(events)
			cell.Events = rows(events)
		}
		cells = append(cells, cell)
	}

	return View{Cells: cells}
}

// category picks the cell's class by priority: current > external > event.
func category(events []calendar.Event) string {
	for _, e := range events {
		if e.Type == "current" {
			return "current"
		}
	}
	for _, e := range events {
		if e.Type == "external" {
			return "external"
		}
	}
	return "event"
}

// tooltip joins one bullet line per event, with the time badge when the
// event has a parseable start time.
func tooltip(events []calendar.Event) string {
	lines := make([]string, 0, len(events))
	for _, e := range events {
		line := "• "
		if badge := timeBadge(e); badge != "" {
			line += badge + " - "
		}
		line += html.EscapeString(e.Summary)
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func rows(events []calendar.Event) []EventRow {
	out := make([]EventRow, 0, len(events))
	for _, e := range events {
		titleParts := make([]string, 0, 4)
		for _, part := range []string{e.Summary, e.Location, e.Description} {
			if part != "" {
				titleParts = append(titleParts, part)
			}
		}
		titleParts = append(titleParts, "["+e.Status+"]")

		out = append(out, EventRow{
			Summary:        html.EscapeString(e.Summary),
			Location:       html.EscapeString(e.Location),
			Time:           timeBadge(e),
			AllDay:         e.AllDay,
			Recurring:      e.Recurring,
			Status:         strings.ToLower(e.Status),
			Classification: strings.ToLower(e.Classification),
			Title:          html.EscapeString(strings.Join(titleParts, "\n")),
		})
	}
	return out
}

// timeBadge formats the event's start time for display. All-day events and
// events whose time fails to parse get no badge; the UI shows its all-day
// indicator instead.
func timeBadge(e calendar.Event) string {
	if e.AllDay || e.StartTime == "" {
		return ""
	}
	start, err := calendar.ParseDateTime(e.StartDate, e.StartTime)
	if err != nil {
		return ""
	}
	return start.Format(timeBadgeLayout)
}
