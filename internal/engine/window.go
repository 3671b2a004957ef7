package engine

import (
	"time"

	"github.com/victorcosta213/DashBoard-Apresentacao/internal/model"
	"github.com/victorcosta213/DashBoard-Apresentacao/internal/roster"
)

// month one calendar month of the axis; next is the first instant of the following month
type month struct {
	key   string
	start time.Time
	next  time.Time
}

func newMonth(t time.Time) month {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return month{
		key:   model.MonthKey(start),
		start: start,
		next:  start.AddDate(0, 1, 0),
	}
}

// end last instant of the month
func (m month) end() time.Time {
	return m.next.Add(-time.Nanosecond)
}

// dayWindow inclusive [start-of-day(start), end-of-day(end)] bounds
type dayWindow struct {
	from time.Time
	to   time.Time
}

func newDayWindow(r model.DateRange, loc *time.Location) dayWindow {
	return dayWindow{
		from: roster.StartOfDay(r.Start.In(loc)),
		to:   roster.EndOfDay(r.End.In(loc)),
	}
}

func (w dayWindow) contains(t time.Time) bool {
	return !t.Before(w.from) && !t.After(w.to)
}

func (w dayWindow) containsPtr(t *time.Time) bool {
	return t != nil && w.contains(*t)
}

// employedAt reports the as-of snapshot predicate for the instant eom:
// admitted at or before eom and not terminated at or before it.
func employedAt(emp model.Employee, eom time.Time) bool {
	if emp.Admission == nil || emp.Admission.After(eom) {
		return false
	}
	return emp.Termination == nil || emp.Termination.After(eom)
}

// parseMonthKey parses YYYY-MM as the first day of that month in loc
func parseMonthKey(key string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(model.MonthLayout, key, loc)
}

// MonthRange returns the first and last day of the YYYY-MM month key
func MonthRange(key string, loc *time.Location) (model.DateRange, bool) {
	if loc == nil {
		loc = time.Local
	}
	t, err := parseMonthKey(key, loc)
	if err != nil {
		return model.DateRange{}, false
	}
	m := newMonth(t)
	return model.DateRange{Start: m.start, End: roster.StartOfDay(m.end())}, true
}
