package roster

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// placeholderDate marker used in the source sheets for "no date"
const placeholderDate = "***"

// ParseDate parses a roster date cell.
// Empty values, the *** placeholder and anything unparsable yield nil; it never fails.
// Ambiguous numeric dates are read day-first (15/01/2023, 01/02/2023 = 1 Feb).
func ParseDate(raw string, loc *time.Location) *time.Time {
	s := strings.TrimSpace(raw)
	if s == "" || s == placeholderDate {
		return nil
	}
	if loc == nil {
		loc = time.Local
	}

	t, ok := parseIn(s, loc)
	if !ok {
		return nil
	}

	day := StartOfDay(t.In(loc))
	return &day
}

// parseIn wraps dateparse; some malformed inputs make it panic
func parseIn(s string, loc *time.Location) (t time.Time, ok bool) {
	defer func() {
		if recover() != nil {
			t, ok = time.Time{}, false
		}
	}()

	t, err := dateparse.ParseIn(s, loc, dateparse.PreferMonthFirst(false))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// StartOfDay truncates t to midnight in its own location
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last nanosecond of t's calendar day
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}
