package engine

import (
	"time"

	"github.com/victorcosta213/DashBoard-Apresentacao/internal/model"
)

// MonthAxis returns every calendar month from the earliest to the latest admission or
// termination date, inclusive. Without any dated event the axis is the single month of now.
func (e *Engine) MonthAxis(emps []model.Employee, now time.Time) []string {
	axis := e.axis(emps, now)
	out := make([]string, len(axis))
	for i, m := range axis {
		out[i] = m.key
	}
	return out
}

// MonthlyHeadcount counts, for each month of the axis, the employees on the roster at
// month end: admitted on or before it and not yet terminated.
func (e *Engine) MonthlyHeadcount(emps []model.Employee, now time.Time) []model.HeadcountPoint {
	axis := e.axis(emps, now)
	out := make([]model.HeadcountPoint, 0, len(axis))
	for _, m := range axis {
		eom := m.end()
		n := 0
		for _, emp := range emps {
			if employedAt(emp, eom) {
				n++
			}
		}
		out = append(out, model.HeadcountPoint{Month: m.key, Headcount: n})
	}
	return out
}

func (e *Engine) axis(emps []model.Employee, now time.Time) []month {
	var first, last time.Time
	seen := false
	observe := func(t *time.Time) {
		if t == nil {
			return
		}
		v := t.In(e.opts.Location)
		if !seen || v.Before(first) {
			first = v
		}
		if !seen || v.After(last) {
			last = v
		}
		seen = true
	}
	for _, emp := range emps {
		observe(emp.Admission)
		observe(emp.Termination)
	}

	if !seen {
		return []month{newMonth(now.In(e.opts.Location))}
	}

	out := make([]month, 0)
	for m := newMonth(first); !m.start.After(last); m = newMonth(m.next) {
		out = append(out, m)
	}
	return out
}
