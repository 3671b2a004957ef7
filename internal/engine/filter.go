package engine

import (
	"github.com/victorcosta213/DashBoard-Apresentacao/internal/model"
)

// Criteria detail-table filters; zero values disable the corresponding filter
type Criteria struct {
	Role     string
	Location string
	Range    model.DateRange
}

// IsEmpty reports whether no filter is active
func (c Criteria) IsEmpty() bool {
	return c.Role == "" && c.Location == "" && !c.Range.Valid()
}

// Filter returns the employees passing every active filter, in input order.
// Role and location match exactly. A valid range keeps employees admitted OR terminated
// inside it (whole days, inclusive); someone employed throughout with no event inside
// the window is excluded.
func (e *Engine) Filter(emps []model.Employee, c Criteria) []model.Employee {
	var w *dayWindow
	if c.Range.Valid() {
		dw := newDayWindow(c.Range, e.opts.Location)
		w = &dw
	}

	out := make([]model.Employee, 0, len(emps))
	for _, emp := range emps {
		if c.Role != "" && string(emp.Role) != c.Role {
			continue
		}
		if c.Location != "" && emp.Location != c.Location {
			continue
		}
		if w != nil && !w.containsPtr(emp.Admission) && !w.containsPtr(emp.Termination) {
			continue
		}
		out = append(out, emp)
	}
	return out
}

// FilterOptions distinct values offered by the role and location pickers
type FilterOptions struct {
	Roles     []string `json:"roles"`
	Locations []string `json:"locations"`
}

// FilterOptions lists distinct non-empty roles and locations in order of first appearance
func (e *Engine) FilterOptions(emps []model.Employee) FilterOptions {
	opts := FilterOptions{Roles: []string{}, Locations: []string{}}
	seenRole := make(map[string]bool)
	seenLoc := make(map[string]bool)
	for _, emp := range emps {
		if r := string(emp.Role); r != "" && !seenRole[r] {
			seenRole[r] = true
			opts.Roles = append(opts.Roles, r)
		}
		if l := emp.Location; l != "" && !seenLoc[l] {
			seenLoc[l] = true
			opts.Locations = append(opts.Locations, l)
		}
	}
	return opts
}

// Toggle returns the next value of a click-to-filter selection:
// selecting the current value clears it, anything else replaces it.
func Toggle(current, selected string) string {
	if current == selected {
		return ""
	}
	return selected
}
