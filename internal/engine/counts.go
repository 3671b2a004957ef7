package engine

import (
	"sort"

	"github.com/victorcosta213/DashBoard-Apresentacao/internal/model"
)

// KPIs counts total, active and terminated employees
func (e *Engine) KPIs(emps []model.Employee) model.KPIs {
	active := 0
	for _, emp := range emps {
		if emp.Active() {
			active++
		}
	}
	return model.KPIs{
		Total:      len(emps),
		Active:     active,
		Terminated: len(emps) - active,
	}
}

// CountByRole counts employees per role in order of first appearance
func (e *Engine) CountByRole(emps []model.Employee) []model.CategoryCount {
	return groupCount(emps, roleKey, nil)
}

// CountByLocation counts employees per location, largest first
func (e *Engine) CountByLocation(emps []model.Employee) []model.CategoryCount {
	return sortDesc(groupCount(emps, locationKey, nil))
}

// ActiveByLocation counts active employees per location, largest first
func (e *Engine) ActiveByLocation(emps []model.Employee) []model.CategoryCount {
	return sortDesc(groupCount(emps, locationKey, model.Employee.Active))
}

func roleKey(emp model.Employee) string {
	return groupKey(string(emp.Role))
}

func locationKey(emp model.Employee) string {
	return groupKey(emp.Location)
}

// groupKey substitutes the placeholder for an empty key
func groupKey(k string) string {
	if k == "" {
		return model.EmptyKey
	}
	return k
}

// groupCount counts emps per key, keeping first-appearance order; keep may be nil
func groupCount(emps []model.Employee, key func(model.Employee) string, keep func(model.Employee) bool) []model.CategoryCount {
	index := make(map[string]int)
	out := make([]model.CategoryCount, 0)

	for _, emp := range emps {
		if keep != nil && !keep(emp) {
			continue
		}
		k := key(emp)
		i, ok := index[k]
		if !ok {
			i = len(out)
			index[k] = i
			out = append(out, model.CategoryCount{Key: k})
		}
		out[i].Count++
	}
	return out
}

func sortDesc(counts []model.CategoryCount) []model.CategoryCount {
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	return counts
}
