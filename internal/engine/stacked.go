package engine

import (
	"sort"
	"time"

	"github.com/victorcosta213/DashBoard-Apresentacao/internal/model"
)

// Dimension grouping used by the stacked headcount series
type Dimension string

const (
	ByLocation Dimension = "location"
	ByRole     Dimension = "role"
)

// ParseDimension maps a query value to a Dimension, defaulting to ByLocation
func ParseDimension(s string) Dimension {
	if Dimension(s) == ByRole {
		return ByRole
	}
	return ByLocation
}

// StackedHeadcount splits the month-end headcount of every axis month by dimension.
// The TopN groups with the highest headcount-months over the whole axis keep their own
// key; all others are summed under the dimension's other key. Every point carries every key.
func (e *Engine) StackedHeadcount(emps []model.Employee, now time.Time, dim Dimension) model.StackedSeries {
	key, other := locationKey, e.opts.OtherLocationKey
	if dim == ByRole {
		key, other = roleKey, e.opts.OtherRoleKey
	}

	axis := e.axis(emps, now)
	perMonth := make([]map[string]int, len(axis))
	totals := make(map[string]int)
	order := make([]string, 0)

	for i, m := range axis {
		eom := m.end()
		counts := make(map[string]int)
		for _, emp := range emps {
			if !employedAt(emp, eom) {
				continue
			}
			k := key(emp)
			if _, ok := totals[k]; !ok {
				order = append(order, k)
			}
			counts[k]++
			totals[k]++
		}
		perMonth[i] = counts
	}

	ranked := make([]string, 0, len(order))
	for _, k := range order {
		if k != other {
			ranked = append(ranked, k)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return totals[ranked[i]] > totals[ranked[j]]
	})
	if len(ranked) > e.opts.TopN {
		ranked = ranked[:e.opts.TopN]
	}

	top := make(map[string]bool, len(ranked))
	for _, k := range ranked {
		top[k] = true
	}
	keys := append(append(make([]string, 0, len(ranked)+1), ranked...), other)

	points := make([]model.StackedSeriesPoint, 0, len(axis))
	for i, m := range axis {
		values := make(map[string]int, len(keys))
		for _, k := range keys {
			values[k] = 0
		}
		for k, n := range perMonth[i] {
			if top[k] {
				values[k] += n
			} else {
				values[other] += n
			}
		}
		points = append(points, model.StackedSeriesPoint{Month: m.key, Values: values})
	}

	return model.StackedSeries{Keys: keys, Points: points}
}
