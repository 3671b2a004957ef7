package engine

import (
	"sort"
	"time"

	"github.com/victorcosta213/DashBoard-Apresentacao/internal/model"
	"github.com/victorcosta213/DashBoard-Apresentacao/internal/roster"
)

// CohortOptions narrows the cohort
type CohortOptions struct {
	Role model.Role // empty = every role
}

// CohortRetention measures retention of everyone admitted on or before cutoff.
// Left counts cohort members terminated on or before cutoff; the rest stayed.
// Rows break the cohort down by location, largest first.
func (e *Engine) CohortRetention(emps []model.Employee, cutoff time.Time, opts CohortOptions) model.Cohort {
	limit := roster.EndOfDay(cutoff.In(e.opts.Location))

	index := make(map[string]int)
	rows := make([]model.CohortRow, 0)
	var total model.CohortRow

	for _, emp := range emps {
		if opts.Role != "" && emp.Role != opts.Role {
			continue
		}
		if emp.Admission == nil || emp.Admission.After(limit) {
			continue
		}
		left := emp.Termination != nil && !emp.Termination.After(limit)

		k := locationKey(emp)
		i, ok := index[k]
		if !ok {
			i = len(rows)
			index[k] = i
			rows = append(rows, model.CohortRow{Location: k})
		}
		tally(&rows[i], left)
		tally(&total, left)
	}

	for i := range rows {
		withPercents(&rows[i])
	}
	withPercents(&total)
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Hired > rows[j].Hired
	})

	return model.Cohort{
		Cutoff: limit.Format(model.DateLayout),
		Role:   opts.Role,
		Total:  total,
		Rows:   rows,
	}
}

// CohortFromCounts builds a row from raw counts, deriving stayed and the percentages
func CohortFromCounts(location string, hired, left int) model.CohortRow {
	row := model.CohortRow{Location: location, Hired: hired, Left: left, Stayed: hired - left}
	withPercents(&row)
	return row
}

func tally(row *model.CohortRow, left bool) {
	row.Hired++
	if left {
		row.Left++
	} else {
		row.Stayed++
	}
}

func withPercents(row *model.CohortRow) {
	row.RetentionPct = percent(row.Stayed, row.Hired)
	row.ExitPct = percent(row.Left, row.Hired)
}
