package engine

import (
	"sort"

	"github.com/victorcosta213/DashBoard-Apresentacao/internal/model"
)

// MonthlySeries buckets admissions and terminations by event month, ascending.
// Only months with at least one event appear.
func (e *Engine) MonthlySeries(emps []model.Employee) []model.MonthlyBucket {
	buckets := make(map[string]*model.MonthlyBucket)
	bucket := func(key string) *model.MonthlyBucket {
		b, ok := buckets[key]
		if !ok {
			b = &model.MonthlyBucket{Month: key}
			buckets[key] = b
		}
		return b
	}

	for _, emp := range emps {
		if emp.Admission != nil {
			bucket(model.MonthKey(emp.Admission.In(e.opts.Location))).Admissions++
		}
		if emp.Termination != nil {
			bucket(model.MonthKey(emp.Termination.In(e.opts.Location))).Terminations++
		}
	}

	out := make([]model.MonthlyBucket, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Month < out[j].Month
	})
	return out
}

// MonthlyBalance derives admissions minus terminations per bucket
func (e *Engine) MonthlyBalance(series []model.MonthlyBucket) []model.BalancePoint {
	out := make([]model.BalancePoint, 0, len(series))
	for _, b := range series {
		out = append(out, model.BalancePoint{
			Month:   b.Month,
			Balance: b.Admissions - b.Terminations,
		})
	}
	return out
}

// Balance counts admissions and terminations whose date falls inside r (inclusive,
// whole days). An invalid range yields zeros.
func (e *Engine) Balance(emps []model.Employee, r model.DateRange) model.PeriodBalance {
	if !r.Valid() {
		return model.PeriodBalance{}
	}

	w := newDayWindow(r, e.opts.Location)
	var pb model.PeriodBalance
	for _, emp := range emps {
		if w.containsPtr(emp.Admission) {
			pb.Admissions++
		}
		if w.containsPtr(emp.Termination) {
			pb.Terminations++
		}
	}
	pb.Balance = pb.Admissions - pb.Terminations
	return pb
}
