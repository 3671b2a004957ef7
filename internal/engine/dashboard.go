package engine

import (
	"time"

	"github.com/victorcosta213/DashBoard-Apresentacao/internal/model"
)

// Params UI parameters driving one dashboard computation
type Params struct {
	Criteria   Criteria   // detail-table filters; Criteria.Range is also the KPI period
	Cutoff     time.Time  // cohort cutoff; zero = now
	CohortRole model.Role // empty = every role
}

// Dashboard every output consumed by the presentation layer
type Dashboard struct {
	KPIs              model.KPIs             `json:"kpis"`
	ByRole            []model.CategoryCount  `json:"byRole"`
	ByLocation        []model.CategoryCount  `json:"byLocation"`
	ActiveByLocation  []model.CategoryCount  `json:"activeByLocation"`
	Monthly           []model.MonthlyBucket  `json:"monthly"`
	MonthlyBalance    []model.BalancePoint   `json:"monthlyBalance"`
	Months            []string               `json:"months"`
	Headcount         []model.HeadcountPoint `json:"headcount"`
	StackedByLocation model.StackedSeries    `json:"stackedByLocation"`
	StackedByRole     model.StackedSeries    `json:"stackedByRole"`
	PeriodValid       bool                   `json:"periodValid"`
	Period            model.PeriodBalance    `json:"period"`
	Turnover          model.Turnover         `json:"turnover"`
	Cohort            model.Cohort           `json:"cohort"`
	Filters           FilterOptions          `json:"filters"`
	Employees         []model.Employee       `json:"employees"`
}

// Build computes the whole dashboard. Aggregates use the full roster; only Employees
// reflects the filters.
func (e *Engine) Build(emps []model.Employee, p Params, now time.Time) Dashboard {
	cutoff := p.Cutoff
	if cutoff.IsZero() {
		cutoff = now
	}

	monthly := e.MonthlySeries(emps)
	headcount := e.MonthlyHeadcount(emps, now)
	period := e.Balance(emps, p.Criteria.Range)

	return Dashboard{
		KPIs:              e.KPIs(emps),
		ByRole:            e.CountByRole(emps),
		ByLocation:        e.CountByLocation(emps),
		ActiveByLocation:  e.ActiveByLocation(emps),
		Monthly:           monthly,
		MonthlyBalance:    e.MonthlyBalance(monthly),
		Months:            e.MonthAxis(emps, now),
		Headcount:         headcount,
		StackedByLocation: e.StackedHeadcount(emps, now, ByLocation),
		StackedByRole:     e.StackedHeadcount(emps, now, ByRole),
		PeriodValid:       p.Criteria.Range.Valid(),
		Period:            period,
		Turnover:          e.Turnover(headcount, p.Criteria.Range, period.Terminations),
		Cohort:            e.CohortRetention(emps, cutoff, CohortOptions{Role: p.CohortRole}),
		Filters:           e.FilterOptions(emps),
		Employees:         e.Filter(emps, p.Criteria),
	}
}
