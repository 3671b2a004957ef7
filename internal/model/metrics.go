package model

import (
	"encoding/json"
	"time"
)

// KPIs headline counters
type KPIs struct {
	Total      int `json:"total"`
	Active     int `json:"active"`
	Terminated int `json:"terminated"`
}

// CategoryCount group key with its count
type CategoryCount struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// MonthlyBucket admissions and terminations observed in one month
type MonthlyBucket struct {
	Month        string `json:"month"` // YYYY-MM
	Admissions   int    `json:"admissions"`
	Terminations int    `json:"terminations"`
}

// BalancePoint net admissions for one month
type BalancePoint struct {
	Month   string `json:"month"`
	Balance int    `json:"balance"`
}

// HeadcountPoint month-end headcount snapshot
type HeadcountPoint struct {
	Month     string `json:"month"`
	Headcount int    `json:"headcount"`
}

// StackedSeriesPoint per-key month-end headcount for one month
type StackedSeriesPoint struct {
	Month  string
	Values map[string]int
}

// MarshalJSON flattens Values next to the month key
func (p StackedSeriesPoint) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(p.Values)+1)
	for k, v := range p.Values {
		out[k] = v
	}
	out["month"] = p.Month
	return json.Marshal(out)
}

// StackedSeries top-N plus other series; Keys is the fixed key set of every point
type StackedSeries struct {
	Keys   []string             `json:"keys"`
	Points []StackedSeriesPoint `json:"points"`
}

// PeriodBalance admissions and terminations inside a date range
type PeriodBalance struct {
	Admissions   int `json:"admissions"`
	Terminations int `json:"terminations"`
	Balance      int `json:"balance"`
}

// Turnover terminations over average month-end headcount for a period
type Turnover struct {
	Terminations     int              `json:"terminations"`
	AverageHeadcount float64          `json:"averageHeadcount"`
	Rate             float64          `json:"rate"` // percent, one decimal
	Months           []HeadcountPoint `json:"months"`
}

// CohortRow retention figures for one location
type CohortRow struct {
	Location     string  `json:"location"`
	Hired        int     `json:"hired"`
	Stayed       int     `json:"stayed"`
	Left         int     `json:"left"`
	RetentionPct float64 `json:"retentionPct"`
	ExitPct      float64 `json:"exitPct"`
}

// Cohort retention of everyone admitted on or before Cutoff
type Cohort struct {
	Cutoff string      `json:"cutoff"` // YYYY-MM-DD
	Role   Role        `json:"role,omitempty"`
	Total  CohortRow   `json:"total"`
	Rows   []CohortRow `json:"rows"`
}

// DateRange inclusive calendar range; a zero endpoint means "not set"
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Valid reports whether both endpoints are set
func (r DateRange) Valid() bool {
	return !r.Start.IsZero() && !r.End.IsZero()
}
