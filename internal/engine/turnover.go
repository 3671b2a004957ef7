package engine

import (
	"math"

	"github.com/victorcosta213/DashBoard-Apresentacao/internal/model"
)

// Turnover computes the period turnover rate from a month-end headcount series.
// Months whose last day lies inside r are averaged (one decimal); the rate is
// terminations / average × 100 (one decimal), 0 when the average is 0.
// An invalid range yields a zero result.
func (e *Engine) Turnover(headcount []model.HeadcountPoint, r model.DateRange, terminations int) model.Turnover {
	if !r.Valid() {
		return model.Turnover{Months: []model.HeadcountPoint{}}
	}

	w := newDayWindow(r, e.opts.Location)
	months := make([]model.HeadcountPoint, 0)
	sum := 0
	for _, p := range headcount {
		m, ok := e.parseMonth(p.Month)
		if !ok || !w.contains(m.end()) {
			continue
		}
		months = append(months, p)
		sum += p.Headcount
	}

	avg := 0.0
	if len(months) > 0 {
		avg = round1(float64(sum) / float64(len(months)))
	}

	return model.Turnover{
		Terminations:     terminations,
		AverageHeadcount: avg,
		Rate:             TurnoverRate(terminations, avg),
		Months:           months,
	}
}

// TurnoverRate returns terminations / averageHeadcount × 100 rounded to one decimal,
// or 0 when averageHeadcount is not positive.
func TurnoverRate(terminations int, averageHeadcount float64) float64 {
	if averageHeadcount <= 0 {
		return 0
	}
	return math.Floor(float64(terminations)/averageHeadcount*1000+0.5) / 10
}

// parseMonth reads a YYYY-MM key in the engine's time zone
func (e *Engine) parseMonth(key string) (month, bool) {
	t, err := parseMonthKey(key, e.opts.Location)
	if err != nil {
		return month{}, false
	}
	return newMonth(t), true
}

// round1 rounds half up to one decimal
func round1(v float64) float64 {
	return math.Floor(v*10+0.5) / 10
}

// percent returns part/whole × 100 rounded to one decimal, 0 when whole is 0
func percent(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return round1(float64(part) * 100 / float64(whole))
}
