package engine

import (
	"testing"

	"github.com/victorcosta213/DashBoard-Apresentacao/internal/model"
)

func TestTurnoverRate_ZeroHeadcount(t *testing.T) {
	t.Parallel()

	if got := TurnoverRate(5, 0); got != 0 {
		t.Fatalf("want 0 got %v", got)
	}
}

func TestTurnover_AveragesMonthEndsInsidePeriod(t *testing.T) {
	t.Parallel()

	e := newTestEngine()
	headcount := []model.HeadcountPoint{
		{Month: "2023-01", Headcount: 10},
		{Month: "2023-02", Headcount: 11},
		{Month: "2023-03", Headcount: 11},
		{Month: "2023-04", Headcount: 40},
	}

	// April ends on the 30th, outside the window
	got := e.Turnover(headcount, rangeOf("2023-01-01", "2023-04-29"), 2)
	if len(got.Months) != 3 {
		t.Fatalf("expected 3 months in period, got %+v", got.Months)
	}
	if got.AverageHeadcount != 10.7 {
		t.Errorf("average want=10.7 got=%v", got.AverageHeadcount)
	}
	// 2 / 10.7 * 100 = 18.69...
	if got.Rate != 18.7 {
		t.Errorf("rate want=18.7 got=%v", got.Rate)
	}
	if got.Terminations != 2 {
		t.Errorf("terminations want=2 got=%d", got.Terminations)
	}
}

func TestTurnover_NoMonthsOrInvalidRange(t *testing.T) {
	t.Parallel()

	e := newTestEngine()
	headcount := []model.HeadcountPoint{{Month: "2023-01", Headcount: 10}}

	got := e.Turnover(headcount, rangeOf("2023-01-01", "2023-01-15"), 5)
	if got.AverageHeadcount != 0 || got.Rate != 0 {
		t.Fatalf("no month end in range should give zeros, got %+v", got)
	}

	got = e.Turnover(headcount, model.DateRange{}, 5)
	if got.Rate != 0 || got.Terminations != 0 || len(got.Months) != 0 {
		t.Fatalf("invalid range should give zeros, got %+v", got)
	}
}

func TestMonthRange(t *testing.T) {
	t.Parallel()

	r, ok := MonthRange("2024-02", nil)
	if !ok {
		t.Fatalf("expected ok")
	}
	if r.Start.Format(model.DateLayout) != "2024-02-01" || r.End.Format(model.DateLayout) != "2024-02-29" {
		t.Fatalf("unexpected range: %v - %v", r.Start, r.End)
	}
	if _, ok := MonthRange("2024/02", nil); ok {
		t.Fatalf("malformed key should fail")
	}
}
