package engine

import (
	"testing"

	"github.com/victorcosta213/DashBoard-Apresentacao/internal/model"
)

func TestMonthAxis_Contiguous(t *testing.T) {
	t.Parallel()

	e := newTestEngine()
	got := e.MonthAxis([]model.Employee{
		emp("a", "", model.RoleEfetivo, "2022-11-15", "2023-02-03"),
		emp("b", "", model.RoleEfetivo, "2022-12-01", ""),
	}, day("2030-01-01"))

	want := []string{"2022-11", "2022-12", "2023-01", "2023-02"}
	if len(got) != len(want) {
		t.Fatalf("want=%v got=%v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("want=%v got=%v", want, got)
		}
	}
}

func TestMonthAxis_EmptyUsesNow(t *testing.T) {
	t.Parallel()

	e := newTestEngine()
	got := e.MonthAxis(nil, day("2026-10-14"))
	if len(got) != 1 || got[0] != "2026-10" {
		t.Fatalf("unexpected axis: %v", got)
	}

	undated := []model.Employee{emp("a", "", model.RoleEfetivo, "", "")}
	hc := e.MonthlyHeadcount(undated, day("2026-10-14"))
	if len(hc) != 1 || hc[0].Headcount != 0 {
		t.Fatalf("unexpected headcount: %+v", hc)
	}
}

func TestMonthlyHeadcount_MonthEndSnapshot(t *testing.T) {
	t.Parallel()

	e := newTestEngine()
	emps := []model.Employee{
		emp("stays", "", model.RoleEfetivo, "2023-01-01", ""),
		emp("last-day-exit", "", model.RoleEfetivo, "2023-01-10", "2023-01-31"),
		emp("feb-exit", "", model.RoleEfetivo, "2023-01-20", "2023-02-15"),
		emp("march-hire", "", model.RoleEfetivo, "2023-03-31", ""),
		emp("no-admission", "", model.RoleEfetivo, "", ""),
	}

	got := e.MonthlyHeadcount(emps, day("2030-01-01"))
	want := []model.HeadcountPoint{
		{Month: "2023-01", Headcount: 2},
		{Month: "2023-02", Headcount: 1},
		{Month: "2023-03", Headcount: 2},
	}
	if len(got) != len(want) {
		t.Fatalf("want=%+v got=%+v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("idx %d want=%+v got=%+v", i, want[i], got[i])
		}
	}
}

func TestStackedHeadcount_TopFivePlusOther(t *testing.T) {
	t.Parallel()

	e := newTestEngine()
	var emps []model.Employee
	// location L<n> gets n employees, all hired in January 2023
	for n, loc := range []string{"L1", "L2", "L3", "L4", "L5", "L6", "L7"} {
		for i := 0; i <= n; i++ {
			emps = append(emps, emp(loc, loc, model.RoleEfetivo, "2023-01-05", ""))
		}
	}
	emps = append(emps, emp("exit", "L7", model.RoleComissionado, "2023-01-05", "2023-03-10"))

	got := e.StackedHeadcount(emps, day("2030-01-01"), ByLocation)
	wantKeys := []string{"L7", "L6", "L5", "L4", "L3", "OUTRAS"}
	if len(got.Keys) != len(wantKeys) {
		t.Fatalf("want keys %v got %v", wantKeys, got.Keys)
	}
	for i := range wantKeys {
		if got.Keys[i] != wantKeys[i] {
			t.Fatalf("want keys %v got %v", wantKeys, got.Keys)
		}
	}

	headcount := e.MonthlyHeadcount(emps, day("2030-01-01"))
	if len(got.Points) != len(headcount) {
		t.Fatalf("points %d vs headcount %d", len(got.Points), len(headcount))
	}
	for i, p := range got.Points {
		if len(p.Values) != len(wantKeys) {
			t.Errorf("%s: key set %v", p.Month, p.Values)
		}
		sum := 0
		for _, k := range wantKeys {
			v, ok := p.Values[k]
			if !ok {
				t.Errorf("%s: missing key %s", p.Month, k)
			}
			sum += v
		}
		if sum != headcount[i].Headcount {
			t.Errorf("%s: stacked sum %d != headcount %d", p.Month, sum, headcount[i].Headcount)
		}
	}
	if v := got.Points[0].Values["OUTRAS"]; v != 3 {
		t.Errorf("OUTRAS in first month want=3 got=%d", v)
	}
}

func TestStackedHeadcount_ByRoleFewGroups(t *testing.T) {
	t.Parallel()

	e := newTestEngine()
	emps := []model.Employee{
		emp("a", "", model.RoleEfetivo, "2023-01-05", ""),
		emp("b", "", model.RoleOutros, "2023-01-05", ""),
		emp("c", "", model.RoleEstagiario, "2023-02-05", ""),
	}

	got := e.StackedHeadcount(emps, day("2030-01-01"), ByRole)
	// a literal OUTROS group merges into the other bucket
	wantKeys := []string{"EFETIVO", "ESTAGIÁRIO", "OUTROS"}
	if len(got.Keys) != len(wantKeys) {
		t.Fatalf("want keys %v got %v", wantKeys, got.Keys)
	}
	for i := range wantKeys {
		if got.Keys[i] != wantKeys[i] {
			t.Fatalf("want keys %v got %v", wantKeys, got.Keys)
		}
	}
	jan := got.Points[0].Values
	if jan["EFETIVO"] != 1 || jan["ESTAGIÁRIO"] != 0 || jan["OUTROS"] != 1 {
		t.Fatalf("unexpected january values: %v", jan)
	}
}

func TestTerminationBeforeAdmission_NeverCounted(t *testing.T) {
	t.Parallel()

	e := newTestEngine()
	emps := []model.Employee{emp("inv", "X", model.RoleEfetivo, "2023-05-10", "2023-02-01")}
	now := day("2030-01-01")

	hc := e.MonthlyHeadcount(emps, now)
	if len(hc) != 4 || hc[0].Month != "2023-02" || hc[3].Month != "2023-05" {
		t.Fatalf("unexpected axis: %+v", hc)
	}
	for _, p := range hc {
		if p.Headcount != 0 {
			t.Fatalf("%s: want=0 got=%d", p.Month, p.Headcount)
		}
	}

	stacked := e.StackedHeadcount(emps, now, ByLocation)
	if len(stacked.Points) != 4 {
		t.Fatalf("want 4 points got %d", len(stacked.Points))
	}
	for _, p := range stacked.Points {
		for k, n := range p.Values {
			if n != 0 {
				t.Fatalf("%s %s: want=0 got=%d", p.Month, k, n)
			}
		}
	}

	if got := e.KPIs(emps); got != (model.KPIs{Total: 1, Active: 0, Terminated: 1}) {
		t.Fatalf("kpis: %+v", got)
	}

	c := e.CohortRetention(emps, day("2023-06-01"), CohortOptions{})
	if c.Total.Hired != 1 || c.Total.Left != 1 || c.Total.Stayed != 0 || c.Total.ExitPct != 100 {
		t.Fatalf("cohort total: %+v", c.Total)
	}
}
