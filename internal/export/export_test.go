package export

import (
	"testing"
	"time"

	"github.com/victorcosta213/DashBoard-Apresentacao/internal/engine"
	"github.com/victorcosta213/DashBoard-Apresentacao/internal/model"
)

func sampleCohort() model.Cohort {
	return model.Cohort{
		Cutoff: "2024-12-31",
		Total:  engine.CohortFromCounts("", 3, 1),
		Rows: []model.CohortRow{
			engine.CohortFromCounts("SEDE; ANEXO", 3, 1),
			engine.CohortFromCounts("POLO", 0, 0),
		},
	}
}

func TestCohortCSV(t *testing.T) {
	t.Parallel()

	want := "\ufeffLOTACAO;CONTRATADOS;PERMANECERAM;DEMITIDOS;RETENCAO_%;SAIDA_%\n" +
		"\"SEDE; ANEXO\";3;2;1;67;33\n" +
		"POLO;0;0;0;0;0\n"

	if got := string(CohortCSV(sampleCohort())); got != want {
		t.Fatalf("CohortCSV mismatch\nwant=%q\ngot =%q", want, got)
	}
}

func TestQuoteCSV(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"SEDE":        "SEDE",
		`A "B"`:       `"A ""B"""`,
		"A,B":         `"A,B"`,
		"linha\nnova": "\"linha\nnova\"",
	}
	for in, want := range cases {
		if got := quoteCSV(in); got != want {
			t.Fatalf("quoteCSV(%q) want=%q got=%q", in, want, got)
		}
	}
}

func TestWholePercent(t *testing.T) {
	t.Parallel()

	if got := wholePercent(1, 8); got != 13 {
		t.Fatalf("1/8 want=13 got=%d", got)
	}
	if got := wholePercent(5, 0); got != 0 {
		t.Fatalf("x/0 want=0 got=%d", got)
	}
}

func TestCohortXLSX(t *testing.T) {
	t.Parallel()

	f, err := CohortXLSX(sampleCohort())
	if err != nil {
		t.Fatalf("CohortXLSX: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(cohortSheet)
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("want 4 rows (header, 2 data, total) got %d", len(rows))
	}
	if rows[0][0] != "LOTACAO" || rows[1][0] != "SEDE; ANEXO" {
		t.Fatalf("unexpected rows: %v", rows)
	}
	total := rows[3]
	if total[0] != totalLabel || total[1] != "3" || total[2] != "2" || total[3] != "1" || total[4] != "66.7" {
		t.Fatalf("total row: %v", total)
	}
}

func TestEmployeeRow(t *testing.T) {
	t.Parallel()

	adm := time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC)
	term := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)

	active := EmployeeRow(model.NewEmployee("Ana", "", "", model.RoleEfetivo, &adm, nil))
	want := []string{"Ana", model.EmptyKey, "EFETIVO", "15/01/2023", model.EmptyKey, StatusActive}
	for i := range want {
		if active[i] != want[i] {
			t.Fatalf("col %d want=%q got=%q", i, want[i], active[i])
		}
	}

	left := EmployeeRow(model.NewEmployee("Bia", "SEDE", "", model.RoleOutros, nil, &term))
	if left[3] != model.EmptyKey || left[4] != "02/03/2024" || left[5] != StatusTerminated {
		t.Fatalf("terminated row: %v", left)
	}
}

func TestEmployeesXLSX(t *testing.T) {
	t.Parallel()

	adm := time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC)
	f, err := EmployeesXLSX([]model.Employee{
		model.NewEmployee("Ana", "SEDE", "", model.RoleEfetivo, &adm, nil),
	})
	if err != nil {
		t.Fatalf("EmployeesXLSX: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(employeesSheet)
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) != 2 || rows[0][1] != "Lotação" || rows[1][3] != "15/01/2023" || rows[1][5] != StatusActive {
		t.Fatalf("unexpected rows: %v", rows)
	}
}
