package export

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/victorcosta213/DashBoard-Apresentacao/internal/model"
)

const (
	cohortSheet = "Coorte"
	totalLabel  = "TOTAL"
	bom         = "\ufeff"
)

// CohortHeaders column titles of the cohort table
var CohortHeaders = []string{"LOTACAO", "CONTRATADOS", "PERMANECERAM", "DEMITIDOS", "RETENCAO_%", "SAIDA_%"}

// CohortCSV renders the cohort rows as ;-separated UTF-8 with a BOM.
// Percentages are whole numbers.
func CohortCSV(c model.Cohort) []byte {
	var buf bytes.Buffer
	buf.WriteString(bom)
	writeCSVLine(&buf, CohortHeaders)

	for _, r := range c.Rows {
		writeCSVLine(&buf, []string{
			r.Location,
			strconv.Itoa(r.Hired),
			strconv.Itoa(r.Stayed),
			strconv.Itoa(r.Left),
			strconv.Itoa(wholePercent(r.Stayed, r.Hired)),
			strconv.Itoa(wholePercent(r.Left, r.Hired)),
		})
	}
	return buf.Bytes()
}

func writeCSVLine(buf *bytes.Buffer, cells []string) {
	for i, c := range cells {
		if i > 0 {
			buf.WriteByte(';')
		}
		buf.WriteString(quoteCSV(c))
	}
	buf.WriteByte('\n')
}

// quoteCSV wraps a value in quotes when it holds a quote, separator or line break
func quoteCSV(v string) string {
	if !strings.ContainsAny(v, "\";,\r\n") {
		return v
	}
	return `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
}

// wholePercent part/whole*100 rounded half up, 0 when whole is 0
func wholePercent(part, whole int) int {
	if whole == 0 {
		return 0
	}
	return int(math.Floor(float64(part)*100/float64(whole) + 0.5))
}

// CohortXLSX builds a workbook with the cohort table and a bold total row
func CohortXLSX(c model.Cohort) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", cohortSheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	header := toRow(CohortHeaders)
	if err := f.SetSheetRow(cohortSheet, "A1", &header); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	for i, r := range c.Rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := cohortRow(r.Location, r)
		if err := f.SetSheetRow(cohortSheet, cell, &row); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	totalRow := len(c.Rows) + 2
	cell, _ := excelize.CoordinatesToCellName(1, totalRow)
	row := cohortRow(totalLabel, c.Total)
	if err := f.SetSheetRow(cohortSheet, cell, &row); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write total row: %w", err)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#E2E8F0"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	f.SetRowStyle(cohortSheet, 1, 1, headerStyle)

	totalStyle, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetRowStyle(cohortSheet, totalRow, totalRow, totalStyle)

	f.SetColWidth(cohortSheet, "A", "A", 30)
	f.SetColWidth(cohortSheet, "B", "F", 15)

	return f, nil
}

func cohortRow(label string, r model.CohortRow) []any {
	return []any{label, r.Hired, r.Stayed, r.Left, r.RetentionPct, r.ExitPct}
}

func toRow(cells []string) []any {
	out := make([]any, len(cells))
	for i, c := range cells {
		out[i] = c
	}
	return out
}
