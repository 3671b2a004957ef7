package parser

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/victorcosta213/DashBoard-Apresentacao/internal/model"
)

// Excel serial numbers accepted as dates (1927-05-18 .. 2173-10-14)
const (
	minSerialDate = 10000
	maxSerialDate = 100000
)

// ParseXLSX reads one worksheet of a roster workbook into raw rows.
// Without opts.Sheet the first sheet whose header carries at least two roster
// columns is used, falling back to the first sheet.
func ParseXLSX(r io.Reader, opts Options) (*Result, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptyFile
	}

	sheet, rows, err := pickSheet(f, sheets, opts.Sheet)
	if err != nil {
		return nil, err
	}

	start := firstNonBlank(rows)
	if start < 0 {
		return nil, ErrNoHeader
	}
	headers := CanonicalHeaders(rows[start])

	result := &Result{
		Format:   FormatXLSX,
		Sheet:    sheet,
		Headers:  headers,
		Warnings: []Warning{},
	}

	for i := start + 1; i < len(rows); i++ {
		cells := rows[i]
		if blank(cells) {
			continue
		}
		if len(cells) > len(headers) {
			result.Warnings = append(result.Warnings, Warning{
				Row:     i + 1,
				Message: fmt.Sprintf("row has %d columns, expected %d; truncating extra columns", len(cells), len(headers)),
			})
		}

		row := buildRow(headers, cells)
		for h, v := range row {
			if isDateColumn(h) {
				row[h] = serialToDate(v)
			}
		}
		result.Rows = append(result.Rows, row)
	}

	return result, nil
}

// pickSheet resolves the worksheet to read and returns its raw rows
func pickSheet(f *excelize.File, sheets []string, want string) (string, [][]string, error) {
	if want != "" {
		for _, s := range sheets {
			if strings.EqualFold(s, want) {
				rows, err := readRows(f, s)
				return s, rows, err
			}
		}
		return "", nil, fmt.Errorf("%w: %s", ErrSheetNotFound, want)
	}

	var (
		firstName string
		firstRows [][]string
	)
	for i, s := range sheets {
		rows, err := readRows(f, s)
		if err != nil {
			return "", nil, err
		}
		if i == 0 {
			firstName, firstRows = s, rows
		}
		if start := firstNonBlank(rows); start >= 0 && knownColumns(CanonicalHeaders(rows[start])) >= 2 {
			return s, rows, nil
		}
	}
	return firstName, firstRows, nil
}

func readRows(f *excelize.File, sheet string) ([][]string, error) {
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	return rows, nil
}

func firstNonBlank(rows [][]string) int {
	for i, r := range rows {
		if !blank(r) {
			return i
		}
	}
	return -1
}

// serialToDate rewrites an Excel date serial as YYYY-MM-DD; other values pass through
func serialToDate(v string) string {
	s := strings.TrimSpace(v)
	serial, err := strconv.ParseFloat(s, 64)
	if err != nil || serial < minSerialDate || serial > maxSerialDate {
		return v
	}
	t, err := excelize.ExcelDateToTime(serial, false)
	if err != nil {
		return v
	}
	return t.Format(model.DateLayout)
}
