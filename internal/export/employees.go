package export

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/victorcosta213/DashBoard-Apresentacao/internal/model"
)

const (
	employeesSheet = "Servidores"
	displayDate    = "02/01/2006"

	StatusActive     = "ATIVO"
	StatusTerminated = "DESLIGADO"
)

// EmployeeHeaders column titles of the detail table
var EmployeeHeaders = []string{"Nome", "Lotação", "Cargo", "Admissão", "Demissão", "Status"}

// EmployeesXLSX writes the detail table, one row per employee in input order
func EmployeesXLSX(emps []model.Employee) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", employeesSheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	header := toRow(EmployeeHeaders)
	if err := f.SetSheetRow(employeesSheet, "A1", &header); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	for i, emp := range emps {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := toRow(EmployeeRow(emp))
		if err := f.SetSheetRow(employeesSheet, cell, &row); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	f.SetRowStyle(employeesSheet, 1, 1, headerStyle)
	f.SetColWidth(employeesSheet, "A", "A", 35)
	f.SetColWidth(employeesSheet, "B", "C", 25)
	f.SetColWidth(employeesSheet, "D", "F", 14)

	return f, nil
}

// EmployeeRow display values of one detail-table row
func EmployeeRow(emp model.Employee) []string {
	status := StatusActive
	if !emp.Active() {
		status = StatusTerminated
	}
	return []string{
		orDash(emp.Name),
		orDash(emp.Location),
		emp.Role.String(),
		formatDate(emp.Admission),
		formatDate(emp.Termination),
		status,
	}
}

func formatDate(t *time.Time) string {
	if t == nil {
		return model.EmptyKey
	}
	return t.Format(displayDate)
}

func orDash(s string) string {
	if s == "" {
		return model.EmptyKey
	}
	return s
}
