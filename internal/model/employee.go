package model

import (
	"encoding/json"
	"time"
)

// Column names of the roster header vocabulary
const (
	ColumnName          = "NOME"
	ColumnRole          = "CARGO"
	ColumnLocation      = "LOTAÇÃO"
	ColumnLocationPlain = "LOTACAO"
	ColumnFunction      = "FUNÇÃO"
	ColumnFunctionPlain = "FUNCAO"
	ColumnAdmission     = "DATA ADMISSÃO"
	ColumnTermination   = "DATA DEMISSÃO"
)

// Columns canonical header vocabulary accepted on input
var Columns = []string{
	ColumnName,
	ColumnRole,
	ColumnLocation,
	ColumnLocationPlain,
	ColumnFunction,
	ColumnFunctionPlain,
	ColumnAdmission,
	ColumnTermination,
}

// EmptyKey placeholder used for an empty group key in aggregates
const EmptyKey = "—"

// DateLayout wire format for calendar dates
const DateLayout = "2006-01-02"

// MonthLayout wire format for month keys
const MonthLayout = "2006-01"

// RawRow one roster line as produced by the loader (column -> value)
type RawRow map[string]string

// Employee canonical roster record.
// Admission and Termination are nil when absent; Active is derived from Termination.
type Employee struct {
	Name        string
	Location    string // may be empty; aggregates substitute EmptyKey
	Function    string
	Role        Role
	Admission   *time.Time
	Termination *time.Time
}

// NewEmployee builds an Employee, copying the date values so the record owns them
func NewEmployee(name, location, function string, role Role, admission, termination *time.Time) Employee {
	return Employee{
		Name:        name,
		Location:    location,
		Function:    function,
		Role:        role,
		Admission:   copyTime(admission),
		Termination: copyTime(termination),
	}
}

// Active reports whether the employee has no termination date
func (e Employee) Active() bool {
	return e.Termination == nil
}

// Equal reports field-wise equality, comparing dates by instant
func (e Employee) Equal(o Employee) bool {
	return e.Name == o.Name &&
		e.Location == o.Location &&
		e.Function == o.Function &&
		e.Role == o.Role &&
		sameTime(e.Admission, o.Admission) &&
		sameTime(e.Termination, o.Termination)
}

type employeeJSON struct {
	Name        string  `json:"name"`
	Location    string  `json:"location"`
	Function    string  `json:"function"`
	Role        Role    `json:"role"`
	Admission   *string `json:"admissionDate"`
	Termination *string `json:"terminationDate"`
	Active      bool    `json:"active"`
}

// MarshalJSON renders dates as YYYY-MM-DD (null when absent) and includes the derived status
func (e Employee) MarshalJSON() ([]byte, error) {
	return json.Marshal(employeeJSON{
		Name:        e.Name,
		Location:    e.Location,
		Function:    e.Function,
		Role:        e.Role,
		Admission:   formatDate(e.Admission),
		Termination: formatDate(e.Termination),
		Active:      e.Active(),
	})
}

// MonthKey formats t as YYYY-MM
func MonthKey(t time.Time) string {
	return t.Format(MonthLayout)
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(DateLayout)
	return &s
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

func sameTime(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}
