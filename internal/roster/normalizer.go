package roster

import (
	"strings"
	"time"

	"github.com/victorcosta213/DashBoard-Apresentacao/internal/model"
)

// Normalizer turns raw roster rows into canonical employees
type Normalizer struct {
	loc *time.Location
}

// NewNormalizer creates a normalizer that interprets dates in loc (time.Local when nil)
func NewNormalizer(loc *time.Location) *Normalizer {
	if loc == nil {
		loc = time.Local
	}
	return &Normalizer{loc: loc}
}

// Location returns the time zone dates are read in
func (n *Normalizer) Location() *time.Location {
	return n.loc
}

// Normalize maps one row to an Employee. Malformed fields degrade to empty or absent values.
func (n *Normalizer) Normalize(row model.RawRow) model.Employee {
	return model.NewEmployee(
		strings.TrimSpace(row[model.ColumnName]),
		firstNonEmpty(row, model.ColumnLocation, model.ColumnLocationPlain),
		firstNonEmpty(row, model.ColumnFunction, model.ColumnFunctionPlain),
		model.ParseRole(row[model.ColumnRole]),
		ParseDate(row[model.ColumnAdmission], n.loc),
		ParseDate(row[model.ColumnTermination], n.loc),
	)
}

// NormalizeAll normalizes rows preserving their order
func (n *Normalizer) NormalizeAll(rows []model.RawRow) []model.Employee {
	out := make([]model.Employee, 0, len(rows))
	for _, row := range rows {
		out = append(out, n.Normalize(row))
	}
	return out
}

// Normalize maps one row using the local time zone
func Normalize(row model.RawRow) model.Employee {
	return NewNormalizer(nil).Normalize(row)
}

// NormalizeAll maps rows using the local time zone
func NormalizeAll(rows []model.RawRow) []model.Employee {
	return NewNormalizer(nil).NormalizeAll(rows)
}

// firstNonEmpty returns the first non-empty value among keys, trimmed
func firstNonEmpty(row model.RawRow, keys ...string) string {
	for _, k := range keys {
		if v := row[k]; v != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
