package parser

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/victorcosta213/DashBoard-Apresentacao/internal/model"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// headerAliases folded header -> canonical column.
// LOTACAO/FUNCAO are resolved separately because both spellings are kept.
var headerAliases = map[string]string{
	"NOME":             model.ColumnName,
	"NOMECOMPLETO":     model.ColumnName,
	"CARGO":            model.ColumnRole,
	"VINCULO":          model.ColumnRole,
	"DATAADMISSAO":     model.ColumnAdmission,
	"DATADEADMISSAO":   model.ColumnAdmission,
	"ADMISSAO":         model.ColumnAdmission,
	"DATADEMISSAO":     model.ColumnTermination,
	"DATADEDEMISSAO":   model.ColumnTermination,
	"DEMISSAO":         model.ColumnTermination,
	"DATADESLIGAMENTO": model.ColumnTermination,
}

// NormalizeColumnName trims a header cell, drops BOM and line breaks, collapses spaces
func NormalizeColumnName(name string) string {
	name = strings.TrimPrefix(name, "\ufeff")
	name = strings.ReplaceAll(name, "\r", " ")
	name = strings.ReplaceAll(name, "\n", " ")
	name = whitespaceRe.ReplaceAllString(name, " ")
	return strings.TrimSpace(name)
}

// FoldHeader upper-cases, strips diacritics and removes spaces, underscores and dots,
// so "Data de Admissão" and "DATA_DE_ADMISSAO" compare equal
func FoldHeader(name string) string {
	s := strings.ToUpper(StripDiacritics(NormalizeColumnName(name)))
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || r == '_' || r == '.' || r == '-' {
			return -1
		}
		return r
	}, s)
}

// StripDiacritics removes combining marks (NFD decomposition, Mn removal)
func StripDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// CanonicalHeader maps a header cell to the roster vocabulary.
// Accented and plain spellings of LOTAÇÃO/FUNÇÃO stay distinct; unknown headers are
// returned normalised but otherwise unchanged.
func CanonicalHeader(name string) string {
	clean := NormalizeColumnName(name)
	folded := FoldHeader(clean)

	accented := StripDiacritics(clean) != clean
	switch folded {
	case "LOTACAO":
		if accented {
			return model.ColumnLocation
		}
		return model.ColumnLocationPlain
	case "FUNCAO":
		if accented {
			return model.ColumnFunction
		}
		return model.ColumnFunctionPlain
	}

	if canonical, ok := headerAliases[folded]; ok {
		return canonical
	}
	return clean
}

// CanonicalHeaders canonicalises a header row
func CanonicalHeaders(cells []string) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = CanonicalHeader(c)
	}
	return out
}

// knownColumns counts header cells belonging to the roster vocabulary
func knownColumns(headers []string) int {
	known := make(map[string]bool, len(model.Columns))
	for _, c := range model.Columns {
		known[c] = true
	}
	n := 0
	for _, h := range headers {
		if known[h] {
			n++
		}
	}
	return n
}

// isDateColumn reports whether the canonical header holds dates
func isDateColumn(header string) bool {
	return header == model.ColumnAdmission || header == model.ColumnTermination
}

// buildRow zips headers and cells; a repeated header keeps its first non-empty value
func buildRow(headers, cells []string) model.RawRow {
	row := make(model.RawRow, len(headers))
	for i, h := range headers {
		if h == "" {
			continue
		}
		v := ""
		if i < len(cells) {
			v = cells[i]
		}
		if prev, ok := row[h]; ok && prev != "" {
			continue
		}
		row[h] = v
	}
	return row
}

// blank reports whether every cell is empty or whitespace
func blank(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
