package parser

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ParseCSV reads a delimited roster export into raw rows.
// The separator (; , or tab) is detected from the header line. Rows with a wrong
// column count are padded or truncated with a warning; blank rows are skipped.
func ParseCSV(data []byte) (*Result, error) {
	decoded, encoding, err := DetectAndDecode(data)
	if err != nil {
		return nil, fmt.Errorf("encoding detection failed: %w", err)
	}
	if len(bytes.TrimSpace(decoded)) == 0 {
		return nil, ErrEmptyFile
	}

	reader := csv.NewReader(bytes.NewReader(decoded))
	reader.Comma = detectSeparator(decoded)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoHeader
		}
		return nil, fmt.Errorf("failed to read header row: %w", err)
	}
	headers := CanonicalHeaders(header)
	if blank(headers) {
		return nil, ErrNoHeader
	}

	result := &Result{
		Format:   FormatCSV,
		Encoding: encoding,
		Headers:  headers,
		Warnings: []Warning{},
	}

	for {
		cells, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			line := 0
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				line = perr.Line
			}
			result.Warnings = append(result.Warnings, Warning{
				Row:     line,
				Message: fmt.Sprintf("parse error: %v", err),
			})
			continue
		}
		if blank(cells) {
			continue
		}
		line, _ := reader.FieldPos(0)

		if n := len(cells); n != len(headers) {
			action := "padding with empty values"
			if n > len(headers) {
				action = "truncating extra columns"
			}
			result.Warnings = append(result.Warnings, Warning{
				Row:     line,
				Message: fmt.Sprintf("row has %d columns, expected %d; %s", n, len(headers), action),
			})
		}

		result.Rows = append(result.Rows, buildRow(headers, cells))
	}

	return result, nil
}

// detectSeparator picks the most frequent candidate separator on the first line
func detectSeparator(data []byte) rune {
	first := string(data)
	if i := strings.IndexAny(first, "\r\n"); i >= 0 {
		first = first[:i]
	}

	best, bestCount := ',', 0
	for _, sep := range []rune{';', ',', '\t'} {
		if n := strings.Count(first, string(sep)); n > bestCount {
			best, bestCount = sep, n
		}
	}
	return best
}
