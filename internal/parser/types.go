package parser

import (
	"errors"

	"github.com/victorcosta213/DashBoard-Apresentacao/internal/model"
)

// Format source file format
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

var (
	ErrEmptyFile         = errors.New("empty file")
	ErrNoHeader          = errors.New("no header row found")
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrSheetNotFound     = errors.New("sheet not found")
)

// Warning non-fatal issue found while reading a row
type Warning struct {
	Row     int    `json:"row"` // 1-based line/row number in the source, header = 1
	Message string `json:"message"`
}

// Result rows read from one roster file
type Result struct {
	Format   Format         `json:"format"`
	Encoding string         `json:"encoding,omitempty"` // CSV only
	Sheet    string         `json:"sheet,omitempty"`    // XLSX only
	Headers  []string       `json:"headers"`            // canonicalised header cells
	Rows     []model.RawRow `json:"-"`
	Warnings []Warning      `json:"warnings"`
}

// Options loader options
type Options struct {
	Sheet string // XLSX sheet name; empty = first sheet with a roster header
}
