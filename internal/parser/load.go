package parser

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// DetectFormat infers the file format from its name, then from its leading bytes
func DetectFormat(name string, head []byte) (Format, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv", ".txt":
		return FormatCSV, nil
	case ".xlsx", ".xlsm":
		return FormatXLSX, nil
	case "":
		// zip container
		if bytes.HasPrefix(head, []byte("PK\x03\x04")) {
			return FormatXLSX, nil
		}
		return FormatCSV, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(name))
}

// Load reads a roster file of either supported format
func Load(name string, r io.Reader, opts Options) (*Result, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	if len(data) == 0 {
		return nil, ErrEmptyFile
	}

	format, err := DetectFormat(name, data)
	if err != nil {
		return nil, err
	}

	switch format {
	case FormatXLSX:
		return ParseXLSX(bytes.NewReader(data), opts)
	default:
		return ParseCSV(data)
	}
}
