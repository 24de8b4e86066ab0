package parser

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrDataUnavailable is returned when the input file is missing, unreadable,
// or not a well-formed delimited file. It is the one failure mode that must
// abort the whole run before any analysis output is produced.
var ErrDataUnavailable = errors.New("data unavailable")

// ParseWarning represents a non-fatal issue encountered during CSV parsing.
type ParseWarning struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

// Table holds the parsed input: column names in file order plus one
// column-name → value map per data row, alongside any warnings.
type Table struct {
	Columns  []string            `json:"columns"`
	Records  []map[string]string `json:"records"`
	Warnings []ParseWarning      `json:"warnings"`
}

// ParseFile reads and parses the delimited file at path.
// Any failure to open, decode, or parse it is wrapped as ErrDataUnavailable.
func ParseFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrDataUnavailable, path, err)
	}
	table, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", ErrDataUnavailable, path, err)
	}
	return table, nil
}

// Parse parses CSV bytes into a Table. It handles mismatched column counts
// (pad/truncate with a warning), skips unparseable rows with a warning, and
// fails on an empty file or a file with no data rows.
func Parse(data []byte) (*Table, error) {
	// Detect encoding and convert to UTF-8 before tokenizing.
	decoded, _, err := DetectAndDecode(data)
	if err != nil {
		return nil, fmt.Errorf("encoding detection failed: %w", err)
	}

	reader := csv.NewReader(bytes.NewReader(decoded))
	// Variable field counts are handled below, not by the reader.
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	headers, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty file: no header row found")
		}
		return nil, fmt.Errorf("failed to read header row: %w", err)
	}
	for i, h := range headers {
		headers[i] = strings.TrimSpace(h)
	}

	headerCount := len(headers)
	table := &Table{Columns: headers}
	rowNum := 1 // 1-indexed, header is row 1

	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		rowNum++

		if err != nil {
			table.Warnings = append(table.Warnings, ParseWarning{
				Row:     rowNum,
				Message: fmt.Sprintf("parse error: %v", err),
			})
			continue
		}

		if len(row) != headerCount {
			if len(row) < headerCount {
				table.Warnings = append(table.Warnings, ParseWarning{
					Row:     rowNum,
					Message: fmt.Sprintf("row has %d columns, expected %d; padding with empty values", len(row), headerCount),
				})
				padded := make([]string, headerCount)
				copy(padded, row)
				row = padded
			} else {
				table.Warnings = append(table.Warnings, ParseWarning{
					Row:     rowNum,
					Message: fmt.Sprintf("row has %d columns, expected %d; truncating extra columns", len(row), headerCount),
				})
				row = row[:headerCount]
			}
		}

		record := make(map[string]string, headerCount)
		for i, h := range headers {
			record[h] = strings.TrimSpace(row[i])
		}
		table.Records = append(table.Records, record)
	}

	if len(table.Records) == 0 {
		return nil, fmt.Errorf("file contains no data rows")
	}

	return table, nil
}
