package dataset

import (
	"fmt"
	"strconv"
	"strings"

	"attriview/pkg/parser"
	"attriview/pkg/schema"
)

// Dataset is an ordered collection of records sharing a uniform column set.
// It is mutated only by the preparation steps (PruneConstants, RecodeOrdinals);
// once prepared it is handed to reporting and only read.
type Dataset struct {
	columns []string
	records []map[string]string
}

// FromTable builds a Dataset from a parsed table.
func FromTable(table *parser.Table) *Dataset {
	return &Dataset{
		columns: append([]string(nil), table.Columns...),
		records: table.Records,
	}
}

// Len returns the number of records.
func (d *Dataset) Len() int {
	return len(d.records)
}

// Columns returns the column names in input order.
func (d *Dataset) Columns() []string {
	return append([]string(nil), d.columns...)
}

// HasColumn reports whether the named column exists.
func (d *Dataset) HasColumn(name string) bool {
	for _, c := range d.columns {
		if c == name {
			return true
		}
	}
	return false
}

// Column returns all values of the named column in record order.
func (d *Dataset) Column(name string) ([]string, bool) {
	if !d.HasColumn(name) {
		return nil, false
	}
	values := make([]string, len(d.records))
	for i, rec := range d.records {
		values[i] = rec[name]
	}
	return values, true
}

// IntColumn returns the named column parsed as float64 values, for the
// numeric feature distributions.
func (d *Dataset) IntColumn(name string) ([]float64, error) {
	raw, ok := d.Column(name)
	if !ok {
		return nil, fmt.Errorf("%w: no column %q", schema.ErrSchemaMismatch, name)
	}
	values := make([]float64, len(raw))
	for i, s := range raw {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("column %s row %d: %q is not numeric", name, i+1, s)
		}
		values[i] = v
	}
	return values, nil
}

// Record returns the i-th record. Callers must treat the map as read-only.
func (d *Dataset) Record(i int) map[string]string {
	return d.records[i]
}

// DistinctValues returns the distinct values of a column in first-appearance
// order. Returns nil for an unknown column.
func (d *Dataset) DistinctValues(name string) []string {
	if !d.HasColumn(name) {
		return nil
	}
	seen := make(map[string]bool)
	var distinct []string
	for _, rec := range d.records {
		v := rec[name]
		if !seen[v] {
			seen[v] = true
			distinct = append(distinct, v)
		}
	}
	return distinct
}

// PruneConstants removes each candidate column that carries exactly one
// distinct value across all records, and returns the names dropped.
// Rerunning is a no-op: pruned candidates no longer exist.
func (d *Dataset) PruneConstants(candidates []string) []string {
	var dropped []string
	for _, col := range candidates {
		if !d.HasColumn(col) {
			continue
		}
		if len(d.DistinctValues(col)) != 1 {
			continue
		}
		d.dropColumn(col)
		dropped = append(dropped, col)
	}
	return dropped
}

// RecodeOrdinals replaces integer codes with labels in every column that has
// a mapping table and is present in the dataset. A code outside its table's
// domain aborts with ErrUnmappedCode; no partial recode is left behind in the
// failing column's earlier rows only — the error reports column and row so
// the input can be fixed, and the caller discards the dataset.
func (d *Dataset) RecodeOrdinals(mappings map[string]schema.OrdinalMapping) error {
	// Column order does not affect the result: each recode touches one field.
	for _, col := range d.columns {
		mapping, ok := mappings[col]
		if !ok {
			continue
		}
		for i, rec := range d.records {
			label, err := mapping.Recode(rec[col])
			if err != nil {
				return fmt.Errorf("column %s, row %d: %w", col, i+1, err)
			}
			rec[col] = label
		}
	}
	return nil
}

// NullCounts returns the number of empty cells per column.
func (d *Dataset) NullCounts() map[string]int {
	counts := make(map[string]int, len(d.columns))
	for _, col := range d.columns {
		counts[col] = 0
	}
	for _, rec := range d.records {
		for _, col := range d.columns {
			if strings.TrimSpace(rec[col]) == "" {
				counts[col]++
			}
		}
	}
	return counts
}

// DuplicateRowCount returns the number of records that are exact duplicates
// of an earlier record across all columns.
func (d *Dataset) DuplicateRowCount() int {
	seen := make(map[string]bool, len(d.records))
	duplicates := 0
	for _, rec := range d.records {
		var key strings.Builder
		for _, col := range d.columns {
			key.WriteString(rec[col])
			key.WriteByte('\x1f') // unit separator, cannot appear in CSV cells
		}
		k := key.String()
		if seen[k] {
			duplicates++
		} else {
			seen[k] = true
		}
	}
	return duplicates
}

// Head returns the first n records as rows in column order.
func (d *Dataset) Head(n int) [][]string {
	if n > len(d.records) {
		n = len(d.records)
	}
	rows := make([][]string, n)
	for i := 0; i < n; i++ {
		row := make([]string, len(d.columns))
		for j, col := range d.columns {
			row[j] = d.records[i][col]
		}
		rows[i] = row
	}
	return rows
}

// dropColumn removes the column from the header and from every record.
func (d *Dataset) dropColumn(name string) {
	cols := d.columns[:0]
	for _, c := range d.columns {
		if c != name {
			cols = append(cols, c)
		}
	}
	d.columns = cols
	for _, rec := range d.records {
		delete(rec, name)
	}
}
