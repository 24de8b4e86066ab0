package report

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"attriview/pkg/dataset"
	"attriview/pkg/schema"
)

// Export is the machine-readable form of a full analysis run.
type Export struct {
	GeneratedAt time.Time         `json:"generatedAt"`
	Summary     *Summary          `json:"summary"`
	Findings    []Finding         `json:"findings"`
	Employees   []schema.Employee `json:"employees"`
}

// BuildExport assembles the export payload, including the typed view of
// every cleaned record.
func BuildExport(ds *dataset.Dataset, summary *Summary, findings []Finding) (*Export, error) {
	employees := make([]schema.Employee, 0, ds.Len())
	for i := 0; i < ds.Len(); i++ {
		emp, err := schema.EmployeeFromRecord(ds.Record(i))
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i+1, err)
		}
		employees = append(employees, emp)
	}
	return &Export{
		GeneratedAt: time.Now().UTC(),
		Summary:     summary,
		Findings:    findings,
		Employees:   employees,
	}, nil
}

// WriteJSON writes the export payload to path as indented JSON.
func WriteJSON(path string, export *Export) error {
	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding export: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing export: %w", err)
	}
	return nil
}
