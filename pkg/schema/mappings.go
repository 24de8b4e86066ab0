package schema

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnmappedCode is returned when an ordinal column carries a value outside
// its mapping's domain. The mapping is total over valid codes; anything else
// is a data-quality error, not something to paper over with a sentinel label.
var ErrUnmappedCode = errors.New("unmapped ordinal code")

// OrdinalMapping is a fixed integer-code → label table for one column.
type OrdinalMapping map[int]string

// OrdinalMappings holds the seven fixed recoding tables, keyed by column name.
// These are configuration constants of the dataset, not learned values; a YAML
// override file may replace individual tables (see LoadOverrides).
var OrdinalMappings = map[string]OrdinalMapping{
	ColEducation: {
		1: "Below College",
		2: "College",
		3: "Bachelor",
		4: "Master",
		5: "Doctor",
	},
	ColEnvironmentSatisfaction: {
		1: "Low",
		2: "Medium",
		3: "High",
		4: "Very High",
	},
	ColJobInvolvement: {
		1: "Low",
		2: "Medium",
		3: "High",
		4: "Very High",
	},
	ColJobSatisfaction: {
		1: "Low",
		2: "Medium",
		3: "High",
		4: "Very High",
	},
	ColPerformanceRating: {
		1: "Low",
		2: "Good",
		3: "Excellent",
		4: "Outstanding",
	},
	ColRelationshipSatisfaction: {
		1: "Low",
		2: "Medium",
		3: "High",
		4: "Very High",
	},
	ColWorkLifeBalance: {
		1: "Bad",
		2: "Good",
		3: "Better",
		4: "Best",
	},
}

// Recode maps one raw cell value through the table.
// Non-integer values and codes outside the table both yield ErrUnmappedCode.
func (m OrdinalMapping) Recode(raw string) (string, error) {
	code, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return "", fmt.Errorf("%w: %q is not an integer code", ErrUnmappedCode, raw)
	}
	label, ok := m[code]
	if !ok {
		return "", fmt.Errorf("%w: code %d", ErrUnmappedCode, code)
	}
	return label, nil
}

// Levels returns the labels in ascending code order. Chart axes and crosstab
// rows use this ordering so "Low" sorts before "Very High".
func (m OrdinalMapping) Levels() []string {
	codes := make([]int, 0, len(m))
	for code := range m {
		codes = append(codes, code)
	}
	sort.Ints(codes)
	levels := make([]string, len(codes))
	for i, code := range codes {
		levels[i] = m[code]
	}
	return levels
}

// LoadOverrides reads a YAML file of column → {code: label} tables and returns
// the default mappings with the listed columns replaced. Columns absent from
// the file keep their defaults; a column name outside the seven ordinal
// columns is an error.
func LoadOverrides(path string) (map[string]OrdinalMapping, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading mapping overrides: %w", err)
	}

	var overrides map[string]map[int]string
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("parsing mapping overrides: %w", err)
	}

	merged := make(map[string]OrdinalMapping, len(OrdinalMappings))
	for col, m := range OrdinalMappings {
		merged[col] = m
	}
	for col, table := range overrides {
		if _, ok := merged[col]; !ok {
			return nil, fmt.Errorf("mapping override for unknown ordinal column %q", col)
		}
		if len(table) == 0 {
			return nil, fmt.Errorf("mapping override for %q is empty", col)
		}
		merged[col] = OrdinalMapping(table)
	}
	return merged, nil
}
