package report

import (
	"fmt"

	"attriview/pkg/dataset"
	"attriview/pkg/schema"
	"attriview/pkg/stats"
)

// AttritionCount holds the Yes/No split for one category of one feature.
type AttritionCount struct {
	Yes int `json:"yes"`
	No  int `json:"no"`
}

// Crosstab is the category × attrition breakdown for one categorical feature.
// Categories preserves the display order: ordinal label order for recoded
// columns, first-appearance order otherwise.
type Crosstab struct {
	Feature    string                    `json:"feature"`
	Categories []string                  `json:"categories"`
	Counts     map[string]AttritionCount `json:"counts"`
}

// Distribution summarizes one numeric series.
type Distribution struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Std    float64 `json:"std"`
	Min    float64 `json:"min"`
	Q1     float64 `json:"q1"`
	Q3     float64 `json:"q3"`
	Max    float64 `json:"max"`
}

// NumericSummary holds the distribution of one numeric feature overall and
// split by attrition outcome.
type NumericSummary struct {
	Feature string       `json:"feature"`
	Overall Distribution `json:"overall"`
	Stayed  Distribution `json:"stayed"`
	Left    Distribution `json:"left"`
}

// Summary is the full descriptive report over a cleaned Dataset.
type Summary struct {
	Rows             int              `json:"rows"`
	Columns          []string         `json:"columns"`
	NullCounts       map[string]int   `json:"nullCounts"`
	DuplicateRows    int              `json:"duplicateRows"`
	AttritionYes     int              `json:"attritionYes"`
	AttritionNo      int              `json:"attritionNo"`
	AttritionRate    float64          `json:"attritionRate"`
	Crosstabs        []Crosstab       `json:"crosstabs"`
	NumericSummaries []NumericSummary `json:"numericSummaries"`
}

// AttritionRate computes count(Attrition == "Yes") / len(D) * 100.
func AttritionRate(ds *dataset.Dataset) (float64, error) {
	values, ok := ds.Column(schema.ColAttrition)
	if !ok {
		return 0, fmt.Errorf("%w: no %s column", schema.ErrSchemaMismatch, schema.ColAttrition)
	}
	yes := 0
	for _, v := range values {
		if v == schema.AttritionYes {
			yes++
		}
	}
	return float64(yes) / float64(len(values)) * 100, nil
}

// BuildSummary computes the descriptive report. It only reads the Dataset.
func BuildSummary(ds *dataset.Dataset) (*Summary, error) {
	rate, err := AttritionRate(ds)
	if err != nil {
		return nil, err
	}

	attrition, _ := ds.Column(schema.ColAttrition)
	yes, no := 0, 0
	for _, v := range attrition {
		if v == schema.AttritionYes {
			yes++
		} else {
			no++
		}
	}

	summary := &Summary{
		Rows:          ds.Len(),
		Columns:       ds.Columns(),
		NullCounts:    ds.NullCounts(),
		DuplicateRows: ds.DuplicateRowCount(),
		AttritionYes:  yes,
		AttritionNo:   no,
		AttritionRate: rate,
	}

	for _, feature := range schema.CategoricalFeatures {
		ct, err := buildCrosstab(ds, feature, attrition)
		if err != nil {
			return nil, err
		}
		summary.Crosstabs = append(summary.Crosstabs, ct)
	}

	for _, feature := range schema.NumericFeatures {
		ns, err := buildNumericSummary(ds, feature, attrition)
		if err != nil {
			return nil, err
		}
		summary.NumericSummaries = append(summary.NumericSummaries, ns)
	}

	return summary, nil
}

// buildCrosstab counts category × attrition cells for one feature.
func buildCrosstab(ds *dataset.Dataset, feature string, attrition []string) (Crosstab, error) {
	values, ok := ds.Column(feature)
	if !ok {
		return Crosstab{}, fmt.Errorf("%w: no column %q", schema.ErrSchemaMismatch, feature)
	}

	counts := make(map[string]AttritionCount)
	for i, v := range values {
		c := counts[v]
		if attrition[i] == schema.AttritionYes {
			c.Yes++
		} else {
			c.No++
		}
		counts[v] = c
	}

	return Crosstab{
		Feature:    feature,
		Categories: categoryOrder(ds, feature, counts),
		Counts:     counts,
	}, nil
}

// categoryOrder picks the display order for a feature's categories. Recoded
// ordinal columns follow their label order; everything else follows
// first-appearance order, restricted to categories actually present.
func categoryOrder(ds *dataset.Dataset, feature string, counts map[string]AttritionCount) []string {
	if mapping, ok := schema.OrdinalMappings[feature]; ok {
		var order []string
		for _, label := range mapping.Levels() {
			if _, present := counts[label]; present {
				order = append(order, label)
			}
		}
		return order
	}
	return ds.DistinctValues(feature)
}

// buildNumericSummary computes the overall/stayed/left distributions of one
// numeric feature.
func buildNumericSummary(ds *dataset.Dataset, feature string, attrition []string) (NumericSummary, error) {
	values, err := ds.IntColumn(feature)
	if err != nil {
		return NumericSummary{}, err
	}

	var stayed, left []float64
	for i, v := range values {
		if attrition[i] == schema.AttritionYes {
			left = append(left, v)
		} else {
			stayed = append(stayed, v)
		}
	}

	return NumericSummary{
		Feature: feature,
		Overall: describe(values),
		Stayed:  describe(stayed),
		Left:    describe(left),
	}, nil
}

// describe summarizes one numeric series.
func describe(x []float64) Distribution {
	if len(x) == 0 {
		return Distribution{}
	}
	min, max := stats.MinMax(x)
	q1, _, q3 := stats.Quartiles(x)
	return Distribution{
		Count:  len(x),
		Mean:   stats.Mean(x),
		Median: stats.Median(x),
		Std:    stats.Std(x),
		Min:    min,
		Q1:     q1,
		Q3:     q3,
		Max:    max,
	}
}
