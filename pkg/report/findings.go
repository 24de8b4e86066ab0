package report

import "sort"

// Severity classifies how strongly a category is associated with attrition.
type Severity string

const (
	SeverityHigh     Severity = "HIGH"
	SeverityElevated Severity = "ELEVATED"
	SeverityInfo     Severity = "INFO"
)

// Screening thresholds. Lift is the ratio of a category's attrition rate to
// the overall rate; groups smaller than minGroupSize are too noisy to flag.
const (
	minGroupSize = 20
	highLift     = 1.5
	elevatedLift = 1.2
)

// Finding flags one feature category whose attrition rate exceeds the
// overall rate.
type Finding struct {
	Feature     string   `json:"feature"`
	Category    string   `json:"category"`
	GroupSize   int      `json:"groupSize"`
	GroupRate   float64  `json:"groupRate"`
	OverallRate float64  `json:"overallRate"`
	Lift        float64  `json:"lift"`
	Severity    Severity `json:"severity"`
}

// ScreenDrivers scans the categorical crosstabs for categories whose
// attrition rate is elevated relative to the overall rate. Results are
// sorted by lift, highest first.
func ScreenDrivers(summary *Summary) []Finding {
	if summary.AttritionRate == 0 {
		return nil
	}

	var findings []Finding
	for _, ct := range summary.Crosstabs {
		for _, category := range ct.Categories {
			c := ct.Counts[category]
			size := c.Yes + c.No
			if size < minGroupSize {
				continue
			}

			groupRate := float64(c.Yes) / float64(size) * 100
			lift := groupRate / summary.AttritionRate
			severity := SeverityInfo
			switch {
			case lift >= highLift:
				severity = SeverityHigh
			case lift >= elevatedLift:
				severity = SeverityElevated
			default:
				continue
			}

			findings = append(findings, Finding{
				Feature:     ct.Feature,
				Category:    category,
				GroupSize:   size,
				GroupRate:   groupRate,
				OverallRate: summary.AttritionRate,
				Lift:        lift,
				Severity:    severity,
			})
		}
	}

	sort.Slice(findings, func(i, j int) bool {
		return findings[i].Lift > findings[j].Lift
	})
	return findings
}
