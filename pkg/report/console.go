package report

import (
	"fmt"
	"io"

	"attriview/pkg/dataset"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

// headRows is how many records the head preview shows.
const headRows = 5

// Severity markers for the findings section.
var (
	highMarker     = color.New(color.FgRed, color.Bold).SprintFunc()
	elevatedMarker = color.New(color.FgYellow).SprintFunc()
	rateMarker     = color.New(color.FgCyan, color.Bold).SprintFunc()
)

// RenderConsole writes the human-facing report: shape, head preview, schema
// summary, attrition rate, crosstabs, numeric summaries, and findings.
// The output is informational only — the JSON export is the machine-readable
// form.
func RenderConsole(w io.Writer, ds *dataset.Dataset, summary *Summary, findings []Finding) {
	fmt.Fprintf(w, "Dataset shape: %d rows x %d columns\n\n", summary.Rows, len(summary.Columns))

	fmt.Fprintf(w, "First %d rows:\n", headRows)
	renderHead(w, ds)

	fmt.Fprintln(w, "\nSchema summary:")
	renderSchema(w, ds, summary)

	fmt.Fprintf(w, "\nDuplicate rows: %d\n", summary.DuplicateRows)
	fmt.Fprintf(w, "Overall attrition rate: %s (%d of %d employees left)\n",
		rateMarker(fmt.Sprintf("%.2f%%", summary.AttritionRate)),
		summary.AttritionYes, summary.Rows)

	for _, ct := range summary.Crosstabs {
		fmt.Fprintf(w, "\nAttrition by %s:\n", ct.Feature)
		renderCrosstab(w, ct)
	}

	fmt.Fprintln(w, "\nNumeric features by attrition:")
	renderNumeric(w, summary.NumericSummaries)

	fmt.Fprintln(w, "\nPotential attrition drivers:")
	renderFindings(w, findings)
}

func renderHead(w io.Writer, ds *dataset.Dataset) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(ds.Columns())
	table.SetAutoFormatHeaders(false)
	for _, row := range ds.Head(headRows) {
		table.Append(row)
	}
	table.Render()
}

func renderSchema(w io.Writer, ds *dataset.Dataset, summary *Summary) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Column", "Distinct", "Nulls"})
	table.SetAutoFormatHeaders(false)
	for _, col := range summary.Columns {
		table.Append([]string{
			col,
			fmt.Sprintf("%d", len(ds.DistinctValues(col))),
			fmt.Sprintf("%d", summary.NullCounts[col]),
		})
	}
	table.Render()
}

func renderCrosstab(w io.Writer, ct Crosstab) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{ct.Feature, "Stayed", "Left", "Attrition %"})
	table.SetAutoFormatHeaders(false)
	for _, category := range ct.Categories {
		c := ct.Counts[category]
		total := c.Yes + c.No
		rate := 0.0
		if total > 0 {
			rate = float64(c.Yes) / float64(total) * 100
		}
		table.Append([]string{
			category,
			fmt.Sprintf("%d", c.No),
			fmt.Sprintf("%d", c.Yes),
			fmt.Sprintf("%.1f", rate),
		})
	}
	table.Render()
}

func renderNumeric(w io.Writer, summaries []NumericSummary) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Feature", "Group", "Count", "Mean", "Median", "Std", "Min", "Max"})
	table.SetAutoFormatHeaders(false)
	for _, ns := range summaries {
		for _, group := range []struct {
			name string
			d    Distribution
		}{
			{"all", ns.Overall},
			{"stayed", ns.Stayed},
			{"left", ns.Left},
		} {
			table.Append([]string{
				ns.Feature,
				group.name,
				fmt.Sprintf("%d", group.d.Count),
				fmt.Sprintf("%.1f", group.d.Mean),
				fmt.Sprintf("%.1f", group.d.Median),
				fmt.Sprintf("%.1f", group.d.Std),
				fmt.Sprintf("%.0f", group.d.Min),
				fmt.Sprintf("%.0f", group.d.Max),
			})
		}
	}
	table.Render()
}

func renderFindings(w io.Writer, findings []Finding) {
	if len(findings) == 0 {
		fmt.Fprintln(w, "  none flagged")
		return
	}
	for _, f := range findings {
		marker := elevatedMarker(string(f.Severity))
		if f.Severity == SeverityHigh {
			marker = highMarker(string(f.Severity))
		}
		fmt.Fprintf(w, "  [%s] %s=%s: %.1f%% attrition vs %.1f%% overall (%.1fx, n=%d)\n",
			marker, f.Feature, f.Category, f.GroupRate, f.OverallRate, f.Lift, f.GroupSize)
	}
}
