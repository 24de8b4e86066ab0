package charts

import (
	"fmt"
	"image/color"
	"path/filepath"
	"strings"

	"attriview/pkg/dataset"
	"attriview/pkg/report"
	"attriview/pkg/schema"

	"go.uber.org/zap"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Group colors: stayed (No) in blue, left (Yes) in orange.
var (
	stayedColor = color.RGBA{R: 70, G: 120, B: 200, A: 255}
	leftColor   = color.RGBA{R: 235, G: 140, B: 50, A: 255}
	stayedFill  = color.RGBA{R: 70, G: 120, B: 200, A: 140}
	leftFill    = color.RGBA{R: 235, G: 140, B: 50, A: 140}
)

const histogramBins = 30

// Renderer writes the fixed sequence of chart artifacts as PNG files.
type Renderer struct {
	outDir string
	log    *zap.Logger
}

// NewRenderer builds a Renderer writing into outDir.
func NewRenderer(outDir string, log *zap.Logger) *Renderer {
	return &Renderer{outDir: outDir, log: log}
}

// RenderAll produces every chart: count charts for the categorical features,
// histograms for the numeric features, the income-by-education violin chart,
// and the distance-by-job-role box chart. It returns the paths written.
func (r *Renderer) RenderAll(ds *dataset.Dataset, summary *report.Summary) ([]string, error) {
	var paths []string

	for _, ct := range summary.Crosstabs {
		path, err := r.CountChart(ct)
		if err != nil {
			return paths, fmt.Errorf("count chart for %s: %w", ct.Feature, err)
		}
		paths = append(paths, path)
	}

	for _, feature := range schema.NumericFeatures {
		path, err := r.HistogramChart(ds, feature)
		if err != nil {
			return paths, fmt.Errorf("histogram for %s: %w", feature, err)
		}
		paths = append(paths, path)
	}

	path, err := r.ViolinChart(ds, schema.ColEducation, schema.ColMonthlyIncome)
	if err != nil {
		return paths, fmt.Errorf("violin chart: %w", err)
	}
	paths = append(paths, path)

	path, err = r.BoxChart(ds, schema.ColJobRole, schema.ColDistanceFromHome)
	if err != nil {
		return paths, fmt.Errorf("box chart: %w", err)
	}
	paths = append(paths, path)

	r.log.Info("charts rendered", zap.Int("count", len(paths)), zap.String("dir", r.outDir))
	return paths, nil
}

// CountChart renders grouped bars of record counts per category, split by
// attrition outcome.
func (r *Renderer) CountChart(ct report.Crosstab) (string, error) {
	p := plot.New()
	p.Title.Text = "Attrition by " + ct.Feature
	p.Y.Label.Text = "Number of Employees"

	stayed := make(plotter.Values, len(ct.Categories))
	left := make(plotter.Values, len(ct.Categories))
	for i, category := range ct.Categories {
		stayed[i] = float64(ct.Counts[category].No)
		left[i] = float64(ct.Counts[category].Yes)
	}

	width := vg.Points(14)
	stayedBars, err := plotter.NewBarChart(stayed, width)
	if err != nil {
		return "", err
	}
	stayedBars.Color = stayedColor
	stayedBars.Offset = -width / 2

	leftBars, err := plotter.NewBarChart(left, width)
	if err != nil {
		return "", err
	}
	leftBars.Color = leftColor
	leftBars.Offset = width / 2

	p.Add(stayedBars, leftBars)
	p.Legend.Add("No", stayedBars)
	p.Legend.Add("Yes", leftBars)
	p.Legend.Top = true
	p.NominalX(ct.Categories...)

	return r.save(p, 8*vg.Inch, 4*vg.Inch, "attrition_by_"+fileToken(ct.Feature))
}

// HistogramChart renders overlaid distribution histograms of one numeric
// feature, one histogram per attrition group.
func (r *Renderer) HistogramChart(ds *dataset.Dataset, feature string) (string, error) {
	values, err := ds.IntColumn(feature)
	if err != nil {
		return "", err
	}
	attrition, _ := ds.Column(schema.ColAttrition)

	var stayed, left plotter.Values
	for i, v := range values {
		if attrition[i] == schema.AttritionYes {
			left = append(left, v)
		} else {
			stayed = append(stayed, v)
		}
	}

	p := plot.New()
	p.Title.Text = "Distribution of " + feature + " by Attrition"
	p.X.Label.Text = feature
	p.Y.Label.Text = "Frequency"

	for _, group := range []struct {
		name string
		v    plotter.Values
		fill color.Color
	}{
		{"No", stayed, stayedFill},
		{"Yes", left, leftFill},
	} {
		if len(group.v) == 0 {
			continue
		}
		h, err := plotter.NewHist(group.v, histogramBins)
		if err != nil {
			return "", err
		}
		h.FillColor = group.fill
		p.Add(h)
		p.Legend.Add(group.name, h)
	}
	p.Legend.Top = true

	return r.save(p, 6*vg.Inch, 4*vg.Inch, "dist_"+fileToken(feature))
}

// BoxChart renders side-by-side box plots of a numeric column grouped by a
// categorical column and split by attrition outcome.
func (r *Renderer) BoxChart(ds *dataset.Dataset, groupCol, valueCol string) (string, error) {
	groups, err := splitGroups(ds, groupCol, valueCol)
	if err != nil {
		return "", err
	}

	p := plot.New()
	p.Title.Text = valueCol + " by " + groupCol + " and Attrition"
	p.Y.Label.Text = valueCol

	width := vg.Points(12)
	ticks := make([]plot.Tick, len(groups))
	for i, g := range groups {
		ticks[i] = plot.Tick{Value: float64(i), Label: g.name}

		if len(g.stayed) > 0 {
			box, err := plotter.NewBoxPlot(width, float64(i)-0.18, plotter.Values(g.stayed))
			if err != nil {
				return "", err
			}
			box.FillColor = stayedFill
			p.Add(box)
		}
		if len(g.left) > 0 {
			box, err := plotter.NewBoxPlot(width, float64(i)+0.18, plotter.Values(g.left))
			if err != nil {
				return "", err
			}
			box.FillColor = leftFill
			p.Add(box)
		}
	}
	p.X.Tick.Marker = plot.ConstantTicks(ticks)
	p.X.Min = -0.5
	p.X.Max = float64(len(groups)) - 0.5

	return r.save(p, 10*vg.Inch, 5*vg.Inch, fileToken(valueCol)+"_by_"+fileToken(groupCol)+"_box")
}

// save writes the plot as <name>.png under the output directory.
func (r *Renderer) save(p *plot.Plot, w, h vg.Length, name string) (string, error) {
	path := filepath.Join(r.outDir, name+".png")
	if err := p.Save(w, h, path); err != nil {
		return "", err
	}
	r.log.Debug("chart written", zap.String("path", path))
	return path, nil
}

// group is one categorical group's numeric values split by attrition.
type group struct {
	name   string
	stayed []float64
	left   []float64
}

// splitGroups collects valueCol values per groupCol category, split by
// attrition. Category order follows the ordinal label order where the group
// column is a recoded ordinal, first-appearance order otherwise.
func splitGroups(ds *dataset.Dataset, groupCol, valueCol string) ([]group, error) {
	categories, ok := ds.Column(groupCol)
	if !ok {
		return nil, fmt.Errorf("%w: no column %q", schema.ErrSchemaMismatch, groupCol)
	}
	values, err := ds.IntColumn(valueCol)
	if err != nil {
		return nil, err
	}
	attrition, _ := ds.Column(schema.ColAttrition)

	order := ds.DistinctValues(groupCol)
	if mapping, ok := schema.OrdinalMappings[groupCol]; ok {
		present := make(map[string]bool, len(order))
		for _, c := range order {
			present[c] = true
		}
		order = nil
		for _, label := range mapping.Levels() {
			if present[label] {
				order = append(order, label)
			}
		}
	}

	index := make(map[string]int, len(order))
	groups := make([]group, len(order))
	for i, name := range order {
		index[name] = i
		groups[i].name = name
	}

	for i, category := range categories {
		g := &groups[index[category]]
		if attrition[i] == schema.AttritionYes {
			g.left = append(g.left, values[i])
		} else {
			g.stayed = append(g.stayed, values[i])
		}
	}
	return groups, nil
}

// fileToken lowercases a column name for use in artifact file names.
func fileToken(s string) string {
	return strings.ToLower(s)
}
