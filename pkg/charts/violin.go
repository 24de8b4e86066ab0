package charts

import (
	"image/color"

	"attriview/pkg/dataset"
	"attriview/pkg/stats"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// kdeSteps is the number of density evaluations per violin half.
const kdeSteps = 80

// violinHalfWidth is the maximum half-width of a violin in x-axis units.
const violinHalfWidth = 0.38

// ViolinChart renders split violins of a numeric column grouped by a
// categorical column: for each category, the stayed group's density curve is
// mirrored on the left of the category's center line and the left group's on
// the right. Densities are scaled by the chart-wide maximum so violin widths
// are comparable across categories.
func (r *Renderer) ViolinChart(ds *dataset.Dataset, groupCol, valueCol string) (string, error) {
	groups, err := splitGroups(ds, groupCol, valueCol)
	if err != nil {
		return "", err
	}

	type half struct {
		center float64
		sign   float64
		curve  []stats.KDEPoint
		fill   color.Color
	}

	var halves []half
	maxDensity := 0.0
	for i, g := range groups {
		for _, side := range []struct {
			sign   float64
			values []float64
		}{
			{-1, g.stayed},
			{+1, g.left},
		} {
			curve := stats.KDE(side.values, kdeSteps)
			if curve == nil {
				continue
			}
			for _, pt := range curve {
				if pt.Density > maxDensity {
					maxDensity = pt.Density
				}
			}
			fill := stayedFill
			if side.sign > 0 {
				fill = leftFill
			}
			halves = append(halves, half{
				center: float64(i),
				sign:   side.sign,
				curve:  curve,
				fill:   fill,
			})
		}
	}

	p := plot.New()
	p.Title.Text = valueCol + " Distribution by " + groupCol + " and Attrition"
	p.Y.Label.Text = valueCol

	scale := 0.0
	if maxDensity > 0 {
		scale = violinHalfWidth / maxDensity
	}

	for _, h := range halves {
		// Closed outline: up the density curve, back down the center line.
		pts := make(plotter.XYs, 0, len(h.curve)+2)
		for _, pt := range h.curve {
			pts = append(pts, plotter.XY{X: h.center + h.sign*pt.Density*scale, Y: pt.X})
		}
		pts = append(pts,
			plotter.XY{X: h.center, Y: h.curve[len(h.curve)-1].X},
			plotter.XY{X: h.center, Y: h.curve[0].X},
		)

		poly, err := plotter.NewPolygon(pts)
		if err != nil {
			return "", err
		}
		poly.Color = h.fill
		poly.LineStyle.Width = vg.Points(0.5)
		p.Add(poly)
	}

	ticks := make([]plot.Tick, len(groups))
	for i, g := range groups {
		ticks[i] = plot.Tick{Value: float64(i), Label: g.name}
	}
	p.X.Tick.Marker = plot.ConstantTicks(ticks)
	p.X.Min = -1
	p.X.Max = float64(len(groups))

	return r.save(p, 9*vg.Inch, 5*vg.Inch, fileToken(valueCol)+"_by_"+fileToken(groupCol)+"_violin")
}
