package stats

import "math"

// KDEPoint is one evaluation of a kernel density estimate.
type KDEPoint struct {
	X       float64
	Density float64
}

// KDE computes a gaussian kernel density estimate of x over steps evenly
// spaced points spanning the data range (padded by one bandwidth on each
// side). Bandwidth follows Silverman's rule of thumb; degenerate inputs
// (fewer than 2 points, zero spread) return nil.
func KDE(x []float64, steps int) []KDEPoint {
	if len(x) < 2 || steps < 2 {
		return nil
	}

	std := Std(x)
	if std == 0 {
		return nil
	}
	bandwidth := 1.06 * std * math.Pow(float64(len(x)), -0.2)

	min, max := MinMax(x)
	lo := min - bandwidth
	hi := max + bandwidth
	step := (hi - lo) / float64(steps-1)

	points := make([]KDEPoint, steps)
	norm := 1.0 / (float64(len(x)) * bandwidth * math.Sqrt(2*math.Pi))
	for i := 0; i < steps; i++ {
		at := lo + float64(i)*step
		density := 0.0
		for _, v := range x {
			z := (at - v) / bandwidth
			density += math.Exp(-0.5 * z * z)
		}
		points[i] = KDEPoint{X: at, Density: density * norm}
	}
	return points
}
