package grid

import "math"

// DefaultSnapThreshold is the pixel radius used by NearestSnapPoint callers
// that have no preference.
const DefaultSnapThreshold = 20.0

// SnapPoints returns the top-left pixel of every cell. Points are ordered
// column-major: all rows of column 0, then all rows of column 1, and so on.
func SnapPoints(cfg Config) []Pixel {
	n := cfg.Columns()
	points := make([]Pixel, 0, n*n)
	for col := 0; col < n; col++ {
		for row := 0; row < n; row++ {
			points = append(points, origin(Cell{Col: col, Row: row}, cfg))
		}
	}
	return points
}

// NearestSnapPoint returns the point in points closest to p. It reports false
// when no point lies strictly closer than threshold.
func NearestSnapPoint(p Pixel, points []Pixel, threshold float64) (Pixel, bool) {
	var (
		best     Pixel
		bestDist = math.Inf(1)
	)
	for _, sp := range points {
		if d := math.Hypot(p.X-sp.X, p.Y-sp.Y); d < bestDist {
			best, bestDist = sp, d
		}
	}
	if bestDist < threshold {
		return best, true
	}
	return Pixel{}, false
}
