package placement

import "math"

// SuggestSizeAdjustment shrinks pos to fit into available, preserving the
// aspect ratio. It reports false when pos already fits. Each dimension of the
// result is at least 1.
func SuggestSizeAdjustment(pos Position, available Size) (Size, bool) {
	s := pos.Size().orUnit()
	if s.Width <= available.Width && s.Height <= available.Height {
		return Size{}, false
	}

	ratio := math.Min(
		float64(available.Width)/float64(s.Width),
		float64(available.Height)/float64(s.Height),
	)
	return Size{
		Width:  max(1, int(math.Floor(float64(s.Width)*ratio))),
		Height: max(1, int(math.Floor(float64(s.Height)*ratio))),
	}, true
}
