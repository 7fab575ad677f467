package peak

import (
	"sort"

	"github.com/cwbudde/algo-chrom/internal/vecmath"
)

// Peak is a detected chromatographic peak.
//
// StartIndex <= Index <= EndIndex always holds and all indices lie within
// the series. Area is measured against min(y[StartIndex], y[EndIndex]) and
// can be negative when the signal dips below that level.
type Peak struct {
	Index          int     `json:"index"`
	X              float64 `json:"x"`
	Y              float64 `json:"y"`
	Area           float64 `json:"area"`
	StartIndex     int     `json:"startIndex"`
	EndIndex       int     `json:"endIndex"`
	WidthAtHalfMax float64 `json:"widthAtHalfMax"`
}

// Detect finds peaks in the corrected series (x, y).
//
// Series shorter than three samples yield no peaks. The per-candidate
// prominence scan costs O(MinDistance), so the worst case is
// O(len(y) * MinDistance).
func Detect(x, y []float64, opts ...Option) []Peak {
	cfg := ApplyOptions(opts...)

	n := min(len(x), len(y))
	if n < 3 {
		return nil
	}
	x, y = x[:n], y[:n]

	heightThreshold := cfg.MinHeight
	prominenceThreshold := cfg.Prominence
	if cfg.RelativeThreshold {
		maxY, _ := vecmath.Max(y)
		heightThreshold *= maxY
		prominenceThreshold *= maxY
	}

	minDistance := max(cfg.MinDistance, 1)
	// A window wider than the series adds nothing; clamping first keeps
	// the multiplication from overflowing.
	span := min(minDistance, n) * 3

	var candidates []Peak
	for i := 1; i < n-1; i++ {
		if !(y[i] > y[i-1] && y[i] > y[i+1] && y[i] >= heightThreshold) {
			continue
		}

		if localProminence(y, i, span) < prominenceThreshold {
			continue
		}

		start, end := walkBoundaries(y, i)
		candidates = append(candidates, Peak{
			Index:          i,
			X:              x[i],
			Y:              y[i],
			Area:           Area(x, y, start, end),
			StartIndex:     start,
			EndIndex:       end,
			WidthAtHalfMax: WidthAtHalfMax(x, y, i, start, end),
		})
	}

	return FilterByDistance(candidates, minDistance)
}

// localProminence returns y[i] minus the higher of the minima within span
// samples on either side of i.
func localProminence(y []float64, i, span int) float64 {
	leftMin := y[i]
	for j := i - 1; j >= max(0, i-span); j-- {
		leftMin = min(leftMin, y[j])
	}

	rightMin := y[i]
	for j := i + 1; j <= min(len(y)-1, i+span); j++ {
		rightMin = min(rightMin, y[j])
	}

	return y[i] - max(leftMin, rightMin)
}

// walkBoundaries extends outward from i while the signal is non-increasing.
func walkBoundaries(y []float64, i int) (start, end int) {
	start = i
	for start > 0 && y[start-1] <= y[start] {
		start--
	}

	end = i
	for end < len(y)-1 && y[end+1] <= y[end] {
		end++
	}

	return start, end
}

// FilterByDistance thins peaks given in detection order: a peak closer than
// minDistance samples to the previously kept peak is dropped unless it is
// taller, in which case it replaces that peak. The result is sorted by x.
func FilterByDistance(peaks []Peak, minDistance int) []Peak {
	if len(peaks) == 0 {
		return nil
	}

	kept := make([]Peak, 0, len(peaks))
	for _, p := range peaks {
		if len(kept) == 0 {
			kept = append(kept, p)
			continue
		}

		last := &kept[len(kept)-1]
		if abs(p.Index-last.Index) < minDistance {
			if p.Y > last.Y {
				*last = p
			}
			continue
		}
		kept = append(kept, p)
	}

	sort.SliceStable(kept, func(a, b int) bool { return kept[a].X < kept[b].X })
	return kept
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
