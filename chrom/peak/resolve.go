package peak

import "sort"

// UserPeak is a peak annotation supplied by the caller. Pointer fields are
// optional. StartX and EndX are physical retention times, not indices.
type UserPeak struct {
	X           float64
	Y           float64
	Text        string
	AX, AY      *float64 // pinned label offset
	StartX      *float64
	EndX        *float64
	Area        *float64 // precomputed area, used as-is
	SeriesIndex int
}

// Resolved is a UserPeak with its boundaries converted to sample indices.
type Resolved struct {
	User UserPeak

	StartIndex int
	EndIndex   int
	HasBounds  bool

	// Area is the supplied or computed area; meaningful when HasArea is set.
	Area    float64
	HasArea bool
}

// NearestIndex returns the index of the sample in the sorted slice x closest
// to target. Targets outside the range clamp to the first or last sample;
// equidistant neighbours resolve to the lower index. Returns -1 for empty x.
func NearestIndex(x []float64, target float64) int {
	n := len(x)
	if n == 0 {
		return -1
	}

	hi := sort.SearchFloat64s(x, target)
	if hi == 0 {
		return 0
	}
	if hi == n {
		return n - 1
	}

	lo := hi - 1
	if x[hi]-target < target-x[lo] {
		return hi
	}
	return lo
}

// Resolve converts u's StartX/EndX into indices on (x, y) and fills in its
// area. Both positions must be present for boundaries to be resolved; a
// reversed pair is swapped. A supplied Area is kept, otherwise the area is
// integrated like a detected peak's.
func Resolve(x, y []float64, u UserPeak) Resolved {
	r := Resolved{User: u}
	if u.Area != nil {
		r.Area = *u.Area
		r.HasArea = true
	}

	n := min(len(x), len(y))
	if u.StartX == nil || u.EndX == nil || n == 0 {
		return r
	}

	start := NearestIndex(x[:n], *u.StartX)
	end := NearestIndex(x[:n], *u.EndX)
	if start > end {
		start, end = end, start
	}

	r.StartIndex, r.EndIndex, r.HasBounds = start, end, true
	if !r.HasArea {
		r.Area = Area(x, y, start, end)
		r.HasArea = true
	}

	return r
}

// ResolveAll resolves each user peak against the series selected by its
// SeriesIndex; lookup returns (nil, nil) for unknown series.
func ResolveAll(users []UserPeak, lookup func(seriesIndex int) (x, y []float64)) []Resolved {
	out := make([]Resolved, len(users))
	for i, u := range users {
		x, y := lookup(u.SeriesIndex)
		out[i] = Resolve(x, y, u)
	}
	return out
}
