package pipeline

import (
	"fmt"

	"github.com/cwbudde/algo-chrom/chrom/align"
	"github.com/cwbudde/algo-chrom/chrom/baseline"
	"github.com/cwbudde/algo-chrom/chrom/layout"
	"github.com/cwbudde/algo-chrom/chrom/peak"
	"github.com/cwbudde/algo-chrom/chrom/series"
	"github.com/cwbudde/algo-chrom/chrom/smooth"
	"github.com/cwbudde/algo-chrom/stats/trace"
)

// SeriesResult is one processed trace.
type SeriesResult struct {
	Name  string      `json:"name"`
	Color string      `json:"color"`
	X     []float64   `json:"x"`
	Y     []float64   `json:"y"` // smoothed and baseline-corrected
	Peaks []peak.Peak `json:"peaks"`
	Stats trace.Stats `json:"stats"`
	// Shift is the retention-time offset removed by alignment.
	Shift float64     `json:"shift"`
	Warp  *align.Warp `json:"warp,omitempty"`
}

// Result is everything a renderer needs.
type Result struct {
	Series      []SeriesResult  `json:"series"`
	Annotations []layout.Placed `json:"annotations"`
	Markers     []layout.Marker `json:"markers"`
	Guides      []layout.Guide  `json:"guides"`
	Warnings    []string        `json:"warnings,omitempty"`
}

// Run processes input and user annotations. UserPeak.SeriesIndex refers to
// the position in input. User X, StartX and EndX are raw retention times of
// that series and go through the same shift and warp as its samples.
func Run(input []series.Series, user []peak.UserPeak, opts ...Option) Result {
	cfg := ApplyOptions(opts...)
	res := Result{Series: make([]SeriesResult, len(input))}

	colors := make([]string, len(input))
	for i, s := range input {
		colors[i] = s.Color
	}

	for i, s := range input {
		clean := s.Sanitized()
		y := clean.Y
		if cfg.Smoothing != smooth.ModeNone {
			y = smooth.Apply(y, cfg.Smoothing, cfg.SmoothingWidth)
		}
		y = baseline.Correct(y, cfg.Baseline, cfg.BaselineWindow)

		res.Series[i] = SeriesResult{
			Name:  s.Name,
			Color: layout.SeriesColor(i, colors, nil),
			X:     clean.X,
			Y:     y,
		}
	}

	res.Warnings = alignSeries(res.Series, cfg)

	for i := range res.Series {
		sr := &res.Series[i]
		if sr.Peaks == nil {
			sr.Peaks = peak.Detect(sr.X, sr.Y, cfg.Peak...)
		}
		if sr.Peaks == nil {
			sr.Peaks = []peak.Peak{}
		}
		sr.Stats = trace.Calculate(sr.Y)
		if cfg.OnPeaks != nil {
			cfg.OnPeaks(i, sr.Peaks)
		}
	}

	user = alignUserPeaks(user, res.Series)

	lookup := func(i int) (x, y []float64) {
		if i < 0 || i >= len(res.Series) {
			return nil, nil
		}
		return res.Series[i].X, res.Series[i].Y
	}

	var anns []layout.Annotation
	for i, sr := range res.Series {
		for _, p := range sr.Peaks {
			anns = append(anns, layout.FromPeak(p, i, cfg.ShowAreas))
		}
	}
	for _, r := range peak.ResolveAll(user, lookup) {
		anns = append(anns, layout.FromResolved(r))
	}

	res.Annotations = layout.Layout(anns,
		layout.WithOverlapThreshold(cfg.OverlapThreshold),
		layout.WithSeriesColors(colors),
	)

	start, end := markerShapes(cfg.BoundaryMarkers)
	res.Markers, res.Guides = layout.Markers(anns, lookup,
		layout.WithMarkerY(cfg.MarkerY),
		layout.WithShapes(start, end),
		layout.WithAutoPolicy(layout.SharedBoundaryPolicy),
		layout.WithMarkerColors(colors, nil),
	)
	if res.Markers == nil {
		res.Markers = []layout.Marker{}
	}
	if res.Guides == nil {
		res.Guides = []layout.Guide{}
	}

	return res
}

// AlignedTime maps a raw retention time of the series onto the aligned
// axis: the shift is removed first, then the warp applied.
func (sr SeriesResult) AlignedTime(t float64) float64 {
	t -= sr.Shift
	if sr.Warp != nil {
		t = sr.Warp.Apply(t)
	}
	return t
}

// alignUserPeaks returns copies of user with their retention times mapped
// onto the aligned axis of their series. Peaks referring to no series are
// copied unchanged.
func alignUserPeaks(user []peak.UserPeak, out []SeriesResult) []peak.UserPeak {
	if len(user) == 0 {
		return user
	}
	mapped := make([]peak.UserPeak, len(user))
	for i, u := range user {
		mapped[i] = u
		if u.SeriesIndex < 0 || u.SeriesIndex >= len(out) {
			continue
		}
		sr := out[u.SeriesIndex]
		mapped[i].X = sr.AlignedTime(u.X)
		if u.StartX != nil {
			v := sr.AlignedTime(*u.StartX)
			mapped[i].StartX = &v
		}
		if u.EndX != nil {
			v := sr.AlignedTime(*u.EndX)
			mapped[i].EndX = &v
		}
	}
	return mapped
}

// alignSeries shifts, and optionally warps, every series onto the
// reference in place. Series that cannot be aligned keep their x.
func alignSeries(out []SeriesResult, cfg Options) []string {
	if cfg.AlignTo < 0 {
		return nil
	}
	if cfg.AlignTo >= len(out) {
		return []string{fmt.Sprintf("align: reference series %d out of range (have %d)", cfg.AlignTo, len(out))}
	}

	ref := out[cfg.AlignTo]
	refSeries := series.Series{Name: ref.Name, X: ref.X, Y: ref.Y}

	var refPeaks []peak.Peak
	var tol float64
	if cfg.Warp {
		refPeaks = peak.Detect(ref.X, ref.Y, cfg.Peak...)
		out[cfg.AlignTo].Peaks = refPeaks
		if dx, err := align.Spacing(ref.X); err == nil {
			tol = dx * float64(peak.ApplyOptions(cfg.Peak...).MinDistance)
		}
	}

	var warnings []string
	for i := range out {
		if i == cfg.AlignTo {
			continue
		}
		sr := &out[i]

		shift, err := align.EstimateShift(refSeries, series.Series{Name: sr.Name, X: sr.X, Y: sr.Y})
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("series %d (%s): %v", i, sr.Name, err))
			continue
		}
		sr.X = align.ShiftX(sr.X, shift)
		sr.Shift = shift.X

		if !cfg.Warp || tol <= 0 {
			continue
		}
		peaks := peak.Detect(sr.X, sr.Y, cfg.Peak...)
		pairs := align.MatchApexes(apexes(refPeaks), apexes(peaks), tol)
		w, err := align.FitWarp(pairs)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("series %d (%s): %v", i, sr.Name, err))
			sr.Peaks = peaks
			continue
		}
		sr.X = w.ApplyAll(sr.X)
		sr.Warp = &w
	}
	return warnings
}

func apexes(peaks []peak.Peak) []float64 {
	out := make([]float64, len(peaks))
	for i, p := range peaks {
		out[i] = p.X
	}
	return out
}
