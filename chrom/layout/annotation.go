package layout

import (
	"fmt"

	"github.com/cwbudde/algo-chrom/chrom/peak"
)

// Source records where an annotation came from.
type Source int

const (
	// SourceDetected marks annotations created from detected peaks.
	SourceDetected Source = iota
	// SourceUser marks caller-supplied annotations.
	SourceUser
)

// String returns "detected" or "user".
func (s Source) String() string {
	if s == SourceUser {
		return "user"
	}
	return "detected"
}

// MarshalText implements encoding.TextMarshaler.
func (s Source) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Source) UnmarshalText(text []byte) error {
	switch string(text) {
	case "detected":
		*s = SourceDetected
	case "user":
		*s = SourceUser
	default:
		return fmt.Errorf("layout: unknown source %q", text)
	}
	return nil
}

// Bounds are the sample indices of a peak's start and end.
type Bounds struct {
	StartIndex int
	EndIndex   int
}

// Offset is a label displacement in pixels; negative AY is upward.
type Offset struct {
	AX float64 `json:"ax"`
	AY float64 `json:"ay"`
}

// Annotation is a label anchored at a peak apex, from either provenance.
type Annotation struct {
	X, Y        float64
	Text        string
	SeriesIndex int
	Source      Source
	Bounds      *Bounds  // nil when the peak has no boundaries
	Area        *float64 // nil when no area is known
	Pin         *Offset  // caller-fixed offset, overrides the assigned slot
}

// AreaText formats an area label.
func AreaText(area float64) string {
	return fmt.Sprintf("Area: %.2f", area)
}

// FromPeak converts a detected peak. The label shows the area when showArea
// is set and is empty otherwise.
func FromPeak(p peak.Peak, seriesIndex int, showArea bool) Annotation {
	area := p.Area
	a := Annotation{
		X:           p.X,
		Y:           p.Y,
		SeriesIndex: seriesIndex,
		Source:      SourceDetected,
		Bounds:      &Bounds{StartIndex: p.StartIndex, EndIndex: p.EndIndex},
		Area:        &area,
	}
	if showArea {
		a.Text = AreaText(area)
	}
	return a
}

// FromResolved converts a resolved user peak. The user's text is kept;
// without one the label shows the area if known.
func FromResolved(r peak.Resolved) Annotation {
	u := r.User
	a := Annotation{
		X:           u.X,
		Y:           u.Y,
		Text:        u.Text,
		SeriesIndex: u.SeriesIndex,
		Source:      SourceUser,
	}
	if r.HasBounds {
		a.Bounds = &Bounds{StartIndex: r.StartIndex, EndIndex: r.EndIndex}
	}
	if r.HasArea {
		area := r.Area
		a.Area = &area
		if a.Text == "" {
			a.Text = AreaText(area)
		}
	}
	if u.AX != nil && u.AY != nil {
		a.Pin = &Offset{AX: *u.AX, AY: *u.AY}
	}
	return a
}
