package layout

import (
	"math"
	"sort"
)

// DefaultOverlapThreshold is the retention-time gap below which labels are
// grouped.
const DefaultOverlapThreshold = 0.4

// defaultSingleOffset centers an isolated label above its apex.
var defaultSingleOffset = Offset{AX: 0, AY: -40}

// defaultSlots are the offsets for grouped labels, lowest peak first.
var defaultSlots = [...]Offset{
	{AX: 40, AY: -40},
	{AX: -40, AY: -40},
	{AX: 40, AY: -80},
	{AX: -40, AY: -80},
	{AX: 40, AY: -120},
	{AX: -40, AY: -120},
}

// DefaultSlots returns a copy of the grouped-label offset table.
func DefaultSlots() []Offset {
	out := make([]Offset, len(defaultSlots))
	copy(out, defaultSlots[:])
	return out
}

// Options configures Layout.
type Options struct {
	OverlapThreshold float64
	SingleOffset     Offset
	Slots            []Offset
	Palette          []string
	SeriesColors     []string // explicit per-series colors; "" falls back to Palette
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the standard layout settings.
func DefaultOptions() Options {
	return Options{
		OverlapThreshold: DefaultOverlapThreshold,
		SingleOffset:     defaultSingleOffset,
		Slots:            DefaultSlots(),
		Palette:          DefaultPalette(),
	}
}

// WithOverlapThreshold sets the grouping distance. Non-positive or
// non-finite values are ignored.
func WithOverlapThreshold(threshold float64) Option {
	return func(o *Options) {
		if threshold > 0 && !math.IsInf(threshold, 0) {
			o.OverlapThreshold = threshold
		}
	}
}

// WithSingleOffset sets the offset of isolated labels.
func WithSingleOffset(off Offset) Option {
	return func(o *Options) {
		o.SingleOffset = off
	}
}

// WithSlots replaces the grouped-label table. An empty table is ignored.
func WithSlots(slots []Offset) Option {
	return func(o *Options) {
		if len(slots) > 0 {
			o.Slots = append([]Offset(nil), slots...)
		}
	}
}

// WithPalette replaces the trace color cycle. An empty palette is ignored.
func WithPalette(palette []string) Option {
	return func(o *Options) {
		if len(palette) > 0 {
			o.Palette = append([]string(nil), palette...)
		}
	}
}

// WithSeriesColors sets explicit colors by series index.
func WithSeriesColors(colors []string) Option {
	return func(o *Options) {
		o.SeriesColors = append([]string(nil), colors...)
	}
}

// ApplyOptions applies opts on top of DefaultOptions.
func ApplyOptions(opts ...Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Placed is a label with its assigned offset and colors.
type Placed struct {
	X           float64  `json:"x"`
	Y           float64  `json:"y"`
	Text        string   `json:"text"`
	AX          float64  `json:"ax"`
	AY          float64  `json:"ay"`
	Color       string   `json:"color"`
	BorderColor string   `json:"borderColor"`
	SeriesIndex int      `json:"seriesIndex"`
	Source      Source   `json:"source"`
	Group       int      `json:"group"`
	Area        *float64 `json:"area,omitempty"`
}

// SortByX returns a copy of anns stably sorted by retention time.
func SortByX(anns []Annotation) []Annotation {
	out := append([]Annotation(nil), anns...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].X < out[j].X
	})
	return out
}

// BuildGroups partitions x-sorted annotations into runs where each member is
// closer than threshold to the member added before it. Groups hold indices
// into sorted.
func BuildGroups(sorted []Annotation, threshold float64) [][]int {
	if len(sorted) == 0 {
		return nil
	}

	groups := [][]int{{0}}
	last := 0
	for i := 1; i < len(sorted); i++ {
		if sorted[i].X-sorted[last].X < threshold {
			g := len(groups) - 1
			groups[g] = append(groups[g], i)
		} else {
			groups = append(groups, []int{i})
		}
		last = i
	}
	return groups
}

// Layout assigns offsets and colors to every annotation. The result is in
// ascending x order.
func Layout(anns []Annotation, opts ...Option) []Placed {
	cfg := ApplyOptions(opts...)
	sorted := SortByX(anns)
	groups := BuildGroups(sorted, cfg.OverlapThreshold)

	placed := make([]Placed, len(sorted))
	for g, members := range groups {
		offsets := assignOffsets(sorted, members, cfg)
		for k, m := range members {
			a := sorted[m]
			off := offsets[k]
			if a.Pin != nil {
				off = *a.Pin
			}
			color := SeriesColor(a.SeriesIndex, cfg.SeriesColors, cfg.Palette)
			placed[m] = Placed{
				X:           a.X,
				Y:           a.Y,
				Text:        a.Text,
				AX:          off.AX,
				AY:          off.AY,
				Color:       color,
				BorderColor: color,
				SeriesIndex: a.SeriesIndex,
				Source:      a.Source,
				Group:       g,
				Area:        a.Area,
			}
		}
	}
	return placed
}

// assignOffsets returns the offset for each entry of members, in members
// order.
func assignOffsets(sorted []Annotation, members []int, cfg Options) []Offset {
	offsets := make([]Offset, len(members))
	if len(members) == 1 {
		offsets[0] = cfg.SingleOffset
		return offsets
	}

	rank := make([]int, len(members))
	for k := range rank {
		rank[k] = k
	}
	sort.SliceStable(rank, func(i, j int) bool {
		return sorted[members[rank[i]]].Y < sorted[members[rank[j]]].Y
	})
	for slot, k := range rank {
		offsets[k] = cycle(cfg.Slots, slot)
	}
	return offsets
}
