package layout

// defaultPalette is the trace color cycle, indexed by series position.
var defaultPalette = [...]string{
	"#1f77b4",
	"#ff7f0e",
	"#2ca02c",
	"#d62728",
	"#9467bd",
	"#8c564b",
	"#e377c2",
	"#7f7f7f",
	"#bcbd22",
	"#17becf",
}

// DefaultPalette returns a copy of the default trace colors.
func DefaultPalette() []string {
	out := make([]string, len(defaultPalette))
	copy(out, defaultPalette[:])
	return out
}

// PaletteColor returns the default palette color for a series index.
func PaletteColor(index int) string {
	return cycle(defaultPalette[:], index)
}

// SeriesColor returns explicit[index] when set, else the palette color for
// index. An empty palette selects the default palette.
func SeriesColor(index int, explicit, palette []string) string {
	if index >= 0 && index < len(explicit) && explicit[index] != "" {
		return explicit[index]
	}
	if len(palette) == 0 {
		return PaletteColor(index)
	}
	return cycle(palette, index)
}

func cycle[T any](table []T, index int) T {
	n := len(table)
	return table[((index%n)+n)%n]
}
