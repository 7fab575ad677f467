package chromcli

import (
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/cwbudde/algo-chrom/chrom/peak"
	"github.com/cwbudde/algo-chrom/dsp/core"
)

// FileConfig is the TOML form of Config. Pointer fields distinguish an
// explicit zero from an absent key.
type FileConfig struct {
	Input          string   `toml:"input"`
	Output         string   `toml:"output"`
	Baseline       string   `toml:"baseline"`
	BaselineWindow *int     `toml:"baseline_window"`
	MinHeight      *float64 `toml:"min_height"`
	MinDistance    *int     `toml:"min_distance"`
	Prominence     *float64 `toml:"prominence"`
	Absolute       *bool    `toml:"absolute"`
	Overlap        *float64 `toml:"overlap"`
	Markers        string   `toml:"markers"`
	MarkerY        *float64 `toml:"marker_y"`
	NoAreas        *bool    `toml:"no_areas"`
	Smooth         string   `toml:"smooth"`
	SmoothWidth    *int     `toml:"smooth_width"`
	AlignTo        *int     `toml:"align_to"`
	Warp           *bool    `toml:"warp"`
	Colors         []string `toml:"colors"`
	Title          string   `toml:"title"`
	PlotWidth      *int     `toml:"plot_width"`
	PlotHeight     *int     `toml:"plot_height"`

	Annotations []FileAnnotation `toml:"annotation"`
}

// FileAnnotation is one [[annotation]] table.
type FileAnnotation struct {
	X      float64  `toml:"x"`
	Y      float64  `toml:"y"`
	Text   string   `toml:"text"`
	Series int      `toml:"series"`
	AX     *float64 `toml:"ax"`
	AY     *float64 `toml:"ay"`
	StartX *float64 `toml:"start_x"`
	EndX   *float64 `toml:"end_x"`
	Area   *float64 `toml:"area"`
}

// UserPeak converts a to the engine's annotation form. TOML admits nan
// and inf; a non-finite position becomes 0 and a non-finite optional
// value is dropped.
func (a FileAnnotation) UserPeak() peak.UserPeak {
	return peak.UserPeak{
		X:           core.FiniteOr(a.X, 0),
		Y:           core.FiniteOr(a.Y, 0),
		Text:        a.Text,
		AX:          finitePtr(a.AX),
		AY:          finitePtr(a.AY),
		StartX:      finitePtr(a.StartX),
		EndX:        finitePtr(a.EndX),
		Area:        finitePtr(a.Area),
		SeriesIndex: a.Series,
	}
}

func finitePtr(v *float64) *float64 {
	if v == nil || !core.IsFinite(*v) {
		return nil
	}
	return v
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, fmt.Errorf("parse %s: %w", path, err)
	}
	return fc, nil
}

// DefaultConfigPath returns ~/.chromtool/config.toml, or "" when the home
// directory is unknown.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".chromtool", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies fc to cfg, skipping flags that were set
// explicitly. Annotations from the file replace any already in cfg.
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) {
	s := newConfigSetter(changed)

	s.setString("input", fc.Input, &cfg.Input)
	s.setString("out", fc.Output, &cfg.Output)
	s.setString("baseline", fc.Baseline, &cfg.Baseline)
	s.setString("markers", fc.Markers, &cfg.Markers)
	s.setString("smooth", fc.Smooth, &cfg.Smooth)
	s.setString("title", fc.Title, &cfg.Title)

	s.setInt("baseline-window", fc.BaselineWindow, &cfg.BaselineWindow)
	s.setInt("min-distance", fc.MinDistance, &cfg.MinDistance)
	s.setInt("smooth-width", fc.SmoothWidth, &cfg.SmoothWidth)
	s.setInt("align-to", fc.AlignTo, &cfg.AlignTo)
	s.setInt("width", fc.PlotWidth, &cfg.PlotWidth)
	s.setInt("height", fc.PlotHeight, &cfg.PlotHeight)

	s.setFloat("min-height", fc.MinHeight, &cfg.MinHeight)
	s.setFloat("prominence", fc.Prominence, &cfg.Prominence)
	s.setFloat("overlap", fc.Overlap, &cfg.Overlap)
	s.setFloat("marker-y", fc.MarkerY, &cfg.MarkerY)

	s.setBool("absolute", fc.Absolute, &cfg.Absolute)
	s.setBool("no-areas", fc.NoAreas, &cfg.NoAreas)
	s.setBool("warp", fc.Warp, &cfg.Warp)

	if len(fc.Colors) > 0 {
		cfg.Colors = append([]string(nil), fc.Colors...)
	}
	if len(fc.Annotations) > 0 {
		cfg.Annotations = make([]peak.UserPeak, len(fc.Annotations))
		for i, a := range fc.Annotations {
			cfg.Annotations[i] = a.UserPeak()
		}
	}
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
