package chromcli

import (
	"fmt"
	"strconv"

	"github.com/cwbudde/algo-chrom/chrom/baseline"
	"github.com/cwbudde/algo-chrom/chrom/layout"
	"github.com/cwbudde/algo-chrom/chrom/peak"
	"github.com/cwbudde/algo-chrom/chrom/pipeline"
	"github.com/cwbudde/algo-chrom/chrom/smooth"
)

// Config holds the resolved settings of one chromtool run.
type Config struct {
	Input  string
	Output string

	Baseline       string
	BaselineWindow int

	MinHeight   float64
	MinDistance int
	Prominence  float64
	Absolute    bool

	Overlap float64
	Markers string
	MarkerY float64
	NoAreas bool

	Smooth      string
	SmoothWidth int

	AlignTo int
	Warp    bool

	Colors      []string
	Annotations []peak.UserPeak

	PlotWidth  int
	PlotHeight int
	Title      string

	Verbose bool
	Watch   bool
}

// DefaultConfig returns a Config with the engine defaults.
func DefaultConfig() Config {
	p := peak.DefaultOptions()
	return Config{
		Baseline:       baseline.None.String(),
		BaselineWindow: baseline.DefaultWindow,
		MinHeight:      p.MinHeight,
		MinDistance:    p.MinDistance,
		Prominence:     p.Prominence,
		Overlap:        layout.DefaultOverlapThreshold,
		MarkerY:        layout.DefaultMarkerY,
		Smooth:         smooth.ModeNone.String(),
		SmoothWidth:    smooth.DefaultWidth,
		AlignTo:        -1,
		PlotWidth:      1200,
		PlotHeight:     600,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Input == "" {
		return fmt.Errorf("input file is required")
	}
	if _, err := baseline.ParseMode(c.Baseline); err != nil {
		return err
	}
	if _, err := smooth.ParseMode(c.Smooth); err != nil {
		return err
	}
	if c.Markers != "" {
		if _, err := layout.ParseShape(c.Markers); err != nil {
			return err
		}
	}
	if c.MinDistance < 1 {
		return fmt.Errorf("min-distance must be >= 1, got %d", c.MinDistance)
	}
	if c.Overlap <= 0 {
		return fmt.Errorf("overlap must be positive, got %v", c.Overlap)
	}
	if c.PlotWidth <= 0 || c.PlotHeight <= 0 {
		return fmt.Errorf("plot size must be positive, got %dx%d", c.PlotWidth, c.PlotHeight)
	}
	return nil
}

// PipelineOptions translates c into pipeline options. Call Validate first.
func (c Config) PipelineOptions() ([]pipeline.Option, error) {
	bl, err := baseline.ParseMode(c.Baseline)
	if err != nil {
		return nil, err
	}
	sm, err := smooth.ParseMode(c.Smooth)
	if err != nil {
		return nil, err
	}

	return []pipeline.Option{
		pipeline.WithPeakOptions(
			peak.WithMinHeight(c.MinHeight),
			peak.WithMinDistance(c.MinDistance),
			peak.WithProminence(c.Prominence),
			peak.WithRelativeThreshold(!c.Absolute),
		),
		pipeline.WithBaseline(bl, c.BaselineWindow),
		pipeline.WithShowAreas(!c.NoAreas),
		pipeline.WithOverlapThreshold(c.Overlap),
		pipeline.WithBoundaryMarkers(c.Markers),
		pipeline.WithMarkerY(c.MarkerY),
		pipeline.WithSmoothing(sm, c.SmoothWidth),
		pipeline.WithAlignTo(c.AlignTo),
		pipeline.WithWarp(c.Warp),
	}, nil
}

// configSetter applies values while respecting flag precedence: a value is
// only written when the corresponding flag was not set explicitly.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setInt sets an int value if present and flag not changed.
func (s *configSetter) setInt(flag string, value *int, dst *int) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setFloat sets a float64 value if present and flag not changed.
func (s *configSetter) setFloat(flag string, value *float64, dst *float64) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setBool sets a bool value if present and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setIntFromString parses and sets an int from an environment value.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = i
	return nil
}

// setFloatFromString parses and sets a float64 from an environment value.
func (s *configSetter) setFloatFromString(flag, value string, dst *float64) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = f
	return nil
}

// setBoolFromString accepts "true" and "1" as true, anything else as false.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
