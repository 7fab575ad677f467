package chromcli

import "os"

// ApplyEnvConfig applies configuration from CHROMTOOL_* environment
// variables, skipping flags that were set explicitly.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("baseline", os.Getenv("CHROMTOOL_BASELINE"), &cfg.Baseline)
	s.setString("markers", os.Getenv("CHROMTOOL_MARKERS"), &cfg.Markers)
	s.setString("smooth", os.Getenv("CHROMTOOL_SMOOTH"), &cfg.Smooth)

	if err := s.setIntFromString("baseline-window", os.Getenv("CHROMTOOL_BASELINE_WINDOW"), &cfg.BaselineWindow); err != nil {
		return err
	}
	if err := s.setIntFromString("min-distance", os.Getenv("CHROMTOOL_MIN_DISTANCE"), &cfg.MinDistance); err != nil {
		return err
	}
	if err := s.setIntFromString("smooth-width", os.Getenv("CHROMTOOL_SMOOTH_WIDTH"), &cfg.SmoothWidth); err != nil {
		return err
	}
	if err := s.setIntFromString("align-to", os.Getenv("CHROMTOOL_ALIGN_TO"), &cfg.AlignTo); err != nil {
		return err
	}

	if err := s.setFloatFromString("min-height", os.Getenv("CHROMTOOL_MIN_HEIGHT"), &cfg.MinHeight); err != nil {
		return err
	}
	if err := s.setFloatFromString("prominence", os.Getenv("CHROMTOOL_PROMINENCE"), &cfg.Prominence); err != nil {
		return err
	}
	if err := s.setFloatFromString("overlap", os.Getenv("CHROMTOOL_OVERLAP"), &cfg.Overlap); err != nil {
		return err
	}

	s.setBoolFromString("absolute", os.Getenv("CHROMTOOL_ABSOLUTE"), &cfg.Absolute)
	s.setBoolFromString("no-areas", os.Getenv("CHROMTOOL_NO_AREAS"), &cfg.NoAreas)
	s.setBoolFromString("verbose", os.Getenv("CHROMTOOL_VERBOSE"), &cfg.Verbose)

	return nil
}
