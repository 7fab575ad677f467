package chromcli

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/cwbudde/algo-chrom/chrom/peak"
	"github.com/cwbudde/algo-chrom/chrom/pipeline"
)

// Process reads cfg.Input and runs the pipeline on it. Pipeline warnings
// are logged and kept in the result.
func Process(cfg Config, log zerolog.Logger) (pipeline.Result, error) {
	input, err := ReadCSVFile(cfg.Input)
	if err != nil {
		return pipeline.Result{}, err
	}
	for i := range input {
		if i < len(cfg.Colors) {
			input[i].Color = cfg.Colors[i]
		}
	}

	opts, err := cfg.PipelineOptions()
	if err != nil {
		return pipeline.Result{}, err
	}
	opts = append(opts, pipeline.WithOnPeaks(func(idx int, peaks []peak.Peak) {
		log.Debug().Int("series", idx).Str("name", input[idx].Name).Int("peaks", len(peaks)).Msg("peaks detected")
	}))

	res := pipeline.Run(input, cfg.Annotations, opts...)
	for _, w := range res.Warnings {
		log.Warn().Msg(w)
	}
	log.Info().
		Int("series", len(res.Series)).
		Int("annotations", len(res.Annotations)).
		Int("markers", len(res.Markers)).
		Msg("processed")

	return res, nil
}

// WriteResult writes res as JSON to cfg.Output, or stdout when unset.
func WriteResult(cfg Config, res pipeline.Result) error {
	w, closeFn, err := createOutput(cfg.Output)
	if err != nil {
		return err
	}
	if err := WriteJSON(w, res); err != nil {
		closeFn()
		return fmt.Errorf("write json: %w", err)
	}
	return closeFn()
}

// WritePlot renders res as PNG to cfg.Output, or stdout when unset.
func WritePlot(cfg Config, res pipeline.Result) error {
	w, closeFn, err := createOutput(cfg.Output)
	if err != nil {
		return err
	}
	opts := PlotOptions{Width: cfg.PlotWidth, Height: cfg.PlotHeight, Title: cfg.Title}
	if err := RenderPNG(w, res, opts); err != nil {
		closeFn()
		return fmt.Errorf("render png: %w", err)
	}
	return closeFn()
}
