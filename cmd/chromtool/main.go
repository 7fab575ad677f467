// Command chromtool detects, annotates and plots chromatogram peaks.
//
// Usage:
//
//	chromtool detect [flags] trace.csv
//	chromtool plot [flags] trace.csv
//	chromtool kernels [mode ...]
//
// Settings are resolved from flags, then CHROMTOOL_* environment variables,
// then the TOML config file (default $HOME/.chromtool/config.toml).
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/cwbudde/algo-chrom/chrom/pipeline"
	"github.com/cwbudde/algo-chrom/internal/chromcli"
)

var exampleUsage = strings.TrimSpace(`
  chromtool detect run01.csv --baseline rolling --out peaks.json
  chromtool plot run01.csv --smooth gaussian --markers auto --out run01.png
  chromtool detect runs.csv --align-to 0 --warp --watch
  chromtool kernels gaussian --width 9
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

type writeFunc func(cfg chromcli.Config, res pipeline.Result) error

func main() {
	cfg := chromcli.DefaultConfig()
	var cfgPath string

	log := chromcli.Logger()

	root := &cobra.Command{
		Use:           "chromtool",
		Short:         "Detect, annotate and plot chromatogram peaks",
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.chromtool/config.toml)")
	pf.StringVar(&cfg.Output, "out", cfg.Output, "output file (default: stdout for detect, <input>.png for plot)")
	pf.StringVar(&cfg.Baseline, "baseline", cfg.Baseline, "baseline correction: none, linear or rolling")
	pf.IntVar(&cfg.BaselineWindow, "baseline-window", cfg.BaselineWindow, "rolling baseline window in samples")
	pf.Float64Var(&cfg.MinHeight, "min-height", cfg.MinHeight, "minimum peak height (fraction of max unless --absolute)")
	pf.IntVar(&cfg.MinDistance, "min-distance", cfg.MinDistance, "minimum distance between peaks in samples")
	pf.Float64Var(&cfg.Prominence, "prominence", cfg.Prominence, "minimum peak prominence (fraction of max unless --absolute)")
	pf.BoolVar(&cfg.Absolute, "absolute", cfg.Absolute, "treat --min-height and --prominence as absolute intensities")
	pf.Float64Var(&cfg.Overlap, "overlap", cfg.Overlap, "retention-time distance below which labels are grouped")
	pf.StringVar(&cfg.Markers, "markers", cfg.Markers, "boundary marker shape: triangle, diamond, auto or none (default: triangle start, diamond end)")
	pf.Float64Var(&cfg.MarkerY, "marker-y", cfg.MarkerY, "vertical position of boundary markers")
	pf.BoolVar(&cfg.NoAreas, "no-areas", cfg.NoAreas, "omit area labels on detected peaks")
	pf.StringVar(&cfg.Smooth, "smooth", cfg.Smooth, "smoothing: none, moving-average, triangular, gaussian or hann")
	pf.IntVar(&cfg.SmoothWidth, "smooth-width", cfg.SmoothWidth, "smoothing kernel width in samples")
	pf.IntVar(&cfg.AlignTo, "align-to", cfg.AlignTo, "align all series to this reference series index (-1 disables)")
	pf.BoolVar(&cfg.Warp, "warp", cfg.Warp, "refine alignment with a linear time warp fitted on matched apexes")
	pf.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "enable debug logging")
	pf.BoolVar(&cfg.Watch, "watch", cfg.Watch, "reprocess when the input or config file changes")

	detect := &cobra.Command{
		Use:   "detect [input.csv]",
		Short: "Detect peaks and write the annotated result as JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, cfg, cfgPath, chromcli.WriteResult)
		},
	}

	plot := &cobra.Command{
		Use:   "plot [input.csv]",
		Short: "Detect peaks and render the annotated chromatogram as PNG",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, cfg, cfgPath, writePlot)
		},
	}
	plot.Flags().IntVar(&cfg.PlotWidth, "width", cfg.PlotWidth, "image width in pixels")
	plot.Flags().IntVar(&cfg.PlotHeight, "height", cfg.PlotHeight, "image height in pixels")
	plot.Flags().StringVar(&cfg.Title, "title", cfg.Title, "chart title")

	root.AddCommand(detect, plot, newKernelsCommand())

	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("chromtool")
		os.Exit(1)
	}
}

// resolveConfig layers the config file and environment under the flag
// values in base. The first positional argument is the input file.
func resolveConfig(cmd *cobra.Command, args []string, base chromcli.Config, cfgPath string) (chromcli.Config, string, error) {
	cfg := base

	cfgFile := cfgPath
	if cfgFile == "" {
		cfgFile = chromcli.DefaultConfigPath()
	}

	changed := map[string]bool{}
	cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })
	if len(args) > 0 {
		cfg.Input = args[0]
		changed["input"] = true
	}

	if cfgFile != "" && chromcli.FileExists(cfgFile) {
		fc, err := chromcli.LoadFileConfig(cfgFile)
		if err != nil {
			return cfg, cfgFile, fmt.Errorf("load config: %w", err)
		}
		chromcli.ApplyFileConfig(&cfg, fc, changed)
	}

	if err := chromcli.ApplyEnvConfig(&cfg, changed); err != nil {
		return cfg, cfgFile, err
	}

	if err := cfg.Validate(); err != nil {
		return cfg, cfgFile, err
	}
	return cfg, cfgFile, nil
}

func run(cmd *cobra.Command, args []string, base chromcli.Config, cfgPath string, write writeFunc) error {
	cfg, cfgFile, err := resolveConfig(cmd, args, base, cfgPath)
	if err != nil {
		return err
	}
	chromcli.SetVerbose(cfg.Verbose)
	log := chromcli.Logger()
	log.Debug().Interface("config", cfg).Msg("configuration")

	once := func() error {
		// Re-resolve so config file edits apply in watch mode.
		cfg, _, err := resolveConfig(cmd, args, base, cfgPath)
		if err != nil {
			return err
		}
		res, err := chromcli.Process(cfg, log)
		if err != nil {
			return err
		}
		return write(cfg, res)
	}

	if err := once(); err != nil {
		if !cfg.Watch {
			return err
		}
		log.Error().Err(err).Msg("initial run failed")
	}
	if !cfg.Watch {
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	paths := []string{cfg.Input}
	if cfgFile != "" && chromcli.FileExists(cfgFile) {
		paths = append(paths, cfgFile)
	}
	return chromcli.Watch(ctx, paths, chromcli.DefaultDebounce, once, log)
}

func writePlot(cfg chromcli.Config, res pipeline.Result) error {
	if cfg.Output == "" {
		cfg.Output = strings.TrimSuffix(cfg.Input, filepath.Ext(cfg.Input)) + ".png"
	}
	if err := chromcli.WritePlot(cfg, res); err != nil {
		return err
	}
	log := chromcli.Logger()
	log.Info().Str("file", cfg.Output).Msg("plot written")
	return nil
}
