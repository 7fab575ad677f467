package main

import (
	"fmt"
	"io"
	"math"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-chrom/chrom/smooth"
	"github.com/cwbudde/algo-chrom/internal/vecmath"
)

var kernelModes = []smooth.Mode{smooth.ModeMovingAverage, smooth.ModeTriangular, smooth.ModeGaussian, smooth.ModeHann}

func newKernelsCommand() *cobra.Command {
	width := smooth.DefaultWidth

	cmd := &cobra.Command{
		Use:   "kernels [mode ...]",
		Short: "Print properties of the smoothing kernels",
		Long: "Prints, for each smoothing mode, the kernel width, its center and edge\n" +
			"weights and the white-noise gain sqrt(sum(k^2)). Without arguments all\n" +
			"modes are listed. A footer names the vector kernel variant in use.",
		RunE: func(cmd *cobra.Command, args []string) error {
			modes := kernelModes
			if len(args) > 0 {
				modes = nil
				for _, name := range args {
					m, err := smooth.ParseMode(name)
					if err != nil {
						return err
					}
					modes = append(modes, m)
				}
			}
			return printKernels(cmd.OutOrStdout(), modes, width)
		},
	}
	cmd.Flags().IntVar(&width, "width", width, "kernel width in samples")

	return cmd
}

func printKernels(w io.Writer, modes []smooth.Mode, width int) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Mode\tWidth\tCenter\tEdge\tNoise Gain\tWeights\n"); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "----\t-----\t------\t----\t----------\t-------\n"); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, m := range modes {
		k, err := smooth.Kernel(m, width)
		if err != nil {
			return err
		}

		var energy float64
		weights := make([]string, len(k))
		for i, v := range k {
			energy += v * v
			weights[i] = fmt.Sprintf("%.3f", v)
		}

		if _, err := fmt.Fprintf(tw, "%s\t%d\t%.4f\t%.4f\t%.4f\t%s\n",
			m, len(k), k[len(k)/2], k[0], math.Sqrt(energy), strings.Join(weights, " "),
		); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "\nvector kernels: %s (registered: %s)\n",
		vecmath.Implementation(), strings.Join(vecmath.Variants(), ", "))
	return err
}
