package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/blob-morph/config"
	"github.com/lixenwraith/blob-morph/core"
	"github.com/lixenwraith/blob-morph/sampler"
)

// newSampleCmd reports what the sampler extracts from an image, for
// tuning spacing and thresholds without running a transition.
func newSampleCmd(opts *runOpts) *cobra.Command {
	var spacing int

	cmd := &cobra.Command{
		Use:   "sample <image>",
		Short: "Show the point cloud an image samples into",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("spacing") {
				cfg.Sampler.Spacing = spacing
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			samples, err := sampler.Load(args[0], cfg.Sampler)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "image:   %s\n", args[0])
			fmt.Fprintf(out, "spacing: %d px\n", cfg.Sampler.Spacing)
			fmt.Fprintf(out, "samples: %d\n", len(samples))
			if len(samples) == 0 {
				return nil
			}

			ext := sampler.Extent(samples)
			fmt.Fprintf(out, "extent:  %.0fx%.0f at (%.0f, %.0f)\n", ext.Width(), ext.Height(), ext.MinX, ext.MinY)

			r, g, b := meanColor(samples).RGB8()
			fmt.Fprintf(out, "mean:    #%02x%02x%02x\n", r, g, b)
			return nil
		},
	}

	cmd.Flags().IntVar(&spacing, "spacing", 0, "sample grid spacing override in pixels")

	return cmd
}

// meanColor accumulates raw channels; Color.Add clamps at 1.0 and
// would saturate over a large cloud.
func meanColor(samples []core.Sample) core.Color {
	var r, g, b float64
	for _, s := range samples {
		r += s.Color.R
		g += s.Color.G
		b += s.Color.B
	}
	n := float64(len(samples))
	return core.Color{R: r / n, G: g / n, B: b / n, A: 1}
}
