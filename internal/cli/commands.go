package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/observe-l/xorpad/internal/analysis"
	"github.com/observe-l/xorpad/internal/dist"
	"github.com/observe-l/xorpad/internal/metrics"
	"github.com/observe-l/xorpad/internal/report"
	"github.com/observe-l/xorpad/internal/sweep"
	"github.com/observe-l/xorpad/padding"
)

func (c *CLI) newRankCmd() *cobra.Command {
	var width, height int
	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Probability that a random width x height XOR matrix has full rank",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if width < 0 || height < 0 {
				return fmt.Errorf("dimensions must be non-negative, got %dx%d", width, height)
			}
			p := padding.FullRankProbability(width, height)
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Probability of full rank for %d columns and %d rows: %s\n",
				width, height, report.FormatFloat(p))
			return err
		},
	}
	cmd.Flags().IntVar(&width, "width", 1024, "matrix columns")
	cmd.Flags().IntVar(&height, "height", 1024, "matrix rows")
	return cmd
}

func (c *CLI) newExtraCmd() *cobra.Command {
	var order, limit int
	cmd := &cobra.Command{
		Use:   "extra",
		Short: "Distribution of the extra rows a square XOR matrix needs to reach full rank",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := c.loadConfig(cmd)
			if err != nil {
				return err
			}
			if order < 0 {
				return fmt.Errorf("order must be non-negative, got %d", order)
			}
			if !cmd.Flags().Changed("max") {
				limit = cfg.Terms
			}
			a := analysis.HeightDistribution(order, limit)
			cdf := dist.Cumulative(a)

			headerStyle := lipgloss.NewStyle().Bold(true)
			t := table.New().
				Border(lipgloss.NormalBorder()).
				Headers("extra rows", "probability", "cumulative").
				StyleFunc(func(row, col int) lipgloss.Style {
					if row == table.HeaderRow {
						return headerStyle
					}
					return lipgloss.NewStyle().Padding(0, 1)
				})
			for i := range a {
				t.Row(strconv.Itoa(i), report.FormatFloat(a[i]), report.FormatFloat(cdf[i]))
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), t.Render())
			return err
		},
	}
	cmd.Flags().IntVar(&order, "order", 1024, "square matrix order (block size in bits)")
	cmd.Flags().IntVar(&limit, "max", 0, "number of terms to list (default --terms)")
	return cmd
}

func (c *CLI) newMinimumCmd() *cobra.Command {
	var (
		blockSize, blocks, matchPadding int
		target                          float64
	)
	cmd := &cobra.Command{
		Use:   "minimum",
		Short: "Padding bits shared by several blocks to reach a success probability",
		Long: `minimum finds the fewest padding bits that, spread over --blocks independent
blocks of --block-size bits, make all of them invertible with probability at
least --target. Without --target the goal is the single-block success
probability with --match-padding bits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := c.loadConfig(cmd)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("block-size") {
				blockSize = cfg.BlockSize
			}
			if !cmd.Flags().Changed("blocks") {
				blocks = cfg.Blocks
			}
			if !cmd.Flags().Changed("target") {
				if !cmd.Flags().Changed("match-padding") {
					matchPadding = cfg.PaddingBits
				}
				target = padding.FullRankProbability(blockSize, blockSize+matchPadding)
			}
			logger := loggerFromContext(cmd.Context())
			logger.Debug("searching", "block_size", blockSize, "blocks", blocks, "target", target, "terms", cfg.Terms)

			n, err := padding.MinimumPaddingBits(blockSize, blocks, target, padding.WithTerms(cfg.Terms))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Padding bits for %d blocks of %d bits reaching %s: %d\n",
				blocks, blockSize, report.FormatFloat(target), n)
			return err
		},
	}
	cmd.Flags().IntVar(&blockSize, "block-size", 0, "bits per block (default from config, 1024)")
	cmd.Flags().IntVar(&blocks, "blocks", 0, "number of blocks (default from config, 2)")
	cmd.Flags().Float64Var(&target, "target", 0, "success probability to reach")
	cmd.Flags().IntVar(&matchPadding, "match-padding", 0, "match one block padded with this many bits (default from config, 24)")
	cmd.MarkFlagsMutuallyExclusive("target", "match-padding")
	return cmd
}

func (c *CLI) newSweepCmd() *cobra.Command {
	var (
		blockSizes, paddingBits, blocks []int
		workers                         int
	)
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Evaluate a grid of block sizes, padding bits and block counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := c.loadConfig(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("block-sizes") {
				cfg.Sweep.BlockSizes = blockSizes
			}
			if cmd.Flags().Changed("padding-bits") {
				cfg.Sweep.PaddingBits = paddingBits
			}
			if cmd.Flags().Changed("blocks") {
				cfg.Sweep.Blocks = blocks
			}
			if cmd.Flags().Changed("workers") {
				cfg.Sweep.Workers = workers
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger := loggerFromContext(cmd.Context())
			grid := cfg.Grid()
			logger.Info("sweeping", "scenarios", len(grid.Scenarios()), "workers", grid.Workers)

			rec := metrics.NewRecorder()
			prog := newProgress(logger)
			results, err := sweep.Run(cmd.Context(), grid, func(r analysis.Result) {
				rec.Observe(r)
				if !r.Reachable {
					logger.Warn("target unreachable", "block_size", r.BlockSize, "padding_bits", r.PaddingBits, "blocks", r.Blocks)
				}
			})
			if err != nil {
				return fmt.Errorf("sweep: %w", err)
			}
			prog.done("sweep finished", "scenarios", len(results))

			format, _ := report.ParseFormat(cfg.Format)
			if format == report.FormatProm {
				return rec.WriteText(cmd.OutOrStdout())
			}
			return report.Write(cmd.OutOrStdout(), format, results)
		},
	}
	cmd.Flags().IntSliceVar(&blockSizes, "block-sizes", nil, "block sizes in bits")
	cmd.Flags().IntSliceVar(&paddingBits, "padding-bits", nil, "reference single-block padding bits")
	cmd.Flags().IntSliceVar(&blocks, "blocks", nil, "block counts")
	cmd.Flags().IntVar(&workers, "workers", 0, "parallel evaluations (default GOMAXPROCS)")
	return cmd
}
