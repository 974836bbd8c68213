// Package cli implements the padding_analysis command line.
//
// Running the root command with no arguments evaluates the configured
// scenario (1024-bit blocks, 24 padding bits, two blocks by default) and
// prints the three driver figures. Subcommands expose each calculation on
// its own:
//
//   - rank: full rank probability of a width x height matrix
//   - extra: distribution of the extra rows a square matrix needs
//   - minimum: shared padding bits for several blocks
//   - sweep: a grid of scenarios evaluated in parallel
//
// All commands accept --config (TOML), --terms and --verbose. --format
// applies to the driver and to sweep.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/observe-l/xorpad/internal/analysis"
	"github.com/observe-l/xorpad/internal/config"
	"github.com/observe-l/xorpad/internal/report"
)

// CLI carries the writers and the persistent flag values.
type CLI struct {
	stdout io.Writer
	stderr io.Writer

	verbose    bool
	configPath string
	format     string
	terms      int
}

// New returns a CLI writing results to stdout and logs to stderr.
func New(stdout, stderr io.Writer) *CLI {
	return &CLI{stdout: stdout, stderr: stderr}
}

// RootCommand builds the command tree.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "padding_analysis",
		Short: "Size padding bits for random XOR matrices",
		Long: `padding_analysis estimates how likely a random binary matrix is invertible
and how many padding rows several data blocks need to reach a target
success probability.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if c.verbose {
				level = log.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(c.stderr, level)))
		},
		RunE: c.runDriver,
	}
	root.SetOut(c.stdout)
	root.SetErr(c.stderr)

	pf := root.PersistentFlags()
	pf.BoolVarP(&c.verbose, "verbose", "v", false, "enable debug logging")
	pf.StringVarP(&c.configPath, "config", "c", "", "TOML config file")
	pf.StringVarP(&c.format, "format", "f", "", "output format: text, markdown, json, prom")
	pf.IntVar(&c.terms, "terms", 0, "per-block distribution length (default 56)")

	root.AddCommand(c.newRankCmd())
	root.AddCommand(c.newExtraCmd())
	root.AddCommand(c.newMinimumCmd())
	root.AddCommand(c.newSweepCmd())
	return root
}

// Execute runs the command line with args.
func (c *CLI) Execute(ctx context.Context, args []string) error {
	if args == nil {
		// cobra falls back to os.Args for nil
		args = []string{}
	}
	root := c.RootCommand()
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

// loadConfig resolves the file and the persistent flags into a Config.
func (c *CLI) loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if c.configPath != "" {
		var err error
		if cfg, err = config.Load(c.configPath); err != nil {
			return config.Config{}, err
		}
		loggerFromContext(cmd.Context()).Debug("loaded config", "path", c.configPath)
	}
	if c.format != "" {
		cfg.Format = c.format
	}
	if c.terms != 0 {
		cfg.Terms = c.terms
	}
	return cfg, cfg.Validate()
}

func (c *CLI) runDriver(cmd *cobra.Command, _ []string) error {
	cfg, err := c.loadConfig(cmd)
	if err != nil {
		return err
	}
	logger := loggerFromContext(cmd.Context())
	s := cfg.Scenario()
	logger.Debug("evaluating", "block_size", s.BlockSize, "padding_bits", s.PaddingBits, "blocks", s.Blocks, "terms", s.Terms)

	prog := newProgress(logger)
	res, err := analysis.Evaluate(cmd.Context(), s)
	if err != nil {
		return fmt.Errorf("evaluate: %w", err)
	}
	prog.done("evaluated", "minimum_bits", res.MinimumBits)
	if !res.Reachable {
		logger.Warn("target unreachable within truncated distribution", "terms", s.Terms)
	}
	format, _ := report.ParseFormat(cfg.Format)
	return report.Write(cmd.OutOrStdout(), format, []analysis.Result{res})
}
