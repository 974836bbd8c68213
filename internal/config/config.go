// Package config loads the TOML settings of the padding analysis tool.
//
// Example file:
//
//	block_size   = 1024
//	padding_bits = 24
//	blocks       = 2
//	terms        = 56
//	format       = "markdown"
//
//	[sweep]
//	block_sizes  = [256, 1024, 4096]
//	padding_bits = [16, 24, 32]
//	blocks       = [1, 2, 4, 8]
//	workers      = 4
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/observe-l/xorpad/internal/analysis"
	"github.com/observe-l/xorpad/internal/report"
	"github.com/observe-l/xorpad/internal/sweep"
	"github.com/observe-l/xorpad/padding"
)

// Config holds the driver scenario, the sweep grid and the output format.
type Config struct {
	BlockSize   int    `toml:"block_size"`
	PaddingBits int    `toml:"padding_bits"`
	Blocks      int    `toml:"blocks"`
	Terms       int    `toml:"terms"`
	Format      string `toml:"format"`
	Sweep       Sweep  `toml:"sweep"`
}

// Sweep is the [sweep] section.
type Sweep struct {
	BlockSizes  []int `toml:"block_sizes"`
	PaddingBits []int `toml:"padding_bits"`
	Blocks      []int `toml:"blocks"`
	Workers     int   `toml:"workers"`
}

// Default returns the settings the tool runs with when no file is given.
func Default() Config {
	return Config{
		BlockSize:   1024,
		PaddingBits: 24,
		Blocks:      2,
		Terms:       padding.DefaultTerms,
		Format:      string(report.FormatText),
		Sweep: Sweep{
			BlockSizes:  []int{256, 1024, 4096},
			PaddingBits: []int{16, 24, 32},
			Blocks:      []int{1, 2, 4, 8},
		},
	}
}

// Load reads path over the defaults. Keys the file sets replace the default
// value; unknown keys are an error.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("load config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	return cfg, cfg.Validate()
}

// Validate checks value ranges and the format name.
func (c Config) Validate() error {
	var errs []error
	if c.BlockSize < 1 {
		errs = append(errs, fmt.Errorf("block_size must be positive, got %d", c.BlockSize))
	}
	if c.PaddingBits < 0 {
		errs = append(errs, fmt.Errorf("padding_bits must be non-negative, got %d", c.PaddingBits))
	}
	if c.Blocks < 0 {
		errs = append(errs, fmt.Errorf("blocks must be non-negative, got %d", c.Blocks))
	}
	if c.Terms < 1 {
		errs = append(errs, fmt.Errorf("terms must be positive, got %d", c.Terms))
	}
	if _, err := report.ParseFormat(c.Format); err != nil {
		errs = append(errs, err)
	}
	for _, v := range c.Sweep.BlockSizes {
		if v < 1 {
			errs = append(errs, fmt.Errorf("sweep.block_sizes must be positive, got %d", v))
		}
	}
	for _, v := range c.Sweep.PaddingBits {
		if v < 0 {
			errs = append(errs, fmt.Errorf("sweep.padding_bits must be non-negative, got %d", v))
		}
	}
	for _, v := range c.Sweep.Blocks {
		if v < 0 {
			errs = append(errs, fmt.Errorf("sweep.blocks must be non-negative, got %d", v))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Scenario is the single driver scenario.
func (c Config) Scenario() analysis.Scenario {
	return analysis.Scenario{
		BlockSize:   c.BlockSize,
		PaddingBits: c.PaddingBits,
		Blocks:      c.Blocks,
		Terms:       c.Terms,
	}
}

// Grid is the sweep grid.
func (c Config) Grid() sweep.Grid {
	return sweep.Grid{
		BlockSizes:  c.Sweep.BlockSizes,
		PaddingBits: c.Sweep.PaddingBits,
		Blocks:      c.Sweep.Blocks,
		Terms:       c.Terms,
		Workers:     c.Sweep.Workers,
	}
}
