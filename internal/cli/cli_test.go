package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/observe-l/xorpad/padding"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := New(&stdout, &stderr).Execute(context.Background(), args)
	return stdout.String(), stderr.String(), err
}

func TestDriverDefault(t *testing.T) {
	out, _, err := run(t)
	require.NoError(t, err)
	want := "Probability to be non-singular: 0.2887880950866024\n" +
		"Success probability for 24 padding bits: 0.9999999403953564\n" +
		"Padding bits for two blocks with at least the same success probability: 29\n"
	assert.Equal(t, want, out)
}

func TestDriverRejectsArgs(t *testing.T) {
	_, _, err := run(t, "extra-arg")
	assert.Error(t, err)
}

func TestDriverVerboseLogsToStderr(t *testing.T) {
	out, errOut, err := run(t, "-v")
	require.NoError(t, err)
	assert.Contains(t, out, "Padding bits for two blocks")
	assert.Contains(t, errOut, "evaluated")
	assert.NotContains(t, out, "evaluated")
}

func TestDriverJSONFormat(t *testing.T) {
	out, _, err := run(t, "--format", "json")
	require.NoError(t, err)
	var doc struct {
		Results []struct {
			MinimumBits int  `json:"minimum_bits"`
			Reachable   bool `json:"reachable"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	require.Len(t, doc.Results, 1)
	assert.Equal(t, 29, doc.Results[0].MinimumBits)
	assert.True(t, doc.Results[0].Reachable)
}

func TestDriverConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "xorpad.toml")
	require.NoError(t, os.WriteFile(path, []byte("blocks = 3\nformat = \"markdown\"\n"), 0o644))

	out, _, err := run(t, "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "## Block size 1024")
	assert.Contains(t, out, "| 24 | 0.9999999403953564 | 3 | 33 |")

	// flags override the file
	out, _, err = run(t, "--config", path, "--format", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "Padding bits for 3 blocks with at least the same success probability: 33\n")
}

func TestDriverBadFormat(t *testing.T) {
	_, _, err := run(t, "--format", "xml")
	assert.ErrorContains(t, err, "unknown format")
}

func TestDriverUnreachable(t *testing.T) {
	out, errOut, err := run(t, "--terms", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "success probability: unreachable")
	assert.Contains(t, errOut, "unreachable")
}

func TestRankCmd(t *testing.T) {
	out, _, err := run(t, "rank", "--width", "1", "--height", "1")
	require.NoError(t, err)
	assert.Equal(t, "Probability of full rank for 1 columns and 1 rows: 0.5\n", out)

	_, _, err = run(t, "rank", "--width", "-1")
	assert.Error(t, err)
}

func TestExtraCmd(t *testing.T) {
	out, _, err := run(t, "extra", "--order", "1", "--max", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "extra rows")
	assert.Contains(t, out, "0.125")
	assert.Contains(t, out, "0.875")
	assert.NotContains(t, out, "0.0625")
}

func TestMinimumCmd(t *testing.T) {
	out, _, err := run(t, "minimum")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out, ": 29\n"), out)

	out, _, err = run(t, "minimum", "--blocks", "1", "--target", "0.9", "--block-size", "1", "--terms", "8")
	require.NoError(t, err)
	assert.Equal(t, "Padding bits for 1 blocks of 1 bits reaching 0.9: 3\n", out)

	out, _, err = run(t, "minimum", "--blocks", "2", "--target", "1", "--block-size", "64")
	require.NoError(t, err)
	assert.Equal(t, "Padding bits for 2 blocks of 64 bits reaching 1: 57\n", out)

	_, _, err = run(t, "minimum", "--blocks", "1", "--target", "0.9", "--block-size", "1", "--terms", "2")
	assert.ErrorIs(t, err, padding.ErrTargetUnreachable)

	_, _, err = run(t, "minimum", "--target", "0.5", "--match-padding", "3")
	assert.Error(t, err, "--target and --match-padding are exclusive")
}

func TestSweepCmd(t *testing.T) {
	out, _, err := run(t, "sweep", "--block-sizes", "1024", "--padding-bits", "24", "--blocks", "1,2,3,4", "--workers", "2")
	require.NoError(t, err)
	for _, want := range []string{
		"Padding bits for one block with at least the same success probability: 24\n",
		"Padding bits for two blocks with at least the same success probability: 29\n",
		"Padding bits for 3 blocks with at least the same success probability: 33\n",
		"Padding bits for 4 blocks with at least the same success probability: 37\n",
	} {
		assert.Contains(t, out, want)
	}
}

func TestSweepCmdProm(t *testing.T) {
	out, _, err := run(t, "sweep", "--block-sizes", "256", "--padding-bits", "16", "--blocks", "2", "--format", "prom")
	require.NoError(t, err)
	assert.Contains(t, out, `xorpad_minimum_padding_bits{block_size="256",blocks="2",padding_bits="16"} 21`)
}

func TestSweepCmdInvalid(t *testing.T) {
	_, _, err := run(t, "sweep", "--block-sizes", "0")
	assert.ErrorContains(t, err, "sweep.block_sizes")
}
