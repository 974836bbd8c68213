// Package report renders evaluated padding scenarios.
package report

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/observe-l/xorpad/internal/analysis"
	"github.com/observe-l/xorpad/internal/metrics"
)

// Format selects a renderer.
type Format string

const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
	FormatProm     Format = "prom"
)

// Formats lists every supported format.
var Formats = []Format{FormatText, FormatMarkdown, FormatJSON, FormatProm}

// ParseFormat maps a name to a Format.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if strings.EqualFold(s, string(f)) {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format %q (want one of %s)", s, formatList())
}

func formatList() string {
	names := make([]string, len(Formats))
	for i, f := range Formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

// Write renders results to w in format f.
func Write(w io.Writer, f Format, results []analysis.Result) error {
	switch f {
	case FormatText:
		return WriteText(w, results)
	case FormatMarkdown:
		return WriteMarkdown(w, results)
	case FormatJSON:
		return WriteJSON(w, results)
	case FormatProm:
		rec := metrics.NewRecorder()
		for _, r := range results {
			rec.Observe(r)
		}
		return rec.WriteText(w)
	}
	return fmt.Errorf("unknown format %q", f)
}

// WriteText prints three lines per result: non-singularity, single-block
// success and the shared-padding minimum. Results are separated by a blank
// line.
func WriteText(w io.Writer, results []analysis.Result) error {
	bw := bufio.NewWriter(w)
	for i, r := range results {
		if i > 0 {
			fmt.Fprintln(bw)
		}
		fmt.Fprintln(bw, "Probability to be non-singular:", FormatFloat(r.NonSingular))
		fmt.Fprintf(bw, "Success probability for %d padding bits: %s\n", r.PaddingBits, FormatFloat(r.Success))
		fmt.Fprintf(bw, "Padding bits for %s with at least the same success probability: %s\n",
			blocksLabel(r.Blocks), minimumLabel(r))
	}
	return bw.Flush()
}

// WriteMarkdown writes one table per block size.
func WriteMarkdown(w io.Writer, results []analysis.Result) error {
	bySize := map[int][]analysis.Result{}
	for _, r := range results {
		bySize[r.BlockSize] = append(bySize[r.BlockSize], r)
	}
	sizes := make([]int, 0, len(bySize))
	for s := range bySize {
		sizes = append(sizes, s)
	}
	sort.Ints(sizes)

	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "# Padding Report")
	fmt.Fprintln(bw)
	for _, size := range sizes {
		rows := bySize[size]
		fmt.Fprintf(bw, "## Block size %d\n\n", size)
		fmt.Fprintf(bw, "Non-singular probability: %s\n\n", FormatFloat(rows[0].NonSingular))
		fmt.Fprintln(bw, "| Padding | Success | Blocks | Minimum bits | Achieved | Overhead/block | Keystream blocks |")
		fmt.Fprintln(bw, "|---:|---:|---:|---:|---:|---:|---:|")
		for _, r := range rows {
			if !r.Reachable {
				fmt.Fprintf(bw, "| %d | %s | %d | unreachable | | | |\n", r.PaddingBits, FormatFloat(r.Success), r.Blocks)
				continue
			}
			fmt.Fprintf(bw, "| %d | %s | %d | %d | %s | %.2f | %d |\n",
				r.PaddingBits, FormatFloat(r.Success), r.Blocks, r.MinimumBits,
				FormatFloat(r.Achieved), r.Overhead(), r.KeystreamBlocks)
		}
		fmt.Fprintln(bw)
	}
	fmt.Fprintln(bw, "---")
	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "Notes:")
	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "- Success is the probability one block becomes invertible with the given padding.")
	fmt.Fprintln(bw, "- Minimum bits is the padding shared by all blocks that reaches at least the same probability.")
	fmt.Fprintf(bw, "- Keystream blocks assume %d-byte keystream blocks.\n", analysis.KeystreamBlockBytes)
	return bw.Flush()
}

// FormatFloat prints the shortest representation of v that round-trips.
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func blocksLabel(n int) string {
	switch n {
	case 1:
		return "one block"
	case 2:
		return "two blocks"
	}
	return strconv.Itoa(n) + " blocks"
}

func minimumLabel(r analysis.Result) string {
	if !r.Reachable {
		return "unreachable"
	}
	return strconv.Itoa(r.MinimumBits)
}
