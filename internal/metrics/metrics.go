// Package metrics exposes evaluated padding scenarios as Prometheus gauges so
// they can be dropped into a node_exporter textfile directory.
package metrics

import (
	"fmt"
	"io"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/observe-l/xorpad/internal/analysis"
)

const namespace = "xorpad"

// Recorder owns a private registry; nothing is registered globally.
type Recorder struct {
	reg *prometheus.Registry

	fullRank    *prometheus.GaugeVec
	success     *prometheus.GaugeVec
	minimumBits *prometheus.GaugeVec
	evaluations *prometheus.CounterVec
}

// NewRecorder returns a Recorder with its gauges and counter registered.
func NewRecorder() *Recorder {
	r := &Recorder{
		reg: prometheus.NewRegistry(),
		fullRank: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "full_rank_probability",
			Help:      "Probability that a square random XOR matrix of the block size is invertible.",
		}, []string{"block_size"}),
		success: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "success_probability",
			Help:      "Probability that one block becomes invertible with the given padding bits.",
		}, []string{"block_size", "padding_bits"}),
		minimumBits: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "minimum_padding_bits",
			Help:      "Padding bits shared by the blocks that match the single-block success probability.",
		}, []string{"block_size", "padding_bits", "blocks"}),
		evaluations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "evaluations_total",
			Help:      "Evaluated scenarios by outcome.",
		}, []string{"outcome"}),
	}
	r.reg.MustRegister(r.fullRank, r.success, r.minimumBits, r.evaluations)
	return r
}

// Observe records res. Unreachable minimums are counted but leave no gauge.
func (r *Recorder) Observe(res analysis.Result) {
	size := strconv.Itoa(res.BlockSize)
	pad := strconv.Itoa(res.PaddingBits)
	r.fullRank.WithLabelValues(size).Set(res.NonSingular)
	r.success.WithLabelValues(size, pad).Set(res.Success)
	if !res.Reachable {
		r.evaluations.WithLabelValues("unreachable").Inc()
		return
	}
	r.minimumBits.WithLabelValues(size, pad, strconv.Itoa(res.Blocks)).Set(float64(res.MinimumBits))
	r.evaluations.WithLabelValues("ok").Inc()
}

// WriteText writes the text exposition format of everything recorded.
func (r *Recorder) WriteText(w io.Writer) error {
	families, err := r.reg.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("write %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
