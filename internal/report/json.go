package report

import (
	"io"

	"github.com/francoispqt/gojay"

	"github.com/observe-l/xorpad/internal/analysis"
)

type jsonResult analysis.Result

func (r *jsonResult) MarshalJSONObject(enc *gojay.Encoder) {
	enc.IntKey("block_size", r.BlockSize)
	enc.IntKey("padding_bits", r.PaddingBits)
	enc.IntKey("blocks", r.Blocks)
	enc.IntKey("terms", r.Terms)
	enc.Float64Key("non_singular", r.NonSingular)
	enc.Float64Key("success", r.Success)
	enc.BoolKey("reachable", r.Reachable)
	if r.Reachable {
		enc.IntKey("minimum_bits", r.MinimumBits)
		enc.Float64Key("achieved", r.Achieved)
		enc.Float64Key("overhead_per_block", analysis.Result(*r).Overhead())
		enc.IntKey("keystream_blocks", r.KeystreamBlocks)
	}
}

func (r *jsonResult) IsNil() bool { return r == nil }

type jsonResults []analysis.Result

func (rs jsonResults) MarshalJSONArray(enc *gojay.Encoder) {
	for i := range rs {
		enc.Object((*jsonResult)(&rs[i]))
	}
}

func (rs jsonResults) IsNil() bool { return rs == nil }

type jsonDocument struct {
	results jsonResults
}

func (d *jsonDocument) MarshalJSONObject(enc *gojay.Encoder) {
	enc.ArrayKey("results", d.results)
}

func (d *jsonDocument) IsNil() bool { return d == nil }

// WriteJSON writes {"results": [...]} followed by a newline.
func WriteJSON(w io.Writer, results []analysis.Result) error {
	if results == nil {
		results = []analysis.Result{}
	}
	enc := gojay.BorrowEncoder(w)
	defer enc.Release()
	if err := enc.EncodeObject(&jsonDocument{results: results}); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}
