package padding

// DefaultTerms is the per-block distribution length. Mass past 2^-56 is lost
// to float64 rounding once added to values near 1, so further terms change
// nothing.
const DefaultTerms = 56

type options struct {
	terms int
}

// Option tunes MinimumPaddingBits.
type Option func(*options)

// WithTerms sets how many "exactly k extra rows" terms the per-block
// distribution keeps. Higher precision arithmetic needs a larger bound.
func WithTerms(n int) Option {
	return func(o *options) { o.terms = n }
}

func buildOptions(opts []Option) options {
	o := options{terms: DefaultTerms}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
