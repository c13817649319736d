// Package bloom provides probabilistic URL membership for batch de-duplication.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Filter records URLs in a Bloom filter.
// It is not safe for concurrent use.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected URLs
// with the given false positive rate. n is raised to 1 when zero.
func NewFilter(n uint, fpRate float64) *Filter {
	if n == 0 {
		n = 1
	}
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// TestAndAdd records the URL and reports whether it might have been
// recorded before the call. False positives are possible; false negatives
// are not.
func (f *Filter) TestAndAdd(url string) bool {
	return f.f.TestAndAddString(url)
}
