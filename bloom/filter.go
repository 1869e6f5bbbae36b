// Package bloom provides resolved-title deduplication using Bloom filters.
package bloom

import (
	"github.com/bits-and-blooms/bloom/v3"

	wikicrawl "github.com/PamanGie/crawling-wikipedia"
)

// Ensure Filter implements wikicrawl.TitleSet at compile time.
var _ wikicrawl.TitleSet = (*Filter)(nil)

// Filter wraps a Bloom filter tracking page titles already accepted within
// one crawl run.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected titles with
// the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add records a title in the filter.
func (f *Filter) Add(title string) {
	f.f.AddString(title)
}

// Seen returns true if the title might have been recorded already.
// False positives are possible; false negatives are not.
func (f *Filter) Seen(title string) bool {
	return f.f.TestString(title)
}

// EstimatedCount returns the approximate number of titles in the filter.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}
