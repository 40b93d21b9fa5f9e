// Package bloom provides candidate-path deduplication using Bloom filters.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Filter tracks candidate document paths that have already been queued for
// scoring, so a path repeated on the command line is only processed once.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected paths
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// AddIfNew records a path and reports whether it was new.
// False "seen" results are possible at the configured rate; a seen path is
// never reported as new.
func (f *Filter) AddIfNew(path string) bool {
	return !f.f.TestAndAddString(path)
}

// Seen returns true if the path might have been recorded.
func (f *Filter) Seen(path string) bool {
	return f.f.TestString(path)
}

// EstimatedCount returns the approximate number of recorded paths.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}
