// Package bloom provides duplicate-upload detection using Bloom filters.
package bloom

import (
	"encoding/binary"

	"github.com/bits-and-blooms/bloom/v3"
)

// Filter tracks content hashes of already-processed uploads so identical
// files re-uploaded in the same session are decoded once.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected uploads
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add records a content hash in the filter.
func (f *Filter) Add(hash uint64) {
	f.f.Add(key(hash))
}

// Test returns true if the content hash might already be recorded.
// False positives are possible; false negatives are not.
func (f *Filter) Test(hash uint64) bool {
	return f.f.Test(key(hash))
}

// EstimatedCount returns the approximate number of recorded uploads.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}

func key(hash uint64) []byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], hash)
	return b[:]
}
