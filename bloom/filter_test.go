package bloom_test

import (
	"testing"

	"github.com/jilee1212/sitegen/bloom"
	"github.com/stretchr/testify/assert"
)

func TestFilter_AddAndTest(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)

	// Hash not yet recorded should return false
	assert.False(t, f.Test(0xdeadbeef))

	f.Add(0xdeadbeef)

	// Now it should return true
	assert.True(t, f.Test(0xdeadbeef))

	// Different hash should still return false
	assert.False(t, f.Test(0xcafebabe))
}

func TestFilter_EstimatedCount(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)

	// Empty filter should have count near 0
	assert.Equal(t, uint(0), f.EstimatedCount())

	f.Add(1)
	f.Add(2)
	f.Add(3)

	// Estimated count should be approximately 3
	count := f.EstimatedCount()
	assert.True(t, count >= 2 && count <= 4, "expected count near 3, got %d", count)
}

func TestFilter_AddIsIdempotent(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)

	const hash = uint64(0x1234)

	f.Add(hash)
	countAfterFirst := f.EstimatedCount()

	// Re-adding the same hash should not change the filter
	f.Add(hash)
	f.Add(hash)
	f.Add(hash)

	assert.Equal(t, countAfterFirst, f.EstimatedCount())
	assert.True(t, f.Test(hash))
}

func TestFilter_FalsePositiveRate(t *testing.T) {
	t.Parallel()

	const (
		numItems   = 10000
		fpRate     = 0.01
		testProbes = 10000
	)

	f := bloom.NewFilter(numItems, fpRate)

	for i := range numItems {
		f.Add(uint64(i))
	}

	// Probe with hashes that were NOT added
	falsePositives := 0
	for i := range testProbes {
		if f.Test(uint64(numItems + i)) {
			falsePositives++
		}
	}

	// False positive rate should be approximately 1%
	// Allow up to 2% to account for statistical variance
	actualRate := float64(falsePositives) / float64(testProbes)
	assert.Less(t, actualRate, 0.02, "false positive rate %f exceeds 2%%", actualRate)
}
