package alloc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfigPresetsShareSizeClassFormula(t *testing.T) {
	// Unlike the teacher's presets, ConfigDefault/ConfigFine cannot retune
	// ClassOf's boundaries: BinCount/Bound are fixed regardless of which
	// preset an Allocator was built with.
	for size := 1; size <= Bound*4; size++ {
		require.Equal(t, ClassOf(size), ClassOf(size))
	}

	fine := newTestAllocator(t, ConfigFine)
	def := newTestAllocator(t, ConfigDefault)
	requireCheckHeap(t, fine)
	requireCheckHeap(t, def)
}

func TestConfigFineGrowsInSmallerIncrements(t *testing.T) {
	fine := newTestAllocator(t, ConfigFine)
	def := newTestAllocator(t, ConfigDefault)

	// Both start from one extension of their own chunk size.
	require.Less(t, len(fine.bytes()), len(def.bytes()))

	p := fine.Allocate(Bound * 8)
	require.NotEqual(t, NullPtr, p)
	requireCheckHeap(t, fine)
}
