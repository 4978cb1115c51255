package alloc

// maxFree/secondMaxFree give LargestFree an O(1) answer for the common
// case of "is there probably a free block big enough", at the cost of a
// known staleness: once the tracked max is consumed, it demotes to the
// tracked second-largest and forgets everything else, so a few
// consecutive frees/allocations of the same size can make LargestFree
// undercount until the next insert restores it. Consuming a block that is
// not the tracked max leaves both fields unchanged, so a demotion can also
// promote a second-largest that no longer exists and overcount.
// HeapSummary.LargestFree recomputes the true value by walking the heap and
// should be preferred wherever that staleness matters; LargestFree is for
// callers that want an occasionally-stale estimate without scanning the
// heap.

// trackFreed records that a free block of size bytes now exists,
// maintaining the top-2 tracking used by LargestFree.
func (a *Allocator) trackFreed(size int) {
	if size > a.maxFree {
		a.secondMaxFree = a.maxFree
		a.maxFree = size
	} else if size > a.secondMaxFree {
		a.secondMaxFree = size
	}
}

// trackConsumed records that a free block of size bytes was removed from
// the free lists (allocated, coalesced away, or split), demoting the
// tracked maximum when it was the block consumed.
func (a *Allocator) trackConsumed(size int) {
	if size == a.maxFree {
		a.maxFree = a.secondMaxFree
		a.secondMaxFree = 0
	}
}

// LargestFree returns an O(1) estimate of the largest free block
// currently available, accurate except for the staleness described
// above.
func (a *Allocator) LargestFree() int {
	return a.maxFree
}
