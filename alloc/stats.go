package alloc

// Stats accumulates lifetime counters for an Allocator, in the style of
// hive/alloc/fastalloc.go's allocatorStats: plain counters queried by
// value, never reset automatically, intended for cmd/heapctl's stats
// subcommand and for test assertions about allocator behavior.
type Stats struct {
	AllocCalls     int64
	AllocFastPath  int64 // satisfied directly from a free list
	AllocSlowPath  int64 // required a heap extension
	FreeCalls      int64
	ReallocCalls   int64
	ReallocInPlace int64
	ReallocMoved   int64

	SplitCount       int64
	CoalesceForward  int64
	CoalesceBackward int64

	GrowCalls int64
	GrowBytes int64
}

// Stats returns a snapshot of the allocator's lifetime counters. These are
// in-memory only: they reset to zero whenever an Allocator is constructed,
// so a process that resumed a heap via Open has no history to report here.
// HeapSummary, by contrast, is derived fresh from the heap bytes themselves
// and survives a save/load round trip.
func (a *Allocator) Stats() Stats { return a.stats }

// HeapSummary describes the static shape of a heap at a point in time,
// computed by walking its blocks and free lists rather than from any
// counter — the only statistics available for a heap resumed from disk via
// Open, where no lifetime Stats survive the round trip.
type HeapSummary struct {
	TotalBytes int

	AllocBlocks int
	FreeBlocks  int
	AllocBytes  int
	FreeBytes   int

	LargestFree int

	// BinCounts[class] is the number of free blocks currently queued in
	// that size class's free list.
	BinCounts [BinCount]int
}

// HeapSummary walks the heap once and reports its current shape.
func (a *Allocator) HeapSummary() HeapSummary {
	data := a.bytes()
	var s HeapSummary
	s.TotalBytes = len(data)

	for bp := nextBlock(data, heapStart); ; bp = nextBlock(data, bp) {
		size := sizeOf(data, bp)
		if size == 0 {
			break
		}
		if allocatedAt(data, bp) {
			s.AllocBlocks++
			s.AllocBytes += size
			continue
		}
		s.FreeBlocks++
		s.FreeBytes += size
		if size > s.LargestFree {
			s.LargestFree = size
		}
	}

	for class := 0; class < BinCount; class++ {
		for bp := readListHead(data, class); bp != NullPtr; bp = readNext(data, bp) {
			s.BinCounts[class]++
		}
	}

	return s
}
