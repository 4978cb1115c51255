package alloc

// coalesce merges bp with any free neighbors and returns the address of
// the resulting (possibly unchanged) free block. bp must already be marked
// free and already linked into its free list; coalesce takes over list
// membership for whichever blocks it merges.
//
// The four cases mirror mm.c's coalesce: both neighbors allocated (no-op),
// only the next neighbor free, only the previous neighbor free, or both.
// The heap's prologue and epilogue sentinels are always marked allocated,
// so the boundary blocks need no special-casing here.
func (a *Allocator) coalesce(bp int) int {
	data := a.bytes()
	size := sizeOf(data, bp)

	prev := prevBlock(data, bp)
	next := nextBlock(data, bp)
	prevFree := !allocatedAt(data, prev)
	nextFree := !allocatedAt(data, next)

	switch {
	case !prevFree && !nextFree:
		return bp

	case !prevFree && nextFree:
		nextSize := sizeOf(data, next)
		removeFree(data, bp, size)
		removeFree(data, next, nextSize)
		a.trackConsumed(size)
		a.trackConsumed(nextSize)
		size += nextSize
		writeHeaderFooter(data, bp, size, false)
		insertFree(data, bp, size)
		a.trackFreed(size)
		a.stats.CoalesceForward++
		return bp

	case prevFree && !nextFree:
		prevSize := sizeOf(data, prev)
		removeFree(data, bp, size)
		removeFree(data, prev, prevSize)
		a.trackConsumed(size)
		a.trackConsumed(prevSize)
		size += prevSize
		writeHeaderFooter(data, prev, size, false)
		insertFree(data, prev, size)
		a.trackFreed(size)
		a.stats.CoalesceBackward++
		return prev

	default:
		prevSize := sizeOf(data, prev)
		nextSize := sizeOf(data, next)
		removeFree(data, bp, size)
		removeFree(data, prev, prevSize)
		removeFree(data, next, nextSize)
		a.trackConsumed(size)
		a.trackConsumed(prevSize)
		a.trackConsumed(nextSize)
		size += prevSize + nextSize
		writeHeaderFooter(data, prev, size, false)
		insertFree(data, prev, size)
		a.trackFreed(size)
		a.stats.CoalesceForward++
		a.stats.CoalesceBackward++
		return prev
	}
}

// place consumes the free block at bp to satisfy a request for asize bytes.
// bp must still be a member of its free list on entry (findFit only finds,
// it does not remove); place removes it itself before marking allocated. If
// the leftover after carving out asize is at least MinBlockSize, the
// remainder is split off, header/footer stamped free, and reinserted;
// otherwise the whole block is handed out.
func (a *Allocator) place(bp, asize int) {
	data := a.bytes()
	csize := sizeOf(data, bp)
	removeFree(data, bp, csize)

	a.trackConsumed(csize)

	if csize-asize >= MinBlockSize {
		writeHeaderFooter(data, bp, asize, true)
		rem := nextBlock(data, bp)
		writeHeaderFooter(data, rem, csize-asize, false)
		insertFree(data, rem, csize-asize)
		a.trackFreed(csize - asize)
		a.stats.SplitCount++
		return
	}

	writeHeaderFooter(data, bp, csize, true)
}
