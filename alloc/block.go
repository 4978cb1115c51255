package alloc

import "github.com/segalloc/heapkit/internal/wire"

// Every block in the heap is addressed by its bp: the offset one word past
// its header. This mirrors the classic HDRP/FTRP/NEXT_BLKP/PREV_BLKP macro
// style, just expressed as arithmetic over arena byte offsets instead of C
// pointers, per the flat-arena model the allocator is built on.
//
//	[ header ][        payload        ][ footer ]
//	^ bp-Word ^ bp                              ^ bp+size-DSize

func packHeader(size int, allocated bool) uint64 {
	v := uint64(size)
	if allocated {
		v |= 1
	}
	return v
}

func unpackSize(word uint64) int     { return int(word &^ 1) }
func unpackAlloc(word uint64) bool   { return word&1 != 0 }
func headerOffset(bp int) int        { return bp - WordSize }

func readHeader(data []byte, bp int) uint64 {
	return wire.Word(data, headerOffset(bp))
}

func sizeOf(data []byte, bp int) int    { return unpackSize(readHeader(data, bp)) }
func allocatedAt(data []byte, bp int) bool { return unpackAlloc(readHeader(data, bp)) }

func footerOffset(data []byte, bp int) int {
	return bp + sizeOf(data, bp) - DSize
}

// nextBlock returns the bp of the block immediately following bp in address
// order. For the last real block this yields the epilogue's bp, whose
// header reports size zero.
func nextBlock(data []byte, bp int) int {
	return bp + sizeOf(data, bp)
}

// prevBlock returns the bp of the block immediately preceding bp, found by
// reading that block's footer. Calling this on the heap's first real block
// yields the prologue, whose header/footer always report allocated.
func prevBlock(data []byte, bp int) int {
	prevFooter := bp - DSize
	prevSize := unpackSize(wire.Word(data, prevFooter))
	return bp - prevSize
}

// writeHeaderFooter stamps both the header and footer of the block at bp
// with the same size/allocated pair. Every block except the zero-size
// epilogue carries a matching footer, so this is the only way ordinary
// (non-sentinel) blocks are ever written.
func writeHeaderFooter(data []byte, bp, size int, allocated bool) {
	w := packHeader(size, allocated)
	wire.PutWord(data, headerOffset(bp), w)
	wire.PutWord(data, footerOffsetFor(bp, size), w)
}

func footerOffsetFor(bp, size int) int { return bp + size - DSize }
