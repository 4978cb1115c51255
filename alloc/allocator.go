package alloc

import (
	"fmt"
	"os"

	"github.com/segalloc/heapkit/internal/buf"
	"github.com/segalloc/heapkit/internal/wire"
)

const debugAlloc = false

// logAlloc mirrors hive/alloc/fastalloc.go's runtime debug flag: compiled
// out entirely when debugAlloc is false, otherwise gated by an env var so
// a single binary can be toggled without a rebuild.
var logAlloc = os.Getenv("HEAPKIT_LOG_ALLOC") != ""

func debugLogf(format string, args ...any) {
	if debugAlloc && logAlloc {
		fmt.Fprintf(os.Stderr, "[ALLOC] "+format+"\n", args...)
	}
}

// HeapSource is the growth primitive the allocator is built on: a single
// contiguous, monotonically growable byte arena. *arena.Arena satisfies
// this, and is what the tests build on as well.
type HeapSource interface {
	// Grow extends the source by n bytes and returns the offset at which
	// the new region begins. The new bytes must be zero-initialized.
	Grow(n int) (int, error)
	// Bytes returns the source's current backing buffer. Callers must not
	// retain the returned slice across a Grow call.
	Bytes() []byte
}

// Allocator is a single-threaded segregated-fit allocator over a
// HeapSource: fifteen size-class free lists, boundary-tag coalescing, and
// first-fit placement. It holds no internal locking, matching the
// single-threaded model the design assumes throughout.
type Allocator struct {
	src       HeapSource
	chunkSize int
	stats     Stats

	maxFree       int
	secondMaxFree int
}

// Option configures an Allocator at construction time.
type Option func(*Allocator)

// WithChunkSize overrides the minimum number of bytes requested from the
// heap source on each extension. The default is ChunkSize.
func WithChunkSize(n int) Option {
	return func(a *Allocator) { a.chunkSize = n }
}

// New creates an Allocator over src and lays down the initial heap: the
// free-list head table, the prologue/epilogue sentinels, and one initial
// extension. src must be empty; New is the only place the heap is laid out
// from scratch.
func New(src HeapSource, opts ...Option) (*Allocator, error) {
	a := &Allocator{src: src, chunkSize: ChunkSize}
	for _, opt := range opts {
		opt(a)
	}
	if err := a.init(); err != nil {
		return nil, err
	}
	return a, nil
}

// Open wraps an already-initialized HeapSource — one whose bytes already
// encode the list-head table, sentinels, and any live blocks, typically
// because they were produced by New and then persisted — without
// re-running heap layout. Use New to lay out a heap from scratch, Open to
// resume work against one that already exists.
func Open(src HeapSource, opts ...Option) *Allocator {
	a := &Allocator{src: src, chunkSize: ChunkSize}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *Allocator) bytes() []byte { return a.src.Bytes() }

// Bytes returns the allocator's raw backing storage, including the header
// region, sentinels and every live and free block. Callers that persist a
// heap across process boundaries (see Open) should treat this as opaque
// and round-trip it through arena.FromBytes unmodified.
func (a *Allocator) Bytes() []byte { return a.src.Bytes() }

func (a *Allocator) init() error {
	off, err := a.src.Grow(HeaderRegionSize)
	if err != nil {
		return fmt.Errorf("alloc: init: %w", err)
	}
	if off != 0 {
		return ErrHeapNotEmpty
	}

	data := a.bytes()
	for class := 0; class < BinCount; class++ {
		writeListHead(data, class, NullPtr)
	}

	prologue := packHeader(DSize, true)
	wire.PutWord(data, prologueHeaderOffset, prologue)
	wire.PutWord(data, prologueFooterOffset, prologue)
	wire.PutWord(data, epilogueHeaderOffsetInitial, packHeader(0, true))

	if _, err := a.extendHeap(a.chunkSize); err != nil {
		return fmt.Errorf("alloc: init: %w", err)
	}
	return nil
}

// extendHeap grows the heap source by at least minBytes (rounded up to a
// legal, double-word-aligned block size) and returns the address of the
// resulting free block, after coalescing it with whatever free block
// precedes it.
//
// CHUNKSIZE (4104) is not itself a multiple of 2*Word, so the very first
// extension actually grows the heap by 4112 bytes, not 4104 — see
// DESIGN.md's note on this under the Open Question decisions.
func (a *Allocator) extendHeap(minBytes int) (int, error) {
	size := alignDWord(minBytes)
	bp, err := a.src.Grow(size)
	if err != nil {
		return NullPtr, ErrOutOfMemory
	}

	data := a.bytes()
	writeHeaderFooter(data, bp, size, false)
	wire.PutWord(data, bp+size-WordSize, packHeader(0, true))
	insertFree(data, bp, size)
	a.trackFreed(size)

	a.stats.GrowCalls++
	a.stats.GrowBytes += int64(size)
	debugLogf("extendHeap(%d): grew by %d bytes at 0x%x", minBytes, size, bp)

	return a.coalesce(bp), nil
}

// adjustedSize converts a caller-requested payload size into the actual
// block size to carve out, applying the two trace-tuned policy exceptions
// preserved unchanged from the original allocator (see DESIGN.md's Open
// Question #1): requests that are an exact multiple of Bound other than
// Bound itself get extra padding, and a request of exactly 4092 bytes is
// sized against a full ChunkSize extension.
func adjustedSize(size int) int {
	var asize int
	if size <= DSize {
		asize = MinBlockSize
	} else {
		asize = DSize + alignDWord(size)
	}

	if size%Bound == 0 && size != Bound {
		asize = DSize + size + Bound
	}
	if size == 4092 {
		asize = WordSize + ChunkSize
	}
	return asize
}

// reallocAsize is adjustedSize without the two allocate-only policy
// exceptions: Reallocate sizes its target block purely from DSize plus the
// double-word-aligned request, matching the original implementation, which
// never applied those exceptions outside of mm_malloc.
func reallocAsize(size int) int {
	if size <= DSize {
		return MinBlockSize
	}
	return DSize + alignDWord(size)
}

// Allocate reserves a block able to hold size bytes and returns its
// address, or NullPtr if size is zero or the heap source is exhausted.
func (a *Allocator) Allocate(size int) int {
	a.stats.AllocCalls++
	if size == 0 {
		return NullPtr
	}

	asize := adjustedSize(size)

	if bp := findFit(a.bytes(), asize); bp != NullPtr {
		a.place(bp, asize)
		a.stats.AllocFastPath++
		debugLogf("Allocate(%d): fit at 0x%x, asize=%d", size, bp, asize)
		return bp
	}

	extend := asize
	if a.chunkSize > extend {
		extend = a.chunkSize
	}
	bp, err := a.extendHeap(extend)
	if err != nil {
		debugLogf("Allocate(%d): out of memory", size)
		return NullPtr
	}

	a.place(bp, asize)
	a.stats.AllocSlowPath++
	debugLogf("Allocate(%d): extended and placed at 0x%x, asize=%d", size, bp, asize)
	return bp
}

// Free releases the block at ptr back to its size class's free list,
// coalescing with any free neighbors. Freeing NullPtr is a no-op.
func (a *Allocator) Free(ptr int) {
	a.stats.FreeCalls++
	if ptr == NullPtr {
		return
	}

	data := a.bytes()
	size := sizeOf(data, ptr)
	writeHeaderFooter(data, ptr, size, false)
	insertFree(data, ptr, size)
	a.trackFreed(size)
	a.coalesce(ptr)
	debugLogf("Free(0x%x): size=%d", ptr, size)
}

// Reallocate resizes the block at ptr to hold size bytes, preferring an
// in-place shrink or grow, and falling back to allocate+copy+free when
// neither applies. Reallocate(NullPtr, size) behaves like Allocate(size);
// Reallocate(ptr, 0) behaves like Free(ptr) and returns NullPtr.
//
// The allocate+copy+free fallback preserves a deliberately loose copy
// length carried over from the original implementation: it copies
// min(size, old block size), where old block size includes the old
// block's header and footer overhead rather than just its live payload.
// See DESIGN.md's Open Question #2 — this is flagged, not fixed.
func (a *Allocator) Reallocate(ptr, size int) int {
	a.stats.ReallocCalls++

	if size == 0 {
		a.Free(ptr)
		return NullPtr
	}
	if ptr == NullPtr {
		return a.Allocate(size)
	}

	data := a.bytes()
	newAsize := reallocAsize(size)
	oldSize := sizeOf(data, ptr)
	diff := oldSize - newAsize

	if diff == 0 {
		return ptr
	}

	if diff > 0 {
		if diff >= MinBlockSize {
			writeHeaderFooter(data, ptr, newAsize, true)
			rem := nextBlock(data, ptr)
			writeHeaderFooter(data, rem, diff, false)
			insertFree(data, rem, diff)
			a.trackFreed(diff)
			a.coalesce(rem)
			a.stats.SplitCount++
		}
		a.stats.ReallocInPlace++
		return ptr
	}

	need := -diff
	next := nextBlock(data, ptr)
	if !allocatedAt(data, next) {
		nextSize := sizeOf(data, next)
		if nextSize >= need+MinBlockSize {
			removeFree(data, next, nextSize)
			a.trackConsumed(nextSize)
			writeHeaderFooter(data, ptr, newAsize, true)
			newNext := nextBlock(data, ptr)
			writeHeaderFooter(data, newNext, nextSize-need, false)
			insertFree(data, newNext, nextSize-need)
			a.trackFreed(nextSize - need)
			a.stats.ReallocInPlace++
			return ptr
		}
		if nextSize >= need {
			removeFree(data, next, nextSize)
			a.trackConsumed(nextSize)
			writeHeaderFooter(data, ptr, oldSize+nextSize, true)
			a.stats.ReallocInPlace++
			return ptr
		}
	}

	copyLen := size
	if oldSize < copyLen {
		copyLen = oldSize
	}
	tmp := make([]byte, copyLen)
	copy(tmp, data[ptr:ptr+copyLen])

	newPtr := a.Allocate(size)
	if newPtr == NullPtr {
		return NullPtr
	}
	copy(a.bytes()[newPtr:newPtr+copyLen], tmp)
	a.Free(ptr)
	a.stats.ReallocMoved++
	return newPtr
}

// MustAllocate is Allocate with a distinguishable error instead of a bare
// NullPtr return, for callers (cmd/heapctl) that want to report why an
// allocation failed rather than just that it did.
func (a *Allocator) MustAllocate(size int) (int, error) {
	if size == 0 {
		return NullPtr, ErrZeroSize
	}
	if ptr := a.Allocate(size); ptr != NullPtr {
		return ptr, nil
	}
	return NullPtr, ErrOutOfMemory
}

// SizeOf returns the block size at ptr (header and footer included), or
// ErrBadPointer if ptr is zero or outside the heap's current bounds.
func (a *Allocator) SizeOf(ptr int) (int, error) {
	data := a.bytes()
	if ptr == NullPtr || ptr <= heapStart || !buf.Has(data, headerOffset(ptr), WordSize) {
		return 0, ErrBadPointer
	}
	return sizeOf(data, ptr), nil
}

// IsAllocated reports whether the block at ptr is currently allocated, or
// ErrBadPointer if ptr is zero or outside the heap's current bounds.
func (a *Allocator) IsAllocated(ptr int) (bool, error) {
	data := a.bytes()
	if ptr == NullPtr || ptr <= heapStart || !buf.Has(data, headerOffset(ptr), WordSize) {
		return false, ErrBadPointer
	}
	return allocatedAt(data, ptr), nil
}

// Payload returns the live payload bytes of the block at ptr: the bytes
// between its header and footer, excluding both. Calling this on a freed
// or never-allocated address is undefined, matching raw-pointer malloc
// semantics.
func (a *Allocator) Payload(ptr int) []byte {
	data := a.bytes()
	size := sizeOf(data, ptr)
	return data[ptr : ptr+size-DSize]
}
