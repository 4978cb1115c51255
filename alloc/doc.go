// Package alloc implements a general-purpose dynamic storage allocator:
// classic allocate/free/reallocate over a single growable heap, using a
// segregated free-list index and boundary-tag coalescing.
//
// # Overview
//
// The design follows the textbook segregated-fit allocator: every block
// carries a header and footer recording its size and allocated bit, free
// blocks are threaded onto one of BinCount size-class free lists, and
// freeing a block immediately attempts to merge it with its neighbors
// using those headers/footers as boundary tags. There is no thread safety
// here; an Allocator assumes single-threaded access, same as the heap
// source beneath it.
//
// # Allocator Interface
//
//   - Allocate(size): reserve a block able to hold size bytes
//   - Free(ptr): release a block back to its free list
//   - Reallocate(ptr, size): resize a block in place where possible
//
// Addresses are offsets into the backing HeapSource, not Go pointers — see
// the HeapSource interface and the arena package for the growable byte
// arena that plays that role in practice.
//
// # Size Classes
//
// Free blocks are indexed into BinCount lists by ClassOf, a doubling
// series anchored at Bound:
//
//	bin  0: size <=   128
//	bin  1: size <=   256
//	bin  2: size <=   512
//	...
//	bin 13: size <= 128 << 13
//	bin 14: everything larger
//
// # Block Layout
//
//	[ header ][        payload        ][ footer ]
//
// A block's address (bp) names the first byte of payload, one word past
// its header; this is the value Allocate returns and Free/Reallocate take
// as input. Free blocks reuse the first two payload words as next/prev
// free-list links.
//
// # Diagnostics
//
// CheckHeap walks the entire heap and verifies every structural invariant
// the allocator depends on, returning an *InvariantError describing the
// first violation found. DumpHeap writes an unconditional block-by-block
// trace, independent of CheckHeap's own verbose gate.
//
// # Thread Safety
//
// Allocator instances are not thread-safe. Callers must synchronize access
// externally.
package alloc
