package alloc

import "fmt"

// Sentinel errors, in the style of hive/alloc/errors.go: narrow, checkable
// with errors.Is, and named for the condition rather than the call site.
var (
	// ErrOutOfMemory is returned when the heap source cannot grow far
	// enough to satisfy a request.
	ErrOutOfMemory = fmt.Errorf("alloc: heap source exhausted")

	// ErrHeapNotEmpty is returned by New when the supplied HeapSource
	// already has bytes in it; Init requires starting from an empty arena.
	ErrHeapNotEmpty = fmt.Errorf("alloc: heap source is not empty")

	// ErrZeroSize is returned by MustAllocate for a zero-byte request.
	// Allocate itself just returns NullPtr for this case, matching malloc's
	// C contract; MustAllocate exists for callers (cmd/heapctl) that want
	// a distinguishable error instead of silently getting nothing back.
	ErrZeroSize = fmt.Errorf("alloc: requested size must be positive")

	// ErrBadPointer is returned by SizeOf/IsAllocated for an address that
	// is zero or outside the heap's current valid range.
	ErrBadPointer = fmt.Errorf("alloc: pointer is zero or out of range")
)

// InvariantError reports a structural violation found by CheckHeap: a
// header/footer mismatch, a free-list membership inconsistency, an
// adjacent pair of free blocks that escaped coalescing, or a block that
// fails alignment or minimum-size rules.
type InvariantError struct {
	Rule string // short invariant name, e.g. "footer-mismatch"
	At    int   // block address (bp) the violation was found at
	Detail string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("alloc: invariant %q violated at 0x%x: %s", e.Rule, e.At, e.Detail)
}
