package arena

import (
	"fmt"

	"github.com/segalloc/heapkit/internal/buf"
)

// backend performs the platform-specific work of growing the arena's
// backing buffer to newSize bytes, preserving the contents of old.
type backend interface {
	realloc(old []byte, newSize int) ([]byte, error)
}

// Arena is a single contiguous, monotonically growable memory region.
// It is the concrete implementation of the allocator's heap-source
// contract (see the package-level Grow/Bytes/Bounds methods).
//
// An Arena is not safe for concurrent use, matching the single-threaded
// model of the allocator it backs.
type Arena struct {
	data []byte
	back backend
}

// New creates an empty Arena using the platform's default growth backend.
func New() *Arena {
	return &Arena{back: defaultBackend()}
}

// FromBytes creates an Arena whose initial contents are a copy of data,
// using the platform's default growth backend for any future Grow calls.
// This is how a previously persisted arena (e.g. cmd/heapctl's --heap
// file) is resumed: the bytes already encode a complete, previously
// initialized heap, so the allocator built over this Arena should be
// constructed with alloc.Open, not alloc.New.
//
// The copy is placed in a region obtained from the backend itself, so a
// later Grow can release it the same way it releases any region it grew.
func FromBytes(data []byte) *Arena {
	a := &Arena{back: defaultBackend()}
	if len(data) == 0 {
		return a
	}
	buf, err := a.back.realloc(nil, len(data))
	if err != nil {
		buf = make([]byte, len(data))
	}
	copy(buf, data)
	a.data = buf
	return a
}

// Grow extends the arena by n bytes and returns the absolute offset at
// which the newly added region begins. n must be positive. The new bytes
// are zero-initialized.
func (a *Arena) Grow(n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("arena: grow amount must be positive, got %d", n)
	}
	off := len(a.data)
	newSize, ok := buf.AddOverflowSafe(off, n)
	if !ok {
		return 0, fmt.Errorf("arena: grow would overflow: %d + %d", off, n)
	}
	newData, err := a.back.realloc(a.data, newSize)
	if err != nil {
		return 0, err
	}
	a.data = newData
	return off, nil
}

// Bytes returns the arena's current backing buffer. The returned slice is
// invalidated by the next call to Grow; callers that need to retain access
// across a Grow must re-fetch it.
func (a *Arena) Bytes() []byte {
	return a.data
}

// Bounds returns the low (always 0) and high (exclusive) offsets of the
// currently valid arena.
func (a *Arena) Bounds() (lo, hi int) {
	return 0, len(a.data)
}
