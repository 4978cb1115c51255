package alloc

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/segalloc/heapkit/arena"
)

// newTestAllocator builds a fresh Allocator over a real arena.Arena, the
// same HeapSource cmd/heapctl and cmd/heapview drive in production.
func newTestAllocator(t testing.TB, opts ...Option) *Allocator {
	t.Helper()
	a, err := New(arena.New(), opts...)
	require.NoError(t, err)
	return a
}

func requireCheckHeap(t testing.TB, a *Allocator) {
	t.Helper()
	require.NoError(t, a.CheckHeap(false))
}
