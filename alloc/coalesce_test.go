package alloc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCoalesceForwardMergesFreedNeighbor(t *testing.T) {
	a := newTestAllocator(t)

	p1 := a.Allocate(64)
	p2 := a.Allocate(64)
	require.NotEqual(t, NullPtr, p1)
	require.NotEqual(t, NullPtr, p2)
	// An allocated guard after p2 keeps the free heap tail out of the merge.
	require.NotEqual(t, NullPtr, a.Allocate(64))

	size1 := sizeOf(a.bytes(), p1)
	size2 := sizeOf(a.bytes(), p2)

	a.Free(p2)
	a.Free(p1)

	// p1 and p2 were adjacent and bounded by allocated blocks, so freeing
	// both must merge them into one free block starting at p1, sized
	// size1+size2.
	data := a.bytes()
	require.False(t, allocatedAt(data, p1))
	require.Equal(t, size1+size2, sizeOf(data, p1))
	requireCheckHeap(t, a)
}

func TestCoalesceBackwardMergesIntoPrecedingFree(t *testing.T) {
	a := newTestAllocator(t)

	p1 := a.Allocate(64)
	p2 := a.Allocate(64)
	// An allocated guard after p2 keeps the free heap tail out of the merge.
	require.NotEqual(t, NullPtr, a.Allocate(64))

	size1 := sizeOf(a.bytes(), p1)
	size2 := sizeOf(a.bytes(), p2)

	a.Free(p1)
	a.Free(p2)

	data := a.bytes()
	require.False(t, allocatedAt(data, p1))
	require.Equal(t, size1+size2, sizeOf(data, p1))
	requireCheckHeap(t, a)
}

func TestCoalesceBothNeighborsMergeIntoOneBlock(t *testing.T) {
	a := newTestAllocator(t)

	p1 := a.Allocate(64)
	p2 := a.Allocate(64)
	p3 := a.Allocate(64)
	// An allocated guard after p3 keeps the free heap tail out of the merge.
	require.NotEqual(t, NullPtr, a.Allocate(64))

	s1 := sizeOf(a.bytes(), p1)
	s2 := sizeOf(a.bytes(), p2)
	s3 := sizeOf(a.bytes(), p3)

	a.Free(p1)
	a.Free(p3)
	a.Free(p2) // merges with both neighbors at once

	data := a.bytes()
	require.False(t, allocatedAt(data, p1))
	require.Equal(t, s1+s2+s3, sizeOf(data, p1))
	requireCheckHeap(t, a)
}

func TestNoCoalesceBetweenTwoAllocatedBlocks(t *testing.T) {
	a := newTestAllocator(t)

	p1 := a.Allocate(64)
	p2 := a.Allocate(64)

	data := a.bytes()
	require.True(t, allocatedAt(data, p1))
	require.True(t, allocatedAt(data, p2))
	requireCheckHeap(t, a)
}
