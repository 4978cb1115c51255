package alloc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// newFreeListTestData returns a buffer large enough to hold the bin head
// table and a handful of blocks placed well past it, so free-list link
// writes never collide with the head table itself.
func newFreeListTestData(size int) []byte {
	return make([]byte, HeaderRegionSize+size)
}

func TestInsertRemoveSingleBlock(t *testing.T) {
	data := newFreeListTestData(256)
	bp := HeaderRegionSize + 32
	writeHeaderFooter(data, bp, 64, false)

	insertFree(data, bp, 64)
	require.Equal(t, bp, readListHead(data, ClassOf(64)))

	removeFree(data, bp, 64)
	require.Equal(t, NullPtr, readListHead(data, ClassOf(64)))
}

func TestInsertIsLIFO(t *testing.T) {
	data := newFreeListTestData(256)
	a := HeaderRegionSize + 32
	b := HeaderRegionSize + 96
	writeHeaderFooter(data, a, 64, false)
	writeHeaderFooter(data, b, 64, false)

	insertFree(data, a, 64)
	insertFree(data, b, 64)

	class := ClassOf(64)
	require.Equal(t, b, readListHead(data, class))
	require.Equal(t, a, readNext(data, b))
	require.Equal(t, NullPtr, readNext(data, a))
}

func TestRemoveMiddleOfList(t *testing.T) {
	data := newFreeListTestData(256)
	a := HeaderRegionSize + 32
	b := HeaderRegionSize + 96
	c := HeaderRegionSize + 160
	for _, bp := range []int{a, b, c} {
		writeHeaderFooter(data, bp, 64, false)
		insertFree(data, bp, 64)
	}
	// list head is now c -> b -> a
	removeFree(data, b, 64)

	class := ClassOf(64)
	require.Equal(t, c, readListHead(data, class))
	require.Equal(t, a, readNext(data, c))
	require.Equal(t, NullPtr, readNext(data, a))
}

func TestFindFitAscendsClasses(t *testing.T) {
	data := newFreeListTestData(4096)
	small := HeaderRegionSize + 32
	big := HeaderRegionSize + 512

	writeHeaderFooter(data, small, 64, false)
	insertFree(data, small, 64)

	writeHeaderFooter(data, big, 1024, false)
	insertFree(data, big, 1024)

	// A request too large for the 64-byte block's class must skip ahead.
	require.Equal(t, big, findFit(data, 512))
}

func TestFindFitReturnsNullWhenNothingFits(t *testing.T) {
	data := newFreeListTestData(256)
	bp := HeaderRegionSize + 32
	writeHeaderFooter(data, bp, 64, false)
	insertFree(data, bp, 64)

	require.Equal(t, NullPtr, findFit(data, 4096))
}
