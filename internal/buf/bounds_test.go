package buf

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddOverflowSafe(t *testing.T) {
	sum, ok := AddOverflowSafe(10, 5)
	require.True(t, ok)
	require.Equal(t, 15, sum)

	_, ok = AddOverflowSafe(math.MaxInt, 1)
	require.False(t, ok, "expected overflow when adding to MaxInt")

	_, ok = AddOverflowSafe(math.MinInt, -1)
	require.False(t, ok, "expected underflow when subtracting from MinInt")
}

// Slice and Has back every bounds check alloc.SizeOf/IsAllocated run on a
// caller-supplied pointer before touching the arena, so these mirror the
// shapes those call sites actually hit: a valid sub-range, a range
// extending past the end, and negative offsets/lengths.
func TestSliceAndHas(t *testing.T) {
	data := []byte{0, 1, 2, 3, 4}

	got, ok := Slice(data, 1, 3)
	require.True(t, ok)
	require.Equal(t, []byte{1, 2, 3}, got)

	_, ok = Slice(data, 4, 2)
	require.False(t, ok, "Slice should fail when extending beyond len")

	require.False(t, Has(data, 2, 4), "Has should be false for out-of-bounds range")
	require.True(t, Has(data, 2, 1), "Has should be true for valid range")

	_, ok = Slice(data, -1, 1)
	require.False(t, ok, "Slice should reject negative offset")

	_, ok = Slice(data, 1, -1)
	require.False(t, ok, "Slice should reject negative length")
}
