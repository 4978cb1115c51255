package arena

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArenaGrowIsZeroedAndContiguous(t *testing.T) {
	a := New()

	off1, err := a.Grow(64)
	require.NoError(t, err)
	require.Equal(t, 0, off1)

	copy(a.Bytes()[off1:off1+8], []byte{1, 2, 3, 4, 5, 6, 7, 8})

	off2, err := a.Grow(32)
	require.NoError(t, err)
	require.Equal(t, 64, off2)

	// Growth must preserve previously written bytes.
	require.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8}, a.Bytes()[off1:off1+8])

	// New region must be zero-initialized.
	for _, b := range a.Bytes()[off2 : off2+32] {
		require.Zero(t, b)
	}

	lo, hi := a.Bounds()
	require.Equal(t, 0, lo)
	require.Equal(t, 96, hi)
}

func TestArenaGrowRejectsNonPositive(t *testing.T) {
	a := New()
	_, err := a.Grow(0)
	require.Error(t, err)
	_, err = a.Grow(-1)
	require.Error(t, err)
}
