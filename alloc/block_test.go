package alloc

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/segalloc/heapkit/internal/wire"
)

func TestHeaderPackRoundTrip(t *testing.T) {
	w := packHeader(256, true)
	require.Equal(t, 256, unpackSize(w))
	require.True(t, unpackAlloc(w))

	w = packHeader(64, false)
	require.Equal(t, 64, unpackSize(w))
	require.False(t, unpackAlloc(w))
}

func TestWriteHeaderFooterAgree(t *testing.T) {
	data := make([]byte, 256)
	bp := 64
	writeHeaderFooter(data, bp, 96, true)

	require.Equal(t, 96, sizeOf(data, bp))
	require.True(t, allocatedAt(data, bp))
	require.Equal(t, readHeader(data, bp), wire.Word(data, footerOffset(data, bp)))
}

func TestNextPrevBlockRoundTrip(t *testing.T) {
	data := make([]byte, 256)
	a := 64
	writeHeaderFooter(data, a, 32, true)
	b := nextBlock(data, a)
	writeHeaderFooter(data, b, 48, false)
	c := nextBlock(data, b)
	writeHeaderFooter(data, c, 32, true)

	require.Equal(t, b, nextBlock(data, a))
	require.Equal(t, c, nextBlock(data, b))
	require.Equal(t, a, prevBlock(data, b))
	require.Equal(t, b, prevBlock(data, c))
}
