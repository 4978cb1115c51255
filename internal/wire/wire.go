// Package wire provides little-endian word encoding for the allocator's
// on-heap headers, footers, and free-list links.
package wire

import "encoding/binary"

// PutWord writes a 64-bit word at offset off in b, little-endian.
func PutWord(b []byte, off int, v uint64) {
	binary.LittleEndian.PutUint64(b[off:off+8], v)
}

// Word reads a 64-bit word at offset off in b, little-endian.
func Word(b []byte, off int) uint64 {
	return binary.LittleEndian.Uint64(b[off : off+8])
}

// PutInt writes v as a 64-bit word at offset off, little-endian.
func PutInt(b []byte, off int, v int) {
	PutWord(b, off, uint64(v))
}

// Int reads a 64-bit word at offset off and returns it as an int.
func Int(b []byte, off int) int {
	return int(Word(b, off))
}
