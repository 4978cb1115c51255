package main

import (
	"fmt"
	"os"

	"github.com/segalloc/heapkit/alloc"
	"github.com/segalloc/heapkit/arena"
)

// loadHeap reads an existing heap file and wraps it with alloc.Open, which
// trusts the bytes already encode a fully laid-out heap (list heads,
// sentinels, any live blocks).
func loadHeap(path string) (*alloc.Allocator, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read heap file %q: %w", path, err)
	}
	return alloc.Open(arena.FromBytes(data)), nil
}

// saveHeap writes an allocator's current backing bytes to path, creating
// or truncating it.
func saveHeap(path string, a *alloc.Allocator) error {
	if err := os.WriteFile(path, a.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write heap file %q: %w", path, err)
	}
	return nil
}
