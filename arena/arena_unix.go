//go:build unix

package arena

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// mmapBackend grows the arena by mapping a new, larger anonymous region,
// copying the old contents into it, and unmapping the old region. mmap
// gives us zero-initialized pages for free, matching the allocator's
// assumption that newly extended heap is clean.
type mmapBackend struct{}

func defaultBackend() backend { return mmapBackend{} }

func (mmapBackend) realloc(old []byte, newSize int) ([]byte, error) {
	buf, err := unix.Mmap(-1, 0, newSize, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("arena: mmap %d bytes: %w", newSize, err)
	}
	copy(buf, old)
	if old != nil {
		if err := unix.Munmap(old); err != nil {
			return nil, fmt.Errorf("arena: munmap old region: %w", err)
		}
	}
	return buf, nil
}
