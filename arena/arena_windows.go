//go:build windows

package arena

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

// virtualAllocBackend grows the arena via VirtualAlloc, Windows' analog of
// anonymous mmap. Like the unix backend, growth is implemented as
// allocate-new, copy, free-old rather than in-place resize.
type virtualAllocBackend struct{}

func defaultBackend() backend { return virtualAllocBackend{} }

func (virtualAllocBackend) realloc(old []byte, newSize int) ([]byte, error) {
	addr, err := windows.VirtualAlloc(0, uintptr(newSize), windows.MEM_COMMIT|windows.MEM_RESERVE, windows.PAGE_READWRITE)
	if err != nil {
		return nil, fmt.Errorf("arena: VirtualAlloc %d bytes: %w", newSize, err)
	}
	buf := unsafe.Slice((*byte)(unsafe.Pointer(addr)), newSize)
	copy(buf, old)
	if old != nil {
		if err := windows.VirtualFree(uintptr(unsafe.Pointer(&old[0])), 0, windows.MEM_RELEASE); err != nil {
			return nil, fmt.Errorf("arena: VirtualFree old region: %w", err)
		}
	}
	return buf, nil
}
