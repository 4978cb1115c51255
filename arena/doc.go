// Package arena implements the allocator's heap-extension primitive: a
// single, monotonically growable region of memory that the allocator never
// shrinks. It plays the role of a classic sbrk(2) call.
//
// Arena deliberately exposes offsets, not pointers. Callers address memory
// as byte offsets into Bytes(); growing the arena may relocate the
// underlying buffer (the platform backends grow by allocating a new,
// larger region and copying), but offsets already handed out remain valid
// because nothing outside this package retains a raw pointer into the old
// buffer.
//
// Three backends exist, selected at compile time by build tag:
//
//   - arena_unix.go:     anonymous mmap, grown by mmap+copy+munmap.
//   - arena_windows.go:  VirtualAlloc, grown by VirtualAlloc+copy+VirtualFree.
//   - arena_fallback.go: plain Go slice growth, for other targets.
//
// All three satisfy the same backend contract, so Arena's own logic (offset
// bookkeeping, bounds) is platform-independent.
package arena
