package alloc

import "github.com/segalloc/heapkit/arena"

// def is the package-level default Allocator, lazily created over a fresh
// arena.Arena by Init. The per-instance Allocator type above is the
// primary API; these wrappers exist for callers (quick scripts, tests
// porting directly from the original trace-driven harness)
// that just want a single global heap the way the classic malloc/free/
// realloc trio works.
var def *Allocator

// Init (re)creates the package-level default Allocator over a fresh arena.
// It must be called before Allocate, Free, or Reallocate are used through
// their package-level form.
func Init(opts ...Option) error {
	a, err := New(arena.New(), opts...)
	if err != nil {
		return err
	}
	def = a
	return nil
}

// Allocate calls Allocate on the package-level default Allocator.
func Allocate(size int) int { return def.Allocate(size) }

// Free calls Free on the package-level default Allocator.
func Free(ptr int) { def.Free(ptr) }

// Reallocate calls Reallocate on the package-level default Allocator.
func Reallocate(ptr, size int) int { return def.Reallocate(ptr, size) }

// CheckHeap calls CheckHeap on the package-level default Allocator.
func CheckHeap(verbose bool) error { return def.CheckHeap(verbose) }

// Default returns the package-level default Allocator, or nil if Init has
// not been called.
func Default() *Allocator { return def }
