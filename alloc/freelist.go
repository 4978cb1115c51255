package alloc

import "github.com/segalloc/heapkit/internal/wire"

// Free blocks carry their own links: the first word of payload holds the
// next pointer, the second holds prev. Lists are LIFO (insert always at the
// head) and bounded by NullPtr. This is the intrusive in-band design, in
// contrast to the teacher corpus's out-of-band container/heap free lists
// (hive/alloc/fastalloc.go) — the spec calls for the former.

func readListHead(data []byte, class int) int      { return wire.Int(data, listHeadOffset(class)) }
func writeListHead(data []byte, class int, bp int) { wire.PutInt(data, listHeadOffset(class), bp) }

func readNext(data []byte, bp int) int      { return wire.Int(data, bp) }
func writeNext(data []byte, bp int, v int)  { wire.PutInt(data, bp, v) }
func readPrev(data []byte, bp int) int      { return wire.Int(data, bp+WordSize) }
func writePrev(data []byte, bp int, v int)  { wire.PutInt(data, bp+WordSize, v) }

// insertFree pushes bp onto the head of the free list for its size class.
func insertFree(data []byte, bp, size int) {
	class := ClassOf(size)
	head := readListHead(data, class)
	writePrev(data, bp, NullPtr)
	writeNext(data, bp, head)
	if head != NullPtr {
		writePrev(data, head, bp)
	}
	writeListHead(data, class, bp)
}

// removeFree unlinks bp from the free list for its size class. bp must
// currently be a member of that list.
func removeFree(data []byte, bp, size int) {
	class := ClassOf(size)
	prev := readPrev(data, bp)
	next := readNext(data, bp)
	if prev != NullPtr {
		writeNext(data, prev, next)
	} else {
		writeListHead(data, class, next)
	}
	if next != NullPtr {
		writePrev(data, next, prev)
	}
}

// findFit performs an ascending first-fit search: starting at the size
// class asize belongs in, scan each list in LIFO order for the first block
// large enough, then fall through to the next (always larger) class if the
// current one is exhausted. Returns NullPtr if no block anywhere fits.
func findFit(data []byte, asize int) int {
	for class := ClassOf(asize); class < BinCount; class++ {
		for bp := readListHead(data, class); bp != NullPtr; bp = readNext(data, bp) {
			if sizeOf(data, bp) >= asize {
				return bp
			}
		}
	}
	return NullPtr
}
