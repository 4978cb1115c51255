package alloc

// WordSize is the allocator's native word: the width of a header, a footer,
// and a free-list link. The allocator targets 64-bit hosts, so a word is 8
// bytes.
const WordSize = 8

// DSize is a double word: the size of a header+footer pair, and the
// smallest legal payload rounding unit.
const DSize = 2 * WordSize

// MinBlockSize is the smallest block the allocator ever hands out: header +
// footer + room for two free-list link words when the block is on a free
// list.
const MinBlockSize = 4 * WordSize

// BinCount is the number of segregated free-list size classes.
const BinCount = 15

// Bound is the size-class doubling threshold used by ClassOf, and also the
// threshold that triggers the first allocate size-policy exception.
const Bound = 128

// ChunkSize is the minimum number of bytes requested from the heap source
// each time the heap must grow.
const ChunkSize = 4104

// NullPtr is the sentinel "no block" address. Block addresses always land
// strictly after the header region, so zero is never a valid address.
const NullPtr = 0

// headerRegionWords is the word count of the fixed region at the front of
// the arena: one list head per bin, one padding word, a two-word prologue
// (header+footer, no payload), and an epilogue header.
const headerRegionWords = BinCount + 4

// HeaderRegionSize is the byte size of the fixed region described above.
const HeaderRegionSize = headerRegionWords * WordSize

func listHeadOffset(class int) int { return class * WordSize }

const paddingOffset = BinCount * WordSize
const prologueHeaderOffset = (BinCount + 1) * WordSize
const prologueFooterOffset = (BinCount + 2) * WordSize
const epilogueHeaderOffsetInitial = (BinCount + 3) * WordSize

// heapStart is the address (bp, in the header/payload/footer sense used
// throughout this package) of the prologue block. The prologue carries no
// payload, so its bp coincides with its own footer word.
const heapStart = prologueFooterOffset

func alignWord(n int) int  { return (n + WordSize - 1) &^ (WordSize - 1) }
func alignDWord(n int) int { return (n + DSize - 1) &^ (DSize - 1) }
