package alloc

// Named growth presets, the way the teacher names its size-class configs
// (ConfigFineGrained/ConfigBalanced/ConfigCoarse/ConfigRegistry). BIN_COUNT
// and BOUND are fixed by the allocator's boundary formula, so unlike the
// teacher's presets these can't retune the size classes themselves — they
// only pick how many bytes extendHeap requests from the heap source on
// each growth, the one knob New leaves open via WithChunkSize.

// ConfigDefault grows the heap in the reference allocator's own extension
// size. This is the preset New uses when no Option overrides it.
var ConfigDefault = WithChunkSize(ChunkSize)

// ConfigFine grows the heap in smaller increments than ConfigDefault,
// trading more frequent extendHeap calls for a lower peak footprint when a
// workload's live set stays well under a full chunk — the same
// fewer-bytes-per-step-but-more-steps tradeoff the teacher's
// ConfigFineGrained makes at the size-class level.
var ConfigFine = WithChunkSize(ChunkSize / 4)
