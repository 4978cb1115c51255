package main

import (
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/segalloc/heapkit/alloc"
	"github.com/segalloc/heapkit/arena"
)

var (
	benchOps  int
	benchSeed int64
	benchMax  int
)

func init() {
	cmd := newBenchCmd()
	cmd.Flags().IntVar(&benchOps, "ops", 10000, "number of allocate/free/realloc operations to run")
	cmd.Flags().Int64Var(&benchSeed, "seed", 1, "PRNG seed for the synthetic workload")
	cmd.Flags().IntVar(&benchMax, "max-size", 2048, "largest request size the workload will generate")
	rootCmd.AddCommand(cmd)
}

func newBenchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bench",
		Short: "Run a synthetic workload against an in-memory heap",
		Long: `The bench command builds a fresh, in-memory allocator — never touching
--heap, since a single process has no need to persist across
invocations — and drives it through a randomized mix of allocate,
free and realloc calls. It prints the resulting lifetime Stats and
elapsed time.

Example:
  heapctl bench --ops 50000 --seed 7`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench()
		},
	}
}

func runBench() error {
	a, err := alloc.New(arena.New())
	if err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(benchSeed))
	live := make([]int, 0, benchOps)

	start := time.Now()
	for i := 0; i < benchOps; i++ {
		switch rng.Intn(3) {
		case 0:
			size := rng.Intn(benchMax) + 1
			if p := a.Allocate(size); p != alloc.NullPtr {
				live = append(live, p)
			}
		case 1:
			if len(live) == 0 {
				continue
			}
			idx := rng.Intn(len(live))
			a.Free(live[idx])
			live[idx] = live[len(live)-1]
			live = live[:len(live)-1]
		case 2:
			if len(live) == 0 {
				continue
			}
			idx := rng.Intn(len(live))
			size := rng.Intn(benchMax) + 1
			if p := a.Reallocate(live[idx], size); p != alloc.NullPtr {
				live[idx] = p
			} else {
				live[idx] = live[len(live)-1]
				live = live[:len(live)-1]
			}
		}
	}
	elapsed := time.Since(start)

	stats := a.Stats()
	summary := a.HeapSummary()

	if jsonOut {
		return printJSON(map[string]any{
			"stats":       stats,
			"summary":     summary,
			"elapsed_ns":  elapsed.Nanoseconds(),
			"ops":         benchOps,
			"seed":        benchSeed,
			"live_blocks": len(live),
		})
	}

	printInfo("ran %d ops (seed=%d) in %s\n", benchOps, benchSeed, elapsed)
	printInfo("  alloc calls:    %d (fast-path %d, slow-path %d)\n", stats.AllocCalls, stats.AllocFastPath, stats.AllocSlowPath)
	printInfo("  free calls:     %d\n", stats.FreeCalls)
	printInfo("  realloc calls:  %d (in-place %d, moved %d)\n", stats.ReallocCalls, stats.ReallocInPlace, stats.ReallocMoved)
	printInfo("  splits:         %d\n", stats.SplitCount)
	printInfo("  coalesces:      %d forward, %d backward\n", stats.CoalesceForward, stats.CoalesceBackward)
	printInfo("  heap grows:     %d (%d bytes)\n", stats.GrowCalls, stats.GrowBytes)
	printInfo("  final heap:     %d bytes, %d alloc / %d free blocks\n", summary.TotalBytes, summary.AllocBlocks, summary.FreeBlocks)
	return nil
}
