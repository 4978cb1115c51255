package main

import (
	"github.com/spf13/cobra"

	"github.com/segalloc/heapkit/alloc"
)

func init() {
	rootCmd.AddCommand(newStatsCmd())
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show the current heap's shape",
		Long: `The stats command loads the heap named by --heap and reports its
current shape: allocated and free block counts and byte totals, the
largest free span, and per-bin free-list occupancy. These figures are
derived by walking the heap fresh, since the allocator's lifetime
counters don't survive a save/load round trip across invocations — use
"heapctl bench" if you want those.

Example:
  heapctl stats --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats()
		},
	}
}

func runStats() error {
	a, err := loadHeap(heapPath)
	if err != nil {
		return err
	}

	summary := a.HeapSummary()

	if jsonOut {
		return printJSON(summary)
	}

	printInfo("Heap: %s\n", heapPath)
	printInfo("  Total bytes:    %d\n", summary.TotalBytes)
	printInfo("  Alloc blocks:   %d (%d bytes)\n", summary.AllocBlocks, summary.AllocBytes)
	printInfo("  Free blocks:    %d (%d bytes)\n", summary.FreeBlocks, summary.FreeBytes)
	printInfo("  Largest free:   %d bytes\n", summary.LargestFree)
	printInfo("  Free list occupancy by bin:\n")
	for class := 0; class < alloc.BinCount; class++ {
		if summary.BinCounts[class] == 0 {
			continue
		}
		printInfo("    bin %2d: %d\n", class, summary.BinCounts[class])
	}
	return nil
}
