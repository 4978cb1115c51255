package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newCheckHeapCmd())
}

func newCheckHeapCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "checkheap",
		Short: "Validate the heap's internal invariants",
		Long: `The checkheap command loads the heap named by --heap and walks its
blocks and free lists, reporting the first invariant violation found,
if any. Pass -v/--verbose to also have the walk trace every block it
visits to stderr as it goes.

Example:
  heapctl checkheap -v`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheckHeap()
		},
	}
}

func runCheckHeap() error {
	a, err := loadHeap(heapPath)
	if err != nil {
		return err
	}

	err = a.CheckHeap(verbose)
	if jsonOut {
		result := map[string]any{"ok": err == nil}
		if err != nil {
			result["error"] = err.Error()
		}
		return printJSON(result)
	}
	if err != nil {
		return err
	}
	printInfo("heap consistent\n")
	return nil
}
