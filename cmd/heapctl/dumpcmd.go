package main

import (
	"os"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newDumpCmd())
}

func newDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump",
		Short: "Print a block-by-block trace of the heap",
		Long: `The dump command loads the heap named by --heap and prints every
block's offset, size and allocation state in address order, independent
of checkheap's verbose gating.

Example:
  heapctl dump`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump()
		},
	}
}

func runDump() error {
	a, err := loadHeap(heapPath)
	if err != nil {
		return err
	}
	a.DumpHeap(os.Stdout)
	return nil
}
