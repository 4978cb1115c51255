package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/segalloc/heapkit/alloc"
	"github.com/segalloc/heapkit/arena"
)

var initChunkSize int

func init() {
	cmd := newInitCmd()
	cmd.Flags().IntVar(&initChunkSize, "chunk-size", alloc.ChunkSize, "bytes requested per heap extension")
	rootCmd.AddCommand(cmd)
}

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create a fresh heap file",
		Long: `The init command lays out a brand new heap — list heads, prologue
and epilogue sentinels, and a first extension — and writes it to the
path named by --heap, overwriting any existing file there.

Example:
  heapctl init --heap heap.bin`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit()
		},
	}
}

func runInit() error {
	if _, err := os.Stat(heapPath); err == nil {
		printVerbose("overwriting existing heap file %s\n", heapPath)
	}

	a, err := alloc.New(arena.New(), alloc.WithChunkSize(initChunkSize))
	if err != nil {
		return fmt.Errorf("initialize heap: %w", err)
	}

	if err := saveHeap(heapPath, a); err != nil {
		return err
	}

	printInfo("initialized heap at %s (%d bytes)\n", heapPath, len(a.Bytes()))
	return nil
}
