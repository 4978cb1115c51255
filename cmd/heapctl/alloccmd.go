package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newAllocCmd())
}

func newAllocCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "alloc <size>",
		Short: "Allocate a block and persist the resulting heap",
		Long: `The alloc command loads the heap named by --heap, requests a block
of at least <size> bytes, and writes the mutated heap back to disk. It
prints the resulting offset, or fails if the heap is exhausted.

Example:
  heapctl alloc 128`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAlloc(args[0])
		},
	}
}

func runAlloc(sizeArg string) error {
	size, err := strconv.Atoi(sizeArg)
	if err != nil {
		return fmt.Errorf("parse size: %w", err)
	}

	a, err := loadHeap(heapPath)
	if err != nil {
		return err
	}

	ptr, err := a.MustAllocate(size)
	if err != nil {
		if jsonOut {
			return printJSON(map[string]any{"ok": false, "error": err.Error()})
		}
		return err
	}

	if err := saveHeap(heapPath, a); err != nil {
		return err
	}

	if jsonOut {
		return printJSON(map[string]any{"ok": true, "ptr": ptr, "size": size})
	}
	printInfo("allocated %d bytes at offset %d\n", size, ptr)
	return nil
}
