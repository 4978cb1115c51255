package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newReallocCmd())
}

func newReallocCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "realloc <ptr> <size>",
		Short: "Resize a block and persist the resulting heap",
		Long: `The realloc command loads the heap named by --heap and resizes the
block at <ptr> to hold at least <size> bytes, growing or shrinking it
in place when possible and otherwise moving it. A <size> of 0 behaves
like free; a <ptr> of 0 behaves like alloc.

Example:
  heapctl realloc 4128 512`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRealloc(args[0], args[1])
		},
	}
}

func runRealloc(ptrArg, sizeArg string) error {
	ptr, err := strconv.Atoi(ptrArg)
	if err != nil {
		return fmt.Errorf("parse ptr: %w", err)
	}
	size, err := strconv.Atoi(sizeArg)
	if err != nil {
		return fmt.Errorf("parse size: %w", err)
	}

	a, err := loadHeap(heapPath)
	if err != nil {
		return err
	}

	newPtr := a.Reallocate(ptr, size)

	if err := saveHeap(heapPath, a); err != nil {
		return err
	}

	if jsonOut {
		return printJSON(map[string]any{"ok": true, "ptr": newPtr, "moved": newPtr != ptr})
	}
	if newPtr == ptr {
		printInfo("resized block at offset %d to %d bytes\n", ptr, size)
	} else {
		printInfo("moved block from offset %d to offset %d (%d bytes)\n", ptr, newPtr, size)
	}
	return nil
}
