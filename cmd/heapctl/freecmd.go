package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newFreeCmd())
}

func newFreeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "free <ptr>",
		Short: "Free a block and persist the resulting heap",
		Long: `The free command loads the heap named by --heap, frees the block at
<ptr>, coalesces it with any free neighbors, and writes the mutated
heap back to disk.

Example:
  heapctl free 4128`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFree(args[0])
		},
	}
}

func runFree(ptrArg string) error {
	ptr, err := strconv.Atoi(ptrArg)
	if err != nil {
		return fmt.Errorf("parse ptr: %w", err)
	}

	a, err := loadHeap(heapPath)
	if err != nil {
		return err
	}

	if _, err := a.IsAllocated(ptr); err != nil {
		if jsonOut {
			return printJSON(map[string]any{"ok": false, "error": err.Error()})
		}
		return err
	}

	a.Free(ptr)

	if err := saveHeap(heapPath, a); err != nil {
		return err
	}

	if jsonOut {
		return printJSON(map[string]any{"ok": true, "ptr": ptr})
	}
	printInfo("freed block at offset %d\n", ptr)
	return nil
}
