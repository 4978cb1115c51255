package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	heapPath string
	jsonOut  bool
	verbose  bool
)

var rootCmd = &cobra.Command{
	Use:     "heapctl",
	Short:   "Exercise the heapkit allocator from the command line",
	Long:    `heapctl drives a heapkit allocator one operation at a time, persisting heap state to a file between invocations so allocate/free/realloc calls can be composed across separate commands.`,
	Version: "0.1.0",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&heapPath, "heap", "heap.bin", "path to the persisted heap file")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// printInfo prints a message to stdout unless --json was passed, so piping
// JSON output to another tool never picks up stray text.
func printInfo(format string, args ...any) {
	if !jsonOut {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printVerbose prints a message only when -v/--verbose was passed.
func printVerbose(format string, args ...any) {
	if verbose {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON encodes v as indented JSON on stdout.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
