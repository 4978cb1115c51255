// Command heapview is an interactive terminal browser for a heapkit heap
// file, showing every block's offset, size and allocation state and
// letting the block under the cursor be copied to the clipboard.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	args := os.Args[1:]
	if len(args) > 0 && (args[0] == "--help" || args[0] == "-h") {
		printHelp()
		return
	}

	heapPath := "heap.bin"
	if len(args) > 0 {
		heapPath = args[0]
	}

	m, err := NewModel(heapPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

func printHelp() {
	fmt.Println("heapview - interactive browser for a heapkit heap file")
	fmt.Println()
	fmt.Println("USAGE:")
	fmt.Println("  heapview [heap-file]")
	fmt.Println()
	fmt.Println("  Defaults to heap.bin when no path is given. The file is reopened")
	fmt.Println("  from disk on every refresh (r), so heapview can be left running")
	fmt.Println("  in one terminal while heapctl mutates the same file in another.")
	fmt.Println()
	fmt.Println("  ↑/k, ↓/j     move cursor")
	fmt.Println("  pgup/pgdn    page the block list")
	fmt.Println("  g/G          jump to top/bottom")
	fmt.Println("  y            copy the selected block's offset and size")
	fmt.Println("  r            reload the heap file from disk")
	fmt.Println("  ?            toggle help")
	fmt.Println("  q, ctrl+c    quit")
}
