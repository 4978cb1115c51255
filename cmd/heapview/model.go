package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/segalloc/heapkit/alloc"
	"github.com/segalloc/heapkit/arena"
)

// Model is heapview's single screen: a scrollable list of every block in
// a heap file, driven by a cursor and a viewport.
type Model struct {
	heapPath string
	summary  alloc.HeapSummary
	blocks   []alloc.BlockInfo
	cursor   int

	viewport viewport.Model
	width    int
	height   int

	keys KeyMap

	showHelp      bool
	statusMessage string
	err           error
}

// NewModel loads heapPath and builds the initial model.
func NewModel(heapPath string) (Model, error) {
	m := Model{
		heapPath: heapPath,
		viewport: viewport.New(0, 0),
		keys:     DefaultKeyMap(),
	}
	if err := m.load(); err != nil {
		return Model{}, err
	}
	return m, nil
}

// load reopens the heap file from disk and refreshes the block list. It's
// called on startup, on every 'r' keypress, and is deliberately the only
// place heapview reads a heap — heapctl may have mutated the file between
// refreshes, and heapview never caches the allocator across calls.
func (m *Model) load() error {
	data, err := os.ReadFile(m.heapPath)
	if err != nil {
		return fmt.Errorf("read heap file %q: %w", m.heapPath, err)
	}

	a := alloc.Open(arena.FromBytes(data))
	m.blocks = a.Blocks()
	m.summary = a.HeapSummary()
	if m.cursor >= len(m.blocks) {
		m.cursor = len(m.blocks) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.err = nil
	return nil
}

func (m Model) Init() tea.Cmd {
	return nil
}
