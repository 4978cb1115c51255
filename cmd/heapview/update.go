package main

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const headerHeight = 4
const statusHeight = 2

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - headerHeight - statusHeight
		m.updateViewport()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		if key.Matches(msg, m.keys.Help) || key.Matches(msg, m.keys.Quit) {
			m.showHelp = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		m.updateViewport()

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.blocks)-1 {
			m.cursor++
		}
		m.updateViewport()

	case key.Matches(msg, m.keys.PageUp):
		m.viewport.ViewUp()

	case key.Matches(msg, m.keys.PageDown):
		m.viewport.ViewDown()

	case key.Matches(msg, m.keys.Top):
		m.cursor = 0
		m.updateViewport()

	case key.Matches(msg, m.keys.Bottom):
		m.cursor = len(m.blocks) - 1
		m.updateViewport()

	case key.Matches(msg, m.keys.Refresh):
		if err := m.load(); err != nil {
			m.err = err
		} else {
			m.statusMessage = "reloaded " + m.heapPath
		}
		m.updateViewport()

	case key.Matches(msg, m.keys.Copy):
		m.copySelection()
	}

	return m, nil
}

func (m *Model) copySelection() {
	if m.cursor < 0 || m.cursor >= len(m.blocks) {
		return
	}
	b := m.blocks[m.cursor]
	text := fmt.Sprintf("offset=0x%x size=%d", b.Offset, b.Size)
	if err := clipboard.WriteAll(text); err != nil {
		m.statusMessage = "clipboard unavailable: " + err.Error()
		return
	}
	m.statusMessage = "copied: " + text
}
