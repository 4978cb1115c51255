package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"
)

func (m Model) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}

	if m.showHelp {
		help := overlay.New(
			newHelpModel(),
			newMainViewModel(&m),
			overlay.Center,
			overlay.Center,
			0, 0,
		)
		return help.View()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderHeader(),
		m.viewport.View(),
		m.renderStatus(),
	)
}

func (m Model) renderHeader() string {
	title := fmt.Sprintf("heapview — %s", m.heapPath)
	subtitle := fmt.Sprintf(
		"%d bytes  |  %d alloc (%d bytes)  |  %d free (%d bytes)  |  largest free %d bytes",
		m.summary.TotalBytes,
		m.summary.AllocBlocks, m.summary.AllocBytes,
		m.summary.FreeBlocks, m.summary.FreeBytes,
		m.summary.LargestFree,
	)
	return headerStyle.Render(title + "\n" + subtitle)
}

func (m Model) renderStatus() string {
	msg := m.statusMessage
	if msg == "" {
		msg = "? for help · q to quit"
	}
	return statusStyle.Render(msg)
}

// updateViewport rebuilds the viewport's content from the current block
// list and cursor, and keeps the cursor in view.
func (m *Model) updateViewport() {
	var b strings.Builder
	for i, blk := range m.blocks {
		badge := allocBadgeStyle.Render("ALLOC")
		if !blk.Allocated {
			badge = freeBadgeStyle.Render("FREE ")
		}
		line := fmt.Sprintf("0x%08x  size=%-6d  %s", blk.Offset, blk.Size, badge)
		if i == m.cursor {
			line = selectedRowStyle.Render(line)
		} else {
			line = rowStyle.Render(line)
		}
		b.WriteString(line)
		if i < len(m.blocks)-1 {
			b.WriteString("\n")
		}
	}
	m.viewport.SetContent(b.String())

	if m.viewport.Height > 0 {
		lineTop := m.viewport.YOffset
		lineBottom := lineTop + m.viewport.Height - 1
		if m.cursor < lineTop {
			m.viewport.SetYOffset(m.cursor)
		} else if m.cursor > lineBottom {
			m.viewport.SetYOffset(m.cursor - m.viewport.Height + 1)
		}
	}
}
