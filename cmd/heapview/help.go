package main

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// helpModel is the foreground of the help overlay: a static keybinding
// reference rendered once and never updated.
type helpModel struct {
	content string
}

func newHelpModel() *helpModel {
	var b strings.Builder
	b.WriteString(helpTitleStyle.Render("Keyboard Shortcuts"))
	b.WriteString("\n\n")

	rows := []struct{ key, desc string }{
		{"↑/↓ or k/j", "move cursor"},
		{"pgup/pgdn", "page the block list"},
		{"g/G", "jump to top/bottom"},
		{"y", "copy selected block's offset and size"},
		{"r", "reload the heap file from disk"},
		{"?", "toggle this help"},
		{"q", "quit"},
	}
	for _, r := range rows {
		b.WriteString(helpKeyStyle.Render(r.key))
		b.WriteString("  ")
		b.WriteString(helpDescStyle.Render(r.desc))
		b.WriteString("\n")
	}

	return &helpModel{content: modalStyle.Render(strings.TrimRight(b.String(), "\n"))}
}

func (h *helpModel) Init() tea.Cmd                           { return nil }
func (h *helpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) { return h, nil }
func (h *helpModel) View() string                            { return h.content }


// mainViewModel wraps Model for use as the overlay's background, so the
// block list stays visible (dimmed by the modal) behind the help panel.
type mainViewModel struct {
	model *Model
}

func newMainViewModel(m *Model) *mainViewModel {
	return &mainViewModel{model: m}
}

func (m *mainViewModel) Init() tea.Cmd                           { return nil }
func (m *mainViewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) { return m, nil }
func (m *mainViewModel) View() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.model.renderHeader(),
		m.model.viewport.View(),
		m.model.renderStatus(),
	)
}
