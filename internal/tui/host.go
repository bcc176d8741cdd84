package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kannan/roxl/internal/window"
)

// host is the Bubble Tea side of window.Host. Writes are collected as
// commands and handed back to the program after each event.
type host struct {
	text    string
	title   string
	labels  map[window.Label]string
	pending []tea.Cmd
	quit    bool
}

func newHost(text string) *host {
	return &host{
		text:   text,
		labels: make(map[window.Label]string),
	}
}

func (h *host) Text() string { return h.text }

func (h *host) SetTitle(title string) error {
	h.title = title
	h.pending = append(h.pending, tea.SetWindowTitle(title))
	return nil
}

func (h *host) SetLabel(label window.Label, text string) error {
	h.labels[label] = text
	return nil
}

func (h *host) Quit() { h.quit = true }

// flush returns the commands queued since the last flush.
func (h *host) flush() tea.Cmd {
	cmds := h.pending
	h.pending = nil
	if h.quit {
		cmds = append(cmds, tea.Quit)
	}
	return tea.Batch(cmds...)
}
