// Package tui provides the terminal user interface for roxl.
//
// The terminal plays the window: its title bar shows the rotating text,
// and the screen holds the input box and the two sliders.
package tui

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kannan/roxl/internal/config"
	"github.com/kannan/roxl/internal/logger"
	"github.com/kannan/roxl/internal/rotation"
	"github.com/kannan/roxl/internal/tui/styles"
	"github.com/kannan/roxl/internal/window"
)

// Control is the focusable part of the window.
type Control int

const (
	ControlInput Control = iota
	ControlTruncation
	ControlShift
	controlCount
)

const (
	defaultWidth = 60
	sliderPage   = 5
)

// Model is the main TUI application model.
type Model struct {
	state *window.State
	host  *host
	log   *slog.Logger

	input      textinput.Model
	truncation int
	shift      int
	focus      Control
	width      int
	err        error
}

type tickMsg time.Time

// New builds the window from cfg and applies the initial slider
// positions.
func New(cfg *config.Config, log *slog.Logger) (Model, error) {
	if log == nil {
		log = logger.Default
	}

	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "Window Title"
	ti.SetValue(cfg.Text)
	ti.Focus()
	ti.Width = defaultWidth

	h := newHost(cfg.Text)
	state := window.New(h, window.Options{
		Shift:       cfg.Shift,
		Truncation:  cfg.Truncation,
		Granularity: cfg.Timer.Granularity(),
		Threshold:   cfg.Timer.Threshold(),
		Logger:      log,
	})
	if err := state.Init(); err != nil {
		return Model{}, err
	}

	return Model{
		state:      state,
		host:       h,
		log:        log,
		input:      ti,
		truncation: state.Truncation(),
		shift:      state.Shift(),
		focus:      ControlInput,
		width:      defaultWidth,
	}, nil
}

// Run starts the TUI application.
func Run(cfg *config.Config) error {
	m, err := New(cfg, logger.With("component", "tui"))
	if err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok && fm.err != nil {
		return fm.err
	}
	return nil
}

// Init initializes the TUI model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		m.tick(),
		m.host.flush(),
	)
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.state.Granularity(), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Title returns the title last written to the terminal.
func (m Model) Title() string { return m.host.title }

// Label returns the current text of a label.
func (m Model) Label(l window.Label) string { return m.host.labels[l] }

// Focus returns the focused control.
func (m Model) Focus() Control { return m.focus }

// Err returns the fatal error that stopped the program, if any.
func (m Model) Err() error { return m.err }

// Quitting reports whether the window was closed.
func (m Model) Quitting() bool { return m.host.quit }

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = max(20, msg.Width-8)
		m.input.Width = m.width - 4
		return m, nil

	case tickMsg:
		m = m.dispatch(window.TimerTick{})
		return m, tea.Batch(m.host.flush(), m.tick())
	}

	// Clipboard pastes arrive here as the input's own message type.
	return m.updateInput(msg)
}

// dispatch hands ev to the window state. A failure stops the program.
func (m Model) dispatch(ev window.Event) Model {
	if m.err != nil {
		return m
	}
	if err := m.state.Handle(ev); err != nil {
		m.log.Error("window event failed", "event", fmt.Sprintf("%T", ev), "error", err)
		m.err = err
		m.host.Quit()
	}
	return m
}

// handleKeyPress processes keyboard input.
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		m = m.dispatch(window.Closed{})
		return m, m.host.flush()
	case "tab", "down":
		return m.setFocus((m.focus + 1) % controlCount)
	case "shift+tab", "up":
		return m.setFocus((m.focus + controlCount - 1) % controlCount)
	}

	if m.focus == ControlInput {
		return m.updateInput(msg)
	}
	return m.moveSlider(msg)
}

func (m Model) setFocus(c Control) (tea.Model, tea.Cmd) {
	m.focus = c
	if c == ControlInput {
		return m, m.input.Focus()
	}
	m.input.Blur()
	return m, nil
}

// updateInput feeds msg to the input box. Whenever its value no longer
// matches the text the window renders, the text changed.
func (m Model) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	if after := m.input.Value(); after != m.host.text {
		m.host.text = after
		m = m.dispatch(window.TextChanged{})
		return m, tea.Batch(cmd, m.host.flush())
	}
	return m, cmd
}

func (m Model) moveSlider(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	lo, hi := 0, rotation.TruncationMax
	pos := m.truncation
	if m.focus == ControlShift {
		hi = rotation.ShiftMax
		pos = m.shift
	}

	next := pos
	switch msg.String() {
	case "left", "h":
		next--
	case "right", "l":
		next++
	case "pgdown":
		next -= sliderPage
	case "pgup":
		next += sliderPage
	case "home":
		next = lo
	case "end":
		next = hi
	default:
		return m, nil
	}

	next = min(max(next, lo), hi)
	if next == pos {
		return m, nil
	}

	if m.focus == ControlShift {
		m.shift = next
		m = m.dispatch(window.ShiftMoved{Position: next})
	} else {
		m.truncation = next
		m = m.dispatch(window.TruncationMoved{Position: next})
	}
	return m, m.host.flush()
}

// View renders the window.
func (m Model) View() string {
	if m.err != nil {
		return styles.ErrorStyle.Render(m.err.Error()) + "\n"
	}

	var sb strings.Builder

	sb.WriteString(styles.TitleStyle.Render("roxl"))
	sb.WriteString("\n")

	inputStyle := styles.InputStyle
	if m.focus == ControlInput {
		inputStyle = styles.InputFocusedStyle
	}
	sb.WriteString(inputStyle.Width(m.width).Render(m.input.View()))
	sb.WriteString("\n\n")

	sb.WriteString(m.renderLabel(ControlTruncation, m.host.labels[window.LabelTruncation]))
	sb.WriteString("\n")
	sb.WriteString(styles.Slider(m.truncation, 0, rotation.TruncationMax, m.width))
	sb.WriteString("\n\n")

	sb.WriteString(m.renderLabel(ControlShift, m.host.labels[window.LabelShift]))
	sb.WriteString("\n")
	sb.WriteString(styles.Slider(m.shift, 0, rotation.ShiftMax, m.width))
	sb.WriteString("\n\n")

	sb.WriteString(styles.PreviewStyle.Render("Title: " + m.host.title))
	sb.WriteString("\n")

	sb.WriteString(styles.FooterStyle.Render(styles.RenderHelp([]styles.Binding{
		{Key: "tab", Desc: "next control"},
		{Key: "←/→", Desc: "move slider"},
		{Key: "pgup/pgdn", Desc: "move by 5"},
		{Key: "esc", Desc: "close"},
	})))

	return styles.BoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sb.String()))
}

func (m Model) renderLabel(c Control, text string) string {
	if m.focus == c {
		return styles.LabelFocusedStyle.Render("▸ " + text)
	}
	return styles.LabelStyle.Render("  " + text)
}
