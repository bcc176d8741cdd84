// Package interactive provides a line-based front end for terminals that
// cannot run the full-screen UI (legacy builds, dumb terminals).
//
// Each input line replaces the text; lines starting with ':' are
// commands that move the sliders or close the window.
package interactive

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/kannan/roxl/internal/app"
	"github.com/kannan/roxl/internal/config"
	"github.com/kannan/roxl/internal/console"
	"github.com/kannan/roxl/internal/logger"
	"github.com/kannan/roxl/internal/rotation"
	"github.com/kannan/roxl/internal/window"
)

// ANSI color codes for terminal output
const (
	colorReset  = "\033[0m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
	colorRed    = "\033[31m"
	colorBold   = "\033[1m"
)

// Session is one line-mode window.
type Session struct {
	in       io.Reader
	out      io.Writer
	setTitle func(string) error
	log      *slog.Logger

	text   string
	title  string
	labels map[window.Label]string
	done   bool
	state  *window.State
}

// Options configures a Session. Zero values use stdin, stdout and the
// console title.
type Options struct {
	In       io.Reader
	Out      io.Writer
	SetTitle func(string) error
	Logger   *slog.Logger
}

// New creates a session for cfg.
func New(cfg *config.Config, opts Options) *Session {
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.SetTitle == nil {
		opts.SetTitle = console.SetTitle
	}
	if opts.Logger == nil {
		opts.Logger = logger.Default
	}

	s := &Session{
		in:       opts.In,
		out:      opts.Out,
		setTitle: opts.SetTitle,
		log:      opts.Logger.With("component", "interactive"),
		text:     cfg.Text,
		labels:   make(map[window.Label]string),
	}
	s.state = window.New(s, window.Options{
		Shift:       cfg.Shift,
		Truncation:  cfg.Truncation,
		Granularity: cfg.Timer.Granularity(),
		Threshold:   cfg.Timer.Threshold(),
		Logger:      opts.Logger,
	})
	return s
}

// Run starts the interactive line-mode application.
func Run(cfg *config.Config) error {
	return New(cfg, Options{}).Run(context.Background())
}

// Text implements window.Host.
func (s *Session) Text() string { return s.text }

// SetTitle implements window.Host.
func (s *Session) SetTitle(title string) error {
	if err := s.setTitle(title); err != nil {
		return err
	}
	s.title = title
	return nil
}

// SetLabel implements window.Host. Labels are echoed as they change.
func (s *Session) SetLabel(label window.Label, text string) error {
	s.labels[label] = text
	_, err := fmt.Fprintf(s.out, "%s  %s%s\n", colorCyan, text, colorReset)
	return err
}

// Quit implements window.Host.
func (s *Session) Quit() { s.done = true }

// Title returns the last title written.
func (s *Session) Title() string { return s.title }

// Run processes input lines and timer ticks until the window is closed,
// the input ends or ctx is cancelled. All state changes happen on the
// calling goroutine.
//
// The line reader blocks on the input and only notices the end of Run
// after its next line or EOF; on stdin it lives until the process exits.
func (s *Session) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	s.printBanner()

	if err := s.state.Init(); err != nil {
		s.printError(err)
		return err
	}

	lines := make(chan string)
	go s.readLines(ctx, lines)

	ticker := time.NewTicker(s.state.Granularity())
	defer ticker.Stop()

	for !s.done {
		var err error
		select {
		case <-ctx.Done():
			err = s.state.Handle(window.Closed{})
		case <-ticker.C:
			err = s.state.Handle(window.TimerTick{})
		case line, ok := <-lines:
			if !ok {
				err = s.state.Handle(window.Closed{})
			} else {
				err = s.handleLine(line)
			}
		}
		if err != nil {
			s.printError(err)
			return err
		}
	}

	fmt.Fprintln(s.out, colorGreen+"Window closed."+colorReset)
	return nil
}

func (s *Session) readLines(ctx context.Context, lines chan<- string) {
	defer close(lines)
	scanner := bufio.NewScanner(s.in)
	for scanner.Scan() {
		select {
		case lines <- scanner.Text():
		case <-ctx.Done():
			return
		}
	}
	if err := scanner.Err(); err != nil {
		s.log.Warn("reading input failed", "error", err)
	}
}

// handleLine turns one input line into a window event. A leading "::"
// stands for a literal ':' in the text.
func (s *Session) handleLine(line string) error {
	if rest, ok := strings.CutPrefix(line, "::"); ok {
		s.text = ":" + rest
		return s.state.Handle(window.TextChanged{})
	}
	if !strings.HasPrefix(line, ":") {
		s.text = line
		return s.state.Handle(window.TextChanged{})
	}

	fields := strings.Fields(strings.TrimPrefix(line, ":"))
	if len(fields) == 0 {
		return nil
	}

	switch strings.ToLower(fields[0]) {
	case "q", "quit", "exit":
		return s.state.Handle(window.Closed{})
	case "help", "?":
		s.printHelp()
		return nil
	case "speed", "shift":
		n, ok := s.position(fields, rotation.ShiftMax)
		if !ok {
			return nil
		}
		return s.state.Handle(window.ShiftMoved{Position: n})
	case "trunc", "truncate", "truncation":
		n, ok := s.position(fields, rotation.TruncationMax)
		if !ok {
			return nil
		}
		return s.state.Handle(window.TruncationMoved{Position: n})
	case "title":
		fmt.Fprintf(s.out, "  %s%q%s\n", colorYellow, s.title, colorReset)
		return nil
	}

	fmt.Fprintf(s.out, "%sUnknown command %q. Type :help for help.%s\n", colorRed, fields[0], colorReset)
	return nil
}

// position parses the slider position argument of a command.
func (s *Session) position(fields []string, hi int) (int, bool) {
	if len(fields) != 2 {
		fmt.Fprintf(s.out, "%sUsage: :%s <0-%d>%s\n", colorRed, fields[0], hi, colorReset)
		return 0, false
	}
	n, err := strconv.Atoi(fields[1])
	if err != nil || n < 0 || n > hi {
		fmt.Fprintf(s.out, "%sInvalid value %q; expected 0-%d.%s\n", colorRed, fields[1], hi, colorReset)
		return 0, false
	}
	return n, true
}

func (s *Session) printError(err error) {
	fmt.Fprintf(s.out, "%s%v%s\n", colorRed, err, colorReset)
}

func (s *Session) printBanner() {
	fmt.Fprint(s.out, colorGreen+colorBold)
	fmt.Fprint(s.out, app.GetSmallBanner())
	fmt.Fprintln(s.out, colorReset)
	s.printHelp()
}

func (s *Session) printHelp() {
	fmt.Fprintln(s.out, colorYellow+"  Type a line to set the title text."+colorReset)
	fmt.Fprintln(s.out, colorYellow+"  Start it with '::' for text beginning with ':'."+colorReset)
	fmt.Fprintf(s.out, "  %s:speed <0-%d>%s   shifting speed (0 stops)\n", colorCyan, rotation.ShiftMax, colorReset)
	fmt.Fprintf(s.out, "  %s:trunc <0-%d>%s   maximum title length (%d shows all)\n", colorCyan, rotation.TruncationMax, colorReset, rotation.TruncationMax)
	fmt.Fprintf(s.out, "  %s:title%s          print the current title\n", colorCyan, colorReset)
	fmt.Fprintf(s.out, "  %s:quit%s           close\n", colorCyan, colorReset)
	fmt.Fprintln(s.out)
}
