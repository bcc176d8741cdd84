// Package window holds the state of the title-rotating window and the
// event handling that drives it.
//
// A front end implements Host, translates its native input into Event
// values and feeds them to State.Handle from a single goroutine.
package window

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/kannan/roxl/internal/rotation"
)

// Label identifies one of the two labels above the sliders.
type Label int

const (
	LabelTruncation Label = iota
	LabelShift
)

func (l Label) String() string {
	switch l {
	case LabelTruncation:
		return "truncation"
	case LabelShift:
		return "shift"
	default:
		return fmt.Sprintf("label(%d)", int(l))
	}
}

// Host is the platform side of a window: the input box, the labels,
// the title bar and the message loop.
type Host interface {
	// Text returns the current content of the input box.
	Text() string
	// SetTitle writes the window title.
	SetTitle(title string) error
	// SetLabel replaces the text of a label.
	SetLabel(label Label, text string) error
	// Quit ends the message loop.
	Quit()
}

// Error reports a failed host call. It is not recoverable.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("error while %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Options configures a State.
type Options struct {
	// Shift is the initial shifting-speed slider position.
	Shift int
	// Truncation is the initial truncation slider position.
	Truncation int
	// Granularity is the timer interval. Zero means rotation.TickGranularity.
	Granularity time.Duration
	// Threshold is the tick accumulator limit. Zero means rotation.Threshold.
	Threshold time.Duration
	Logger    *slog.Logger
}

// State is everything the window remembers between events.
type State struct {
	host Host
	log  *slog.Logger

	granularity time.Duration
	threshold   time.Duration

	shift      int
	truncation int
	ticks      int
	offset     int

	initShift      int
	initTruncation int
}

// New creates the state for host. Call Init once the controls exist.
func New(host Host, opts Options) *State {
	if opts.Granularity <= 0 {
		opts.Granularity = rotation.TickGranularity
	}
	if opts.Threshold <= 0 {
		opts.Threshold = rotation.Threshold
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	return &State{
		host:           host,
		log:            opts.Logger.With("component", "window"),
		granularity:    opts.Granularity,
		threshold:      opts.Threshold,
		initShift:      clamp(opts.Shift, 0, rotation.ShiftMax),
		initTruncation: clamp(opts.Truncation, 0, rotation.TruncationMax),
	}
}

// Init applies the initial slider positions, which renders the first
// title and fills in both labels.
func (s *State) Init() error {
	if err := s.Handle(TruncationMoved{Position: s.initTruncation}); err != nil {
		return err
	}
	return s.Handle(ShiftMoved{Position: s.initShift})
}

// Granularity returns the timer interval the host should tick at.
func (s *State) Granularity() time.Duration { return s.granularity }

// Shift returns the shifting-speed slider position.
func (s *State) Shift() int { return s.shift }

// Truncation returns the truncation slider position.
func (s *State) Truncation() int { return s.truncation }

// Offset returns the current rotation offset.
func (s *State) Offset() int { return s.offset }

// Ticks returns the tick accumulator.
func (s *State) Ticks() int { return s.ticks }

// render recomputes the title from the input box and writes it.
func (s *State) render() error {
	title, offset := rotation.Title(s.host.Text(), s.offset, s.truncation)
	s.offset = offset
	if err := s.host.SetTitle(title); err != nil {
		return &Error{Op: "updating the window's title", Err: err}
	}
	return nil
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
