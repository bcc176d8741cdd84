package window

import (
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/kannan/roxl/internal/rotation"
)

// fakeHost records everything the state writes.
type fakeHost struct {
	text     string
	titles   []string
	labels   map[Label]string
	quit     bool
	titleErr error
	labelErr error
}

func newFakeHost(text string) *fakeHost {
	return &fakeHost{text: text, labels: map[Label]string{}}
}

func (h *fakeHost) Text() string { return h.text }

func (h *fakeHost) SetTitle(title string) error {
	if h.titleErr != nil {
		return h.titleErr
	}
	h.titles = append(h.titles, title)
	return nil
}

func (h *fakeHost) SetLabel(label Label, text string) error {
	if h.labelErr != nil {
		return h.labelErr
	}
	h.labels[label] = text
	return nil
}

func (h *fakeHost) Quit() { h.quit = true }

func (h *fakeHost) lastTitle() string {
	if len(h.titles) == 0 {
		return ""
	}
	return h.titles[len(h.titles)-1]
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newState(t *testing.T, host Host, shift, truncation int) *State {
	t.Helper()
	s := New(host, Options{Shift: shift, Truncation: truncation, Logger: quietLogger()})
	if err := s.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	return s
}

func tickN(t *testing.T, s *State, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		if err := s.Handle(TimerTick{}); err != nil {
			t.Fatalf("tick %d: %v", i, err)
		}
	}
}

func TestInitRendersTitleAndLabels(t *testing.T) {
	host := newFakeHost("Window Title")
	s := newState(t, host, 0, rotation.TruncationMax)

	if got := host.lastTitle(); got != "Window Title" {
		t.Errorf("title = %q, want %q", got, "Window Title")
	}
	if got := host.labels[LabelShift]; got != "No character shifting." {
		t.Errorf("shift label = %q", got)
	}
	if got := host.labels[LabelTruncation]; got != "The whole title is shown." {
		t.Errorf("truncation label = %q", got)
	}
	if s.Offset() != 0 || s.Ticks() != 0 {
		t.Errorf("offset=%d ticks=%d, want zeros", s.Offset(), s.Ticks())
	}
}

func TestInitClampsPositions(t *testing.T) {
	host := newFakeHost("abc")
	s := newState(t, host, 99, -3)

	if s.Shift() != rotation.ShiftMax {
		t.Errorf("shift = %d, want %d", s.Shift(), rotation.ShiftMax)
	}
	if s.Truncation() != 0 {
		t.Errorf("truncation = %d, want 0", s.Truncation())
	}
}

func TestTickRotatesPastThreshold(t *testing.T) {
	host := newFakeHost("HELLO")
	s := newState(t, host, 50, rotation.TruncationMax)
	rendered := len(host.titles)

	// 50 + 50 = 100 is not past the threshold yet.
	tickN(t, s, 2)
	if len(host.titles) != rendered {
		t.Fatalf("rendered before threshold: %v", host.titles)
	}
	if s.Ticks() != 100 {
		t.Errorf("ticks = %d, want 100", s.Ticks())
	}

	tickN(t, s, 1)
	if got := host.lastTitle(); got != "HELLO" {
		t.Errorf("first step title = %q, want HELLO", got)
	}
	if s.Offset() != 1 || s.Ticks() != 0 {
		t.Errorf("offset=%d ticks=%d, want 1, 0", s.Offset(), s.Ticks())
	}

	tickN(t, s, 3)
	if got := host.lastTitle(); got != "ELLOH" {
		t.Errorf("second step title = %q, want ELLOH", got)
	}
}

func TestTickDisabledAtZeroSpeed(t *testing.T) {
	host := newFakeHost("HELLO")
	s := newState(t, host, 0, rotation.TruncationMax)
	rendered := len(host.titles)

	tickN(t, s, 1000)
	if len(host.titles) != rendered {
		t.Errorf("rendered %d titles with rotation disabled", len(host.titles)-rendered)
	}
	if s.Offset() != 0 {
		t.Errorf("offset = %d, want 0", s.Offset())
	}
}

func TestTextChangedResetsOffset(t *testing.T) {
	host := newFakeHost("HELLO")
	s := newState(t, host, 50, rotation.TruncationMax)
	tickN(t, s, 9)
	if s.Offset() != 3 {
		t.Fatalf("offset = %d, want 3", s.Offset())
	}

	host.text = "WORLD"
	if err := s.Handle(TextChanged{}); err != nil {
		t.Fatal(err)
	}
	if s.Offset() != 0 {
		t.Errorf("offset = %d, want 0", s.Offset())
	}
	if got := host.lastTitle(); got != "WORLD" {
		t.Errorf("title = %q, want WORLD", got)
	}
}

func TestShiftZeroResetsAndRenders(t *testing.T) {
	host := newFakeHost("HELLO")
	s := newState(t, host, 50, 3)
	tickN(t, s, 6)
	if got := host.lastTitle(); got != "ELL" {
		t.Fatalf("title = %q, want ELL", got)
	}

	if err := s.Handle(ShiftMoved{Position: 0}); err != nil {
		t.Fatal(err)
	}
	if s.Offset() != 0 {
		t.Errorf("offset = %d, want 0", s.Offset())
	}
	if got := host.lastTitle(); got != "HEL" {
		t.Errorf("title = %q, want HEL", got)
	}
	if got := host.labels[LabelShift]; got != "No character shifting." {
		t.Errorf("shift label = %q", got)
	}
}

func TestShiftNonZeroKeepsOffset(t *testing.T) {
	host := newFakeHost("HELLO")
	s := newState(t, host, 50, rotation.TruncationMax)
	tickN(t, s, 6)
	rendered := len(host.titles)

	if err := s.Handle(ShiftMoved{Position: 10}); err != nil {
		t.Fatal(err)
	}
	if s.Offset() != 2 {
		t.Errorf("offset = %d, want 2", s.Offset())
	}
	if len(host.titles) != rendered {
		t.Errorf("speed change re-rendered the title")
	}
	if got := host.labels[LabelShift]; got != "Shifting speed: 100ms/character" {
		t.Errorf("shift label = %q", got)
	}
}

func TestTruncationMoved(t *testing.T) {
	host := newFakeHost("HELLO")
	s := newState(t, host, 0, rotation.TruncationMax)

	if err := s.Handle(TruncationMoved{Position: 3}); err != nil {
		t.Fatal(err)
	}
	if got := host.lastTitle(); got != "HEL" {
		t.Errorf("title = %q, want HEL", got)
	}
	if got := host.labels[LabelTruncation]; got != "Maximum title length shown: 3 characters" {
		t.Errorf("truncation label = %q", got)
	}

	if err := s.Handle(TruncationMoved{Position: rotation.TruncationMax}); err != nil {
		t.Fatal(err)
	}
	if got := host.lastTitle(); got != "HELLO" {
		t.Errorf("title = %q, want HELLO", got)
	}
}

func TestOffsetStoredModuloLength(t *testing.T) {
	host := newFakeHost("abc")
	s := newState(t, host, 50, rotation.TruncationMax)

	// Seven steps; the offset is reduced on every render.
	tickN(t, s, 21)
	if s.Offset() != 1 {
		t.Errorf("offset = %d, want 1", s.Offset())
	}
	if got := host.lastTitle(); got != "abc" {
		t.Errorf("title = %q, want abc", got)
	}
}

func TestEmptyText(t *testing.T) {
	host := newFakeHost("")
	s := newState(t, host, 50, 3)
	tickN(t, s, 9)

	for _, title := range host.titles {
		if title != "" {
			t.Fatalf("got title %q for empty text", title)
		}
	}
	if s.Offset() != 1 {
		t.Errorf("offset = %d, want 1", s.Offset())
	}
}

func TestClosedQuits(t *testing.T) {
	host := newFakeHost("x")
	s := newState(t, host, 0, rotation.TruncationMax)
	if err := s.Handle(Closed{}); err != nil {
		t.Fatal(err)
	}
	if !host.quit {
		t.Error("host was not told to quit")
	}
}

func TestHostFailuresAreReported(t *testing.T) {
	boom := errors.New("boom")

	host := newFakeHost("x")
	host.titleErr = boom
	s := New(host, Options{Logger: quietLogger()})
	err := s.Init()

	var werr *Error
	if !errors.As(err, &werr) {
		t.Fatalf("err = %v, want *Error", err)
	}
	if werr.Op != "updating the window's title" {
		t.Errorf("op = %q", werr.Op)
	}
	if !errors.Is(err, boom) {
		t.Error("error does not wrap the host failure")
	}
	if got := err.Error(); got != "error while updating the window's title: boom" {
		t.Errorf("message = %q", got)
	}

	host = newFakeHost("x")
	host.labelErr = boom
	s = New(host, Options{Logger: quietLogger()})
	err = s.Init()
	if !errors.As(err, &werr) || werr.Op != "updating the truncation label" {
		t.Errorf("err = %v, want truncation label failure", err)
	}

	err = s.Handle(ShiftMoved{Position: 4})
	if !errors.As(err, &werr) || werr.Op != "updating the shifting-speed label" {
		t.Errorf("err = %v, want shifting-speed label failure", err)
	}
}

func TestCustomTiming(t *testing.T) {
	host := newFakeHost("abc")
	s := New(host, Options{Shift: 10, Granularity: 20 * time.Millisecond, Threshold: 40 * time.Millisecond, Logger: quietLogger()})
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}
	if got := host.labels[LabelShift]; got != "Shifting speed: 80ms/character" {
		t.Errorf("shift label = %q", got)
	}

	tickN(t, s, 5)
	if s.Offset() != 1 {
		t.Errorf("offset = %d, want 1", s.Offset())
	}
}
