package window

import (
	"github.com/kannan/roxl/internal/rotation"
)

// Event is something that happened to the window.
type Event interface {
	event()
}

// TimerTick fires once per timer granularity.
type TimerTick struct{}

// TextChanged is sent after the input box content changed.
type TextChanged struct{}

// ShiftMoved is sent when the shifting-speed slider moved.
type ShiftMoved struct {
	Position int
}

// TruncationMoved is sent when the truncation slider moved.
type TruncationMoved struct {
	Position int
}

// Closed is sent when the window is closed.
type Closed struct{}

func (TimerTick) event()       {}
func (TextChanged) event()     {}
func (ShiftMoved) event()      {}
func (TruncationMoved) event() {}
func (Closed) event()          {}

// Handle applies ev to the state. A returned error is fatal.
func (s *State) Handle(ev Event) error {
	switch ev := ev.(type) {
	case TimerTick:
		return s.tick()

	case TextChanged:
		s.offset = 0
		return s.render()

	case ShiftMoved:
		return s.moveShift(ev.Position)

	case TruncationMoved:
		return s.moveTruncation(ev.Position)

	case Closed:
		s.log.Debug("window closed")
		s.host.Quit()
		return nil
	}

	s.log.Warn("unhandled event", "event", ev)
	return nil
}

func (s *State) tick() error {
	s.ticks += s.shift
	if s.ticks <= int(s.threshold.Milliseconds()) {
		return nil
	}

	if err := s.render(); err != nil {
		return err
	}
	s.offset++
	s.ticks = 0
	return nil
}

func (s *State) moveShift(pos int) error {
	s.shift = clamp(pos, 0, rotation.ShiftMax)
	s.log.Debug("shifting speed changed", "interval", s.shift)

	if s.shift == 0 {
		s.offset = 0
		if err := s.render(); err != nil {
			return err
		}
	}

	label := rotation.ShiftLabel(s.shift, s.granularity, s.threshold)
	if err := s.host.SetLabel(LabelShift, label); err != nil {
		return &Error{Op: "updating the shifting-speed label", Err: err}
	}
	return nil
}

func (s *State) moveTruncation(pos int) error {
	s.truncation = clamp(pos, 0, rotation.TruncationMax)
	s.log.Debug("truncation changed", "length", s.truncation)

	if err := s.render(); err != nil {
		return err
	}

	if err := s.host.SetLabel(LabelTruncation, rotation.TruncationLabel(s.truncation)); err != nil {
		return &Error{Op: "updating the truncation label", Err: err}
	}
	return nil
}
