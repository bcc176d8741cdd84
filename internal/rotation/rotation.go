// Package rotation computes the rotated, optionally truncated title text.
//
// Text is handled by Unicode code point: a rotation step moves one rune
// from the front of the text to the back.
package rotation

import (
	"fmt"
	"math"
	"time"
)

const (
	// TruncationMax is the largest truncation slider position. At this
	// position the whole title is shown.
	TruncationMax = 30

	// ShiftMax is the largest shifting-speed slider position.
	ShiftMax = 50

	// TickGranularity is the interval of the rotation timer.
	TickGranularity = 10 * time.Millisecond

	// Threshold is the accumulated tick value after which one rotation
	// step is applied.
	Threshold = 100 * time.Millisecond
)

// Rotate left-rotates text by offset runes. The offset is reduced modulo
// the rune count (at least 1, so empty text is fine) and the reduced
// offset is returned alongside the rotated text.
func Rotate(text string, offset int) (string, int) {
	runes := []rune(text)
	n := max(1, len(runes))

	offset %= n
	if offset < 0 {
		offset += n
	}
	if len(runes) == 0 || offset == 0 {
		return text, offset
	}

	rotated := make([]rune, 0, len(runes))
	rotated = append(rotated, runes[offset:]...)
	rotated = append(rotated, runes[:offset]...)
	return string(rotated), offset
}

// Truncate keeps the first length runes of text. TruncationMax keeps
// everything.
func Truncate(text string, length int) string {
	if length == TruncationMax {
		return text
	}
	if length <= 0 {
		return ""
	}

	runes := []rune(text)
	if length >= len(runes) {
		return text
	}
	return string(runes[:length])
}

// Title rotates text by offset and truncates the result. The reduced
// offset is returned so callers can store it back.
func Title(text string, offset, truncation int) (string, int) {
	rotated, offset := Rotate(text, offset)
	return Truncate(rotated, truncation), offset
}

// Frames returns the next n titles a host would display, starting at
// offset and advancing one step per frame.
func Frames(text string, offset, truncation, n int) []string {
	frames := make([]string, 0, max(0, n))
	for i := 0; i < n; i++ {
		var title string
		title, offset = Title(text, offset, truncation)
		frames = append(frames, title)
		offset++
	}
	return frames
}

// StepDuration returns how long one rotation step takes for the given
// shifting-speed interval. Zero means shifting is disabled.
func StepDuration(interval int, granularity, threshold time.Duration) time.Duration {
	if interval <= 0 {
		return 0
	}
	ms := float64(granularity.Milliseconds()) * float64(threshold.Milliseconds()) / float64(interval)
	return time.Duration(math.Round(ms)) * time.Millisecond
}

// ShiftLabel is the text of the shifting-speed label.
func ShiftLabel(interval int, granularity, threshold time.Duration) string {
	if interval <= 0 {
		return "No character shifting."
	}
	return fmt.Sprintf("Shifting speed: %dms/character", StepDuration(interval, granularity, threshold).Milliseconds())
}

// TruncationLabel is the text of the truncation label.
func TruncationLabel(length int) string {
	if length == TruncationMax {
		return "The whole title is shown."
	}
	return fmt.Sprintf("Maximum title length shown: %d characters", length)
}
