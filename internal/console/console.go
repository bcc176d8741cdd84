// Package console sets the title of the terminal window.
package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
)

// SetTitle sets the console window title.
// On Windows, this uses the Windows API.
// Elsewhere it writes an OSC title sequence to stdout.
func SetTitle(title string) error {
	return setTitle(Sanitize(title))
}

// SetTitleTo writes the OSC title sequence for title to w.
func SetTitleTo(w io.Writer, title string) error {
	_, err := fmt.Fprintf(w, termenv.OSC+termenv.SetWindowTitleSeq, Sanitize(title))
	return err
}

// Sanitize drops control characters, which would end or corrupt the
// title sequence.
func Sanitize(title string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, title)
}
