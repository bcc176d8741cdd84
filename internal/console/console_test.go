package console

import (
	"bytes"
	"testing"
)

func TestSetTitleTo(t *testing.T) {
	var buf bytes.Buffer
	if err := SetTitleTo(&buf, "LLOHE"); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "\x1b]2;LLOHE\a"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSanitize(t *testing.T) {
	tests := map[string]string{
		"plain":             "plain",
		"bell\a inside":     "bell inside",
		"\x1b]2;evil\a":     "]2;evil",
		"tab\tand\nnewline": "tabandnewline",
		"日本語":               "日本語",
	}
	for in, want := range tests {
		if got := Sanitize(in); got != want {
			t.Errorf("Sanitize(%q) = %q, want %q", in, got, want)
		}
	}
}
