package utils

import (
	"io"

	"golang.org/x/term"
)

// fder is implemented by the values backed by a file descriptor, like *os.File.
type fder interface {
	Fd() uintptr
}

// IsTerminal reports whether v is a file descriptor attached to a terminal.
func IsTerminal(v any) bool {
	f, ok := v.(fder)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Colorize returns s decorated with the message type color in case w is a terminal.
func Colorize(w io.Writer, s string, msgType MessageType) string {
	if !IsTerminal(w) {
		return s
	}
	return DecorateText(s, msgType)
}
