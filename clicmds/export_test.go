package clicmds

import "io"

// SetStdin replaces the reader check uses without arguments, call the
// returned func to restore it
func SetStdin(r io.Reader) func() {
	old := stdin
	stdin = r
	return func() {
		stdin = old
	}
}
