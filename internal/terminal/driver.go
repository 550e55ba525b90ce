package terminal

import (
	"bufio"
	"io"
	"os"
	"sync"

	"golang.org/x/term"
)

// Terminal is the frame driver for an ANSI terminal. Open hides the
// cursor; Close restores the cursor and resets styling exactly once,
// no matter how many times or from which exit path it is called.
type Terminal struct {
	f       *os.File
	w       *bufio.Writer
	tty     bool
	restore sync.Once
}

// IsTTY reports whether f is an interactive terminal.
func IsTTY(f *os.File) bool { return term.IsTerminal(int(f.Fd())) }

// Open prepares f (normally os.Stdout) for full-screen frame output.
func Open(f *os.File) *Terminal {
	t := newTerminal(f, IsTTY(f))
	t.f = f
	return t
}

func newTerminal(w io.Writer, tty bool) *Terminal {
	t := &Terminal{
		w:   bufio.NewWriterSize(w, 64*1024),
		tty: tty,
	}
	t.w.Write(CursorHide)
	t.w.Flush()
	return t
}

// Write pushes one composed frame and flushes, one write per frame.
func (t *Terminal) Write(frame []byte) error {
	if _, err := t.w.Write(frame); err != nil {
		return err
	}
	return t.w.Flush()
}

// Size reports the current terminal geometry. ok=false when the output
// is not an interactive terminal or the query fails.
func (t *Terminal) Size() (cols, rows int, ok bool) {
	if !t.tty || t.f == nil {
		return 0, 0, false
	}
	c, r, err := term.GetSize(int(t.f.Fd()))
	if err != nil {
		return 0, 0, false
	}
	return c, r, true
}

// Close restores cursor visibility and resets styling. Safe to call
// more than once; the escapes are emitted a single time.
func (t *Terminal) Close() error {
	var err error
	t.restore.Do(func() {
		t.w.Write(CursorShow)
		t.w.Write(Reset)
		err = t.w.Flush()
	})
	return err
}
