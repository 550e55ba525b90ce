package scroller

import (
	"bytes"
	"testing"
	"unicode/utf8"

	"github.com/coreman2200/funtimes-cracktro/internal/anim"
	"github.com/coreman2200/funtimes-cracktro/internal/render"
)

func TestWindowWrapsCircularly(t *testing.T) {
	s := New("scroller")
	s.SetMessage("ABCDEFGHIJ") // tripled to 30 runes
	n := s.Len()
	if n != 30 {
		t.Fatalf("expected tripled length 30, got %d", n)
	}

	// Window starting k runes before the seam is tail(k) + head(W-k).
	for _, k := range []int{1, 3, 7} {
		for _, w := range []int{k, k + 1, k + 5} {
			text := string(bytes.Repeat([]byte("ABCDEFGHIJ"), 3))
			want := text[n-k:] + text[:w-k]
			got := s.Window(n-k, w)
			if got != want {
				t.Fatalf("k=%d w=%d: got %q want %q", k, w, got, want)
			}
		}
	}
}

func TestWindowIsAlwaysExactlyViewportWide(t *testing.T) {
	s := New("scroller")
	for _, w := range []int{0, 1, 40, 80, 500, 2000} {
		got := s.Window(17, w)
		if n := utf8.RuneCountInString(got); n != w {
			t.Fatalf("width %d: window is %d cells", w, n)
		}
	}
}

func TestWindowOnEmptyMessagePadsSpaces(t *testing.T) {
	s := New("scroller")
	s.SetMessage("")
	got := s.Window(0, 4)
	if got != "    " {
		t.Fatalf("expected all spaces, got %q", got)
	}
}

func TestRenderIsSingleStyledRow(t *testing.T) {
	s := New("scroller")
	var buf bytes.Buffer
	rows := s.Render(&buf, render.Viewport{Cols: 40, Rows: 24}, anim.State{ScrollOffset: 5})
	if rows != 1 {
		t.Fatalf("expected 1 row, got %d", rows)
	}
	out := buf.String()
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x1b[1m\x1b[93m")) {
		t.Fatalf("banner not bold+yellow: %q", out)
	}
	if !bytes.HasSuffix(buf.Bytes(), []byte("\x1b[0m")) {
		t.Fatalf("banner missing trailing reset: %q", out)
	}
	if bytes.ContainsRune(buf.Bytes(), '\n') {
		t.Fatalf("banner must stay on the bottom row")
	}
}
