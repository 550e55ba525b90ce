package scroller

import (
	"bytes"

	"github.com/coreman2200/funtimes-cracktro/internal/anim"
	"github.com/coreman2200/funtimes-cracktro/internal/render"
	"github.com/coreman2200/funtimes-cracktro/internal/terminal"
)

// DefaultMessage is the banner text. Repeated three times at
// construction so the wrap seam never lands mid-word visibly.
const DefaultMessage = "   *** GREETINGS FROM THE FUNTIMES CREW! AN ASCII CRACKTRO IN THE SPIRIT " +
	"OF THE CLASSIC AMIGA SCENE OF THE LATE 80S AND EARLY 90S. " +
	"KEEP THE OLD SCHOOL SPIRIT ALIVE! ***"

const repeats = 3

// Scene renders the bottom-row banner: a viewport-wide circular window
// into the looping message, bold and yellow.
type Scene struct {
	name string
	text []rune
}

func New(name string) *Scene {
	s := &Scene{name: name}
	s.SetMessage(DefaultMessage)
	return s
}

// SetMessage replaces the banner text, keeping the triple-repeat loop.
func (s *Scene) SetMessage(msg string) {
	s.text = s.text[:0]
	for i := 0; i < repeats; i++ {
		s.text = append(s.text, []rune(msg)...)
	}
}

func (s *Scene) Name() string            { return s.name }
func (s *Scene) Presets() []string       { return []string{"default"} }
func (s *Scene) ApplyPreset(name string) {}

// Len is the rotation modulus for anim.State.ScrollOffset.
func (s *Scene) Len() int { return len(s.text) }

// Window returns the width-cell circular slice starting at offset,
// right-padded with spaces to exactly width cells.
func (s *Scene) Window(offset, width int) string {
	if width <= 0 {
		return ""
	}
	out := make([]rune, width)
	n := len(s.text)
	if n == 0 {
		for i := range out {
			out[i] = ' '
		}
		return string(out)
	}
	offset %= n
	if offset < 0 {
		offset += n
	}
	for i := 0; i < width; i++ {
		out[i] = s.text[(offset+i)%n]
	}
	return string(out)
}

// Render writes the styled banner on a single row.
func (s *Scene) Render(dst *bytes.Buffer, vp render.Viewport, st anim.State) int {
	dst.Write(terminal.Bold)
	dst.Write(terminal.FgYellow)
	dst.WriteString(s.Window(st.ScrollOffset, vp.Cols))
	dst.Write(terminal.Reset)
	return 1
}
