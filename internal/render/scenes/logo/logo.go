package logo

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"github.com/coreman2200/funtimes-cracktro/internal/anim"
	"github.com/coreman2200/funtimes-cracktro/internal/render"
	"github.com/coreman2200/funtimes-cracktro/internal/terminal"
)

// Block-character logo, classic demoscene chunk. Fixed at process start;
// width is the max line width in cells, height the line count.
var defaultArt = []string{
	" ██████╗ ███████╗████████╗██████╗  ██████╗  ",
	" ██╔══██╗██╔════╝╚══██╔══╝██╔══██╗██╔═══██╗ ",
	" ██████╔╝█████╗     ██║   ██████╔╝██║   ██║ ",
	" ██╔══██╗██╔══╝     ██║   ██╔══██╗██║   ██║ ",
	" ██║  ██║███████╗   ██║   ██║  ██║╚██████╔╝ ",
	" ╚═╝  ╚═╝╚══════╝   ╚═╝   ╚═╝  ╚═╝ ╚═════╝  ",
}

// Scene renders the logo vertically and horizontally centered, cycling
// through the active palette one color per frame.
type Scene struct {
	name    string
	lines   []string
	width   int
	height  int
	palette [][]byte
	preset  string
}

func New(name string) *Scene {
	s := &Scene{name: name, lines: defaultArt}
	for _, l := range s.lines {
		if w := utf8.RuneCountInString(l); w > s.width {
			s.width = w
		}
	}
	s.height = len(s.lines)
	s.ApplyPreset("classic")
	return s
}

func (s *Scene) Name() string { return s.name }

func (s *Scene) Presets() []string { return []string{"classic", "ocean", "fire", "mono"} }

func (s *Scene) ApplyPreset(name string) {
	switch name {
	case "classic":
		s.palette = [][]byte{terminal.FgCyan, terminal.FgMagenta, terminal.FgYellow, terminal.FgGreen, terminal.FgRed}
	case "ocean":
		s.palette = [][]byte{terminal.FgBlue, terminal.FgCyan, terminal.FgWhite, terminal.FgCyan}
	case "fire":
		s.palette = [][]byte{terminal.FgRed, terminal.FgYellow, terminal.FgMagenta}
	case "mono":
		s.palette = [][]byte{terminal.FgWhite}
	default:
		return
	}
	s.preset = name
}

// Width and Height report the fixed logo cell geometry.
func (s *Scene) Width() int  { return s.width }
func (s *Scene) Height() int { return s.height }

// PaletteLen is the rotation modulus for anim.State.PaletteIndex.
func (s *Scene) PaletteLen() int { return len(s.palette) }

// Render writes top padding plus the colored logo and reports rows used.
// Top padding leaves two rows of breathing room toward the footer; both
// paddings clamp to zero on undersized terminals rather than failing.
func (s *Scene) Render(dst *bytes.Buffer, vp render.Viewport, st anim.State) int {
	top := (vp.Rows - s.height - 2) / 2
	if top < 0 {
		top = 0
	}
	left := (vp.Cols - s.width) / 2
	if left < 0 {
		left = 0
	}

	for i := 0; i < top; i++ {
		dst.WriteByte('\n')
	}

	pad := strings.Repeat(" ", left)
	color := s.palette[st.PaletteIndex%len(s.palette)]
	for _, line := range s.lines {
		dst.WriteString(pad)
		dst.Write(color)
		dst.WriteString(line)
		dst.Write(terminal.Reset)
		dst.WriteByte('\n')
	}

	return top + s.height
}
