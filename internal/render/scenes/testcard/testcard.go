package testcard

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/coreman2200/funtimes-cracktro/internal/anim"
	"github.com/coreman2200/funtimes-cracktro/internal/render"
	"github.com/coreman2200/funtimes-cracktro/internal/terminal"
)

// Kind selects a calibration pattern.
type Kind string

const (
	Ruler    Kind = "ruler"    // column digits plus geometry readout
	Geometry Kind = "geometry" // geometry readout only
)

// Scene renders a calibration pattern in place of the logo, for checking
// that centering and the viewport query agree with the real terminal.
type Scene struct {
	name string
	kind Kind
}

func New(name string) *Scene { return &Scene{name: name, kind: Ruler} }

func (s *Scene) Name() string      { return s.name }
func (s *Scene) Presets() []string { return []string{string(Ruler), string(Geometry)} }

func (s *Scene) ApplyPreset(name string) {
	switch Kind(name) {
	case Ruler, Geometry:
		s.kind = Kind(name)
	}
}

// PaletteLen keeps the test card interchangeable with the logo scene.
func (s *Scene) PaletteLen() int { return 1 }

func (s *Scene) height() int {
	if s.kind == Ruler {
		return 3
	}
	return 1
}

func (s *Scene) Render(dst *bytes.Buffer, vp render.Viewport, st anim.State) int {
	h := s.height()
	top := (vp.Rows - h - 2) / 2
	if top < 0 {
		top = 0
	}
	for i := 0; i < top; i++ {
		dst.WriteByte('\n')
	}

	if s.kind == Ruler {
		dst.Write(terminal.FgCyan)
		for i := 0; i < vp.Cols; i++ {
			dst.WriteByte(byte('0' + i%10))
		}
		dst.Write(terminal.Reset)
		dst.WriteByte('\n')
		dst.WriteByte('\n')
	}

	readout := fmt.Sprintf("%d x %d  tick %d", vp.Cols, vp.Rows, st.Tick)
	left := (vp.Cols - len(readout)) / 2
	if left < 0 {
		left = 0
	}
	dst.WriteString(strings.Repeat(" ", left))
	dst.Write(terminal.FgWhite)
	dst.WriteString(readout)
	dst.Write(terminal.Reset)
	dst.WriteByte('\n')

	return top + h
}
