package render

import (
	"bytes"
	"errors"
	"time"

	"github.com/coreman2200/funtimes-cracktro/internal/anim"
	"github.com/coreman2200/funtimes-cracktro/internal/terminal"
)

// SizeFn reports the current viewport. ok=false means the geometry could
// not be determined and the fallback applies.
type SizeFn func() (Viewport, bool)

// Engine composes frames from an ordered body scene list plus a footer
// scene pinned to the bottom row, then writes the buffer to the driver.
type Engine struct {
	Drv Driver

	body   []Renderer
	footer Renderer

	sizeFn   SizeFn
	Fallback Viewport

	// last composed frame and the viewport it was composed for
	Out []byte
	VP  Viewport

	// Fallbacks counts frames rendered with the fallback viewport.
	Fallbacks uint64

	buf bytes.Buffer

	// metrics (last durations in ms)
	Last struct {
		ComposeMS float64
		WriteMS   float64
		TotalMS   float64
	}
}

// NewEngine wires a driver and viewport source. Scenes are attached via
// SetBody/SetFooter before the first RenderOnce.
func NewEngine(drv Driver, sizeFn SizeFn) (*Engine, error) {
	if sizeFn == nil {
		return nil, errors.New("nil size function")
	}
	return &Engine{
		Drv:      drv,
		sizeFn:   sizeFn,
		Fallback: DefaultViewport,
	}, nil
}

// SetBody appends a body scene from the registry, applying preset when
// non-empty.
func (e *Engine) SetBody(name, preset string, reg *Registry) error {
	rr, err := resolve(name, preset, reg)
	if err != nil {
		return err
	}
	e.body = append(e.body, rr)
	return nil
}

// SetFooter pins a scene to the bottom row.
func (e *Engine) SetFooter(name, preset string, reg *Registry) error {
	rr, err := resolve(name, preset, reg)
	if err != nil {
		return err
	}
	e.footer = rr
	return nil
}

func resolve(name, preset string, reg *Registry) (Renderer, error) {
	if reg == nil {
		return nil, errors.New("registry is nil")
	}
	rr, ok := reg.Get(name)
	if !ok {
		return nil, errors.New("scene not found: " + name)
	}
	if preset != "" {
		rr.ApplyPreset(preset)
	}
	return rr, nil
}

// Viewport queries the current geometry, substituting the fallback when
// the query fails. The failure is counted, never surfaced.
func (e *Engine) Viewport() Viewport {
	vp, ok := e.sizeFn()
	if !ok || vp.Cols <= 0 || vp.Rows <= 0 {
		e.Fallbacks++
		return e.Fallback
	}
	return vp
}

// RenderOnce composes one full frame for animation state st and writes
// it to the driver in a single operation.
//
// Frame layout: cursor-home, body scenes top-down, blank fill down to
// the second-to-last row, footer on the bottom row. Fill is omitted when
// the terminal is shorter than the body.
func (e *Engine) RenderOnce(st anim.State) error {
	start := time.Now()

	vp := e.Viewport()
	e.VP = vp

	e.buf.Reset()
	e.buf.Write(terminal.Home)

	rows := 0
	for _, r := range e.body {
		rows += r.Render(&e.buf, vp, st)
	}

	fill := vp.Rows - rows - 1
	for i := 0; i < fill; i++ {
		e.buf.WriteByte('\n')
	}

	if e.footer != nil {
		e.footer.Render(&e.buf, vp, st)
	}

	e.Out = append(e.Out[:0], e.buf.Bytes()...)
	e.Last.ComposeMS = float64(time.Since(start).Microseconds()) / 1000.0

	writeStart := time.Now()
	if e.Drv != nil {
		if err := e.Drv.Write(e.Out); err != nil {
			return err
		}
	}
	e.Last.WriteMS = float64(time.Since(writeStart).Microseconds()) / 1000.0
	e.Last.TotalMS = float64(time.Since(start).Microseconds()) / 1000.0

	return nil
}
