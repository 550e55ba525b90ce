package render

import (
	"bytes"

	"github.com/coreman2200/funtimes-cracktro/internal/anim"
)

// Viewport is the character-cell geometry of the output for one frame.
// It is queried fresh every tick and never persisted.
type Viewport struct{ Cols, Rows int }

// DefaultViewport is used whenever the real geometry cannot be determined
// (output is not an interactive terminal). Never surfaced as an error.
var DefaultViewport = Viewport{Cols: 80, Rows: 24}

// Driver abstracts the frame sink (terminal, capture, ...).
type Driver interface {
	// Write pushes one fully composed frame in a single operation.
	Write(frame []byte) error
	// Close releases resources.
	Close() error
}

// Renderer is one scene of the demo. Render appends its slice of the
// screen to dst and reports how many rows it consumed.
type Renderer interface {
	Name() string
	Presets() []string
	ApplyPreset(name string)
	Render(dst *bytes.Buffer, vp Viewport, st anim.State) int
}

type Registry struct{ m map[string]Renderer }

func NewRegistry() *Registry { return &Registry{m: map[string]Renderer{}} }

func (r *Registry) Register(rr Renderer) {
	if rr == nil {
		return
	}
	r.m[rr.Name()] = rr
}

func (r *Registry) Get(name string) (Renderer, bool) { rr, ok := r.m[name]; return rr, ok }
func (r *Registry) List() []string {
	out := make([]string, 0, len(r.m))
	for k := range r.m {
		out = append(out, k)
	}
	return out
}
