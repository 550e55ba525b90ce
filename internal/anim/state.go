package anim

// State is the whole cross-frame animation state: a frame counter plus
// the two modular cursors the scenes read. It is a value; each tick the
// loop calls Advance and keeps the returned copy, so nothing mutates
// behind the renderer's back.
type State struct {
	Tick         int
	PaletteIndex int
	ScrollOffset int
}

// Advance steps the counters for the next frame. paletteLen and scrollLen
// are the rotation moduli; a zero or negative modulus pins its cursor at 0.
func (s State) Advance(paletteLen, scrollLen int) State {
	n := State{Tick: s.Tick + 1}
	if paletteLen > 0 {
		n.PaletteIndex = (s.PaletteIndex + 1) % paletteLen
	}
	if scrollLen > 0 {
		n.ScrollOffset = (s.ScrollOffset + 1) % scrollLen
	}
	return n
}
