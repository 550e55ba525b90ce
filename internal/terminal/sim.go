package terminal

// Sim is a frame driver that captures output in memory instead of
// touching a terminal. Used by framedump and in tests.
type Sim struct {
	frames int
	last   []byte
}

func NewSim() *Sim { return &Sim{} }

func (s *Sim) Write(frame []byte) error {
	s.last = append(s.last[:0], frame...)
	s.frames++
	return nil
}

func (s *Sim) Close() error { return nil }

// Frames reports how many frames have been written.
func (s *Sim) Frames() int { return s.frames }

// Last returns the most recent frame.
func (s *Sim) Last() []byte { return s.last }
