package terminal

// Pre-allocated ANSI fragments so the per-frame path never formats escapes.
var (
	Home  = []byte("\x1b[H")
	Reset = []byte("\x1b[0m")
	Bold  = []byte("\x1b[1m")

	CursorHide = []byte("\x1b[?25l")
	CursorShow = []byte("\x1b[?25h")

	// Bright 16-color foregrounds (SGR 90-97 range).
	FgRed     = []byte("\x1b[91m")
	FgGreen   = []byte("\x1b[92m")
	FgYellow  = []byte("\x1b[93m")
	FgBlue    = []byte("\x1b[94m")
	FgMagenta = []byte("\x1b[95m")
	FgCyan    = []byte("\x1b[96m")
	FgWhite   = []byte("\x1b[97m")
)
