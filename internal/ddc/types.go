package ddc

import "context"

// Monitor represents one physically attached, DDC-capable display as
// reported by a single detection pass. Monitors are rebuilt wholesale
// on every re-detection; nothing is diffed or cached.
type Monitor struct {
	DisplayID string // backend selector for addressing this display, "1" if unreported
	Name      string // best-effort model name, "Unknown display" if unreported
	Bus       string // I2C bus identifier, empty if unreported
	Serial    string // serial number, empty if unreported
}

// FeatureValue is the outcome of querying one VCP feature code on one
// display. Current and Maximum are only meaningful when Success is
// true; Maximum defaults to 100 as a display-only placeholder and is
// never used to validate writes.
type FeatureValue struct {
	Code         byte
	Success      bool
	Current      int
	Maximum      int
	ErrorMessage string // populated only when Success is false
}

// InputSource is one selectable entry of the Input Source feature (0x60).
type InputSource struct {
	Value byte
	Name  string
}

// Invoker runs the backend utility with a literal argument vector and
// returns its standard output. Implementations capture stdout only
// when capture is true; stderr is always captured for diagnostics.
// The narrow seam keeps the higher-level operations transport-agnostic
// and the parsers testable against captured text.
type Invoker interface {
	Invoke(ctx context.Context, args []string, capture bool) (string, error)
}
