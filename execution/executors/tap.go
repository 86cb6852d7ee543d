package executors

// Tap is an optional observer bracketing well-defined execution points
// (open, row production). Taps are for instrumentation only; their presence
// never affects control flow and no executor depends on them for
// correctness.
type Tap interface {
	In(point string)
	Out(point string)
}

type NopTap struct{}

func (NopTap) In(string)  {}
func (NopTap) Out(string) {}
