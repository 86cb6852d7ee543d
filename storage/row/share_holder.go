package row

// ShareHolder retains at most one row under shared ownership. Holding a new
// row releases the previous one, so the holder never leaks a reference as a
// cursor walks its input.
type ShareHolder struct {
	held Row
}

// Hold releases the currently held row, if any, and shares r. Passing nil
// just clears the holder, which is how end-of-stream is recorded.
func (h *ShareHolder) Hold(r Row) {
	if h.held != nil {
		h.held.Release()
	}
	h.held = r
	if r != nil {
		r.Share()
	}
}

func (h *ShareHolder) Get() Row { return h.held }

func (h *ShareHolder) IsEmpty() bool { return h.held == nil }

func (h *ShareHolder) IsHolding() bool { return h.held != nil }

// Release drops the held row. Safe to call when already empty.
func (h *ShareHolder) Release() {
	h.Hold(nil)
}
