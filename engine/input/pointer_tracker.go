package input

// PointerTracker converts absolute cursor positions into per-event deltas.
// The first position after construction or Reset only primes the tracker, so warping
// the cursor on capture does not produce a jump.
type PointerTracker struct {
	lastX, lastY float64
	primed       bool
}

// Move records a cursor position and returns the movement since the previous one.
//
// Parameters:
//   - x, y: cursor position in window coordinates
//
// Returns:
//   - dx, dy: movement since the previous position
//   - ok: false for the priming event, which carries no movement
func (pt *PointerTracker) Move(x, y float64) (dx, dy float32, ok bool) {
	if !pt.primed {
		pt.lastX, pt.lastY, pt.primed = x, y, true
		return 0, 0, false
	}
	dx, dy = float32(x-pt.lastX), float32(y-pt.lastY)
	pt.lastX, pt.lastY = x, y
	return dx, dy, true
}

// Reset forgets the last position. Call it whenever the cursor mode changes.
func (pt *PointerTracker) Reset() {
	pt.primed = false
}
