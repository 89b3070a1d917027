package morph

import "time"

// Board holds one State per grid cell in row-major order.
type Board struct {
	states []State
}

// NewBoard creates a board of n idle tiles.
func NewBoard(n int) *Board {
	b := &Board{}
	b.Resize(n)
	return b
}

// Len returns the number of tiles.
func (b *Board) Len() int {
	return len(b.states)
}

// Resize changes the tile count and resets every tile to Idle.
func (b *Board) Resize(n int) {
	b.states = make([]State, max(n, 0))
	b.Reset()
}

// Reset returns every tile to Idle, discarding any progress.
func (b *Board) Reset() {
	for i := range b.states {
		b.states[i] = Idle{}
	}
}

// State returns the state of tile i.
func (b *Board) State(i int) State {
	return b.states[i]
}

// Activate moves an idle tile to Morphing at now. It reports whether the
// tile changed; morphing and settled tiles are never re-activated.
func (b *Board) Activate(i int, now time.Duration) bool {
	if _, idle := b.states[i].(Idle); !idle {
		return false
	}
	b.states[i] = Morphing{Start: now}
	return true
}

// Advance evaluates tile i at now. Morphing tiles whose cycle has run out
// become Settled; settled reports that transition. Idle and Settled tiles
// yield the zero Progress, whose blend is exactly the resting square.
func (b *Board) Advance(i int, now time.Duration, t Timing) (p Progress, settled bool) {
	switch s := b.states[i].(type) {
	case Morphing:
		p = t.At(now - s.Start)
		if p.Done {
			b.states[i] = Settled{}
			return p, true
		}
		return p, false
	default:
		return Progress{}, false
	}
}

// Counts tallies tiles per variant.
func (b *Board) Counts() (idle, morphing, settled int) {
	for _, s := range b.states {
		switch s.(type) {
		case Idle:
			idle++
		case Morphing:
			morphing++
		case Settled:
			settled++
		}
	}
	return idle, morphing, settled
}
