package game

import "sync/atomic"

// Intent is the player input consumed by one simulation tick
type Intent struct {
	// -1 left, 0 none, +1 right
	Move int

	// Fire one bullet this tick
	Fire bool
}

// InputLatch is the mailbox between a bridge's input handling and the frame loop.
// Movement is a level that persists across ticks; fire is a one-shot flag, so
// several presses within one tick still yield a single shot.
// It is safe to write from one goroutine while the frame loop reads from another.
type InputLatch struct {
	move atomic.Int32
	fire atomic.Bool
}

// NewInputLatch creates an idle latch
func NewInputLatch() *InputLatch {
	return &InputLatch{}
}

// Press adjusts the running move counter. Bridges that see key-up events call
// Press(+1)/Press(-1) on press and the opposite on release, so holding both
// directions cancels out.
func (l *InputLatch) Press(dir int) {
	l.move.Add(int32(dir))
}

// SetMove overwrites the move level (last write wins)
func (l *InputLatch) SetMove(dir int) {
	l.move.Store(int32(dir))
}

// Fire latches a shot for the next tick
func (l *InputLatch) Fire() {
	l.fire.Store(true)
}

// Take returns the intent for this tick and consumes the fire flag
func (l *InputLatch) Take() Intent {
	in := Intent{Fire: l.fire.Swap(false)}
	switch m := l.move.Load(); {
	case m > 0:
		in.Move = 1
	case m < 0:
		in.Move = -1
	}
	return in
}

// Reset clears both move and fire
func (l *InputLatch) Reset() {
	l.move.Store(0)
	l.fire.Store(false)
}
