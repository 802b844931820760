package tui

import (
	"time"

	"github.com/vovakirdan/cricket-arcade/internal/core"
)

// holdWindow is how long one key event keeps a held action down. Terminal
// auto-repeat refreshes it while the key stays pressed.
const holdWindow = 150 * time.Millisecond

// Holdable reports whether an action is held state (movement and stance)
// rather than a single-tick press.
func Holdable(a core.Action) bool {
	switch a {
	case core.ActionLeft, core.ActionRight, core.ActionPowerShot, core.ActionDefensive:
		return true
	}
	return false
}

// opposite returns the action a press cancels, if any.
func opposite(a core.Action) core.Action {
	switch a {
	case core.ActionLeft:
		return core.ActionRight
	case core.ActionRight:
		return core.ActionLeft
	}
	return core.ActionNone
}

// HoldLatch turns terminal key events, which carry no release, into held
// state. Each press keeps its action down for a fixed number of ticks.
type HoldLatch struct {
	ticks     int
	remaining map[core.Action]int
}

// NewHoldLatch returns a latch sized for the given tick rate.
func NewHoldLatch(tickRate int) *HoldLatch {
	ticks := int(holdWindow * time.Duration(tickRate) / time.Second)
	if ticks < 1 {
		ticks = 1
	}
	return &HoldLatch{ticks: ticks, remaining: make(map[core.Action]int)}
}

// Ticks returns the hold length in ticks.
func (l *HoldLatch) Ticks() int {
	return l.ticks
}

// Press (re)starts the hold for a. Pressing one direction releases the other.
func (l *HoldLatch) Press(a core.Action) {
	if !Holdable(a) {
		return
	}
	if o := opposite(a); o != core.ActionNone {
		delete(l.remaining, o)
	}
	l.remaining[a] = l.ticks
}

// Apply marks every held action in the frame.
func (l *HoldLatch) Apply(frame *core.InputFrame) {
	for a, n := range l.remaining {
		if n > 0 {
			frame.Set(a)
		}
	}
}

// Advance counts every hold down by one tick.
func (l *HoldLatch) Advance() {
	for a, n := range l.remaining {
		if n <= 1 {
			delete(l.remaining, a)
			continue
		}
		l.remaining[a] = n - 1
	}
}

// Held reports whether a is currently down.
func (l *HoldLatch) Held(a core.Action) bool {
	return l.remaining[a] > 0
}

// Reset releases everything.
func (l *HoldLatch) Reset() {
	clear(l.remaining)
}
