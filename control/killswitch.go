package control

import (
	"time"

	"github.com/wavepunk/palmctl"
	"github.com/wavepunk/palmctl/sink"
)

// KillSwitch is the guard step described in the interpreter's concurrency
// model: it polls a State, forwards any transition into the Interpreter via
// SetOff, and force-releases the sink's buttons whenever it turns the system
// off. Guard() and the interpreter's Process must run on the same goroutine —
// KillSwitch does not add its own locking.
type KillSwitch struct {
	state *State
	interp *palmctl.Interpreter
	s      sink.Sink

	lastEnabled    bool
	leftIsDown     bool
	leftDownAt     time.Time
}

// NewKillSwitch constructs a KillSwitch wired to the given state, interpreter
// and output sink. The interpreter and state are assumed to already agree on
// the initial enabled value.
func NewKillSwitch(state *State, interp *palmctl.Interpreter, s sink.Sink) *KillSwitch {
	return &KillSwitch{state: state, interp: interp, s: s, lastEnabled: state.IsEnabled()}
}

// Guard checks the enable flag for a transition and applies it to the
// interpreter, returning any events produced by that transition (typically a
// MODE OFF or MODE IDLE, plus a LEFT UP if a button was held). Call this once
// per loop iteration, before Interpreter.Process.
func (k *KillSwitch) Guard(tMs int64) []palmctl.InputEvent {
	enabled := k.state.IsEnabled()
	if enabled == k.lastEnabled {
		return nil
	}
	k.lastEnabled = enabled

	events := k.interp.SetOff(!enabled, tMs)
	if !enabled {
		k.releaseAll()
	}
	return events
}

// Allow reports whether gesture control is currently enabled.
func (k *KillSwitch) Allow() bool {
	return k.lastEnabled
}

// Apply routes one interpreter event to the sink. sink.Apply owns the LEFT
// button bookkeeping (down-state and dedup) through the pointers given here,
// so releaseAll can later tell whether it actually needs to act.
func (k *KillSwitch) Apply(ev palmctl.InputEvent) error {
	return sink.Apply(k.s, &k.leftIsDown, &k.leftDownAt, ev)
}

func (k *KillSwitch) releaseAll() {
	if k.leftIsDown {
		k.s.ButtonLeft(false)
		k.leftIsDown = false
	}
	k.s.ButtonRight(false)
}
