// Package sink turns an Interpreter's InputEvent stream into real pointer
// activity. A Sink is a small capability interface rather than a class
// hierarchy — the interpreter package's Design Notes call for exactly this
// shape — with concrete backends in this package for a Linux uinput virtual
// mouse, a Wayland virtual-pointer device, and a plain debug logger.
package sink

import (
	"time"

	"github.com/wavepunk/palmctl"
)

// MinPressDuration is the minimum real time a Sink must hold LEFT down before
// honoring an UP, per the interpreter's output contract: the interpreter only
// guarantees correct *timestamps*, the sink is responsible for turning that
// into an actual wait when events are applied faster than real time (e.g. a
// replay or a test).
const MinPressDuration = 55 * time.Millisecond

// Sink is the output device contract: relative motion, wheel ticks, and the
// two buttons the interpreter drives.
type Sink interface {
	Move(dx, dy int) error
	Scroll(dx, dy int) error
	ButtonLeft(down bool) error
	ButtonRight(down bool) error
}

// Apply dispatches one InputEvent to sink, enforcing the minimum LEFT
// press-duration and DOWN de-duplication required of every Sink implementation.
// MODE events carry no sink action and are ignored here — callers that want to
// observe mode changes (for a status line or debug overlay) should inspect the
// event themselves before calling Apply.
func Apply(s Sink, leftDown *bool, lastLeftDownAt *time.Time, ev palmctl.InputEvent) error {
	switch ev.Type {
	case palmctl.EventMove:
		return s.Move(ev.Move.DX, ev.Move.DY)
	case palmctl.EventScroll:
		return s.Scroll(ev.Scroll.DX, ev.Scroll.DY)
	case palmctl.EventButton:
		return applyButton(s, leftDown, lastLeftDownAt, ev)
	case palmctl.EventMode:
		return nil
	default:
		return nil
	}
}

func applyButton(s Sink, leftDown *bool, lastLeftDownAt *time.Time, ev palmctl.InputEvent) error {
	b := ev.Button
	if b.Name == palmctl.ButtonRight {
		switch b.Action {
		case palmctl.ActionDown:
			return s.ButtonRight(true)
		case palmctl.ActionUp:
			return s.ButtonRight(false)
		case palmctl.ActionClick:
			if err := s.ButtonRight(true); err != nil {
				return err
			}
			time.Sleep(MinPressDuration)
			return s.ButtonRight(false)
		}
		return nil
	}

	switch b.Action {
	case palmctl.ActionDown:
		if *leftDown {
			return nil
		}
		*leftDown = true
		*lastLeftDownAt = time.Now()
		return s.ButtonLeft(true)
	case palmctl.ActionUp:
		if !*leftDown {
			return nil
		}
		if held := time.Since(*lastLeftDownAt); held < MinPressDuration {
			time.Sleep(MinPressDuration - held)
		}
		*leftDown = false
		return s.ButtonLeft(false)
	case palmctl.ActionClick:
		if err := s.ButtonLeft(true); err != nil {
			return err
		}
		time.Sleep(MinPressDuration)
		return s.ButtonLeft(false)
	}
	return nil
}
