package palmctl

import "github.com/wavepunk/palmctl/utils"

const (
	chordWindowMs   = 140
	rcBlockMs       = 180
	scrollArmMs     = 140
	scrollHoldGrace = 150
	minPressMs      = 55
	clickSettleMs   = 60
)

// Interpreter is the gesture state machine described in the package doc. One
// instance owns all mutable state for one tracked user; it is not safe for
// concurrent use — callers that share an enable flag across goroutines should
// serialize Process/SetOff on a single "guard" goroutine (see the control
// package's KillSwitch).
type Interpreter struct {
	preset  Preset
	screenW float64
	screenH float64

	mode Mode
	off  bool

	indexGate  *debouncedHysteresis
	middleGate *debouncedHysteresis
	ringGate   *debouncedHysteresis
	latch      *pinchLatch

	hasIndexOnAt  bool
	indexOnAt     int64
	hasMiddleOnAt bool
	middleOnAt    int64

	hasPrevHand bool
	prevHand    HandObservation

	hasLastGood bool
	lastGoodT   int64

	lastProcessedT int64
	hasProcessed   bool

	posFx, posFy *OneEuro

	leftDown bool

	hasAnchor                    bool
	anchorHandX, anchorHandY     float64
	anchorCursorX, anchorCursorY float64
	cursorX, cursorY             float64

	contactDownMs    int64
	clickSettleUntil int64
	hoverBlockUntil  int64
	rcBlockUntil     int64
	scrollHoldUntil  int64

	hasScrollAnchor bool
	scrollAnchorY   float64
	scrollRemainder float64

	hasHoverPrev bool
	hoverPrevX   float64
	hoverPrevY   float64
	hoverFdx     *OneEuro
	hoverFdy     *OneEuro

	hasLastAdapt bool
	lastAdaptMs  int64
}

// NewInterpreter constructs an Interpreter for a screen of the given pixel
// dimensions, applying an optional calibration profile's overrides to preset.
// Pass a nil profile to use the preset unmodified.
func NewInterpreter(preset Preset, screenW, screenH int, profile *CalibrationProfile) *Interpreter {
	eff := applyProfile(preset, profile)
	return &Interpreter{
		preset:     eff,
		screenW:    float64(screenW),
		screenH:    float64(screenH),
		mode:       ModeIdle,
		indexGate:  newDebouncedHysteresis(eff.PinchIndex),
		middleGate: newDebouncedHysteresis(eff.PinchMiddle),
		ringGate:   newDebouncedHysteresis(Hysteresis{POn: 0.70, POff: 0.55, TOnMs: 60, TOffMs: 60}),
		latch:      newPinchLatch(eff.effectiveFastDown(), eff.effectiveFastUp()),
		posFx:      NewOneEuro(eff.PosFilter),
		posFy:      NewOneEuro(eff.PosFilter),
		hoverFdx:   NewOneEuro(OneEuroParams{MinCutoff: 2.2, Beta: 0.06, DCutoff: 1.0}),
		hoverFdy:   NewOneEuro(OneEuroParams{MinCutoff: 2.2, Beta: 0.06, DCutoff: 1.0}),
		cursorX:    float64(screenW) / 2,
		cursorY:    float64(screenH) / 2,
	}
}

// Mode reports the interpreter's current state.
func (ip *Interpreter) Mode() Mode {
	return ip.mode
}

// CursorPos reports the interpreter's internally tracked cursor position,
// rounded to the nearest pixel. Useful for a debug overlay; the interpreter
// itself never reads this back.
func (ip *Interpreter) CursorPos() (x, y int) {
	return int(ip.cursorX + 0.5), int(ip.cursorY + 0.5)
}

// clampMonotonic keeps a frame's timestamp from ever moving internal dwell
// arithmetic backwards, per the spec's out-of-order-frame error handling: a
// frame that arrives with a smaller t_ms than the last one processed is
// treated as having that last t_ms, so no internal timer ever observes
// negative elapsed time.
func (ip *Interpreter) clampMonotonic(tMs int64) int64 {
	if ip.hasProcessed && tMs < ip.lastProcessedT {
		return ip.lastProcessedT
	}
	return tMs
}

// SetOff toggles the kill switch. It always takes effect immediately: when
// turning off, any held LEFT button is released and all latches/anchors are
// cleared before the OFF transition is emitted; turning back on emits a single
// MODE IDLE.
func (ip *Interpreter) SetOff(off bool, tMs int64) []InputEvent {
	tMs = ip.clampMonotonic(tMs)
	ip.lastProcessedT = tMs
	ip.hasProcessed = true

	if off == ip.off {
		return nil
	}
	ip.off = off

	if off {
		var events []InputEvent
		if ip.leftDown {
			upT := tMs
			if upT < ip.contactDownMs+minPressMs {
				upT = ip.contactDownMs + minPressMs
			}
			events = append(events, newButtonEvent(upT, ButtonLeft, ActionUp))
			ip.leftDown = false
		}
		ip.latch.release()
		ip.hasAnchor = false
		ip.hasScrollAnchor = false
		ip.hasHoverPrev = false
		ip.mode = ModeOff
		events = append(events, newModeEvent(tMs, ModeOff))
		return events
	}

	ip.mode = ModeIdle
	return []InputEvent{newModeEvent(tMs, ModeIdle)}
}

// Process advances the interpreter by one frame and returns the ordered events
// that frame produced. frame.TMs is used both for state-machine dwell/timeout
// arithmetic and, per this build's clock policy (see SPEC_FULL.md §5/§9), as the
// single "now" reading for hover and scroll event timestamps — Process never
// reads a wall clock itself.
func (ip *Interpreter) Process(frame HandFrame) []InputEvent {
	tMs := ip.clampMonotonic(frame.TMs)
	ip.lastProcessedT = tMs
	ip.hasProcessed = true

	if ip.off {
		return nil
	}

	hand, present := selectHand(frame.Hands)
	calm := isCalm(hand, ip.prevHand, ip.hasPrevHand, ip.preset.Adaptation.MaxHandSpeedNorm)

	// Debounced gates only ever see a real sample. Feeding them the zero-value
	// placeholder selectHand returns for an absent hand would start arming an
	// OFF transition on fabricated data instead of leaving the committed state
	// frozen through the dropout.
	var indexOn, middleOn, ringOn bool
	if present {
		indexOn = ip.indexGate.update(hand.Pinch.Index, tMs)
		middleOn = ip.middleGate.update(hand.Pinch.Middle, tMs)
		ringOn = ip.ringGate.update(hand.Pinch.Ring, tMs)
	}

	if indexOn && !ip.hasIndexOnAt {
		ip.hasIndexOnAt, ip.indexOnAt = true, tMs
	} else if !indexOn {
		ip.hasIndexOnAt = false
	}
	if middleOn && !ip.hasMiddleOnAt {
		ip.hasMiddleOnAt, ip.middleOnAt = true, tMs
	} else if !middleOn {
		ip.hasMiddleOnAt = false
	}

	valid := isValid(hand, ip.preset.Tracking.MinConf) || middleOn

	var events []InputEvent

	// Freeze: an invalid frame never reaches fast-latch, chord detection or
	// mode dispatch, which would otherwise run on selectHand's fabricated
	// zero-value hand. Only the LOST safety timeout keeps ticking.
	if !valid {
		ip.hasHoverPrev = false
		ip.hoverFdx.Reset()
		ip.hoverFdy.Reset()
		if ip.hasLastGood && tMs-ip.lastGoodT >= ip.preset.Tracking.LostTimeoutMs {
			events = append(events, ip.enterLost(tMs)...)
			ip.hasLastGood = false
		}
		ip.updatePrevHand(hand, present)
		return events
	}

	ip.hasLastGood = true
	ip.lastGoodT = tMs

	switch ip.mode {
	case ModeIdle:
		events = append(events, ip.stepIdle(hand, present, valid, calm, indexOn, middleOn, ringOn, tMs)...)
	case ModeContact:
		events = append(events, ip.stepContact(hand, indexOn, tMs)...)
	case ModeDrag:
		events = append(events, ip.stepDrag(hand, indexOn, middleOn, tMs)...)
	case ModeScroll:
		events = append(events, ip.stepScroll(hand, middleOn, tMs)...)
	case ModeDragScroll:
		events = append(events, ip.stepDragScroll(hand, middleOn, tMs)...)
	}

	ip.maybeAdapt(hand, valid, calm, tMs)
	ip.updatePrevHand(hand, present)
	return events
}

func (ip *Interpreter) updatePrevHand(hand HandObservation, present bool) {
	if present {
		ip.prevHand = hand
		ip.hasPrevHand = true
	}
}

// stepIdle implements the per-frame IDLE evaluation order: rc-chord-block
// check, right-click chord, scroll entry, fast-latch contact entry, ring tap,
// hover.
func (ip *Interpreter) stepIdle(hand HandObservation, present, valid, calm, indexOn, middleOn, ringOn bool, tMs int64) []InputEvent {
	if tMs < ip.rcBlockUntil {
		ip.hasHoverPrev = false
		return nil
	}

	if calm && indexOn && middleOn && ip.hasIndexOnAt && ip.hasMiddleOnAt &&
		utils.Abs(ip.indexOnAt-ip.middleOnAt) <= chordWindowMs {
		ip.rcBlockUntil = tMs + rcBlockMs
		ip.hasHoverPrev = false
		return []InputEvent{newButtonEvent(tMs, ButtonRight, ActionClick)}
	}

	if ip.preset.Scroll.Enabled && middleOn && !ip.latch.armed() &&
		ip.hasMiddleOnAt && tMs-ip.middleOnAt >= scrollArmMs && tMs >= ip.clickSettleUntil {
		return ip.enterScroll(hand, tMs)
	}

	if valid && !middleOn && ip.latch.update(hand.Pinch.Index, tMs) {
		return ip.enterContact(hand, tMs)
	}

	if ringOn && calm {
		ip.hoverBlockUntil = tMs + 120
		ip.hasHoverPrev = false
		return []InputEvent{
			newButtonEvent(tMs, ButtonRight, ActionDown),
			newButtonEvent(tMs, ButtonRight, ActionUp),
		}
	}

	if present && tMs >= ip.hoverBlockUntil {
		return ip.maybeEmitHoverMove(hand, valid, tMs)
	}
	ip.hasHoverPrev = false
	return nil
}

func (ip *Interpreter) enterContact(hand HandObservation, tMs int64) []InputEvent {
	ip.mode = ModeContact
	ip.anchorHandX, ip.anchorHandY = hand.PosX, hand.PosY
	ip.anchorCursorX, ip.anchorCursorY = ip.cursorX, ip.cursorY
	ip.hasAnchor = true
	ip.contactDownMs = tMs
	ip.clickSettleUntil = tMs + clickSettleMs
	ip.leftDown = true
	ip.hasHoverPrev = false
	ip.hoverFdx.Reset()
	ip.hoverFdy.Reset()
	return []InputEvent{
		newButtonEvent(tMs, ButtonLeft, ActionDown),
		newModeEvent(tMs, ModeContact),
	}
}

func (ip *Interpreter) stepContact(hand HandObservation, indexOn bool, tMs int64) []InputEvent {
	if ip.latch.maybeUnlatch(hand.Pinch.Index, tMs) {
		return ip.releaseLeftAndIdle(tMs)
	}
	var events []InputEvent
	if tMs >= ip.clickSettleUntil {
		events = append(events, ip.emitMove(hand, tMs)...)
	}
	if tMs-ip.contactDownMs >= ip.preset.ClickDrag.DragHoldMs {
		ip.mode = ModeDrag
		events = append(events, newModeEvent(tMs, ModeDrag))
	}
	return events
}

func (ip *Interpreter) stepDrag(hand HandObservation, indexOn, middleOn bool, tMs int64) []InputEvent {
	if ip.preset.Scroll.Enabled && middleOn && ip.hasMiddleOnAt && tMs-ip.middleOnAt >= scrollArmMs {
		ip.mode = ModeDragScroll
		ip.hasScrollAnchor = true
		ip.scrollAnchorY = hand.PosY
		ip.scrollRemainder = 0
		ip.scrollHoldUntil = tMs + scrollHoldGrace
		return []InputEvent{newModeEvent(tMs, ModeDragScroll)}
	}
	if ip.latch.maybeUnlatch(hand.Pinch.Index, tMs) {
		return ip.releaseLeftAndIdle(tMs)
	}
	return ip.emitMove(hand, tMs)
}

func (ip *Interpreter) releaseLeftAndIdle(tMs int64) []InputEvent {
	upT := tMs
	if upT < ip.contactDownMs+minPressMs {
		upT = ip.contactDownMs + minPressMs
	}
	ip.leftDown = false
	ip.hasAnchor = false
	ip.mode = ModeIdle
	return []InputEvent{
		newButtonEvent(upT, ButtonLeft, ActionUp),
		newModeEvent(tMs, ModeIdle),
	}
}

func (ip *Interpreter) enterScroll(hand HandObservation, tMs int64) []InputEvent {
	ip.mode = ModeScroll
	ip.hasScrollAnchor = true
	ip.scrollAnchorY = hand.PosY
	ip.scrollRemainder = 0
	ip.scrollHoldUntil = tMs + scrollHoldGrace
	ip.hoverBlockUntil = tMs + scrollArmMs
	ip.hasHoverPrev = false
	ip.hoverFdx.Reset()
	ip.hoverFdy.Reset()
	return []InputEvent{newModeEvent(tMs, ModeScroll)}
}

func (ip *Interpreter) stepScroll(hand HandObservation, middleOn bool, tMs int64) []InputEvent {
	if middleOn {
		ip.scrollHoldUntil = tMs + scrollHoldGrace
	}
	if tMs > ip.scrollHoldUntil {
		ip.hasScrollAnchor = false
		ip.scrollRemainder = 0
		ip.mode = ModeIdle
		ip.hoverBlockUntil = tMs + 160
		return []InputEvent{newModeEvent(tMs, ModeIdle)}
	}
	return ip.maybeEmitScroll(hand, tMs)
}

func (ip *Interpreter) stepDragScroll(hand HandObservation, middleOn bool, tMs int64) []InputEvent {
	if middleOn {
		ip.scrollHoldUntil = tMs + scrollHoldGrace
	}
	if tMs > ip.scrollHoldUntil {
		ip.hasScrollAnchor = false
		ip.scrollRemainder = 0
		ip.mode = ModeDrag
		ip.anchorHandX, ip.anchorHandY = hand.PosX, hand.PosY
		ip.anchorCursorX, ip.anchorCursorY = ip.cursorX, ip.cursorY
		return []InputEvent{newModeEvent(tMs, ModeDrag)}
	}
	return ip.maybeEmitScroll(hand, tMs)
}

// enterLost force-releases any held button, clears transient state, and emits
// MODE LOST immediately followed by MODE IDLE within the same frame — tracking
// loss never persists as an observable mode across Process calls.
func (ip *Interpreter) enterLost(tMs int64) []InputEvent {
	var events []InputEvent
	if ip.leftDown {
		upT := tMs
		if upT < ip.contactDownMs+minPressMs {
			upT = ip.contactDownMs + minPressMs
		}
		events = append(events, newButtonEvent(upT, ButtonLeft, ActionUp))
		ip.leftDown = false
	}
	ip.latch.release()
	ip.hasAnchor = false
	ip.hasScrollAnchor = false
	ip.hasHoverPrev = false
	ip.hoverFdx.Reset()
	ip.hoverFdy.Reset()
	ip.mode = ModeIdle
	events = append(events, newModeEvent(tMs, ModeLost), newModeEvent(tMs, ModeIdle))
	return events
}
