package palmctl

// Handedness tags a HandObservation with the hand it was detected as, when the
// upstream sensor can tell.
type Handedness int

const (
	HandUnknown Handedness = iota
	HandLeft
	HandRight
)

// PinchStrengths holds the three pinch signals the interpreter reacts to, each
// normalized to [0,1] by the sensor. Index drives click/drag, middle drives
// scroll, ring drives the right-click tap.
type PinchStrengths struct {
	Index  float64
	Middle float64
	Ring   float64
}

// HandObservation is one hand's worth of sensor output for a single frame.
type HandObservation struct {
	HandID     string
	Present    bool
	Confidence float64
	Handedness Handedness
	// PosX, PosY are the anatomical reference point (palm or index knuckle) in
	// normalized camera coordinates, x,y in [0,1]. PosZ is carried through but
	// unused by the v1 interpreter.
	PosX, PosY, PosZ float64
	Pinch            PinchStrengths
}

// HandFrame is one tick of sensor input: a monotonic timestamp plus zero or more
// hand observations.
type HandFrame struct {
	TMs   int64
	Hands []HandObservation
}

// Mode is the interpreter's current state-machine state.
type Mode int

const (
	ModeIdle Mode = iota
	ModeContact
	ModeDrag
	ModeScroll
	ModeDragScroll
	ModeLost
	ModeOff
)

func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "IDLE"
	case ModeContact:
		return "CONTACT"
	case ModeDrag:
		return "DRAG"
	case ModeScroll:
		return "SCROLL"
	case ModeDragScroll:
		return "DRAG_SCROLL"
	case ModeLost:
		return "LOST"
	case ModeOff:
		return "OFF"
	default:
		return "UNKNOWN"
	}
}

// EventType discriminates the InputEvent payload.
type EventType int

const (
	EventMove EventType = iota
	EventButton
	EventScroll
	EventMode
)

func (t EventType) String() string {
	switch t {
	case EventMove:
		return "MOVE"
	case EventButton:
		return "BUTTON"
	case EventScroll:
		return "SCROLL"
	case EventMode:
		return "MODE"
	default:
		return "UNKNOWN"
	}
}

// ButtonName identifies which button a BUTTON event refers to.
type ButtonName int

const (
	ButtonLeft ButtonName = iota
	ButtonRight
)

func (b ButtonName) String() string {
	if b == ButtonRight {
		return "RIGHT"
	}
	return "LEFT"
}

// ButtonAction is the transition a BUTTON event reports.
type ButtonAction int

const (
	ActionDown ButtonAction = iota
	ActionUp
	ActionClick
)

func (a ButtonAction) String() string {
	switch a {
	case ActionDown:
		return "DOWN"
	case ActionUp:
		return "UP"
	case ActionClick:
		return "CLICK"
	default:
		return "UNKNOWN"
	}
}

// MovePayload carries a signed pixel delta for an EventMove event.
type MovePayload struct {
	DX, DY int
}

// ButtonPayload carries the button and transition for an EventButton event.
type ButtonPayload struct {
	Name   ButtonName
	Action ButtonAction
}

// ScrollPayload carries signed integer wheel ticks for an EventScroll event. DX is
// reserved for horizontal scroll and is always zero in this build.
type ScrollPayload struct {
	DX, DY int
}

// ModePayload reports the mode the interpreter just transitioned into.
type ModePayload struct {
	State Mode
}

// InputEvent is a tagged variant: exactly one of Move, Button, Scroll, Mode is
// non-nil, selected by Type. Go has no sum types, so the non-nil invariant is
// kept by construction: the interpreter builds every event through the
// unexported newXxxEvent constructors below. The fields stay exported, so code
// outside this package that builds an InputEvent literal must keep it itself.
type InputEvent struct {
	TMs    int64
	Type   EventType
	Move   *MovePayload
	Button *ButtonPayload
	Scroll *ScrollPayload
	Mode   *ModePayload
}

func newMoveEvent(tMs int64, dx, dy int) InputEvent {
	return InputEvent{TMs: tMs, Type: EventMove, Move: &MovePayload{DX: dx, DY: dy}}
}

func newButtonEvent(tMs int64, name ButtonName, action ButtonAction) InputEvent {
	return InputEvent{TMs: tMs, Type: EventButton, Button: &ButtonPayload{Name: name, Action: action}}
}

func newScrollEvent(tMs int64, dx, dy int) InputEvent {
	return InputEvent{TMs: tMs, Type: EventScroll, Scroll: &ScrollPayload{DX: dx, DY: dy}}
}

func newModeEvent(tMs int64, state Mode) InputEvent {
	return InputEvent{TMs: tMs, Type: EventMode, Mode: &ModePayload{State: state}}
}
