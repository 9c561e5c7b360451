package palmctl

// Hysteresis configures a debounced boolean gate over a noisy [0,1] signal: it
// must cross POn/POff and then dwell for TOnMs/TOffMs before the gate commits.
type Hysteresis struct {
	POn    float64
	POff   float64
	TOnMs  int64
	TOffMs int64
}

// ClickDragTuning configures tap/drag timing thresholds.
type ClickDragTuning struct {
	ClickMaxMs      int64
	ClickMoveTolPx  float64
	DragHoldMs      int64
	DoubleClickMs   int64
}

// TrackingSafety configures hand-loss recovery.
type TrackingSafety struct {
	MinConf       float64
	LostTimeoutMs int64
}

// MovementSafety bounds how far a single frame may move the pointer.
type MovementSafety struct {
	DeadzonePx   float64
	MaxStepFrac  float64
}

// OneEuroParams configures a one-euro filter instance.
type OneEuroParams struct {
	MinCutoff float64
	Beta      float64
	DCutoff   float64
}

// HoverMove configures the idle hover-mapping stage.
type HoverMove struct {
	Enabled     bool
	MinConf     float64
	EdgeMargin  float64
	DeadzonePx  float64
	Sensitivity float64
}

// ScrollTuning configures the legacy scroll knobs carried for config
// compatibility (speed/invert/inertia/gain are read by no v1 code path — see
// ScrollPhysics for the fields the active mapper actually uses).
type ScrollTuning struct {
	Enabled bool
	Speed   float64
	InvertY bool
	Inertia float64
	Gain    float64
}

// ScrollPhysics configures the displacement-based scroll mapper in scroll.go.
// The mapper reads only DeadzonePx and InvertY; PxForUnit, Gamma, MaxTicksPerS,
// HalfLifeMs and ReengageMs are read by no code path in this build (scroll.go's
// momentumStep, which nothing calls, takes its half-life as a plain argument).
type ScrollPhysics struct {
	DeadzonePx      float64
	PxForUnit       float64
	Gamma           float64
	MaxTicksPerS    float64
	HalfLifeMs      int64
	ReengageMs      int64
	InvertY         bool
}

// AdaptationBounds bounds the slow online drift of the index hysteresis
// thresholds.
type AdaptationBounds struct {
	POnRange        [2]float64
	POffRange       [2]float64
	MaxShiftPerMin  float64
	MaxHandSpeedNorm float64
}

// Preset aggregates every tunable knob the interpreter reads. It is immutable
// once constructed; DefaultPreset/PrecisionPreset/ChillPreset build the three
// shipped presets and a calibration profile may override a handful of its pinch
// thresholds at construction time (see profile.go).
type Preset struct {
	Name string

	PinchIndex  Hysteresis
	PinchMiddle Hysteresis

	ClickDrag ClickDragTuning
	Tracking  TrackingSafety
	Movement  MovementSafety

	PosFilter OneEuroParams
	PinchEmaAlpha float64

	Hover   HoverMove
	Scroll  ScrollTuning
	Physics ScrollPhysics

	Adaptation AdaptationBounds

	Sensitivity float64

	// Overrides a calibration profile may fold in; zero means "use the
	// package-level fast-latch constants / preset default" (see profile.go).
	fastDownOverride float64
	fastUpOverride   float64
	invertYOverride  bool
}

// effectiveFastDown returns the profile-overridden fast-latch arm threshold, or
// the spec-literal default when no profile override is set.
func (p Preset) effectiveFastDown() float64 {
	if p.fastDownOverride > 0 {
		return p.fastDownOverride
	}
	return fastDown
}

// effectiveFastUp returns the profile-overridden fast-latch release threshold,
// or the spec-literal default when no profile override is set.
func (p Preset) effectiveFastUp() float64 {
	if p.fastUpOverride > 0 {
		return p.fastUpOverride
	}
	return fastUp
}

// DefaultPreset is the balanced, general-purpose tuning.
func DefaultPreset() Preset {
	return Preset{
		Name: "default",
		PinchIndex:  Hysteresis{POn: 0.78, POff: 0.62, TOnMs: 80, TOffMs: 80},
		PinchMiddle: Hysteresis{POn: 0.68, POff: 0.55, TOnMs: 60, TOffMs: 80},
		ClickDrag: ClickDragTuning{
			ClickMaxMs: 170, ClickMoveTolPx: 6, DragHoldMs: 220, DoubleClickMs: 420,
		},
		Tracking: TrackingSafety{MinConf: 0.55, LostTimeoutMs: 120},
		Movement: MovementSafety{DeadzonePx: 1, MaxStepFrac: 0.20},
		PosFilter: OneEuroParams{MinCutoff: 2.0, Beta: 0.06, DCutoff: 1.0},
		PinchEmaAlpha: 0.35,
		Hover: HoverMove{Enabled: true, MinConf: 0.75, EdgeMargin: 0.06, DeadzonePx: 4, Sensitivity: 2.2},
		Scroll: ScrollTuning{Enabled: true, Speed: 1.0, InvertY: false, Inertia: 0.0, Gain: 1.0},
		Physics: ScrollPhysics{
			DeadzonePx: 14.0, PxForUnit: 140.0, Gamma: 1.35,
			MaxTicksPerS: 320, HalfLifeMs: 320, ReengageMs: 420, InvertY: false,
		},
		Adaptation: AdaptationBounds{
			POnRange: [2]float64{0.70, 0.90}, POffRange: [2]float64{0.50, 0.75},
			MaxShiftPerMin: 0.01, MaxHandSpeedNorm: 0.015,
		},
		Sensitivity: 2.5,
	}
}

// PrecisionPreset lowers sensitivity and the per-frame step cap, widens the
// hover deadzone and slows adaptation, for fine pointer work at the cost of
// reach. Its smaller Movement.DeadzonePx leaves the contact/drag deadzone
// unchanged, since emitMove floors that deadzone at 2px.
func PrecisionPreset() Preset {
	p := DefaultPreset()
	p.Name = "precision"
	p.Movement.DeadzonePx = 0.5
	p.Movement.MaxStepFrac = 0.12
	p.Sensitivity = 1.6
	p.Hover.Sensitivity = 1.4
	p.Hover.DeadzonePx = 6
	p.Adaptation.MaxShiftPerMin = 0.005
	p.PosFilter = OneEuroParams{MinCutoff: 1.2, Beta: 0.03, DCutoff: 1.0}
	return p
}

// ChillPreset loosens confidence/timeout requirements and reacts faster, for
// casual use on noisier webcams.
func ChillPreset() Preset {
	p := DefaultPreset()
	p.Name = "chill"
	p.Tracking.MinConf = 0.45
	p.Tracking.LostTimeoutMs = 220
	p.Sensitivity = 3.2
	p.PosFilter = OneEuroParams{MinCutoff: 3.2, Beta: 0.12, DCutoff: 1.2}
	p.Adaptation.MaxHandSpeedNorm = 0.022
	return p
}

// PresetByName resolves one of the three built-in presets by name, defaulting to
// DefaultPreset for an unrecognized name.
func PresetByName(name string) Preset {
	switch name {
	case "precision":
		return PrecisionPreset()
	case "chill":
		return ChillPreset()
	default:
		return DefaultPreset()
	}
}
