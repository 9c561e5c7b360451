package palmctl

// Fast-latch arming constants (spec-literal defaults, independent of the
// committed index hysteresis in Preset.PinchIndex — see DESIGN.md's
// open-question note on why these are kept distinct rather than derived from
// the preset). A calibration profile may override them per-instance; see
// Preset.effectiveFastDown/effectiveFastUp.
const (
	peakWindowMs = 70
	fastDown     = 0.67
	fastUp       = 0.56
	minHoldMs    = 80
)

// pinchLatch tracks a rolling peak of the index pinch strength and arms/unarms a
// click latch from it. It reacts within roughly one frame of a pinch crossing
// its arm threshold, while tolerating a single noisy frame dipping below it,
// because the peak — not the instantaneous value — is compared against the
// threshold.
type pinchLatch struct {
	armThresh     float64
	releaseThresh float64

	peak      float64
	peakSince int64
	hasPeak   bool

	latched bool
	latchAt int64
}

func newPinchLatch(armThresh, releaseThresh float64) *pinchLatch {
	return &pinchLatch{armThresh: armThresh, releaseThresh: releaseThresh}
}

// update feeds the current index pinch strength and returns true the frame the
// latch newly arms. Call armed()/maybeUnlatch() for steady-state reads.
func (l *pinchLatch) update(indexPinch float64, tMs int64) (newlyArmed bool) {
	if !l.hasPeak || tMs-l.peakSince > peakWindowMs {
		l.peak = indexPinch
		l.peakSince = tMs
		l.hasPeak = true
	} else if indexPinch > l.peak {
		l.peak = indexPinch
		l.peakSince = tMs
	}

	if !l.latched && l.peak >= l.armThresh {
		l.latched = true
		l.latchAt = tMs
		l.hasPeak = false
		return true
	}
	return false
}

// armed reports whether the click latch is currently holding.
func (l *pinchLatch) armed() bool {
	return l.latched
}

// release unlatches unconditionally (used on LOST/OFF/mode-exit safety paths).
func (l *pinchLatch) release() {
	l.latched = false
}

// maybeUnlatch unlatches once the index pinch has relaxed below the release
// threshold and the minimum hold has elapsed, and reports whether it just did.
func (l *pinchLatch) maybeUnlatch(indexPinch float64, tMs int64) bool {
	if !l.latched {
		return false
	}
	if indexPinch <= l.releaseThresh && tMs-l.latchAt >= minHoldMs {
		l.latched = false
		return true
	}
	return false
}
