package palmctl

import (
	"math"

	"github.com/wavepunk/palmctl/utils"
)

const (
	pxPerTick       = 26.0
	maxTicksPerFrame = 6
	clutchPx        = 260.0
)

// maybeEmitScroll implements the displacement-based scroll mapper: the
// vertical offset between the current hand position and the scroll anchor is
// converted into wheel ticks once past a deadzone, with a clutch that slides
// the anchor toward the hand on large displacements (so a single physical
// drag can scroll indefinitely) and a fractional-tick remainder so slow drags
// still eventually produce a tick.
func (ip *Interpreter) maybeEmitScroll(hand HandObservation, tMs int64) []InputEvent {
	if !ip.hasScrollAnchor {
		return nil
	}

	confAct := utils.Max(0.40, ip.preset.Tracking.MinConf-0.10)
	if hand.Confidence < confAct {
		return nil
	}

	offset := (hand.PosY - ip.scrollAnchorY) * ip.screenH

	if math.Abs(offset) > clutchPx {
		shift := (math.Abs(offset) - clutchPx) / ip.screenH
		if offset > 0 {
			ip.scrollAnchorY += shift
		} else {
			ip.scrollAnchorY -= shift
		}
		offset = (hand.PosY - ip.scrollAnchorY) * ip.screenH
	}

	sign := -1.0
	if offset < 0 {
		sign = 1.0
	}
	if offset == 0 {
		sign = 0
	}
	if ip.preset.Physics.InvertY || ip.preset.invertYOverride {
		sign = -sign
	}

	dz := utils.Max(ip.preset.Physics.DeadzonePx, 10.0)
	if math.Abs(offset) <= dz {
		return nil
	}

	deltaTicks := sign * (math.Abs(offset) - dz) / pxPerTick
	ip.scrollRemainder += deltaTicks

	ticks := int(math.Trunc(ip.scrollRemainder))
	if ticks > maxTicksPerFrame {
		ticks = maxTicksPerFrame
	} else if ticks < -maxTicksPerFrame {
		ticks = -maxTicksPerFrame
	}
	ip.scrollRemainder -= float64(ticks)

	if ticks == 0 {
		return nil
	}
	return []InputEvent{newScrollEvent(tMs, 0, ticks)}
}

// momentumStep computes one exponential-decay continuation tick from the
// scroll physics half-life. It is not called from the state machine in this
// build (see the ScrollPhysics doc comment in config.go on its unused fields).
func momentumStep(velocity, halfLifeMs float64, dtMs float64) float64 {
	if halfLifeMs <= 0 {
		return 0
	}
	decay := math.Pow(0.5, dtMs/halfLifeMs)
	return velocity * decay
}
