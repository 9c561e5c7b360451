package palmctl

import (
	"math"

	"github.com/wavepunk/palmctl/utils"
)

// maybeEmitHoverMove implements the idle-only incremental mapping: raw
// (unfiltered-absolute) position deltas run through their own One-Euro delta
// filters, gated by an edge-margin safe zone and layered deadzones, with
// pixel-snap-at-rest so a motionless hand produces no drift.
func (ip *Interpreter) maybeEmitHoverMove(hand HandObservation, valid bool, tMs int64) []InputEvent {
	h := ip.preset.Hover
	if !h.Enabled || !valid || hand.Confidence < h.MinConf {
		ip.hasHoverPrev = false
		return nil
	}
	if hand.PosX < h.EdgeMargin || hand.PosX > 1-h.EdgeMargin ||
		hand.PosY < h.EdgeMargin || hand.PosY > 1-h.EdgeMargin {
		ip.hasHoverPrev = false
		return nil
	}

	if !ip.hasHoverPrev {
		ip.hoverPrevX, ip.hoverPrevY = hand.PosX, hand.PosY
		ip.hasHoverPrev = true
		return nil
	}

	rawDX := (hand.PosX - ip.hoverPrevX) * ip.screenW * h.Sensitivity
	rawDY := (hand.PosY - ip.hoverPrevY) * ip.screenH * h.Sensitivity
	ip.hoverPrevX, ip.hoverPrevY = hand.PosX, hand.PosY

	tSec := float64(tMs) / 1000.0
	dx := ip.hoverFdx.Apply(rawDX, tSec)
	dy := ip.hoverFdy.Apply(rawDY, tSec)

	speed := math.Abs(dx) + math.Abs(dy)
	adaptiveDz := 4.0
	if speed > 8 {
		adaptiveDz = 2.0
	}
	dz := utils.Max(h.DeadzonePx, utils.Max(2.0, adaptiveDz))
	if math.Abs(dx) <= dz {
		dx = 0
	}
	if math.Abs(dy) <= dz {
		dy = 0
	}

	maxStepX := ip.preset.Movement.MaxStepFrac * ip.screenW
	maxStepY := ip.preset.Movement.MaxStepFrac * ip.screenH
	dx = clamp(dx, -maxStepX, maxStepX)
	dy = clamp(dy, -maxStepY, maxStepY)

	idx := int(math.Round(dx))
	idy := int(math.Round(dy))
	if utils.Abs(idx) <= 1 && utils.Abs(idy) <= 1 {
		return nil
	}

	ip.cursorX += float64(idx)
	ip.cursorY += float64(idy)
	return []InputEvent{newMoveEvent(tMs, idx, idy)}
}
