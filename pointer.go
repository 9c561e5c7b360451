package palmctl

import (
	"math"

	"github.com/wavepunk/palmctl/utils"
)

// emitMove implements the anchor-relative contact/drag pointer mapping: the
// filtered absolute hand position is compared against the anchor captured on
// CONTACT entry, scaled to screen pixels by Preset.Sensitivity, deadzoned and
// step-capped, then committed into the internal cursor accumulator.
func (ip *Interpreter) emitMove(hand HandObservation, tMs int64) []InputEvent {
	tSec := float64(tMs) / 1000.0
	fx := ip.posFx.Apply(hand.PosX, tSec)
	fy := ip.posFy.Apply(hand.PosY, tSec)

	targetX := ip.anchorCursorX + (fx-ip.anchorHandX)*ip.screenW*ip.preset.Sensitivity
	targetY := ip.anchorCursorY + (fy-ip.anchorHandY)*ip.screenH*ip.preset.Sensitivity

	stepX := targetX - ip.cursorX
	stepY := targetY - ip.cursorY

	dz := utils.Max(ip.preset.Movement.DeadzonePx, 2.0)
	if math.Abs(stepX) <= dz && math.Abs(stepY) <= dz {
		return nil
	}

	maxStepX := ip.preset.Movement.MaxStepFrac * ip.screenW
	maxStepY := ip.preset.Movement.MaxStepFrac * ip.screenH
	stepX = clamp(stepX, -maxStepX, maxStepX)
	stepY = clamp(stepY, -maxStepY, maxStepY)

	dx := int(math.Round(stepX))
	dy := int(math.Round(stepY))
	if dx == 0 && dy == 0 {
		return nil
	}

	ip.cursorX += float64(dx)
	ip.cursorY += float64(dy)
	return []InputEvent{newMoveEvent(tMs, dx, dy)}
}

func clamp(v, lo, hi float64) float64 {
	return utils.Max(lo, utils.Min(hi, v))
}
