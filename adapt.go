package palmctl

import "github.com/wavepunk/palmctl/utils"

const adaptIntervalMs = 5000

// maybeAdapt slowly re-centers the committed index hysteresis thresholds
// around the user's observed rest pinch strength. It only runs in IDLE, when
// the hand is calm and recognized with high confidence, and moves thresholds
// by at most Preset.Adaptation.MaxShiftPerMin per minute, clamped to the
// configured ranges — it never touches the fast-latch thresholds in latch.go.
func (ip *Interpreter) maybeAdapt(hand HandObservation, valid, calm bool, tMs int64) {
	if ip.mode != ModeIdle || !valid || !calm {
		return
	}
	minConf := utils.Max(ip.preset.Tracking.MinConf, 0.60)
	if hand.Confidence < minConf {
		return
	}
	if !ip.hasLastAdapt {
		ip.hasLastAdapt = true
		ip.lastAdaptMs = tMs
		return
	}
	dt := tMs - ip.lastAdaptMs
	if dt < adaptIntervalMs {
		return
	}
	ip.lastAdaptMs = tMs

	cfg := &ip.indexGate.cfg
	rest := hand.Pinch.Index
	center := (cfg.POn + cfg.POff) / 2
	var direction float64
	switch {
	case rest > center:
		direction = 1
	case rest < center:
		direction = -1
	default:
		return
	}

	shift := ip.preset.Adaptation.MaxShiftPerMin * (float64(dt) / 60000.0)
	cfg.POn = clamp(cfg.POn+direction*shift, ip.preset.Adaptation.POnRange[0], ip.preset.Adaptation.POnRange[1])
	cfg.POff = clamp(cfg.POff+direction*shift, ip.preset.Adaptation.POffRange[0], ip.preset.Adaptation.POffRange[1])
}
