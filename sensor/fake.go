package sensor

import (
	"math"

	"github.com/wavepunk/palmctl"
)

// Fake is a deterministic synthetic Source: a hand that drifts in a small
// circle and cycles its index pinch strength on and off, with no camera or
// randomness involved. Useful for demos, integration tests, and exercising a
// Sink without hardware.
type Fake struct {
	StartMs    int64
	CycleMs    int64
	Confidence float64
}

// NewFake returns a Fake source with the original run loop's defaults: a 1.6s
// pinch cycle and a steady 0.9 confidence.
func NewFake(startMs int64) *Fake {
	return &Fake{StartMs: startMs, CycleMs: 1600, Confidence: 0.9}
}

// Frame always returns present=true.
func (f *Fake) Frame(nowMs int64) (palmctl.HandFrame, bool) {
	t := nowMs - f.StartMs
	phase := float64(t%f.CycleMs) / float64(f.CycleMs)

	index := 0.0
	if phase < 0.5 {
		index = 0.90
	} else {
		index = 0.15
	}

	x := 0.5 + 0.05*math.Sin(2*math.Pi*phase)
	y := 0.5 + 0.03*math.Cos(2*math.Pi*phase)

	frame := palmctl.HandFrame{
		TMs: nowMs,
		Hands: []palmctl.HandObservation{
			{
				HandID:     "fake-0",
				Present:    true,
				Confidence: f.Confidence,
				Handedness: palmctl.HandRight,
				PosX:       x,
				PosY:       y,
				Pinch:      palmctl.PinchStrengths{Index: index},
			},
		},
	}
	return frame, true
}
