// Package calib implements the guided calibration wizard: a short staged
// sampling session that measures a user's actual pinch strengths and derives
// personalized thresholds, saved as a palmctl.CalibrationProfile.
package calib

import (
	"sort"

	"github.com/wavepunk/palmctl"
)

// Step identifies one stage of the wizard.
type Step int

const (
	StepRelax Step = iota
	StepMouseGrip
	StepIndexPinch
	StepMiddlePinch
	StepScrollCheck
	StepDone
)

var stepDurationMs = map[Step]int64{
	StepRelax:       2500,
	StepMouseGrip:   2500,
	StepIndexPinch:  5000,
	StepMiddlePinch: 5000,
	StepScrollCheck: 5000,
}

// Instructions are shown to the user for each step, in the teacher codebase's
// terse status-line style rather than a full paragraph.
var Instructions = map[Step]string{
	StepRelax:       "relax your hand in front of the camera",
	StepMouseGrip:   "hold your hand as if gripping a mouse",
	StepIndexPinch:  "pinch your thumb and index finger together, repeatedly",
	StepMiddlePinch: "pinch your thumb and middle finger together, repeatedly",
	StepScrollCheck: "hold the middle pinch and move your hand up and down",
}

// Calibrator runs the staged sampling session and derives a profile once all
// steps complete.
type Calibrator struct {
	step      Step
	stepStart int64
	started   bool

	samples map[Step][]float64
	anchorY float64
}

// NewCalibrator constructs a Calibrator positioned at the first step.
func NewCalibrator() *Calibrator {
	return &Calibrator{
		step:    StepRelax,
		samples: make(map[Step][]float64),
	}
}

// Start marks the session as running, anchored at tMs.
func (c *Calibrator) Start(tMs int64) {
	c.started = true
	c.stepStart = tMs
}

// Current reports the current step.
func (c *Calibrator) Current() Step {
	return c.step
}

// Done reports whether every step has completed.
func (c *Calibrator) Done() bool {
	return c.step == StepDone
}

// Update feeds one observation, recording the relevant pinch signal for the
// active step and advancing once that step's time budget elapses.
func (c *Calibrator) Update(hand palmctl.HandObservation, tMs int64) {
	if !c.started || c.Done() {
		return
	}

	switch c.step {
	case StepRelax:
		c.samples[c.step] = append(c.samples[c.step], hand.Pinch.Index)
	case StepMouseGrip:
		c.samples[c.step] = append(c.samples[c.step], hand.Pinch.Index)
	case StepIndexPinch:
		c.samples[c.step] = append(c.samples[c.step], hand.Pinch.Index)
	case StepMiddlePinch:
		c.samples[c.step] = append(c.samples[c.step], hand.Pinch.Middle)
	case StepScrollCheck:
		c.samples[c.step] = append(c.samples[c.step], hand.PosY)
		if len(c.samples[c.step]) == 1 {
			c.anchorY = hand.PosY
		}
	}

	if tMs-c.stepStart >= stepDurationMs[c.step] {
		c.step++
		c.stepStart = tMs
	}
}

// Finalize derives a CalibrationProfile from the samples collected so far.
// Percentile-based thresholds with an enforced minimum margin, matching the
// approach of the original calibration tool this was ported from.
func (c *Calibrator) Finalize() palmctl.CalibrationProfile {
	relax := percentile(c.samples[StepRelax], 0.90)
	indexSamples := c.samples[StepIndexPinch]

	fastDown := percentile(indexSamples, 0.60)
	fastUp := percentile(indexSamples, 0.20)
	if fastUp > fastDown-0.08 {
		fastUp = fastDown - 0.08
	}
	if fastDown < relax+0.15 {
		fastDown = relax + 0.15
	}

	midSamples := c.samples[StepMiddlePinch]
	midDown := percentile(midSamples, 0.55)
	midUp := percentile(midSamples, 0.20)
	if midUp > midDown-0.08 {
		midUp = midDown - 0.08
	}

	return palmctl.CalibrationProfile{
		FastDown: clampRange(fastDown, 0.45, 0.95),
		FastUp:   clampRange(fastUp, 0.30, 0.90),
		MidDown:  clampRange(midDown, 0.45, 0.95),
		MidUp:    clampRange(midUp, 0.30, 0.90),
	}
}

func percentile(xs []float64, q float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)
	idx := int(q * float64(len(sorted)-1))
	if idx < 0 {
		idx = 0
	}
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}

func clampRange(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
