package calib

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wavepunk/palmctl"
)

func observation(index, middle float64) palmctl.HandObservation {
	return palmctl.HandObservation{
		HandID:     "h0",
		Present:    true,
		Confidence: 0.9,
		Pinch:      palmctl.PinchStrengths{Index: index, Middle: middle},
	}
}

func runStep(c *Calibrator, tMs int64, obs palmctl.HandObservation, stepMs int64) int64 {
	for elapsed := int64(0); elapsed < stepMs; elapsed += 16 {
		c.Update(obs, tMs+elapsed)
	}
	return tMs + stepMs
}

func TestCalibrator_AdvancesThroughAllSteps(t *testing.T) {
	assert := assert.New(t)

	c := NewCalibrator()
	c.Start(0)

	tMs := int64(0)
	tMs = runStep(c, tMs, observation(0.05, 0.05), stepDurationMs[StepRelax]+20)
	assert.Equal(StepMouseGrip, c.Current())

	tMs = runStep(c, tMs, observation(0.10, 0.10), stepDurationMs[StepMouseGrip]+20)
	assert.Equal(StepIndexPinch, c.Current())

	tMs = runStep(c, tMs, observation(0.85, 0.10), stepDurationMs[StepIndexPinch]+20)
	assert.Equal(StepMiddlePinch, c.Current())

	tMs = runStep(c, tMs, observation(0.10, 0.80), stepDurationMs[StepMiddlePinch]+20)
	assert.Equal(StepScrollCheck, c.Current())

	runStep(c, tMs, observation(0.10, 0.80), stepDurationMs[StepScrollCheck]+20)
	assert.True(c.Done())
}

func TestCalibrator_FinalizeDerivesOrderedThresholds(t *testing.T) {
	assert := assert.New(t)

	c := NewCalibrator()
	c.Start(0)

	tMs := int64(0)
	tMs = runStep(c, tMs, observation(0.05, 0.05), stepDurationMs[StepRelax]+20)
	tMs = runStep(c, tMs, observation(0.10, 0.10), stepDurationMs[StepMouseGrip]+20)
	tMs = runStep(c, tMs, observation(0.85, 0.10), stepDurationMs[StepIndexPinch]+20)
	tMs = runStep(c, tMs, observation(0.10, 0.80), stepDurationMs[StepMiddlePinch]+20)
	runStep(c, tMs, observation(0.10, 0.80), stepDurationMs[StepScrollCheck]+20)

	profile := c.Finalize()

	assert.Greater(profile.FastDown, profile.FastUp)
	assert.Greater(profile.MidDown, profile.MidUp)
}

func TestCalibrator_UpdateBeforeStartIsNoop(t *testing.T) {
	assert := assert.New(t)

	c := NewCalibrator()
	c.Update(observation(0.9, 0.1), 0)
	assert.Equal(StepRelax, c.Current())
}

func TestPercentile(t *testing.T) {
	assert := assert.New(t)

	xs := []float64{0.1, 0.5, 0.3, 0.9, 0.2}
	assert.Equal(0.1, percentile(xs, 0.0))
	assert.Equal(0.9, percentile(xs, 1.0))
}
