package palmctl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	testScreenW = 1920
	testScreenH = 1080
)

func frame(t int64, idx, mid, ring float64, x, y, conf float64, present bool) HandFrame {
	return HandFrame{
		TMs: t,
		Hands: []HandObservation{
			{
				HandID:     "h0",
				Present:    present,
				Confidence: conf,
				PosX:       x,
				PosY:       y,
				Pinch:      PinchStrengths{Index: idx, Middle: mid, Ring: ring},
			},
		},
	}
}

func countButton(events []InputEvent, name ButtonName, action ButtonAction) int {
	n := 0
	for _, ev := range events {
		if ev.Type == EventButton && ev.Button.Name == name && ev.Button.Action == action {
			n++
		}
	}
	return n
}

func hasMode(events []InputEvent, m Mode) bool {
	for _, ev := range events {
		if ev.Type == EventMode && ev.Mode.State == m {
			return true
		}
	}
	return false
}

// TestInterpreter_TapClick feeds a short pinch-on/pinch-off cycle and expects a
// LEFT DOWN immediately on latch and a LEFT UP once the pinch relaxes and the
// minimum hold has elapsed.
func TestInterpreter_TapClick(t *testing.T) {
	assert := assert.New(t)
	ip := NewInterpreter(DefaultPreset(), testScreenW, testScreenH, nil)

	downs, ups := 0, 0
	tMs := int64(0)
	for i := 0; i < 6; i++ {
		events := ip.Process(frame(tMs, 0.90, 0, 0, 0.5, 0.5, 0.9, true))
		downs += countButton(events, ButtonLeft, ActionDown)
		ups += countButton(events, ButtonLeft, ActionUp)
		tMs += 20
	}
	for i := 0; i < 10; i++ {
		events := ip.Process(frame(tMs, 0.10, 0, 0, 0.5, 0.5, 0.9, true))
		downs += countButton(events, ButtonLeft, ActionDown)
		ups += countButton(events, ButtonLeft, ActionUp)
		tMs += 20
	}

	assert.Equal(1, downs, "exactly one LEFT DOWN should be emitted for a single tap")
	assert.Equal(1, ups, "exactly one LEFT UP should be emitted once the pinch releases")
}

// TestInterpreter_MinPressDuration checks that a very fast tap (shorter than the
// minimum press duration) still yields a LEFT UP timestamped at least 55ms
// after the matching LEFT DOWN.
func TestInterpreter_MinPressDuration(t *testing.T) {
	assert := assert.New(t)
	ip := NewInterpreter(DefaultPreset(), testScreenW, testScreenH, nil)

	events := ip.Process(frame(0, 0.90, 0, 0, 0.5, 0.5, 0.9, true))
	assert.Equal(1, countButton(events, ButtonLeft, ActionDown))

	// Pinch relaxes one frame later (minHoldMs=80 not yet satisfied, so it
	// should not unlatch immediately — but once it does, at t=100, the UP
	// must be stamped >= 0 + 55.
	events = ip.Process(frame(20, 0.10, 0, 0, 0.5, 0.5, 0.9, true))
	assert.Equal(0, countButton(events, ButtonLeft, ActionUp))

	events = ip.Process(frame(100, 0.10, 0, 0, 0.5, 0.5, 0.9, true))
	assert.Equal(1, countButton(events, ButtonLeft, ActionUp))
	for _, ev := range events {
		if ev.Type == EventButton && ev.Button.Name == ButtonLeft && ev.Button.Action == ActionUp {
			assert.GreaterOrEqual(ev.TMs, int64(55))
		}
	}
}

// TestInterpreter_DragHoldAndRelease holds a pinch long enough to cross into
// DRAG, drifts the hand, then releases — expecting exactly one DOWN/UP pair
// and at least one MOVE while dragging.
func TestInterpreter_DragHoldAndRelease(t *testing.T) {
	assert := assert.New(t)
	ip := NewInterpreter(DefaultPreset(), testScreenW, testScreenH, nil)

	downs, ups, moves := 0, 0, 0
	tMs := int64(0)
	x := 0.5
	for i := 0; i < 20; i++ {
		x += 0.01
		events := ip.Process(frame(tMs, 0.90, 0, 0, x, 0.5, 0.9, true))
		downs += countButton(events, ButtonLeft, ActionDown)
		ups += countButton(events, ButtonLeft, ActionUp)
		for _, ev := range events {
			if ev.Type == EventMove {
				moves++
			}
		}
		tMs += 20
	}
	assert.Equal(ModeDrag, ip.Mode())

	for i := 0; i < 8; i++ {
		events := ip.Process(frame(tMs, 0.10, 0, 0, x, 0.5, 0.9, true))
		downs += countButton(events, ButtonLeft, ActionDown)
		ups += countButton(events, ButtonLeft, ActionUp)
		tMs += 20
	}

	assert.Equal(1, downs)
	assert.Equal(1, ups)
	assert.Greater(moves, 0, "dragging should move the pointer")
}

// TestInterpreter_ScrollEmitsScrollEvents enters CONTACT-free scroll mode via
// a sustained middle pinch and expects SCROLL events once the hand has moved
// enough to clear the scroll deadzone.
func TestInterpreter_ScrollEmitsScrollEvents(t *testing.T) {
	assert := assert.New(t)
	ip := NewInterpreter(DefaultPreset(), testScreenW, testScreenH, nil)

	tMs := int64(0)
	for i := 0; i < 12; i++ {
		ip.Process(frame(tMs, 0, 0.85, 0, 0.5, 0.5, 0.9, true))
		tMs += 20
	}
	assert.Equal(ModeScroll, ip.Mode())

	sawScroll := false
	y := 0.5
	for i := 0; i < 15; i++ {
		y += 0.03
		events := ip.Process(frame(tMs, 0, 0.85, 0, 0.5, y, 0.9, true))
		for _, ev := range events {
			if ev.Type == EventScroll {
				sawScroll = true
				assert.LessOrEqual(ev.Scroll.DY, maxTicksPerFrame)
				assert.GreaterOrEqual(ev.Scroll.DY, -maxTicksPerFrame)
			}
			assert.NotEqual(EventMove, ev.Type, "no MOVE should be emitted while scrolling")
		}
		tMs += 20
	}
	assert.True(sawScroll, "a large enough vertical displacement should emit at least one SCROLL event")
}

// TestInterpreter_LostTrackingReleases drags, then loses tracking, and expects
// the held LEFT button to be released and a LOST->IDLE recovery in one frame.
func TestInterpreter_LostTrackingReleases(t *testing.T) {
	assert := assert.New(t)
	ip := NewInterpreter(DefaultPreset(), testScreenW, testScreenH, nil)

	tMs := int64(0)
	x := 0.5
	for i := 0; i < 20; i++ {
		x += 0.01
		ip.Process(frame(tMs, 0.90, 0, 0, x, 0.5, 0.9, true))
		tMs += 20
	}
	assert.Equal(ModeDrag, ip.Mode())

	var recovered []InputEvent
	for i := 0; i < 10; i++ {
		// The hand keeps "pinching" (index held) but tracking itself is lost
		// (present=false, confidence=0): the latch alone would never unlatch
		// from this input, so any release seen here must come from the LOST
		// safety path, not from a natural pinch release.
		events := ip.Process(frame(tMs, 0.90, 0, 0, x, 0.5, 0.0, false))
		if hasMode(events, ModeLost) {
			recovered = events
		}
		tMs += 20
	}

	assert.NotNil(recovered, "a LOST transition should eventually be emitted")
	assert.True(hasMode(recovered, ModeLost))
	assert.True(hasMode(recovered, ModeIdle), "LOST must be followed by IDLE in the same frame")
	assert.Equal(1, countButton(recovered, ButtonLeft, ActionUp), "losing tracking must release a held LEFT button")
	assert.Equal(ModeIdle, ip.Mode())
}

// TestInterpreter_RightClickChord feeds index and middle pinches engaging
// within the chord window and expects a single RIGHT CLICK rather than any
// CONTACT/SCROLL entry. The middle pinch leads: its gate commits at t=60, which
// keeps the fast latch disarmed when the index pinch rises; the index gate then
// commits at t=140, 80ms after the middle gate.
func TestInterpreter_RightClickChord(t *testing.T) {
	assert := assert.New(t)
	ip := NewInterpreter(DefaultPreset(), testScreenW, testScreenH, nil)

	tMs := int64(0)
	var clicks int
	for i := 0; i < 3; i++ {
		ip.Process(frame(tMs, 0, 0.85, 0, 0.5, 0.5, 0.9, true))
		tMs += 20
	}
	for i := 0; i < 6; i++ {
		events := ip.Process(frame(tMs, 0.90, 0.85, 0, 0.5, 0.5, 0.9, true))
		for _, ev := range events {
			if ev.Type == EventButton && ev.Button.Name == ButtonRight && ev.Button.Action == ActionClick {
				clicks++
			}
		}
		tMs += 20
	}
	assert.Equal(1, clicks)
	assert.Equal(ModeIdle, ip.Mode())
}

// TestInterpreter_SetOffReleasesAndBlocksInput verifies the kill switch
// releases a held button immediately and that input is inert while off.
func TestInterpreter_SetOffReleasesAndBlocksInput(t *testing.T) {
	assert := assert.New(t)
	ip := NewInterpreter(DefaultPreset(), testScreenW, testScreenH, nil)

	ip.Process(frame(0, 0.90, 0, 0, 0.5, 0.5, 0.9, true))
	assert.True(ip.leftDown)

	events := ip.SetOff(true, 20)
	assert.Equal(1, countButton(events, ButtonLeft, ActionUp))
	assert.True(hasMode(events, ModeOff))

	events = ip.Process(frame(40, 0.90, 0, 0, 0.5, 0.5, 0.9, true))
	assert.Empty(events, "no events should be produced while off")

	events = ip.SetOff(true, 60)
	assert.Empty(events, "setting off twice in a row should be a no-op")

	events = ip.SetOff(false, 80)
	assert.True(hasMode(events, ModeIdle))
}

// TestInterpreter_ZeroMotionIdleEmitsNothing checks that a perfectly still
// hand in IDLE produces no events after the first frame.
func TestInterpreter_ZeroMotionIdleEmitsNothing(t *testing.T) {
	assert := assert.New(t)
	ip := NewInterpreter(DefaultPreset(), testScreenW, testScreenH, nil)

	ip.Process(frame(0, 0, 0, 0, 0.5, 0.5, 0.9, true))
	for i := 1; i < 10; i++ {
		events := ip.Process(frame(int64(i)*20, 0, 0, 0, 0.5, 0.5, 0.9, true))
		assert.Empty(events)
	}
}
