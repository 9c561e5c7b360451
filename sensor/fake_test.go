package sensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFake_AlwaysPresent(t *testing.T) {
	assert := assert.New(t)

	f := NewFake(0)
	for tm := int64(0); tm < 5000; tm += 16 {
		frame, ok := f.Frame(tm)
		assert.True(ok)
		assert.Len(frame.Hands, 1)
		assert.True(frame.Hands[0].Present)
	}
}

func TestFake_PinchCyclesOnAndOff(t *testing.T) {
	assert := assert.New(t)

	f := NewFake(0)
	sawOn, sawOff := false, false
	for tm := int64(0); tm < f.CycleMs*2; tm += 16 {
		frame, _ := f.Frame(tm)
		idx := frame.Hands[0].Pinch.Index
		if idx > 0.8 {
			sawOn = true
		}
		if idx < 0.2 {
			sawOff = true
		}
	}
	assert.True(sawOn)
	assert.True(sawOff)
}

func TestFake_PositionStaysNearCenter(t *testing.T) {
	assert := assert.New(t)

	f := NewFake(0)
	for tm := int64(0); tm < f.CycleMs; tm += 16 {
		frame, _ := f.Frame(tm)
		h := frame.Hands[0]
		assert.InDelta(0.5, h.PosX, 0.1)
		assert.InDelta(0.5, h.PosY, 0.1)
	}
}
