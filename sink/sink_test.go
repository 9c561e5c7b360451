package sink

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/wavepunk/palmctl"
)

type fakeDevice struct {
	moves     [][2]int
	scrolls   [][2]int
	leftCalls []bool
	rightCalls []bool
}

func (f *fakeDevice) Move(dx, dy int) error   { f.moves = append(f.moves, [2]int{dx, dy}); return nil }
func (f *fakeDevice) Scroll(dx, dy int) error { f.scrolls = append(f.scrolls, [2]int{dx, dy}); return nil }
func (f *fakeDevice) ButtonLeft(down bool) error {
	f.leftCalls = append(f.leftCalls, down)
	return nil
}
func (f *fakeDevice) ButtonRight(down bool) error {
	f.rightCalls = append(f.rightCalls, down)
	return nil
}

func moveEvent(dx, dy int) palmctl.InputEvent {
	return palmctl.InputEvent{Type: palmctl.EventMove, Move: &palmctl.MovePayload{DX: dx, DY: dy}}
}

func buttonEvent(name palmctl.ButtonName, action palmctl.ButtonAction) palmctl.InputEvent {
	return palmctl.InputEvent{Type: palmctl.EventButton, Button: &palmctl.ButtonPayload{Name: name, Action: action}}
}

func TestApply_Move(t *testing.T) {
	assert := assert.New(t)

	dev := &fakeDevice{}
	var leftDown bool
	var lastAt time.Time

	assert.NoError(Apply(dev, &leftDown, &lastAt, moveEvent(3, -4)))
	assert.Equal([][2]int{{3, -4}}, dev.moves)
}

func TestApply_LeftDownDedup(t *testing.T) {
	assert := assert.New(t)

	dev := &fakeDevice{}
	var leftDown bool
	var lastAt time.Time

	assert.NoError(Apply(dev, &leftDown, &lastAt, buttonEvent(palmctl.ButtonLeft, palmctl.ActionDown)))
	assert.NoError(Apply(dev, &leftDown, &lastAt, buttonEvent(palmctl.ButtonLeft, palmctl.ActionDown)))

	assert.Equal([]bool{true}, dev.leftCalls)
}

func TestApply_LeftUpIgnoredWithoutDown(t *testing.T) {
	assert := assert.New(t)

	dev := &fakeDevice{}
	var leftDown bool
	var lastAt time.Time

	assert.NoError(Apply(dev, &leftDown, &lastAt, buttonEvent(palmctl.ButtonLeft, palmctl.ActionUp)))
	assert.Empty(dev.leftCalls)
}

func TestApply_LeftUpEnforcesMinPressDuration(t *testing.T) {
	assert := assert.New(t)

	dev := &fakeDevice{}
	var leftDown bool
	var lastAt time.Time

	assert.NoError(Apply(dev, &leftDown, &lastAt, buttonEvent(palmctl.ButtonLeft, palmctl.ActionDown)))

	start := time.Now()
	assert.NoError(Apply(dev, &leftDown, &lastAt, buttonEvent(palmctl.ButtonLeft, palmctl.ActionUp)))
	elapsed := time.Since(start)

	assert.GreaterOrEqual(elapsed, MinPressDuration-time.Millisecond)
	assert.Equal([]bool{true, false}, dev.leftCalls)
}

func TestApply_RightButtonBypassesLeftBookkeeping(t *testing.T) {
	assert := assert.New(t)

	dev := &fakeDevice{}
	var leftDown bool
	var lastAt time.Time

	assert.NoError(Apply(dev, &leftDown, &lastAt, buttonEvent(palmctl.ButtonRight, palmctl.ActionDown)))
	assert.NoError(Apply(dev, &leftDown, &lastAt, buttonEvent(palmctl.ButtonRight, palmctl.ActionUp)))

	assert.Equal([]bool{true, false}, dev.rightCalls)
	assert.False(leftDown)
}

func TestApply_ModeEventIsIgnored(t *testing.T) {
	assert := assert.New(t)

	dev := &fakeDevice{}
	var leftDown bool
	var lastAt time.Time

	ev := palmctl.InputEvent{Type: palmctl.EventMode, Mode: &palmctl.ModePayload{State: palmctl.ModeIdle}}
	assert.NoError(Apply(dev, &leftDown, &lastAt, ev))
	assert.Empty(dev.moves)
	assert.Empty(dev.leftCalls)
	assert.Empty(dev.rightCalls)
}

func TestLogging_WritesEachEventKind(t *testing.T) {
	assert := assert.New(t)

	var sb strings.Builder
	l := NewLogging(&sb)

	assert.NoError(l.Move(1, 2))
	assert.NoError(l.Scroll(0, -1))
	assert.NoError(l.ButtonLeft(true))
	assert.NoError(l.ButtonRight(false))

	assert.Contains(sb.String(), "move")
	assert.Contains(sb.String(), "scroll")
	assert.Contains(sb.String(), "left")
	assert.Contains(sb.String(), "right")
}
