package window

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-spectator/common"
	"github.com/stretchr/testify/assert"
)

func TestWindowBuilderOptions(t *testing.T) {
	w := &engineWindow{closeKey: common.KeyEsc}
	for _, opt := range []WindowBuilderOption{
		WithTitle("fly"),
		WithSize(800, 600),
		WithMinSize(100, 50),
		WithCloseKey(common.KeyQ),
		WithCursorCaptured(true),
	} {
		opt(w)
	}

	assert.Equal(t, "fly", w.title)
	assert.Equal(t, 800, w.width)
	assert.Equal(t, 600, w.height)
	assert.Equal(t, 100, w.minWidth)
	assert.Equal(t, 50, w.minHeight)
	assert.Equal(t, uint32(common.KeyQ), w.closeKey)
	assert.True(t, w.startCaptured)
	assert.False(t, w.captured, "capture happens once the platform window exists")
}

func TestDisabledCloseKeyForwardsEveryKey(t *testing.T) {
	var got []uint32
	w := &engineWindow{closeKey: 0}
	w.SetKeyDownCallback(func(k uint32) { got = append(got, k) })

	// With the close key disabled every key reaches the callback.
	w.keyDown(common.KeyEsc)
	w.keyDown(common.KeyW)
	assert.Equal(t, []uint32{common.KeyEsc, common.KeyW}, got)
}

func TestCursorMovedReportsDeltas(t *testing.T) {
	var dxs, dys []float32
	w := &engineWindow{}
	w.SetMouseMoveCallback(func(dx, dy float32) {
		dxs = append(dxs, dx)
		dys = append(dys, dy)
	})

	w.cursorMoved(10, 10)
	w.cursorMoved(13, 8)
	assert.Equal(t, []float32{3}, dxs)
	assert.Equal(t, []float32{-2}, dys)

	w.SetCursorCaptured(true) // no platform window: ignored
	assert.False(t, w.CursorCaptured())
}
