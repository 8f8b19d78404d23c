package spectator

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-spectator/common"
	"github.com/Carmen-Shannon/oxy-spectator/engine/camera"
	"github.com/Carmen-Shannon/oxy-spectator/engine/input"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-3

// recordingCamera logs every translation so tests can check call order and totals.
type recordingCamera struct {
	rot   mgl32.Vec3
	order mgl32.RotationOrder
	calls []string
	moved mgl32.Vec3
}

func (c *recordingCamera) Rotation() (x, y, z float32)            { return c.rot[0], c.rot[1], c.rot[2] }
func (c *recordingCamera) SetRotation(x, y, z float32)            { c.rot = mgl32.Vec3{x, y, z} }
func (c *recordingCamera) RotationOrder() mgl32.RotationOrder     { return c.order }
func (c *recordingCamera) SetRotationOrder(o mgl32.RotationOrder) { c.order = o }

func (c *recordingCamera) TranslateX(d float32) {
	c.calls = append(c.calls, "x")
	c.moved[0] += d
}

func (c *recordingCamera) TranslateY(d float32) {
	c.calls = append(c.calls, "y")
	c.moved[1] += d
}

func (c *recordingCamera) TranslateZ(d float32) {
	c.calls = append(c.calls, "z")
	c.moved[2] += d
}

func newTestController(t *testing.T, cam Camera, options ...ControllerOption) (SpectatorController, *input.Dispatcher) {
	t.Helper()
	d := input.NewDispatcher()
	sc := NewSpectatorController(cam, append([]ControllerOption{WithInputSource(d)}, options...)...)
	sc.Enable()
	require.True(t, sc.IsEnabled())
	return sc, d
}

func TestNewSpectatorControllerDefaults(t *testing.T) {
	sc := NewSpectatorController(camera.NewCamera())
	assert.False(t, sc.IsEnabled())
	assert.Equal(t, DefaultLookSpeed, sc.LookSpeed())
	assert.Equal(t, DefaultMoveSpeed, sc.MoveSpeed())
	assert.Equal(t, DefaultFriction, sc.Friction())
	assert.Equal(t, DefaultSprintMultiplier, sc.SprintMultiplier())
	assert.Equal(t, DefaultKeyMapping(), sc.KeyMapping())
	assert.Equal(t, mgl32.Vec3{}, sc.Velocity())
}

func TestWithKeyMappingMergesOverDefaults(t *testing.T) {
	sc := NewSpectatorController(camera.NewCamera(),
		WithKeyMapping(KeyMapping{common.KeyUp: ActionForward, common.KeyC: 0}),
		WithMoveSpeed(10),
	)
	km := sc.KeyMapping()
	assert.Equal(t, ActionForward, km[common.KeyUp])
	assert.Equal(t, ActionForward, km[common.KeyW])
	assert.NotContains(t, km, uint32(common.KeyC))
	assert.Equal(t, float32(10), sc.MoveSpeed())

	km[common.KeyW] = ActionBack
	assert.Equal(t, ActionForward, sc.KeyMapping()[common.KeyW], "KeyMapping must return a copy")
}

func TestUnmappedKeysLeaveMaskUnchanged(t *testing.T) {
	sc, d := newTestController(t, camera.NewCamera())
	d.KeyDown(common.KeyW)
	require.Equal(t, ActionForward, sc.Pressed())

	for _, code := range []uint32{0, common.KeyQ, common.KeyEsc, 9999} {
		d.KeyDown(code)
		d.KeyUp(code)
		assert.Equal(t, ActionForward, sc.Pressed(), "code %d", code)
	}
}

func TestPressReleaseClearsBit(t *testing.T) {
	sc, d := newTestController(t, camera.NewCamera())
	for i := 0; i < 3; i++ {
		d.KeyDown(common.KeyD)
	}
	assert.True(t, sc.Pressed().Has(ActionRight))
	for i := 0; i < 3; i++ {
		d.KeyUp(common.KeyD)
	}
	assert.Equal(t, Action(0), sc.Pressed())
}

func TestForwardTickVelocity(t *testing.T) {
	cam := camera.NewCamera()
	sc, d := newTestController(t, cam)
	d.KeyDown(common.KeyW)
	sc.Update(1)

	v := sc.Velocity()
	assert.InDelta(t, 0, v.X(), tolerance)
	assert.InDelta(t, 0, v.Y(), tolerance)
	assert.InDelta(t, -45, v.Z(), tolerance)

	x, y, z := cam.Position()
	assert.InDelta(t, 0, x, tolerance)
	assert.InDelta(t, 0, y, tolerance)
	assert.InDelta(t, -45, z, tolerance)
}

func TestStepIsUnitUpdate(t *testing.T) {
	a, da := newTestController(t, camera.NewCamera())
	b, db := newTestController(t, camera.NewCamera())
	da.KeyDown(common.KeyA)
	db.KeyDown(common.KeyA)

	a.Step()
	b.Update(1)
	assert.Equal(t, b.Velocity(), a.Velocity())
}

func TestReleasedKeysDecayGeometrically(t *testing.T) {
	sc, d := newTestController(t, camera.NewCamera())
	d.KeyDown(common.KeyW)
	sc.Update(1)
	d.KeyUp(common.KeyW)

	want := float32(45)
	for i := 0; i < 10; i++ {
		sc.Update(1)
		want *= 0.9
		assert.InDelta(t, want, sc.Velocity().Len(), tolerance, "tick %d", i)
		assert.True(t, sc.Velocity().Len() > 0)
	}
}

func TestSprintIsClampedToMoveSpeed(t *testing.T) {
	sc, d := newTestController(t, camera.NewCamera())
	d.KeyDown(common.KeyLeftShift)
	d.KeyDown(common.KeyW)

	for i := 0; i < 5; i++ {
		sc.Update(1)
		assert.InDelta(t, -50, sc.Velocity().Z(), tolerance)
		assert.LessOrEqual(t, sc.Velocity().Len(), sc.MoveSpeed()+tolerance)
	}
}

func TestSprintBelowClampScalesInjection(t *testing.T) {
	sc, d := newTestController(t, camera.NewCamera())
	d.KeyDown(common.KeyRightShift)
	d.KeyDown(common.KeyS)

	sc.Update(0.25) // 0.25*50*2*0.9 = 22.5
	assert.InDelta(t, 22.5, sc.Velocity().Z(), tolerance)
}

func TestAxesCarryOverAndClamp(t *testing.T) {
	sc, d := newTestController(t, camera.NewCamera())
	d.KeyDown(common.KeyW)
	sc.Update(1)
	d.KeyUp(common.KeyW)
	d.KeyDown(common.KeyD)
	sc.Update(1)

	// (50, 0, -45) * 0.9 = (45, 0, -40.5), then clamped to length 50.
	v := sc.Velocity()
	assert.InDelta(t, 50, v.Len(), tolerance)
	assert.InDelta(t, 45.0/-40.5, v.X()/v.Z(), tolerance)
	assert.InDelta(t, 0, v.Y(), tolerance)
}

func TestOpposingActionsLaterWins(t *testing.T) {
	cases := []struct {
		name string
		keys []uint32
		axis int
		want float32
	}{
		{"forward_back", []uint32{common.KeyW, common.KeyS}, 2, 45},
		{"left_right", []uint32{common.KeyD, common.KeyA}, 0, 45},
		{"up_down", []uint32{common.KeySpace, common.KeyC}, 1, -45},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			sc, d := newTestController(t, camera.NewCamera())
			for _, k := range c.keys {
				d.KeyDown(k)
			}
			sc.Update(1)
			assert.InDelta(t, c.want, sc.Velocity()[c.axis], tolerance)
		})
	}
}

func TestTranslationOrderIsZXY(t *testing.T) {
	cam := &recordingCamera{order: mgl32.XYZ}
	sc, d := newTestController(t, cam)
	d.KeyDown(common.KeyW)
	d.KeyDown(common.KeyD)
	d.KeyDown(common.KeySpace)
	sc.Update(1)

	assert.Equal(t, []string{"z", "x", "y"}, cam.calls)
	assert.InDelta(t, sc.Velocity().Z(), cam.moved.Z(), tolerance)
}

func TestPitchIsClamped(t *testing.T) {
	cam := camera.NewCamera()
	sc, d := newTestController(t, cam)

	d.PointerMotion(0, 1e6)
	sc.Update(1)
	pitch, _, _ := cam.Rotation()
	assert.InDelta(t, -common.HalfPi, pitch, tolerance)

	for i := 0; i < 5; i++ {
		d.PointerMotion(0, -1e9)
		sc.Update(1)
		pitch, _, _ = cam.Rotation()
		assert.LessOrEqual(t, pitch, common.HalfPi)
		assert.GreaterOrEqual(t, pitch, -common.HalfPi)
	}
	assert.InDelta(t, common.HalfPi, pitch, tolerance)
}

func TestYawIsFreeAndScaled(t *testing.T) {
	cam := &recordingCamera{order: mgl32.XYZ}
	sc, d := newTestController(t, cam)

	d.PointerMotion(10, 0)
	sc.Update(1) // 20 * 10 * (1 * 0.005) = 1 radian
	assert.InDelta(t, -1, cam.rot.Y(), tolerance)

	for i := 0; i < 10; i++ {
		d.PointerMotion(10, 0)
		sc.Update(1)
	}
	assert.InDelta(t, -11, cam.rot.Y(), tolerance)
}

func TestLookDeltaOverwritesAndIsConsumedOnce(t *testing.T) {
	cam := &recordingCamera{order: mgl32.XYZ}
	sc, d := newTestController(t, cam)

	d.PointerMotion(100, 0)
	d.PointerMotion(2, 0)
	sc.Update(1)
	assert.InDelta(t, -0.2, cam.rot.Y(), tolerance, "only the latest event counts")

	sc.Update(1)
	assert.InDelta(t, -0.2, cam.rot.Y(), tolerance, "look delta is reset after a tick")
}

func TestEnableSwitchesAndDisableRestoresRotationOrder(t *testing.T) {
	cam := camera.NewCamera(camera.WithRotationOrder(mgl32.ZXY), camera.WithRotation(0.1, 0.2, 0))
	sc := NewSpectatorController(cam)

	sc.Enable()
	assert.Equal(t, mgl32.YXZ, cam.RotationOrder())
	sc.Disable()
	assert.Equal(t, mgl32.ZXY, cam.RotationOrder())
	x, y, _ := cam.Rotation()
	assert.InDelta(t, 0.1, x, tolerance)
	assert.InDelta(t, 0.2, y, tolerance)
}

func TestEnableIsGuardedAgainstDoubleSubscription(t *testing.T) {
	d := input.NewDispatcher()
	sc := NewSpectatorController(camera.NewCamera(), WithInputSource(d))

	sc.Enable()
	sc.Enable()
	assert.Equal(t, 1, d.Len())

	sc.Disable()
	sc.Disable()
	sc.Dispose()
	assert.Equal(t, 0, d.Len())
	assert.False(t, sc.IsEnabled())
}

func TestDisableEnablePreservesVelocity(t *testing.T) {
	cam := &recordingCamera{order: mgl32.XYZ}
	sc, d := newTestController(t, cam)
	d.KeyDown(common.KeyW)
	d.KeyDown(common.KeyLeftShift)
	d.PointerMotion(5, 5)
	sc.Update(1)
	d.PointerMotion(7, 7)
	before := sc.Velocity()

	sc.Disable()
	sc.Enable()
	assert.Equal(t, Action(0), sc.Pressed())
	assert.Equal(t, before, sc.Velocity())

	rot := cam.rot
	sc.Update(1)
	assert.Equal(t, rot, cam.rot, "pending look delta must be cleared by Disable")
	assert.InDelta(t, before.Len()*0.9, sc.Velocity().Len(), tolerance)
}

func TestDisabledControllerCoastsToRest(t *testing.T) {
	cam := &recordingCamera{order: mgl32.XYZ}
	sc, d := newTestController(t, cam, WithFriction(0.4))
	d.KeyDown(common.KeyW)
	sc.Update(1)
	sc.Dispose()

	d.KeyDown(common.KeyS)
	d.PointerMotion(50, 50)
	assert.Equal(t, Action(0), sc.Pressed(), "input is ignored while disabled")

	sc.Update(1)
	assert.InDelta(t, -8, sc.Velocity().Z(), tolerance)
	assert.Equal(t, mgl32.Vec3{}, cam.rot)

	ticks := 0
	for sc.Velocity().Len() > 0 && ticks < 5000 {
		sc.Update(1)
		ticks++
	}
	require.Less(t, ticks, 5000, "velocity never reached zero magnitude")

	calls := len(cam.calls)
	sc.Update(1)
	sc.Update(1)
	assert.Equal(t, calls, len(cam.calls), "no work once at rest")
}

func TestMapKeyKeepsHeldBits(t *testing.T) {
	sc, d := newTestController(t, camera.NewCamera())
	d.KeyDown(common.KeyW)

	sc.MapKey(common.KeyW, ActionBack)
	assert.Equal(t, ActionForward, sc.Pressed())
	assert.Equal(t, ActionBack, sc.KeyMapping()[common.KeyW])

	d.KeyUp(common.KeyW)
	assert.Equal(t, Action(0), sc.Pressed())

	d.KeyDown(common.KeyW)
	assert.Equal(t, ActionBack, sc.Pressed())
}

func TestMapKeyHeldBitSurvivesAutoRepeat(t *testing.T) {
	sc, d := newTestController(t, camera.NewCamera())
	d.KeyDown(common.KeyW)
	sc.MapKey(common.KeyW, ActionBack)

	for i := 0; i < 3; i++ {
		d.KeyDown(common.KeyW)
		assert.Equal(t, ActionForward, sc.Pressed(), "repeat %d", i)
	}

	d.KeyUp(common.KeyW)
	assert.Equal(t, Action(0), sc.Pressed())
}

func TestMapKeyZeroUnbinds(t *testing.T) {
	sc, d := newTestController(t, camera.NewCamera())
	sc.MapKey(common.KeySpace, 0)
	d.KeyDown(common.KeySpace)
	assert.Equal(t, Action(0), sc.Pressed())
	assert.NotContains(t, sc.KeyMapping(), uint32(common.KeySpace))
}

func TestFrictionAboveOneIsAccepted(t *testing.T) {
	sc, d := newTestController(t, camera.NewCamera(), WithFriction(1.5), WithMoveSpeed(10))
	d.KeyDown(common.KeyW)
	sc.Update(0.1)
	d.KeyUp(common.KeyW)
	for i := 0; i < 20; i++ {
		sc.Update(1)
	}
	assert.InDelta(t, 10, sc.Velocity().Len(), tolerance, "velocity grows until the clamp")
}
