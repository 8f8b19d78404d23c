package spectator

import (
	"github.com/Carmen-Shannon/oxy-spectator/common"
	"github.com/go-gl/mathgl/mgl32"
)

// lookSensitivity scales pointer deltas into radians together with lookSpeed.
// It is an empirical constant that the default lookSpeed was tuned against.
const lookSensitivity = 20

// thrust describes which velocity axis a directional action drives and in which direction.
type thrust struct {
	action Action
	axis   int
	sign   float32
}

// thrusts are applied in order, so when opposing actions are both held the later one wins.
var thrusts = [...]thrust{
	{ActionForward, 2, -1},
	{ActionBack, 2, 1},
	{ActionLeft, 0, -1},
	{ActionRight, 0, 1},
	{ActionUp, 1, 1},
	{ActionDown, 1, -1},
}

// motionIntegrator owns the camera-local velocity and advances it one tick at a time.
type motionIntegrator struct {
	velocity  mgl32.Vec3
	prevPress Action
}

// step runs one active tick: look, thrust injection, friction, clamp and translation.
func (mi *motionIntegrator) step(cam Camera, s *settings, press Action, lookX, lookY, delta float32) {
	angularGain := delta * s.lookSpeed
	yawDelta := lookSensitivity * lookX * angularGain
	pitchDelta := lookSensitivity * lookY * angularGain

	pitch, yaw, roll := cam.Rotation()
	pitch = common.Clamp(pitch-pitchDelta, -common.HalfPi, common.HalfPi)
	yaw -= yawDelta
	cam.SetRotation(pitch, yaw, roll)

	speed := delta * s.moveSpeed
	if press.Has(ActionSprint) {
		speed *= s.sprintMultiplier
	}

	velocity := mi.velocity
	for _, t := range thrusts {
		if press.Has(t.action) {
			velocity[t.axis] = t.sign * speed
		}
	}

	mi.velocity = mi.move(cam, velocity, s)
	mi.prevPress = press
}

// coast runs one inactive tick: friction, clamp and translation of the persisted velocity
// until it has decayed to exactly zero.
func (mi *motionIntegrator) coast(cam Camera, s *settings) {
	if mi.velocity.Len() > 0 {
		mi.velocity = mi.move(cam, mi.velocity, s)
	}
}

// move damps velocity by friction, limits its length to the base move speed and translates
// the camera along its local Z, X and Y axes, in that order.
func (mi *motionIntegrator) move(cam Camera, velocity mgl32.Vec3, s *settings) mgl32.Vec3 {
	velocity = velocity.Mul(s.friction)
	if l := velocity.Len(); l > 0 {
		velocity = velocity.Mul(common.Clamp(l, 0, s.moveSpeed) / l)
	}

	cam.TranslateZ(velocity.Z())
	cam.TranslateX(velocity.X())
	cam.TranslateY(velocity.Y())
	return velocity
}
