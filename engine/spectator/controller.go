package spectator

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-spectator/engine/input"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/sirupsen/logrus"
)

// Default controller settings.
const (
	DefaultLookSpeed        float32 = 0.005
	DefaultMoveSpeed        float32 = 50
	DefaultFriction         float32 = 0.9
	DefaultSprintMultiplier float32 = 2
)

// lookOrder composes yaw before pitch so the two can be driven independently.
const lookOrder = mgl32.YXZ

// Camera is the part of a camera the controller drives. engine/camera.Camera satisfies it.
type Camera interface {
	// Rotation returns the Euler angles in radians about the X, Y and Z axes.
	Rotation() (x, y, z float32)

	// SetRotation sets the Euler angles in radians about the X, Y and Z axes.
	SetRotation(x, y, z float32)

	// RotationOrder returns the axis composition order of the Euler angles.
	RotationOrder() mgl32.RotationOrder

	// SetRotationOrder changes the composition order, preserving the orientation.
	SetRotationOrder(order mgl32.RotationOrder)

	// TranslateX moves the camera along its local right axis.
	TranslateX(distance float32)

	// TranslateY moves the camera along its local up axis.
	TranslateY(distance float32)

	// TranslateZ moves the camera along its local Z axis (forward is -Z).
	TranslateZ(distance float32)
}

// settings holds the tuning values fixed at construction.
type settings struct {
	lookSpeed        float32
	moveSpeed        float32
	friction         float32
	sprintMultiplier float32
}

type spectatorControllerImpl struct {
	mu *sync.Mutex

	camera Camera
	source input.Source
	logger *logrus.Logger

	settings   settings
	input      *inputAccumulator
	integrator *motionIntegrator

	enabled       bool
	subscription  input.Subscription
	previousOrder mgl32.RotationOrder
}

// SpectatorController drives a camera from keyboard and pointer input in free-fly fashion.
// Held movement keys push the camera along its local axes, the velocity carries over between
// ticks and decays by friction, and pointer motion turns the camera with pitch clamped to
// straight up and down. While disabled the controller ignores input but lets any remaining
// velocity coast to a stop.
type SpectatorController interface {
	// Enable subscribes to the input source and switches the camera to yaw-then-pitch rotation order.
	// Calling Enable on an enabled controller does nothing.
	Enable()

	// Disable unsubscribes from the input source, clears held actions and pending look input and
	// restores the camera's previous rotation order. Velocity is kept so the camera coasts to rest.
	// Calling Disable on a disabled controller does nothing.
	Disable()

	// IsEnabled reports whether the controller is enabled.
	//
	// Returns:
	//   - bool: true if enabled
	IsEnabled() bool

	// Update advances the controller by one tick. While enabled it applies look input and held
	// actions; while disabled it only decays the remaining velocity.
	//
	// Parameters:
	//   - delta: time scale of the tick (seconds or frame fraction)
	Update(delta float32)

	// Step advances the controller by one tick of length 1. Equivalent to Update(1).
	Step()

	// MapKey binds a key code to an action, replacing any existing binding for that code.
	// The zero Action unbinds the key. Keys that are currently held keep the action they were
	// pressed under until released.
	//
	// Parameters:
	//   - code: the virtual key code
	//   - action: the action to bind
	MapKey(code uint32, action Action)

	// Dispose releases the input subscription. Equivalent to Disable.
	Dispose()

	// Velocity returns the camera-local velocity carried into the next tick.
	//
	// Returns:
	//   - mgl32.Vec3: x lateral, y vertical, z forward/back
	Velocity() mgl32.Vec3

	// Pressed returns the set of actions whose keys are currently held.
	//
	// Returns:
	//   - Action: the live action mask
	Pressed() Action

	// KeyMapping returns a copy of the current key bindings.
	//
	// Returns:
	//   - KeyMapping: the bindings
	KeyMapping() KeyMapping

	// LookSpeed returns the angular gain applied to pointer motion.
	LookSpeed() float32

	// MoveSpeed returns the base movement speed, which also caps the velocity length.
	MoveSpeed() float32

	// Friction returns the per-tick velocity decay factor.
	Friction() float32

	// SprintMultiplier returns the factor applied to injected speed while sprinting.
	SprintMultiplier() float32

	// Camera returns the controlled camera.
	Camera() Camera
}

var _ SpectatorController = &spectatorControllerImpl{}

// NewSpectatorController creates a disabled controller for the given camera.
// Unset options fall back to the Default* constants and DefaultKeyMapping.
// Without WithInputSource the controller only moves through Update and never receives events.
//
// Parameters:
//   - cam: the camera to drive
//   - options: functional options to configure the controller
//
// Returns:
//   - SpectatorController: the newly created controller
func NewSpectatorController(cam Camera, options ...ControllerOption) SpectatorController {
	sc := &spectatorControllerImpl{
		mu:     &sync.Mutex{},
		camera: cam,
		logger: logrus.StandardLogger(),
		settings: settings{
			lookSpeed:        DefaultLookSpeed,
			moveSpeed:        DefaultMoveSpeed,
			friction:         DefaultFriction,
			sprintMultiplier: DefaultSprintMultiplier,
		},
		input:      newInputAccumulator(DefaultKeyMapping()),
		integrator: &motionIntegrator{},
	}
	for _, option := range options {
		option(sc)
	}
	return sc
}

func (sc *spectatorControllerImpl) Enable() {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	if sc.enabled {
		return
	}

	if sc.source != nil {
		sc.subscription = sc.source.Subscribe(input.Handler{
			OnKeyDown:       sc.handleKeyDown,
			OnKeyUp:         sc.handleKeyUp,
			OnPointerMotion: sc.handlePointerMotion,
		})
	}
	sc.previousOrder = sc.camera.RotationOrder()
	sc.camera.SetRotationOrder(lookOrder)
	sc.enabled = true
	sc.logger.Debug("spectator controller enabled")
}

func (sc *spectatorControllerImpl) Disable() {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	if !sc.enabled {
		return
	}

	if sc.source != nil {
		sc.source.Unsubscribe(sc.subscription)
		sc.subscription = 0
	}
	sc.enabled = false
	sc.input.reset()
	sc.integrator.prevPress = 0
	sc.camera.SetRotationOrder(sc.previousOrder)
	sc.logger.WithField("velocity", sc.integrator.velocity).Debug("spectator controller disabled")
}

func (sc *spectatorControllerImpl) IsEnabled() bool {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.enabled
}

func (sc *spectatorControllerImpl) Update(delta float32) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	if !sc.enabled {
		sc.integrator.coast(sc.camera, &sc.settings)
		return
	}
	lookX, lookY := sc.input.consumeLook()
	sc.integrator.step(sc.camera, &sc.settings, sc.input.press, lookX, lookY, delta)
}

func (sc *spectatorControllerImpl) Step() {
	sc.Update(1)
}

func (sc *spectatorControllerImpl) MapKey(code uint32, action Action) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.input.remapKey(code, action)
	sc.logger.WithFields(logrus.Fields{"key": code, "action": action}).Debug("spectator key mapped")
}

func (sc *spectatorControllerImpl) Dispose() {
	sc.Disable()
}

func (sc *spectatorControllerImpl) Velocity() mgl32.Vec3 {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.integrator.velocity
}

func (sc *spectatorControllerImpl) Pressed() Action {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.input.press
}

func (sc *spectatorControllerImpl) KeyMapping() KeyMapping {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.input.keyMapping.Clone()
}

func (sc *spectatorControllerImpl) LookSpeed() float32 {
	return sc.settings.lookSpeed
}

func (sc *spectatorControllerImpl) MoveSpeed() float32 {
	return sc.settings.moveSpeed
}

func (sc *spectatorControllerImpl) Friction() float32 {
	return sc.settings.friction
}

func (sc *spectatorControllerImpl) SprintMultiplier() float32 {
	return sc.settings.sprintMultiplier
}

func (sc *spectatorControllerImpl) Camera() Camera {
	return sc.camera
}

// --- input source handlers ---

// Events delivered after Disable (from a dispatch already in flight) are dropped.

func (sc *spectatorControllerImpl) handleKeyDown(code uint32) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	if !sc.enabled {
		return
	}
	sc.input.recordKey(code, true)
}

func (sc *spectatorControllerImpl) handleKeyUp(code uint32) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	if !sc.enabled {
		return
	}
	sc.input.recordKey(code, false)
}

func (sc *spectatorControllerImpl) handlePointerMotion(dx, dy float32) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	if !sc.enabled {
		return
	}
	sc.input.recordPointerMotion(dx, dy)
}
