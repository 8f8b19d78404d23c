package camera

import (
	"math"
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

type cameraImpl struct {
	mu *sync.Mutex

	position mgl32.Vec3
	rotation mgl32.Vec3 // X, Y, Z angles in radians, composed per order
	order    mgl32.RotationOrder

	fov    float32
	aspect float32
	near   float32
	far    float32
}

// Camera defines the interface for a free-fly camera.
// The camera owns its world-space position and an Euler orientation whose composition
// order can be changed at runtime without changing where the camera looks. Translation
// happens along the camera's own local axes, which makes it suitable for spectator and
// editor style controls.
type Camera interface {
	// Position returns the camera's world-space position.
	//
	// Returns:
	//   - x, y, z: world-space camera position
	Position() (x, y, z float32)

	// SetPosition sets the camera's world-space position directly.
	//
	// Parameters:
	//   - x, y, z: world-space coordinates
	SetPosition(x, y, z float32)

	// Rotation returns the Euler angles in radians about the X, Y and Z axes.
	// The angles are interpreted according to RotationOrder.
	//
	// Returns:
	//   - x, y, z: rotation about each axis in radians
	Rotation() (x, y, z float32)

	// SetRotation sets the Euler angles in radians, interpreted according to RotationOrder.
	//
	// Parameters:
	//   - x, y, z: rotation about each axis in radians
	SetRotation(x, y, z float32)

	// RotationOrder returns the axis composition order used for the Euler angles.
	//
	// Returns:
	//   - mgl32.RotationOrder: the current order
	RotationOrder() mgl32.RotationOrder

	// SetRotationOrder changes the axis composition order and re-derives the Euler angles
	// so the orientation is preserved. Only the six Tait-Bryan orders are supported;
	// other orders are ignored.
	//
	// Parameters:
	//   - order: the new rotation order
	SetRotationOrder(order mgl32.RotationOrder)

	// Quaternion returns the camera's orientation as a unit quaternion.
	//
	// Returns:
	//   - mgl32.Quat: the orientation
	Quaternion() mgl32.Quat

	// TranslateX moves the camera along its local right axis.
	//
	// Parameters:
	//   - distance: signed distance in world units
	TranslateX(distance float32)

	// TranslateY moves the camera along its local up axis.
	//
	// Parameters:
	//   - distance: signed distance in world units
	TranslateY(distance float32)

	// TranslateZ moves the camera along its local Z axis. The camera looks down -Z,
	// so a negative distance moves it forward.
	//
	// Parameters:
	//   - distance: signed distance in world units
	TranslateZ(distance float32)

	// Fov returns the vertical field of view in radians.
	Fov() float32

	// Aspect returns the aspect ratio (width / height).
	Aspect() float32

	// Near returns the near clipping plane distance.
	Near() float32

	// Far returns the far clipping plane distance.
	Far() float32

	// SetFov sets the vertical field of view in radians.
	SetFov(fov float32)

	// SetAspect sets the aspect ratio (width / height).
	SetAspect(aspect float32)

	// SetNear sets the near clipping plane distance.
	SetNear(near float32)

	// SetFar sets the far clipping plane distance.
	SetFar(far float32)

	// ViewMatrix returns the world-to-view matrix derived from position and orientation.
	//
	// Returns:
	//   - mgl32.Mat4: the view matrix (column-major)
	ViewMatrix() mgl32.Mat4

	// ProjectionMatrix returns the perspective projection matrix.
	//
	// Returns:
	//   - mgl32.Mat4: the projection matrix (column-major)
	ProjectionMatrix() mgl32.Mat4

	// ViewProjectionMatrix returns ProjectionMatrix * ViewMatrix.
	//
	// Returns:
	//   - mgl32.Mat4: the combined matrix (column-major)
	ViewProjectionMatrix() mgl32.Mat4
}

var _ Camera = &cameraImpl{}

// NewCamera creates a new Camera at the origin looking down -Z with default perspective settings.
// The default rotation order is XYZ.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		mu:     &sync.Mutex{},
		order:  mgl32.XYZ,
		fov:    45.0 * (math.Pi / 180.0), // radians
		aspect: 1.0,
		near:   0.1,
		far:    100.0,
	}
	for _, option := range options {
		option(c)
	}
	return c
}

func (c *cameraImpl) Position() (x, y, z float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.position[0], c.position[1], c.position[2]
}

func (c *cameraImpl) SetPosition(x, y, z float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.position = mgl32.Vec3{x, y, z}
}

func (c *cameraImpl) Rotation() (x, y, z float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rotation[0], c.rotation[1], c.rotation[2]
}

func (c *cameraImpl) SetRotation(x, y, z float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rotation = mgl32.Vec3{x, y, z}
}

func (c *cameraImpl) RotationOrder() mgl32.RotationOrder {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order
}

func (c *cameraImpl) SetRotationOrder(order mgl32.RotationOrder) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := orderAxes(order); !ok || order == c.order {
		return
	}
	q := eulerToQuat(c.rotation, c.order)
	c.rotation = quatToEuler(q, order)
	c.order = order
}

func (c *cameraImpl) Quaternion() mgl32.Quat {
	c.mu.Lock()
	defer c.mu.Unlock()
	return eulerToQuat(c.rotation, c.order)
}

func (c *cameraImpl) TranslateX(distance float32) {
	c.translateOnAxis(unitAxes[0], distance)
}

func (c *cameraImpl) TranslateY(distance float32) {
	c.translateOnAxis(unitAxes[1], distance)
}

func (c *cameraImpl) TranslateZ(distance float32) {
	c.translateOnAxis(unitAxes[2], distance)
}

func (c *cameraImpl) Fov() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fov
}

func (c *cameraImpl) Aspect() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.aspect
}

func (c *cameraImpl) Near() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.near
}

func (c *cameraImpl) Far() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.far
}

func (c *cameraImpl) SetFov(fov float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fov = fov
}

func (c *cameraImpl) SetAspect(aspect float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.aspect = aspect
}

func (c *cameraImpl) SetNear(near float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.near = near
}

func (c *cameraImpl) SetFar(far float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.far = far
}

func (c *cameraImpl) ViewMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewMatrix()
}

func (c *cameraImpl) ProjectionMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return mgl32.Perspective(c.fov, c.aspect, c.near, c.far)
}

func (c *cameraImpl) ViewProjectionMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return mgl32.Perspective(c.fov, c.aspect, c.near, c.far).Mul4(c.viewMatrix())
}

// translateOnAxis moves the camera by distance along a local axis rotated into world space.
func (c *cameraImpl) translateOnAxis(axis mgl32.Vec3, distance float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	world := eulerToQuat(c.rotation, c.order).Rotate(axis)
	c.position = c.position.Add(world.Mul(distance))
}

// viewMatrix inverts the camera's world transform: R^T * T(-position).
// Caller must hold the mutex.
func (c *cameraImpl) viewMatrix() mgl32.Mat4 {
	q := eulerToQuat(c.rotation, c.order)
	t := mgl32.Translate3D(-c.position[0], -c.position[1], -c.position[2])
	return q.Conjugate().Mat4().Mul4(t)
}
