package camera

import "github.com/go-gl/mathgl/mgl32"

type CameraBuilderOption func(*cameraImpl)

// WithPosition sets the camera's initial world-space position.
//
// Parameters:
//   - x, y, z: world-space coordinates
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's position
func WithPosition(x, y, z float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.position = mgl32.Vec3{x, y, z}
	}
}

// WithRotation sets the camera's initial Euler angles in radians.
// The angles are interpreted in the order set by WithRotationOrder (XYZ by default).
//
// Parameters:
//   - x, y, z: rotation about each axis in radians
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's rotation
func WithRotation(x, y, z float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.rotation = mgl32.Vec3{x, y, z}
	}
}

// WithRotationOrder sets the axis composition order of the Euler angles.
// Unlike SetRotationOrder this does not re-derive the angles; unsupported orders are ignored.
//
// Parameters:
//   - order: one of the Tait-Bryan orders (XYZ, XZY, YXZ, YZX, ZXY, ZYX)
//
// Returns:
//   - CameraBuilderOption: a function that sets the rotation order
func WithRotationOrder(order mgl32.RotationOrder) CameraBuilderOption {
	return func(c *cameraImpl) {
		if _, ok := orderAxes(order); ok {
			c.order = order
		}
	}
}

// WithFov sets the camera's vertical field of view in radians.
//
// Parameters:
//   - fov: field of view in radians
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's field of view
func WithFov(fov float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.fov = fov
	}
}

// WithAspect sets the camera's aspect ratio (width / height).
//
// Parameters:
//   - aspect: the aspect ratio to set
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's aspect ratio
func WithAspect(aspect float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.aspect = aspect
	}
}

// WithNear sets the near clipping plane distance.
//
// Parameters:
//   - near: near plane distance
//
// Returns:
//   - CameraBuilderOption: a function that sets the near plane
func WithNear(near float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.near = near
	}
}

// WithFar sets the far clipping plane distance.
//
// Parameters:
//   - far: far plane distance
//
// Returns:
//   - CameraBuilderOption: functional option to set the far plane
func WithFar(far float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.far = far
	}
}
