package camera

import (
	"github.com/Carmen-Shannon/oxy-spectator/common"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// gimbalThreshold is the |sin| above which Euler extraction treats the middle axis as locked.
const gimbalThreshold = 0.9999999

var unitAxes = [3]mgl32.Vec3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

// orderAxes returns the axis indices (0=X, 1=Y, 2=Z) composed by a Tait-Bryan rotation order.
// Proper Euler orders (XYX, ZXZ, ...) are not supported and report false.
func orderAxes(order mgl32.RotationOrder) ([3]int, bool) {
	switch order {
	case mgl32.XYZ:
		return [3]int{0, 1, 2}, true
	case mgl32.XZY:
		return [3]int{0, 2, 1}, true
	case mgl32.YXZ:
		return [3]int{1, 0, 2}, true
	case mgl32.YZX:
		return [3]int{1, 2, 0}, true
	case mgl32.ZXY:
		return [3]int{2, 0, 1}, true
	case mgl32.ZYX:
		return [3]int{2, 1, 0}, true
	}
	return [3]int{}, false
}

// eulerToQuat composes intrinsic rotations about the axes named by order.
// angles holds the X, Y and Z angles in radians regardless of order.
func eulerToQuat(angles mgl32.Vec3, order mgl32.RotationOrder) mgl32.Quat {
	axes, ok := orderAxes(order)
	if !ok {
		axes, _ = orderAxes(mgl32.XYZ)
	}
	q := mgl32.QuatIdent()
	for _, a := range axes {
		q = q.Mul(mgl32.QuatRotate(angles[a], unitAxes[a]))
	}
	return q
}

// quatToEuler decomposes q into X, Y, Z angles for the given order, the inverse of eulerToQuat.
// When the middle axis is at ±90° the third axis angle is folded into the first.
func quatToEuler(q mgl32.Quat, order mgl32.RotationOrder) mgl32.Vec3 {
	m := q.Normalize().Mat4()
	m11, m12, m13 := m.At(0, 0), m.At(0, 1), m.At(0, 2)
	m21, m22, m23 := m.At(1, 0), m.At(1, 1), m.At(1, 2)
	m31, m32, m33 := m.At(2, 0), m.At(2, 1), m.At(2, 2)

	var x, y, z float32
	switch order {
	case mgl32.YXZ:
		x = math32.Asin(-clampUnit(m23))
		if math32.Abs(m23) < gimbalThreshold {
			y = math32.Atan2(m13, m33)
			z = math32.Atan2(m21, m22)
		} else {
			y = math32.Atan2(-m31, m11)
		}
	case mgl32.ZXY:
		x = math32.Asin(clampUnit(m32))
		if math32.Abs(m32) < gimbalThreshold {
			y = math32.Atan2(-m31, m33)
			z = math32.Atan2(-m12, m22)
		} else {
			z = math32.Atan2(m21, m11)
		}
	case mgl32.ZYX:
		y = math32.Asin(-clampUnit(m31))
		if math32.Abs(m31) < gimbalThreshold {
			x = math32.Atan2(m32, m33)
			z = math32.Atan2(m21, m11)
		} else {
			z = math32.Atan2(-m12, m22)
		}
	case mgl32.YZX:
		z = math32.Asin(clampUnit(m21))
		if math32.Abs(m21) < gimbalThreshold {
			x = math32.Atan2(-m23, m22)
			y = math32.Atan2(-m31, m11)
		} else {
			y = math32.Atan2(m13, m33)
		}
	case mgl32.XZY:
		z = math32.Asin(-clampUnit(m12))
		if math32.Abs(m12) < gimbalThreshold {
			x = math32.Atan2(m32, m22)
			y = math32.Atan2(m13, m11)
		} else {
			x = math32.Atan2(-m23, m33)
		}
	default: // XYZ
		y = math32.Asin(clampUnit(m13))
		if math32.Abs(m13) < gimbalThreshold {
			x = math32.Atan2(-m23, m33)
			z = math32.Atan2(-m12, m11)
		} else {
			x = math32.Atan2(m32, m22)
		}
	}
	return mgl32.Vec3{x, y, z}
}

func clampUnit(v float32) float32 {
	return common.Clamp(v, -1, 1)
}
