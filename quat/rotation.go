// =======================
// quat/rotation.go
// =======================

package quat

import (
	"errors"
	"fmt"
	"math"
)

// ErrDegenerateRotation reports a rotation axis that reduces to the zero
// vector and therefore cannot be normalized. It always wraps the
// underlying ErrDegenerateQuaternion.
var ErrDegenerateRotation = errors.New("zero-vector rotation axis")

// Rotation is a rotation about an axis through the origin, applied with
// the quaternion sandwich product q * p * conj(q). The stored axis is
// kept unit length and the rotation quaternion
//
//	q = cos(theta/2) + sin(theta/2) * axis
//
// is rederived on every mutation, so it is never stale.
type Rotation struct {
	axis  Point3D
	theta float64
	q     Quaternion
}

// NewRotation builds a rotation about the axis (x, y, z) by angle
// radians. The angle is validated first, the axis second. The axis is
// normalized to unit length; a zero axis fails with
// ErrDegenerateRotation. Any finite angle is accepted and used as-is.
func NewRotation(x, y, z, angle float64) (*Rotation, error) {
	if !IsReal(angle) {
		return nil, fmt.Errorf("angle: %w", ErrNotReal)
	}
	r := &Rotation{theta: angle}
	if err := r.SetAxis(x, y, z); err != nil {
		return nil, err
	}
	return r, nil
}

// NewRotationAxis builds a rotation from an axis point and an angle in
// radians.
func NewRotationAxis(axis Point3D, angle float64) (*Rotation, error) {
	return NewRotation(axis.x, axis.y, axis.z, angle)
}

// SetAxis replaces the rotation axis, leaving the angle untouched. The
// rotation is unchanged if the new axis is rejected.
func (r *Rotation) SetAxis(x, y, z float64) error {
	p, err := NewPoint3D(x, y, z)
	if err != nil {
		return fmt.Errorf("axis: %w", err)
	}
	return r.update(p, r.theta)
}

// SetAxisPoint replaces the rotation axis with the given point.
func (r *Rotation) SetAxisPoint(axis Point3D) error {
	return r.update(axis, r.theta)
}

// SetAngle replaces the rotation angle, in radians. The axis is left
// untouched.
func (r *Rotation) SetAngle(angle float64) error {
	if !IsReal(angle) {
		return fmt.Errorf("angle: %w", ErrNotReal)
	}
	return r.update(r.axis, angle)
}

// update derives the unit axis and rotation quaternion from the given
// axis and angle, committing all state in one step. A failed derivation
// leaves the previous state intact.
func (r *Rotation) update(axis Point3D, theta float64) error {
	u, err := (Quaternion{i: axis.x, j: axis.y, k: axis.z}).Unit()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDegenerateRotation, err)
	}
	r.axis = Point3D{u.i, u.j, u.k}
	r.theta = theta
	r.q = u.MulScalar(math.Sin(0.5 * theta)).AddScalar(math.Cos(0.5 * theta))
	return nil
}

// Axis returns the unit rotation axis.
func (r *Rotation) Axis() Point3D {
	return r.axis
}

// AxisScaled returns the unit rotation axis scaled by factor.
func (r *Rotation) AxisScaled(factor float64) Point3D {
	return Point3D{r.axis.x * factor, r.axis.y * factor, r.axis.z * factor}
}

// Angle returns the rotation angle in radians.
func (r *Rotation) Angle() float64 {
	return r.theta
}

// Quaternion returns the unit rotation quaternion.
func (r *Rotation) Quaternion() Quaternion {
	return r.q
}

// Rotate rotates p about the origin by the configured axis and angle,
// following the right-hand rule. Translation is the caller's concern.
func (r *Rotation) Rotate(p Point3D) Point3D {
	pq := Quaternion{i: p.x, j: p.y, k: p.z}
	out := r.q.Mul(pq).Mul(r.q.Conj())
	return Point3D{out.i, out.j, out.k}
}

// DegToRad converts an angle in degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// RadToDeg converts an angle in radians to degrees.
func RadToDeg(rad float64) float64 {
	return rad * 180.0 / math.Pi
}
