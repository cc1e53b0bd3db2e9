// =======================
// quat/point3d.go
// =======================

package quat

import "fmt"

// Point3D holds a 3D coordinate, used either as a spatial point or as a
// displacement vector. Copying is plain value assignment.
type Point3D struct {
	x, y, z float64
}

// NewPoint3D builds a point from three scalar components. Non-finite
// components fail with ErrNotReal.
func NewPoint3D[T Real](x, y, z T) (Point3D, error) {
	p := Point3D{float64(x), float64(y), float64(z)}
	if !IsReal(p.x) || !IsReal(p.y) || !IsReal(p.z) {
		return Point3D{}, fmt.Errorf("point components: %w", ErrNotReal)
	}
	return p, nil
}

// X returns the x component.
func (p Point3D) X() float64 { return p.x }

// Y returns the y component.
func (p Point3D) Y() float64 { return p.y }

// Z returns the z component.
func (p Point3D) Z() float64 { return p.z }

// SetX assigns the x component. Other components are unchanged, and
// nothing changes on a non-finite argument.
func (p *Point3D) SetX(x float64) error {
	if !IsReal(x) {
		return fmt.Errorf("x component: %w", ErrNotReal)
	}
	p.x = x
	return nil
}

// SetY assigns the y component.
func (p *Point3D) SetY(y float64) error {
	if !IsReal(y) {
		return fmt.Errorf("y component: %w", ErrNotReal)
	}
	p.y = y
	return nil
}

// SetZ assigns the z component.
func (p *Point3D) SetZ(z float64) error {
	if !IsReal(z) {
		return fmt.Errorf("z component: %w", ErrNotReal)
	}
	p.z = z
	return nil
}

// Set assigns all three components at once. Nothing is assigned unless
// all components are finite.
func (p *Point3D) Set(x, y, z float64) error {
	if !IsReal(x) || !IsReal(y) || !IsReal(z) {
		return fmt.Errorf("point components: %w", ErrNotReal)
	}
	p.x, p.y, p.z = x, y, z
	return nil
}

// SqSum is the sum of the squared components, i.e. the squared length
// when the point is read as a vector.
func (p Point3D) SqSum() float64 {
	return p.x*p.x + p.y*p.y + p.z*p.z
}

// String renders the point like "( 1.3, -4.7, 2.89 )".
func (p Point3D) String() string {
	return fmt.Sprintf("( %v, %v, %v )", p.x, p.y, p.z)
}
