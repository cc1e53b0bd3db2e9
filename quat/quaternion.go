// =======================
// quat/quaternion.go
// =======================

package quat

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Eps is the tolerance below which a norm (or squared norm) is treated
// as zero.
const Eps = 1e-12

var (
	// ErrNotReal reports a scalar argument that is not a finite real
	// number (NaN or ±Inf).
	ErrNotReal = errors.New("not a finite real number")

	// ErrDegenerateQuaternion reports a Unit or Reciprocal request on a
	// quaternion whose norm is zero within Eps.
	ErrDegenerateQuaternion = errors.New("zero-norm quaternion")
)

// Quaternion is an element of the real algebra with basis {1, i, j, k},
// where i*i = j*j = k*k = -1, i*j = k, j*k = i and k*i = j. Any 4-tuple
// of finite components is a valid quaternion. The zero value is the zero
// quaternion. Copying is plain value assignment.
type Quaternion struct {
	o, i, j, k float64
}

// New builds a quaternion from the scalar component o and the vector
// components i, j, k. Non-finite components fail with ErrNotReal.
func New[T Real](o, i, j, k T) (Quaternion, error) {
	q := Quaternion{float64(o), float64(i), float64(j), float64(k)}
	if !IsReal(q.o) || !IsReal(q.i) || !IsReal(q.j) || !IsReal(q.k) {
		return Quaternion{}, fmt.Errorf("quaternion components: %w", ErrNotReal)
	}
	return q, nil
}

// O returns the scalar component.
func (q Quaternion) O() float64 { return q.o }

// I returns the i component.
func (q Quaternion) I() float64 { return q.i }

// J returns the j component.
func (q Quaternion) J() float64 { return q.j }

// K returns the k component.
func (q Quaternion) K() float64 { return q.k }

// SetO assigns the scalar component. The quaternion is left untouched on
// a non-finite argument.
func (q *Quaternion) SetO(o float64) error {
	if !IsReal(o) {
		return fmt.Errorf("scalar component: %w", ErrNotReal)
	}
	q.o = o
	return nil
}

// SetI assigns the i component.
func (q *Quaternion) SetI(i float64) error {
	if !IsReal(i) {
		return fmt.Errorf("i component: %w", ErrNotReal)
	}
	q.i = i
	return nil
}

// SetJ assigns the j component.
func (q *Quaternion) SetJ(j float64) error {
	if !IsReal(j) {
		return fmt.Errorf("j component: %w", ErrNotReal)
	}
	q.j = j
	return nil
}

// SetK assigns the k component.
func (q *Quaternion) SetK(k float64) error {
	if !IsReal(k) {
		return fmt.Errorf("k component: %w", ErrNotReal)
	}
	q.k = k
	return nil
}

// Set assigns all four components at once. Nothing is assigned unless
// all components are finite.
func (q *Quaternion) Set(o, i, j, k float64) error {
	if !IsReal(o) || !IsReal(i) || !IsReal(j) || !IsReal(k) {
		return fmt.Errorf("quaternion components: %w", ErrNotReal)
	}
	q.o, q.i, q.j, q.k = o, i, j, k
	return nil
}

// Add returns the componentwise sum q + r.
func (q Quaternion) Add(r Quaternion) Quaternion {
	return Quaternion{q.o + r.o, q.i + r.i, q.j + r.j, q.k + r.k}
}

// AddScalar returns q with s added to the scalar component only.
func (q Quaternion) AddScalar(s float64) Quaternion {
	return Quaternion{q.o + s, q.i, q.j, q.k}
}

// Sub returns the componentwise difference q - r.
func (q Quaternion) Sub(r Quaternion) Quaternion {
	return Quaternion{q.o - r.o, q.i - r.i, q.j - r.j, q.k - r.k}
}

// SubScalar returns q with s subtracted from the scalar component only.
// There is no mirrored scalar-minus-quaternion form.
func (q Quaternion) SubScalar(s float64) Quaternion {
	return Quaternion{q.o - s, q.i, q.j, q.k}
}

// Mul returns the Hamilton product q * r. The product is not
// commutative; operand order matters.
func (q Quaternion) Mul(r Quaternion) Quaternion {
	return Quaternion{
		o: q.o*r.o - q.i*r.i - q.j*r.j - q.k*r.k,
		i: q.o*r.i + q.i*r.o + q.j*r.k - q.k*r.j,
		j: q.o*r.j - q.i*r.k + q.j*r.o + q.k*r.i,
		k: q.o*r.k + q.i*r.j - q.j*r.i + q.k*r.o,
	}
}

// MulScalar returns q with all four components scaled by s.
func (q Quaternion) MulScalar(s float64) Quaternion {
	return Quaternion{q.o * s, q.i * s, q.j * s, q.k * s}
}

// Neg returns q with all four components negated.
func (q Quaternion) Neg() Quaternion {
	return Quaternion{-q.o, -q.i, -q.j, -q.k}
}

// Conj returns the conjugate of q: the scalar component unchanged, the
// vector components negated.
func (q Quaternion) Conj() Quaternion {
	return Quaternion{q.o, -q.i, -q.j, -q.k}
}

// SetAdd adds r to q in place and returns q for chaining.
func (q *Quaternion) SetAdd(r Quaternion) *Quaternion {
	q.o += r.o
	q.i += r.i
	q.j += r.j
	q.k += r.k
	return q
}

// SetAddScalar adds s to the scalar component in place.
func (q *Quaternion) SetAddScalar(s float64) *Quaternion {
	q.o += s
	return q
}

// SetSub subtracts r from q in place and returns q for chaining.
func (q *Quaternion) SetSub(r Quaternion) *Quaternion {
	q.o -= r.o
	q.i -= r.i
	q.j -= r.j
	q.k -= r.k
	return q
}

// SetSubScalar subtracts s from the scalar component in place.
func (q *Quaternion) SetSubScalar(s float64) *Quaternion {
	q.o -= s
	return q
}

// SetMul replaces q with the Hamilton product q * r and returns q.
func (q *Quaternion) SetMul(r Quaternion) *Quaternion {
	*q = q.Mul(r)
	return q
}

// SetMulScalar scales all four components by s in place.
func (q *Quaternion) SetMulScalar(s float64) *Quaternion {
	q.o *= s
	q.i *= s
	q.j *= s
	q.k *= s
	return q
}

func (q Quaternion) sqSum() float64 {
	return q.o*q.o + q.i*q.i + q.j*q.j + q.k*q.k
}

// Norm is the Euclidean norm over all four components.
func (q Quaternion) Norm() float64 {
	return math.Sqrt(q.sqSum())
}

// Reciprocal returns q^(-1), satisfying q * q^(-1) = q^(-1) * q = 1.
// A quaternion with squared norm below Eps fails with
// ErrDegenerateQuaternion.
func (q Quaternion) Reciprocal() (Quaternion, error) {
	nsq := q.sqSum()
	if nsq < Eps {
		return Quaternion{}, fmt.Errorf("reciprocal: %w", ErrDegenerateQuaternion)
	}
	return Quaternion{q.o / nsq, -q.i / nsq, -q.j / nsq, -q.k / nsq}, nil
}

// Unit returns q scaled to norm 1, preserving direction. A quaternion
// with norm below Eps fails with ErrDegenerateQuaternion.
func (q Quaternion) Unit() (Quaternion, error) {
	n := q.Norm()
	if n < Eps {
		return Quaternion{}, fmt.Errorf("unit: %w", ErrDegenerateQuaternion)
	}
	return Quaternion{q.o / n, q.i / n, q.j / n, q.k / n}, nil
}

// String renders the quaternion like "4-5i+7j-3k", with each component
// in default float formatting.
func (q Quaternion) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%v", q.o)
	for _, part := range []struct {
		v   float64
		sym byte
	}{{q.i, 'i'}, {q.j, 'j'}, {q.k, 'k'}} {
		if part.v >= 0 {
			b.WriteByte('+')
		}
		fmt.Fprintf(&b, "%v%c", part.v, part.sym)
	}
	return b.String()
}
