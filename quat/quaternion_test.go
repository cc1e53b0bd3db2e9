// =======================
// quat/quaternion_test.go
// =======================

package quat

import (
	"errors"
	"math"
	"testing"

	gquat "gonum.org/v1/gonum/num/quat"
)

func qNear(a, b Quaternion, eps float64) bool {
	return math.Abs(a.o-b.o) <= eps &&
		math.Abs(a.i-b.i) <= eps &&
		math.Abs(a.j-b.j) <= eps &&
		math.Abs(a.k-b.k) <= eps
}

func TestNew(t *testing.T) {
	q, err := New(4.0, -5.0, 7.0, -3.0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if q.O() != 4 || q.I() != -5 || q.J() != 7 || q.K() != -3 {
		t.Fatalf("New got %v", q)
	}

	// Integer arguments satisfy the same constraint.
	qi, err := New(1, 2, 3, 4)
	if err != nil {
		t.Fatalf("New with ints: %v", err)
	}
	if qi.O() != 1 || qi.K() != 4 {
		t.Fatalf("New with ints got %v", qi)
	}
}

func TestNewRejectsNonFinite(t *testing.T) {
	var tests = []struct {
		name       string
		o, i, j, k float64
	}{
		{"nan scalar", math.NaN(), 0, 0, 0},
		{"nan vector", 0, 0, math.NaN(), 0},
		{"pos inf", 0, math.Inf(1), 0, 0},
		{"neg inf", 0, 0, 0, math.Inf(-1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.o, tt.i, tt.j, tt.k); !errors.Is(err, ErrNotReal) {
				t.Fatalf("got %v, want ErrNotReal", err)
			}
		})
	}
}

func TestSettersRejectNonReal(t *testing.T) {
	q := Quaternion{1, 2, 3, 4}
	set := []struct {
		name string
		call func(float64) error
	}{
		{"SetO", q.SetO},
		{"SetI", q.SetI},
		{"SetJ", q.SetJ},
		{"SetK", q.SetK},
	}
	for _, s := range set {
		for _, bad := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
			if err := s.call(bad); !errors.Is(err, ErrNotReal) {
				t.Fatalf("%s(%v): got %v, want ErrNotReal", s.name, bad, err)
			}
		}
	}
	if q != (Quaternion{1, 2, 3, 4}) {
		t.Fatalf("rejected setters mutated state: %v", q)
	}
	if err := q.Set(1, math.NaN(), 0, 0); !errors.Is(err, ErrNotReal) {
		t.Fatalf("Set: got %v, want ErrNotReal", err)
	}
	if q != (Quaternion{1, 2, 3, 4}) {
		t.Fatalf("rejected Set mutated state: %v", q)
	}
}

func TestSetters(t *testing.T) {
	var q Quaternion
	if err := q.SetO(4); err != nil {
		t.Fatal(err)
	}
	if err := q.SetI(-5); err != nil {
		t.Fatal(err)
	}
	if err := q.SetJ(7); err != nil {
		t.Fatal(err)
	}
	if err := q.SetK(-3); err != nil {
		t.Fatal(err)
	}
	if q != (Quaternion{4, -5, 7, -3}) {
		t.Fatalf("setters got %v", q)
	}
}

func TestAddSub(t *testing.T) {
	p := Quaternion{1, -2, 3, -4}
	q := Quaternion{0.5, 2, -1, 4}

	if got := p.Add(q); got != (Quaternion{1.5, 0, 2, 0}) {
		t.Fatalf("Add got %v", got)
	}
	if p.Add(q) != q.Add(p) {
		t.Fatal("addition is not commutative")
	}
	r := Quaternion{-3, 1, 1, 1}
	if p.Add(q).Add(r) != p.Add(q.Add(r)) {
		t.Fatal("addition is not associative")
	}
	if got := p.Sub(q); got != (Quaternion{0.5, -4, 4, -8}) {
		t.Fatalf("Sub got %v", got)
	}
	// Operands stay untouched.
	if p != (Quaternion{1, -2, 3, -4}) || q != (Quaternion{0.5, 2, -1, 4}) {
		t.Fatal("Add/Sub mutated an operand")
	}
}

func TestScalarForms(t *testing.T) {
	p := Quaternion{1, -2, 3, -4}
	if got := p.AddScalar(2.5); got != (Quaternion{3.5, -2, 3, -4}) {
		t.Fatalf("AddScalar got %v", got)
	}
	if got := p.SubScalar(2.5); got != (Quaternion{-1.5, -2, 3, -4}) {
		t.Fatalf("SubScalar got %v", got)
	}
	if got := p.MulScalar(2); got != (Quaternion{2, -4, 6, -8}) {
		t.Fatalf("MulScalar got %v", got)
	}
}

func TestHamiltonBasis(t *testing.T) {
	one := Quaternion{o: 1}
	i := Quaternion{i: 1}
	j := Quaternion{j: 1}
	k := Quaternion{k: 1}

	var tests = []struct {
		name string
		a, b Quaternion
		want Quaternion
	}{
		{"i*i", i, i, one.Neg()},
		{"j*j", j, j, one.Neg()},
		{"k*k", k, k, one.Neg()},
		{"i*j", i, j, k},
		{"j*i", j, i, k.Neg()},
		{"j*k", j, k, i},
		{"k*j", k, j, i.Neg()},
		{"k*i", k, i, j},
		{"i*k", i, k, j.Neg()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Mul(tt.b); got != tt.want {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMul(t *testing.T) {
	p := Quaternion{1, -2, 3, -4}
	q := Quaternion{0.5, 2, -1, 4}
	one := Quaternion{o: 1}

	if p.Mul(one) != p || one.Mul(p) != p {
		t.Fatal("1 is not the multiplicative identity")
	}
	if p.Mul(q) == q.Mul(p) {
		t.Fatal("expected non-commutative product for these operands")
	}
	r := Quaternion{-3, 1, 1, 1}
	if !qNear(p.Mul(q).Mul(r), p.Mul(q.Mul(r)), 1e-12) {
		t.Fatal("multiplication is not associative")
	}
}

func TestNegConj(t *testing.T) {
	p := Quaternion{1, -2, 3, -4}
	if got := p.Neg(); got != (Quaternion{-1, 2, -3, 4}) {
		t.Fatalf("Neg got %v", got)
	}
	if got := p.Conj(); got != (Quaternion{1, 2, -3, 4}) {
		t.Fatalf("Conj got %v", got)
	}
	if p.Conj().Conj() != p {
		t.Fatal("conj(conj(p)) != p")
	}
}

func TestNormReciprocalUnit(t *testing.T) {
	p := Quaternion{1, -2, 3, -4}
	if got, want := p.Norm(), math.Sqrt(30); math.Abs(got-want) > 1e-12 {
		t.Fatalf("Norm got %v, want %v", got, want)
	}

	rec, err := p.Reciprocal()
	if err != nil {
		t.Fatalf("Reciprocal: %v", err)
	}
	one := Quaternion{o: 1}
	if !qNear(p.Mul(rec), one, 1e-12) || !qNear(rec.Mul(p), one, 1e-12) {
		t.Fatalf("p*p^-1 got %v and %v", p.Mul(rec), rec.Mul(p))
	}

	u, err := p.Unit()
	if err != nil {
		t.Fatalf("Unit: %v", err)
	}
	if math.Abs(u.Norm()-1) > 1e-12 {
		t.Fatalf("unit norm got %v", u.Norm())
	}
	// Direction preserved.
	if !qNear(u.MulScalar(p.Norm()), p, 1e-12) {
		t.Fatalf("unit direction drifted: %v", u)
	}
}

func TestDegenerate(t *testing.T) {
	var zero Quaternion
	if _, err := zero.Reciprocal(); !errors.Is(err, ErrDegenerateQuaternion) {
		t.Fatalf("Reciprocal of zero: got %v", err)
	}
	if _, err := zero.Unit(); !errors.Is(err, ErrDegenerateQuaternion) {
		t.Fatalf("Unit of zero: got %v", err)
	}
	// Below Eps counts as zero too.
	tiny := Quaternion{o: 1e-13}
	if _, err := tiny.Reciprocal(); !errors.Is(err, ErrDegenerateQuaternion) {
		t.Fatalf("Reciprocal of tiny: got %v", err)
	}
}

func TestCompoundForms(t *testing.T) {
	p := Quaternion{1, -2, 3, -4}
	q := Quaternion{0.5, 2, -1, 4}

	a := p
	if got := a.SetAdd(q); got != &a || a != p.Add(q) {
		t.Fatalf("SetAdd got %v", a)
	}
	a = p
	if a.SetSub(q); a != p.Sub(q) {
		t.Fatalf("SetSub got %v", a)
	}
	a = p
	if a.SetMul(q); a != p.Mul(q) {
		t.Fatalf("SetMul got %v", a)
	}

	// Scalar compound add/sub touch the scalar component only.
	a = p
	a.SetAddScalar(3)
	if a != (Quaternion{4, -2, 3, -4}) {
		t.Fatalf("SetAddScalar got %v", a)
	}
	a.SetSubScalar(3)
	if a != p {
		t.Fatalf("SetSubScalar got %v", a)
	}

	// Chaining.
	a = p
	a.SetMulScalar(2).SetAddScalar(1)
	if a != p.MulScalar(2).AddScalar(1) {
		t.Fatalf("chained compound ops got %v", a)
	}
}

func TestString(t *testing.T) {
	var tests = []struct {
		q    Quaternion
		want string
	}{
		{Quaternion{4, -5, 7, -3}, "4-5i+7j-3k"},
		{Quaternion{}, "0+0i+0j+0k"},
		{Quaternion{1.5, 2, -0.5, 0}, "1.5+2i-0.5j+0k"},
		{Quaternion{-1, -1, -1, -1}, "-1-1i-1j-1k"},
	}
	for _, tt := range tests {
		if got := tt.q.String(); got != tt.want {
			t.Fatalf("String got %q, want %q", got, tt.want)
		}
	}
}

// Cross-check the Hamilton product and reciprocal against gonum's
// quaternion implementation.
func TestAlgebraAgainstGonum(t *testing.T) {
	toG := func(q Quaternion) gquat.Number {
		return gquat.Number{Real: q.o, Imag: q.i, Jmag: q.j, Kmag: q.k}
	}
	fromG := func(n gquat.Number) Quaternion {
		return Quaternion{n.Real, n.Imag, n.Jmag, n.Kmag}
	}

	pairs := [][2]Quaternion{
		{{1, -2, 3, -4}, {0.5, 2, -1, 4}},
		{{0, 1, 0, 0}, {0, 0, 1, 0}},
		{{2.25, -0.5, 0.125, 9}, {-3, 7, -11, 0.25}},
	}
	for _, pq := range pairs {
		p, q := pq[0], pq[1]
		if got, want := p.Mul(q), fromG(gquat.Mul(toG(p), toG(q))); !qNear(got, want, 1e-9) {
			t.Fatalf("Mul(%v, %v) got %v, want %v", p, q, got, want)
		}
		rec, err := p.Reciprocal()
		if err != nil {
			t.Fatalf("Reciprocal(%v): %v", p, err)
		}
		if want := fromG(gquat.Inv(toG(p))); !qNear(rec, want, 1e-9) {
			t.Fatalf("Reciprocal(%v) got %v, want %v", p, rec, want)
		}
	}
}
