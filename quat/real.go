// =======================
// quat/real.go
// =======================

package quat

import "math"

// Real matches the scalar types accepted at construction boundaries.
// Integer arguments are converted to float64 internally.
type Real interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// IsReal reports whether v is usable as a real scalar, i.e. neither NaN
// nor infinite.
func IsReal(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
