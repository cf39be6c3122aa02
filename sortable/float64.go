package sortable

import (
	"cmp"
	"hash"
	"math"
	"strconv"

	"github.com/amp-labs/floatord/compare"
	"github.com/amp-labs/floatord/floatkey"
	"github.com/amp-labs/floatord/hashing"
)

// Float64 is a sortable wrapper type for the built-in float64 type.
// It gives float64 a total order, total equality and a stable hash:
//
//	-NaN < -Inf < x<0 < -0 < +0 < x>0 < +Inf < +NaN
//
// NaN equals NaN when the bit patterns match, -0 and +0 are different values,
// and every pair of values is ordered. This makes Float64 usable as a key in
// sorted and hashed collections, where raw float64 would break on NaN.
//
// The built-in == operator still uses IEEE-754 semantics on this type; use
// Equals and Compare for the total semantics.
//
// Example:
//
//	s := set.NewRedBlackTreeSet[sortable.Float64]()
//	_ = s.AddAll(sortable.Float64(math.NaN()), 1, sortable.Float64(math.Copysign(0, -1)), 0)
//	// Iterating yields: -0, 0, 1, NaN
type Float64 float64

// Compile-time checks that Float64 implements the ordering and hashing contracts.
var (
	_ Sortable[Float64]        = Float64(0)
	_ compare.Ordered[Float64] = Float64(0)
	_ hashing.Hashable         = Float64(0)
)

func (f Float64) key() uint64 {
	return floatkey.Float64(float64(f))
}

// Equals returns true if this Float64 and other occupy the same position in
// the total order. Same-sign NaNs are equal only when their payloads match.
func (f Float64) Equals(other Float64) bool {
	return f.key() == other.key()
}

// LessThan returns true if this Float64 sorts strictly before other.
func (f Float64) LessThan(other Float64) bool {
	return f.key() < other.key()
}

// Compare returns -1, 0 or +1 as this Float64 sorts before, equal to or after other.
func (f Float64) Compare(other Float64) int {
	return cmp.Compare(f.key(), other.key())
}

// UpdateHash writes the 8 byte ordering key into h. Values that are Equals
// write identical bytes.
func (f Float64) UpdateHash(h hash.Hash) error {
	return hashing.HashableUint64(f.key()).UpdateHash(h)
}

// Value returns the wrapped float64.
func (f Float64) Value() float64 {
	return float64(f)
}

// String formats f with strconv.FormatFloat. A NaN with the sign bit set
// prints as -NaN, since it sorts first rather than last.
func (f Float64) String() string {
	if math.IsNaN(float64(f)) && math.Signbit(float64(f)) {
		return "-NaN"
	}

	return strconv.FormatFloat(float64(f), 'g', -1, 64)
}

// Add returns f + other.
func (f Float64) Add(other Float64) Float64 {
	return f + other
}

// Sub returns f - other.
func (f Float64) Sub(other Float64) Float64 {
	return f - other
}

// Mul returns f * other.
func (f Float64) Mul(other Float64) Float64 {
	return f * other
}

// Div returns f / other.
func (f Float64) Div(other Float64) Float64 {
	return f / other
}

// Rem returns the floating-point remainder of f / other, as math.Mod.
func (f Float64) Rem(other Float64) Float64 {
	return Float64(math.Mod(float64(f), float64(other)))
}

// AddFloat returns f + v.
func (f Float64) AddFloat(v float64) Float64 {
	return f.Add(Float64(v))
}

// SubFloat returns f - v.
func (f Float64) SubFloat(v float64) Float64 {
	return f.Sub(Float64(v))
}

// MulFloat returns f * v.
func (f Float64) MulFloat(v float64) Float64 {
	return f.Mul(Float64(v))
}

// DivFloat returns f / v.
func (f Float64) DivFloat(v float64) Float64 {
	return f.Div(Float64(v))
}

// RemFloat returns the floating-point remainder of f / v, as Rem.
func (f Float64) RemFloat(v float64) Float64 {
	return f.Rem(Float64(v))
}
