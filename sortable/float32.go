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

// Float32 is the float32 counterpart of Float64, with the same total order,
// equality and hashing. Its hash writes a 4 byte key, so a Float32 and a
// Float64 holding the same number do not hash alike.
type Float32 float32

var (
	_ Sortable[Float32]        = Float32(0)
	_ compare.Ordered[Float32] = Float32(0)
	_ hashing.Hashable         = Float32(0)
)

func (f Float32) key() uint32 {
	return floatkey.Float32(float32(f))
}

func (f Float32) Equals(other Float32) bool {
	return f.key() == other.key()
}

func (f Float32) LessThan(other Float32) bool {
	return f.key() < other.key()
}

func (f Float32) Compare(other Float32) int {
	return cmp.Compare(f.key(), other.key())
}

func (f Float32) UpdateHash(h hash.Hash) error {
	return hashing.HashableUint32(f.key()).UpdateHash(h)
}

func (f Float32) Value() float32 {
	return float32(f)
}

// String formats f with strconv.FormatFloat. A NaN with the sign bit set
// prints as -NaN, since it sorts first rather than last.
func (f Float32) String() string {
	if math.IsNaN(float64(f)) && math.Float32bits(float32(f))&floatkey.SignBit32 != 0 {
		return "-NaN"
	}

	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}

// Add returns f + other.
func (f Float32) Add(other Float32) Float32 {
	return f + other
}

// Sub returns f - other.
func (f Float32) Sub(other Float32) Float32 {
	return f - other
}

// Mul returns f * other.
func (f Float32) Mul(other Float32) Float32 {
	return f * other
}

// Div returns f / other.
func (f Float32) Div(other Float32) Float32 {
	return f / other
}

// Rem returns the floating-point remainder of f / other. The remainder of two
// float32 values is exact in float32, so computing it in float64 loses nothing.
func (f Float32) Rem(other Float32) Float32 {
	return Float32(math.Mod(float64(f), float64(other)))
}

// AddFloat returns f + v.
func (f Float32) AddFloat(v float32) Float32 {
	return f.Add(Float32(v))
}

// SubFloat returns f - v.
func (f Float32) SubFloat(v float32) Float32 {
	return f.Sub(Float32(v))
}

// MulFloat returns f * v.
func (f Float32) MulFloat(v float32) Float32 {
	return f.Mul(Float32(v))
}

// DivFloat returns f / v.
func (f Float32) DivFloat(v float32) Float32 {
	return f.Div(Float32(v))
}

// RemFloat returns the floating-point remainder of f / v, as Rem.
func (f Float32) RemFloat(v float32) Float32 {
	return f.Rem(Float32(v))
}
