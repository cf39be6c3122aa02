// Package floatkey maps IEEE-754 floats onto unsigned integers whose natural
// order is a total order over every bit pattern of the float:
//
//	-NaN < -Inf < x<0 < -0 < +0 < x>0 < +Inf < +NaN
//
// Negative NaNs (any payload) sort first, positive NaNs (any payload) sort last,
// and -0 sorts immediately before +0. The mapping is a bijection, so a key can
// always be turned back into the exact bit pattern it came from.
package floatkey

import (
	"encoding/binary"
	"fmt"
	"math"
	"unsafe"

	"github.com/amp-labs/floatord/errors"
)

const (
	// SignBit32 is the sign bit of a float32 bit pattern.
	SignBit32 uint32 = 1 << 31

	// SignBit64 is the sign bit of a float64 bit pattern.
	SignBit64 uint64 = 1 << 63
)

// Float is a constraint that permits any floating-point type.
type Float interface {
	~float32 | ~float64
}

// Float32 returns the ordering key of f.
//
// Non-negative patterns get their sign bit set, which lifts them above every
// negative pattern. Negative patterns are complemented, which both clears the
// sign bit and reverses their magnitude order.
func Float32(f float32) uint32 {
	u := math.Float32bits(f)
	if u&SignBit32 == 0 {
		return u | SignBit32
	}

	return ^u
}

// Float64 returns the ordering key of f. See Float32.
func Float64(f float64) uint64 {
	u := math.Float64bits(f)
	if u&SignBit64 == 0 {
		return u | SignBit64
	}

	return ^u
}

// Of returns the ordering key of f for either float width. A float32-width
// value yields its 32-bit key zero-extended, so keys returned by Of are only
// comparable among values of the same width.
func Of[F Float](f F) uint64 {
	if unsafe.Sizeof(f) == 4 { //nolint:gosec
		return uint64(Float32(float32(f)))
	}

	return Float64(float64(f))
}

// ToFloat32 returns the float whose key is k. It is the inverse of Float32.
func ToFloat32(k uint32) float32 {
	if k&SignBit32 != 0 {
		return math.Float32frombits(k &^ SignBit32)
	}

	return math.Float32frombits(^k)
}

// ToFloat64 returns the float whose key is k. It is the inverse of Float64.
func ToFloat64(k uint64) float64 {
	if k&SignBit64 != 0 {
		return math.Float64frombits(k &^ SignBit64)
	}

	return math.Float64frombits(^k)
}

// AppendFloat32 appends the big-endian key of f to b. Encodings compare
// with bytes.Compare in the same order as the floats they encode.
func AppendFloat32(b []byte, f float32) []byte {
	return binary.BigEndian.AppendUint32(b, Float32(f))
}

// AppendFloat64 appends the big-endian key of f to b. See AppendFloat32.
func AppendFloat64(b []byte, f float64) []byte {
	return binary.BigEndian.AppendUint64(b, Float64(f))
}

// DecodeFloat32 decodes a float written by AppendFloat32 from the front of b
// and returns it with the remaining bytes.
func DecodeFloat32(b []byte) (float32, []byte, error) {
	if len(b) < 4 { //nolint:mnd
		return 0, b, fmt.Errorf("%w: need 4 bytes, have %d", errors.ErrShortBuffer, len(b))
	}

	return ToFloat32(binary.BigEndian.Uint32(b)), b[4:], nil
}

// DecodeFloat64 decodes a float written by AppendFloat64 from the front of b
// and returns it with the remaining bytes.
func DecodeFloat64(b []byte) (float64, []byte, error) {
	if len(b) < 8 { //nolint:mnd
		return 0, b, fmt.Errorf("%w: need 8 bytes, have %d", errors.ErrShortBuffer, len(b))
	}

	return ToFloat64(binary.BigEndian.Uint64(b)), b[8:], nil
}
