package collectable

import (
	"hash"
	"unsafe"

	"github.com/amp-labs/floatord/compare"
	"github.com/amp-labs/floatord/floatkey"
	"github.com/amp-labs/floatord/hashing"
)

// Collectable is an interface that combines the Hashable and
// Comparable interfaces. This is useful for objects that need
// to be stored in a Map or Set, where uniqueness is determined by
// the hashing value, and collisions are resolved by comparing
// the objects.
type Collectable[T any] interface {
	hashing.Hashable
	compare.Comparable[T]
}

// floatWrapper wraps a raw float and implements Collectable[F] with the
// total equality of floatkey: NaN equals an identical NaN and -0 differs from +0.
type floatWrapper[F floatkey.Float] struct {
	value F
}

// UpdateHash implements hashing.Hashable by writing the width-sized ordering key.
func (w *floatWrapper[F]) UpdateHash(h hash.Hash) error {
	k := floatkey.Of(w.value)

	if unsafe.Sizeof(w.value) == 4 { //nolint:gosec
		return hashing.HashableUint32(uint32(k)).UpdateHash(h) //nolint:gosec
	}

	return hashing.HashableUint64(k).UpdateHash(h)
}

// Equals implements compare.Comparable[F] by comparing ordering keys.
func (w *floatWrapper[F]) Equals(other F) bool {
	return floatkey.Of(w.value) == floatkey.Of(other)
}

// FromFloat creates a Collectable[F] from a raw float. Unlike the == operator,
// the result treats a NaN as equal to the same NaN, and -0 as different from +0,
// so it behaves like sortable.Float32 or sortable.Float64 in hashed collections.
func FromFloat[F floatkey.Float](value F) Collectable[F] {
	return &floatWrapper[F]{value: value}
}
