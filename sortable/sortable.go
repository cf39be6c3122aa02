package sortable

import (
	"github.com/amp-labs/floatord/compare"
)

// Sortable is implemented by types that can be kept in sorted collections.
// LessThan must be a strict weak order consistent with Equals.
type Sortable[T any] interface {
	compare.Comparable[T]

	LessThan(other T) bool
}
