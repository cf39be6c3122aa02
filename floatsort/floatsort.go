// Package floatsort sorts float slices in place by the total order of floatkey:
//
//	-NaN < -Inf < x<0 < -0 < +0 < x>0 < +Inf < +NaN
//
// sort.Float64s places NaNs first regardless of sign and treats -0 and +0 as
// equal. The functions here never report two distinct bit patterns as equal,
// except for same-sign NaNs whose payloads match.
package floatsort

import (
	"cmp"
	"slices"

	"github.com/amp-labs/floatord/floatkey"
)

// Compare returns -1, 0 or +1 as a sorts before, equal to or after b.
// It can be passed directly to slices.SortFunc and friends.
func Compare[F floatkey.Float](a, b F) int {
	return cmp.Compare(floatkey.Of(a), floatkey.Of(b))
}

// Sort sorts s in place in ascending total order. It doesn't allocate.
func Sort[F floatkey.Float](s []F) {
	slices.SortFunc(s, Compare[F])
}

// Float32s sorts a slice of float32 in ascending total order.
func Float32s(s []float32) {
	Sort(s)
}

// Float64s sorts a slice of float64 in ascending total order.
func Float64s(s []float64) {
	Sort(s)
}

// IsSorted reports whether s is sorted in ascending total order.
func IsSorted[F floatkey.Float](s []F) bool {
	return slices.IsSortedFunc(s, Compare[F])
}

// Search finds x in a slice sorted by Sort. It returns the position where x
// is or would be inserted, and whether it was found.
func Search[F floatkey.Float](sorted []F, x F) (int, bool) {
	return slices.BinarySearchFunc(sorted, x, Compare[F])
}
