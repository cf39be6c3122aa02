// Package sortable provides wrapper types that give floats a total order,
// total equality and a stable hash, enabling their use as keys in sorted and
// hashed data structures.
//
// # Overview
//
// IEEE-754 floats only have a partial order: NaN compares false against
// everything including itself, and -0 == +0. The [Float32] and [Float64]
// wrappers replace that with the total order
//
//	-NaN < -Inf < x<0 < -0 < +0 < x>0 < +Inf < +NaN
//
// computed from the bit pattern by [github.com/amp-labs/floatord/floatkey].
// Equality, ordering and hashing all agree with each other:
//   - Equals(a, b) implies identical hashes.
//   - -0 and +0 are distinct and hash differently.
//   - NaN with the same bit pattern is equal to itself; the sign of a NaN
//     decides whether it sorts first or last.
//   - NaN payloads are not canonicalised: same-sign NaNs with different
//     payloads are ordered against each other by payload.
//
// The wrappers implement [Sortable], [github.com/amp-labs/floatord/compare.Ordered]
// and [github.com/amp-labs/floatord/hashing.Hashable], so they satisfy
// [github.com/amp-labs/floatord/collectable.Collectable] too.
//
// # Usage
//
//	a := sortable.Float64(math.NaN())
//	b := sortable.Float64(math.Inf(1))
//	b.LessThan(a)          // true
//	a.Equals(a)            // true, unlike a == a
//	slices.SortFunc(vals, compare.Compare[sortable.Float64])
//
// Arithmetic methods (Add, Sub, Mul, Div, Rem and their *Float variants taking
// a raw scalar) forward to native float arithmetic and rewrap the result.
// To get a plain float back, call Value or convert: float64(f).
//
// # Thread Safety
//
// The wrapper types in this package are value types and are inherently thread-safe
// for read operations. However, collections using these types (like ordered sets)
// may not be thread-safe and require external synchronization for concurrent access.
package sortable
