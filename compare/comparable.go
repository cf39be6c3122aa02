// Package compare provides equality and ordering contracts for types whose
// built-in operators don't give the semantics callers need.
package compare

// Comparable is a generic interface for types that can compare themselves for equality.
// Types implementing this interface must provide their own Equals method that determines
// whether two values are equal according to the type's semantics.
type Comparable[T any] interface {
	Equals(other T) bool
}

// Equals compares two values using the Comparable interface.
// It delegates to the Equals method of the first argument.
func Equals[T any](a Comparable[T], b T) bool {
	return a.Equals(b)
}

// Ordered is implemented by types with a total three-way comparison.
// Compare returns a negative number when the receiver sorts before other,
// zero when they are equal and a positive number when it sorts after.
// Unlike the built-in operators on floats, Compare never reports
// "unordered": every pair of values has exactly one of the three outcomes.
type Ordered[T any] interface {
	Compare(other T) int
}

// Compare is the function form of Ordered.Compare, suitable for slices.SortFunc.
func Compare[T Ordered[T]](a, b T) int {
	return a.Compare(b)
}

// Less reports whether a sorts strictly before b.
func Less[T Ordered[T]](a, b T) bool {
	return a.Compare(b) < 0
}

// Min returns the smallest of the given values. Ties keep the first one.
func Min[T Ordered[T]](first T, rest ...T) T {
	least := first

	for _, v := range rest {
		if v.Compare(least) < 0 {
			least = v
		}
	}

	return least
}

// Max returns the largest of the given values. Ties keep the first one.
func Max[T Ordered[T]](first T, rest ...T) T {
	greatest := first

	for _, v := range rest {
		if v.Compare(greatest) > 0 {
			greatest = v
		}
	}

	return greatest
}
