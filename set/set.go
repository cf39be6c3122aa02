package set

import (
	"errors"
	"iter"
	"slices"

	"github.com/amp-labs/floatord/collectable"
	"github.com/amp-labs/floatord/compare"
	"github.com/amp-labs/floatord/hashing"
	"github.com/amp-labs/floatord/sortable"
)

// ErrHashCollision is returned when a hashing collision is detected.
// Specifically this refers to two different (non-equal) objects
// that have the same hashing value.
var ErrHashCollision = errors.New("hashing collision")

// A Set is a collection of unique elements. Uniqueness is
// determined by the HashFunc provided when the Set is created,
// as well as how the object has implemented the Hashable and
// Comparable interfaces. If a collision is detected, an error
// is returned.
type Set[T collectable.Collectable[T]] interface {
	// AddAll adds multiple elements to the set. Returns an error if any element
	// causes a hash collision or if hashing fails.
	AddAll(elements ...T) error

	// Add adds a single element to the set. Returns an error if the element
	// causes a hash collision or if hashing fails. If the element already exists
	// in the set, no error is returned.
	Add(element T) error

	// Remove removes an element from the set. Returns an error if hashing fails.
	// If the element is not in the set, no error is returned.
	Remove(element T) error

	// Clear removes all elements from the set.
	Clear()

	// Contains checks if an element exists in the set. Returns true if the element
	// exists, false otherwise. Returns an error if hashing fails or a collision is detected.
	Contains(element T) (bool, error)

	// Size returns the number of elements in the set.
	Size() int

	// Entries returns all elements in the set as a slice. The order is not guaranteed.
	Entries() []T

	// Seq returns an iterator over the elements. The order is not guaranteed.
	Seq() iter.Seq[T]

	// Union returns a new set containing all elements from both sets. Returns an error
	// if any element causes a hash collision or if hashing fails.
	Union(other Set[T]) (Set[T], error)

	// Intersection returns a new set containing only elements present in both sets.
	// Returns an error if any element causes a hash collision or if hashing fails.
	Intersection(other Set[T]) (Set[T], error)

	// HashFunction returns the hash function used by the set.
	HashFunction() hashing.HashFunc
}

type setImpl[T collectable.Collectable[T]] struct {
	hash     hashing.HashFunc
	elements map[string]T
}

// NewSet creates a new Set with the provided hash function.
// The hash function is used to determine uniqueness of elements.
func NewSet[T collectable.Collectable[T]](hash hashing.HashFunc) Set[T] {
	return &setImpl[T]{
		hash:     hash,
		elements: make(map[string]T),
	}
}

func (s *setImpl[T]) AddAll(element ...T) error {
	for _, elem := range element {
		if err := s.Add(elem); err != nil {
			return err
		}
	}

	return nil
}

func (s *setImpl[T]) Add(element T) error {
	hashVal, err := s.hash(element)
	if err != nil {
		return err
	}

	prev, ok := s.elements[hashVal]
	if ok {
		if compare.Equals(prev, element) {
			return nil
		}

		return ErrHashCollision
	}

	s.elements[hashVal] = element

	return nil
}

func (s *setImpl[T]) Clear() {
	s.elements = make(map[string]T)
}

func (s *setImpl[T]) Remove(element T) error {
	hashVal, err := s.hash(element)
	if err != nil {
		return err
	}

	prev, ok := s.elements[hashVal]
	if ok && compare.Equals(prev, element) {
		delete(s.elements, hashVal)
	}

	return nil
}

func (s *setImpl[T]) Contains(element T) (bool, error) {
	hashVal, err := s.hash(element)
	if err != nil {
		return false, err
	}

	prev, ok := s.elements[hashVal]
	if ok {
		if compare.Equals(prev, element) {
			return true, nil
		}

		return true, ErrHashCollision
	}

	return false, nil
}

func (s *setImpl[T]) Size() int {
	return len(s.elements)
}

func (s *setImpl[T]) Entries() []T {
	items := make([]T, 0, len(s.elements))
	for _, item := range s.elements {
		items = append(items, item)
	}

	return items
}

func (s *setImpl[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range s.elements {
			if !yield(item) {
				return
			}
		}
	}
}

func (s *setImpl[T]) Union(other Set[T]) (Set[T], error) {
	ns := NewSet[T](s.hash)

	if err := ns.AddAll(s.Entries()...); err != nil {
		return nil, err
	}

	if err := ns.AddAll(other.Entries()...); err != nil {
		return nil, err
	}

	return ns, nil
}

func (s *setImpl[T]) Intersection(other Set[T]) (Set[T], error) {
	ns := NewSet[T](s.hash)

	for _, item := range s.Entries() {
		if contains, err := other.Contains(item); err != nil {
			return nil, err
		} else if contains {
			if err := ns.Add(item); err != nil {
				return nil, err
			}
		}
	}

	return ns, nil
}

func (s *setImpl[T]) HashFunction() hashing.HashFunc {
	return s.hash
}

// SortedEntries returns the elements of a hash set in ascending order.
// For sortable.Float32 and sortable.Float64 this is the total float order,
// with -0 before +0 and NaNs at the ends according to their sign.
func SortedEntries[T interface {
	collectable.Collectable[T]
	sortable.Sortable[T]
}](s Set[T],
) []T {
	items := s.Entries()

	slices.SortFunc(items, func(a, b T) int {
		switch {
		case a.LessThan(b):
			return -1
		case b.LessThan(a):
			return 1
		default:
			return 0
		}
	})

	return items
}
