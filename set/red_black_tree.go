package set

import (
	"iter"

	"github.com/amp-labs/floatord/sortable"
)

// OrderedSet is a set whose elements are kept in ascending order by LessThan.
// Uniqueness follows the ordering: two elements are the same when Equals
// reports true, so no hash function is involved.
type OrderedSet[K sortable.Sortable[K]] interface {
	// AddAll adds multiple elements to the set.
	AddAll(elements ...K) error

	// Add adds a single element. Adding an element that is already present is a no-op.
	Add(element K) error

	// Remove removes an element. Removing a missing element is a no-op.
	Remove(element K) error

	// Clear removes all elements from the set.
	Clear()

	// Contains checks if an element exists in the set.
	Contains(element K) (bool, error)

	// Size returns the number of elements in the set.
	Size() int

	// Entries returns all elements in ascending order.
	Entries() []K

	// Seq returns an iterator over the elements in ascending order.
	Seq() iter.Seq[K]

	// Min returns the smallest element, or false if the set is empty.
	Min() (K, bool)

	// Max returns the largest element, or false if the set is empty.
	Max() (K, bool)

	// Range returns an iterator over the elements e with lo <= e < hi, in ascending order.
	Range(lo, hi K) iter.Seq[K]

	// Union returns a new set containing all elements from both sets.
	Union(other OrderedSet[K]) (OrderedSet[K], error)

	// Intersection returns a new set containing only elements present in both sets.
	Intersection(other OrderedSet[K]) (OrderedSet[K], error)
}

// color represents the color of a node in the red-black tree.
// Nil children count as black.
type color bool

const (
	black, red color = true, false
)

func (c color) String() string {
	if c == black {
		return "Black"
	}

	return "Red"
}

type rbtNode[K sortable.Sortable[K]] struct {
	key    K
	color  color
	left   *rbtNode[K]
	right  *rbtNode[K]
	parent *rbtNode[K]
}

// redBlackTreeSet is an OrderedSet backed by a red-black tree.
//
// The tree keeps these properties after every Add and Remove:
//  1. Every node is either red or black.
//  2. The root is black.
//  3. A red node has no red child.
//  4. Every path from a node down to a nil child passes the same number of black nodes.
//
// Together they bound the height by 2*log2(n+1), so Add, Remove and Contains
// are O(log n). The algorithms follow "Introduction to Algorithms" (CLRS),
// chapter 13. It is not safe for concurrent use.
type redBlackTreeSet[K sortable.Sortable[K]] struct {
	root *rbtNode[K]
	size int
}

// NewRedBlackTreeSet creates a new empty red-black tree set.
//
// With sortable.Float64 elements the set holds -0 and +0 as two entries,
// collapses repeated identical NaNs into one, and iterates
// -NaN, -Inf, negatives, -0, +0, positives, +Inf, +NaN.
func NewRedBlackTreeSet[K sortable.Sortable[K]]() OrderedSet[K] {
	return &redBlackTreeSet[K]{}
}

func (r *redBlackTreeSet[K]) AddAll(elements ...K) error {
	for _, element := range elements {
		if err := r.Add(element); err != nil {
			return err
		}
	}

	return nil
}

func (r *redBlackTreeSet[K]) Add(element K) error {
	var parent *rbtNode[K]

	this := r.root
	for this != nil {
		parent = this

		switch {
		case element.Equals(this.key):
			return nil
		case element.LessThan(this.key):
			this = this.left
		default:
			this = this.right
		}
	}

	node := &rbtNode[K]{key: element, color: red, parent: parent}

	switch {
	case parent == nil:
		r.root = node
	case element.LessThan(parent.key):
		parent.left = node
	default:
		parent.right = node
	}

	r.size++
	r.fixupPut(node)

	return nil
}

// Remove deletes element following CLRS: z is the node holding the element,
// y is the node actually unlinked (z itself or its successor) and x takes
// y's place. If y was black, fixupDelete restores the black height.
// x may be nil, so its parent is tracked separately.
func (r *redBlackTreeSet[K]) Remove(element K) error {
	z := r.getNode(element) //nolint:varnamelen // CLRS names
	if z == nil {
		return nil
	}

	y := z //nolint:varnamelen // CLRS names
	yOriginalColor := y.color

	var x, xParent *rbtNode[K] //nolint:varnamelen // CLRS names

	switch {
	case z.left == nil:
		x, xParent = z.right, z.parent
		r.transplant(z, z.right)
	case z.right == nil:
		x, xParent = z.left, z.parent
		r.transplant(z, z.left)
	default:
		y = minimum(z.right)
		yOriginalColor = y.color
		x = y.right

		if y.parent == z {
			xParent = y
		} else {
			xParent = y.parent
			r.transplant(y, y.right)
			y.right = z.right
			y.right.parent = y
		}

		r.transplant(z, y)

		y.left = z.left
		y.left.parent = y
		y.color = z.color
	}

	r.size--

	if yOriginalColor == black {
		r.fixupDelete(x, xParent)
	}

	return nil
}

func (r *redBlackTreeSet[K]) Clear() {
	r.root = nil
	r.size = 0
}

func (r *redBlackTreeSet[K]) Contains(element K) (bool, error) {
	return r.getNode(element) != nil, nil
}

func (r *redBlackTreeSet[K]) Size() int {
	return r.size
}

func (r *redBlackTreeSet[K]) Entries() []K {
	entries := make([]K, 0, r.size)

	for k := range r.Seq() {
		entries = append(entries, k)
	}

	return entries
}

func (r *redBlackTreeSet[K]) Seq() iter.Seq[K] {
	return func(yield func(K) bool) {
		walk(r.root, yield)
	}
}

func (r *redBlackTreeSet[K]) Min() (K, bool) {
	if r.root == nil {
		var zero K

		return zero, false
	}

	return minimum(r.root).key, true
}

func (r *redBlackTreeSet[K]) Max() (K, bool) {
	if r.root == nil {
		var zero K

		return zero, false
	}

	node := r.root
	for node.right != nil {
		node = node.right
	}

	return node.key, true
}

func (r *redBlackTreeSet[K]) Range(lo, hi K) iter.Seq[K] {
	return func(yield func(K) bool) {
		walkRange(r.root, lo, hi, yield)
	}
}

func (r *redBlackTreeSet[K]) Union(other OrderedSet[K]) (OrderedSet[K], error) {
	out := NewRedBlackTreeSet[K]()

	if err := out.AddAll(r.Entries()...); err != nil {
		return nil, err
	}

	if err := out.AddAll(other.Entries()...); err != nil {
		return nil, err
	}

	return out, nil
}

func (r *redBlackTreeSet[K]) Intersection(other OrderedSet[K]) (OrderedSet[K], error) {
	out := NewRedBlackTreeSet[K]()

	for k := range r.Seq() {
		contains, err := other.Contains(k)
		if err != nil {
			return nil, err
		}

		if contains {
			if err := out.Add(k); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

// walk yields the subtree in order. It returns false once yield asks to stop.
func walk[K sortable.Sortable[K]](node *rbtNode[K], yield func(K) bool) bool {
	if node == nil {
		return true
	}

	return walk(node.left, yield) && yield(node.key) && walk(node.right, yield)
}

// walkRange is walk restricted to lo <= key < hi. Subtrees entirely outside
// the bounds are skipped.
func walkRange[K sortable.Sortable[K]](node *rbtNode[K], lo, hi K, yield func(K) bool) bool {
	if node == nil {
		return true
	}

	aboveLo := !node.key.LessThan(lo)
	belowHi := node.key.LessThan(hi)

	if aboveLo && !walkRange(node.left, lo, hi, yield) {
		return false
	}

	if aboveLo && belowHi && !yield(node.key) {
		return false
	}

	if belowHi {
		return walkRange(node.right, lo, hi, yield)
	}

	return true
}

func (r *redBlackTreeSet[K]) getNode(key K) *rbtNode[K] {
	this := r.root
	for this != nil {
		switch {
		case key.Equals(this.key):
			return this
		case key.LessThan(this.key):
			this = this.left
		default:
			this = this.right
		}
	}

	return nil
}

// minimum returns the leftmost node of the subtree rooted at x.
func minimum[K sortable.Sortable[K]](x *rbtNode[K]) *rbtNode[K] {
	for x.left != nil {
		x = x.left
	}

	return x
}

func isRed[K sortable.Sortable[K]](n *rbtNode[K]) bool {
	return n != nil && n.color == red
}

// rotateRight performs a right rotation around node y.
//
//	    y              x
//	   / \            / \
//	  x   c    =>    a   y
//	 / \                / \
//	a   b              b   c
//
//nolint:varnamelen,dupword // CLRS names; ASCII diagram
func (r *redBlackTreeSet[K]) rotateRight(y *rbtNode[K]) {
	x := y.left
	y.left = x.right

	if x.right != nil {
		x.right.parent = y
	}

	r.replaceChild(y, x)

	x.right = y
	y.parent = x
}

// rotateLeft performs a left rotation around node x.
//
//	  x                y
//	 / \              / \
//	a   y      =>    x   c
//	   / \          / \
//	  b   c        a   b
//
//nolint:varnamelen,dupword // CLRS names; ASCII diagram
func (r *redBlackTreeSet[K]) rotateLeft(x *rbtNode[K]) {
	y := x.right
	x.right = y.left

	if y.left != nil {
		y.left.parent = x
	}

	r.replaceChild(x, y)

	y.left = x
	x.parent = y
}

// replaceChild points old's parent (or the root) at replacement.
func (r *redBlackTreeSet[K]) replaceChild(old, replacement *rbtNode[K]) {
	replacement.parent = old.parent

	switch {
	case old.parent == nil:
		r.root = replacement
	case old == old.parent.left:
		old.parent.left = replacement
	default:
		old.parent.right = replacement
	}
}

// transplant replaces the subtree rooted at u with the subtree rooted at v.
// v's children are not modified.
func (r *redBlackTreeSet[K]) transplant(u *rbtNode[K], v *rbtNode[K]) {
	switch {
	case u.parent == nil:
		r.root = v
	case u == u.parent.left:
		u.parent.left = v
	default:
		u.parent.right = v
	}

	if v != nil {
		v.parent = u.parent
	}
}

// fixupPut removes a red-red violation left by inserting the red node z.
//
//	Case 1: uncle is red, recolor and move up to the grandparent
//	Case 2: uncle is black and z is an inner child, rotate into case 3
//	Case 3: uncle is black and z is an outer child, rotate the grandparent and recolor
//
//nolint:varnamelen,nestif // CLRS names; symmetric cases
func (r *redBlackTreeSet[K]) fixupPut(z *rbtNode[K]) {
	for isRed(z.parent) {
		grandparent := z.parent.parent

		if z.parent == grandparent.left {
			uncle := grandparent.right
			if isRed(uncle) {
				z.parent.color = black
				uncle.color = black
				grandparent.color = red
				z = grandparent

				continue
			}

			if z == z.parent.right {
				z = z.parent
				r.rotateLeft(z)
			}

			z.parent.color = black
			grandparent.color = red
			r.rotateRight(grandparent)
		} else {
			uncle := grandparent.left
			if isRed(uncle) {
				z.parent.color = black
				uncle.color = black
				grandparent.color = red
				z = grandparent

				continue
			}

			if z == z.parent.left {
				z = z.parent
				r.rotateRight(z)
			}

			z.parent.color = black
			grandparent.color = red
			r.rotateLeft(grandparent)
		}
	}

	r.root.color = black
}

// fixupDelete pushes the extra black carried by x (possibly nil, with parent
// xParent) up the tree until it reaches a red node or the root.
//
//	Case 1: sibling w is red, rotate so the sibling becomes black
//	Case 2: w is black with two black children, recolor w and move up
//	Case 3: w is black with a red inner child only, rotate w into case 4
//	Case 4: w is black with a red outer child, rotate the parent and stop
//
//nolint:varnamelen,dupl,nestif // CLRS names; symmetric cases
func (r *redBlackTreeSet[K]) fixupDelete(x, xParent *rbtNode[K]) {
	for x != r.root && !isRed(x) {
		if x == xParent.left {
			w := xParent.right
			if isRed(w) {
				w.color = black
				xParent.color = red
				r.rotateLeft(xParent)
				w = xParent.right
			}

			if !isRed(w.left) && !isRed(w.right) {
				w.color = red
				x, xParent = xParent, xParent.parent

				continue
			}

			if !isRed(w.right) {
				w.left.color = black
				w.color = red
				r.rotateRight(w)
				w = xParent.right
			}

			w.color = xParent.color
			xParent.color = black
			w.right.color = black
			r.rotateLeft(xParent)
			x, xParent = r.root, nil
		} else {
			w := xParent.left
			if isRed(w) {
				w.color = black
				xParent.color = red
				r.rotateRight(xParent)
				w = xParent.left
			}

			if !isRed(w.left) && !isRed(w.right) {
				w.color = red
				x, xParent = xParent, xParent.parent

				continue
			}

			if !isRed(w.left) {
				w.right.color = black
				w.color = red
				r.rotateLeft(w)
				w = xParent.left
			}

			w.color = xParent.color
			xParent.color = black
			w.left.color = black
			r.rotateRight(xParent)
			x, xParent = r.root, nil
		}
	}

	if x != nil {
		x.color = black
	}
}
