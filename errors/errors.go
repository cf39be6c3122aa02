// Package errors holds the sentinel errors shared across floatord packages
// and a small accumulator for reporting several failures at once.
package errors

import "errors"

var (
	// ErrShortBuffer is returned when decoding an encoded key from fewer bytes than its width.
	ErrShortBuffer = errors.New("short buffer")

	// ErrUnsupportedWidth is returned when a float width other than 32 or 64 is requested.
	ErrUnsupportedWidth = errors.New("unsupported float width")

	// ErrUnknownHash is returned when a hash function name is not registered.
	ErrUnknownHash = errors.New("unknown hash function")

	// ErrInvalidFloat is returned when a string cannot be parsed as a float.
	ErrInvalidFloat = errors.New("invalid float")

	// ErrInvalidFormat is returned when an unknown output format is requested.
	ErrInvalidFormat = errors.New("invalid output format")
)

// Collection is a thread-unsafe utility for accumulating multiple errors.
// Use this when several independent inputs are validated and every failure
// should be reported together instead of stopping at the first one.
type Collection struct {
	errors []error
}

// Add appends an error to the collection. Nil errors are ignored.
func (c *Collection) Add(err error) {
	if err != nil {
		c.errors = append(c.errors, err)
	}
}

// Clear removes all errors from the collection.
func (c *Collection) Clear() {
	c.errors = nil
}

// HasError returns true if the collection contains at least one error.
func (c *Collection) HasError() bool {
	return len(c.errors) > 0
}

// Len returns the number of collected errors.
func (c *Collection) Len() int {
	return len(c.errors)
}

// GetError returns the collected errors as a single error.
// Returns nil if the collection is empty, the single error if there's only one,
// or a joined error (using errors.Join) if there are multiple errors.
func (c *Collection) GetError() error {
	switch len(c.errors) {
	case 0:
		return nil
	case 1:
		return c.errors[0]
	default:
		return errors.Join(c.errors...)
	}
}
