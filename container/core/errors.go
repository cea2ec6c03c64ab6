package core

import "errors"

var (
	// ErrAllocation reports that a storage request could not be satisfied.
	// The operation that triggered it did not complete and left prior state intact.
	ErrAllocation = errors.New("core: allocation failed")

	// ErrOutOfRange is returned by checked accessors for an index or
	// coordinate outside the valid range.
	ErrOutOfRange = errors.New("core: index out of range")

	// ErrReleased reports use of storage after it was released, or a second
	// release of a shared handle.
	ErrReleased = errors.New("core: use after release")

	// ErrInvalidated reports use of an exclusive handle whose value was moved out.
	ErrInvalidated = errors.New("core: handle invalidated by move")

	// ErrShape reports negative dimensions or mismatched lengths.
	ErrShape = errors.New("core: invalid shape")
)
