package own

import "github.com/cwbudde/algo-container/container/core"

// noCopy lets go vet's copylocks check flag handles copied by value.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

type state uint8

const (
	stateEmpty state = iota
	stateLive
	stateMoved
	stateReleased
)

// Exclusive is a move-only owner of a value of type T.
// The zero value is an empty handle.
type Exclusive[T any] struct {
	_ noCopy

	value   T
	release func(T)
	state   state
}

// NewExclusive returns a live handle owning v. release, if non-nil, runs
// once when the handle releases v.
func NewExclusive[T any](v T, release func(T)) *Exclusive[T] {
	return &Exclusive[T]{value: v, release: release, state: stateLive}
}

// Valid reports whether the handle currently owns a value.
func (e *Exclusive[T]) Valid() bool {
	return e != nil && e.state == stateLive
}

// Get returns the owned value. It fails with core.ErrInvalidated after the
// value was moved out and with core.ErrReleased after Release.
func (e *Exclusive[T]) Get() (T, error) {
	var zero T
	if e == nil {
		return zero, core.ErrInvalidated
	}
	switch e.state {
	case stateLive:
		return e.value, nil
	case stateReleased:
		return zero, core.ErrReleased
	default:
		return zero, core.ErrInvalidated
	}
}

// Move transfers ownership to a new handle and invalidates e.
// Moving from a handle that owns nothing yields an empty handle.
func (e *Exclusive[T]) Move() *Exclusive[T] {
	out := &Exclusive[T]{}
	if !e.Valid() {
		return out
	}
	out.value, out.release, out.state = e.value, e.release, stateLive
	e.drop(stateMoved)
	return out
}

// MoveFrom releases the value e currently owns and takes over other's
// value, invalidating other. Moving a handle onto itself does nothing.
func (e *Exclusive[T]) MoveFrom(other *Exclusive[T]) {
	if e == other {
		return
	}
	e.Release()
	if !other.Valid() {
		return
	}
	e.value, e.release, e.state = other.value, other.release, stateLive
	other.drop(stateMoved)
}

// Release runs the release function and leaves the handle empty.
// Releasing a handle that owns nothing is a no-op.
func (e *Exclusive[T]) Release() {
	if !e.Valid() {
		return
	}
	v, fn := e.value, e.release
	e.drop(stateReleased)
	if fn != nil {
		fn(v)
	}
}

func (e *Exclusive[T]) drop(s state) {
	var zero T
	e.value = zero
	e.release = nil
	e.state = s
}
