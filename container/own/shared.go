package own

import (
	"sync/atomic"

	"github.com/cwbudde/algo-container/container/core"
)

type control[T any] struct {
	value   T
	release func(T)
	refs    atomic.Int64
}

// Shared is one of possibly many owners of a value of type T.
// The owner count is atomic, so handles to the same value may be copied
// and released from different goroutines. Access to the value itself is
// not synchronized.
type Shared[T any] struct {
	_ noCopy

	ctl atomic.Pointer[control[T]]
}

// NewShared returns the first owner of v. release, if non-nil, runs once
// when the last owner is released.
func NewShared[T any](v T, release func(T)) *Shared[T] {
	ctl := &control[T]{value: v, release: release}
	ctl.refs.Store(1)
	s := &Shared[T]{}
	s.ctl.Store(ctl)
	return s
}

// Copy returns a new owner of the same value.
func (s *Shared[T]) Copy() (*Shared[T], error) {
	ctl := s.ctl.Load()
	if ctl == nil {
		return nil, core.ErrReleased
	}
	ctl.refs.Add(1)
	out := &Shared[T]{}
	out.ctl.Store(ctl)
	return out, nil
}

// Get returns the shared value.
func (s *Shared[T]) Get() (T, error) {
	ctl := s.ctl.Load()
	if ctl == nil {
		var zero T
		return zero, core.ErrReleased
	}
	return ctl.value, nil
}

// RefCount returns the number of live owners, or 0 for a released handle.
func (s *Shared[T]) RefCount() int {
	ctl := s.ctl.Load()
	if ctl == nil {
		return 0
	}
	return int(ctl.refs.Load())
}

// Release gives up this handle's ownership. The release function runs when
// the count drops from 1 to 0. Releasing the same handle twice returns
// core.ErrReleased and leaves the count untouched.
func (s *Shared[T]) Release() error {
	ctl := s.ctl.Swap(nil)
	if ctl == nil {
		return core.ErrReleased
	}
	if ctl.refs.Add(-1) == 0 {
		v, fn := ctl.value, ctl.release
		var zero T
		ctl.value = zero
		ctl.release = nil
		if fn != nil {
			fn(v)
		}
	}
	return nil
}
