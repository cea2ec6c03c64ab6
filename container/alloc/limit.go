package alloc

import (
	"fmt"
	"sync"

	"github.com/cwbudde/algo-container/container/core"
)

// Limit wraps another allocator and fails selected requests with
// core.ErrAllocation. Zero-valued fields disable the matching rule.
type Limit struct {
	// Next receives the requests that pass. Nil means Default.
	Next Allocator
	// FailAt fails the n-th acquisition (1-based).
	FailAt int
	// FailLabel fails every acquisition with this label.
	FailLabel string
	// MaxBytes fails any acquisition that would push live bytes above it.
	MaxBytes int

	mu       sync.Mutex
	acquired int
	live     int
}

// Acquire applies the configured rules before forwarding b.
func (l *Limit) Acquire(b Block) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.acquired++
	switch {
	case l.FailAt > 0 && l.acquired == l.FailAt:
		return fmt.Errorf("alloc: request %d for %s refused: %w", l.acquired, b, core.ErrAllocation)
	case l.FailLabel != "" && b.Label == l.FailLabel:
		return fmt.Errorf("alloc: %s refused: %w", b, core.ErrAllocation)
	case l.MaxBytes > 0 && l.live+b.Bytes() > l.MaxBytes:
		return fmt.Errorf("alloc: %s exceeds budget of %d bytes (%d live): %w",
			b, l.MaxBytes, l.live, core.ErrAllocation)
	}

	if err := l.next().Acquire(b); err != nil {
		return err
	}
	l.live += b.Bytes()
	return nil
}

// Release forwards b and updates the live byte total.
func (l *Limit) Release(b Block) {
	l.mu.Lock()
	l.live -= b.Bytes()
	l.mu.Unlock()
	l.next().Release(b)
}

func (l *Limit) next() Allocator {
	if l.Next == nil {
		return Default
	}
	return l.Next
}
