package buffer

import (
	"sync"

	"github.com/cwbudde/algo-container/container/core"
)

// Pool provides sync.Pool-based Buffer reuse to reduce allocator traffic
// in loops that repeatedly fill and drain buffers.
type Pool[T core.Element] struct {
	pool sync.Pool
}

// NewPool returns a Pool whose fresh buffers use opts.
func NewPool[T core.Element](opts ...Option) *Pool[T] {
	cfg := ApplyOptions(opts...)
	return &Pool[T]{
		pool: sync.Pool{
			New: func() any {
				return &Buffer[T]{cfg: cfg}
			},
		},
	}
}

// Get returns an empty Buffer with capacity for at least capacity elements.
// Callers must return it via Put when done.
func (p *Pool[T]) Get(capacity int) (*Buffer[T], error) {
	b := p.pool.Get().(*Buffer[T])
	b.Reset()
	if err := b.Reserve(capacity); err != nil {
		p.pool.Put(b)
		return nil, err
	}
	return b, nil
}

// Put returns a Buffer to the pool for reuse. Released buffers are dropped.
// The caller must not use the buffer after calling Put. Buffers the pool
// discards are reclaimed by the garbage collector without an allocator
// release, so pair pools with the default allocator.
func (p *Pool[T]) Put(b *Buffer[T]) {
	if b == nil || b.released {
		return
	}
	b.Reset()
	p.pool.Put(b)
}
