package own

import (
	"errors"
	"sync"
	"testing"

	"github.com/cwbudde/algo-container/container/core"
)

func TestExclusiveReleaseRunsOnce(t *testing.T) {
	calls := 0
	e := NewExclusive([]int{1, 2, 3}, func([]int) { calls++ })

	if !e.Valid() {
		t.Fatal("new handle should be valid")
	}
	e.Release()
	e.Release()
	if calls != 1 {
		t.Fatalf("release ran %d times, want 1", calls)
	}
	if _, err := e.Get(); !errors.Is(err, core.ErrReleased) {
		t.Fatalf("Get after Release err = %v, want ErrReleased", err)
	}
}

func TestExclusiveMoveInvalidatesSource(t *testing.T) {
	calls := 0
	src := NewExclusive(42, func(int) { calls++ })

	dst := src.Move()
	if src.Valid() {
		t.Fatal("source still valid after Move")
	}
	if _, err := src.Get(); !errors.Is(err, core.ErrInvalidated) {
		t.Fatalf("Get on moved-from handle err = %v, want ErrInvalidated", err)
	}
	v, err := dst.Get()
	if err != nil || v != 42 {
		t.Fatalf("dst.Get() = %v, %v; want 42, nil", v, err)
	}

	src.Release()
	if calls != 0 {
		t.Fatal("releasing a moved-from handle must not release the value")
	}
	dst.Release()
	if calls != 1 {
		t.Fatalf("release ran %d times, want 1", calls)
	}
}

func TestExclusiveMoveFromReleasesPrevious(t *testing.T) {
	var released []string
	a := NewExclusive("a", func(s string) { released = append(released, s) })
	b := NewExclusive("b", func(s string) { released = append(released, s) })

	a.MoveFrom(b)
	if len(released) != 1 || released[0] != "a" {
		t.Fatalf("released = %v, want [a]", released)
	}
	if b.Valid() {
		t.Fatal("b still valid after MoveFrom")
	}
	if v, _ := a.Get(); v != "b" {
		t.Fatalf("a owns %q, want b", v)
	}

	a.MoveFrom(a)
	if !a.Valid() {
		t.Fatal("self move must be a no-op")
	}
	a.Release()
	if len(released) != 2 || released[1] != "b" {
		t.Fatalf("released = %v, want [a b]", released)
	}
}

func TestExclusiveEmptyHandles(t *testing.T) {
	var zero Exclusive[int]
	if zero.Valid() {
		t.Fatal("zero handle must not be valid")
	}
	zero.Release()

	moved := zero.Move()
	if moved.Valid() {
		t.Fatal("moving an empty handle must yield an empty handle")
	}

	var nilHandle *Exclusive[int]
	if _, err := nilHandle.Get(); !errors.Is(err, core.ErrInvalidated) {
		t.Fatalf("nil handle Get err = %v", err)
	}
}

func TestSharedCountsOwners(t *testing.T) {
	calls := 0
	a := NewShared(77, func(int) { calls++ })
	if a.RefCount() != 1 {
		t.Fatalf("RefCount = %d, want 1", a.RefCount())
	}

	b, err := a.Copy()
	if err != nil {
		t.Fatal(err)
	}
	if a.RefCount() != 2 || b.RefCount() != 2 {
		t.Fatalf("RefCount = %d/%d, want 2/2", a.RefCount(), b.RefCount())
	}
	va, _ := a.Get()
	vb, _ := b.Get()
	if va != 77 || vb != 77 {
		t.Fatalf("values = %d/%d, want 77/77", va, vb)
	}

	if err := a.Release(); err != nil {
		t.Fatal(err)
	}
	if calls != 0 {
		t.Fatal("value released while an owner is alive")
	}
	if b.RefCount() != 1 {
		t.Fatalf("RefCount = %d, want 1", b.RefCount())
	}

	if err := b.Release(); err != nil {
		t.Fatal(err)
	}
	if calls != 1 {
		t.Fatalf("release ran %d times, want 1", calls)
	}
}

func TestSharedDoubleRelease(t *testing.T) {
	a := NewShared(1, nil)
	b, _ := a.Copy()

	if err := a.Release(); err != nil {
		t.Fatal(err)
	}
	if err := a.Release(); !errors.Is(err, core.ErrReleased) {
		t.Fatalf("second Release err = %v, want ErrReleased", err)
	}
	if b.RefCount() != 1 {
		t.Fatalf("double release changed the count: %d", b.RefCount())
	}
	if _, err := a.Copy(); !errors.Is(err, core.ErrReleased) {
		t.Fatalf("Copy from released handle err = %v", err)
	}
	if _, err := a.Get(); !errors.Is(err, core.ErrReleased) {
		t.Fatalf("Get from released handle err = %v", err)
	}
	if a.RefCount() != 0 {
		t.Fatalf("released handle RefCount = %d, want 0", a.RefCount())
	}
}

func TestSharedConcurrentCopyRelease(t *testing.T) {
	var calls int
	var mu sync.Mutex
	root := NewShared("block", func(string) {
		mu.Lock()
		calls++
		mu.Unlock()
	})

	const workers = 16
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		h, err := root.Copy()
		if err != nil {
			t.Fatal(err)
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c, err := h.Copy()
				if err != nil {
					t.Error(err)
					return
				}
				_ = c.Release()
			}
			_ = h.Release()
		}()
	}
	wg.Wait()

	if root.RefCount() != 1 {
		t.Fatalf("RefCount = %d, want 1", root.RefCount())
	}
	_ = root.Release()
	if calls != 1 {
		t.Fatalf("release ran %d times, want 1", calls)
	}
}
