package buffer

import "testing"

func TestPoolGetReturnsEmpty(t *testing.T) {
	p := NewPool[float64]()

	b, err := p.Get(8)
	if err != nil {
		t.Fatal(err)
	}
	if b.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", b.Len())
	}
	if b.Cap() < 8 {
		t.Fatalf("Cap() = %d, want >= 8", b.Cap())
	}

	p.Put(b)
}

func TestPoolReuseIsEmpty(t *testing.T) {
	p := NewPool[int]()

	// Get, write data, return.
	b, _ := p.Get(4)
	_ = b.AppendSlice(42, 43)
	p.Put(b)

	// Get again; should be empty regardless of reuse.
	b2, _ := p.Get(4)
	if b2.Len() != 0 {
		t.Fatalf("reused buffer Len() = %d, want 0", b2.Len())
	}
	if err := b2.Resize(2); err != nil {
		t.Fatal(err)
	}
	for i, v := range b2.Elements() {
		if v != 0 {
			t.Fatalf("reused Elements()[%d] = %v, want 0", i, v)
		}
	}

	p.Put(b2)
}

func TestPoolDropsReleased(t *testing.T) {
	p := NewPool[int]()
	b, _ := p.Get(2)
	b.Release()
	p.Put(b)

	b2, err := p.Get(2)
	if err != nil {
		t.Fatal(err)
	}
	if b2.Released() {
		t.Fatal("pool handed out a released buffer")
	}
}

func TestPoolPutNilSafe(_ *testing.T) {
	p := NewPool[int]()
	p.Put(nil) // must not panic
}
