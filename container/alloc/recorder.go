package alloc

import "sync"

// Op identifies a recorded allocator event.
type Op int

const (
	OpAcquire Op = iota
	OpRelease
)

func (o Op) String() string {
	switch o {
	case OpAcquire:
		return "acquire"
	case OpRelease:
		return "release"
	default:
		return "unknown"
	}
}

// Event is one successful acquisition or one release.
type Event struct {
	Op    Op
	Block Block
}

// Recorder wraps another allocator and logs events in call order.
// Failed acquisitions are not recorded.
type Recorder struct {
	next Allocator

	mu     sync.Mutex
	events []Event
}

// NewRecorder returns a Recorder forwarding to next. Nil means Default.
func NewRecorder(next Allocator) *Recorder {
	if next == nil {
		next = Default
	}
	return &Recorder{next: next}
}

// Acquire forwards b and records it on success.
func (r *Recorder) Acquire(b Block) error {
	if err := r.next.Acquire(b); err != nil {
		return err
	}
	r.mu.Lock()
	r.events = append(r.events, Event{Op: OpAcquire, Block: b})
	r.mu.Unlock()
	return nil
}

// Release records b and forwards it.
func (r *Recorder) Release(b Block) {
	r.mu.Lock()
	r.events = append(r.events, Event{Op: OpRelease, Block: b})
	r.mu.Unlock()
	r.next.Release(b)
}

// Events returns a copy of the recorded events.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// Labels returns the labels of all events with the given op, in order.
func (r *Recorder) Labels(op Op) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, e := range r.events {
		if e.Op == op {
			out = append(out, e.Block.Label)
		}
	}
	return out
}

// Counts returns the number of recorded acquisitions and releases.
func (r *Recorder) Counts() (acquired, released int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.events {
		if e.Op == OpAcquire {
			acquired++
		} else {
			released++
		}
	}
	return acquired, released
}

// Balanced reports whether every acquisition has a matching release.
func (r *Recorder) Balanced() bool {
	a, rel := r.Counts()
	return a == rel
}

// Reset clears the event log.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.events = nil
	r.mu.Unlock()
}
