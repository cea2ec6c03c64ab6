// Package alloc models storage requests as an accounting hook around make.
//
// Every container acquires a Block before it creates a backing slice and
// releases the same Block when it drops that slice. Allocators decide
// whether a request succeeds and may observe the order of requests:
//
//   - Heap always succeeds and tracks live blocks and bytes.
//   - Limit injects failures by label, by ordinal or by byte budget.
//   - Recorder keeps an ordered log of acquisitions and releases.
//   - Logging reports every event to a slog.Logger.
//
// Decorators take the next allocator in the chain, so a test can stack a
// Recorder on a Limit on a Heap and check both failure handling and
// acquire/release balance.
package alloc
