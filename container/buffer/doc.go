// Package buffer provides Buffer, a contiguous block of fixed-size elements
// with separately tracked capacity and count, and Pool for reusing buffers
// in hot loops.
//
// Append grows the block only when it is full. Each growth step doubles the
// capacity (with a floor for empty buffers), copies the live elements into
// the new block and releases the old one, so the cost per append stays
// constant on average. Growth acquires the new block before touching the
// old one: a refused allocation leaves the buffer exactly as it was.
package buffer
