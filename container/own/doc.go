// Package own binds the lifetime of a value to the handles that reference it.
//
// An Exclusive handle is the single owner of its value. Ownership moves with
// Move or MoveFrom and the source handle is invalidated; there is no copy.
// A Shared handle counts its owners. Copy adds an owner, Release removes one,
// and the release function runs exactly when the last owner lets go.
//
// The release function is how a container returns storage to its allocator;
// handles never free anything themselves.
package own
