// Package table provides two layouts for a fixed-shape 2-D table of
// elements behind one Table contract.
//
// RowIndirect keeps a spine of row handles, each owning a separately
// allocated row: rows+1 allocations, two lookups per access. Flat keeps
// every cell in one row-major block addressed as r*cols + c: one
// allocation and contiguous memory. Both produce identical results for
// identical fills; Flat is the better default and RowIndirect exists for
// callers that need per-row ownership.
package table
