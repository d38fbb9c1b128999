// Package partition implements the two work-distribution strategies used to
// reduce a matrix in parallel, the per-worker accumulator slots they write
// into, and the post-join aggregation of those slots.
//
// # Strategies
//
// [Static] assigns rows by stride: worker t of n visits t, t+n, t+2n and so on.
// It touches no shared mutable state besides its own [Slot].
//
// [Dynamic] lets every worker pull the next unclaimed row from a shared
// [Cursor] until the cursor is exhausted. Rows are handed out from R-1 down
// to 0; how many rows a given worker ends up with depends on scheduling.
//
// # Ownership
//
// A [Job] carries everything a worker needs: the read-only matrix, the worker
// count, the cursor (dynamic only) and one slot per worker. Slot i is written
// only by worker i. [Aggregate] must only be called once every worker has
// returned.
package partition
