// Package finder implements exhaustive combinatorial search over an ordered
// sequence of parameter slots, each drawing from a finite multiset (Pool) of
// candidate values with limited instance counts. Slots may share one Pool by
// handle, in which case they compete for the same stock and deplete it jointly.
// Every valid combination is scored by a caller-supplied function and the
// top-K highest-scoring combinations are returned in descending score order.
//
// Key features:
//   - NewFinder(slots, score, interpret): bind slots and scoring once, search many times
//   - Estimate(): cheap upper bound on the number of combinations
//   - Search(k, opts...): enumerate, score, and select the k best (k < 0 keeps all)
//   - Shared pools: two slots holding the same *Pool deplete one copied stock
//   - Scoped decrement/restore: counts are restored on every exit path
//   - WithWorkers(n): partition the first slot across n workers and merge top-K
//   - Cancellation via context.Context, checked once per slot-level iteration
//
// Complexity:
//
//   - Time:   O(C · (S + log k)) where C = enumerated combinations and
//     S = cost of one scoring call; selection is a bounded heap, never a full sort
//     unless k < 0 or k ≥ C.
//   - Memory: O(P + k) for the per-search pool copies (P = total pool entries)
//     and the bounded result heap.
//
// Options:
//
//   - WithContext(ctx)  allows cancellation via context.Context.
//   - WithWorkers(n)    enables parallel search with n workers (default 1).
//
// Errors:
//
//   - ErrNilPool        if any slot references a nil pool.
//   - ErrNilScoreFunc   if the scoring function is nil.
//   - context.Canceled  if ctx is done.
//   - any error returned by the scoring function, as-is.
//
// The caller's pools are never mutated: each Search works on an internal copy,
// created once per distinct pool handle and shared between slots that share
// the handle.
package finder
