package finder

import "sort"

// resultHeap collects scored combinations and keeps only the bound best.
// With a positive bound it is a value-based min-heap whose root is the worst
// retained result, so each offer costs O(log bound); with a negative bound it
// degenerates to an append-only list and sorted() performs the full sort.
// A bound of 0 discards everything.
type resultHeap struct {
	bound int
	items []Result
}

func newResultHeap(bound int) *resultHeap {
	h := &resultHeap{bound: bound}
	if bound > 0 {
		h.items = make([]Result, 0, bound)
	}

	return h
}

// betterThan reports whether a outranks b: higher score first, then earlier
// enumeration sequence. It is a strict total order, so it doubles as the
// final sort comparator.
func betterThan(a, b Result) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}

	return a.seq < b.seq
}

// add offers one combination. values is the walker's reusable buffer; it is
// copied only when the result is actually retained, so rejected combinations
// allocate nothing.
func (h *resultHeap) add(score float64, seq uint64, values []float64) {
	if h.bound == 0 {
		return
	}
	if h.bound > 0 && len(h.items) == h.bound &&
		!betterThan(Result{Score: score, seq: seq}, h.items[0]) {
		return
	}
	h.addResult(Result{
		Values: append([]float64(nil), values...),
		Score:  score,
		seq:    seq,
	})
}

// addResult inserts an already-owned Result, evicting the current worst when
// the heap is full. Used directly when merging per-worker heaps.
func (h *resultHeap) addResult(r Result) {
	if h.bound == 0 {
		return
	}
	if h.bound > 0 && len(h.items) == h.bound {
		if !betterThan(r, h.items[0]) {
			return
		}
		h.items[0] = r
		h.siftDown(0)

		return
	}
	h.items = append(h.items, r)
	if h.bound > 0 {
		h.siftUp(len(h.items) - 1)
	}
}

// worse orders the heap: the root is the result that should be evicted first.
func (h *resultHeap) worse(i, j int) bool {
	return betterThan(h.items[j], h.items[i])
}

func (h *resultHeap) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !h.worse(i, parent) {
			break
		}
		h.items[i], h.items[parent] = h.items[parent], h.items[i]
		i = parent
	}
}

func (h *resultHeap) siftDown(i int) {
	n := len(h.items)
	for {
		left, right := 2*i+1, 2*i+2
		worst := i
		if left < n && h.worse(left, worst) {
			worst = left
		}
		if right < n && h.worse(right, worst) {
			worst = right
		}
		if worst == i {
			return
		}
		h.items[i], h.items[worst] = h.items[worst], h.items[i]
		i = worst
	}
}

// sorted returns the retained results in final order: descending score,
// ascending enumeration sequence among ties.
func (h *resultHeap) sorted() []Result {
	out := make([]Result, len(h.items))
	copy(out, h.items)
	sort.Slice(out, func(i, j int) bool { return betterThan(out[i], out[j]) })

	return out
}
