package finder

import "sort"

// poolEntry is one (value, remaining count) pair inside a Pool.
type poolEntry struct {
	value float64
	count int
}

// Pool is an insertion-ordered multiset of candidate values with remaining
// instance counts. Iteration order is stable: values appear in the order they
// were first added (the map constructor NewPool inserts in ascending value
// order, so pools built from maps are deterministic too).
//
// Identity matters: sharing is expressed by handing the same *Pool to several
// slots. The engine recognizes the shared handle and copies the stock exactly
// once per Search, so those slots deplete one common copy. Two pools with
// identical contents but distinct handles stay independent.
//
// A Pool is not safe for concurrent mutation; define pools before searching.
type Pool struct {
	entries []poolEntry
	index   map[float64]int // value -> position in entries
}

// NewPool builds a Pool from a value -> instance-count map. Values are
// inserted in ascending order so that enumeration is deterministic regardless
// of map iteration order. A nil or empty map yields an empty pool; use Add to
// populate it incrementally.
//
// Non-positive counts are kept but treated as unavailable during search,
// matching the engine's skip rule.
func NewPool(available map[float64]int) *Pool {
	p := &Pool{index: make(map[float64]int, len(available))}

	// 1. Collect and sort keys for a stable insertion order.
	values := make([]float64, 0, len(available))
	for v := range available {
		values = append(values, v)
	}
	sort.Float64s(values)

	// 2. Insert in ascending order.
	for _, v := range values {
		p.Add(v, available[v])
	}

	return p
}

// Add inserts n instances of value v, or tops up the existing entry.
// It returns p to allow chaining.
func (p *Pool) Add(v float64, n int) *Pool {
	if p.index == nil {
		p.index = make(map[float64]int)
	}
	if i, ok := p.index[v]; ok {
		p.entries[i].count += n

		return p
	}
	p.index[v] = len(p.entries)
	p.entries = append(p.entries, poolEntry{value: v, count: n})

	return p
}

// Count reports the remaining instance count for value v, or 0 when v is not
// in the pool.
func (p *Pool) Count(v float64) int {
	if i, ok := p.index[v]; ok {
		return p.entries[i].count
	}

	return 0
}

// Distinct reports the number of distinct values in the pool, including
// values whose count is non-positive. Estimate is built on this.
func (p *Pool) Distinct() int {
	return len(p.entries)
}

// Total reports the number of available instances: the sum of all positive
// counts. Entries with non-positive counts contribute nothing.
func (p *Pool) Total() int {
	total := 0
	for _, e := range p.entries {
		if e.count > 0 {
			total += e.count
		}
	}

	return total
}

// Values returns the distinct values in their stable iteration order.
// The returned slice is a copy; mutating it does not affect the pool.
func (p *Pool) Values() []float64 {
	out := make([]float64, len(p.entries))
	for i, e := range p.entries {
		out[i] = e.value
	}

	return out
}

// Clone returns an independent deep copy of the pool. The clone is a new
// handle: slots holding p and slots holding p.Clone() do NOT share stock.
func (p *Pool) Clone() *Pool {
	c := &Pool{
		entries: append([]poolEntry(nil), p.entries...),
		index:   make(map[float64]int, len(p.index)),
	}
	for v, i := range p.index {
		c.index[v] = i
	}

	return c
}

// workPool is the engine's private mutable copy of one Pool for the duration
// of a single search. Only counts mutate; the entry order never changes.
type workPool struct {
	entries []poolEntry
}

// workCopy snapshots the pool's entries into a fresh workPool.
func (p *Pool) workCopy() *workPool {
	return &workPool{entries: append([]poolEntry(nil), p.entries...)}
}
