package finder

import "context"

// seqShift splits the combination sequence number into (first-slot entry
// index, per-branch counter). Lexicographic order on the packed number equals
// global enumeration order, which keeps tie-breaking identical between
// sequential and partitioned searches.
const seqShift = 40

// Finder binds an ordered slot sequence to a scoring function and an optional
// interpretation function. Build it once, then call Estimate and Search as
// often as needed; nothing persists between calls and the caller's pools are
// never touched.
type Finder struct {
	slots     []Slot
	score     ScoreFunc
	interpret InterpretFunc
}

// NewFinder validates and binds the search definition.
//
// Contracts:
//   - slots may be empty: Search then yields exactly one empty combination,
//     scored by invoking score with an empty values slice.
//   - every slot must reference a non-nil pool (ErrNilPool).
//   - score must be non-nil (ErrNilScoreFunc); interpret may be nil, in which
//     case results render without interpretation text.
//
// The slots slice is copied; later mutation of the caller's slice does not
// affect the finder. The pools themselves are referenced, not copied: sharing
// a *Pool between slots is the way to declare a joint stock.
func NewFinder(slots []Slot, score ScoreFunc, interpret InterpretFunc) (*Finder, error) {
	// 1. Validate callbacks.
	if score == nil {
		return nil, ErrNilScoreFunc
	}

	// 2. Validate slots.
	for _, s := range slots {
		if s.Pool == nil {
			return nil, ErrNilPool
		}
	}

	return &Finder{
		slots:     append([]Slot(nil), slots...),
		score:     score,
		interpret: interpret,
	}, nil
}

// Estimate returns an upper bound on the number of combinations Search will
// enumerate: the product, over all slots, of the number of distinct values in
// each slot's pool, or 0 when there are no slots.
//
// This is deliberately an over-estimate. It ignores instance counts (entries
// with zero remaining instances still count as distinct values) and it
// ignores the pruning effect of shared-pool depletion: two slots sharing one
// 3-value pool contribute 9 to the product even though at most 6 combinations
// exist. Use it to size work, never as an exact count.
//
// Complexity: O(N) over the slot count.
func (f *Finder) Estimate() int {
	if len(f.slots) == 0 {
		return 0
	}

	est := 1
	for _, s := range f.slots {
		est *= s.Pool.Distinct()
	}

	return est
}

// Search enumerates every combination the pools allow and returns the k
// highest-scoring ones, descending by score. Ties are broken by enumeration
// order (earlier combinations first), so output is fully deterministic.
//
// k semantics:
//   - k > 0:  at most k results, selected with a bounded heap
//     (cost C·log k over C enumerated combinations, never a full sort).
//   - k == 0: empty result set; enumeration and scoring still run, so
//     scoring errors surface exactly as for any other k.
//   - k < 0:  permissively "all": every combination, sorted descending.
//
// Failure semantics: the first error returned by the scoring function aborts
// the search and is returned as-is; partial results are discarded. Cancelling
// the context (WithContext) aborts with the context's error.
//
// The caller's pools are unchanged after Search returns: the engine copies
// each distinct pool handle exactly once per call and slots sharing a handle
// share the copy, so joint depletion is honored.
func (f *Finder) Search(k int, opts ...Option) (*ResultSet, error) {
	// 1. Apply options.
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 2. Enumerate: partitioned across workers, or one sequential pass.
	var (
		results []Result
		err     error
	)
	if o.Workers > 1 && len(f.slots) > 0 {
		results, err = f.searchParallel(k, o)
	} else {
		results, err = f.searchSequential(k, o)
	}
	if err != nil {
		return nil, err
	}

	// 3. Assemble the result set in slot order.
	params := make([]Parameter, len(f.slots))
	for i, s := range f.slots {
		params[i] = s.Param
	}

	return &ResultSet{
		Results:   results,
		Params:    params,
		interpret: f.interpret,
	}, nil
}

// searchSequential runs one depth-first pass over the whole first-slot range.
func (f *Finder) searchSequential(k int, o Options) ([]Result, error) {
	hi := 0
	if len(f.slots) > 0 {
		hi = f.slots[0].Pool.Distinct()
	}
	w := f.newWalker(o.Ctx, k, 0, hi)
	if err := w.run(); err != nil {
		return nil, err
	}

	return w.top.sorted(), nil
}

// walker encapsulates the mutable state of one enumeration pass: the private
// pool copies, the in-progress assignment, and the bounded result collector.
type walker struct {
	ctx    context.Context
	pools  []*workPool // one per slot; shared handles share the copy
	values []float64   // current assignment, one per slot
	top    *resultHeap
	score  ScoreFunc

	lo, hi int // first-slot entry range [lo, hi) this walker covers

	firstIdx uint64 // entry index of the current first-slot value
	local    uint64 // combinations emitted under the current first-slot value
}

// newWalker deep-copies the pools (once per distinct handle) and prepares a
// pass over first-slot entries [lo, hi).
func (f *Finder) newWalker(ctx context.Context, k, lo, hi int) *walker {
	copies := make(map[*Pool]*workPool, len(f.slots))
	pools := make([]*workPool, len(f.slots))
	for i, s := range f.slots {
		wp, ok := copies[s.Pool]
		if !ok {
			wp = s.Pool.workCopy()
			copies[s.Pool] = wp
		}
		pools[i] = wp
	}

	return &walker{
		ctx:    ctx,
		pools:  pools,
		values: make([]float64, len(f.slots)),
		top:    newResultHeap(k),
		score:  f.score,
		lo:     lo,
		hi:     hi,
	}
}

// run drives the traversal. With no slots it emits the single empty
// combination; otherwise it iterates the first slot's entries in its range
// and descends depth-first.
func (w *walker) run() error {
	if len(w.pools) == 0 {
		return w.emit()
	}

	entries := w.pools[0].entries
	for ei := w.lo; ei < w.hi && ei < len(entries); ei++ {
		// Cancellation check, once per first-slot candidate.
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		e := &entries[ei]
		if e.count <= 0 {
			continue
		}
		w.firstIdx, w.local = uint64(ei), 0
		if err := w.descend(0, e); err != nil {
			return err
		}
	}

	return nil
}

// traverse assigns slot pos from its pool's candidates in stable order,
// recursing for each available value.
func (w *walker) traverse(pos int) error {
	// Cancellation check, once per slot-level iteration.
	select {
	case <-w.ctx.Done():
		return w.ctx.Err()
	default:
	}

	entries := w.pools[pos].entries
	for ei := range entries {
		e := &entries[ei]
		if e.count <= 0 {
			continue
		}
		if err := w.descend(pos, e); err != nil {
			return err
		}
	}

	return nil
}

// descend checks out one instance of e for slot pos, explores the branch,
// and restores the count on every exit path, including error aborts. The
// deferred restore keeps sibling branches' stocks intact.
func (w *walker) descend(pos int, e *poolEntry) error {
	e.count--
	defer func() { e.count++ }()

	w.values[pos] = e.value
	if pos+1 < len(w.pools) {
		return w.traverse(pos + 1)
	}

	return w.emit()
}

// emit scores the complete assignment and offers it to the bounded collector.
// Scoring errors abort the search unchanged.
func (w *walker) emit() error {
	score, err := w.score(w.values)
	if err != nil {
		return err
	}
	w.top.add(score, w.firstIdx<<seqShift|w.local, w.values)
	w.local++

	return nil
}
