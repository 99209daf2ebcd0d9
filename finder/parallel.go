package finder

import "golang.org/x/sync/errgroup"

// searchParallel partitions the first slot's candidate values into contiguous
// chunks, one per worker. Every worker gets fully independent pool copies
// (safe under any sharing layout, at the cost of duplicating shared pools)
// and collects its own bounded top-K; the per-worker heaps are then merged
// into the global top-K.
//
// Because each branch of the first slot restores its pool counts before the
// next branch starts, a chunk searched against fresh copies enumerates
// exactly the combinations the sequential pass would under the same first
// values. Sequence numbers encode (first-slot entry index, branch-local
// counter), so tie order matches the sequential pass bit for bit.
func (f *Finder) searchParallel(k int, o Options) ([]Result, error) {
	// 1. Clamp the worker count to the partitionable range.
	n := f.slots[0].Pool.Distinct()
	if n == 0 {
		return newResultHeap(k).sorted(), nil
	}
	workers := o.Workers
	if workers > n {
		workers = n
	}

	// 2. Fan out: one goroutine per contiguous chunk of first-slot entries.
	g, ctx := errgroup.WithContext(o.Ctx)
	parts := make([][]Result, workers)
	for wi := 0; wi < workers; wi++ {
		wi := wi
		lo := wi * n / workers
		hi := (wi + 1) * n / workers
		g.Go(func() error {
			w := f.newWalker(ctx, k, lo, hi)
			if err := w.run(); err != nil {
				return err
			}
			parts[wi] = w.top.items

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// 3. Merge per-worker selections into the global top-K.
	merged := newResultHeap(k)
	for _, part := range parts {
		for _, r := range part {
			merged.addResult(r)
		}
	}

	return merged.sorted(), nil
}
