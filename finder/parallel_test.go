package finder_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/combin/finder"
)

// buildMixedFinder wires three slots where the first two share one pool,
// giving parallel search both a partitionable first slot and joint depletion
// to get right.
func buildMixedFinder(t *testing.T, score finder.ScoreFunc) *finder.Finder {
	t.Helper()
	shared := finder.NewPool(map[float64]int{1: 1, 2: 1, 3: 1, 4: 1})
	third := finder.NewPool(map[float64]int{10: 1, 20: 1, 30: 1})
	f, err := finder.NewFinder([]finder.Slot{
		finder.NewSlot("a", shared),
		finder.NewSlot("b", shared),
		finder.NewSlot("c", third),
	}, score, nil)
	require.NoError(t, err)

	return f
}

func TestSearch_ParallelMatchesSequential(t *testing.T) {
	f := buildMixedFinder(t, weightedScore)

	for _, k := range []int{-1, 0, 1, 5, 1000} {
		seq, err := f.Search(k)
		require.NoError(t, err)
		par, err := f.Search(k, finder.WithWorkers(3))
		require.NoError(t, err)
		assert.Equal(t, seq.Results, par.Results, "k=%d", k)
	}
}

func TestSearch_ParallelTieOrderMatchesSequential(t *testing.T) {
	f := buildMixedFinder(t, flatScore)

	seq, err := f.Search(-1)
	require.NoError(t, err)
	par, err := f.Search(-1, finder.WithWorkers(4))
	require.NoError(t, err)
	// All scores tie; the sequence-number tie-break must agree across modes.
	assert.Equal(t, seq.Results, par.Results)
}

func TestSearch_WorkersExceedFirstSlot(t *testing.T) {
	f := buildMixedFinder(t, weightedScore)

	seq, err := f.Search(5)
	require.NoError(t, err)
	par, err := f.Search(5, finder.WithWorkers(64))
	require.NoError(t, err)
	assert.Equal(t, seq.Results, par.Results)
}

func TestSearch_ParallelCallerPoolsUnchanged(t *testing.T) {
	shared := finder.NewPool(map[float64]int{1: 1, 2: 1, 3: 1, 4: 1})
	f, err := finder.NewFinder([]finder.Slot{
		finder.NewSlot("a", shared),
		finder.NewSlot("b", shared),
	}, sumScore, nil)
	require.NoError(t, err)

	_, err = f.Search(3, finder.WithWorkers(4))
	require.NoError(t, err)
	for _, v := range shared.Values() {
		assert.Equal(t, 1, shared.Count(v))
	}
}

func TestSearch_ParallelScoreErrorPropagates(t *testing.T) {
	boom := errors.New("bad combination")
	score := func(values []float64) (float64, error) {
		if values[0] == 3 {
			return 0, boom
		}

		return sumScore(values)
	}
	f := buildMixedFinder(t, score)

	rs, err := f.Search(-1, finder.WithWorkers(4))
	assert.Nil(t, rs)
	assert.ErrorIs(t, err, boom)
}

func TestSearch_ParallelDeterministic(t *testing.T) {
	f := buildMixedFinder(t, weightedScore)

	first, err := f.Search(7, finder.WithWorkers(4))
	require.NoError(t, err)
	second, err := f.Search(7, finder.WithWorkers(4))
	require.NoError(t, err)
	assert.Equal(t, first.Results, second.Results)
}
