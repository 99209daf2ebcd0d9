package filtertune_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/combin/filtertune"
	"github.com/katalvlaran/combin/finder"
)

func TestSpec_ScorePerfectHit(t *testing.T) {
	spec := filtertune.DefaultSpec()
	// tau = 7600 * 1e-4 = 0.76, gain = (76000 * 1e-4) / 0.76 = 10.
	score, err := spec.Score([]float64{76000, 7600, 1e-4, 1e-4})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, score, 1e-9)
}

func TestSpec_ScoreDecaysWithDistance(t *testing.T) {
	spec := filtertune.DefaultSpec()
	hit, err := spec.Score([]float64{76000, 7600, 1e-4, 1e-4})
	require.NoError(t, err)
	// Double the time constant: score must drop strictly.
	miss, err := spec.Score([]float64{76000, 15200, 1e-4, 1e-4})
	require.NoError(t, err)
	assert.Less(t, miss, hit)
}

func TestSpec_ScoreArity(t *testing.T) {
	spec := filtertune.DefaultSpec()
	_, err := spec.Score([]float64{1, 2, 3})
	assert.ErrorIs(t, err, filtertune.ErrArity)
}

func TestSpec_Interpret(t *testing.T) {
	spec := filtertune.DefaultSpec()
	// tau = 100 * 0.25 = 25, gain = (1000 * 0.25) / 25 = 10.
	assert.Equal(t, "T=25, a=10", spec.Interpret([]float64{1000, 100, 0.25, 0.25}))
	assert.Equal(t, "invalid arity", spec.Interpret(nil))
}

func TestStandardStock(t *testing.T) {
	r := filtertune.StandardResistors(1)
	assert.Equal(t, 56, r.Distinct(), "8 mantissas across 7 decades")
	assert.Equal(t, 56, r.Total())

	c := filtertune.StandardCapacitors(2)
	assert.Equal(t, 30, c.Distinct(), "5 mantissas across 6 decades")
	assert.Equal(t, 60, c.Total())
}

func TestDecades(t *testing.T) {
	p := filtertune.Decades([]float64{1.5, 4.7}, 0, 2, 3)
	assert.Equal(t, 6, p.Distinct())
	assert.Equal(t, 3, p.Count(47))
	assert.Equal(t, 3, p.Count(1.5))
}

func TestNewFinder_Wiring(t *testing.T) {
	r := filtertune.Decades(filtertune.ResistorMantissas, 2, 4, 1)    // 24 values
	c := filtertune.Decades(filtertune.CapacitorMantissas, -5, -4, 1) // 10 values
	f, err := filtertune.NewFinder(filtertune.DefaultSpec(), r, c)
	require.NoError(t, err)
	assert.Equal(t, 24*24*10*10, f.Estimate())
}

func TestNewFinder_NilPool(t *testing.T) {
	f, err := filtertune.NewFinder(filtertune.DefaultSpec(), nil, filtertune.StandardCapacitors(1))
	assert.Nil(t, f)
	assert.ErrorIs(t, err, finder.ErrNilPool)
}

func TestSearch_FindsNearTarget(t *testing.T) {
	r := filtertune.Decades(filtertune.ResistorMantissas, 2, 4, 1)
	c := filtertune.Decades(filtertune.CapacitorMantissas, -5, -3, 1)
	f, err := filtertune.NewFinder(filtertune.DefaultSpec(), r, c)
	require.NoError(t, err)

	rs, err := f.Search(5)
	require.NoError(t, err)
	require.Equal(t, 5, rs.Len())

	// r2=130, c2=5.6e-3 gives tau=0.728; r1=13000, c1=5.6e-4 gives exactly
	// gain 10, so at least one near-perfect combination exists in this stock.
	assert.Greater(t, rs.Results[0].Score, 0.99)
	for i := 1; i < rs.Len(); i++ {
		assert.GreaterOrEqual(t, rs.Results[i-1].Score, rs.Results[i].Score)
	}

	// Shared stock: no result may use one physical part twice.
	for _, res := range rs.Results {
		assert.NotEqual(t, res.Values[0], res.Values[1], "r1 and r2 share stock")
		assert.NotEqual(t, res.Values[2], res.Values[3], "c1 and c2 share stock")
	}
}

func TestSearch_ParallelMatchesSequential(t *testing.T) {
	r := filtertune.Decades(filtertune.ResistorMantissas, 2, 3, 1)
	c := filtertune.Decades(filtertune.CapacitorMantissas, -4, -3, 1)
	f, err := filtertune.NewFinder(filtertune.DefaultSpec(), r, c)
	require.NoError(t, err)

	seq, err := f.Search(10)
	require.NoError(t, err)
	par, err := f.Search(10, finder.WithWorkers(4))
	require.NoError(t, err)
	assert.Equal(t, seq.Results, par.Results)
}
