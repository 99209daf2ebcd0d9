package filtertune

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/combin/finder"
)

// ErrArity is returned by Spec.Score when the value slice does not hold
// exactly the four component values r1, r2, c1, c2.
var ErrArity = errors.New("filtertune: want exactly 4 values (r1, r2, c1, c2)")

// Spec is the design target for the filter.
type Spec struct {
	// TargetTau is the desired time constant r2·c2, in seconds.
	TargetTau float64

	// TargetGain is the desired gain ratio (r1·c1)/(r2·c2).
	TargetGain float64
}

// DefaultSpec returns the reference tuning target: τ = 0.76 s, gain 10.
func DefaultSpec() Spec {
	return Spec{TargetTau: 0.76, TargetGain: 10}
}

// proximity maps the distance between value and target to (0, 1], peaking at
// 1 when value == target and decaying as exp(-(value-target)²).
func proximity(value, target float64) float64 {
	d := value - target
	return math.Exp(-d * d)
}

// Score rates one (r1, r2, c1, c2) combination as the product of two
// Gaussian proximities: time constant to TargetTau and gain ratio to
// TargetGain. It satisfies finder.ScoreFunc.
func (s Spec) Score(values []float64) (float64, error) {
	if len(values) != 4 {
		return 0, ErrArity
	}
	r1, r2, c1, c2 := values[0], values[1], values[2], values[3]

	tau := r2 * c2
	gain := (r1 * c1) / tau

	return proximity(tau, s.TargetTau) * proximity(gain, s.TargetGain), nil
}

// Interpret renders the derived circuit quantities for one combination.
// It satisfies finder.InterpretFunc.
func (s Spec) Interpret(values []float64) string {
	if len(values) != 4 {
		return "invalid arity"
	}
	r1, r2, c1, c2 := values[0], values[1], values[2], values[3]
	tau := r2 * c2

	return fmt.Sprintf("T=%g, a=%g", tau, (r1*c1)/tau)
}

// NewFinder wires the four-slot search: r1 and r2 draw from the shared
// resistor stock, c1 and c2 from the shared capacitor stock. Passing the same
// *Pool to both slots of a kind is what makes the search respect limited
// stock: with single-instance pools, r1 and r2 can never pick the same part.
func NewFinder(spec Spec, resistors, capacitors *finder.Pool) (*finder.Finder, error) {
	slots := []finder.Slot{
		finder.NewSlot("r1", resistors),
		finder.NewSlot("r2", resistors),
		finder.NewSlot("c1", capacitors),
		finder.NewSlot("c2", capacitors),
	}

	return finder.NewFinder(slots, spec.Score, spec.Interpret)
}
