package filtertune

import (
	"math"

	"github.com/katalvlaran/combin/finder"
)

// Sample stock tables: a thinned E-series selection, the kind of drawer
// inventory a small lab actually has. Mantissas repeat across decades.
var (
	// ResistorMantissas are the significand values of the stocked resistors.
	ResistorMantissas = []float64{1.3, 1.8, 3.0, 3.9, 5.1, 6.2, 6.8, 9.1}

	// CapacitorMantissas are the significand values of the stocked capacitors.
	CapacitorMantissas = []float64{1.2, 1.8, 2.7, 3.9, 5.6}
)

// Decades builds a pool holding every mantissa at every power of ten in
// [expLo, expHi], with count instances of each value. With count = 1 each
// exact part exists once, which is what makes shared-slot searches honest
// about limited stock.
func Decades(mantissas []float64, expLo, expHi, count int) *finder.Pool {
	p := finder.NewPool(nil)
	AddDecades(p, mantissas, expLo, expHi, count)

	return p
}

// AddDecades tops up an existing pool with mantissa·10^exp values for every
// exp in [expLo, expHi]. Use it to assemble pools spanning disjoint ranges,
// such as the pF and µF bands of the capacitor drawer.
func AddDecades(p *finder.Pool, mantissas []float64, expLo, expHi, count int) {
	for exp := expLo; exp <= expHi; exp++ {
		scale := math.Pow(10, float64(exp))
		for _, m := range mantissas {
			p.Add(m*scale, count)
		}
	}
}

// StandardResistors returns the sample resistor stock: ResistorMantissas
// across 1 Ω to 9.1 MΩ (decades 10^0..10^6), count instances of each part.
func StandardResistors(count int) *finder.Pool {
	return Decades(ResistorMantissas, 0, 6, count)
}

// StandardCapacitors returns the sample capacitor stock: CapacitorMantissas
// across the pF band (12 pF to 5.6 nF) and the µF band (12 µF to 5.6 mF),
// count instances of each part. The gap between the bands mirrors the usual
// hole in a parts drawer between film and electrolytic ranges.
func StandardCapacitors(count int) *finder.Pool {
	p := Decades(CapacitorMantissas, -11, -9, count)
	AddDecades(p, CapacitorMantissas, -5, -3, count)

	return p
}
