// Package filtertune is a worked caller of finder: selecting discrete RC
// filter components from limited E-series stock so that the filter's time
// constant and gain ratio approach a design target.
//
// The circuit model has four component slots, r1, r2, c1, c2, where the two
// resistor slots compete for one shared resistor stock and the two capacitor
// slots for one shared capacitor stock. A combination is scored by how close
//
//	τ = r2·c2            (time constant, seconds)
//	a = (r1·c1)/(r2·c2)  (gain ratio, dimensionless)
//
// come to the targets in Spec, via a Gaussian proximity in both terms. The
// score reaches 1 only when both targets are hit exactly and decays smoothly
// with the squared error.
//
// Key entry points:
//   - DefaultSpec(): τ = 0.76 s, a = 10
//   - StandardResistors / StandardCapacitors: sample stock tables
//   - NewFinder(spec, resistors, capacitors): the wired four-slot finder
//
// See examples/ at the module root for a runnable search.
package filtertune
