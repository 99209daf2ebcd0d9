// Package combin is an in-memory toolkit for exhaustive combinatorial
// search over discrete parameter slots - enumerate every combination a
// set of limited-stock candidate values allows, score each one, and keep
// the best.
//
// 🚀 What is combin?
//
//	A small, deterministic library that brings together:
//		• Pools: ordered multisets of candidate values with instance counts
//		• Slots: named parameter positions, optionally sharing one pool
//		• Depth-first enumeration with guaranteed count restoration
//		• Bounded top-K selection over scored combinations
//		• Optional parallel search partitioned over the first slot
//
// ✨ Why choose combin?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – identical inputs always yield identical output
//   - Pure Go – no cgo, no hidden state between calls
//   - Pluggable – scoring and interpretation are caller-supplied closures
//
// Under the hood, everything is organized under two subpackages:
//
//	finder/     — Pool, Slot, Finder: enumeration engine + top-K selection
//	filtertune/ — worked caller: selecting RC filter components from E-series stock
//
// Quick sketch:
//
//	    r1 ─┐            ┌─ c1
//	         ├─ R pool    ├─ C pool
//	    r2 ─┘            └─ c2
//
//	two resistor slots compete for one shared resistor stock, two capacitor
//	slots for one shared capacitor stock; the finder tries every draw.
//
// Dive into examples/ for a runnable filter-tuning scenario.
//
//	go get github.com/katalvlaran/combin
package combin
