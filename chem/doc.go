// Package chem specializes the core graph primitives for chemistry:
// ChemVertex (charge, multiplicity, valency, free sites, coordinates),
// Atom (element symbol, isotope, explicit hydrogens, valence reconciliation)
// and Bond (ordered endpoints, bond order, aromaticity, rendering type).
//
// What:
//
//   - Occupied valency: the bonding demand on a vertex. For a ChemVertex it
//     is the sum of incident bond orders, aromatic bonds counted as 1. For an
//     Atom it adds charge, multiplicity and explicit hydrogens, and counts
//     aromatic bonds alternately as 1, 2, 1, 2… falling back to 1 each when
//     the alternation overshoots the valency (sulfur in thiophene).
//   - Free valency: valency − occupied valency, memoized in the vertex cache.
//   - Valence escalation: RaiseValency moves to the next allowed valence of
//     the element; RaiseValencyToSensibleValue repeats until free valency is
//     non-negative or the element has nothing higher.
//
// Cache contract:
//
//	Every setter feeding occupied or free valency (charge, multiplicity,
//	valency, symbol, explicit hydrogens) clears the vertex cache. A Bond
//	notifies both endpoints through BondOrderChanged whenever its order
//	changes, and core clears caches on any incidence change.
//
// Capability interface:
//
//	Valenced is the closed capability set shared by every chemical vertex
//	kind (*ChemVertex, *Atom): occupied/free valency, free sites, matching.
//
// Errors:
//
//	ErrInvalidAtomSymbol - symbol not present in the periodic table.
//	ErrInvalidValue      - attribute out of range (isotope, hydrogens, order).
//	ErrCoordinateArity   - SetCoords called with neither 2 nor 3 values.
package chem
