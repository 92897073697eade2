// Package lvchem models molecules as attributed graphs and derives the
// chemistry that follows from the graph: valence occupancy, aromatic bond
// handling and Cahn-Ingold-Prelog neighbor ranking for stereocenters.
//
// 🚀 What is lvchem?
//
//	An in-memory, single-threaded library that brings together:
//		• Graph primitives: vertices & edges with insertion-ordered incidences,
//		  soft-deleted (disconnected) edges and a per-vertex derived-value cache
//		• Chemistry vertices: charge, multiplicity, valency, free sites, coordinates
//		• Atoms: element lookup, explicit hydrogens, valence reconciliation with
//		  aromatic alternation and charge acceptance
//		• Bonds: orders 1–3, unlocalized aromatic order 4, rendering types
//		• CIP ranking: layered neighbor sequences and connectivity chirality
//		• Stereochemistry records: cis/trans and tetrahedral
//		• Periodic table: HCL-defined, embedded default, user overlays
//
// Under the hood, everything is organized in subpackages:
//
//	core/     — Vertex, Edge, Cache, Connect/Detach
//	periodic/ — Element, Table, HCL loader and the embedded default table
//	chem/     — ChemVertex, Atom, Bond
//	cip/      — Sequence, Cursor, RankNeighbors, IsChiral
//	stereo/   — CisTrans, Tetrahedral, ExplicitHydrogen
//	cmd/lvchem — command-line element and atom inspection
//
// Quick ASCII example (bromochlorofluoromethane):
//
//	      H
//	      │
//	 F ── C ── Cl
//	      │
//	      Br
//
// The carbon has four neighbors of different elements, so cip.IsChiral
// reports true after a single round.
//
//	go get github.com/katalvlaran/lvchem
package lvchem
