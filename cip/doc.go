// Package cip ranks the neighbors of an atom by Cahn-Ingold-Prelog
// precedence and decides, from connectivity alone, whether the atom is a
// chirality center.
//
// What:
//
//   - Sequence is the layered view of the molecule as seen from one atom
//     moving away from the atom it came from. Layer 0 is the atom itself;
//     each later layer concatenates the next layer of every branch, branches
//     ordered by their accumulated atomic numbers (highest first).
//   - Cursor flattens a Sequence into a stream of ordinals separated by Gap
//     markers, one Gap after each layer. Once the Sequence is exhausted the
//     Cursor yields Gap forever.
//   - RankNeighbors opens one Cursor per neighbor of a center and pulls one
//     token from each per round until the accumulated histories are all
//     distinct, or until every cursor is exhausted.
//   - IsChiral applies the same rounds to a center with at least four
//     neighbors; two branches still tied after both are exhausted mean the
//     center is not chiral.
//
// Rings:
//
//	Each neighbor's branch is laid out once as a breadth-first tree
//	(bfs.BFS, the center filtered out). Every atom is entered at most once,
//	at its shortest distance; the branch that would revisit it ends there.
//	A plain ring is still walked once in each direction, because every
//	neighbor gets its own tree, and fused or bridged systems cost O(V + E)
//	per neighbor instead of one walk per simple path.
//
// Limitations:
//
//	Only connectivity is considered. Bond multiplicity is not duplicated,
//	and centers with fewer than four neighbors (N, P with a lone pair) are
//	never reported chiral.
//
// Options:
//
//	WithContext   - cancel long rankings.
//	WithMaxRounds - cap the number of rounds (0: unlimited).
//	WithMaxDepth  - cap the depth of every branch (0: unlimited).
//	WithLogger    - V(2) per round, V(1) per outcome.
//
// Errors:
//
//	ErrNilAtom         - nil center.
//	ErrOptionViolation - invalid option (e.g. negative round or depth limit).
//	ErrRoundLimit      - MaxRounds reached before a decision.
package cip
