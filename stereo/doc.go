// Package stereo holds stereochemistry records: value objects that pin the
// spatial configuration of a stereocenter to an ordered list of exactly four
// participants.
//
// Variants:
//
//	CisTrans    - double-bond configuration. The center is the bond; the
//	              references are (substituent, end1, end2, substituent), and
//	              the value is Undefined, OppositeSide or SameSide.
//	Tetrahedral - chirality center. The center is the atom; the references
//	              are the four substituents in observation order (the last
//	              one is placed behind, the first three are observed), and
//	              the value is Undefined, Clockwise or Anticlockwise.
//
// References are core.Node values. Hydrogens that are not graph vertices are
// represented by *ExplicitHydrogen placeholders; any two placeholders are
// interchangeable in membership tests.
//
// The records do not compute their value: it is assigned by a geometry-aware
// caller after connectivity analysis (see package cip) has established that
// the center is a stereocenter.
//
// Errors:
//
//	ErrReferenceCount   - reference list length is not 4 (message names the count).
//	ErrInvalidValue     - value outside the variant's set (message names the value).
//	ErrMissingReference - GetOtherEnd asked about a node the record does not reference.
package stereo
