package chem

import "errors"

var (
	// ErrInvalidAtomSymbol indicates a symbol unknown to the periodic table.
	ErrInvalidAtomSymbol = errors.New("chem: invalid atom symbol")

	// ErrInvalidValue indicates an attribute value outside its domain.
	ErrInvalidValue = errors.New("chem: invalid attribute value")

	// ErrCoordinateArity indicates coordinates given as neither 2 nor 3 values.
	ErrCoordinateArity = errors.New("chem: wrong number of coordinates")
)
