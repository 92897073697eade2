package chem_test

import (
	"fmt"

	"github.com/katalvlaran/lvchem/chem"
	"github.com/katalvlaran/lvchem/core"
)

// ExampleAtom_OccupiedValency builds thiophene and shows the sulfur fallback.
func ExampleAtom_OccupiedValency() {
	s := chem.MustAtom("S")
	ring := []*chem.Atom{s, chem.MustAtom("C"), chem.MustAtom("C"), chem.MustAtom("C"), chem.MustAtom("C")}
	for i := range ring {
		_ = core.Connect(ring[i], ring[(i+1)%len(ring)], chem.MustBond(chem.AromaticOrder))
	}
	fmt.Println("S occupied:", s.OccupiedValency(), "free:", s.FreeValency())
	fmt.Println("C hydrogens:", ring[1].HydrogenCount())

	// Output:
	// S occupied: 2 free: 0
	// C hydrogens: 1
}

// ExampleAtom_SetMultiplicity shows automatic valence escalation.
func ExampleAtom_SetMultiplicity() {
	p := chem.MustAtom("P")
	for i := 0; i < 3; i++ {
		_ = core.Connect(p, chem.MustAtom("Cl"), chem.MustBond(1))
	}
	fmt.Println("valency:", p.Valency(), "free:", p.FreeValency())

	_ = p.SetMultiplicity(3)
	fmt.Println("valency:", p.Valency(), "free:", p.FreeValency())

	// Output:
	// valency: 3 free: 0
	// valency: 5 free: 0
}
