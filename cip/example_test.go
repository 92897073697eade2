package cip_test

import (
	"fmt"

	"github.com/katalvlaran/lvchem/chem"
	"github.com/katalvlaran/lvchem/cip"
	"github.com/katalvlaran/lvchem/core"
)

// ExampleIsChiral checks bromochlorofluoromethane and dichlorofluoromethane.
func ExampleIsChiral() {
	build := func(symbols ...string) *chem.Atom {
		c := chem.MustAtom("C")
		for _, s := range symbols {
			_ = core.Connect(c, chem.MustAtom(s), chem.MustBond(1))
		}
		return c
	}

	chiral, _ := cip.IsChiral(build("H", "F", "Cl", "Br"))
	fmt.Println("CHFClBr:", chiral)

	chiral, _ = cip.IsChiral(build("H", "F", "Cl", "Cl"))
	fmt.Println("CHFCl2:", chiral)

	// Output:
	// CHFClBr: true
	// CHFCl2: false
}

// ExampleRankNeighbors lists substituents by precedence.
func ExampleRankNeighbors() {
	c := chem.MustAtom("C")
	for _, s := range []string{"H", "O", "N", "C"} {
		_ = core.Connect(c, chem.MustAtom(s), chem.MustBond(1))
	}
	r, _ := cip.RankNeighbors(c)
	for _, a := range r.Order {
		fmt.Print(a.Symbol(), " ")
	}
	fmt.Println(r.Unique)

	// Output:
	// O N C H true
}
