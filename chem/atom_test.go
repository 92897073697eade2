// Package chem_test verifies valence reconciliation and bond semantics.
//
// Purpose:
//   - free = valency − occupied after every mutation (no stale cache).
//   - Aromatic alternation with the single-count fallback.
//   - Charge acceptance, multiplicity escalation, free-site capping.
package chem_test

import (
	"testing"

	"github.com/go-logr/logr/testr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvchem/chem"
	"github.com/katalvlaran/lvchem/core"
	"github.com/katalvlaran/lvchem/periodic"
)

// link joins a and b with a bond of the given order.
func link(t *testing.T, a, b core.Node, order int) *chem.Bond {
	t.Helper()
	bd, err := chem.NewBond(order)
	require.NoError(t, err)
	require.NoError(t, core.Connect(a, b, bd))
	return bd
}

// ring closes the atoms into a ring of bonds with the given order.
func ring(t *testing.T, order int, atoms ...*chem.Atom) []*chem.Bond {
	t.Helper()
	bonds := make([]*chem.Bond, len(atoms))
	for i := range atoms {
		bonds[i] = link(t, atoms[i], atoms[(i+1)%len(atoms)], order)
	}
	return bonds
}

// consistent asserts the free-valency identity.
func consistent(t *testing.T, a *chem.Atom) {
	t.Helper()
	assert.Equal(t, a.Valency()-a.OccupiedValency(), a.FreeValency(), "%s", a)
}

func TestNewAtom_Defaults(t *testing.T) {
	a, err := chem.NewAtom("C")
	require.NoError(t, err)
	assert.Equal(t, "C", a.Symbol())
	assert.Equal(t, 6, a.Ordinal())
	assert.Equal(t, 4, a.Valency())
	assert.Equal(t, 1, a.Multiplicity())
	assert.Equal(t, 0, a.Charge())
	assert.Equal(t, 4, a.FreeValency())
	assert.Equal(t, 4, a.HydrogenCount())
	assert.Nil(t, a.Coords())
	assert.NotEmpty(t, a.ID)
	assert.Equal(t, "atom 'C'", a.String())

	_, hasIso := a.Isotope()
	assert.False(t, hasIso)
}

func TestNewAtom_InvalidSymbol(t *testing.T) {
	_, err := chem.NewAtom("Xx")
	require.ErrorIs(t, err, chem.ErrInvalidAtomSymbol)

	a := chem.MustAtom("N")
	require.ErrorIs(t, a.SetSymbol("Qq"), chem.ErrInvalidAtomSymbol)
	assert.Equal(t, "N", a.Symbol(), "failed SetSymbol leaves the atom unchanged")
	assert.Equal(t, 3, a.Valency())

	assert.Panics(t, func() { chem.MustAtom("Xx") })
}

func TestNewAtom_InvalidValues(t *testing.T) {
	_, err := chem.NewAtom("C", chem.WithIsotope(-1))
	require.ErrorIs(t, err, chem.ErrInvalidValue)

	_, err = chem.NewAtom("C", chem.WithExplicitHydrogens(-2))
	require.ErrorIs(t, err, chem.ErrInvalidValue)

	_, err = chem.NewAtom("C", chem.WithCoords(1))
	require.ErrorIs(t, err, chem.ErrCoordinateArity)

	a := chem.MustAtom("C")
	require.ErrorIs(t, a.SetValency(3), chem.ErrInvalidValue)
	require.ErrorIs(t, a.SetMultiplicity(0), chem.ErrInvalidValue)

	assert.Panics(t, func() { chem.WithTable(nil) })
}

func TestAtom_Options(t *testing.T) {
	a, err := chem.NewAtom("C",
		chem.WithTable(periodic.Default()),
		chem.WithCharge(-1),
		chem.WithIsotope(13),
		chem.WithExplicitHydrogens(1),
		chem.WithCoords(1, 2, 3),
	)
	require.NoError(t, err)
	assert.Equal(t, -1, a.Charge())
	iso, ok := a.Isotope()
	assert.True(t, ok)
	assert.Equal(t, 13, iso)
	assert.Equal(t, 1, a.ExplicitHydrogens())
	assert.Equal(t, []float64{1, 2, 3}, a.Coords())

	a.ClearIsotope()
	_, ok = a.Isotope()
	assert.False(t, ok)
}

func TestAtom_SetSymbolResetsValency(t *testing.T) {
	a := chem.MustAtom("S")
	require.NoError(t, a.SetValency(6))
	assert.Equal(t, 6, a.FreeValency())

	require.NoError(t, a.SetSymbol("O"))
	assert.Equal(t, 2, a.Valency())
	assert.Equal(t, 8, a.Ordinal())
	assert.Equal(t, 2, a.FreeValency())
}

func TestAtom_FreeValencyNeverStale(t *testing.T) {
	c := chem.MustAtom("C")
	o := chem.MustAtom("O")
	consistent(t, c)

	bd := link(t, c, o, 1)
	consistent(t, c)
	assert.Equal(t, 3, c.FreeValency())

	require.NoError(t, bd.SetOrder(2))
	consistent(t, c)
	assert.Equal(t, 2, c.FreeValency())
	assert.Equal(t, 0, o.FreeValency())

	c.SetCharge(1)
	consistent(t, c)
	assert.Equal(t, 1, c.FreeValency())

	require.NoError(t, c.SetExplicitHydrogens(1))
	consistent(t, c)
	assert.Equal(t, 0, c.FreeValency())

	bd.SetDisconnected(true)
	consistent(t, c)
	assert.Equal(t, 2, c.FreeValency())
	assert.Equal(t, 2, o.FreeValency())

	bd.SetDisconnected(false)
	require.NoError(t, core.Detach(bd))
	consistent(t, c)
	assert.Equal(t, 2, c.FreeValency())

	require.NoError(t, c.SetMultiplicity(2))
	consistent(t, c)
	assert.Equal(t, 1, c.FreeValency())
}

func TestAtom_AromaticAlternation(t *testing.T) {
	// Benzene: each carbon alternates 1 + 2 = 3 and keeps one hydrogen.
	var benzene []*chem.Atom
	for i := 0; i < 6; i++ {
		benzene = append(benzene, chem.MustAtom("C"))
	}
	bonds := ring(t, chem.AromaticOrder, benzene...)
	for _, a := range benzene {
		assert.Equal(t, 3, a.OccupiedValency())
		assert.Equal(t, 1, a.HydrogenCount())
		assert.Equal(t, 2, a.HighestPossibleFreeValency())
		assert.True(t, a.HasAromaticBonds())
	}
	for _, b := range bonds {
		assert.Equal(t, 4, b.Order())
		assert.True(t, b.IsAromatic())
	}
}

func TestAtom_ThiopheneSulfurFallsBackToSingle(t *testing.T) {
	s := chem.MustAtom("S")
	ring(t, chem.AromaticOrder, s, chem.MustAtom("C"), chem.MustAtom("C"), chem.MustAtom("C"), chem.MustAtom("C"))

	// Alternating would give 1 + 2 = 3 > 2; single counting gives 2.
	assert.Equal(t, 2, s.Valency())
	assert.Equal(t, 2, s.OccupiedValency())
	assert.Equal(t, 0, s.FreeValency())
	consistent(t, s)
}

func TestAtom_ChargeAcceptance(t *testing.T) {
	tests := []struct {
		name   string
		symbol string
		charge int
		free   int
	}{
		{"ammonium", "N", 1, 4},
		{"hydronium", "O", 1, 3},
		{"borohydride", "B", -1, 4},
		{"carbocation", "C", 1, 3},
		{"carbanion", "C", -1, 3},
		{"hydroxide", "O", -1, 1},
		{"dication", "C", 2, 2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := chem.MustAtom(tc.symbol, chem.WithCharge(tc.charge))
			assert.Equal(t, tc.free, a.FreeValency())
			consistent(t, a)
		})
	}
}

func TestAtom_AmmoniumWithExplicitNeighbors(t *testing.T) {
	n := chem.MustAtom("N")
	for i := 0; i < 4; i++ {
		link(t, n, chem.MustAtom("H"), 1)
	}
	assert.Equal(t, -1, n.FreeValency(), "neutral nitrogen is over-occupied")

	n.SetCharge(1)
	assert.Equal(t, 3, n.Valency())
	assert.Equal(t, 0, n.FreeValency())
}

func TestAtom_AcceptanceOnlyAtListedValency(t *testing.T) {
	// Nitrogen at valency 5 is above its cation limit of 3.
	n := chem.MustAtom("N")
	require.NoError(t, n.SetValency(5))
	n.SetCharge(1)
	assert.Equal(t, 4, n.FreeValency())
}

func TestAtom_MultiplicityEscalatesValency(t *testing.T) {
	s := chem.MustAtom("S", chem.WithLogger(testr.New(t)))
	link(t, s, chem.MustAtom("C"), 1)
	link(t, s, chem.MustAtom("C"), 1)
	assert.Equal(t, 0, s.FreeValency())

	require.NoError(t, s.SetMultiplicity(3))
	assert.Equal(t, 4, s.Valency())
	assert.Equal(t, 0, s.FreeValency())

	// Escalation never lowers.
	require.NoError(t, s.SetMultiplicity(1))
	assert.Equal(t, 4, s.Valency())
	assert.Equal(t, 2, s.FreeValency())
	consistent(t, s)
}

func TestAtom_EscalationExhausted(t *testing.T) {
	f := chem.MustAtom("F", chem.WithLogger(testr.New(t)))
	link(t, f, chem.MustAtom("C"), 1)

	require.NoError(t, f.SetMultiplicity(3))
	assert.Equal(t, 1, f.Valency(), "no higher valence for fluorine")
	assert.Equal(t, -2, f.FreeValency())
	assert.False(t, f.RaiseValency())
}

func TestAtom_RaiseValency(t *testing.T) {
	cl := chem.MustAtom("Cl")
	for _, want := range []int{3, 5, 7} {
		require.True(t, cl.RaiseValency())
		assert.Equal(t, want, cl.Valency())
	}
	assert.False(t, cl.RaiseValency())
	assert.Equal(t, 7, cl.Valency())
}

func TestAtom_FreeSitesCapped(t *testing.T) {
	c := chem.MustAtom("C")
	link(t, c, chem.MustAtom("C"), 2)

	c.SetFreeSites(10)
	assert.Equal(t, 2, c.FreeSites())
	assert.Equal(t, 10, c.RequestedFreeSites())

	c.SetFreeSites(1)
	assert.Equal(t, 1, c.FreeSites())
}

func TestAtom_ExplicitHydrogens(t *testing.T) {
	n := chem.MustAtom("N", chem.WithExplicitHydrogens(2))
	link(t, n, chem.MustAtom("C"), 1)
	assert.Equal(t, 3, n.OccupiedValency())
	assert.Equal(t, 0, n.FreeValency())
	assert.Equal(t, 2, n.HydrogenCount())
}

func TestAtom_OxidationNumber(t *testing.T) {
	methane := chem.MustAtom("C")
	assert.Equal(t, -4, methane.OxidationNumber())

	co2 := chem.MustAtom("C")
	link(t, co2, chem.MustAtom("O"), 2)
	link(t, co2, chem.MustAtom("O"), 2)
	assert.Equal(t, 4, co2.OxidationNumber())

	water := chem.MustAtom("O")
	assert.Equal(t, -2, water.OxidationNumber())

	// Same-element neighbors do not count: ethane carbon is −3.
	ethane := chem.MustAtom("C")
	link(t, ethane, chem.MustAtom("C"), 1)
	assert.Equal(t, -3, ethane.OxidationNumber())
}

func TestAtom_ElectronPairs(t *testing.T) {
	assert.Equal(t, 2.0, chem.MustAtom("O").ElectronPairs())
	assert.Equal(t, 1.0, chem.MustAtom("N").ElectronPairs())
	assert.Equal(t, 0.0, chem.MustAtom("C").ElectronPairs())

	o := chem.MustAtom("O")
	link(t, o, chem.MustAtom("C"), 2)
	assert.Equal(t, 2.0, o.ElectronPairs())
}

func TestAtom_Lookups(t *testing.T) {
	c := chem.MustAtom("C")
	en, ok := c.Electronegativity()
	assert.True(t, ok)
	assert.InDelta(t, 2.55, en, 1e-9)
	assert.InDelta(t, 12.011, c.Weight(), 1e-9)

	_, ok = chem.MustAtom("He").Electronegativity()
	assert.False(t, ok)

	v := chem.NewChemVertex()
	assert.Zero(t, v.Weight(), "generic vertices weigh nothing")
	assert.Zero(t, v.HydrogenCount())
}

func TestAtom_FormulaDict(t *testing.T) {
	assert.Equal(t, map[string]int{"C": 1, "H": 4}, chem.MustAtom("C").FormulaDict())
	assert.Equal(t, map[string]int{"O": 1, "H": 3}, chem.MustAtom("O", chem.WithExplicitHydrogens(1), chem.WithCharge(1)).FormulaDict())

	f := chem.MustAtom("F")
	link(t, f, chem.MustAtom("C"), 1)
	assert.Equal(t, map[string]int{"F": 1}, f.FormulaDict())

	assert.Equal(t, map[string]int{"H": 2}, chem.MustAtom("H").FormulaDict())
}

func TestAtom_Matches(t *testing.T) {
	c1, c2 := chem.MustAtom("C"), chem.MustAtom("C")
	assert.True(t, c1.Matches(c2))
	assert.False(t, c1.Matches(chem.MustAtom("N")))

	charged := chem.MustAtom("C", chem.WithCharge(1))
	assert.False(t, c1.Matches(charged), "charge compared when the other side is charged")
	assert.True(t, charged.Matches(c1), "uncharged pattern matches any charge")

	assert.False(t, c1.Matches(chem.NewChemVertex()))
	assert.True(t, chem.NewChemVertex().Matches(c1))
}

func TestAtom_Copy(t *testing.T) {
	a := chem.MustAtom("N",
		chem.WithCharge(1),
		chem.WithIsotope(15),
		chem.WithExplicitHydrogens(1),
		chem.WithCoords(1, 2),
	)
	a.Value = "payload"
	require.NoError(t, a.SetMultiplicity(2))
	a.SetFreeSites(1)
	link(t, a, chem.MustAtom("C"), 1)

	cp := a.Copy()
	assert.NotSame(t, a, cp)
	assert.NotEqual(t, a.ID, cp.ID)
	assert.Equal(t, "N", cp.Symbol())
	assert.Equal(t, 1, cp.Charge())
	assert.Equal(t, 2, cp.Multiplicity())
	assert.Equal(t, a.Valency(), cp.Valency())
	assert.Equal(t, 1, cp.ExplicitHydrogens())
	assert.Equal(t, []float64{1, 2, 0}, cp.Coords())
	assert.Equal(t, "payload", cp.Value)
	iso, _ := cp.Isotope()
	assert.Equal(t, 15, iso)

	assert.Equal(t, 0, cp.Degree(), "bonds are not copied")
	consistent(t, cp)
}
