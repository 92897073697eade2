package chem_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvchem/chem"
	"github.com/katalvlaran/lvchem/core"
	"github.com/katalvlaran/lvchem/stereo"
)

func TestNewBond_OrderRange(t *testing.T) {
	for _, o := range []int{0, 5, -1} {
		_, err := chem.NewBond(o)
		require.ErrorIs(t, err, chem.ErrInvalidValue, "order %d", o)
	}
	for o := 1; o <= 4; o++ {
		b, err := chem.NewBond(o)
		require.NoError(t, err)
		assert.Equal(t, o, b.Order())
		assert.Equal(t, chem.BondNormal, b.Type())
	}
	assert.Panics(t, func() { chem.MustBond(7) })
}

func TestBond_AromaticOrderSemantics(t *testing.T) {
	b := chem.MustBond(2)
	assert.False(t, b.IsAromatic())

	require.NoError(t, b.SetOrder(4))
	assert.Equal(t, 4, b.Order())
	assert.True(t, b.IsAromatic())

	// A concrete order wins over the unlocalized state but keeps the flag.
	require.NoError(t, b.SetOrder(1))
	assert.Equal(t, 1, b.Order())
	assert.True(t, b.IsAromatic())

	require.NoError(t, b.SetOrder(4))
	assert.Equal(t, 4, b.Order())

	require.ErrorIs(t, b.SetOrder(9), chem.ErrInvalidValue)
	assert.Equal(t, 4, b.Order(), "rejected order must not stick")

	b.SetAromaticity(chem.NotAromatic)
	assert.Equal(t, 0, b.Order(), "no explicit order and no aromatic flag")
	assert.Equal(t, chem.NotAromatic, b.Aromaticity())
}

func TestBond_SetOrderNotifiesEndpoints(t *testing.T) {
	a, c := chem.MustAtom("C"), chem.MustAtom("C")
	b := link(t, a, c, 1)
	assert.Equal(t, 3, a.FreeValency())
	assert.Equal(t, 3, c.FreeValency())

	require.NoError(t, b.SetOrder(3))
	assert.Equal(t, 1, a.FreeValency())
	assert.Equal(t, 1, c.FreeValency())

	require.NoError(t, b.SetOrder(4))
	assert.Equal(t, 3, a.FreeValency())

	// Generic chemical vertices are notified too.
	v := chem.NewChemVertex()
	require.NoError(t, v.SetValency(2))
	b2 := link(t, v, a, 1)
	assert.Equal(t, 1, v.FreeValency())
	require.NoError(t, b2.SetOrder(2))
	assert.Equal(t, 0, v.FreeValency())
}

func TestBond_WithOptions(t *testing.T) {
	b, err := chem.NewBond(1, chem.WithType(chem.BondWedge), chem.WithAromaticity(chem.Aromatic))
	require.NoError(t, err)
	assert.Equal(t, chem.BondWedge, b.Type())
	assert.Equal(t, 1, b.Order())
	assert.True(t, b.IsAromatic())

	assert.Panics(t, func() { chem.WithType(chem.BondType('x')) })

	require.ErrorIs(t, b.SetType(chem.BondType('q')), chem.ErrInvalidValue)
	require.NoError(t, b.SetType(chem.BondHatch))
	assert.Equal(t, "h", b.Type().String())
}

func TestBond_Length(t *testing.T) {
	a := chem.MustAtom("C", chem.WithCoords(0, 0))
	c := chem.MustAtom("C")
	b := link(t, a, c, 1)
	assert.Zero(t, b.Length(), "missing coordinates give zero")

	require.NoError(t, c.SetCoords(3, 4, 12))
	assert.InDelta(t, 5.0, b.Length(), 1e-9, "length is measured in 2D")

	assert.Zero(t, chem.MustBond(1).Length())
}

func TestBond_AtomsAndString(t *testing.T) {
	b := chem.MustBond(1)
	assert.Equal(t, "bond, no vertices set", b.String())
	_, _, ok := b.Atoms()
	assert.False(t, ok)

	n, o := chem.MustAtom("N"), chem.MustAtom("O")
	require.NoError(t, core.Connect(n, o, b))
	x, y, ok := b.Atoms()
	require.True(t, ok)
	assert.Same(t, n, x)
	assert.Same(t, o, y)
	assert.Equal(t, "bond between atom 'N' atom 'O'", b.String())

	other, ok := b.Other(n)
	require.True(t, ok)
	assert.Same(t, o, other)
}

func TestBond_CopyAndMatches(t *testing.T) {
	b := link(t, chem.MustAtom("C"), chem.MustAtom("C"), 2)
	require.NoError(t, b.SetType(chem.BondBold))
	b.SetDisconnected(true)

	cp := b.Copy()
	assert.Nil(t, cp.Vertices(), "copies carry no endpoints")
	assert.Equal(t, 2, cp.Order())
	assert.Equal(t, chem.BondBold, cp.Type())
	assert.True(t, cp.Disconnected())
	assert.True(t, b.Matches(cp))
	assert.False(t, b.Matches(chem.MustBond(1)))
	assert.False(t, b.Matches(nil))
}

func TestBond_Stereochemistry(t *testing.T) {
	a, c := chem.MustAtom("C"), chem.MustAtom("C")
	b := link(t, a, c, 2)
	f1, f2 := chem.MustAtom("F"), chem.MustAtom("F")
	link(t, a, f1, 1)
	link(t, c, f2, 1)

	rec, err := stereo.NewCisTrans(b, []core.Node{f1, a, c, f2}, stereo.SameSide)
	require.NoError(t, err)
	b.SetStereochemistry(rec)
	assert.Same(t, rec, b.Stereochemistry())

	end, err := rec.GetOtherEnd(f1)
	require.NoError(t, err)
	assert.Same(t, f2, end)

	a.SetStereochemistry(nil)
	assert.Nil(t, a.Stereochemistry())
}
