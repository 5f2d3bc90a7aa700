package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mbogneng-Junior/Ro-arbre-Genealogique-sub000/dfs"
	"github.com/Mbogneng-Junior/Ro-arbre-Genealogique-sub000/family"
)

func TestLineageCycles_None(t *testing.T) {
	assert.Empty(t, dfs.LineageCycles(diamond()))
	assert.Nil(t, dfs.LineageCycles(nil))
}

func TestLineageCycles(t *testing.T) {
	g := family.NewGraph(
		[]family.Person{{ID: "c"}, {ID: "a"}, {ID: "b"}, {ID: "s"}, {ID: "m"}},
		[]family.Relationship{
			{ID: "1", From: "c", To: "a", Kind: family.ParentChild},
			{ID: "2", From: "a", To: "b", Kind: family.ParentChild},
			{ID: "3", From: "b", To: "c", Kind: family.ParentChild},
			{ID: "4", From: "s", To: "s", Kind: family.ParentChild},
			// spouses are not lineage
			{ID: "5", From: "m", To: "s", Kind: family.Spouse},
			{ID: "6", From: "s", To: "m", Kind: family.Spouse},
		},
	)
	cycles := dfs.LineageCycles(g)
	assert.Equal(t, [][]string{{"a", "b", "c", "a"}, {"s", "s"}}, cycles)
}

func TestDetectCycles(t *testing.T) {
	_, _, err := dfs.DetectCycles(nil)
	assert.ErrorIs(t, err, dfs.ErrViewNil)

	g := family.NewGraph(
		[]family.Person{{ID: "a"}, {ID: "b"}},
		[]family.Relationship{{ID: "1", From: "a", To: "b", Kind: family.Other}},
	)
	found, cycles, err := dfs.DetectCycles(family.BuildAdjacency(g))
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, cycles)

	// a bidirectional view closes every pair
	found, cycles, err = dfs.DetectCycles(family.BuildAdjacency(g, family.WithConnectivity()))
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, [][]string{{"a", "b", "a"}}, cycles)
}
