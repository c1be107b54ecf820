package treemis_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/editorials/treemis"
)

// TestNewTree_Basics checks sizes and adjacency bookkeeping.
func TestNewTree_Basics(t *testing.T) {
	tr, err := treemis.NewTree(4)
	require.NoError(t, err)
	assert.Equal(t, 4, tr.Len())
	assert.Equal(t, 0, tr.EdgeCount())

	require.NoError(t, tr.AddEdge(1, 2))
	require.NoError(t, tr.AddEdge(1, 3))
	require.NoError(t, tr.AddEdge(3, 4))
	assert.Equal(t, 3, tr.EdgeCount())

	nb, err := tr.Neighbors(1)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, nb)

	nb, err = tr.Neighbors(4)
	require.NoError(t, err)
	assert.Equal(t, []int{3}, nb)

	// the returned slice is a copy
	nb[0] = 99
	nb, _ = tr.Neighbors(4)
	assert.Equal(t, []int{3}, nb)
}

// TestTree_RejectsBadIDs covers the bounds checks.
func TestTree_RejectsBadIDs(t *testing.T) {
	_, err := treemis.NewTree(0)
	assert.ErrorIs(t, err, treemis.ErrInvalidNodeCount)

	tr, err := treemis.NewTree(2)
	require.NoError(t, err)
	assert.ErrorIs(t, tr.AddEdge(0, 1), treemis.ErrNodeOutOfRange)
	assert.ErrorIs(t, tr.AddEdge(1, 3), treemis.ErrNodeOutOfRange)
	assert.ErrorIs(t, tr.AddEdge(2, 2), treemis.ErrSelfLoop)
	assert.Equal(t, 0, tr.EdgeCount(), "rejected edges are not stored")

	_, err = tr.Neighbors(5)
	assert.ErrorIs(t, err, treemis.ErrNodeOutOfRange)
}
