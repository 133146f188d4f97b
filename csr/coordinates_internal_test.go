package csr

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCoordinates_Bounds(t *testing.T) {
	t.Parallel()

	var c coordinates[int]
	require.False(t, c.has)

	c.add(3, 1)
	c.add(0, 7)
	require.True(t, c.has)
	require.Equal(t, 3, c.maxRow)
	require.Equal(t, 7, c.maxCol)
	require.Equal(t, 0, c.minID)

	require.NoError(t, c.addBulk(9, 2, []int{9, 4}, []int{2, -2}))
	require.Equal(t, 4, c.size())
	require.Equal(t, 9, c.maxRow)
	require.Equal(t, 7, c.maxCol)
	require.Equal(t, -2, c.minID)

	c.clear()
	require.False(t, c.has)
	require.Zero(t, c.size())
	require.GreaterOrEqual(t, cap(c.rows), 4)
}

func TestCoordinates_AddBulkMismatch(t *testing.T) {
	t.Parallel()

	var c coordinates[int]
	err := c.addBulk(1, 1, []int{0, 1}, []int{1})
	require.ErrorIs(t, err, ErrSizeMismatch)
	require.Zero(t, c.size())

	require.NoError(t, c.addBulk(0, 0, nil, nil))
	require.False(t, c.has)
}

func TestMergeEngine_SmallestRootWins(t *testing.T) {
	t.Parallel()

	e := newMergeEngine[int]()
	e.addGroup([]int{8, 5})
	e.addGroup([]int{9, 3})
	e.addGroup([]int{9, 8})
	require.True(t, e.dirty)

	for _, v := range []int{3, 5, 8, 9} {
		require.Equal(t, 3, e.find(v))
	}

	var pending coordinates[int]
	pending.add(9, 1)
	require.Equal(t, 2, e.apply(&pending, 0, false))
	require.False(t, e.dirty)
	require.Equal(t, []int{1}, pending.rows)
	require.Equal(t, []int{0}, pending.cols)
	require.Equal(t, 1, pending.maxRow)
}

func TestCompressed_PrepareRowGrouping(t *testing.T) {
	t.Parallel()

	var c compressed[int]
	c.prepareRowGrouping(3, []int{2, 0, 2, 2})
	// start[r+1] holds the first slot of row r.
	require.Equal(t, []int{4, 0, 1, 1}, c.start)

	c.groupByRow([]int{2, 0, 2, 2}, []int{7, 8, 9, 6})
	require.Equal(t, []int{0, 1, 1, 4}, c.start)
	require.Equal(t, []int{8, 7, 9, 6}, c.columns)
}
