package csr_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/csrgraph/csr"
)

// MergeSuite exercises vertex group merging and renumbering.
type MergeSuite struct {
	suite.Suite
}

// TestCollapseAdjacentPair merges the two middle vertices of a 4-chain.
func (s *MergeSuite) TestCollapseAdjacentPair() {
	g := csr.NewGraph[int]()
	for rep := 0; rep < 2; rep++ {
		addChain(g, 0, 3)
	}
	g.AddVertexGroup([]int{1, 2})

	require.Equal(s.T(), 3, g.ApplyVertexMerges())
	require.Equal(s.T(), 0, g.FinalVertexID(0))
	require.Equal(s.T(), 1, g.FinalVertexID(1))
	require.Equal(s.T(), 1, g.FinalVertexID(2))
	require.Equal(s.T(), 2, g.FinalVertexID(3))

	require.NoError(s.T(), g.Compress(3, false))
	require.Equal(s.T(), []int{0, 1, 3, 4}, g.StartPointers())
	require.Equal(s.T(), []int{1, 0, 2, 1}, g.ColumnIndices())
}

// TestGroupToSharedNeighbour collapses three sources of the same target.
func (s *MergeSuite) TestGroupToSharedNeighbour() {
	g := csr.NewGraph[uint32]()
	g.AddConnection(1, 9)
	g.AddConnection(2, 9)
	g.AddConnection(3, 9)
	g.AddVertexGroup([]uint32{1, 2, 3})

	require.Equal(s.T(), 2, g.ApplyVertexMerges())
	require.Equal(s.T(), 3, g.NumPendingConnections())
	require.NoError(s.T(), g.Compress(2, false))
	require.Equal(s.T(), []int{0, 1, 1}, g.StartPointers())
	require.Equal(s.T(), []uint32{1}, g.ColumnIndices())
}

// TestCompressAppliesDeclaredGroups relies on Compress to run the merge.
func (s *MergeSuite) TestCompressAppliesDeclaredGroups() {
	g := csr.NewGraph[int]()
	addChain(g, 0, 3)
	g.AddVertexGroup([]int{1, 2})

	require.NoError(s.T(), g.Compress(3, false))
	require.Equal(s.T(), []int{0, 1, 3, 4}, g.StartPointers())
	require.Equal(s.T(), []int{1, 0, 2, 1}, g.ColumnIndices())
}

// TestRepeatedApplyComposes applies merges twice with new data in between.
func (s *MergeSuite) TestRepeatedApplyComposes() {
	g := csr.NewGraph[int]()
	g.AddConnection(0, 5)
	g.AddConnection(5, 0)
	g.AddConnection(3, 7)
	g.AddVertexGroup([]int{3, 5})
	require.Equal(s.T(), 3, g.ApplyVertexMerges())
	require.Equal(s.T(), 2, g.FinalVertexID(7))

	g.AddConnection(7, 9)
	g.AddVertexGroup([]int{0, 7})
	require.Equal(s.T(), 3, g.ApplyVertexMerges())
	require.Equal(s.T(), 0, g.FinalVertexID(7))
	require.Equal(s.T(), 1, g.FinalVertexID(5))
	require.Equal(s.T(), 2, g.FinalVertexID(9))

	require.NoError(s.T(), g.Compress(3, false))
	require.Equal(s.T(), []int{0, 2, 3, 3}, g.StartPointers())
	require.Equal(s.T(), []int{1, 2, 0}, g.ColumnIndices())
}

// TestRepeatedApplyWithoutNewGroups only renumbers the new contributions.
func (s *MergeSuite) TestRepeatedApplyWithoutNewGroups() {
	g := csr.NewGraph[int]()
	g.AddConnection(4, 6)
	g.AddVertexGroup([]int{4, 5})
	require.Equal(s.T(), 2, g.ApplyVertexMerges())

	g.AddConnection(5, 8)
	require.NoError(s.T(), g.Compress(3, false))
	require.Equal(s.T(), []int{0, 2, 2, 2}, g.StartPointers())
	require.Equal(s.T(), []int{1, 2}, g.ColumnIndices())
}

// TestOverlappingGroups joins groups through a shared member.
func (s *MergeSuite) TestOverlappingGroups() {
	g := csr.NewGraph[int]()
	g.AddVertexGroup([]int{6, 4})
	g.AddVertexGroup([]int{2, 6})
	g.AddConnection(0, 4)

	require.Equal(s.T(), 2, g.ApplyVertexMerges())
	for _, v := range []int{2, 4, 6} {
		require.Equal(s.T(), 1, g.FinalVertexID(v))
	}
	require.Equal(s.T(), 0, g.FinalVertexID(0))
	require.Equal(s.T(), 11, g.FinalVertexID(11), "unknown vertices map to themselves")
}

// TestNoGroupsIsIdentity leaves pending data untouched.
func (s *MergeSuite) TestNoGroupsIsIdentity() {
	g := csr.NewGraph[int]()
	require.Equal(s.T(), 0, g.ApplyVertexMerges())

	g.AddConnection(2, 4)
	g.AddConnection(1, 0)
	require.Equal(s.T(), 5, g.ApplyVertexMerges())
	require.Equal(s.T(), 4, g.FinalVertexID(4))

	require.NoError(s.T(), g.Compress(3, false))
	require.Equal(s.T(), []int{0, 0, 1, 2}, g.StartPointers())
	require.Equal(s.T(), []int{0, 4}, g.ColumnIndices())
}

// TestMergedSelfConnectionKept keeps collapsed pairs when permitted.
func (s *MergeSuite) TestMergedSelfConnectionKept() {
	g := csr.NewGraph[int](csr.WithSelfConnections())
	g.AddConnection(0, 1)
	g.AddVertexGroup([]int{0, 1})

	require.Equal(s.T(), 1, g.ApplyVertexMerges())
	require.NoError(s.T(), g.Compress(1, false))
	require.Equal(s.T(), []int{0, 1}, g.StartPointers())
	require.Equal(s.T(), []int{0}, g.ColumnIndices())
}

// TestTrackedMapSkipsDroppedContributions checks map length after merging.
func (s *MergeSuite) TestTrackedMapSkipsDroppedContributions() {
	g := csr.NewTrackedGraph[int]()
	g.AddConnection(0, 1)
	g.AddConnection(1, 2)
	g.AddConnection(2, 3)
	g.AddVertexGroup([]int{1, 2})

	require.NoError(s.T(), g.Compress(3, false))
	require.Equal(s.T(), []int{0, 1, 2, 2}, g.StartPointers())
	require.Equal(s.T(), []int{1, 2}, g.ColumnIndices())
	require.Equal(s.T(), []int{0, 1}, g.CompressedIndexMap())
}

// TestGroupsSurviveClear keeps declarations across Clear.
func (s *MergeSuite) TestGroupsSurviveClear() {
	g := csr.NewGraph[int]()
	g.AddVertexGroup([]int{0, 1})
	g.AddConnection(1, 2)
	require.NoError(s.T(), g.Compress(2, false))

	g.Clear()
	g.AddConnection(0, 2)
	g.AddConnection(1, 2)
	require.NoError(s.T(), g.Compress(2, false))
	require.Equal(s.T(), []int{0, 1, 1}, g.StartPointers())
	require.Equal(s.T(), []int{1}, g.ColumnIndices())
}

// TestSecondCycleKeepsCompressedIDs adds a low vertex after a merged compress.
func (s *MergeSuite) TestSecondCycleKeepsCompressedIDs() {
	g := csr.NewGraph[int]()
	g.AddVertexGroup([]int{5, 6})
	g.AddConnection(5, 7)
	g.AddConnection(6, 7)
	require.NoError(s.T(), g.Compress(2, false))
	require.Equal(s.T(), []int{0, 1, 1}, g.StartPointers())
	require.Equal(s.T(), []int{1}, g.ColumnIndices())

	g.AddConnection(2, 7)
	require.NoError(s.T(), g.Compress(3, true))

	require.Equal(s.T(), 0, g.FinalVertexID(5))
	require.Equal(s.T(), 0, g.FinalVertexID(6))
	require.Equal(s.T(), 1, g.FinalVertexID(7))
	require.Equal(s.T(), 2, g.FinalVertexID(2))
	require.Equal(s.T(), []int{0, 1, 1, 2}, g.StartPointers())
	require.Equal(s.T(), []int{1, 1}, g.ColumnIndices())
}

// TestSecondCycleJoinsCompressedSets merges two already compressed vertices.
func (s *MergeSuite) TestSecondCycleJoinsCompressedSets() {
	g := csr.NewTrackedGraph[int]()
	g.AddVertexGroup([]int{1, 2})
	g.AddConnection(1, 3)
	g.AddConnection(3, 4)
	require.Equal(s.T(), 3, g.ApplyVertexMerges())
	require.NoError(s.T(), g.Compress(3, false))
	require.Equal(s.T(), []int{0, 1, 2, 2}, g.StartPointers())
	require.Equal(s.T(), []int{1, 2}, g.ColumnIndices())

	g.AddVertexGroup([]int{3, 4})
	g.AddConnection(4, 1)
	require.Equal(s.T(), 3, g.ApplyVertexMerges())
	require.Equal(s.T(), 1, g.FinalVertexID(4))
	require.Equal(s.T(), 0, g.FinalVertexID(2))

	require.NoError(s.T(), g.Compress(3, true))
	require.Equal(s.T(), []int{0, 1, 3, 3}, g.StartPointers())
	require.Equal(s.T(), []int{1, 0, 2}, g.ColumnIndices())
	require.Equal(s.T(), []int{0, 2, 1}, g.CompressedIndexMap())
}

// TestMergeSuite runs the MergeSuite.
func TestMergeSuite(t *testing.T) {
	suite.Run(t, new(MergeSuite))
}
