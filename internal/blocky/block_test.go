package blocky

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	colA = PacificPoint
	colB = RealRed
	colC = OldOlive
	colD = DaffodilDelight
)

// fourLeaves builds a depth-1 board whose children are coloured
// a, b, c, d in UR, UL, LL, LR order.
func fourLeaves(size int, a, b, c, d Color) *Block {
	root := NewParent(0, [4]*Block{
		NewLeaf(1, a), NewLeaf(1, b), NewLeaf(1, c), NewLeaf(1, d),
	})
	root.UpdateLocations(Point{}, size)
	return root
}

func randomBoard(seed int64, maxDepth int) (*Block, *Generator) {
	gen := NewGenerator(rand.New(rand.NewSource(seed)), DefaultPalette())
	return gen.Board(maxDepth, 64), gen
}

func TestHalfSizeRoundsHalfToEven(t *testing.T) {
	tests := []struct {
		size, want int
	}{
		{750, 375},
		{375, 188}, // 187.5
		{5, 2},     // 2.5
		{7, 4},     // 3.5
		{1, 0},     // 0.5
		{3, 2},     // 1.5
		{0, 0},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, halfSize(tc.size), "halfSize(%d)", tc.size)
	}
}

func TestUpdateLocationsGeometry(t *testing.T) {
	root := fourLeaves(750, colA, colB, colC, colD)

	require.NoError(t, root.Validate())
	assert.Equal(t, 1, root.MaxDepth)
	assert.Nil(t, root.Parent)

	want := []Point{Pt(375, 0), Pt(0, 0), Pt(0, 375), Pt(375, 375)}
	for i, c := range root.Children {
		assert.Equal(t, want[i], c.Position, "child %d", i)
		assert.Equal(t, 375, c.Size)
		assert.Equal(t, 1, c.MaxDepth)
		assert.Same(t, root, c.Parent)
	}
}

func TestUpdateLocationsKeepsConfiguredDepth(t *testing.T) {
	leaf := NewLeaf(0, colA)
	leaf.MaxDepth = 3
	leaf.UpdateLocations(Pt(4, 6), 16)

	assert.Equal(t, 3, leaf.MaxDepth)
	assert.Equal(t, Pt(4, 6), leaf.Position)
	assert.Equal(t, 8, leaf.UnitCells())
}

func TestNewParentRejectsNilChild(t *testing.T) {
	assert.Panics(t, func() {
		NewParent(0, [4]*Block{NewLeaf(1, colA), nil, NewLeaf(1, colA), NewLeaf(1, colA)})
	})
}

func TestGeneratorDeterministic(t *testing.T) {
	a, _ := randomBoard(99, 4)
	b, _ := randomBoard(99, 4)
	assert.True(t, Equal(a, b), "same seed should give the same board")
}

func TestGeneratedBoardsSatisfyInvariants(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		board, _ := randomBoard(seed, 4)
		require.NoError(t, board.Validate(), "seed %d", seed)
		board.Walk(func(b *Block) bool {
			assert.Equal(t, 4, b.MaxDepth)
			assert.LessOrEqual(t, b.Level, b.MaxDepth)
			return true
		})
	}
}

func TestGeneratorZeroDecayAlwaysSubdivides(t *testing.T) {
	gen := NewGenerator(rand.New(rand.NewSource(3)), nil).WithDecay(0)
	board := gen.Board(3, 32)

	leaves := board.Leaves()
	assert.Len(t, leaves, 64)
	for _, l := range leaves {
		assert.Equal(t, 3, l.Level)
	}
}

func TestCloneIsDeep(t *testing.T) {
	gen := NewGenerator(rand.New(rand.NewSource(7)), nil).WithDecay(0)
	board := gen.Board(3, 32)
	snapshot := board.Clone()
	clone := board.Clone()
	require.True(t, Equal(board, clone))
	require.NoError(t, clone.Validate())

	board.Children[0].Swap(Horizontal)
	board.Rotate(Clockwise)

	assert.True(t, Equal(clone, snapshot), "mutating the original must not touch the clone")
	assert.NotSame(t, board.Children[0], clone.Children[0])
	assert.Same(t, clone, clone.Children[0].Parent)
}

func TestHeightAndLeaves(t *testing.T) {
	root := NewParent(0, [4]*Block{
		NewParent(1, [4]*Block{NewLeaf(2, colA), NewLeaf(2, colB), NewLeaf(2, colC), NewLeaf(2, colD)}),
		NewLeaf(1, colA), NewLeaf(1, colB), NewLeaf(1, colC),
	})
	root.UpdateLocations(Point{}, 8)

	assert.Equal(t, 2, root.Height())
	assert.Equal(t, 2, root.MaxDepth)
	assert.Len(t, root.Leaves(), 7)
	assert.Same(t, root, root.Children[0].Children[3].Root())
}
