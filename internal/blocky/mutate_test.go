package blocky

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func childColors(b *Block) []Color {
	out := make([]Color, len(b.Children))
	for i, c := range b.Children {
		out[i] = c.Color
	}
	return out
}

func TestSwap(t *testing.T) {
	tests := []struct {
		name string
		axis Axis
		want []Color
	}{
		{"horizontal", Horizontal, []Color{colB, colA, colD, colC}},
		{"vertical", Vertical, []Color{colD, colC, colB, colA}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			root := fourLeaves(16, colA, colB, colC, colD)
			root.Swap(tc.axis)

			assert.Equal(t, tc.want, childColors(root))
			require.NoError(t, root.Validate())
			assert.Equal(t, Pt(8, 0), root.Children[UpperRight].Position)
		})
	}
}

func TestSwapDoesNotRecurse(t *testing.T) {
	inner := NewParent(1, [4]*Block{NewLeaf(2, colA), NewLeaf(2, colB), NewLeaf(2, colC), NewLeaf(2, colD)})
	root := NewParent(0, [4]*Block{inner, NewLeaf(1, colA), NewLeaf(1, colA), NewLeaf(1, colA)})
	root.UpdateLocations(Point{}, 16)

	root.Swap(Vertical)

	assert.Same(t, inner, root.Children[LowerRight])
	assert.Equal(t, []Color{colA, colB, colC, colD}, childColors(inner))
	assert.Equal(t, Pt(12, 8), inner.Children[UpperRight].Position)
}

func TestRotate(t *testing.T) {
	root := fourLeaves(16, colA, colB, colC, colD)

	root.Rotate(Clockwise)
	assert.Equal(t, []Color{colB, colC, colD, colA}, childColors(root))

	root.Rotate(CounterClockwise)
	assert.Equal(t, []Color{colA, colB, colC, colD}, childColors(root))

	root.Rotate(CounterClockwise)
	assert.Equal(t, []Color{colD, colA, colB, colC}, childColors(root))
	require.NoError(t, root.Validate())
}

func TestRotateRecursesIntoDescendants(t *testing.T) {
	inner := NewParent(1, [4]*Block{NewLeaf(2, colA), NewLeaf(2, colB), NewLeaf(2, colC), NewLeaf(2, colD)})
	root := NewParent(0, [4]*Block{NewLeaf(1, colA), inner, NewLeaf(1, colA), NewLeaf(1, colA)})
	root.UpdateLocations(Point{}, 16)

	root.Rotate(Clockwise)

	assert.Same(t, inner, root.Children[UpperRight])
	assert.Equal(t, []Color{colB, colC, colD, colA}, childColors(inner))
	require.NoError(t, root.Validate())
}

func TestMutatorsOnLeafAreNoOps(t *testing.T) {
	leaf := NewLeaf(0, colA)
	leaf.MaxDepth = 2
	leaf.UpdateLocations(Point{}, 8)
	before := leaf.Clone()

	leaf.Swap(Horizontal)
	leaf.Swap(Vertical)
	leaf.Rotate(Clockwise)
	leaf.Rotate(CounterClockwise)

	assert.True(t, Equal(before, leaf))
	assert.True(t, leaf.IsLeaf())
}

func TestRoundTrips(t *testing.T) {
	for seed := int64(1); seed <= 30; seed++ {
		board, _ := randomBoard(seed, 4)
		orig := board.Clone()

		for range 4 {
			board.Rotate(Clockwise)
		}
		require.True(t, Equal(orig, board), "seed %d: four clockwise turns", seed)

		board.Rotate(Clockwise)
		board.Rotate(CounterClockwise)
		require.True(t, Equal(orig, board), "seed %d: cw then ccw", seed)

		board.Swap(Vertical)
		board.Swap(Vertical)
		require.True(t, Equal(orig, board), "seed %d: vertical swap twice", seed)

		board.Swap(Horizontal)
		board.Swap(Horizontal)
		require.True(t, Equal(orig, board), "seed %d: horizontal swap twice", seed)
	}
}

func TestSmash(t *testing.T) {
	gen := NewGenerator(rand.New(rand.NewSource(11)), nil)
	root := NewParent(0, [4]*Block{
		NewLeaf(1, colA),
		NewLeaf(1, colB),
		NewLeaf(1, colC),
		NewParent(1, [4]*Block{NewLeaf(2, colA), NewLeaf(2, colB), NewLeaf(2, colC), NewLeaf(2, colD)}),
	})
	root.MaxDepth = 3
	root.UpdateLocations(Point{}, 32)
	before := root.Clone()

	t.Run("root refuses", func(t *testing.T) {
		assert.False(t, root.Smash(gen))
		assert.True(t, Equal(before, root))
	})

	t.Run("max depth refuses", func(t *testing.T) {
		shallow := fourLeaves(8, colA, colB, colC, colD)
		unit := shallow.Children[UpperLeft]
		require.Equal(t, unit.MaxDepth, unit.Level)
		assert.False(t, unit.Smash(gen))
		assert.True(t, unit.IsLeaf())
	})

	t.Run("leaf below max depth", func(t *testing.T) {
		target := root.Children[UpperLeft]
		require.True(t, target.Smash(gen))

		assert.Len(t, target.Children, 4)
		assert.True(t, target.Color.IsZero())
		for _, c := range target.Children {
			assert.Equal(t, 2, c.Level)
			assert.Same(t, target, c.Parent)
		}
		require.NoError(t, root.Validate())
	})

	t.Run("subdivided block is replaced", func(t *testing.T) {
		target := root.Children[LowerRight]
		old := target.Children[0]
		require.True(t, target.Smash(gen))
		assert.NotSame(t, old, target.Children[0])
		require.NoError(t, root.Validate())
	})
}

func TestRandomMutationsPreserveInvariants(t *testing.T) {
	board, gen := randomBoard(2024, 5)
	rng := rand.New(rand.NewSource(5))

	for i := 0; i < 500; i++ {
		target := randomBlock(board, rng)
		Move{Kind: MoveKind(rng.Intn(5)), Target: target}.Apply(gen)
		require.NoError(t, board.Validate(), "after move %d", i)
	}
}

func TestSelectAt(t *testing.T) {
	inner := NewParent(1, [4]*Block{NewLeaf(2, colA), NewLeaf(2, colB), NewLeaf(2, colC), NewLeaf(2, colD)})
	root := NewParent(0, [4]*Block{NewLeaf(1, colA), inner, NewLeaf(1, colC), NewLeaf(1, colD)})
	root.UpdateLocations(Point{}, 16)

	tests := []struct {
		name  string
		p     Point
		level int
		want  *Block
	}{
		{"level zero is the root", Pt(3, 3), 0, root},
		{"upper right", Pt(12, 2), 1, root.Children[UpperRight]},
		{"upper left", Pt(2, 2), 1, inner},
		{"lower left", Pt(2, 12), 1, root.Children[LowerLeft]},
		{"lower right", Pt(12, 12), 1, root.Children[LowerRight]},
		{"centre goes upper right", Pt(8, 8), 1, root.Children[UpperRight]},
		{"x tie on top half goes right", Pt(8, 3), 1, root.Children[UpperRight]},
		{"y tie on left half goes up", Pt(3, 8), 1, inner},
		{"deeper inside subdivided quadrant", Pt(1, 6), 2, inner.Children[LowerLeft]},
		{"leaf stops descent", Pt(12, 12), 2, root.Children[LowerRight]},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Same(t, tc.want, root.SelectAt(tc.p, tc.level))
		})
	}
}

func TestSelectAtOutOfRangePanics(t *testing.T) {
	root := fourLeaves(8, colA, colB, colC, colD)
	assert.Panics(t, func() { root.SelectAt(Pt(0, 0), 2) })
	assert.Panics(t, func() { root.SelectAt(Pt(0, 0), -1) })
}
