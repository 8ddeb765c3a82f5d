package unate_test

import (
	"testing"

	"github.com/bits-and-blooms/bitset"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/espresso/unate"
)

func row(n int, cols ...uint) *bitset.BitSet {
	b := bitset.New(uint(n))
	for _, c := range cols {
		b.Set(c)
	}
	return b
}

func TestMinimumCover_Trivial(t *testing.T) {
	cols, err := unate.MinimumCover(3, nil)
	require.NoError(t, err)
	require.Empty(t, cols)
}

func TestMinimumCover_SingleColumnHitsAll(t *testing.T) {
	rows := []*bitset.BitSet{
		row(4, 0, 1),
		row(4, 0, 2),
		row(4, 0, 3),
	}
	cols, err := unate.MinimumCover(4, rows)
	require.NoError(t, err)
	require.Equal(t, []int{0}, cols)
}

func TestMinimumCover_NeedsTwoColumns(t *testing.T) {
	rows := []*bitset.BitSet{
		row(4, 0),
		row(4, 1),
	}
	cols, err := unate.MinimumCover(4, rows)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1}, cols)
}

func TestMinimumCover_EmptyRowIsInfeasible(t *testing.T) {
	rows := []*bitset.BitSet{bitset.New(4)}
	_, err := unate.MinimumCover(4, rows)
	require.ErrorIs(t, err, unate.ErrEmptyRow)
}

func TestMinimumCover_Deterministic(t *testing.T) {
	rows := []*bitset.BitSet{
		row(6, 0, 1, 2),
		row(6, 1, 3),
		row(6, 2, 4),
		row(6, 3, 4, 5),
	}
	first, err := unate.MinimumCover(6, rows)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := unate.MinimumCover(6, rows)
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}
