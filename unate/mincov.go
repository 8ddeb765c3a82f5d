package unate

import (
	"sort"

	"github.com/bits-and-blooms/bitset"
)

// maxRows is the defensive backstop behind ErrTooManyRows; espresso's own
// mincov size guard (spec.md §4.F step 2) is expected to bail well before
// this is ever reached.
const maxRows = 4096

// MinimumCover finds a minimum-cardinality set of columns, out of
// [0, numCols), that hits every row — i.e. shares at least one column
// with it (do_sm_minimum_cover). rows[i] is the set of columns row i
// contains. Returns the chosen columns as a sorted slice of column
// indices.
//
// Deterministic branch-and-bound (mirrors tsp.bbEngine in the retrieval
// pack): at each node, branch on the most-constrained uncovered row (the
// row with the fewest remaining candidate columns — choosing it first
// prunes the search tree the fastest), trying its columns in ascending
// index order for reproducibility (spec.md §8 property 7). The running
// incumbent size is a valid upper bound; a node is pruned once its
// partial selection already reaches or exceeds the incumbent, since no
// completion of it can improve on the best known solution.
func MinimumCover(numCols int, rows []*bitset.BitSet) ([]int, error) {
	if len(rows) == 0 {
		return nil, nil
	}
	if len(rows) > maxRows {
		return nil, ErrTooManyRows
	}
	for _, r := range rows {
		if r.None() {
			return nil, ErrEmptyRow
		}
	}

	e := &bbEngine{
		numCols: numCols,
		rows:    rows,
	}
	e.bestSelected = nil
	e.search(make([]bool, numCols), cloneMask(len(rows)), 0)

	out := make([]int, 0, len(e.bestSelected))
	for col, on := range e.bestSelected {
		if on {
			out = append(out, col)
		}
	}
	sort.Ints(out)

	return out, nil
}

// bbEngine holds the search state for one MinimumCover invocation.
type bbEngine struct {
	numCols int
	rows    []*bitset.BitSet

	bestSelected []bool
	bestSize     int
	haveBest     bool
}

// cloneMask returns a fresh "row still uncovered" mask of length n, all true.
func cloneMask(n int) []bool {
	m := make([]bool, n)
	for i := range m {
		m[i] = true
	}
	return m
}

// search explores the branch where `selected` records the columns chosen
// so far and `uncovered` marks which rows still need a hit. depth is the
// number of columns selected (|selected| restricted to true entries).
func (e *bbEngine) search(selected []bool, uncovered []bool, depth int) {
	if e.haveBest && depth >= e.bestSize {
		return // this branch cannot beat the incumbent
	}

	// Find the most-constrained uncovered row.
	bestRow := -1
	bestCount := -1
	anyUncovered := false
	for i, u := range uncovered {
		if !u {
			continue
		}
		anyUncovered = true
		cnt := int(e.rows[i].Count())
		if bestRow == -1 || cnt < bestCount {
			bestRow, bestCount = i, cnt
		}
	}
	if !anyUncovered {
		e.recordIfBetter(selected, depth)
		return
	}

	cols := make([]uint, 0, bestCount)
	for c, ok := e.rows[bestRow].NextSet(0); ok; c, ok = e.rows[bestRow].NextSet(c + 1) {
		cols = append(cols, c)
	}

	for _, c := range cols {
		col := int(c)
		if selected[col] {
			continue
		}
		selected[col] = true

		removed := make([]int, 0, len(uncovered))
		for i, u := range uncovered {
			if u && e.rows[i].Test(c) {
				uncovered[i] = false
				removed = append(removed, i)
			}
		}

		e.search(selected, uncovered, depth+1)

		for _, i := range removed {
			uncovered[i] = true
		}
		selected[col] = false
	}
}

func (e *bbEngine) recordIfBetter(selected []bool, depth int) {
	if e.haveBest && depth >= e.bestSize {
		return
	}
	e.bestSelected = append([]bool(nil), selected...)
	e.bestSize = depth
	e.haveBest = true
}
