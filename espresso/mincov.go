package espresso

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/espresso/cube"
	"github.com/katalvlaran/espresso/unate"
)

// mincov formulates and solves the residual blocking constraint as a
// unate covering problem (spec.md §4.F): the raising set must hit the
// force_lower image of every remaining Active OFF cube. By this point
// elim_lowering guarantees every Active OFF cube p intersects RAISE ∪
// FREESET in every variable, including Output, so p's free parts within
// the Output variable are always non-empty — that is the one dimension
// left undecided, and it is what the row for p is built from (the
// per-row guard of step 2 and unravel_output both operate on exactly
// this variable, which is why the row is confined to it rather than
// to whichever variable a generic force_lower happened to separate on).
// Loops until bb.ActiveCount reaches zero, alternating between the
// exact branch (guarded by opts.MincovRowGuard) and the heuristic
// fallback.
func mincov(g *cube.Geometry, bb *cube.Cover, raise, freeset *cube.Cube, opts Options) error {
	for bb.ActiveCount > 0 {
		rows := make([]*cube.Cube, 0, bb.ActiveCount)
		for _, p := range bb.Cubes {
			if !p.Has(cube.Active) {
				continue
			}
			plower := g.NewCube()
			cube.SetAnd(plower, p, freeset)
			cube.SetAnd(plower, plower, g.VarMask[g.Output])
			rows = append(rows, plower)
		}

		if cover, ok := tryExactCover(g, rows, opts); ok {
			diff := g.NewCube()
			cube.SetDiff(diff, freeset, cover)
			cube.SetOr(raise, raise, diff)
			clearAllParts(freeset, g.Size)
			for _, p := range bb.Cubes {
				bb.ClearActive(p)
			}

			return nil
		}

		part := chooseHeuristicPart(g, freeset, opts)
		if part < 0 {
			// No free part remains yet bb is still blocking: the instance
			// was not orthogonal to begin with (spec.md §7).
			return ErrNotOrthogonal
		}
		raise.SetPart(part)
		freeset.ClearPart(part)
		if err := essenParts(g, bb, nil, raise, freeset); err != nil {
			return err
		}
	}

	return nil
}

// tryExactCover applies the size guard of spec.md §4.F step 2 and, if
// the unravelled row count stays within opts.MincovRowGuard, unravels
// the output variable and runs the unate minimum-cover search. Returns
// ok=false to signal "bail to the heuristic branch".
func tryExactCover(g *cube.Geometry, rows []*cube.Cube, opts Options) (*cube.Cube, bool) {
	guard := opts.MincovRowGuard
	if guard <= 0 {
		guard = 500
	}

	nset := 0
	for _, p := range rows {
		d := cube.SetDist(p, g.VarMask[g.Output])
		if d > guard {
			return nil, false
		}
		nset += d
		if nset > guard {
			return nil, false
		}
	}

	unraveled := unate.UnravelOutput(g, rows)

	// Candidate columns are every part referenced by at least one
	// unravelled row; mincov only ever needs to hit parts that appear.
	universe := g.NewCube()
	for _, r := range unraveled {
		cube.SetOr(universe, universe, r)
	}
	parts := freePartsList(universe, g.Size)
	if len(parts) == 0 {
		if len(unraveled) == 0 {
			return g.NewCube(), true
		}
		return nil, false
	}

	colOf := make(map[int]int, len(parts))
	for idx, part := range parts {
		colOf[part] = idx
	}

	bsRows := make([]*bitset.BitSet, len(unraveled))
	for i, r := range unraveled {
		bs := bitset.New(uint(len(parts)))
		for part, idx := range colOf {
			if r.HasPart(part) {
				bs.Set(uint(idx))
			}
		}
		bsRows[i] = bs
	}

	cols, err := unate.MinimumCover(len(parts), bsRows)
	if err != nil {
		return nil, false
	}

	xlower := g.NewCube()
	for _, idx := range cols {
		xlower.SetPart(parts[idx])
	}

	return xlower, true
}

// chooseHeuristicPart picks the next part to raise in mincov's
// heuristic branch: mostFrequent by default, or a uniformly random free
// part under the RANDOM_MINCOV variant (spec.md §4.F step 4, §9).
func chooseHeuristicPart(g *cube.Geometry, freeset *cube.Cube, opts Options) int {
	if opts.RandomMincov && opts.Random != nil {
		parts := freePartsList(freeset, g.Size)
		if len(parts) == 0 {
			return -1
		}
		return parts[opts.Random.Intn(len(parts))]
	}

	return mostFrequent(g, nil, freeset)
}
