package espresso

import (
	"github.com/katalvlaran/espresso/cube"
	"github.com/katalvlaran/espresso/unate"
)

// MakeSparse repeatedly alternates mvReduce and a non-sparse Expand pass
// until neither improves total literal cost (make_sparse, spec.md §4.I).
//
// The source compares cost.total to best_cost.total before cost is ever
// assigned on the first pass — an apparent bug (spec.md §4.I, §9). This
// recomputes cost after each pass and only keeps it when it strictly
// improves on best_cost, terminating otherwise; the uninitialized-read
// pattern is not reproduced.
func MakeSparse(g *cube.Geometry, f, d, r *cube.Cover, opt ...Option) (*cube.Cover, error) {
	if g == nil {
		return nil, ErrNilGeometry
	}
	if f == nil || d == nil || r == nil {
		return nil, ErrNilCover
	}

	best := f
	bestCost := cube.TotalCost(g, best)

	for {
		reduced := mvReduce(g, best, d)
		cost := cube.TotalCost(g, reduced)
		if cost >= bestCost {
			break
		}
		best, bestCost = reduced, cost

		expanded, err := Expand(g, best, r, true, opt...)
		if err != nil {
			return nil, err
		}
		cost = cube.TotalCost(g, expanded)
		if cost >= bestCost {
			break
		}
		best, bestCost = expanded, cost
	}

	return best, nil
}

// mvReduce cofactors f and d on each output part in turn, asking
// MarkIrredundant whether a cube is still needed once the cover is
// restricted to that one output value, and drops the part from any
// cube found redundant there (mv_reduce, spec.md §4.I). A cube that
// becomes empty in some variable (most commonly: every output part
// cleared) no longer denotes any point and is dropped from the result
// entirely (spec.md §3 invariants, cube.ValidateCube).
//
// mvReduce never mutates f's own cubes: every cube it might clear a
// part from is cloned up front, so a caller (MakeSparse) that decides
// this pass did not improve cost can discard the result outright with
// f completely untouched, instead of having already applied the
// mutation before the cost comparison runs.
func mvReduce(g *cube.Geometry, f, d *cube.Cover) *cube.Cover {
	work := make([]*cube.Cube, len(f.Cubes))
	for i, p := range f.Cubes {
		work[i] = p.Clone()
	}

	for i := g.FirstPart[g.Output]; i <= g.LastPart[g.Output]; i++ {
		fc, fOrig := cofactorOutput(g, work, i)
		dc, _ := cofactorOutput(g, d.Cubes, i)
		if len(fc) == 0 {
			continue
		}

		fcCover := cube.NewCover(len(fc))
		for _, q := range fc {
			fcCover.Add(q)
		}
		dcCover := cube.NewCover(len(dc))
		for _, q := range dc {
			dcCover.Add(q)
		}
		fcCover.ActivateAll()
		dcCover.ActivateAll()
		unate.MarkIrredundant(fcCover, dcCover)

		for idx, q := range fc {
			if !q.Has(cube.Active) {
				orig := fOrig[idx]
				orig.ClearPart(i)
				orig.Clear(cube.Prime)
			}
		}
	}

	kept := make([]*cube.Cube, 0, len(work))
	for _, p := range work {
		if cube.ValidateCube(g, p) == nil {
			kept = append(kept, p)
		}
	}

	out := cube.NewCover(len(kept))
	for _, p := range kept {
		out.Add(p)
		out.SetActive(p)
	}

	return out
}

// cofactorOutput builds the cofactor of cubes restricted to output part
// i: one fresh cube per member that currently has part i set, with
// every other output-variable part cleared and i forced on. The second
// return value pairs each cofactor cube with the original it came from,
// by index, so the caller can feed a redundancy verdict back.
func cofactorOutput(g *cube.Geometry, cubes []*cube.Cube, i int) ([]*cube.Cube, []*cube.Cube) {
	out := make([]*cube.Cube, 0, len(cubes))
	origs := make([]*cube.Cube, 0, len(cubes))

	for _, p := range cubes {
		if !p.HasPart(i) {
			continue
		}
		q := g.NewCube()
		cube.SetCopy(q, p)
		cube.SetDiff(q, q, g.VarMask[g.Output])
		q.SetPart(i)
		out = append(out, q)
		origs = append(origs, p)
	}

	return out, origs
}
