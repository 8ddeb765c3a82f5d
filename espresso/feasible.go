package espresso

import "github.com/katalvlaran/espresso/cube"

// feasiblyCovered tests whether raising to cover c stays compatible with
// the OFF-set bb (feasibly_covered, spec.md §4.D): with r = RAISE ∪ c,
// any Active OFF cube at distance 0 from r makes c infeasible; any at
// distance 1 contributes its own force-lower parts into newLower — the
// parts of that OFF cube that committing to c would require staying
// lowered forever. Returns false as soon as an infeasible OFF cube is
// found.
func feasiblyCovered(g *cube.Geometry, bb *cube.Cover, c, raise, newLower *cube.Cube) bool {
	r := g.NewCube()
	cube.SetOr(r, raise, c)

	for _, p := range bb.Cubes {
		if !p.Has(cube.Active) {
			continue
		}
		switch cube.Cdist01(g, p, r) {
		case 0:
			return false
		case 1:
			cube.ForceLower(g, newLower, p, r)
		}
	}

	return true
}

// candidate is one surviving entry of selectFeasible's feas array: the
// ON cube itself and the force-lower parts committing to it would induce.
type candidate struct {
	cube     *cube.Cube
	newLower *cube.Cube
}

// selectFeasible repeatedly absorbs ON-set cubes into raise/freeset,
// greedily choosing the candidate that keeps the most peers feasible,
// tie-broken by the fewest newly-raised parts (select_feasible, spec.md
// §4.D). numCovered counts absorptions; superCube accumulates their
// union. The only error path is the fatal orthogonality violation
// essenParts can report after a commit; feasiblyCovered's own per-
// candidate check makes this unreachable for a well-formed instance, but
// the error is still propagated rather than assumed away.
func selectFeasible(g *cube.Geometry, bb, cc *cube.Cover, raise, freeset, superCube *cube.Cube, numCovered *int) error {
	feas := make([]candidate, 0, len(cc.Cubes))
	for _, p := range cc.Cubes {
		if p.Has(cube.Active) {
			feas = append(feas, candidate{cube: p})
		}
	}

	for {
		essenRaising(g, bb, raise, freeset)

		survivors := feas[:0]
		for _, cand := range feas {
			p := cand.cube
			if !p.Has(cube.Active) {
				continue
			}
			if cube.SetpImplies(p, raise) {
				*numCovered++
				cube.SetOr(superCube, superCube, p)
				p.Set(cube.Covered)
				cc.ClearActive(p)
				continue
			}

			newLower := g.NewCube()
			if feasiblyCovered(g, bb, p, raise, newLower) {
				survivors = append(survivors, candidate{cube: p, newLower: newLower})
			}
		}
		feas = survivors

		if len(feas) == 0 {
			return nil
		}

		bestIdx := 0
		bestCount, bestSize := -1, -1
		for i, cand := range feas {
			count := 0
			for j, other := range feas {
				if i == j {
					continue
				}
				if cube.SetpDisjoint(cand.newLower, other.cube) {
					count++
				}
			}
			size := cube.SetDist(cand.cube, freeset)

			if count > bestCount || (count == bestCount && size < bestSize) {
				bestIdx, bestCount, bestSize = i, count, size
			}
		}

		best := feas[bestIdx]
		cube.SetOr(raise, raise, best.cube)
		cube.SetDiff(freeset, freeset, raise)
		if err := essenParts(g, bb, cc, raise, freeset); err != nil {
			return err
		}
	}
}
