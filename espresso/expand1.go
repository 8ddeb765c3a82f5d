package espresso

import "github.com/katalvlaran/espresso/cube"

// expand1 is the single-cube driver (spec.md §4.G): it raises one
// ON-set cube c to a prime implicant, trying the cheap mechanisms first
// (essential forced-lowering and raising, greedy feasible absorption,
// frequency-ordered raising) and falling back to mincov's unate-cover
// solver only for whatever residual blocking those leave behind.
//
// c must already be an Active, non-Prime, non-Covered cube of cc. bb is
// the OFF-set, cc the ON-set c belongs to. initLower is expand's
// INIT_LOWER (empty in sparse mode, var_mask[output] in nonsparse mode).
func expand1(g *cube.Geometry, bb, cc *cube.Cover, initLower, c *cube.Cube, opts Options) error {
	// Step 1: mark PRIME immediately so c cannot later absorb itself.
	c.Set(cube.Prime)

	// Step 2: activate all of BB; activate only CC cubes that are
	// neither Prime nor Covered.
	bb.ActivateAll()
	cc.ActivateWhere(func(p *cube.Cube) bool {
		return !p.Has(cube.Prime) && !p.Has(cube.Covered)
	})

	// Step 3.
	superCube := g.NewCube()
	cube.SetCopy(superCube, c)
	numCovered := 0
	raise := g.NewCube()
	cube.SetCopy(raise, c)
	freeset := g.NewCube()
	cube.SetDiff(freeset, g.Fullset, raise)

	// Step 4: non-sparse mode pre-commits the output variable to lowering.
	if !cube.SetpEmpty(initLower) {
		cube.SetDiff(freeset, freeset, initLower)
		elimLowering(g, bb, cc, raise, freeset)
	}

	// Step 5.
	if err := essenParts(g, bb, cc, raise, freeset); err != nil {
		return err
	}
	overexpanded := g.NewCube()
	cube.SetOr(overexpanded, raise, freeset)

	// Step 6.
	if cc.ActiveCount > 0 {
		if err := selectFeasible(g, bb, cc, raise, freeset, superCube, &numCovered); err != nil {
			return err
		}
	}

	// Step 7. most_frequent only orders which free part to commit next;
	// absorption itself still happens by implication, exactly as in
	// selectFeasible's loop, so each commit is followed by the same
	// "now implied by RAISE" sweep over cc's remaining Active cubes.
	for cc.ActiveCount > 0 {
		part := mostFrequent(g, cc, freeset)
		if part < 0 {
			break
		}
		raise.SetPart(part)
		freeset.ClearPart(part)
		if err := essenParts(g, bb, cc, raise, freeset); err != nil {
			return err
		}
		for _, p := range cc.Cubes {
			if p.Has(cube.Active) && cube.SetpImplies(p, raise) {
				numCovered++
				cube.SetOr(superCube, superCube, p)
				p.Set(cube.Covered)
				cc.ClearActive(p)
			}
		}
	}

	// Step 8.
	if bb.ActiveCount > 0 {
		if err := mincov(g, bb, raise, freeset, opts); err != nil {
			return err
		}
	}

	// Step 9.
	cube.SetOr(raise, raise, freeset)
	cube.SetCopy(c, raise)
	c.Set(cube.Prime)
	c.Clear(cube.Covered)

	// Step 10.
	if numCovered == 0 && !cube.SetpEqual(c, overexpanded) {
		c.Set(cube.Nonessen)
	}

	return nil
}
