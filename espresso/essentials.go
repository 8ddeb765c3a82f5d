package espresso

import "github.com/katalvlaran/espresso/cube"

// essenParts performs forced lowering (spec.md §4.B): for every Active
// OFF-set cube p, cdist01(p, RAISE) == 0 is a fatal orthogonality
// violation; == 1 contributes p's force-lower parts to an accumulator
// and deactivates p in bb (it can never block again once satisfied);
// >= 2 leaves p untouched. If the accumulator is non-empty, those parts
// are removed from FREESET and elimLowering re-prunes bb/cc against the
// now-smaller over-expanded cube.
func essenParts(g *cube.Geometry, bb, cc *cube.Cover, raise, freeset *cube.Cube) error {
	xlower := g.NewCube()
	any := false

	for _, p := range bb.Cubes {
		if !p.Has(cube.Active) {
			continue
		}
		switch cube.Cdist01(g, p, raise) {
		case 0:
			return ErrNotOrthogonal
		case 1:
			cube.ForceLower(g, xlower, p, raise)
			any = true
			bb.ClearActive(p)
		default:
			// >= 2: p cannot yet be ruled out; leave it active.
		}
	}

	if any {
		cube.SetDiff(freeset, freeset, xlower)
		elimLowering(g, bb, cc, raise, freeset)
	}

	return nil
}

// essenRaising raises every free part that no remaining active OFF cube
// can possibly block (spec.md §4.B): U is the union of every Active
// cube of bb; any part free but outside U is safe to raise unconditionally.
func essenRaising(g *cube.Geometry, bb *cube.Cover, raise, freeset *cube.Cube) {
	u := g.NewCube()
	for _, p := range bb.Cubes {
		if p.Has(cube.Active) {
			cube.SetOr(u, u, p)
		}
	}

	for i := 0; i < g.Size; i++ {
		if freeset.HasPart(i) && !u.HasPart(i) {
			raise.SetPart(i)
			freeset.ClearPart(i)
		}
	}
}
