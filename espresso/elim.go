package espresso

import "github.com/katalvlaran/espresso/cube"

// elimLowering prunes bb and (when non-nil) cc against the over-expanded
// cube r = RAISE ∪ FREESET, the maximum extent any future expansion of
// the current cube can reach (spec.md §4.C). An OFF cube that does not
// intersect r can never block a future raise, so it is deactivated; an
// ON cube not implied by r can never be absorbed by a future raise, so
// it too is deactivated. This is pure pruning: it never touches RAISE
// or FREESET themselves.
func elimLowering(g *cube.Geometry, bb, cc *cube.Cover, raise, freeset *cube.Cube) {
	r := g.NewCube()
	cube.SetOr(r, raise, freeset)

	for _, p := range bb.Cubes {
		if p.Has(cube.Active) && !cube.Cdist0(g, p, r) {
			bb.ClearActive(p)
		}
	}

	if cc != nil {
		for _, p := range cc.Cubes {
			if p.Has(cube.Active) && !cube.SetpImplies(p, r) {
				cc.ClearActive(p)
			}
		}
	}
}
