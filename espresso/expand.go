package espresso

import (
	"sort"

	"github.com/katalvlaran/espresso/cube"
)

// Expand is the cover driver (spec.md §4.H): it orders F by miniSort,
// freezes the output variable when nonsparse is requested, and drives
// expand1 over every cube not already Prime or Covered, compacting the
// result when anything was absorbed along the way.
func Expand(g *cube.Geometry, f, r *cube.Cover, nonsparse bool, opt ...Option) (*cube.Cover, error) {
	if g == nil {
		return nil, ErrNilGeometry
	}
	if f == nil || r == nil {
		return nil, ErrNilCover
	}
	opts := DefaultOptions()
	for _, o := range opt {
		o(&opts)
	}
	if opts.RandomMincov && opts.Random == nil {
		return nil, ErrNilRandomSource
	}

	miniSort(g, f)

	initLower := g.NewCube()
	if nonsparse {
		cube.SetCopy(initLower, g.VarMask[g.Output])
	}

	for _, c := range f.Cubes {
		c.Clear(cube.Covered)
		c.Clear(cube.Nonessen)
	}

	for _, c := range f.Cubes {
		if c.Has(cube.Prime) || c.Has(cube.Covered) {
			continue
		}
		if err := expand1(g, r, f, initLower, c, opts); err != nil {
			return nil, err
		}
	}

	changed := false
	for _, c := range f.Cubes {
		if c.Has(cube.Covered) {
			changed = true
			break
		}
	}

	if !changed {
		return f, nil
	}

	return cube.SfInactive(f, func(c *cube.Cube) bool {
		return !c.Has(cube.Covered)
	}), nil
}

// miniSort orders f ascending by cube "size" (spec.md §4.H step 1): a
// cube with more literals covers fewer points and has more room left to
// expand, so it is chewed on first. Ties keep their original relative
// order (sort.SliceStable), which is what makes the whole algorithm
// deterministic given a fixed input order.
func miniSort(g *cube.Geometry, f *cube.Cover) {
	sort.SliceStable(f.Cubes, func(i, j int) bool {
		return cube.LiteralCount(g, f.Cubes[i]) > cube.LiteralCount(g, f.Cubes[j])
	})
}
