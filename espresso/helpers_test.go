package espresso_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/espresso/cube"
)

// binaryGeometry3 is the {x0, x1, y} geometry spec.md §8's scenarios are
// written against: parts {x0̄, x0, x1̄, x1, ȳ, y} at indices {1,0,3,2,5,4}.
func binaryGeometry3(t *testing.T) *cube.Geometry {
	t.Helper()
	g, err := cube.NewGeometry([]int{2, 2, 2}, 2)
	require.NoError(t, err)
	return g
}

// binaryGeometry4 adds a second input variable x2, used by the S3
// (inessential-prime) construction, which needs more room than the
// three-variable geometry gives without an off-cube colliding with an
// on-cube.
func binaryGeometry4(t *testing.T) *cube.Geometry {
	t.Helper()
	g, err := cube.NewGeometry([]int{2, 2, 2, 2}, 3)
	require.NoError(t, err)
	return g
}

func fromParts(g *cube.Geometry, parts ...int) *cube.Cube {
	c := g.NewCube()
	for _, p := range parts {
		c.SetPart(p)
	}
	return c
}

func cloneCube(g *cube.Geometry, c *cube.Cube) *cube.Cube {
	out := g.NewCube()
	cube.SetCopy(out, c)
	return out
}

func newCover(cubes ...*cube.Cube) *cube.Cover {
	cv := cube.NewCover(len(cubes))
	for _, c := range cubes {
		cv.Add(c)
		cv.SetActive(c)
	}
	return cv
}

// allPoints enumerates every point of g's space as one part index per
// variable, letting tests check cover equivalence/orthogonality exactly
// rather than trusting a hand-derived oracle cube.
func allPoints(g *cube.Geometry) [][]int {
	nVars := len(g.VarMask)
	ranges := make([][]int, nVars)
	for v := 0; v < nVars; v++ {
		for p := g.FirstPart[v]; p <= g.LastPart[v]; p++ {
			ranges[v] = append(ranges[v], p)
		}
	}

	var out [][]int
	var rec func(v int, cur []int)
	rec = func(v int, cur []int) {
		if v == nVars {
			pt := make([]int, len(cur))
			copy(pt, cur)
			out = append(out, pt)
			return
		}
		for _, p := range ranges[v] {
			rec(v+1, append(cur, p))
		}
	}
	rec(0, nil)

	return out
}

func pointInCube(c *cube.Cube, pt []int) bool {
	for _, p := range pt {
		if !c.HasPart(p) {
			return false
		}
	}
	return true
}

func unionContains(cubes []*cube.Cube, pt []int, skipCovered bool) bool {
	for _, c := range cubes {
		if skipCovered && c.Has(cube.Covered) {
			continue
		}
		if pointInCube(c, pt) {
			return true
		}
	}
	return false
}

// unionsEqual checks that before (every cube, none excluded) and after
// (skipping cubes flagged Covered, which Expand leaves behind as absorbed)
// describe the same Boolean function, with every point outside both the
// ON-region of before and the OFF-set r treated as don't-care: every point
// of before must be covered by after, and no point of r may be.
func unionsEqual(g *cube.Geometry, before, after, r []*cube.Cube) bool {
	for _, pt := range allPoints(g) {
		in := unionContains(after, pt, true)
		if unionContains(before, pt, false) && !in {
			return false
		}
		if unionContains(r, pt, false) && in {
			return false
		}
	}
	return true
}

// orthogonal checks property 1: no surviving cube of f intersects any
// cube of r.
func orthogonal(g *cube.Geometry, f, r []*cube.Cube) bool {
	for _, c := range f {
		if c.Has(cube.Covered) {
			continue
		}
		for _, off := range r {
			if cube.Cdist0(g, c, off) {
				return false
			}
		}
	}
	return true
}

// isPrimeAgainst checks property 2: c cannot have any single additional
// part added without intersecting some cube of r.
func isPrimeAgainst(g *cube.Geometry, c *cube.Cube, r []*cube.Cube) bool {
	for v := range g.VarMask {
		for p := g.FirstPart[v]; p <= g.LastPart[v]; p++ {
			if c.HasPart(p) {
				continue
			}
			grown := cloneCube(g, c)
			grown.SetPart(p)
			safe := true
			for _, off := range r {
				if cube.Cdist0(g, grown, off) {
					safe = false
					break
				}
			}
			if safe {
				return false
			}
		}
	}
	return true
}
