package unate

import "github.com/katalvlaran/espresso/cube"

// UnravelOutput expands rows so each one fixes a single output part
// (unravel_output, spec.md §6). For every row p and every output part i
// that p still permits, UnravelOutput emits a fresh copy of p with every
// output part cleared except i. A row with d free output parts therefore
// expands into d rows, matching the size-guard arithmetic described in
// spec.md §4.F step 2.
func UnravelOutput(g *cube.Geometry, rows []*cube.Cube) []*cube.Cube {
	out := make([]*cube.Cube, 0, len(rows))
	for _, p := range rows {
		for i := g.FirstPart[g.Output]; i <= g.LastPart[g.Output]; i++ {
			if !p.HasPart(i) {
				continue
			}
			r := g.NewCube()
			cube.SetCopy(r, p)
			for j := g.FirstPart[g.Output]; j <= g.LastPart[g.Output]; j++ {
				r.ClearPart(j)
			}
			r.SetPart(i)
			out = append(out, r)
		}
	}
	return out
}
