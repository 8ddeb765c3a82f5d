// SPDX-License-Identifier: MIT
package cube

// LiteralCount counts the literals of c (cover_cost, spec.md §6), with
// the output variable costed differently from input variables:
//
//   - an input variable contributes one literal when c restricts it (its
//     parts are a proper subset of Geometry.VarMask[v]), zero when c is
//     "don't care" on it — the standard multi-valued literal convention
//     used for "chew from the edges" ordering;
//   - the output variable contributes one literal per output part still
//     set in c — the classic PLA output-literal cost, since a product
//     term connects to the output plane once for every output it drives.
//
// This asymmetry matters: mv_reduce's entire job (spec.md §4.I) is to
// clear output parts from a cube, and that must always lower cost, never
// raise it. Counting the output the same "restricted vs. full" way as an
// input variable would do the opposite — a cube that drives every output
// (the literal-cost-0 "don't care" case) would cost nothing, while
// narrowing it to a single output would cost one, so sparsifying the
// output would never register as the improvement make_sparse's
// fixed-point test requires.
func LiteralCount(g *Geometry, c *Cube) int {
	n := 0
	for v, mask := range g.VarMask {
		if v == g.Output {
			n += SetDist(c, mask)
			continue
		}
		if !varIsFull(c, mask) {
			n++
		}
	}
	return n
}

func varIsFull(c *Cube, mask *Cube) bool {
	for i := range mask.bits {
		if mask.bits[i]&^c.bits[i] != 0 {
			return false
		}
	}
	return true
}

// TotalCost sums LiteralCount over every cube currently Active in cv
// (copy_cost / cover_cost, spec.md §6). Used by make_sparse to detect
// whether a pass improved the cover and by property test 6 (monotonic
// cost).
func TotalCost(g *Geometry, cv *Cover) int {
	total := 0
	for _, c := range cv.Cubes {
		if c.Has(Active) {
			total += LiteralCount(g, c)
		}
	}
	return total
}
