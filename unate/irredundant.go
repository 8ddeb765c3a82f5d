package unate

import "github.com/katalvlaran/espresso/cube"

// MarkIrredundant sets Active on every cube of f that is essential —
// not entirely contained in some other active cube of f or d — and
// clears Active on every cube that a single other active cube already
// subsumes (mark_irredundant, spec.md §6).
//
// This is a single-cube containment approximation of full irredundant-
// cover analysis (which would check whether the union of every OTHER
// cube, not just one, already covers p). mark_irredundant is explicitly
// out of scope for this spec (an external collaborator); mv_reduce only
// needs a conservative, deterministic redundancy test to decide whether
// a cube survives cofactoring on one output part, so the simpler
// single-cube test is documented here rather than silently assumed.
func MarkIrredundant(f, d *cube.Cover) {
	for _, p := range f.Cubes {
		if !p.Has(cube.Active) {
			continue
		}
		if subsumedByOther(p, f.Cubes) || subsumedByOther(p, d.Cubes) {
			f.ClearActive(p)
		} else {
			f.SetActive(p)
		}
	}
}

func subsumedByOther(p *cube.Cube, others []*cube.Cube) bool {
	for _, q := range others {
		if q == p || !q.Has(cube.Active) {
			continue
		}
		if cube.SetpImplies(p, q) {
			return true
		}
	}
	return false
}
