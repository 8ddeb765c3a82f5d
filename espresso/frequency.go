package espresso

import "github.com/katalvlaran/espresso/cube"

// mostFrequent returns the free part (a part set in freeset) that
// appears most often across cc's Active cubes, or -1 if freeset has no
// free parts left (most_frequent, spec.md §4.E). cc may be nil, in
// which case every free part has count zero and the smallest free index
// wins — matching the deterministic tie-break of spec.md §5
// ("ties by smallest index").
func mostFrequent(g *cube.Geometry, cc *cube.Cover, freeset *cube.Cube) int {
	counters := make([]int, g.Size)
	if cc != nil {
		for _, p := range cc.Cubes {
			if p.Has(cube.Active) {
				cube.SetAdjCnt(p, counters, 1)
			}
		}
	}

	best, bestCount := -1, -1
	for i := 0; i < g.Size; i++ {
		if !freeset.HasPart(i) {
			continue
		}
		if counters[i] > bestCount {
			best, bestCount = i, counters[i]
		}
	}

	return best
}
