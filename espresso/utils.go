package espresso

import "github.com/katalvlaran/espresso/cube"

// freePartsList returns, in ascending order, the part indices currently
// set in freeset. Used to build the candidate-column universe for
// mincov's unate-cover search and for the RANDOM_MINCOV variant.
func freePartsList(freeset *cube.Cube, size int) []int {
	parts := make([]int, 0, size)
	for i := 0; i < size; i++ {
		if freeset.HasPart(i) {
			parts = append(parts, i)
		}
	}
	return parts
}

// clearAllParts clears every part of c up to size (used to realize
// "FREESET <- emptyset" after mincov's exact branch commits).
func clearAllParts(c *cube.Cube, size int) {
	for i := 0; i < size; i++ {
		c.ClearPart(i)
	}
}
