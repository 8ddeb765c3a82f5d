// SPDX-License-Identifier: MIT
package cube

// NewGeometry builds the process-wide cube layout from the per-variable
// part counts, in order, with output set to the index of the output
// variable. It mirrors the one-time setup the original sources perform
// before any expansion: Fullset, Emptyset, VarMask, FirstPart, LastPart
// are all derived once and reused read-only afterwards.
//
// varParts[v] is the number of parts owned by variable v; every entry
// must be >= 1 (ErrBadPartCount). output must index a valid variable,
// i.e. lie in [0, len(varParts)) (ErrPartOutOfRange otherwise).
func NewGeometry(varParts []int, output int) (*Geometry, error) {
	for _, n := range varParts {
		if n <= 0 {
			return nil, ErrBadPartCount
		}
	}
	if output < 0 || output >= len(varParts) {
		return nil, ErrPartOutOfRange
	}

	g := &Geometry{
		VarMask:   make([]*Cube, len(varParts)),
		FirstPart: make([]int, len(varParts)),
		LastPart:  make([]int, len(varParts)),
		Output:    output,
	}

	first := 0
	for v, n := range varParts {
		g.FirstPart[v] = first
		g.LastPart[v] = first + n - 1
		first += n
	}
	g.Size = first

	g.Fullset = g.NewCube()
	g.Emptyset = g.NewCube()
	for i := 0; i < g.Size; i++ {
		g.Fullset.setBit(i)
	}
	for v := range varParts {
		m := g.NewCube()
		for i := g.FirstPart[v]; i <= g.LastPart[v]; i++ {
			m.setBit(i)
		}
		g.VarMask[v] = m
	}

	return g, nil
}

func wordsFor(size int) int { return (size + wordBits - 1) / wordBits }

// NewCube allocates a fresh, all-zero cube sized for this Geometry.
// Go's garbage collector makes FreeCube a documentation-only no-op
// (spec.md §6 lists new_cube/free_cube as external collaborators); both
// are kept so the ownership rules of spec.md §5 stay expressible.
func (g *Geometry) NewCube() *Cube {
	return &Cube{bits: make([]uint64, wordsFor(g.Size))}
}

// FreeCube is a no-op: the allocator is garbage collected. Kept so call
// sites can document "this cube's lifetime ends here" the way the
// original SUPER_CUBE/RAISE/FREESET/OVEREXPANDED_CUBE scratch cubes
// were freed at the end of one expand1 call (spec.md §5).
func (g *Geometry) FreeCube(*Cube) {}

func (c *Cube) setBit(i int)   { c.bits[i/wordBits] |= 1 << uint(i%wordBits) }
func (c *Cube) clearBit(i int) { c.bits[i/wordBits] &^= 1 << uint(i%wordBits) }
func (c *Cube) bit(i int) bool { return c.bits[i/wordBits]&(1<<uint(i%wordBits)) != 0 }
