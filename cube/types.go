// SPDX-License-Identifier: MIT
package cube

const wordBits = 64

// Part is an atomic coordinate index into a Cube's bit vector.
type Part int

// Flag is a per-Cube status bit, independent of the cube's semantic bits.
type Flag uint8

// Per-cube flags (spec.md §3).
const (
	// Prime marks a cube that has been expanded into a prime implicant.
	Prime Flag = 1 << iota

	// Covered marks a cube of the ON-set absorbed by the expansion of an
	// earlier cube; it is dropped on compaction.
	Covered

	// Active marks a cube as part of the current working sub-selection of
	// a Cover. ActiveCount on the owning Cover tracks how many cubes carry it.
	Active

	// Nonessen marks an inessential prime: its expansion absorbed nothing
	// and did not reach the maximum possible extent (spec.md §4.G step 10).
	Nonessen
)

// Cube is a bit vector of length Geometry.Size plus a small flag field.
// Bit i set means "part i is permitted"; the cube represents the
// Cartesian product, over each variable, of its permitted parts.
type Cube struct {
	bits  []uint64
	flags Flag
}

// Has reports whether flag f is set.
func (c *Cube) Has(f Flag) bool { return c.flags&f != 0 }

// Set sets flag f.
func (c *Cube) Set(f Flag) { c.flags |= f }

// Clear clears flag f.
func (c *Cube) Clear(f Flag) { c.flags &^= f }

// Cover is an ordered collection of Cubes with a cached ActiveCount and
// per-cube Active flags, letting callers mark a working sub-selection
// without physically removing elements (spec.md §3).
type Cover struct {
	Cubes       []*Cube
	ActiveCount int
}

// Geometry is the process-wide cube layout (spec.md §3), threaded
// explicitly through every call instead of living in package globals —
// this is the re-architecture spec.md §9 calls for: it lets multiple
// geometries coexist and makes the core unit-testable.
type Geometry struct {
	Size      int     // P, total number of parts
	Fullset   *Cube   // all-ones cube
	Emptyset  *Cube   // all-zeros cube
	VarMask   []*Cube // VarMask[v]: bit set of all parts of variable v
	FirstPart []int   // FirstPart[v]: index of the first part of variable v
	LastPart  []int   // LastPart[v]: index of the last part of variable v (inclusive)
	Output    int     // index of the output variable
}
