// SPDX-License-Identifier: MIT
package cube

// NewCover allocates an empty Cover with capacity for n cubes (new_cover).
func NewCover(n int) *Cover {
	return &Cover{Cubes: make([]*Cube, 0, n)}
}

// FreeCover is a no-op (see Geometry.FreeCube); kept to document the end
// of a Cover's lifetime the way spec.md §5/§6 name free_cover/sf_free.
func FreeCover(*Cover) {}

// SfFree is an alias of FreeCover matching the sf_free name in spec.md §6.
func SfFree(c *Cover) { FreeCover(c) }

// GetSet returns the i'th cube of the cover (GETSET(cover, i)).
func (cv *Cover) GetSet(i int) *Cube { return cv.Cubes[i] }

// Add appends c to the cover. The caller decides c's initial flags; Add
// does not touch ActiveCount — call SetActive explicitly if c should
// start active, matching the discipline of never mutating ActiveCount
// without going through the helper (spec.md §9 "active_count discipline").
func (cv *Cover) Add(c *Cube) {
	cv.Cubes = append(cv.Cubes, c)
}

// SetActive marks c Active and, if it was not already, increments the
// owning cover's ActiveCount. Every routine that flips Active must go
// through SetActive/ClearActive so the cached count never drifts
// (spec.md §9).
func (cv *Cover) SetActive(c *Cube) {
	if !c.Has(Active) {
		c.Set(Active)
		cv.ActiveCount++
	}
}

// ClearActive marks c inactive and, if it was active, decrements
// ActiveCount.
func (cv *Cover) ClearActive(c *Cube) {
	if c.Has(Active) {
		c.Clear(Active)
		cv.ActiveCount--
	}
}

// ActivateAll marks every cube of the cover Active and resets ActiveCount
// to len(Cubes) (used by expand1 step 2 to activate all of BB).
func (cv *Cover) ActivateAll() {
	for _, c := range cv.Cubes {
		c.Set(Active)
	}
	cv.ActiveCount = len(cv.Cubes)
}

// ActivateWhere marks Active every cube for which keep returns true, and
// leaves every other cube inactive, recomputing ActiveCount from scratch
// (used by expand1 step 2 to activate only the non-Prime, non-Covered
// cubes of CC).
func (cv *Cover) ActivateWhere(keep func(*Cube) bool) {
	cv.ActiveCount = 0
	for _, c := range cv.Cubes {
		if keep(c) {
			c.Set(Active)
			cv.ActiveCount++
		} else {
			c.Clear(Active)
		}
	}
}

// SfActive recomputes ActiveCount from the current Active flags
// (sf_active) — used after external code has flipped flags directly.
func SfActive(cv *Cover) {
	n := 0
	for _, c := range cv.Cubes {
		if c.Has(Active) {
			n++
		}
	}
	cv.ActiveCount = n
}

// SfInactive materializes a compacted cover containing only the cubes for
// which keep returns true (sf_inactive — named for its typical caller,
// which keeps the cubes that are NOT flagged Covered/inactive). The
// returned cover's cubes are freshly marked Active, with ActiveCount set
// to the number kept.
func SfInactive(cv *Cover, keep func(*Cube) bool) *Cover {
	out := NewCover(len(cv.Cubes))
	for _, c := range cv.Cubes {
		if keep(c) {
			c.Set(Active)
			out.Add(c)
		}
	}
	out.ActiveCount = len(out.Cubes)
	return out
}
