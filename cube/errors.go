// SPDX-License-Identifier: MIT
package cube

import "errors"

// Sentinel errors for the cube package.
var (
	// ErrNotOrthogonal indicates a distance-0 pair was found between a
	// cube that must be covered and a cube that must be avoided. This is
	// a precondition violation of the caller (spec.md §7): the ON-set and
	// OFF-set are required to be orthogonal before expansion begins.
	ErrNotOrthogonal = errors.New("cube: ON-set and OFF-set are not orthogonal")

	// ErrBadPartCount indicates a Geometry was constructed with a variable
	// that owns zero parts.
	ErrBadPartCount = errors.New("cube: variable must own at least one part")

	// ErrPartOutOfRange indicates a part index outside [0, Geometry.Size).
	ErrPartOutOfRange = errors.New("cube: part index out of range")

	// ErrEmptyCube indicates a cube with all bits of some variable clear;
	// such a cube denotes the empty set and must be discarded rather than
	// carried forward (spec.md §3 invariants).
	ErrEmptyCube = errors.New("cube: cube is empty in some variable")
)
