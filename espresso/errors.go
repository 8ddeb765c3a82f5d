package espresso

import "errors"

// Sentinel errors for the espresso package.
var (
	// ErrNotOrthogonal is returned (never panics) when expand1 detects a
	// distance-0 pair between the ON-set and the OFF-set — a precondition
	// violation of the caller (spec.md §7). Recovery is not meaningful:
	// the problem instance itself is malformed.
	ErrNotOrthogonal = errors.New("espresso: ON-set and OFF-set are not orthogonal")

	// ErrNilGeometry is returned when a nil *cube.Geometry is passed to
	// Expand or MakeSparse.
	ErrNilGeometry = errors.New("espresso: geometry is nil")

	// ErrNilCover is returned when a required cover argument is nil.
	ErrNilCover = errors.New("espresso: cover is nil")

	// ErrNilRandomSource is returned when WithRandomMincov was applied
	// without a non-nil RandomSource.
	ErrNilRandomSource = errors.New("espresso: RandomMincov enabled with a nil RandomSource")
)
