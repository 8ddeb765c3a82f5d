package unate

import "errors"

// Sentinel errors for the unate package.
var (
	// ErrEmptyRow indicates a row of the covering matrix has no columns
	// at all, making the instance infeasible: no column can ever hit it.
	ErrEmptyRow = errors.New("unate: row has no columns to hit")

	// ErrTooManyRows is a defensive backstop returned when MinimumCover is
	// given more than maxRows (4096) rows. It sits behind spec.md §4.F's
	// own size guard (sum of per-row expansions > 500), at which mincov in
	// package espresso already bails to the heuristic branch, so in
	// practice callers never trigger it.
	ErrTooManyRows = errors.New("unate: row count exceeds the safety guard")
)
