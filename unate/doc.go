// Package unate implements the three external collaborators spec.md §6
// names but leaves undesigned: do_sm_minimum_cover (a minimum-cardinality
// unate covering search), mark_irredundant (essential/redundant cube
// marking for sparse-variable cleanup), and unravel_output (expanding a
// multi-valued-output row into one row per single output part).
//
// do_sm_minimum_cover is exactly a minimum hitting-set search over a 0/1
// matrix — the same shape as a branch-and-bound TSP search over a
// distance matrix. This package's MinimumCover follows the same
// deterministic depth-first branch-and-bound texture as
// github.com/katalvlaran/lvlath's tsp.bbEngine: an explicit engine
// struct instead of closures, a sparse soft size guard, and a
// deterministic branch order so repeated runs are byte-identical
// (spec.md §8 property 7).
//
// Rows are stored as github.com/bits-and-blooms/bitset.BitSet: unlike
// cube.Cube, a unate-cover row carries no flag bits and no per-variable
// structure to protect, so a plain general-purpose bitset is the right
// tool here (see DESIGN.md for why cube.Cube itself does not use one).
package unate
