// Package espresso implements the expansion core of a two-level Boolean
// logic minimizer in the Espresso-II tradition: given an ON-set F
// (cubes that must be covered) and an OFF-set R (cubes that must be
// avoided), Expand enlarges every non-prime cube of F into a prime
// implicant while opportunistically absorbing other cubes of F.
// MakeSparse alternates a reduction of selected output parts with a
// restricted re-expansion of the rest to lower literal count.
//
// Control flow (spec.md §2):
//
//	MakeSparse -> loop { mvReduce ; Expand(nonsparse=true) }
//	Expand     -> mini-sort F, then expand1 per non-prime cube
//	expand1    -> essenParts, elimLowering, selectFeasible,
//	              mostFrequent, mincov, in that fallback order
//
// This package owns only the algorithm; cube/part layout initialization
// and the generic minimum-unate-cover search are layered underneath in
// package cube (data model) and package unate (the do_sm_minimum_cover /
// mark_irredundant / unravel_output collaborators spec.md §6 leaves
// external). No package of this module parses or prints PLA input.
//
// Structured the way github.com/katalvlaran/lvlath's tsp and dijkstra
// packages are: a package doc with a rationale block, scratch state
// owned by one call for its duration (here expand1's local RAISE,
// FREESET, SUPER_CUBE and OVEREXPANDED_CUBE cubes), and functional
// Options for the knobs spec.md §4.F and §9 call out (mincov's
// row-count guard, the RANDOM_MINCOV variant).
package espresso
