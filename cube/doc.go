// SPDX-License-Identifier: MIT

// Package cube implements the bit-vector data model for multi-valued
// Boolean cubes used by the espresso expansion core.
//
// A Part is an atomic coordinate index in [0, Geometry.Size). Every
// multi-valued variable owns a contiguous range of parts; one
// distinguished variable is the output. A Cube is a bit vector of
// length Geometry.Size: bit i set means "part i is permitted". A Cube
// represents the Cartesian product, over each variable, of the subset
// of its parts whose bits are set.
//
// A Cover is an ordered collection of Cubes together with a cached
// ActiveCount and a per-Cube Active flag, used to mark a working
// sub-selection without physically removing elements — sf_inactive
// materializes a compacted Cover containing only Active cubes.
//
// Geometry is process state set up once before expansion begins
// (cube.size/fullset/emptyset/var_mask/first_part/last_part/output in
// the original C sources): here it is an explicit value threaded
// through every call instead of a package-level global, so multiple
// geometries can coexist in one process and in one test binary.
//
// Every Cube also carries flag bits (Prime, Covered, Active, Nonessen).
// The flags share no storage with the semantic bits: they live in a
// small side field, not packed into the bit vector itself, which keeps
// Get/Set O(1) and keeps flag mutation independent of the set algebra.
package cube
