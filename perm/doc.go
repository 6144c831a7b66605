// Package perm provides sparse permutations over position indices.
//
// # Usage
//
//	// mapping[i] is the destination of position i
//	p, err := perm.New([]int{1, 2, 0})
//
//	// apply in place, twice, then undo
//	perm.ApplyInPlace(p, state, 2)
//	perm.ApplyInPlace(p, state, -2)
//
// A Sparse stores only the positions it moves, so applying it costs time
// proportional to the moved positions and not to the labeling length.
//
// # Related Packages
//
//   - github.com/Lgeu/santa23/puzzle - move catalogues built from mappings
//   - github.com/Lgeu/santa23/verify - replays solutions with ApplyInPlace
package perm
