// Package puzzle holds permutation puzzle instances: the move catalogue,
// the initial and target labelings and the wildcard tolerance.
//
// # Text Format
//
// Instances are read as whitespace separated tokens:
//
//	n m w
//	puzzle_type
//	move_name_1 ... move_name_m
//	target_1 ... target_n
//	initial_1 ... initial_n
//	mapping_1_1 ... mapping_1_n
//	...
//	mapping_m_1 ... mapping_m_n
//
// optionally followed by a merged solution:
//
//	k
//	move_index_1 power_1 ... move_index_k power_k
//
// # Related Packages
//
//   - github.com/Lgeu/santa23/perm - move permutations
//   - github.com/Lgeu/santa23/kaggle - competition CSV sources of instances
package puzzle
