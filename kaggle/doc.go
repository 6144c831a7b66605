// Package kaggle reads and writes the CSV files of the Santa 2023 permutation
// puzzle competition and converts their rows into puzzle instances.
//
// # Files
//
//   - puzzles.csv: id,puzzle_type,solution_state,initial_state,num_wildcards
//   - puzzle_info.csv: puzzle_type,allowed_moves
//   - submission.csv: id,moves
//
// States are facelet labels joined by ';'. allowed_moves is a dictionary
// literal from move name to mapping, e.g. {'f0': [0, 1, 2], 'r0': [2, 0, 1]};
// its key order fixes the catalogue order.
//
// # Related Packages
//
//   - github.com/Lgeu/santa23/puzzle - the instances rows convert to
//   - github.com/Lgeu/santa23/verify - batch validation of submissions
package kaggle
