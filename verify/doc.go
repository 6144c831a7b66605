// Package verify replays solutions on puzzle instances and scores them.
//
// # Usage
//
//	seq, err := moves.Parse(text, inst)
//	res := verify.Verify(inst, seq)
//	if err := res.Err(); err != nil {
//		// too many wrong facelets
//	}
//	fmt.Println(res.Score)
//
// A solution is valid when the labeling it produces differs from the target
// in at most the instance's wildcard count of positions. The score of a
// valid solution is its number of moves.
//
// # Related Packages
//
//   - github.com/Lgeu/santa23/moves - solution parsing
//   - github.com/Lgeu/santa23/perm - permutation application
package verify
