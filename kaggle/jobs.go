package kaggle

import (
	"errors"
	"fmt"

	"github.com/Lgeu/santa23/verify"
)

var ErrUnknownPuzzle = errors.New("unknown puzzle id")

// Jobs pairs submission entries with their puzzles, skipping those rejected
// by filter. filter may be nil. A puzzle that cannot be converted, or on
// which filter fails, becomes a Job carrying the error so the rest of the
// submission is still checked. An entry naming no puzzle is an error.
func Jobs(puzzles []Puzzle, info Info, entries []Entry, filter *Filter) ([]verify.Job, error) {
	byID := make(map[int]*Puzzle, len(puzzles))
	for i := range puzzles {
		byID[puzzles[i].ID] = &puzzles[i]
	}
	jobs := make([]verify.Job, 0, len(entries))
	for _, e := range entries {
		p, ok := byID[e.ID]
		if !ok {
			return nil, fmt.Errorf("%w: %d", ErrUnknownPuzzle, e.ID)
		}
		ok, err := filter.Match(p, e.Moves)
		if err != nil {
			jobs = append(jobs, verify.Job{ID: e.ID, Err: err})
			continue
		}
		if !ok {
			continue
		}
		inst, err := p.Instance(info)
		jobs = append(jobs, verify.Job{ID: e.ID, Instance: inst, Solution: e.Moves, Err: err})
	}
	return jobs, nil
}
