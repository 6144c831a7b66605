package verify

import (
	"errors"
	"fmt"

	"github.com/Lgeu/santa23/metric"
	"github.com/Lgeu/santa23/perm"
	"github.com/Lgeu/santa23/puzzle"
)

var ErrTooManyWrong = errors.New("too many wrong facelets")

// ToleranceError reports a solution leaving more wrong facelets than the
// instance allows.
type ToleranceError struct {
	Wrong     int
	Wildcards int
}

func (e *ToleranceError) Error() string {
	return fmt.Sprintf("%s: %d > wildcards: %d", ErrTooManyWrong, e.Wrong, e.Wildcards)
}

func (e *ToleranceError) Unwrap() error { return ErrTooManyWrong }

// Result is the outcome of replaying one solution.
type Result struct {
	Score     int
	Wrong     int
	Wildcards int
	Valid     bool
	Final     puzzle.Labeling
}

// Err returns a *ToleranceError if r is not valid.
func (r *Result) Err() error {
	if r.Valid {
		return nil
	}
	return &ToleranceError{Wrong: r.Wrong, Wildcards: r.Wildcards}
}

// Replay applies refs in order to a copy of the instance's initial labeling.
func Replay(inst *puzzle.Instance, refs []puzzle.Ref) puzzle.Labeling {
	state := inst.Initial.Clone()
	for _, r := range refs {
		perm.ApplyInPlace(inst.Move(r.Move), state, r.Power)
	}
	return state
}

// Verify replays refs and compares the result to the target.
func Verify(inst *puzzle.Instance, refs []puzzle.Ref) *Result {
	final := Replay(inst, refs)
	wrong := metric.Wrong(final, inst.Target)
	return &Result{
		Score:     len(refs),
		Wrong:     wrong,
		Wildcards: inst.W,
		Valid:     wrong <= inst.W,
		Final:     final,
	}
}
