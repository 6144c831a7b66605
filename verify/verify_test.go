package verify

import (
	"context"
	"errors"
	"testing"

	"github.com/Lgeu/santa23/moves"
	"github.com/Lgeu/santa23/perm"
	"github.com/Lgeu/santa23/puzzle"
	"github.com/google/go-cmp/cmp"
)

// labels A, B, C are 0, 1, 2
const (
	A = iota
	B
	C
)

func cycleInstance(t *testing.T, target puzzle.Labeling, w int) *puzzle.Instance {
	t.Helper()
	inst, err := puzzle.New("toy", []string{"r"}, target, puzzle.Labeling{A, B, C}, [][]int{{1, 2, 0}}, w)
	if err != nil {
		t.Fatal(err)
	}
	return inst
}

func run(t *testing.T, inst *puzzle.Instance, text string) *Result {
	t.Helper()
	seq, err := moves.Parse(text, inst)
	if err != nil {
		t.Fatalf("Parse(%q) error = %v", text, err)
	}
	return Verify(inst, seq)
}

func TestVerify_EndToEnd(t *testing.T) {
	inst := cycleInstance(t, puzzle.Labeling{B, C, A}, 0)

	res := run(t, inst, "r")
	if !res.Valid || res.Score != 1 || res.Wrong != 0 || res.Err() != nil {
		t.Errorf("r: %+v", res)
	}

	res = run(t, inst, "-r")
	if diff := cmp.Diff(puzzle.Labeling{C, A, B}, res.Final); diff != "" {
		t.Errorf("-r final mismatch (-want +got):\n%s", diff)
	}
	if res.Valid || res.Wrong != 3 {
		t.Errorf("-r: %+v", res)
	}
	var tErr *ToleranceError
	if err := res.Err(); !errors.As(err, &tErr) || !errors.Is(err, ErrTooManyWrong) {
		t.Fatalf("-r Err() = %v", err)
	}
	if tErr.Wrong != 3 || tErr.Wildcards != 0 {
		t.Errorf("ToleranceError = %+v", tErr)
	}
	if got, want := tErr.Error(), "too many wrong facelets: 3 > wildcards: 0"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	if diff := cmp.Diff(puzzle.Labeling{A, B, C}, inst.Initial); diff != "" {
		t.Errorf("Verify mutated the initial labeling:\n%s", diff)
	}
}

func TestVerify_RepeatedPower(t *testing.T) {
	inst := cycleInstance(t, puzzle.Labeling{C, A, B}, 0)
	res := run(t, inst, "r.r")
	if !res.Valid || res.Score != 2 {
		t.Errorf("r.r: %+v", res)
	}
	powered := Replay(inst, []puzzle.Ref{{Move: 0, Power: 2}})
	if diff := cmp.Diff(res.Final, powered); diff != "" {
		t.Errorf("r.r differs from power 2 (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(perm.Apply(inst.Move(0), []string{"A", "B", "C"}, 2), []string{"C", "A", "B"}); diff != "" {
		t.Errorf("power 2 mismatch:\n%s", diff)
	}
}

func TestVerify_Threshold(t *testing.T) {
	// swap of 0 and 1 leaves exactly 2 wrong facelets
	mapping := [][]int{{1, 0, 2, 3}}
	initial := puzzle.Labeling{0, 1, 2, 3}
	for _, tt := range []struct {
		w     int
		valid bool
	}{{3, true}, {2, true}, {1, false}, {0, false}} {
		inst, err := puzzle.New("toy", []string{"s"}, initial, initial, mapping, tt.w)
		if err != nil {
			t.Fatal(err)
		}
		res := run(t, inst, "s")
		if res.Wrong != 2 {
			t.Fatalf("Wrong = %d, want 2", res.Wrong)
		}
		if res.Valid != tt.valid {
			t.Errorf("w=%d: Valid = %t, want %t", tt.w, res.Valid, tt.valid)
		}
	}
}

func TestVerify_Empty(t *testing.T) {
	inst := cycleInstance(t, puzzle.Labeling{A, B, C}, 0)
	for _, text := range []string{"", " \n"} {
		_, err := moves.Parse(text, inst)
		var uErr *moves.UnknownMoveError
		if !errors.As(err, &uErr) || uErr.Token != "" {
			t.Errorf("Parse(%q) error = %v, want empty unknown move", text, err)
		}
	}
	res := Verify(inst, nil)
	if !res.Valid || res.Score != 0 || res.Wrong != 0 {
		t.Errorf("no refs: %+v", res)
	}
}

var errBroken = errors.New("broken puzzle")

func TestBatch(t *testing.T) {
	solved := cycleInstance(t, puzzle.Labeling{B, C, A}, 0)
	loose := cycleInstance(t, puzzle.Labeling{B, C, A}, 3)
	jobs := []Job{
		{ID: 0, Instance: solved, Solution: "r"},
		{ID: 1, Instance: solved, Solution: "-r"},
		{ID: 2, Instance: solved, Solution: "r.q"},
		{ID: 3, Instance: loose, Solution: "-r.-r.-r.-r"},
		{ID: 4, Instance: solved, Solution: "r.r.r.r"},
		{ID: 5, Err: errBroken},
		{ID: 6, Instance: solved, Solution: ""},
	}
	for _, workers := range []int{0, 1, 3} {
		sum, err := Batch(context.Background(), jobs, BatchOptions{Workers: workers})
		if err != nil {
			t.Fatalf("Batch() error = %v", err)
		}
		var ids []int
		var oks []bool
		for _, r := range sum.Results {
			ids = append(ids, r.ID)
			oks = append(oks, r.OK())
		}
		if diff := cmp.Diff([]int{0, 1, 2, 3, 4, 5, 6}, ids); diff != "" {
			t.Errorf("result order mismatch:\n%s", diff)
		}
		if diff := cmp.Diff([]bool{true, false, false, true, true, false, false}, oks); diff != "" {
			t.Errorf("result validity mismatch:\n%s", diff)
		}
		if !errors.Is(sum.Results[2].Err, moves.ErrUnknownMove) {
			t.Errorf("job 2 Err = %v", sum.Results[2].Err)
		}
		if !errors.Is(sum.Results[5].Err, errBroken) || sum.Results[5].Result != nil {
			t.Errorf("job 5 = %+v", sum.Results[5])
		}
		if !errors.Is(sum.Results[6].Err, moves.ErrUnknownMove) {
			t.Errorf("job 6 Err = %v", sum.Results[6].Err)
		}
		if sum.Total != 9 || sum.Invalid != 4 || sum.OK() {
			t.Errorf("summary total=%d invalid=%d", sum.Total, sum.Invalid)
		}
	}
}

func TestBatch_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	inst := cycleInstance(t, puzzle.Labeling{B, C, A}, 0)
	_, err := Batch(ctx, []Job{{Instance: inst, Solution: "r"}}, BatchOptions{})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Batch() error = %v, want context.Canceled", err)
	}
}
