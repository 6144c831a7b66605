package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/Lgeu/santa23/moves"
	"github.com/Lgeu/santa23/puzzle"
	"github.com/Lgeu/santa23/verify"
	"github.com/google/go-cmp/cmp"
)

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"t": TextFormat, "text": TextFormat, "y": YAMLFormat, "json": JSONFormat} {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Errorf("ParseFormat(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseFormat("xml"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("ParseFormat(xml) error = %v", err)
	}
	var f Format
	if err := f.UnmarshalText([]byte("yaml")); err != nil || f != YAMLFormat {
		t.Errorf("UnmarshalText(yaml) = %v, %v", f, err)
	}
	if JSONFormat.String() != "json" {
		t.Errorf("String() = %q", JSONFormat.String())
	}
}

func TestDiff(t *testing.T) {
	tests := []struct {
		name      string
		got, want puzzle.Labeling
		out       string
	}{
		{"equal", puzzle.Labeling{0, 1, 2}, puzzle.Labeling{0, 1, 2}, "ABC"},
		{"substitution", puzzle.Labeling{0, 1, 3}, puzzle.Labeling{0, 1, 2}, "AB[-C-]{+D+}"},
		{"empty", nil, nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Diff(tt.got, tt.want, nil); got != tt.out {
				t.Errorf("Diff() = %q, want %q", got, tt.out)
			}
		})
	}
	if diff := cmp.Diff([]rune{'A', 'z', '9', 0xE000 + 62}, Runes(puzzle.Labeling{0, 51, 61, 62})); diff != "" {
		t.Errorf("Runes() mismatch (-want +got):\n%s", diff)
	}
}

func toy(t *testing.T, w int) *puzzle.Instance {
	t.Helper()
	inst, err := puzzle.New("toy", []string{"r"}, puzzle.Labeling{1, 2, 0}, puzzle.Labeling{0, 1, 2}, [][]int{{1, 2, 0}}, w)
	if err != nil {
		t.Fatal(err)
	}
	return inst
}

func verifyText(t *testing.T, inst *puzzle.Instance, text string) *verify.Result {
	t.Helper()
	seq, err := moves.Parse(text, inst)
	if err != nil {
		t.Fatal(err)
	}
	return verify.Verify(inst, seq)
}

func TestPrinter_Text(t *testing.T) {
	inst := toy(t, 0)
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	p := &Printer{Out: out, Err: errOut, Diff: true}

	if err := p.Result(inst, verifyText(t, inst, "r")); err != nil {
		t.Fatal(err)
	}
	if out.String() != "Score = 1\n" || errOut.Len() != 0 {
		t.Errorf("success output = %q / %q", out.String(), errOut.String())
	}

	out.Reset()
	if err := p.Result(inst, verifyText(t, inst, "-r")); err != nil {
		t.Fatal(err)
	}
	if out.Len() != 0 {
		t.Errorf("failure wrote to Out: %q", out.String())
	}
	lines := strings.Split(strings.TrimSpace(errOut.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("failure output = %q", errOut.String())
	}
	if lines[0] != "too many wrong facelets: 3 > wildcards: 0" {
		t.Errorf("line 0 = %q", lines[0])
	}
	if lines[1] != "mismatches: [0 1 2]" {
		t.Errorf("line 1 = %q", lines[1])
	}
}

func TestPrinter_JSON(t *testing.T) {
	inst := toy(t, 0)
	out := &bytes.Buffer{}
	p := &Printer{Format: JSONFormat, Out: out, Err: out, Diff: true}
	if err := p.Result(inst, verifyText(t, inst, "-r")); err != nil {
		t.Fatal(err)
	}
	var rec Record
	if err := json.Unmarshal(out.Bytes(), &rec); err != nil {
		t.Fatal(err)
	}
	want := Record{Valid: false, Score: 1, Wrong: 3, Wildcards: 0, Mismatches: []int{0, 1, 2}}
	if diff := cmp.Diff(want, rec); diff != "" {
		t.Errorf("record mismatch (-want +got):\n%s", diff)
	}
}

func TestPrinter_Summary(t *testing.T) {
	inst := toy(t, 0)
	jobs := []verify.Job{
		{ID: 0, Instance: inst, Solution: "r"},
		{ID: 1, Instance: inst, Solution: "-r"},
		{ID: 2, Instance: inst, Solution: "x"},
	}
	sum, err := verify.Batch(t.Context(), jobs, verify.BatchOptions{Workers: 1})
	if err != nil {
		t.Fatal(err)
	}

	out := &bytes.Buffer{}
	p := &Printer{Out: out, Err: out}
	if err := p.Summary(sum); err != nil {
		t.Fatal(err)
	}
	want := `0000 ok score=1 wrong=0 wildcards=0
0001 NG score=1 wrong=3 wildcards=0
0002 error invalid move: x
total score: 1
validation result: false (2 invalid)
`
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Errorf("summary mismatch (-want +got):\n%s", diff)
	}

	out.Reset()
	p.Format = YAMLFormat
	if err := p.Summary(sum); err != nil {
		t.Fatal(err)
	}
	for _, s := range []string{"valid: false", "total: 1", "invalid: 2", "invalid move: x"} {
		if !strings.Contains(out.String(), s) {
			t.Errorf("yaml summary missing %q:\n%s", s, out.String())
		}
	}
}
