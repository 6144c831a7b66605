package moves

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Lgeu/santa23/puzzle"
	"github.com/google/go-cmp/cmp"
)

type names map[string]int

func (n names) Lookup(name string) (int, bool) {
	i, ok := n[name]
	return i, ok
}

var catalogue = names{"f0": 0, "r1": 1, "d0": 2}

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Sequence
	}{
		{"single", "f0", Sequence{{0, 1}}},
		{"inverse", "-r1", Sequence{{1, -1}}},
		{"mixed", "f0.-d0.r1.r1", Sequence{{0, 1}, {2, -1}, {1, 1}, {1, 1}}},
		{"trimmed", "  f0.-f0\n", Sequence{{0, 1}, {0, -1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.text, catalogue)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
			}
			if got.Score() != len(tt.want) {
				t.Errorf("Score() = %d, want %d", got.Score(), len(tt.want))
			}
		})
	}
}

func TestParse_Unknown(t *testing.T) {
	tests := []struct {
		text  string
		token string
		index int
	}{
		{"f0.x9", "x9", 1},
		{"--f0", "-f0", 0},
		{"f0..r1", "", 1},
		{"F0", "F0", 0},
		{"", "", 0},
		{" \n", "", 0},
		{"-", "", 0},
	}
	for _, tt := range tests {
		_, err := Parse(tt.text, catalogue)
		if !errors.Is(err, ErrUnknownMove) {
			t.Fatalf("Parse(%q) error = %v, want ErrUnknownMove", tt.text, err)
		}
		var uErr *UnknownMoveError
		if !errors.As(err, &uErr) {
			t.Fatalf("Parse(%q) error %T", tt.text, err)
		}
		if uErr.Token != tt.token || uErr.Index != tt.index {
			t.Errorf("Parse(%q) = token %q index %d, want %q %d", tt.text, uErr.Token, uErr.Index, tt.token, tt.index)
		}
	}
}

func TestFormat(t *testing.T) {
	all := []string{"f0", "r1", "d0"}
	seq := Sequence{{0, 1}, {2, -1}, {1, 2}, {0, -2}}
	want := "f0.-d0.r1.r1.-f0.-f0"
	if got := seq.Format(all); got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
	back, err := Parse(want, catalogue)
	if err != nil {
		t.Fatal(err)
	}
	if got := back.Format(all); got != want {
		t.Errorf("Format(Parse()) = %q, want %q", got, want)
	}
	if got := (Sequence{}).Format(all); got != "" {
		t.Errorf("empty Format() = %q", got)
	}
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "0000.txt")
	if err := os.WriteFile(path, []byte("r1.-f0\n"), 0644); err != nil {
		t.Fatal(err)
	}
	got, err := ReadFile(path, catalogue)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(Sequence{puzzle.Ref{Move: 1, Power: 1}, puzzle.Ref{Move: 0, Power: -1}}, got); diff != "" {
		t.Errorf("ReadFile() mismatch (-want +got):\n%s", diff)
	}
}
