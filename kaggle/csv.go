package kaggle

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

var (
	ErrMissingColumn = errors.New("missing column")
	ErrBadRow        = errors.New("bad row")
)

const StateSep = ";"

// Puzzle is a row of puzzles.csv.
type Puzzle struct {
	ID            int
	Type          string
	SolutionState []string
	InitialState  []string
	Wildcards     int
}

// Entry is a row of submission.csv.
type Entry struct {
	ID    int
	Moves string
}

type table struct {
	cols map[string]int
	rows [][]string
}

func readTable(r io.Reader, want ...string) (*table, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("error reading header: %w", err)
	}
	t := &table{cols: map[string]int{}}
	for i, h := range header {
		t.cols[strings.TrimSpace(h)] = i
	}
	for _, w := range want {
		if _, ok := t.cols[w]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, w)
		}
	}
	t.rows, err = cr.ReadAll()
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (t *table) get(row []string, col string) string {
	return row[t.cols[col]]
}

func (t *table) atoi(row []string, col string, line int) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(t.get(row, col)))
	if err != nil {
		return 0, fmt.Errorf("%w %d: %s: %w", ErrBadRow, line, col, err)
	}
	return v, nil
}

// ReadPuzzles reads puzzles.csv.
func ReadPuzzles(r io.Reader) ([]Puzzle, error) {
	t, err := readTable(r, "id", "puzzle_type", "solution_state", "initial_state", "num_wildcards")
	if err != nil {
		return nil, err
	}
	res := make([]Puzzle, 0, len(t.rows))
	for i, row := range t.rows {
		line := i + 2
		id, err := t.atoi(row, "id", line)
		if err != nil {
			return nil, err
		}
		w, err := t.atoi(row, "num_wildcards", line)
		if err != nil {
			return nil, err
		}
		res = append(res, Puzzle{
			ID:            id,
			Type:          t.get(row, "puzzle_type"),
			SolutionState: strings.Split(t.get(row, "solution_state"), StateSep),
			InitialState:  strings.Split(t.get(row, "initial_state"), StateSep),
			Wildcards:     w,
		})
	}
	return res, nil
}

// ReadSubmission reads submission.csv.
func ReadSubmission(r io.Reader) ([]Entry, error) {
	t, err := readTable(r, "id", "moves")
	if err != nil {
		return nil, err
	}
	res := make([]Entry, 0, len(t.rows))
	for i, row := range t.rows {
		id, err := t.atoi(row, "id", i+2)
		if err != nil {
			return nil, err
		}
		res = append(res, Entry{ID: id, Moves: t.get(row, "moves")})
	}
	return res, nil
}

// WriteSubmission writes entries as submission.csv.
func WriteSubmission(w io.Writer, entries []Entry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "moves"}); err != nil {
		return err
	}
	for _, e := range entries {
		if err := cw.Write([]string{strconv.Itoa(e.ID), e.Moves}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// FileName is the per-puzzle file name used for instance and solution files.
func FileName(id int) string {
	return fmt.Sprintf("%04d.txt", id)
}

// ParseFileName is the inverse of FileName.
func ParseFileName(name string) (int, bool) {
	base, ok := strings.CutSuffix(name, ".txt")
	if !ok {
		return 0, false
	}
	id, err := strconv.Atoi(base)
	if err != nil || id < 0 {
		return 0, false
	}
	return id, true
}

func readFile[T any](path string, f func(io.Reader) (T, error)) (T, error) {
	var zero T
	fd, err := os.Open(path)
	if err != nil {
		return zero, fmt.Errorf("could not open %q: %w", path, err)
	}
	defer fd.Close()
	v, err := f(fd)
	if err != nil {
		return zero, fmt.Errorf("error reading %s: %w", path, err)
	}
	return v, nil
}

func LoadPuzzles(path string) ([]Puzzle, error) { return readFile(path, ReadPuzzles) }

func LoadInfo(path string) (Info, error) { return readFile(path, ReadInfo) }

func LoadSubmission(path string) ([]Entry, error) { return readFile(path, ReadSubmission) }
