package puzzle

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/Lgeu/santa23/debug"
)

// Load reads an instance in text format from the file at path.
func Load(path string) (*Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open %q: %w", path, err)
	}
	defer f.Close()
	inst, err := Read(f)
	if err != nil {
		var lErr *LoadError
		if errors.As(err, &lErr) && lErr.Source == "" {
			lErr.Source = path
			return nil, lErr
		}
		return nil, fmt.Errorf("error loading %s: %w", path, err)
	}
	return inst, nil
}

// Read reads an instance in text format.
func Read(r io.Reader) (*Instance, error) {
	tr := &tokenReader{sc: bufio.NewScanner(r)}
	tr.sc.Split(bufio.ScanWords)

	n := tr.num("n")
	m := tr.num("m")
	w := tr.num("w")
	typ := tr.word("puzzle type")
	if tr.err != nil {
		return nil, tr.err
	}
	if n < 0 || m < 0 {
		return nil, &LoadError{Err: fmt.Errorf("%w: n=%d m=%d", ErrMalformed, n, m)}
	}
	var names []string
	for i := 0; i < m && tr.err == nil; i++ {
		names = append(names, tr.word("move name"))
	}
	target := tr.nums("target", n)
	initial := tr.nums("initial", n)
	var mappings [][]int
	for i := 0; i < m && tr.err == nil; i++ {
		mappings = append(mappings, tr.nums("mapping", n))
	}
	if tr.err != nil {
		return nil, tr.err
	}
	if debug.Load() {
		debug.Logf("load type=%s n=%d m=%d w=%d initial=%s\n", typ, n, m, w, initial)
	}
	inst, err := New(typ, names, target, initial, mappings, w)
	if err != nil {
		return nil, err
	}
	if !tr.sc.Scan() {
		return inst, tr.sc.Err()
	}
	k, err := strconv.Atoi(tr.sc.Text())
	if err != nil || k < 0 {
		return nil, &LoadError{Err: fmt.Errorf("%w: bad merged solution length %q", ErrMalformed, tr.sc.Text())}
	}
	prior := make([]Ref, 0, min(k, maxPrealloc))
	for range k {
		r := Ref{Move: tr.num("merged move"), Power: tr.num("merged power")}
		if tr.err != nil {
			return nil, tr.err
		}
		if r.Move < 0 || r.Move >= m {
			return nil, &LoadError{Err: fmt.Errorf("%w: merged move %d out of range [0, %d)", ErrMalformed, r.Move, m)}
		}
		if r.Power != 1 && r.Power != -1 {
			return nil, &LoadError{Err: fmt.Errorf("%w: merged power %d is not 1 or -1", ErrMalformed, r.Power)}
		}
		prior = append(prior, r)
	}
	inst.Prior = prior
	return inst, nil
}

type tokenReader struct {
	sc  *bufio.Scanner
	err error
}

func (tr *tokenReader) word(what string) string {
	if tr.err != nil {
		return ""
	}
	if !tr.sc.Scan() {
		err := tr.sc.Err()
		if err == nil {
			err = io.ErrUnexpectedEOF
		}
		tr.err = &LoadError{Err: fmt.Errorf("%w: reading %s: %w", ErrMalformed, what, err)}
		return ""
	}
	return tr.sc.Text()
}

func (tr *tokenReader) num(what string) int {
	s := tr.word(what)
	if tr.err != nil {
		return 0
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		tr.err = &LoadError{Err: fmt.Errorf("%w: reading %s: %w", ErrMalformed, what, err)}
		return 0
	}
	return v
}

// maxPrealloc bounds capacity taken from untrusted counts.
const maxPrealloc = 1 << 16

// nums reads n numbers, stopping at the first error.
func (tr *tokenReader) nums(what string, n int) []int {
	res := make([]int, 0, min(n, maxPrealloc))
	for i := 0; i < n && tr.err == nil; i++ {
		res = append(res, tr.num(what))
	}
	return res
}

// Write writes inst in text format without its merged solution.
func Write(w io.Writer, inst *Instance) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d %d %d\n", inst.N, inst.M, inst.W)
	fmt.Fprintf(bw, "%s\n", inst.Type)
	fmt.Fprintf(bw, "%s\n", strings.Join(inst.Names, " "))
	writeInts(bw, inst.Target)
	writeInts(bw, inst.Initial)
	for _, p := range inst.Moves {
		writeInts(bw, p.Mapping())
	}
	return bw.Flush()
}

// WriteMerged writes inst followed by refs as a merged solution.
func WriteMerged(w io.Writer, inst *Instance, refs []Ref) error {
	if err := Write(w, inst); err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d\n", len(refs))
	for i, r := range refs {
		if i > 0 {
			bw.WriteByte(' ')
		}
		fmt.Fprintf(bw, "%d %d", r.Move, r.Power)
	}
	bw.WriteByte('\n')
	return bw.Flush()
}

func writeInts(bw *bufio.Writer, xs []int) {
	for i, x := range xs {
		if i > 0 {
			bw.WriteByte(' ')
		}
		bw.WriteString(strconv.Itoa(x))
	}
	bw.WriteByte('\n')
}
