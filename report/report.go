package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/Lgeu/santa23/metric"
	"github.com/Lgeu/santa23/puzzle"
	"github.com/Lgeu/santa23/verify"

	"github.com/goccy/go-yaml"
)

// Record is the structured form of one validation outcome.
type Record struct {
	ID         *int   `json:"id,omitempty" yaml:"id,omitempty"`
	Valid      bool   `json:"valid" yaml:"valid"`
	Score      int    `json:"score" yaml:"score"`
	Wrong      int    `json:"wrong" yaml:"wrong"`
	Wildcards  int    `json:"wildcards" yaml:"wildcards"`
	Mismatches []int  `json:"mismatches,omitempty" yaml:"mismatches,omitempty"`
	Error      string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Totals is the structured form of a batch.
type Totals struct {
	Valid   bool     `json:"valid" yaml:"valid"`
	Total   int      `json:"total" yaml:"total"`
	Invalid int      `json:"invalid" yaml:"invalid"`
	Results []Record `json:"results" yaml:"results"`
}

func record(res *verify.Result) Record {
	return Record{
		Valid:     res.Valid,
		Score:     res.Score,
		Wrong:     res.Wrong,
		Wildcards: res.Wildcards,
	}
}

// Printer writes validation outcomes. Text output puts scores on Out and
// failures on Err; structured output puts everything on Out.
type Printer struct {
	Format Format
	Colors *Colors
	Out    io.Writer
	Err    io.Writer

	// Diff, when set, adds a labeling diff and mismatch positions to failed
	// results.
	Diff bool
}

func (p *Printer) colors() *Colors {
	if p.Colors == nil {
		return NoColors()
	}
	return p.Colors
}

func (p *Printer) encode(v any) error {
	switch p.Format {
	case JSONFormat:
		enc := json.NewEncoder(p.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case YAMLFormat:
		d, err := yaml.Marshal(v)
		if err != nil {
			return err
		}
		_, err = p.Out.Write(d)
		return err
	}
	return fmt.Errorf("%w: cannot encode %T as %s", ErrBadFormat, v, p.Format)
}

// Result reports a single validation against inst.
func (p *Printer) Result(inst *puzzle.Instance, res *verify.Result) error {
	if !p.Format.IsText() {
		rec := record(res)
		if p.Diff && !res.Valid {
			rec.Mismatches = metric.Mismatches(res.Final, inst.Target)
		}
		return p.encode(rec)
	}
	c := p.colors()
	if err := res.Err(); err != nil {
		fmt.Fprintln(p.Err, c.NG("%s", err))
		if p.Diff {
			fmt.Fprintf(p.Err, "mismatches: %v\n", metric.Mismatches(res.Final, inst.Target))
			fmt.Fprintf(p.Err, "diff: %s\n", Diff(res.Final, inst.Target, c))
		}
		return nil
	}
	_, err := fmt.Fprintf(p.Out, "Score = %d\n", res.Score)
	return err
}

// Summary reports a batch.
func (p *Printer) Summary(sum *verify.Summary) error {
	if !p.Format.IsText() {
		t := Totals{Valid: sum.OK(), Total: sum.Total, Invalid: sum.Invalid}
		for _, jr := range sum.Results {
			var rec Record
			if jr.Err != nil {
				rec.Error = jr.Err.Error()
			} else {
				rec = record(jr.Result)
			}
			id := jr.ID
			rec.ID = &id
			t.Results = append(t.Results, rec)
		}
		return p.encode(t)
	}
	c := p.colors()
	for _, jr := range sum.Results {
		switch {
		case jr.Err != nil:
			fmt.Fprintf(p.Out, "%04d %s %v\n", jr.ID, c.NG("error"), jr.Err)
		case !jr.Result.Valid:
			fmt.Fprintf(p.Out, "%04d %s score=%d wrong=%d wildcards=%d\n", jr.ID, c.NG("NG"), jr.Result.Score, jr.Result.Wrong, jr.Result.Wildcards)
		default:
			fmt.Fprintf(p.Out, "%04d %s score=%d wrong=%d wildcards=%d\n", jr.ID, c.OK("ok"), jr.Result.Score, jr.Result.Wrong, jr.Result.Wildcards)
		}
	}
	fmt.Fprintf(p.Out, "%s %d\n", c.Info("total score:"), sum.Total)
	status := c.OK("%t", sum.OK())
	if !sum.OK() {
		status = c.NG("%t (%d invalid)", false, sum.Invalid)
	}
	_, err := fmt.Fprintf(p.Out, "%s %s\n", c.Info("validation result:"), status)
	return err
}
