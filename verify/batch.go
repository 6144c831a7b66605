package verify

import (
	"context"
	"runtime"

	"github.com/Lgeu/santa23/debug"
	"github.com/Lgeu/santa23/moves"
	"github.com/Lgeu/santa23/puzzle"

	"golang.org/x/sync/errgroup"
)

// Job is one solution text to check against one instance. A Job with Err
// set could not be prepared; it is reported without being checked.
type Job struct {
	ID       int
	Instance *puzzle.Instance
	Solution string
	Err      error
}

// JobResult holds the outcome of a Job. Err is set when the job could not be
// prepared or its solution could not be parsed; otherwise Result is set.
type JobResult struct {
	ID     int
	Result *Result
	Err    error
}

func (jr *JobResult) OK() bool {
	return jr.Err == nil && jr.Result.Valid
}

// Summary aggregates the results of a batch.
type Summary struct {
	Results []JobResult
	Total   int
	Invalid int
}

func (s *Summary) OK() bool { return s.Invalid == 0 }

type BatchOptions struct {
	// Workers bounds the number of jobs checked at once; 0 means GOMAXPROCS.
	Workers int
}

// Batch checks independent jobs concurrently. Results keep the order of jobs.
// Total sums the scores of all valid solutions.
func Batch(ctx context.Context, jobs []Job, opts BatchOptions) (*Summary, error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	results := make([]JobResult, len(jobs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range jobs {
		job := &jobs[i]
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = check(job)
			if debug.Batch() {
				debug.Logf("batch id=%d ok=%t\n", job.ID, results[i].OK())
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	sum := &Summary{Results: results}
	for i := range results {
		if !results[i].OK() {
			sum.Invalid++
			continue
		}
		sum.Total += results[i].Result.Score
	}
	return sum, nil
}

func check(job *Job) JobResult {
	if job.Err != nil {
		return JobResult{ID: job.ID, Err: job.Err}
	}
	seq, err := moves.Parse(job.Solution, job.Instance)
	if err != nil {
		return JobResult{ID: job.ID, Err: err}
	}
	return JobResult{ID: job.ID, Result: Verify(job.Instance, seq)}
}
