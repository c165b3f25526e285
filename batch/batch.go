// Package batch runs independent paragraph typesetting jobs
// concurrently, one goroutine per job, using golang.org/x/sync/errgroup
// the way bufbuild-protocompile's compiler pipeline compiles independent
// files concurrently: fan out, collect results in the caller's order,
// and surface the first error.
package batch

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/ByLCY/typeset/typeset"
)

// Job pairs a horizontal node list with the paragraph configuration to
// typeset it under. Config is copied by value into each goroutine
// closure, satisfying the "host clones the config" requirement for
// concurrent invocation of the optimizer.
type Job struct {
	Name   string
	HList  typeset.List
	Config typeset.Paragraph
}

// Result is one job's outcome.
type Result struct {
	Name  string
	VList typeset.List
	Err   error
}

// TypesetAll runs every job's Paragraph.Create concurrently and returns
// one Result per job in the same order as jobs, or the first error
// encountered by any job.
func TypesetAll(ctx context.Context, jobs []Job) ([]Result, error) {
	results := make([]Result, len(jobs))
	g, _ := errgroup.WithContext(ctx)
	for i, job := range jobs {
		i, job := i, job
		g.Go(func() error {
			cfg := job.Config
			hlist := append(typeset.List(nil), job.HList...)
			cfg.Prepare(&hlist)
			vlist, err := cfg.Create(hlist)
			results[i] = Result{Name: job.Name, VList: vlist, Err: err}
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
