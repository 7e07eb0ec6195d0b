package convert

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// run converts jobs with up to opts.Workers in flight. Reports come back in
// job order regardless of completion order.
func run(ctx context.Context, jobs []Job, opts Options) ([]Report, error) {
	reports := make([]Report, len(jobs))
	l := opts.log()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, opts.Workers))
	for i, job := range jobs {
		if gctx.Err() != nil {
			break
		}
		i, job := i, job
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			reports[i] = File(job, opts)
			if err := reports[i].Err; err != nil {
				l.Errorf("ERROR: %s", err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return reports, err
	}
	return reports, ctx.Err()
}
