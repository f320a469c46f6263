package curves

import (
	"context"
	"fmt"
	"math/big"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Job is one independent scalar multiplication.
type Job struct {
	Point  AffinePoint
	Scalar *big.Int
}

// BatchMultiply computes Scalar*Point for every job on at most workers
// goroutines (GOMAXPROCS when workers <= 0). Results are returned in job
// order. Jobs that have not started when ctx is done are skipped and the
// context error is returned. A nil logger is allowed.
func (c *Weierstrass) BatchMultiply(ctx context.Context, jobs []Job, workers int, logger *zap.Logger) ([]AffinePoint, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	for i, job := range jobs {
		if job.Scalar == nil {
			return nil, fmt.Errorf("job %d: %w", i, ErrNilScalar)
		}
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]AffinePoint, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range jobs {
		if gctx.Err() != nil {
			break
		}
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				logger.Debug("batch job skipped", zap.String("curve", c.Name()), zap.Int("job", i), zap.Error(err))
				return err
			}
			results[i] = c.FastMultiply(jobs[i].Point, jobs[i].Scalar)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logger.Debug("batch multiply finished",
		zap.String("curve", c.Name()),
		zap.Int("jobs", len(jobs)),
		zap.Int("workers", workers),
	)
	return results, nil
}
