package synchronizer

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// runStage applies fn to items 0..n-1 and returns the results in index order.
// concurrency 1 runs strictly sequentially; larger values allow that many items in flight.
// fn reports failures in its result, so one item never cancels another.
func runStage[T any](ctx context.Context, n, concurrency int, fn func(ctx context.Context, i int) T) []T {
	out := make([]T, n)
	if concurrency <= 1 {
		for i := 0; i < n; i++ {
			out[i] = fn(ctx, i)
		}
		return out
	}

	var g errgroup.Group
	g.SetLimit(concurrency)
	for i := 0; i < n; i++ {
		g.Go(func() error {
			out[i] = fn(ctx, i)
			return nil
		})
	}
	_ = g.Wait()
	return out
}
