// Package fanout runs one function over many items with a cap on concurrent
// calls, collecting every outcome instead of stopping at the first error.
// The service uses it to refresh all source-backed resources at once.
//
//	results := fanout.Run(ctx, 4, names, refresh)
//	failed := fanout.Errors(names, results)
package fanout

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Result is the outcome for one item: Value when Err is nil.
type Result[R any] struct {
	Value R
	Err   error
}

// Run calls fn for each item with at most maxWorkers calls in flight and
// returns the outcomes in input order. Values below 1 mean one worker.
//
// Items not yet started when ctx ends are recorded with ctx's error and fn
// is not called for them. Calls already running are left to observe ctx.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	results := make([]Result[R], len(items))
	if len(items) == 0 {
		return results
	}

	var g errgroup.Group
	g.SetLimit(max(maxWorkers, 1))
	for i, item := range items {
		if err := ctx.Err(); err != nil {
			results[i].Err = err
			continue
		}
		// Go blocks while maxWorkers calls are running.
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i].Err = err
				return nil
			}
			results[i].Value, results[i].Err = fn(ctx, item)
			return nil
		})
	}
	_ = g.Wait()
	return results
}

// Errors keys the failed outcomes by their item. items and results must come
// from the same Run call.
func Errors[T comparable, R any](items []T, results []Result[R]) map[T]error {
	errs := make(map[T]error)
	for i, r := range results {
		if r.Err != nil && i < len(items) {
			errs[items[i]] = r.Err
		}
	}
	return errs
}
