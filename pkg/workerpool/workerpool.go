// Package workerpool provides simple concurrent processing utilities.
package workerpool

import (
	"context"
	"sync"
)

// Map runs fn over items with at most workerCount concurrent calls and returns the
// results in input order. The first error cancels the remaining work and is returned.
func Map[T, R any](
	ctx context.Context,
	workerCount int,
	items []T,
	fn func(context.Context, T) (R, error),
) ([]R, error) {
	if workerCount < 1 {
		workerCount = 1
	}
	if workerCount > len(items) {
		workerCount = len(items)
	}
	results := make([]R, len(items))
	if len(items) == 0 {
		return results, ctx.Err()
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		once     sync.Once
		firstErr error
	)
	fail := func(err error) {
		once.Do(func() {
			firstErr = err
			cancel()
		})
	}

	indexes := make(chan int)
	wg := sync.WaitGroup{}
	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range indexes {
				res, err := fn(ctx, items[idx])
				if err != nil {
					fail(err)
					continue
				}
				results[idx] = res
			}
		}()
	}

feed:
	for idx := range items {
		select {
		case <-ctx.Done():
			break feed
		case indexes <- idx:
		}
	}
	close(indexes)
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
