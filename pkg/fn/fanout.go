package fn

import (
	"context"
	"sync"
)

// FanOut runs fns concurrently with the same context and returns their
// results in argument order.
func FanOut[T any](ctx context.Context, fns ...func(context.Context) T) []T {
	out := make([]T, len(fns))
	var wg sync.WaitGroup
	for i, f := range fns {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out[i] = f(ctx)
		}()
	}
	wg.Wait()
	return out
}
