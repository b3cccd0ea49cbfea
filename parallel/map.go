package parallel

import "sync"

// Map runs fn for every item through do and returns the results in input
// order. It returns once all of them are done, without closing the pool.
func Map[T, R any](do WorkerFunc, items []T, fn func(T) R) []R {
	res := make([]R, len(items))

	var wg sync.WaitGroup
	wg.Add(len(items))
	for i, item := range items {
		do(func() {
			defer wg.Done()
			res[i] = fn(item)
		})
	}
	wg.Wait()

	return res
}
