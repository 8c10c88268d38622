package strvec

import "sync"

// forEach invokes fn for every index in [0, n). With more than one
// worker the indices are striped across a bounded pool of goroutines;
// fn writes only to its own index's result slot, so output is
// order-preserving and identical to sequential execution.
func forEach(workers, n int, fn func(i int)) {
	if workers <= 1 || n <= 1 {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}
	if workers > n {
		workers = n
	}

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(w int) {
			defer wg.Done()
			for i := w; i < n; i += workers {
				fn(i)
			}
		}(w)
	}
	wg.Wait()
}
