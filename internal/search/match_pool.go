package search

import (
	"context"
	"sync"

	"litecene/internal/common"
)

// NewMatchPool matches documents from in with a number of workers and streams out the matched ones.
// The output is closed once in is drained or ctx is done.
func NewMatchPool(
	ctx context.Context,
	matcher MatchFunc,
	in <-chan common.Document,
	workers int,
) <-chan common.Document {
	if workers < 1 {
		panic("empty matching pool (no workers)")
	}
	matched := make(chan common.Document, 100)
	wg := sync.WaitGroup{}
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for d := range in {
				select {
				case <-ctx.Done():
					return
				default:
				}
				if matcher(d) {
					select {
					case matched <- d:
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}
	go func() {
		wg.Wait()
		close(matched)
	}()
	return matched
}
