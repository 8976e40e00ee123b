package worker

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"
)

// Result pairs one input with its output. Results are returned in input
// order regardless of which worker produced them.
type Result[T any, R any] struct {
	Input  T
	Output R
	Err    error
	// Done is false when the input was skipped because ctx was cancelled.
	Done bool
}

// ProcessFunc is the function signature for processing a single input.
type ProcessFunc[T any, R any] func(ctx context.Context, input T) (R, error)

// Pool is a generic worker pool with configurable concurrency.
type Pool[T any, R any] struct {
	workers int
	process ProcessFunc[T, R]
}

// NewPool creates a new worker pool.
func NewPool[T any, R any](workers int, fn ProcessFunc[T, R]) *Pool[T, R] {
	if workers < 1 {
		workers = 1
	}
	return &Pool[T, R]{
		workers: workers,
		process: fn,
	}
}

// Execute runs all inputs through the pool. Each worker writes only its own
// result slot, so no locking is needed on the result slice.
func (p *Pool[T, R]) Execute(ctx context.Context, inputs []T) []Result[T, R] {
	results := make([]Result[T, R], len(inputs))
	for i := range inputs {
		results[i].Input = inputs[i]
	}

	inputCh := make(chan int)
	var wg sync.WaitGroup

	for w := 0; w < p.workers; w++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for idx := range inputCh {
				out, err := p.process(ctx, inputs[idx])
				results[idx].Output = out
				results[idx].Err = err
				results[idx].Done = true
				if err != nil {
					log.Error().Err(err).Int("worker", workerID).Int("index", idx).Msg("Task failed")
				}
			}
		}(w)
	}

send:
	for i := range inputs {
		select {
		case <-ctx.Done():
			break send
		case inputCh <- i:
		}
	}
	close(inputCh)

	wg.Wait()
	return results
}

// Map runs fn over inputs with the given concurrency and returns the outputs
// in input order. It stops early with ctx.Err() when ctx is cancelled.
func Map[T any, R any](ctx context.Context, workers int, inputs []T, fn func(T) R) ([]R, error) {
	pool := NewPool[T, R](workers, func(_ context.Context, in T) (R, error) {
		return fn(in), nil
	})
	results := pool.Execute(ctx, inputs)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	outputs := make([]R, len(results))
	for i, r := range results {
		outputs[i] = r.Output
	}
	return outputs, nil
}

// Batch splits items into consecutive chunks of at most batchSize.
func Batch[T any](items []T, batchSize int) [][]T {
	if batchSize <= 0 {
		batchSize = 1
	}
	var batches [][]T
	for i := 0; i < len(items); i += batchSize {
		end := i + batchSize
		if end > len(items) {
			end = len(items)
		}
		batches = append(batches, items[i:end])
	}
	return batches
}
