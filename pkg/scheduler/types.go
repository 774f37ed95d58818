package scheduler

import (
	"context"
)

type Work[T any] func(ctx context.Context) (T, error)

type Result[T any] struct {
	Data T
	Err  error
}

type Future[T any] struct {
	input  chan T
	cancel context.CancelFunc
}

func NewFuture[T any](input chan T, cancel context.CancelFunc) *Future[T] {
	return &Future[T]{
		input:  input,
		cancel: cancel,
	}
}

func (f *Future[T]) C() chan T {
	return f.input
}

func (f *Future[T]) Stop() {
	f.cancel()
}

// Await blocks until the result is available or ctx is done.
// When ctx ends first the work is cancelled and ctx.Err() is returned.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case v := <-f.input:
		f.cancel()
		return v, nil
	case <-ctx.Done():
		f.cancel()
		var zero T
		return zero, ctx.Err()
	}
}
