package scheduler

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

type queue[T any] []T

func (q *queue[T]) Len() int { return len(*q) }

func (q *queue[T]) Pop() T {
	old := *q
	x := old[0]
	*q = old[1:]
	return x
}

func (q *queue[T]) Push(t T) {
	*q = append(*q, t)
}

type workRequest struct {
	fn  Work[any]
	c   chan Result[any]
	ctx context.Context
}

type worker struct {
	done chan any
	wg   *sync.WaitGroup
}

func (w worker) Work(r workRequest) {
	defer func() {
		if rec := recover(); rec != nil {
			zap.S().Named("scheduler").Errorw("work panicked", "panic", rec)
			r.c <- Result[any]{Err: fmt.Errorf("worker panicked: %v", rec)}
		}
		w.done <- struct{}{}
		w.wg.Done()
	}()

	v, err := r.fn(r.ctx)
	r.c <- Result[any]{Data: v, Err: err}
}

func newWorker(done chan any, wg *sync.WaitGroup) worker {
	return worker{done: done, wg: wg}
}

// Scheduler runs submitted work on a fixed pool of workers.
type Scheduler struct {
	workers    *queue[worker]
	workQueue  *queue[workRequest]
	close      chan any
	done       chan any
	work       chan workRequest
	mainCtx    context.Context
	mainCancel context.CancelFunc
	wg         sync.WaitGroup
	once       sync.Once
}

func NewScheduler(nbWorkers int) *Scheduler {
	if nbWorkers < 1 {
		nbWorkers = 1
	}
	done := make(chan any, nbWorkers)
	ctx, cancel := context.WithCancel(context.Background())
	s := &Scheduler{
		workers:    &queue[worker]{},
		workQueue:  &queue[workRequest]{},
		close:      make(chan any),
		done:       done,
		work:       make(chan workRequest),
		mainCtx:    ctx,
		mainCancel: cancel,
	}
	for range nbWorkers {
		s.workers.Push(newWorker(done, &s.wg))
	}
	go s.run()
	return s
}

// AddWork queues w and returns a future for its result.
// After Close the future immediately yields context.Canceled.
func (s *Scheduler) AddWork(w Work[any]) *Future[Result[any]] {
	c := make(chan Result[any], 1)
	ctx, cancel := context.WithCancel(s.mainCtx)

	select {
	case <-s.mainCtx.Done():
		c <- Result[any]{Err: context.Canceled}
	case s.work <- workRequest{w, c, ctx}:
	}

	return NewFuture(c, cancel)
}

func (s *Scheduler) Close() {
	s.once.Do(func() {
		s.mainCancel()
		s.close <- struct{}{}
		<-s.done
	})
}

func (s *Scheduler) run() {
	defer close(s.done)
	for {
		select {
		case w := <-s.work:
			s.workQueue.Push(w)
			s.dispatch()
		case <-s.done:
			s.workers.Push(newWorker(s.done, &s.wg))
			s.dispatch()
		case <-s.close:
			s.wg.Wait()
			s.drain()
			return
		}
	}
}

// drain fails the work still queued when the scheduler closes.
func (s *Scheduler) drain() {
	for s.workQueue.Len() > 0 {
		r := s.workQueue.Pop()
		r.c <- Result[any]{Err: context.Canceled}
	}
}

// dispatch pairs idle workers with queued work until one side runs out.
func (s *Scheduler) dispatch() {
	for s.workers.Len() > 0 && s.workQueue.Len() > 0 {
		r := s.workQueue.Pop()
		w := s.workers.Pop()
		s.wg.Add(1)
		go w.Work(r)
	}
}
