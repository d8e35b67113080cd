// runner.go executes submitted tasks in the background: a bounded queue of
// task IDs drained by a fixed set of worker goroutines. This sits outside the
// core execution contract — the executor stays one-call-per-task — and is the
// piece a deployment can swap for inline execution if it prefers.
package main

import (
	"context"
	"errors"
	"log"
	"sync"
)

// Runner dispatches queued task IDs to the service's Execute.
type Runner struct {
	service *Service
	queue   chan string
	wg      sync.WaitGroup
	ctx     context.Context
	cancel  context.CancelFunc
}

// NewRunner creates a runner with the given worker count and queue size and
// starts its workers.
func NewRunner(service *Service, workers, queueSize int) *Runner {
	if workers <= 0 {
		workers = 1
	}
	if queueSize <= 0 {
		queueSize = workers
	}
	ctx, cancel := context.WithCancel(context.Background())
	r := &Runner{
		service: service,
		queue:   make(chan string, queueSize),
		ctx:     ctx,
		cancel:  cancel,
	}
	for i := 0; i < workers; i++ {
		r.wg.Add(1)
		go r.worker()
	}
	return r
}

// Enqueue schedules a task for background execution. If the queue is full
// the task runs in its own goroutine instead of being dropped: the record is
// already pending in the store and losing it silently would strand it there.
func (r *Runner) Enqueue(id string) {
	select {
	case r.queue <- id:
	default:
		log.Printf("runner queue full, executing directly id=%s", id)
		r.wg.Add(1)
		go func() {
			defer r.wg.Done()
			r.run(id)
		}()
	}
}

// Stop cancels the runner context and waits for in-flight executions.
// Queued tasks that never ran stay pending in the store.
func (r *Runner) Stop() {
	r.cancel()
	r.wg.Wait()
}

func (r *Runner) worker() {
	defer r.wg.Done()
	for {
		select {
		case <-r.ctx.Done():
			return
		case id := <-r.queue:
			r.run(id)
		}
	}
}

func (r *Runner) run(id string) {
	err := r.service.Execute(r.ctx, id)
	switch {
	case err == nil:
	case errors.Is(err, ErrInvalidState):
		// Another caller got there first; nothing to do.
	default:
		log.Printf("runner execute error id=%s: %v", id, err)
	}
}
