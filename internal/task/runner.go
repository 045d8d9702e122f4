// Package task runs detached background work whose completion is tied to the
// process lifecycle rather than to any single request.
package task

import (
	"log"
	"sync"
)

// Runner tracks fire-and-forget work. Work started with Go never blocks the
// caller, but Wait holds shutdown until every unit has finished, so a flushed
// HTTP response cannot abandon a pending background write.
type Runner struct {
	wg sync.WaitGroup
}

// NewRunner returns an empty Runner.
func NewRunner() *Runner {
	return &Runner{}
}

// Go runs fn on its own goroutine. Panics are contained and logged so one
// bad unit cannot take the process down.
func (r *Runner) Go(fn func()) {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		defer func() {
			if p := recover(); p != nil {
				log.Printf("task: background unit panicked: %v", p)
			}
		}()
		fn()
	}()
}

// Wait blocks until all started work has completed.
func (r *Runner) Wait() {
	r.wg.Wait()
}
