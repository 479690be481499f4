// Package loop is a single-threaded cooperative event loop with a task queue
// and a microtask queue.
//
// A task is one unit of work: a posted function, or a function passed to Do.
// After each task the loop performs a microtask checkpoint: queued
// microtasks run in FIFO order until none remain, including microtasks
// queued by other microtasks. Only one task runs at a time, so code running
// inside a task needs no locking against other tasks.
//
//	l := loop.New()
//	go l.Run(ctx)
//	l.Post(func() {
//	    l.QueueMicrotask(flush) // runs right after this task
//	})
//
// A checkpoint runs at most a fixed number of microtasks (see
// WithMicrotaskBudget). The remainder is kept and a fresh task is posted to
// continue, so a runaway cascade cannot starve posted tasks.
package loop
