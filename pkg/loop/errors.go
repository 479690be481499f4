package loop

import "errors"

var (
	// ErrQueueFull is returned by Post when the task queue is at capacity.
	ErrQueueFull = errors.New("loop: task queue full")

	// ErrClosed is returned by Post after Close.
	ErrClosed = errors.New("loop: closed")
)
