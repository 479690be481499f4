package loop

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
)

// Loop is a cooperative event loop. It is safe to Post from any goroutine.
type Loop struct {
	queueSize int
	budget    int
	logger    *slog.Logger
	onPanic   func(any)

	tasks     chan func()
	done      chan struct{}
	closeOnce sync.Once

	// turn serializes tasks between Run and Do.
	turn sync.Mutex

	microMu sync.Mutex
	micro   []func()
}

// fault is a recovered panic.
type fault struct {
	value any
	stack []byte
}

// New creates a Loop.
func New(opts ...Option) *Loop {
	l := &Loop{
		queueSize: DefaultQueueSize,
		budget:    DefaultMicrotaskBudget,
		logger:    slog.Default().With("component", "loop"),
	}
	for _, opt := range opts {
		opt(l)
	}
	l.tasks = make(chan func(), l.queueSize)
	l.done = make(chan struct{})
	return l
}

// Post queues task to run on the loop. It never blocks.
func (l *Loop) Post(task func()) error {
	if task == nil {
		return nil
	}
	select {
	case <-l.done:
		return ErrClosed
	default:
	}
	select {
	case l.tasks <- task:
		return nil
	default:
		return ErrQueueFull
	}
}

// QueueMicrotask queues fn to run at the end of the current task. It is
// meant to be called from inside a task; a microtask queued from elsewhere
// runs at the next checkpoint.
func (l *Loop) QueueMicrotask(fn func()) {
	if fn == nil {
		return
	}
	l.microMu.Lock()
	l.micro = append(l.micro, fn)
	l.microMu.Unlock()
}

// Do runs fn on the calling goroutine as one task, followed by a microtask
// checkpoint, then returns. If fn or a microtask panicked, Do panics with
// the first panic value once the checkpoint is over; later panics are
// logged. Do must not be called from inside a task.
func (l *Loop) Do(fn func()) {
	l.turn.Lock()
	f := l.runTask(fn)
	l.turn.Unlock()
	if f != nil {
		panic(f.value)
	}
}

// Flush performs a microtask checkpoint as an empty task.
func (l *Loop) Flush() {
	l.Do(func() {})
}

// Run executes posted tasks until ctx is done or the loop is closed. Panics
// are recovered per task and logged. It returns ctx.Err() when ctx ends the
// loop and nil after Close.
func (l *Loop) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.done:
			return nil
		case task := <-l.tasks:
			l.turn.Lock()
			f := l.runTask(task)
			l.turn.Unlock()
			if f != nil {
				l.report(f)
			}
		}
	}
}

// RunPending executes the tasks queued so far on the calling goroutine and
// returns how many ran. Panics are handled as in Run.
func (l *Loop) RunPending() int {
	n := 0
	for {
		select {
		case task := <-l.tasks:
			l.turn.Lock()
			f := l.runTask(task)
			l.turn.Unlock()
			if f != nil {
				l.report(f)
			}
			n++
		default:
			return n
		}
	}
}

// Close stops Run. Queued tasks are dropped. Close is idempotent.
func (l *Loop) Close() error {
	l.closeOnce.Do(func() {
		close(l.done)
	})
	return nil
}

// Pending returns the number of queued microtasks.
func (l *Loop) Pending() int {
	l.microMu.Lock()
	defer l.microMu.Unlock()
	return len(l.micro)
}

// runTask runs one task and the checkpoint after it. It returns the first
// panic; later ones are reported. Callers hold l.turn.
func (l *Loop) runTask(task func()) *fault {
	first := call(task)
	for _, f := range l.checkpoint() {
		if first == nil {
			first = f
			continue
		}
		l.report(f)
	}
	return first
}

// checkpoint drains the microtask queue within the budget.
func (l *Loop) checkpoint() []*fault {
	var faults []*fault
	for ran := 0; ; ran++ {
		l.microMu.Lock()
		if len(l.micro) == 0 {
			l.micro = nil
			l.microMu.Unlock()
			return faults
		}
		if ran >= l.budget {
			left := len(l.micro)
			l.microMu.Unlock()
			l.logger.Warn("microtask budget exceeded",
				"budget", l.budget,
				"deferred", left)
			if err := l.Post(func() {}); err != nil {
				l.logger.Debug("deferred microtasks wait for the next task", "error", err)
			}
			return faults
		}
		fn := l.micro[0]
		l.micro[0] = nil
		l.micro = l.micro[1:]
		l.microMu.Unlock()

		if f := call(fn); f != nil {
			faults = append(faults, f)
		}
	}
}

func (l *Loop) report(f *fault) {
	l.logger.Error("task panic",
		"panic", fmt.Sprint(f.value),
		"stack", string(f.stack))
	if l.onPanic != nil {
		l.onPanic(f.value)
	}
}

func call(fn func()) (f *fault) {
	defer func() {
		if r := recover(); r != nil {
			f = &fault{value: r, stack: debug.Stack()}
		}
	}()
	fn()
	return nil
}
