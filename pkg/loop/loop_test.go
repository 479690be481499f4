package loop

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"reflect"
	"sync"
	"testing"
	"time"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func quiet() Option {
	return WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestMicrotasksRunAfterTask(t *testing.T) {
	l := New(quiet())
	var order []string

	l.Do(func() {
		l.QueueMicrotask(func() {
			order = append(order, "micro1")
			l.QueueMicrotask(func() { order = append(order, "nested") })
		})
		l.QueueMicrotask(func() { order = append(order, "micro2") })
		order = append(order, "task")
	})

	want := []string{"task", "micro1", "micro2", "nested"}
	if !reflect.DeepEqual(order, want) {
		t.Errorf("order = %v, want %v", order, want)
	}
	if l.Pending() != 0 {
		t.Errorf("Pending = %d after checkpoint", l.Pending())
	}
}

func TestDoRepanicsAfterCheckpoint(t *testing.T) {
	l := New(quiet())
	ran := false

	func() {
		defer func() {
			if r := recover(); r != "boom" {
				t.Errorf("recovered %v, want boom", r)
			}
		}()
		l.Do(func() {
			l.QueueMicrotask(func() { ran = true })
			panic("boom")
		})
	}()

	if !ran {
		t.Error("microtasks should still run when the task panics")
	}
	// The loop stays usable.
	l.Do(func() {})
}

func TestMicrotaskPanicReachesDo(t *testing.T) {
	l := New(quiet())
	defer func() {
		if r := recover(); r != "render failed" {
			t.Errorf("recovered %v", r)
		}
	}()
	l.Do(func() {
		l.QueueMicrotask(func() { panic("render failed") })
	})
	t.Error("Do should have panicked")
}

func TestMicrotaskBudget(t *testing.T) {
	l := New(quiet(), WithMicrotaskBudget(10))
	count := 0
	var spawn func()
	spawn = func() {
		count++
		if count < 25 {
			l.QueueMicrotask(spawn)
		}
	}

	l.Do(func() { l.QueueMicrotask(spawn) })

	if count != 10 {
		t.Fatalf("first checkpoint ran %d microtasks, want 10", count)
	}
	if l.Pending() != 1 {
		t.Fatalf("Pending = %d, want 1 deferred", l.Pending())
	}

	// The deferred remainder continues in a posted task.
	for l.RunPending() > 0 {
	}
	if count != 25 {
		t.Errorf("count = %d, want 25", count)
	}
}

func TestPostQueueFull(t *testing.T) {
	l := New(quiet(), WithQueueSize(1))
	if err := l.Post(func() {}); err != nil {
		t.Fatal(err)
	}
	if err := l.Post(func() {}); !errors.Is(err, ErrQueueFull) {
		t.Errorf("err = %v, want ErrQueueFull", err)
	}
	if n := l.RunPending(); n != 1 {
		t.Errorf("RunPending = %d, want 1", n)
	}
}

func TestPostAfterClose(t *testing.T) {
	l := New(quiet())
	l.Close()
	l.Close()
	if err := l.Post(func() {}); !errors.Is(err, ErrClosed) {
		t.Errorf("err = %v, want ErrClosed", err)
	}
}

func TestRunRecoversPanics(t *testing.T) {
	var mu sync.Mutex
	var panics []any
	l := New(quiet(), WithPanicHandler(func(r any) {
		mu.Lock()
		panics = append(panics, r)
		mu.Unlock()
	}))

	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- l.Run(ctx) }()

	done := make(chan struct{})
	if err := l.Post(func() { panic("task") }); err != nil {
		t.Fatal(err)
	}
	if err := l.Post(func() { close(done) }); err != nil {
		t.Fatal(err)
	}

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("second task did not run")
	}
	cancel()
	if err := <-errc; !errors.Is(err, context.Canceled) {
		t.Errorf("Run = %v, want context.Canceled", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(panics) != 1 || panics[0] != "task" {
		t.Errorf("panics = %v", panics)
	}
}

func TestRunStopsOnClose(t *testing.T) {
	l := New(quiet())
	errc := make(chan error, 1)
	go func() { errc <- l.Run(context.Background()) }()

	l.Close()

	select {
	case err := <-errc:
		if err != nil {
			t.Errorf("Run = %v, want nil", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop")
	}
}

func TestDoAndRunDoNotInterleave(t *testing.T) {
	l := New(quiet())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	errc := make(chan error, 1)
	go func() { errc <- l.Run(ctx) }()

	var active, overlap int
	var wg sync.WaitGroup
	work := func() {
		active++
		if active > 1 {
			overlap++
		}
		time.Sleep(time.Millisecond)
		active--
	}
	for i := 0; i < 20; i++ {
		wg.Add(1)
		if err := l.Post(func() { work(); wg.Done() }); err != nil {
			t.Fatal(err)
		}
		l.Do(work)
	}
	wg.Wait()
	cancel()
	<-errc

	if overlap != 0 {
		t.Errorf("%d overlapping tasks", overlap)
	}
}
