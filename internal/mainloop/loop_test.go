package mainloop

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestLoopDoRunsOnPumpGoroutine(t *testing.T) {
	l := New(nil)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		_ = l.Run(ctx)
	}()

	var wg sync.WaitGroup
	var counter int // only touched on the pump goroutine
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := l.Do(ctx, func() {
				counter++
			}); err != nil {
				t.Errorf("Do() error = %v", err)
			}
		}()
	}
	wg.Wait()

	var got int
	if err := l.Do(ctx, func() { got = counter }); err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	if got != 20 {
		t.Fatalf("counter = %d, want 20", got)
	}
}

func TestLoopWakeHook(t *testing.T) {
	var wakes atomic.Int32
	l := New(func() { wakes.Add(1) })

	done := make(chan error, 1)
	go func() {
		done <- l.Do(context.Background(), func() {})
	}()

	deadline := time.After(time.Second)
	for wakes.Load() == 0 {
		select {
		case <-deadline:
			t.Fatal("wake hook never called")
		default:
			time.Sleep(time.Millisecond)
		}
	}
	<-l.Pending()
	if n := l.RunPending(); n != 1 {
		t.Fatalf("RunPending() = %d, want 1", n)
	}
	if err := <-done; err != nil {
		t.Fatalf("Do() error = %v", err)
	}
}

func TestLoopCancelledTaskNeverRuns(t *testing.T) {
	l := New(nil)
	ctx, cancel := context.WithCancel(context.Background())

	ran := false
	done := make(chan error, 1)
	go func() {
		done <- l.Do(ctx, func() { ran = true })
	}()
	<-l.Pending()
	cancel()

	if err := <-done; !errors.Is(err, context.Canceled) {
		t.Fatalf("Do() error = %v, want context.Canceled", err)
	}
	if n := l.RunPending(); n != 0 {
		t.Fatalf("RunPending() = %d, want 0", n)
	}
	if ran {
		t.Fatal("cancelled task ran")
	}
}

func TestLoopClose(t *testing.T) {
	l := New(nil)

	done := make(chan error, 1)
	go func() {
		done <- l.Do(context.Background(), func() {})
	}()
	<-l.Pending()
	l.Close()

	if err := <-done; !errors.Is(err, ErrClosed) {
		t.Fatalf("queued Do() error = %v, want ErrClosed", err)
	}
	if err := l.Do(context.Background(), func() {}); !errors.Is(err, ErrClosed) {
		t.Fatalf("Do() after Close error = %v, want ErrClosed", err)
	}
	l.Close()
}

func TestLoopTaskPanicIsReported(t *testing.T) {
	l := New(nil)
	done := make(chan error, 1)
	go func() {
		done <- l.Do(context.Background(), func() { panic("boom") })
	}()
	<-l.Pending()
	l.RunPending()

	if err := <-done; err == nil {
		t.Fatal("Do() error = nil for panicking task")
	}
}
