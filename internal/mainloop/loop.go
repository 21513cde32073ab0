// Package mainloop marshals work from arbitrary goroutines onto the UI
// thread that owns the host window.
//
// The platform event pump owns the thread. It learns about queued work
// either by selecting on Pending (X11) or through the wake hook (Win32,
// where the hook posts a message to the window), and then calls RunPending.
package mainloop

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
)

// ErrClosed is returned for work submitted to, or still queued on, a closed
// loop.
var ErrClosed = errors.New("main loop closed")

const (
	taskQueued int32 = iota
	taskRunning
	taskDropped
)

type task struct {
	fn    func()
	state atomic.Int32
	done  chan struct{}
	err   error
}

// Loop is a queue of UI-thread tasks.
type Loop struct {
	mu     sync.Mutex
	queue  []*task
	closed bool

	pending chan struct{}
	wake    func()
}

// New creates a loop. wake, if non-nil, is called after every submission
// from the submitting goroutine; it must be safe to call off the UI thread.
func New(wake func()) *Loop {
	return &Loop{
		pending: make(chan struct{}, 1),
		wake:    wake,
	}
}

// Pending receives a value whenever tasks have been queued since the last
// RunPending.
func (l *Loop) Pending() <-chan struct{} {
	return l.pending
}

// Do queues fn for the UI thread and waits until it has run. When ctx ends
// first, fn is guaranteed never to run unless it had already started, in
// which case Do waits for it to finish.
func (l *Loop) Do(ctx context.Context, fn func()) error {
	t := &task{fn: fn, done: make(chan struct{})}

	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return ErrClosed
	}
	l.queue = append(l.queue, t)
	l.mu.Unlock()

	l.notify()

	select {
	case <-t.done:
		return t.err
	case <-ctx.Done():
		if t.state.CompareAndSwap(taskQueued, taskDropped) {
			return ctx.Err()
		}
		<-t.done
		return t.err
	}
}

// RunPending runs every queued task on the calling goroutine, which must be
// the UI thread. It returns the number of tasks that ran.
func (l *Loop) RunPending() int {
	l.mu.Lock()
	queue := l.queue
	l.queue = nil
	l.mu.Unlock()

	ran := 0
	for _, t := range queue {
		if !t.state.CompareAndSwap(taskQueued, taskRunning) {
			continue
		}
		t.err = run(t.fn)
		close(t.done)
		ran++
	}
	return ran
}

// Run drives the loop on the calling goroutine until ctx ends. It is the
// pump for hosts without a native event loop.
func (l *Loop) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.pending:
			l.RunPending()
		}
	}
}

// Close rejects new work and fails everything still queued with ErrClosed.
func (l *Loop) Close() {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return
	}
	l.closed = true
	queue := l.queue
	l.queue = nil
	l.mu.Unlock()

	for _, t := range queue {
		if t.state.CompareAndSwap(taskQueued, taskDropped) {
			t.err = ErrClosed
			close(t.done)
		}
	}
}

func (l *Loop) notify() {
	select {
	case l.pending <- struct{}{}:
	default:
	}
	if l.wake != nil {
		l.wake()
	}
}

func run(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("main loop task panicked: %v", r)
		}
	}()
	fn()
	return nil
}
