package command

import (
	"context"
	"errors"
	"fmt"
)

// ErrUnknownChannel is returned when a request names a channel other than
// the one the host registered.
var ErrUnknownChannel = errors.New("unknown channel")

// Executor runs fn on the UI thread and blocks until it has run.
type Executor interface {
	Do(ctx context.Context, fn func()) error
}

// Channel is the named platform channel: it accepts method calls from any
// goroutine and dispatches them on the UI thread.
type Channel struct {
	name       string
	dispatcher *Dispatcher
	exec       Executor
}

// NewChannel binds dispatcher to the channel name. Calls are marshalled
// through exec.
func NewChannel(name string, dispatcher *Dispatcher, exec Executor) *Channel {
	return &Channel{name: name, dispatcher: dispatcher, exec: exec}
}

// Name returns the registered channel name.
func (c *Channel) Name() string {
	return c.name
}

// Call dispatches method if channel matches. The returned error is
// transport-level only: an unknown method is a NOT_IMPLEMENTED reply, not
// an error.
func (c *Channel) Call(ctx context.Context, channel, method string) (Reply, error) {
	if channel != c.name {
		return Reply{}, fmt.Errorf("%w: %q", ErrUnknownChannel, channel)
	}

	var reply Reply
	if err := c.exec.Do(ctx, func() {
		reply = c.dispatcher.Dispatch(Name(method))
	}); err != nil {
		return Reply{}, fmt.Errorf("dispatch %s: %w", method, err)
	}
	return reply, nil
}
