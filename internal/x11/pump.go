package x11

import (
	"context"

	"github.com/BurntSushi/xgbutil/xevent"

	"github.com/1broseidon/hostwin/internal/mainloop"
)

// Run is the host's event loop. X events and tasks queued on loop are
// processed strictly one at a time, which makes the calling goroutine and
// the X event callbacks together the UI thread. It returns when ctx ends or
// the X loop quits.
func (c *Connection) Run(ctx context.Context, loop *mainloop.Loop) error {
	pingBefore, pingAfter, pingQuit := xevent.MainPing(c.XUtil)
	for {
		select {
		case <-pingBefore:
			// Event callbacks run now; wait for them to finish.
			<-pingAfter
		case <-loop.Pending():
			loop.RunPending()
		case <-pingQuit:
			return nil
		case <-ctx.Done():
			// The X loop only sees Quit after its next event; the
			// connection is closed by the caller right after.
			xevent.Quit(c.XUtil)
			return ctx.Err()
		}
	}
}
