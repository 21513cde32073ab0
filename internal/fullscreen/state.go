package fullscreen

import (
	"log/slog"
	"time"

	"github.com/1broseidon/hostwin/internal/platform"
)

// DefaultSettleTimeout bounds how long a state request waits for the
// window manager to apply it.
const DefaultSettleTimeout = 250 * time.Millisecond

// StateOptions configures a StateController.
type StateOptions struct {
	SettleTimeout time.Duration
	Logger        *slog.Logger
}

// StateController implements Controller on top of a window manager that
// owns the fullscreen state (EWMH _NET_WM_STATE_FULLSCREEN, which is also
// what GTK requests under X11).
//
// Requests are applied asynchronously by the window manager, so every
// transition drains pending events until the new state is visible or the
// settle timeout passes. The flag then records what the window manager
// actually reports.
type StateController struct {
	store  *StateStore[platform.StatefulWindow]
	settle time.Duration
	logger *slog.Logger
}

var _ Controller = (*StateController)(nil)

// NewStateController creates a controller borrowing win.
func NewStateController(win platform.StatefulWindow, opts StateOptions) *StateController {
	c := &StateController{
		store:  NewStateStore(win),
		settle: opts.SettleTimeout,
		logger: opts.Logger,
	}
	if c.settle <= 0 {
		c.settle = DefaultSettleTimeout
	}
	if c.logger == nil {
		c.logger = discardLogger()
	}
	return c
}

// Store exposes the underlying state store.
func (c *StateController) Store() *StateStore[platform.StatefulWindow] {
	return c.store
}

// IsFullscreen implements Controller.
func (c *StateController) IsFullscreen() bool {
	win, ok := c.store.Window()
	if !ok {
		c.store.set(false)
		return false
	}

	on, err := win.FullscreenState()
	if err != nil {
		c.logger.Debug("fullscreen state query failed", "error", err)
		on = false
	}
	c.store.set(on)
	return on
}

// EnterFullscreen implements Controller.
func (c *StateController) EnterFullscreen() bool {
	return c.transition(true)
}

// ExitFullscreen implements Controller.
func (c *StateController) ExitFullscreen() bool {
	return c.transition(false)
}

// ToggleFullscreen implements Controller.
func (c *StateController) ToggleFullscreen() bool {
	if c.IsFullscreen() {
		return c.ExitFullscreen()
	}
	return c.EnterFullscreen()
}

func (c *StateController) transition(want bool) bool {
	win, ok := c.store.Window()
	if !ok {
		return false
	}
	if c.IsFullscreen() == want {
		return true
	}

	if err := win.RequestFullscreen(want); err != nil {
		c.logger.Warn("fullscreen request failed", "want", want, "error", err)
	}

	got, err := win.WaitFullscreen(want, c.settle)
	if err != nil {
		c.logger.Debug("fullscreen state query failed", "error", err)
		got = false
	}
	if got != want {
		c.logger.Warn("window manager did not apply fullscreen state",
			"want", want,
			"timeout", c.settle)
	}

	c.store.set(got)
	return true
}
