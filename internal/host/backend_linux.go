//go:build linux

package host

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/1broseidon/hostwin/internal/config"
	"github.com/1broseidon/hostwin/internal/fullscreen"
	"github.com/1broseidon/hostwin/internal/mainloop"
	"github.com/1broseidon/hostwin/internal/shortcuts"
	"github.com/1broseidon/hostwin/internal/x11"
)

// x11Backend drives an EWMH window through the X connection's event loop.
type x11Backend struct {
	conn   *x11.Connection
	win    *x11.Window
	owned  *x11.HostWindow
	ctrl   *fullscreen.StateController
	loop   *mainloop.Loop
	logger *slog.Logger
}

var _ backend = (*x11Backend)(nil)

func openBackend(cfg *config.Config, logger *slog.Logger) (backend, error) {
	conn, err := x11.NewConnection()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to X11: %w", err)
	}

	b := &x11Backend{
		conn:   conn,
		loop:   mainloop.New(nil),
		logger: logger.With("component", "x11"),
	}

	if title := cfg.Window.AttachTitle; title != "" {
		b.win, err = conn.AttachWindow(title)
		if err != nil {
			conn.Close()
			return nil, fmt.Errorf("failed to attach to %q: %w", title, err)
		}
		b.logger.Info("attached to window", "id", b.win.ID(), "title", b.win.Title())
	} else {
		b.owned, err = conn.CreateHostWindow(x11.HostWindowOptions{
			Title:         cfg.Window.Title,
			ApplicationID: cfg.Window.ApplicationID,
			Width:         cfg.Window.Width,
			Height:        cfg.Window.Height,
		}, func() {
			b.logger.Info("close requested")
			b.owned.Destroy()
			conn.Quit()
		})
		if err != nil {
			conn.Close()
			return nil, err
		}
		b.win = b.owned.Window
		b.logger.Info("created host window", "id", b.win.ID(), "title", cfg.Window.Title)
	}

	b.logPlacement()

	b.ctrl = fullscreen.NewStateController(b.win, fullscreen.StateOptions{
		SettleTimeout: cfg.Fullscreen.SettleTimeout,
		Logger:        logger.With("component", "fullscreen"),
	})

	handler := shortcuts.NewHandler(b.ctrl, logger.With("component", "shortcuts"))
	if err := conn.BindShortcuts(b.win.ID(), handler, x11.ShortcutBindings{
		ToggleKey:   cfg.Shortcuts.ToggleKey,
		ExitKey:     cfg.Shortcuts.ExitKey,
		DoubleClick: cfg.Shortcuts.DoubleClick,
		Mouse:       b.owned != nil,
	}); err != nil {
		b.Close()
		return nil, err
	}

	return b, nil
}

// logPlacement records where the window starts out.
func (b *x11Backend) logPlacement() {
	bounds, err := b.win.Bounds()
	if err != nil {
		b.logger.Debug("window geometry unavailable", "error", err)
		return
	}
	display, err := b.conn.MonitorForWindow(b.win.ID())
	if err != nil {
		b.logger.Debug("window monitor unavailable", "error", err)
		return
	}
	b.logger.Debug("window placement",
		"bounds", bounds,
		"display", display.Name,
		"display_bounds", display.Bounds)
}

func (b *x11Backend) Controller() fullscreen.Controller {
	return b.ctrl
}

func (b *x11Backend) Loop() *mainloop.Loop {
	return b.loop
}

func (b *x11Backend) Run(ctx context.Context) error {
	return b.conn.Run(ctx, b.loop)
}

func (b *x11Backend) Close() {
	if b.owned != nil && b.owned.Valid() {
		b.owned.Destroy()
	}
	b.conn.Close()
}
