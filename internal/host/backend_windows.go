//go:build windows

package host

import (
	"context"
	"log/slog"

	"github.com/1broseidon/hostwin/internal/config"
	"github.com/1broseidon/hostwin/internal/fullscreen"
	"github.com/1broseidon/hostwin/internal/mainloop"
	"github.com/1broseidon/hostwin/internal/shortcuts"
	"github.com/1broseidon/hostwin/internal/win32"
)

// win32Backend drives a style-bit window through its message loop.
type win32Backend struct {
	win  *win32.HostWindow
	ctrl *fullscreen.StyleController
	loop *mainloop.Loop
}

var _ backend = (*win32Backend)(nil)

func openBackend(cfg *config.Config, logger *slog.Logger) (backend, error) {
	wlog := logger.With("component", "win32")

	var (
		win *win32.HostWindow
		err error
	)
	if title := cfg.Window.AttachTitle; title != "" {
		win, err = win32.AttachWindow(title, wlog)
	} else {
		win, err = win32.CreateHostWindow(win32.HostWindowOptions{
			Title:  cfg.Window.Title,
			Width:  cfg.Window.Width,
			Height: cfg.Window.Height,
		}, wlog)
	}
	if err != nil {
		return nil, err
	}

	ctrl := fullscreen.NewStyleController(win.Window, fullscreen.StyleOptions{
		DefaultBounds: cfg.Fullscreen.DefaultBounds,
		Logger:        logger.With("component", "fullscreen"),
	})
	if !win.Attached() {
		// The message translation is fixed to F11 and Escape.
		win.SetShortcuts(shortcuts.NewHandler(ctrl, logger.With("component", "shortcuts")))
	}

	return &win32Backend{
		win:  win,
		ctrl: ctrl,
		loop: mainloop.New(win.Wake),
	}, nil
}

func (b *win32Backend) Controller() fullscreen.Controller {
	return b.ctrl
}

func (b *win32Backend) Loop() *mainloop.Loop {
	return b.loop
}

func (b *win32Backend) Run(ctx context.Context) error {
	return b.win.Run(ctx, b.loop)
}

func (b *win32Backend) Close() {
	b.win.Destroy()
}
