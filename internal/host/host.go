// Package host assembles a running host window: the platform binding, its
// fullscreen controller, the UI-thread loop, and the command channel served
// over IPC.
package host

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"

	"github.com/1broseidon/hostwin/internal/command"
	"github.com/1broseidon/hostwin/internal/config"
	"github.com/1broseidon/hostwin/internal/fullscreen"
	"github.com/1broseidon/hostwin/internal/ipc"
	"github.com/1broseidon/hostwin/internal/mainloop"
	"github.com/1broseidon/hostwin/internal/runtimepath"
)

// ErrUnsupported is returned on platforms without a window-system binding.
var ErrUnsupported = fmt.Errorf("no window system binding for %s", runtime.GOOS)

// backend is a platform window bound to a controller and a loop. Run owns
// the UI thread until the window closes or ctx ends.
type backend interface {
	Controller() fullscreen.Controller
	Loop() *mainloop.Loop
	Run(ctx context.Context) error
	Close()
}

// Host is a host window with its command channel.
type Host struct {
	cfg     *config.Config
	logger  *slog.Logger
	backend backend
	channel *command.Channel
	server  *ipc.Server
}

// New opens the platform window described by cfg. On Windows, New and Run
// must be called from the same goroutine.
func New(cfg *config.Config, logger *slog.Logger) (*Host, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	b, err := openBackend(cfg, logger)
	if err != nil {
		return nil, err
	}
	h, err := newHost(cfg, logger, b)
	if err != nil {
		b.Close()
		return nil, err
	}
	return h, nil
}

func newHost(cfg *config.Config, logger *slog.Logger, b backend) (*Host, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	socket, err := runtimepath.ResolveSocket(cfg.Channel.Socket)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve socket path: %w", err)
	}

	d := command.NewDispatcher(b.Controller(), command.Options{
		Ping:   cfg.Channel.Ping,
		Logger: logger.With("component", "command"),
	})
	ch := command.NewChannel(cfg.Channel.Name, d, b.Loop())

	return &Host{
		cfg:     cfg,
		logger:  logger,
		backend: b,
		channel: ch,
		server:  ipc.NewServer(socket, ch, logger.With("component", "ipc")),
	}, nil
}

// Channel returns the command channel callers on other goroutines use.
func (h *Host) Channel() *command.Channel {
	return h.channel
}

// SocketPath returns where the command channel is served.
func (h *Host) SocketPath() string {
	return h.server.SocketPath()
}

// Run serves the command channel and pumps window events until the window
// closes or ctx ends. A cancelled ctx is not an error.
func (h *Host) Run(ctx context.Context) error {
	if err := h.server.Start(); err != nil {
		return err
	}
	defer h.server.Stop()

	h.logger.Info("host running",
		"channel", h.channel.Name(),
		"socket", h.server.SocketPath())

	err := h.backend.Run(ctx)
	if errors.Is(err, context.Canceled) {
		err = nil
	}
	h.logger.Info("host stopped")
	return err
}

// Close releases the window and the loop.
func (h *Host) Close() {
	h.backend.Loop().Close()
	h.backend.Close()
}
