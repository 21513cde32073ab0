package host

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/1broseidon/hostwin/internal/config"
	"github.com/1broseidon/hostwin/internal/fullscreen"
	"github.com/1broseidon/hostwin/internal/ipc"
	"github.com/1broseidon/hostwin/internal/mainloop"
)

type fakeController struct{ on bool }

func (f *fakeController) IsFullscreen() bool    { return f.on }
func (f *fakeController) EnterFullscreen() bool { f.on = true; return true }
func (f *fakeController) ExitFullscreen() bool  { f.on = false; return true }
func (f *fakeController) ToggleFullscreen() bool {
	f.on = !f.on
	return true
}

type fakeBackend struct {
	ctrl   *fakeController
	loop   *mainloop.Loop
	closed bool
}

func (b *fakeBackend) Controller() fullscreen.Controller { return b.ctrl }
func (b *fakeBackend) Loop() *mainloop.Loop              { return b.loop }
func (b *fakeBackend) Run(ctx context.Context) error     { return b.loop.Run(ctx) }
func (b *fakeBackend) Close()                            { b.closed = true }

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Channel.Socket = filepath.Join(t.TempDir(), "hostwin.sock")
	cfg.Channel.Ping = true
	return cfg
}

func TestHost_ServesChannelUntilCancelled(t *testing.T) {
	cfg := testConfig(t)
	b := &fakeBackend{ctrl: &fakeController{}, loop: mainloop.New(nil)}
	h, err := newHost(cfg, nil, b)
	if err != nil {
		t.Fatalf("newHost: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- h.Run(ctx) }()

	client := ipc.NewClient(cfg.Channel.Socket, cfg.Channel.Name)
	var got bool
	deadline := time.Now().Add(2 * time.Second)
	for {
		got, err = client.EnterFullscreen()
		if err == nil || time.Now().After(deadline) {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	if err != nil {
		t.Fatalf("EnterFullscreen: %v", err)
	}
	if !got || !b.ctrl.on {
		t.Fatalf("EnterFullscreen() = %v, controller on = %v", got, b.ctrl.on)
	}

	pong, err := client.Ping()
	if err != nil || pong != "pong" {
		t.Fatalf("Ping() = %q, %v", pong, err)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned %v after cancel", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}

	h.Close()
	if !b.closed {
		t.Fatal("Close did not close the backend")
	}
	if _, err := client.IsFullscreen(); err == nil {
		t.Fatal("socket still served after Run returned")
	}
}

func TestHost_ChannelName(t *testing.T) {
	cfg := testConfig(t)
	cfg.Channel.Name = "org.example.player/system"
	h, err := newHost(cfg, nil, &fakeBackend{ctrl: &fakeController{}, loop: mainloop.New(nil)})
	if err != nil {
		t.Fatalf("newHost: %v", err)
	}
	if h.Channel().Name() != "org.example.player/system" {
		t.Fatalf("channel = %q", h.Channel().Name())
	}
	if h.SocketPath() != cfg.Channel.Socket {
		t.Fatalf("socket = %q, want %q", h.SocketPath(), cfg.Channel.Socket)
	}
}
