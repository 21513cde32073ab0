package fullscreen

import (
	"testing"
	"time"

	"github.com/1broseidon/hostwin/internal/platform"
)

func TestStateController_EnterExit(t *testing.T) {
	win := &fakeStateful{valid: true}
	c := NewStateController(win, StateOptions{})

	if !c.EnterFullscreen() {
		t.Fatal("EnterFullscreen() = false")
	}
	if !win.state || !c.Store().Cached() {
		t.Fatalf("state=%v cached=%v, want both true", win.state, c.Store().Cached())
	}
	if !c.ExitFullscreen() {
		t.Fatal("ExitFullscreen() = false")
	}
	if win.state || c.Store().Cached() {
		t.Fatalf("state=%v cached=%v, want both false", win.state, c.Store().Cached())
	}
	if win.requests != 2 {
		t.Fatalf("requests = %d, want 2", win.requests)
	}
}

func TestStateController_IdempotentRequests(t *testing.T) {
	win := &fakeStateful{valid: true}
	c := NewStateController(win, StateOptions{})

	c.ExitFullscreen()
	c.ExitFullscreen()
	if win.requests != 0 {
		t.Fatalf("exit while windowed sent %d requests", win.requests)
	}

	c.EnterFullscreen()
	c.EnterFullscreen()
	if win.requests != 1 {
		t.Fatalf("requests = %d, want 1", win.requests)
	}
}

func TestStateController_UsesSettleTimeout(t *testing.T) {
	tests := []struct {
		name string
		opt  time.Duration
		want time.Duration
	}{
		{"default", 0, DefaultSettleTimeout},
		{"negative", -time.Second, DefaultSettleTimeout},
		{"configured", 40 * time.Millisecond, 40 * time.Millisecond},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			win := &fakeStateful{valid: true}
			c := NewStateController(win, StateOptions{SettleTimeout: tt.opt})
			c.EnterFullscreen()
			if len(win.waits) != 1 || win.waits[0] != tt.want {
				t.Fatalf("waits = %v, want [%v]", win.waits, tt.want)
			}
		})
	}
}

func TestStateController_IgnoredRequestRecordsObservedState(t *testing.T) {
	win := &fakeStateful{valid: true, ignore: true}
	c := NewStateController(win, StateOptions{})

	if !c.EnterFullscreen() {
		t.Fatal("EnterFullscreen() = false, want true even when ignored")
	}
	if c.Store().Cached() {
		t.Fatal("cached flag = true although the window manager ignored the request")
	}
	if c.IsFullscreen() {
		t.Fatal("IsFullscreen() = true")
	}
}

func TestStateController_ExternalStateIsPickedUp(t *testing.T) {
	win := &fakeStateful{valid: true, state: true}
	c := NewStateController(win, StateOptions{})

	if !c.IsFullscreen() {
		t.Fatal("IsFullscreen() = false for a window the WM made fullscreen")
	}
	if !c.ToggleFullscreen() {
		t.Fatal("ToggleFullscreen() = false")
	}
	if win.state {
		t.Fatal("toggle from external fullscreen did not exit")
	}
}

func TestStateController_InvalidHandle(t *testing.T) {
	tests := []struct {
		name string
		win  platform.StatefulWindow
	}{
		{"nil interface", nil},
		{"dead window", &fakeStateful{valid: false, state: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewStateController(tt.win, StateOptions{})
			if c.IsFullscreen() || c.EnterFullscreen() || c.ExitFullscreen() || c.ToggleFullscreen() {
				t.Fatal("operation on an invalid handle reported true")
			}
		})
	}
}

func TestStateController_QueryFailure(t *testing.T) {
	win := &fakeStateful{valid: true, state: true, queryErr: errQuery}
	c := NewStateController(win, StateOptions{})

	if c.IsFullscreen() {
		t.Fatal("IsFullscreen() = true when the query fails")
	}
	if c.Store().Cached() {
		t.Fatal("cached flag = true after failed query")
	}
}

func TestStateController_ToggleSymmetry(t *testing.T) {
	for _, start := range []bool{false, true} {
		win := &fakeStateful{valid: true, state: start}
		c := NewStateController(win, StateOptions{})

		c.ToggleFullscreen()
		if c.IsFullscreen() == start {
			t.Fatalf("start=%v: first toggle did not change state", start)
		}
		c.ToggleFullscreen()
		if c.IsFullscreen() != start {
			t.Fatalf("start=%v: two toggles did not restore state", start)
		}
	}
}

func TestStateStore_Window(t *testing.T) {
	s := NewStateStore[platform.StatefulWindow](nil)
	if _, ok := s.Window(); ok {
		t.Fatal("Window() ok for nil handle")
	}
	live := &fakeStateful{valid: true}
	s = NewStateStore[platform.StatefulWindow](live)
	got, ok := s.Window()
	if !ok || got != live {
		t.Fatalf("Window() = %v, %v", got, ok)
	}
	live.valid = false
	if _, ok := s.Window(); ok {
		t.Fatal("Window() ok after the window died")
	}
}
