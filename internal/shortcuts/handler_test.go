package shortcuts

import (
	"testing"
	"time"
)

type fakeController struct {
	on          bool
	transitions int
}

func (f *fakeController) IsFullscreen() bool { return f.on }

func (f *fakeController) EnterFullscreen() bool {
	if !f.on {
		f.transitions++
	}
	f.on = true
	return true
}

func (f *fakeController) ExitFullscreen() bool {
	if f.on {
		f.transitions++
	}
	f.on = false
	return true
}

func (f *fakeController) ToggleFullscreen() bool {
	if f.on {
		return f.ExitFullscreen()
	}
	return f.EnterFullscreen()
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name        string
		start       State
		ev          Event
		wantHandled bool
		wantState   State
	}{
		{"F11 enters", Windowed, KeyDown(KeyToggle), true, Fullscreen},
		{"F11 exits", Fullscreen, KeyDown(KeyToggle), true, Windowed},
		{"Escape exits", Fullscreen, KeyDown(KeyExit), true, Windowed},
		{"Escape while windowed passes through", Windowed, KeyDown(KeyExit), false, Windowed},
		{"caption double-click exits", Fullscreen, Event{Kind: KindNonClientDoubleClick, Hit: HitCaption}, true, Windowed},
		{"caption double-click while windowed passes through", Windowed, Event{Kind: KindNonClientDoubleClick, Hit: HitCaption}, false, Windowed},
		{"frame double-click off caption ignored", Fullscreen, Event{Kind: KindNonClientDoubleClick, Hit: HitOther}, false, Fullscreen},
		{"client double-click exits", Fullscreen, Event{Kind: KindDoubleClick}, true, Windowed},
		{"client double-click while windowed passes through", Windowed, Event{Kind: KindDoubleClick}, false, Windowed},
		{"other key ignored", Fullscreen, KeyDown(KeyOther), false, Fullscreen},
		{"other event ignored", Windowed, Event{}, false, Windowed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := &fakeController{on: tt.start == Fullscreen}
			h := NewHandler(ctrl, nil)

			if got := h.Handle(tt.ev); got != tt.wantHandled {
				t.Fatalf("Handle() = %v, want %v", got, tt.wantHandled)
			}
			if got := h.State(); got != tt.wantState {
				t.Fatalf("State() = %v, want %v", got, tt.wantState)
			}
			if !tt.wantHandled && ctrl.transitions != 0 {
				t.Fatalf("unhandled event caused %d transitions", ctrl.transitions)
			}
		})
	}
}

func TestFromWin32Message(t *testing.T) {
	tests := []struct {
		name   string
		msg    uint32
		wparam uintptr
		want   Event
		wantOK bool
	}{
		{"F11", 0x0100, 0x7A, KeyDown(KeyToggle), true},
		{"Escape", 0x0100, 0x1B, KeyDown(KeyExit), true},
		{"other key", 0x0100, 0x41, Event{}, false},
		{"caption double-click", 0x00A3, 2, Event{Kind: KindNonClientDoubleClick, Hit: HitCaption}, true},
		{"border double-click", 0x00A3, 10, Event{Kind: KindNonClientDoubleClick, Hit: HitOther}, true},
		{"client double-click", 0x0203, 0, Event{Kind: KindDoubleClick}, true},
		{"mouse move", 0x0200, 0, Event{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FromWin32Message(tt.msg, tt.wparam)
			if ok != tt.wantOK || got != tt.want {
				t.Fatalf("FromWin32Message(%#x, %#x) = %+v, %v; want %+v, %v", tt.msg, tt.wparam, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestClickTracker(t *testing.T) {
	base := time.UnixMilli(1_000_000)
	c := NewClickTracker(0)

	if c.Click(base) {
		t.Fatal("first click reported a double-click")
	}
	if !c.Click(base.Add(150 * time.Millisecond)) {
		t.Fatal("second click within interval not detected")
	}
	if c.Click(base.Add(300 * time.Millisecond)) {
		t.Fatal("third click paired with a consumed double-click")
	}
	if c.Click(base.Add(900 * time.Millisecond)) {
		t.Fatal("click after the interval reported a double-click")
	}
	if !c.Click(base.Add(1000 * time.Millisecond)) {
		t.Fatal("fresh pair not detected")
	}

	c.Click(base)
	if c.Click(base.Add(-time.Millisecond)) {
		t.Fatal("out-of-order timestamp reported a double-click")
	}

	c.Reset()
	if c.Click(base) {
		t.Fatal("click after Reset reported a double-click")
	}
}
