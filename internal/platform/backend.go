package platform

import "time"

// WindowID is a platform-neutral window identifier.
type WindowID uint64

// Display describes a physical display.
type Display struct {
	ID     int
	Name   string
	Bounds Rect
}

// Style holds the base and extended style words of a Win32-style window.
type Style struct {
	Base     uint32
	Extended uint32
}

// StyledWindow is the window capability used by the style-bit fullscreen
// algorithm. Every method must be called on the UI thread.
type StyledWindow interface {
	// Valid reports whether the handle still refers to a live window.
	Valid() bool
	Style() (Style, error)
	SetStyle(Style) error
	// Bounds returns the outer window rectangle in screen coordinates.
	Bounds() (Rect, error)
	// SetBounds moves and resizes the window without changing z-order and
	// makes the window recompute its frame.
	SetBounds(Rect) error
	// NearestMonitor returns the bounds of the display nearest the window.
	NearestMonitor() (Rect, error)
	// Redraw invalidates the window and repaints it synchronously.
	Redraw() error
}

// StatefulWindow is the window capability used by the window-manager state
// fullscreen algorithm (EWMH / GTK style).
type StatefulWindow interface {
	Valid() bool
	FullscreenState() (bool, error)
	RequestFullscreen(on bool) error
	// WaitFullscreen drains pending window-system events until the window
	// reports the wanted state or timeout elapses, and returns the last
	// observed state.
	WaitFullscreen(want bool, timeout time.Duration) (bool, error)
}
