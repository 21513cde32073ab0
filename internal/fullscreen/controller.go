// Package fullscreen reconciles a cached fullscreen flag with the state the
// window system reports for a single host window.
//
// The cached flag is advisory. Every operation re-reads the window system
// before acting, so changes made behind the controller's back (a window
// manager forcing fullscreen, monitor reconfiguration) are picked up on the
// next call. No operation returns an error or panics: an absent window or a
// failed query degrades to "not fullscreen".
package fullscreen

import "log/slog"

// Controller is the fullscreen contract shared by every platform.
//
// All methods must run on the UI thread that owns the window.
type Controller interface {
	// IsFullscreen re-derives the state from the window system, updates the
	// cached flag and returns it.
	IsFullscreen() bool
	// EnterFullscreen makes the window cover its monitor. It reports
	// false only when there is no usable window.
	EnterFullscreen() bool
	// ExitFullscreen restores the windowed geometry. It reports false only
	// when there is no usable window.
	ExitFullscreen() bool
	// ToggleFullscreen exits when fullscreen and enters otherwise, returning
	// the result of that call (success, not the new state).
	ToggleFullscreen() bool
}

// Handle is the minimum every window capability provides.
type Handle interface {
	Valid() bool
}

// StateStore holds the borrowed window handle and the last known
// fullscreen flag.
type StateStore[W Handle] struct {
	window     W
	fullscreen bool
}

// NewStateStore creates a store for window. The zero flag means windowed.
func NewStateStore[W Handle](window W) *StateStore[W] {
	return &StateStore[W]{window: window}
}

// Window returns the handle when it refers to a live window.
func (s *StateStore[W]) Window() (W, bool) {
	if any(s.window) == nil || !s.window.Valid() {
		var zero W
		return zero, false
	}
	return s.window, true
}

// Cached returns the last recorded flag without asking the window system.
func (s *StateStore[W]) Cached() bool {
	return s.fullscreen
}

func (s *StateStore[W]) set(on bool) {
	s.fullscreen = on
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
