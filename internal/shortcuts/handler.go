// Package shortcuts turns raw window input into fullscreen transitions.
//
// The handler runs before any other input processing for the host window and
// claims an event only when it actually caused a transition, so everything
// else (a double-click that should maximize a windowed frame, Escape typed
// into the embedded view) falls through untouched.
package shortcuts

import (
	"log/slog"

	"github.com/1broseidon/hostwin/internal/fullscreen"
)

// State mirrors the controller's re-derived fullscreen flag.
type State int

const (
	Windowed State = iota
	Fullscreen
)

func (s State) String() string {
	if s == Fullscreen {
		return "fullscreen"
	}
	return "windowed"
}

// Kind classifies an input event.
type Kind int

const (
	KindOther Kind = iota
	KindKeyDown
	// KindNonClientDoubleClick is a double-click on the window frame.
	KindNonClientDoubleClick
	// KindDoubleClick is a double-click inside the client area.
	KindDoubleClick
)

// Key names the keys the handler reacts to. Bindings translate whatever
// keys are configured into these.
type Key int

const (
	KeyOther Key = iota
	// KeyToggle is F11 unless configured otherwise.
	KeyToggle
	// KeyExit is Escape unless configured otherwise.
	KeyExit
)

// HitTest is the frame region under the pointer for non-client events.
type HitTest int

const (
	HitOther HitTest = iota
	HitCaption
)

// Event is a platform-neutral input event.
type Event struct {
	Kind Kind
	Key  Key
	Hit  HitTest
}

// KeyDown builds a key press event.
func KeyDown(k Key) Event {
	return Event{Kind: KindKeyDown, Key: k}
}

// Handler applies the fullscreen shortcuts to a controller.
type Handler struct {
	ctrl   fullscreen.Controller
	logger *slog.Logger
}

// NewHandler creates a handler over ctrl. logger may be nil.
func NewHandler(ctrl fullscreen.Controller, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Handler{ctrl: ctrl, logger: logger}
}

// State re-derives the current state from the controller.
func (h *Handler) State() State {
	if h.ctrl.IsFullscreen() {
		return Fullscreen
	}
	return Windowed
}

// Handle processes ev and reports whether it was consumed.
//
//	toggle key                   -> toggle, from either state
//	exit key                     -> exit, only when fullscreen
//	double-click on the caption  -> exit, only when fullscreen
//	double-click in client area  -> exit, only when fullscreen
func (h *Handler) Handle(ev Event) bool {
	switch {
	case ev.Kind == KindKeyDown && ev.Key == KeyToggle:
		handled := h.ctrl.ToggleFullscreen()
		h.logger.Debug("toggle shortcut", "handled", handled)
		return handled

	case ev.Kind == KindKeyDown && ev.Key == KeyExit,
		ev.Kind == KindNonClientDoubleClick && ev.Hit == HitCaption,
		ev.Kind == KindDoubleClick:
		if h.State() != Fullscreen {
			return false
		}
		handled := h.ctrl.ExitFullscreen()
		h.logger.Debug("exit shortcut", "kind", ev.Kind, "handled", handled)
		return handled
	}
	return false
}
