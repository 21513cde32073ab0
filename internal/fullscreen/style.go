package fullscreen

import (
	"log/slog"

	"github.com/1broseidon/hostwin/internal/platform"
)

// Win32 style bits touched when entering and leaving fullscreen.
const (
	StyleCaption          uint32 = 0x00C00000 // WS_CAPTION
	StyleThickFrame       uint32 = 0x00040000 // WS_THICKFRAME
	StyleOverlappedWindow uint32 = 0x00CF0000 // WS_OVERLAPPEDWINDOW

	ExStyleDlgModalFrame uint32 = 0x00000001 // WS_EX_DLGMODALFRAME
	ExStyleWindowEdge    uint32 = 0x00000100 // WS_EX_WINDOWEDGE
	ExStyleClientEdge    uint32 = 0x00000200 // WS_EX_CLIENTEDGE
	ExStyleStaticEdge    uint32 = 0x00020000 // WS_EX_STATICEDGE

	frameBits = StyleCaption | StyleThickFrame
	edgeBits  = ExStyleDlgModalFrame | ExStyleWindowEdge | ExStyleClientEdge | ExStyleStaticEdge
)

var (
	// DefaultWindowedStyle is restored when leaving fullscreen without a
	// snapshot.
	DefaultWindowedStyle = platform.Style{Base: StyleOverlappedWindow}
	// DefaultWindowedBounds is restored when the saved rectangle is
	// degenerate: 1024x768 at (100,100), edges (100,100)-(1124,868).
	DefaultWindowedBounds = platform.Rect{X: 100, Y: 100, Width: 1024, Height: 768}
)

// Snapshot is the windowed geometry captured on entering fullscreen.
type Snapshot struct {
	Style  platform.Style
	Bounds platform.Rect
}

// StyleOptions configures a StyleController. Zero values select the
// package defaults.
type StyleOptions struct {
	DefaultStyle  platform.Style
	DefaultBounds platform.Rect
	Logger        *slog.Logger
}

// StyleController implements Controller by rewriting window style bits and
// bounds, the way a Win32 host goes borderless fullscreen.
//
// The window system has no fullscreen bit for this model, so the state is
// derived from live values: a window is fullscreen when it carries neither
// a caption nor a sizing frame and exactly covers its nearest monitor.
type StyleController struct {
	store         *StateStore[platform.StyledWindow]
	saved         *Snapshot
	defaultStyle  platform.Style
	defaultBounds platform.Rect
	logger        *slog.Logger
}

var _ Controller = (*StyleController)(nil)

// NewStyleController creates a controller borrowing win.
func NewStyleController(win platform.StyledWindow, opts StyleOptions) *StyleController {
	c := &StyleController{
		store:         NewStateStore(win),
		defaultStyle:  opts.DefaultStyle,
		defaultBounds: opts.DefaultBounds,
		logger:        opts.Logger,
	}
	if c.defaultStyle.Base == 0 {
		c.defaultStyle = DefaultWindowedStyle
	}
	if c.defaultBounds.Degenerate() {
		c.defaultBounds = DefaultWindowedBounds
	}
	if c.logger == nil {
		c.logger = discardLogger()
	}
	return c
}

// Store exposes the underlying state store.
func (c *StyleController) Store() *StateStore[platform.StyledWindow] {
	return c.store
}

// Snapshot returns the saved windowed geometry, if any.
func (c *StyleController) Snapshot() (Snapshot, bool) {
	if c.saved == nil {
		return Snapshot{}, false
	}
	return *c.saved, true
}

// IsFullscreen implements Controller.
func (c *StyleController) IsFullscreen() bool {
	win, ok := c.store.Window()
	if !ok {
		c.store.set(false)
		return false
	}

	on, err := styledFullscreen(win)
	if err != nil {
		c.logger.Debug("fullscreen state query failed", "error", err)
		on = false
	}
	c.store.set(on)
	return on
}

// EnterFullscreen implements Controller.
func (c *StyleController) EnterFullscreen() bool {
	win, ok := c.store.Window()
	if !ok {
		return false
	}
	if c.IsFullscreen() {
		return true
	}

	monitor, err := win.NearestMonitor()
	if err != nil {
		c.logger.Warn("failed to resolve monitor for window", "error", err)
		return true
	}

	style, err := win.Style()
	if err != nil {
		c.logger.Warn("failed to read window style", "error", err)
		return true
	}
	bounds, err := win.Bounds()
	if err != nil {
		c.logger.Warn("failed to read window bounds", "error", err)
	}
	snap := &Snapshot{Style: style, Bounds: bounds}

	stripped := platform.Style{
		Base:     style.Base &^ frameBits,
		Extended: style.Extended &^ edgeBits,
	}
	if err := win.SetStyle(stripped); err != nil {
		c.logger.Warn("failed to set fullscreen style", "error", err)
	}
	if err := win.SetBounds(monitor); err != nil {
		c.logger.Warn("failed to cover monitor", "monitor", monitor, "error", err)
		if err := win.SetStyle(style); err != nil {
			c.logger.Warn("failed to restore window style", "error", err)
		}
	}

	// A failed entry leaves the window as it was and keeps any previous
	// snapshot.
	if c.IsFullscreen() {
		c.saved = snap
		c.logger.Debug("entered fullscreen", "saved_bounds", bounds, "monitor", monitor)
	}
	return true
}

// ExitFullscreen implements Controller.
func (c *StyleController) ExitFullscreen() bool {
	win, ok := c.store.Window()
	if !ok {
		return false
	}
	if !c.IsFullscreen() {
		return true
	}

	style := c.defaultStyle
	var bounds platform.Rect
	if c.saved != nil {
		style = c.saved.Style
		if style.Base == 0 {
			style.Base = c.defaultStyle.Base
		}
		bounds = c.saved.Bounds
	}
	if bounds.Degenerate() {
		bounds = c.defaultBounds
	}

	if err := win.SetStyle(style); err != nil {
		c.logger.Warn("failed to restore window style", "error", err)
	}
	if err := win.SetBounds(bounds); err != nil {
		c.logger.Warn("failed to restore window bounds", "bounds", bounds, "error", err)
	}
	if err := win.Redraw(); err != nil {
		c.logger.Warn("failed to redraw window", "error", err)
	}

	c.saved = nil
	c.store.set(false)
	c.logger.Debug("exited fullscreen", "bounds", bounds)
	return true
}

// ToggleFullscreen implements Controller.
func (c *StyleController) ToggleFullscreen() bool {
	if c.IsFullscreen() {
		return c.ExitFullscreen()
	}
	return c.EnterFullscreen()
}

func styledFullscreen(win platform.StyledWindow) (bool, error) {
	style, err := win.Style()
	if err != nil {
		return false, err
	}
	if style.Base&frameBits != 0 {
		return false, nil
	}
	bounds, err := win.Bounds()
	if err != nil {
		return false, err
	}
	monitor, err := win.NearestMonitor()
	if err != nil {
		return false, err
	}
	return bounds == monitor, nil
}
