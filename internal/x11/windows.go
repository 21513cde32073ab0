package x11

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"

	"github.com/1broseidon/hostwin/internal/platform"
)

const stateFullscreen = "_NET_WM_STATE_FULLSCREEN"

// statePollInterval is how often WaitFullscreen re-reads _NET_WM_STATE.
const statePollInterval = 5 * time.Millisecond

// Window is a top-level X11 window whose fullscreen state is owned by the
// window manager through _NET_WM_STATE.
type Window struct {
	conn      *Connection
	id        xproto.Window
	destroyed atomic.Bool
}

var _ platform.StatefulWindow = (*Window)(nil)

// NewWindow wraps an existing window.
func NewWindow(conn *Connection, id xproto.Window) *Window {
	return &Window{conn: conn, id: id}
}

// ID returns the X11 window id.
func (w *Window) ID() xproto.Window {
	if w == nil {
		return 0
	}
	return w.id
}

// MarkDestroyed records that the server destroyed the window.
func (w *Window) MarkDestroyed() {
	w.destroyed.Store(true)
}

// Valid reports whether the window still exists on the server.
func (w *Window) Valid() bool {
	if w == nil || w.conn == nil || w.id == 0 || w.destroyed.Load() {
		return false
	}
	_, err := xproto.GetWindowAttributes(w.conn.XUtil.Conn(), w.id).Reply()
	return err == nil
}

// FullscreenState reports whether _NET_WM_STATE contains
// _NET_WM_STATE_FULLSCREEN.
func (w *Window) FullscreenState() (bool, error) {
	states, err := ewmh.WmStateGet(w.conn.XUtil, w.id)
	if err != nil {
		// A window without _NET_WM_STATE has no states at all.
		if w.Valid() {
			return false, nil
		}
		return false, fmt.Errorf("failed to read _NET_WM_STATE: %w", err)
	}
	for _, state := range states {
		if state == stateFullscreen {
			return true, nil
		}
	}
	return false, nil
}

// RequestFullscreen asks the window manager to add or remove the
// fullscreen state. Unmapped windows get the property written directly,
// which the window manager reads when the window is mapped.
func (w *Window) RequestFullscreen(on bool) error {
	attrs, err := xproto.GetWindowAttributes(w.conn.XUtil.Conn(), w.id).Reply()
	if err != nil {
		return fmt.Errorf("failed to read window attributes: %w", err)
	}

	if attrs.MapState == xproto.MapStateUnmapped {
		return w.setStateProperty(on)
	}

	action := uint32(stateRemove)
	if on {
		action = stateAdd
	}
	fullscreen, err := w.conn.atom(stateFullscreen)
	if err != nil {
		return err
	}
	return w.conn.sendRootMessage(w.id, "_NET_WM_STATE", action, uint32(fullscreen), 0, sourceApplication)
}

func (w *Window) setStateProperty(on bool) error {
	states, err := ewmh.WmStateGet(w.conn.XUtil, w.id)
	if err != nil {
		states = nil
	}
	kept := states[:0]
	for _, s := range states {
		if s != stateFullscreen {
			kept = append(kept, s)
		}
	}
	if on {
		kept = append(kept, stateFullscreen)
	}
	return ewmh.WmStateSet(w.conn.XUtil, w.id, kept)
}

// WaitFullscreen polls the server until the fullscreen state equals want or
// timeout passes, and returns the last observed state.
func (w *Window) WaitFullscreen(want bool, timeout time.Duration) (bool, error) {
	deadline := time.Now().Add(timeout)
	for {
		w.conn.XUtil.Sync()
		got, err := w.FullscreenState()
		if err != nil || got == want || !time.Now().Before(deadline) {
			return got, err
		}
		time.Sleep(statePollInterval)
	}
}

// Bounds returns the window's position in root coordinates and its size.
func (w *Window) Bounds() (platform.Rect, error) {
	return w.conn.WindowRect(w.id)
}

// Title returns the window title, preferring _NET_WM_NAME.
func (w *Window) Title() string {
	return w.conn.windowTitle(w.id)
}

// WindowRect returns a window's root-relative geometry.
func (c *Connection) WindowRect(windowID xproto.Window) (platform.Rect, error) {
	geom, err := xproto.GetGeometry(c.XUtil.Conn(), xproto.Drawable(windowID)).Reply()
	if err != nil {
		return platform.Rect{}, fmt.Errorf("failed to get window geometry: %w", err)
	}

	translate, err := xproto.TranslateCoordinates(
		c.XUtil.Conn(),
		windowID,
		c.Root,
		0, 0,
	).Reply()
	if err != nil {
		return platform.Rect{}, fmt.Errorf("failed to translate window coordinates: %w", err)
	}

	return platform.Rect{
		X:      int(translate.DstX),
		Y:      int(translate.DstY),
		Width:  int(geom.Width),
		Height: int(geom.Height),
	}, nil
}

// FindWindowByTitle returns the first managed client whose title equals
// title.
func (c *Connection) FindWindowByTitle(title string) (xproto.Window, error) {
	clients, err := ewmh.ClientListGet(c.XUtil)
	if err != nil {
		return 0, fmt.Errorf("failed to list clients: %w", err)
	}
	for _, id := range clients {
		if c.windowTitle(id) == title {
			return id, nil
		}
	}
	return 0, fmt.Errorf("no window titled %q", title)
}

func (c *Connection) windowTitle(windowID xproto.Window) string {
	title, err := ewmh.WmNameGet(c.XUtil, windowID)
	if err == nil {
		title = strings.TrimSpace(title)
		if title != "" {
			return title
		}
	}

	title, err = icccm.WmNameGet(c.XUtil, windowID)
	if err == nil {
		title = strings.TrimSpace(title)
		if title != "" {
			return title
		}
	}

	return ""
}
