package x11

import (
	"fmt"
	"os"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
	"github.com/BurntSushi/xgbutil/xevent"
	"github.com/BurntSushi/xgbutil/xwindow"
)

// HostWindowOptions describes a host window to create.
type HostWindowOptions struct {
	Title         string
	ApplicationID string
	Width         int
	Height        int
}

// HostWindow is a window created by this process.
type HostWindow struct {
	*Window
	xwin *xwindow.Window
}

const hostEventMask = xproto.EventMaskStructureNotify |
	xproto.EventMaskKeyPress |
	xproto.EventMaskButtonPress |
	xproto.EventMaskPropertyChange

// CreateHostWindow creates and maps a top-level window. onClose runs on the
// event loop when the window manager asks the window to close.
func (c *Connection) CreateHostWindow(opts HostWindowOptions, onClose func()) (*HostWindow, error) {
	xwin, err := xwindow.Generate(c.XUtil)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate window id: %w", err)
	}

	if err := xwin.CreateChecked(c.Root, 0, 0, opts.Width, opts.Height,
		xproto.CwBackPixel|xproto.CwEventMask,
		0x000000, hostEventMask); err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	id := xwin.Id
	if err := ewmh.WmNameSet(c.XUtil, id, opts.Title); err != nil {
		xwin.Destroy()
		return nil, fmt.Errorf("failed to set _NET_WM_NAME: %w", err)
	}
	if err := icccm.WmNameSet(c.XUtil, id, opts.Title); err != nil {
		xwin.Destroy()
		return nil, fmt.Errorf("failed to set WM_NAME: %w", err)
	}
	if err := icccm.WmClassSet(c.XUtil, id, &icccm.WmClass{
		Instance: opts.Title,
		Class:    opts.ApplicationID,
	}); err != nil {
		xwin.Destroy()
		return nil, fmt.Errorf("failed to set WM_CLASS: %w", err)
	}
	if err := ewmh.WmPidSet(c.XUtil, id, uint(os.Getpid())); err != nil {
		xwin.Destroy()
		return nil, fmt.Errorf("failed to set _NET_WM_PID: %w", err)
	}
	if err := icccm.WmProtocolsSet(c.XUtil, id, []string{"WM_DELETE_WINDOW"}); err != nil {
		xwin.Destroy()
		return nil, fmt.Errorf("failed to set WM_PROTOCOLS: %w", err)
	}

	host := &HostWindow{Window: NewWindow(c, id), xwin: xwin}

	if onClose != nil {
		xwin.WMGracefulClose(func(*xwindow.Window) {
			onClose()
		})
	}
	c.TrackDestroy(host.Window)

	xwin.Map()
	return host, nil
}

// AttachWindow adopts an existing top-level window found by title.
func (c *Connection) AttachWindow(title string) (*Window, error) {
	id, err := c.FindWindowByTitle(title)
	if err != nil {
		return nil, err
	}
	win := NewWindow(c, id)
	if err := xwindow.New(c.XUtil, id).Listen(xproto.EventMaskStructureNotify); err != nil {
		return nil, fmt.Errorf("failed to watch window %d: %w", id, err)
	}
	c.TrackDestroy(win)
	return win, nil
}

// TrackDestroy marks win invalid as soon as the server reports its
// destruction.
func (c *Connection) TrackDestroy(win *Window) {
	xevent.DestroyNotifyFun(func(xu *xgbutil.XUtil, ev xevent.DestroyNotifyEvent) {
		if ev.Window == win.id {
			win.MarkDestroyed()
			xevent.Detach(xu, win.id)
		}
	}).Connect(c.XUtil, win.id)
}

// Destroy destroys a created host window.
func (h *HostWindow) Destroy() {
	if h == nil || h.xwin == nil {
		return
	}
	h.MarkDestroyed()
	h.xwin.Destroy()
}
