//go:build windows

// Package win32 binds the host window to user32 for the style-bit
// fullscreen algorithm.
package win32

import (
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/1broseidon/hostwin/internal/platform"
)

// Window is a borrowed HWND. It implements platform.StyledWindow; every
// method must be called on the thread that created the window.
type Window struct {
	hwnd windows.HWND
}

var _ platform.StyledWindow = (*Window)(nil)

// NewWindow wraps an existing window handle.
func NewWindow(hwnd windows.HWND) *Window {
	return &Window{hwnd: hwnd}
}

// HWND returns the raw handle.
func (w *Window) HWND() windows.HWND {
	return w.hwnd
}

func (w *Window) Valid() bool {
	if w.hwnd == 0 {
		return false
	}
	ret, _, _ := procIsWindow.Call(uintptr(w.hwnd))
	return ret != 0
}

func (w *Window) Style() (platform.Style, error) {
	base, err := getWindowLong(w.hwnd, gwlStyle)
	if err != nil {
		return platform.Style{}, err
	}
	ext, err := getWindowLong(w.hwnd, gwlExStyle)
	if err != nil {
		return platform.Style{}, err
	}
	return platform.Style{Base: uint32(base), Extended: uint32(ext)}, nil
}

func (w *Window) SetStyle(s platform.Style) error {
	if err := setWindowLong(w.hwnd, gwlStyle, uintptr(s.Base)); err != nil {
		return err
	}
	return setWindowLong(w.hwnd, gwlExStyle, uintptr(s.Extended))
}

func (w *Window) Bounds() (platform.Rect, error) {
	r, err := windowRect(w.hwnd)
	if err != nil {
		return platform.Rect{}, err
	}
	return toRect(r), nil
}

// SetBounds applies r with SWP_FRAMECHANGED so a preceding SetStyle takes
// effect.
func (w *Window) SetBounds(r platform.Rect) error {
	ret, _, err := procSetWindowPos.Call(
		uintptr(w.hwnd),
		0,
		uintptr(int32(r.X)),
		uintptr(int32(r.Y)),
		uintptr(int32(r.Width)),
		uintptr(int32(r.Height)),
		swpNoZOrder|swpNoActivate|swpFrameChanged,
	)
	if ret == 0 {
		return winErr("SetWindowPos", err)
	}
	return nil
}

func (w *Window) NearestMonitor() (platform.Rect, error) {
	mon, _, err := procMonitorFromWindow.Call(uintptr(w.hwnd), monitorDefaultToNearest)
	if mon == 0 {
		return platform.Rect{}, winErr("MonitorFromWindow", err)
	}
	mi := monitorInfo{}
	mi.cbSize = uint32(unsafe.Sizeof(mi))
	ret, _, err := procGetMonitorInfo.Call(mon, uintptr(unsafe.Pointer(&mi)))
	if ret == 0 {
		return platform.Rect{}, winErr("GetMonitorInfoW", err)
	}
	return toRect(mi.rcMonitor), nil
}

func (w *Window) Redraw() error {
	ret, _, err := procRedrawWindow.Call(
		uintptr(w.hwnd), 0, 0,
		rdwInvalidate|rdwUpdateNow|rdwFrame|rdwAllChildren,
	)
	if ret == 0 {
		return winErr("RedrawWindow", err)
	}
	return nil
}

func toRect(r rect) platform.Rect {
	return platform.RectFromEdges(int(r.left), int(r.top), int(r.right), int(r.bottom))
}
