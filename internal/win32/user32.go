//go:build windows

package win32

import (
	"errors"
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

const (
	gwlStyle   = -16
	gwlExStyle = -20

	swpNoZOrder     = 0x0004
	swpNoActivate   = 0x0010
	swpFrameChanged = 0x0020

	monitorDefaultToNearest = 0x00000002

	rdwInvalidate  = 0x0001
	rdwAllChildren = 0x0080
	rdwUpdateNow   = 0x0100
	rdwFrame       = 0x0400

	csHRedraw = 0x0002
	csVRedraw = 0x0001
	csDblClks = 0x0008

	wsOverlappedWindow = 0x00CF0000
	wsClipChildren     = 0x02000000
	swShow             = 5
	cwUseDefault       = 0x80000000

	wmDestroy = 0x0002
	wmClose   = 0x0010
	wmApp     = 0x8000

	idcArrow = 32512
)

type rect struct {
	left   int32
	top    int32
	right  int32
	bottom int32
}

type point struct {
	x int32
	y int32
}

type msg struct {
	hwnd     windows.HWND
	message  uint32
	wParam   uintptr
	lParam   uintptr
	time     uint32
	pt       point
	lPrivate uint32
}

type monitorInfo struct {
	cbSize    uint32
	rcMonitor rect
	rcWork    rect
	dwFlags   uint32
}

type wndClassEx struct {
	cbSize        uint32
	style         uint32
	lpfnWndProc   uintptr
	cbClsExtra    int32
	cbWndExtra    int32
	hInstance     windows.Handle
	hIcon         windows.Handle
	hCursor       windows.Handle
	hbrBackground windows.Handle
	lpszMenuName  *uint16
	lpszClassName *uint16
	hIconSm       windows.Handle
}

var (
	user32   = windows.NewLazySystemDLL("user32.dll")
	kernel32 = windows.NewLazySystemDLL("kernel32.dll")

	procGetWindowLongPtr  = user32.NewProc("GetWindowLongPtrW")
	procSetWindowLongPtr  = user32.NewProc("SetWindowLongPtrW")
	procGetWindowLong     = user32.NewProc("GetWindowLongW")
	procSetWindowLong     = user32.NewProc("SetWindowLongW")
	procGetWindowRect     = user32.NewProc("GetWindowRect")
	procSetWindowPos      = user32.NewProc("SetWindowPos")
	procMonitorFromWindow = user32.NewProc("MonitorFromWindow")
	procGetMonitorInfo    = user32.NewProc("GetMonitorInfoW")
	procRedrawWindow      = user32.NewProc("RedrawWindow")
	procIsWindow          = user32.NewProc("IsWindow")

	procRegisterClassEx  = user32.NewProc("RegisterClassExW")
	procCreateWindowEx   = user32.NewProc("CreateWindowExW")
	procDefWindowProc    = user32.NewProc("DefWindowProcW")
	procDestroyWindow    = user32.NewProc("DestroyWindow")
	procShowWindow       = user32.NewProc("ShowWindow")
	procUpdateWindow     = user32.NewProc("UpdateWindow")
	procGetMessage       = user32.NewProc("GetMessageW")
	procTranslateMessage = user32.NewProc("TranslateMessage")
	procDispatchMessage  = user32.NewProc("DispatchMessageW")
	procPostMessage      = user32.NewProc("PostMessageW")
	procPostQuitMessage  = user32.NewProc("PostQuitMessage")
	procLoadCursor       = user32.NewProc("LoadCursorW")
	procFindWindow       = user32.NewProc("FindWindowW")

	procGetModuleHandle = kernel32.NewProc("GetModuleHandleW")
	procSetLastError    = kernel32.NewProc("SetLastError")
)

func clearLastError() {
	procSetLastError.Call(0)
}

// winErr wraps the error a proc call returned, which carries GetLastError.
func winErr(op string, err error) error {
	var errno windows.Errno
	if errors.As(err, &errno) && errno != 0 {
		return fmt.Errorf("%s failed: %w", op, errno)
	}
	return fmt.Errorf("%s failed", op)
}

// 32-bit user32 only exports the non-Ptr variants.
func getWindowLong(hwnd windows.HWND, index int32) (uintptr, error) {
	proc := procGetWindowLongPtr
	if proc.Find() != nil {
		proc = procGetWindowLong
	}
	clearLastError()
	ret, _, err := proc.Call(uintptr(hwnd), uintptr(index))
	if ret == 0 {
		var errno windows.Errno
		if errors.As(err, &errno) && errno != 0 {
			return 0, winErr(proc.Name, err)
		}
	}
	return ret, nil
}

func setWindowLong(hwnd windows.HWND, index int32, value uintptr) error {
	proc := procSetWindowLongPtr
	if proc.Find() != nil {
		proc = procSetWindowLong
	}
	clearLastError()
	ret, _, err := proc.Call(uintptr(hwnd), uintptr(index), value)
	if ret == 0 {
		// Zero is also a valid previous value; only a set last error fails.
		var errno windows.Errno
		if errors.As(err, &errno) && errno != 0 {
			return winErr(proc.Name, err)
		}
	}
	return nil
}

func windowRect(hwnd windows.HWND) (rect, error) {
	var r rect
	ret, _, err := procGetWindowRect.Call(uintptr(hwnd), uintptr(unsafe.Pointer(&r)))
	if ret == 0 {
		return rect{}, winErr("GetWindowRect", err)
	}
	return r, nil
}

func moduleHandle() windows.Handle {
	ret, _, _ := procGetModuleHandle.Call(0)
	return windows.Handle(ret)
}
