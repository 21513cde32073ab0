//go:build windows

package win32

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/1broseidon/hostwin/internal/mainloop"
	"github.com/1broseidon/hostwin/internal/shortcuts"
)

const className = "HostwinWindow"

// HostWindowOptions describes the top-level window to create.
type HostWindowOptions struct {
	Title  string
	Width  int
	Height int
}

// HostWindow is a top-level window owned by this process together with the
// message loop that serves it. The goroutine that creates it is locked to
// its OS thread and must also call Run.
type HostWindow struct {
	*Window

	mu       sync.Mutex
	loop     *mainloop.Loop
	handler  *shortcuts.Handler
	attached bool
	logger   *slog.Logger
}

var (
	registerOnce sync.Once
	registerErr  error
	wndProcPtr   uintptr

	// hosts routes window messages to their HostWindow.
	hostsMu sync.Mutex
	hosts   = map[windows.HWND]*HostWindow{}
	// creating receives the messages sent before CreateWindowExW returns.
	creating *HostWindow
)

func registerWindowClass() error {
	registerOnce.Do(func() {
		wndProcPtr = windows.NewCallback(wndProc)
		name, err := windows.UTF16PtrFromString(className)
		if err != nil {
			registerErr = err
			return
		}
		cursor, _, _ := procLoadCursor.Call(0, idcArrow)
		wc := wndClassEx{
			style:         csHRedraw | csVRedraw | csDblClks,
			lpfnWndProc:   wndProcPtr,
			hInstance:     moduleHandle(),
			hCursor:       windows.Handle(cursor),
			hbrBackground: windows.Handle(6), // COLOR_WINDOW + 1
			lpszClassName: name,
		}
		wc.cbSize = uint32(unsafe.Sizeof(wc))
		if ret, _, err := procRegisterClassEx.Call(uintptr(unsafe.Pointer(&wc))); ret == 0 {
			registerErr = winErr("RegisterClassExW", err)
		}
	})
	return registerErr
}

// CreateHostWindow creates and shows a WS_OVERLAPPEDWINDOW window. loop is
// drained whenever work is queued; the returned window's Wake must be used
// as loop's wake hook.
func CreateHostWindow(opts HostWindowOptions, logger *slog.Logger) (*HostWindow, error) {
	runtime.LockOSThread()

	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if err := registerWindowClass(); err != nil {
		return nil, err
	}
	cls, err := windows.UTF16PtrFromString(className)
	if err != nil {
		return nil, err
	}
	title, err := windows.UTF16PtrFromString(opts.Title)
	if err != nil {
		return nil, fmt.Errorf("invalid window title: %w", err)
	}

	h := &HostWindow{Window: &Window{}, logger: logger}
	hostsMu.Lock()
	creating = h
	hostsMu.Unlock()

	hwnd, _, err := procCreateWindowEx.Call(
		0,
		uintptr(unsafe.Pointer(cls)),
		uintptr(unsafe.Pointer(title)),
		wsOverlappedWindow|wsClipChildren,
		cwUseDefault, cwUseDefault,
		uintptr(opts.Width), uintptr(opts.Height),
		0, 0,
		uintptr(moduleHandle()),
		0,
	)

	hostsMu.Lock()
	creating = nil
	if hwnd != 0 {
		h.hwnd = windows.HWND(hwnd)
		hosts[h.hwnd] = h
	}
	hostsMu.Unlock()

	if hwnd == 0 {
		return nil, winErr("CreateWindowExW", err)
	}

	procShowWindow.Call(hwnd, swShow)
	procUpdateWindow.Call(hwnd)
	logger.Info("created host window", "hwnd", fmt.Sprintf("%#x", hwnd), "title", opts.Title)
	return h, nil
}

// AttachWindow borrows the top-level window titled title. Its messages are
// not routed through this process, so shortcuts are unavailable and Run
// only drains queued work.
func AttachWindow(title string, logger *slog.Logger) (*HostWindow, error) {
	runtime.LockOSThread()

	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	name, err := windows.UTF16PtrFromString(title)
	if err != nil {
		return nil, err
	}
	hwnd, _, err := procFindWindow.Call(0, uintptr(unsafe.Pointer(name)))
	if hwnd == 0 {
		return nil, fmt.Errorf("no window titled %q: %w", title, winErr("FindWindowW", err))
	}
	logger.Info("attached to window", "hwnd", fmt.Sprintf("%#x", hwnd), "title", title)
	return &HostWindow{Window: NewWindow(windows.HWND(hwnd)), attached: true, logger: logger}, nil
}

// Attached reports whether the window belongs to another process.
func (h *HostWindow) Attached() bool {
	return h.attached
}

// SetShortcuts installs the handler that sees input before the default
// window procedure.
func (h *HostWindow) SetShortcuts(handler *shortcuts.Handler) {
	h.mu.Lock()
	h.handler = handler
	h.mu.Unlock()
}

// Wake posts WM_APP so the message loop drains queued work. Safe to call
// from any goroutine.
func (h *HostWindow) Wake() {
	if h.attached || h.hwnd == 0 {
		return
	}
	procPostMessage.Call(uintptr(h.hwnd), wmApp, 0, 0)
}

// Run pumps window messages until the window is destroyed or ctx ends.
// It must be called on the goroutine that created the window.
func (h *HostWindow) Run(ctx context.Context, loop *mainloop.Loop) error {
	h.mu.Lock()
	h.loop = loop
	h.mu.Unlock()

	if h.attached {
		return loop.Run(ctx)
	}

	stop := context.AfterFunc(ctx, func() {
		procPostMessage.Call(uintptr(h.hwnd), wmClose, 0, 0)
	})
	defer stop()

	// Work queued before the loop started.
	loop.RunPending()

	var m msg
	for {
		ret, _, err := procGetMessage.Call(uintptr(unsafe.Pointer(&m)), 0, 0, 0)
		switch int32(ret) {
		case -1:
			return winErr("GetMessageW", err)
		case 0:
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return nil
		}
		procTranslateMessage.Call(uintptr(unsafe.Pointer(&m)))
		procDispatchMessage.Call(uintptr(unsafe.Pointer(&m)))
	}
}

// Destroy closes an owned window. Attached windows are left alone.
func (h *HostWindow) Destroy() {
	if h.attached || !h.Valid() {
		return
	}
	procDestroyWindow.Call(uintptr(h.hwnd))
}

func lookupHost(hwnd windows.HWND) *HostWindow {
	hostsMu.Lock()
	defer hostsMu.Unlock()
	if h, ok := hosts[hwnd]; ok {
		return h
	}
	return creating
}

func wndProc(hwnd windows.HWND, message uint32, wParam, lParam uintptr) uintptr {
	h := lookupHost(hwnd)
	if h != nil {
		if ret, handled := h.handle(hwnd, message, wParam); handled {
			return ret
		}
	}
	ret, _, _ := procDefWindowProc.Call(uintptr(hwnd), uintptr(message), wParam, lParam)
	return ret
}

func (h *HostWindow) handle(hwnd windows.HWND, message uint32, wParam uintptr) (uintptr, bool) {
	h.mu.Lock()
	handler, loop := h.handler, h.loop
	h.mu.Unlock()

	if handler != nil {
		if ev, ok := shortcuts.FromWin32Message(message, wParam); ok && handler.Handle(ev) {
			return 0, true
		}
	}

	switch message {
	case wmApp:
		if loop != nil {
			if n := loop.RunPending(); n > 0 {
				h.logger.Debug("ran queued work", "tasks", n)
			}
		}
		return 0, true
	case wmClose:
		procDestroyWindow.Call(uintptr(hwnd))
		return 0, true
	case wmDestroy:
		hostsMu.Lock()
		delete(hosts, hwnd)
		hostsMu.Unlock()
		procPostQuitMessage.Call(0)
		return 0, true
	}
	return 0, false
}
