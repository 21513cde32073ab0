package x11

import (
	"fmt"
	"sync"
	"time"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/keybind"
	"github.com/BurntSushi/xgbutil/mousebind"
	"github.com/BurntSushi/xgbutil/xevent"

	"github.com/1broseidon/hostwin/internal/shortcuts"
)

// ShortcutBindings names the keys and double-click interval to bind.
type ShortcutBindings struct {
	ToggleKey   string
	ExitKey     string
	DoubleClick time.Duration
	// Mouse enables the client-area double-click. It needs ButtonPress
	// selected on the window, which X11 only allows for one client, so it is
	// off for adopted windows.
	Mouse bool
}

var ignoreModsOnce sync.Once

// BindShortcuts routes the fullscreen shortcuts on win to handler. Every
// callback runs on the event loop.
func (c *Connection) BindShortcuts(win xproto.Window, handler *shortcuts.Handler, b ShortcutBindings) error {
	ignoreModsOnce.Do(func() {
		configureIgnoreMods(c.XUtil)
	})

	if err := c.bindKey(win, b.ToggleKey, func() {
		handler.Handle(shortcuts.KeyDown(shortcuts.KeyToggle))
	}); err != nil {
		return fmt.Errorf("failed to bind toggle key %q: %w", b.ToggleKey, err)
	}
	if err := c.bindReplayableKey(win, b.ExitKey, func() bool {
		return handler.Handle(shortcuts.KeyDown(shortcuts.KeyExit))
	}); err != nil {
		return fmt.Errorf("failed to bind exit key %q: %w", b.ExitKey, err)
	}

	if !b.Mouse {
		return nil
	}
	clicks := shortcuts.NewClickTracker(b.DoubleClick)
	err := mousebind.ButtonPressFun(func(xu *xgbutil.XUtil, ev xevent.ButtonPressEvent) {
		if !clicks.Click(serverTime(ev.Time)) {
			return
		}
		handler.Handle(shortcuts.Event{Kind: shortcuts.KindDoubleClick})
	}).Connect(c.XUtil, win, "1", false, false)
	if err != nil {
		return fmt.Errorf("failed to bind double-click: %w", err)
	}
	return nil
}

func (c *Connection) bindKey(win xproto.Window, keySequence string, callback func()) error {
	return keybind.KeyPressFun(func(xu *xgbutil.XUtil, ev xevent.KeyPressEvent) {
		callback()
	}).Connect(c.XUtil, win, keySequence, true)
}

// bindReplayableKey grabs keySequence on win synchronously. A press the
// callback does not consume is replayed to the focused window, so the exit
// key still reaches the application while windowed.
func (c *Connection) bindReplayableKey(win xproto.Window, keySequence string, callback func() bool) error {
	err := keybind.KeyPressFun(func(xu *xgbutil.XUtil, ev xevent.KeyPressEvent) {
		handled := callback()
		xproto.AllowEvents(xu.Conn(), releaseMode(handled), ev.Time)
	}).Connect(c.XUtil, win, keySequence, false)
	if err != nil {
		return err
	}

	mods, keycodes, err := keybind.ParseString(c.XUtil, keySequence)
	if err != nil {
		return err
	}
	for _, keycode := range keycodes {
		for _, m := range xevent.IgnoreMods {
			// OwnerEvents is false so the press always reports against win
			// and reaches the callback that thaws the keyboard.
			err := xproto.GrabKeyChecked(c.XUtil.Conn(), false, win, mods|m, keycode,
				xproto.GrabModeAsync, xproto.GrabModeSync).Check()
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// releaseMode picks how a synchronously grabbed key press is released.
func releaseMode(handled bool) byte {
	if handled {
		return xproto.AllowAsyncKeyboard
	}
	return xproto.AllowReplayKeyboard
}

// serverTime maps an X server timestamp (milliseconds, wrapping) onto a
// time.Time for interval arithmetic.
func serverTime(ts xproto.Timestamp) time.Time {
	return time.UnixMilli(int64(ts))
}

func configureIgnoreMods(xu *xgbutil.XUtil) {
	// Always ignore CapsLock.
	caps := uint16(xproto.ModMaskLock)

	numLock := modMaskForKeysym(xu, "Num_Lock")
	scrollLock := modMaskForKeysym(xu, "Scroll_Lock")

	unique := make(map[uint16]struct{})
	add := func(mask uint16) {
		unique[mask] = struct{}{}
	}

	add(0)
	base := []uint16{caps}
	if numLock != 0 && numLock != caps {
		base = append(base, numLock)
	}
	if scrollLock != 0 && scrollLock != caps && scrollLock != numLock {
		base = append(base, scrollLock)
	}

	for subset := 1; subset < (1 << len(base)); subset++ {
		var mask uint16
		for bit := range base {
			if subset&(1<<bit) != 0 {
				mask |= base[bit]
			}
		}
		add(mask)
	}

	ignore := make([]uint16, 0, len(unique))
	for mask := range unique {
		ignore = append(ignore, mask)
	}

	xevent.IgnoreMods = ignore
}

func modMaskForKeysym(xu *xgbutil.XUtil, keysym string) uint16 {
	for _, keycode := range keybind.StrToKeycodes(xu, keysym) {
		if mask := keybind.ModGet(xu, keycode); mask != 0 {
			return mask
		}
	}
	return 0
}
