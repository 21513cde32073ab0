package x11

import (
	"testing"
	"time"

	"github.com/BurntSushi/xgb/xproto"
)

func TestReleaseMode(t *testing.T) {
	if got := releaseMode(true); got != xproto.AllowAsyncKeyboard {
		t.Fatalf("releaseMode(true) = %d, want AsyncKeyboard", got)
	}
	if got := releaseMode(false); got != xproto.AllowReplayKeyboard {
		t.Fatalf("releaseMode(false) = %d, want ReplayKeyboard", got)
	}
}

func TestServerTime(t *testing.T) {
	a := serverTime(xproto.Timestamp(1000))
	b := serverTime(xproto.Timestamp(1250))
	if d := b.Sub(a); d != 250*time.Millisecond {
		t.Fatalf("interval = %v, want 250ms", d)
	}
}
