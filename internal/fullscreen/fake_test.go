package fullscreen

import (
	"errors"
	"time"

	"github.com/1broseidon/hostwin/internal/platform"
)

var errQuery = errors.New("query failed")

// fakeStyled is an in-memory StyledWindow.
type fakeStyled struct {
	valid   bool
	style   platform.Style
	bounds  platform.Rect
	monitor platform.Rect

	styleErr     error
	monitorErr   error
	setBoundsErr error

	redraws  int
	setStyle int
}

func newWindowed() *fakeStyled {
	return &fakeStyled{
		valid:   true,
		style:   platform.Style{Base: StyleOverlappedWindow | 0x10000000, Extended: ExStyleWindowEdge | 0x00040000},
		bounds:  platform.Rect{X: 200, Y: 150, Width: 800, Height: 600},
		monitor: platform.Rect{X: 0, Y: 0, Width: 1920, Height: 1080},
	}
}

func (f *fakeStyled) Valid() bool { return f != nil && f.valid }

func (f *fakeStyled) Style() (platform.Style, error) {
	if f.styleErr != nil {
		return platform.Style{}, f.styleErr
	}
	return f.style, nil
}

func (f *fakeStyled) SetStyle(s platform.Style) error {
	f.setStyle++
	f.style = s
	return nil
}

func (f *fakeStyled) Bounds() (platform.Rect, error) { return f.bounds, nil }

func (f *fakeStyled) SetBounds(r platform.Rect) error {
	if f.setBoundsErr != nil {
		return f.setBoundsErr
	}
	f.bounds = r
	return nil
}

func (f *fakeStyled) NearestMonitor() (platform.Rect, error) {
	if f.monitorErr != nil {
		return platform.Rect{}, f.monitorErr
	}
	return f.monitor, nil
}

func (f *fakeStyled) Redraw() error {
	f.redraws++
	return nil
}

// fakeStateful is an in-memory StatefulWindow whose window manager applies
// requests when waited on, unless ignore is set.
type fakeStateful struct {
	valid    bool
	state    bool
	pending  *bool
	ignore   bool
	queryErr error

	requests int
	waits    []time.Duration
}

func (f *fakeStateful) Valid() bool { return f != nil && f.valid }

func (f *fakeStateful) FullscreenState() (bool, error) {
	if f.queryErr != nil {
		return false, f.queryErr
	}
	return f.state, nil
}

func (f *fakeStateful) RequestFullscreen(on bool) error {
	f.requests++
	f.pending = &on
	return nil
}

func (f *fakeStateful) WaitFullscreen(want bool, timeout time.Duration) (bool, error) {
	f.waits = append(f.waits, timeout)
	if f.pending != nil && !f.ignore {
		f.state = *f.pending
	}
	f.pending = nil
	return f.FullscreenState()
}
