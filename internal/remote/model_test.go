package remote

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/1broseidon/hostwin/internal/config"
)

type fakeHost struct {
	on    bool
	err   error
	calls []string
}

func (f *fakeHost) EnterFullscreen() (bool, error) {
	f.calls = append(f.calls, "enter")
	f.on = true
	return f.on, f.err
}

func (f *fakeHost) ExitFullscreen() (bool, error) {
	f.calls = append(f.calls, "exit")
	f.on = false
	return false, f.err
}

func (f *fakeHost) ToggleFullscreen() (bool, error) {
	f.calls = append(f.calls, "toggle")
	f.on = !f.on
	return true, f.err
}

func (f *fakeHost) IsFullscreen() (bool, error) {
	f.calls = append(f.calls, "is")
	return f.on, f.err
}

func (f *fakeHost) Ping() (string, error) {
	f.calls = append(f.calls, "ping")
	return "pong", f.err
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// runCmd executes cmd and returns the first message that is not a spinner
// tick or a batch of them.
func runCmd(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			if c == nil {
				continue
			}
			switch m := c().(type) {
			case resultMsg, statusMsg:
				return m
			}
		}
		t.Fatal("batch produced no result")
	}
	return msg
}

func TestModel_ToggleThenPoll(t *testing.T) {
	host := &fakeHost{}
	var m tea.Model = newModel(host, config.DefaultChannelName)

	m, cmd := m.Update(keyMsg("f"))
	if !m.(model).busy {
		t.Fatal("model not busy after toggle key")
	}
	res := runCmd(t, cmd)
	if r, ok := res.(resultMsg); !ok || r.op != "toggleFullscreen" || !r.value {
		t.Fatalf("toggle result = %#v", res)
	}

	m, cmd = m.Update(res)
	mm := m.(model)
	if mm.busy || !mm.connected {
		t.Fatalf("after result busy=%v connected=%v", mm.busy, mm.connected)
	}
	if mm.last != "toggleFullscreen: true" {
		t.Fatalf("last = %q", mm.last)
	}

	// The result triggers a state poll.
	m, _ = m.Update(runCmd(t, cmd))
	if !m.(model).fullscreen {
		t.Fatal("state not re-derived as fullscreen")
	}
	if got := strings.Join(host.calls, ","); got != "toggle,is" {
		t.Fatalf("calls = %s", got)
	}
}

func TestModel_Keys(t *testing.T) {
	tests := []struct {
		key    string
		wantOp string
	}{
		{"e", "enterFullscreen"},
		{"x", "exitFullscreen"},
		{" ", "toggleFullscreen"},
		{"r", "isFullscreen"},
		{"p", "ping"},
	}
	for _, tt := range tests {
		m := newModel(&fakeHost{}, "app/system")
		var msg tea.KeyMsg
		if tt.key == " " {
			msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
		} else {
			msg = keyMsg(tt.key)
		}
		_, cmd := m.Update(msg)
		res, ok := runCmd(t, cmd).(resultMsg)
		if !ok || res.op != tt.wantOp {
			t.Fatalf("key %q -> %#v, want op %s", tt.key, res, tt.wantOp)
		}
	}
}

func TestModel_BusyIgnoresKeys(t *testing.T) {
	m := newModel(&fakeHost{}, "app/system")
	m.busy = true
	_, cmd := m.Update(keyMsg("e"))
	if cmd != nil {
		t.Fatal("a second call started while busy")
	}
}

func TestModel_PingAndErrors(t *testing.T) {
	var m tea.Model = newModel(&fakeHost{}, "app/system")

	m, _ = m.Update(resultMsg{op: "ping", text: "pong"})
	if got := m.(model).last; got != "ping: pong" {
		t.Fatalf("last = %q", got)
	}

	m, _ = m.Update(statusMsg{err: errors.New("connection refused")})
	mm := m.(model)
	if mm.connected {
		t.Fatal("still connected after failed poll")
	}
	if !strings.Contains(mm.View(), "host not running") {
		t.Fatalf("view does not report disconnect:\n%s", mm.View())
	}
	if !strings.Contains(mm.View(), "connection refused") {
		t.Fatalf("view does not show the error:\n%s", mm.View())
	}
}

func TestModel_Quit(t *testing.T) {
	m := newModel(&fakeHost{}, "app/system")
	_, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("q did not quit")
	}
}

func TestModel_TickPollsWhenIdle(t *testing.T) {
	host := &fakeHost{on: true}
	var m tea.Model = newModel(host, "app/system")
	_, cmd := m.Update(tickMsg(time.Now()))
	res := runCmd(t, cmd)
	if s, ok := res.(statusMsg); !ok || !s.fullscreen {
		t.Fatalf("tick produced %#v", res)
	}
}
