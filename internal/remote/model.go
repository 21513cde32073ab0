package remote

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Host is the command channel as seen from another process.
type Host interface {
	EnterFullscreen() (bool, error)
	ExitFullscreen() (bool, error)
	ToggleFullscreen() (bool, error)
	IsFullscreen() (bool, error)
	Ping() (string, error)
}

const refreshInterval = time.Second

// resultMsg carries the outcome of one channel call.
type resultMsg struct {
	op    string
	value bool
	text  string
	err   error
}

// statusMsg is a background IsFullscreen poll.
type statusMsg struct {
	fullscreen bool
	err        error
}

type tickMsg time.Time

type model struct {
	host    Host
	channel string
	keys    keyMap
	help    help.Model
	spinner spinner.Model

	connected  bool
	fullscreen bool
	busy       bool
	last       string
	lastErr    error

	width  int
	height int
}

func newModel(host Host, channel string) model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("62"))
	return model{
		host:    host,
		channel: channel,
		keys:    defaultKeyMap(),
		help:    help.New(),
		spinner: sp,
	}
}

// Init implements tea.Model.
func (m model) Init() tea.Cmd {
	return tea.Batch(m.poll(), tick())
}

func tick() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m model) poll() tea.Cmd {
	host := m.host
	return func() tea.Msg {
		on, err := host.IsFullscreen()
		return statusMsg{fullscreen: on, err: err}
	}
}

func (m model) call(op string) tea.Cmd {
	host := m.host
	return func() tea.Msg {
		var (
			v   bool
			err error
		)
		switch op {
		case "enterFullscreen":
			v, err = host.EnterFullscreen()
		case "exitFullscreen":
			v, err = host.ExitFullscreen()
		case "toggleFullscreen":
			v, err = host.ToggleFullscreen()
		case "isFullscreen":
			v, err = host.IsFullscreen()
		case "ping":
			text, err := host.Ping()
			return resultMsg{op: op, text: text, err: err}
		}
		return resultMsg{op: op, value: v, err: err}
	}
}

func (m model) start(op string) (model, tea.Cmd) {
	if m.busy {
		return m, nil
	}
	m.busy = true
	return m, tea.Batch(m.call(op), m.spinner.Tick)
}

// Update implements tea.Model.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Toggle):
			return m.start("toggleFullscreen")
		case key.Matches(msg, m.keys.Enter):
			return m.start("enterFullscreen")
		case key.Matches(msg, m.keys.Exit):
			return m.start("exitFullscreen")
		case key.Matches(msg, m.keys.Refresh):
			return m.start("isFullscreen")
		case key.Matches(msg, m.keys.Ping):
			return m.start("ping")
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case resultMsg:
		m.busy = false
		m.lastErr = msg.err
		if msg.err != nil {
			m.connected = false
			m.last = msg.op + " failed"
			return m, nil
		}
		m.connected = true
		if msg.op == "ping" {
			m.last = "ping: " + msg.text
			return m, nil
		}
		m.last = fmt.Sprintf("%s: %v", msg.op, msg.value)
		// Operation results are not the state; re-derive it.
		return m, m.poll()

	case statusMsg:
		if msg.err != nil {
			m.connected = false
			m.lastErr = msg.err
			return m, nil
		}
		m.connected = true
		m.fullscreen = msg.fullscreen
		return m, nil

	case tickMsg:
		if m.busy {
			return m, tick()
		}
		return m, tea.Batch(m.poll(), tick())

	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("62")).
			Padding(0, 2)

	statusStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("235")).
			Foreground(lipgloss.Color("250")).
			Padding(0, 1)

	stateStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 4).
			Margin(1, 0)

	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// View implements tea.Model.
func (m model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("hostwin remote"))
	b.WriteString("\n")

	var dot string
	if m.connected {
		dot = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Render("●") + " connected"
	} else {
		dot = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render("●") + " host not running"
	}
	status := statusStyle.Render(dot + "  " + m.channel)
	if m.width > 0 {
		status = statusStyle.Width(m.width).Render(dot + "  " + m.channel)
	}
	b.WriteString(status)
	b.WriteString("\n")

	state := "windowed"
	if m.fullscreen {
		state = "FULLSCREEN"
	}
	b.WriteString(stateStyle.Render(state))
	b.WriteString("\n")

	line := m.last
	if m.busy {
		line = m.spinner.View() + " working"
	}
	if line != "" {
		b.WriteString(dimStyle.Render(line))
		b.WriteString("\n")
	}
	if m.lastErr != nil {
		b.WriteString(errorStyle.Render(m.lastErr.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}
