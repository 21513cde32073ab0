// Package command maps named platform-channel methods onto a fullscreen
// controller.
package command

import (
	"log/slog"

	"github.com/1broseidon/hostwin/internal/fullscreen"
)

// Name identifies a command received on the platform channel.
type Name string

const (
	EnterFullscreen  Name = "enterFullscreen"
	ExitFullscreen   Name = "exitFullscreen"
	ToggleFullscreen Name = "toggleFullscreen"
	IsFullscreen     Name = "isFullscreen"
	Ping             Name = "ping"
)

// Status is the outcome of dispatching a command.
type Status string

const (
	StatusOK             Status = "OK"
	StatusNotImplemented Status = "NOT_IMPLEMENTED"
)

// PongValue is the reply value of the ping command.
const PongValue = "pong"

// Reply is the result of a dispatched command. Value is a bool for the
// fullscreen commands, the string "pong" for ping and nil otherwise.
type Reply struct {
	Status Status `json:"status"`
	Value  any    `json:"value,omitempty"`
}

// OK reports whether the command was recognised.
func (r Reply) OK() bool {
	return r.Status == StatusOK
}

// Bool returns the boolean value of the reply. ok is false when the reply
// carries no boolean.
func (r Reply) Bool() (value bool, ok bool) {
	value, ok = r.Value.(bool)
	return value, ok
}

// Options configures a Dispatcher.
type Options struct {
	// Ping enables the liveness command.
	Ping   bool
	Logger *slog.Logger
}

// Dispatcher routes commands to a fullscreen controller. It must only be
// used on the UI thread.
type Dispatcher struct {
	ctrl   fullscreen.Controller
	ping   bool
	logger *slog.Logger
}

// NewDispatcher creates a dispatcher over ctrl.
func NewDispatcher(ctrl fullscreen.Controller, opts Options) *Dispatcher {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Dispatcher{ctrl: ctrl, ping: opts.Ping, logger: logger}
}

// Names lists the commands the dispatcher recognises.
func (d *Dispatcher) Names() []Name {
	names := []Name{EnterFullscreen, ExitFullscreen, ToggleFullscreen, IsFullscreen}
	if d.ping {
		names = append(names, Ping)
	}
	return names
}

// Dispatch runs the named command. Unknown names reply NOT_IMPLEMENTED and
// leave the window untouched.
func (d *Dispatcher) Dispatch(name Name) Reply {
	var reply Reply
	switch name {
	case EnterFullscreen:
		d.ctrl.EnterFullscreen()
		reply = okReply(d.ctrl.IsFullscreen())
	case ExitFullscreen:
		d.ctrl.ExitFullscreen()
		// The channel contract always answers exit with false.
		reply = okReply(false)
	case ToggleFullscreen:
		reply = okReply(d.ctrl.ToggleFullscreen())
	case IsFullscreen:
		reply = okReply(d.ctrl.IsFullscreen())
	case Ping:
		if !d.ping {
			reply = Reply{Status: StatusNotImplemented}
			break
		}
		reply = okReply(PongValue)
	default:
		reply = Reply{Status: StatusNotImplemented}
	}

	d.logger.Debug("dispatched command", "command", name, "status", reply.Status, "value", reply.Value)
	return reply
}

func okReply(v any) Reply {
	return Reply{Status: StatusOK, Value: v}
}
