// Package mcp exposes the host's fullscreen channel as MCP tools.
package mcp

import (
	"context"
	"log/slog"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	ServerName    = "hostwin"
	ServerVersion = "0.1.0"
)

// Host is the running host as seen over IPC; *ipc.Client implements it.
type Host interface {
	EnterFullscreen() (bool, error)
	ExitFullscreen() (bool, error)
	ToggleFullscreen() (bool, error)
	IsFullscreen() (bool, error)
	Ping() (string, error)
}

// Server is the MCP server forwarding tool calls to a host.
type Server struct {
	mcpServer *mcpsdk.Server
	host      Host
	logger    *slog.Logger
}

// NewServer creates an MCP server for host.
func NewServer(host Host, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Server{host: host, logger: logger}

	s.mcpServer = mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    ServerName,
			Version: ServerVersion,
		},
		nil,
	)

	s.registerTools()
	return s
}

// Run starts the MCP server on stdio transport, blocking until done.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcpsdk.StdioTransport{})
}

func (s *Server) registerTools() {
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "enter_fullscreen",
		Description: "Make the host window cover its monitor. Returns whether the window is fullscreen afterwards. Calling it while already fullscreen changes nothing.",
	}, s.handleEnterFullscreen)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "exit_fullscreen",
		Description: "Restore the host window's previous windowed size, position and frame. Always returns fullscreen=false.",
	}, s.handleExitFullscreen)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "toggle_fullscreen",
		Description: "Exit fullscreen when fullscreen, enter it otherwise. Returns whether the switch succeeded, not the new state; call is_fullscreen for that.",
	}, s.handleToggleFullscreen)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "is_fullscreen",
		Description: "Report whether the host window is currently fullscreen, as the window system sees it.",
	}, s.handleIsFullscreen)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "ping",
		Description: "Check that the host is running and answering on its command channel.",
	}, s.handlePing)
}
