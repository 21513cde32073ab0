package mcp

import (
	"context"
	"fmt"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) handleEnterFullscreen(_ context.Context, _ *mcpsdk.CallToolRequest, _ FullscreenInput) (*mcpsdk.CallToolResult, FullscreenOutput, error) {
	return s.forward("enter_fullscreen", s.host.EnterFullscreen)
}

func (s *Server) handleExitFullscreen(_ context.Context, _ *mcpsdk.CallToolRequest, _ FullscreenInput) (*mcpsdk.CallToolResult, FullscreenOutput, error) {
	return s.forward("exit_fullscreen", s.host.ExitFullscreen)
}

func (s *Server) handleToggleFullscreen(_ context.Context, _ *mcpsdk.CallToolRequest, _ FullscreenInput) (*mcpsdk.CallToolResult, FullscreenOutput, error) {
	return s.forward("toggle_fullscreen", s.host.ToggleFullscreen)
}

func (s *Server) handleIsFullscreen(_ context.Context, _ *mcpsdk.CallToolRequest, _ FullscreenInput) (*mcpsdk.CallToolResult, FullscreenOutput, error) {
	return s.forward("is_fullscreen", s.host.IsFullscreen)
}

func (s *Server) handlePing(_ context.Context, _ *mcpsdk.CallToolRequest, _ PingInput) (*mcpsdk.CallToolResult, PingOutput, error) {
	reply, err := s.host.Ping()
	if err != nil {
		s.logger.Warn("tool failed", "tool", "ping", "error", err)
		return nil, PingOutput{}, fmt.Errorf("ping: %w", err)
	}
	return textResult(reply), PingOutput{Reply: reply}, nil
}

func (s *Server) forward(tool string, call func() (bool, error)) (*mcpsdk.CallToolResult, FullscreenOutput, error) {
	on, err := call()
	if err != nil {
		s.logger.Warn("tool failed", "tool", tool, "error", err)
		return nil, FullscreenOutput{}, fmt.Errorf("%s: %w", tool, err)
	}
	s.logger.Debug("tool called", "tool", tool, "fullscreen", on)
	return textResult(fmt.Sprintf("fullscreen: %t", on)), FullscreenOutput{Fullscreen: on}, nil
}

func textResult(text string) *mcpsdk.CallToolResult {
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{
			&mcpsdk.TextContent{Text: text},
		},
	}
}
