package ipc

import (
	"encoding/json"
	"fmt"

	"github.com/1broseidon/hostwin/internal/command"
)

// StatusError marks a transport-level failure. Command outcomes use the
// command statuses (OK, NOT_IMPLEMENTED).
const StatusError = "ERROR"

// Request is a method call on a named platform channel.
type Request struct {
	Channel string `json:"channel"`
	Method  string `json:"method"`
}

// Response is the reply to a Request.
type Response struct {
	Status string          `json:"status"` // "OK", "NOT_IMPLEMENTED" or "ERROR"
	Value  json.RawMessage `json:"value,omitempty"`
	Error  string          `json:"error,omitempty"`
}

// NewReplyResponse encodes a dispatched command reply.
func NewReplyResponse(reply command.Reply) (*Response, error) {
	var value json.RawMessage
	if reply.Value != nil {
		data, err := json.Marshal(reply.Value)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal reply value: %w", err)
		}
		value = data
	}
	return &Response{Status: string(reply.Status), Value: value}, nil
}

// NewErrorResponse creates an error response with a message
func NewErrorResponse(errMsg string) *Response {
	return &Response{
		Status: StatusError,
		Error:  errMsg,
	}
}

// ParseRequest parses a request from JSON bytes
func ParseRequest(data []byte) (*Request, error) {
	var req Request
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("failed to parse request: %w", err)
	}
	return &req, nil
}

// Marshal converts a response to JSON bytes
func (r *Response) Marshal() ([]byte, error) {
	return json.Marshal(r)
}

// Reply decodes the command reply carried by r.
func (r *Response) Reply() (command.Reply, error) {
	if r.Status == StatusError {
		return command.Reply{}, fmt.Errorf("host error: %s", r.Error)
	}
	reply := command.Reply{Status: command.Status(r.Status)}
	if len(r.Value) == 0 {
		return reply, nil
	}
	var value any
	if err := json.Unmarshal(r.Value, &value); err != nil {
		return command.Reply{}, fmt.Errorf("failed to parse reply value: %w", err)
	}
	reply.Value = value
	return reply, nil
}
