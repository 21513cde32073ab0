package ipc

import (
	"bufio"
	"encoding/json"
	"fmt"
	"net"
	"time"

	"github.com/1broseidon/hostwin/internal/command"
)

// Client calls methods on a running host.
type Client struct {
	socketPath string
	channel    string
	timeout    time.Duration
}

// NewClient creates a client for the host listening on socketPath that
// registered channel.
func NewClient(socketPath, channel string) *Client {
	return &Client{
		socketPath: socketPath,
		channel:    channel,
		timeout:    5 * time.Second,
	}
}

// SetTimeout changes the per-call timeout.
func (c *Client) SetTimeout(d time.Duration) {
	if d > 0 {
		c.timeout = d
	}
}

func (c *Client) sendRequest(req *Request) (*Response, error) {
	conn, err := net.DialTimeout("unix", c.socketPath, c.timeout)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to host: %w (is hostwin running?)", err)
	}
	defer conn.Close()

	conn.SetDeadline(time.Now().Add(c.timeout))

	reqData, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}
	reqData = append(reqData, '\n')
	if _, err := conn.Write(reqData); err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	reader := bufio.NewReader(conn)
	respData, err := reader.ReadBytes('\n')
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var resp Response
	if err := json.Unmarshal(respData, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return &resp, nil
}

// Call sends method and returns the host's reply. A NOT_IMPLEMENTED reply
// is not an error.
func (c *Client) Call(method command.Name) (command.Reply, error) {
	resp, err := c.sendRequest(&Request{Channel: c.channel, Method: string(method)})
	if err != nil {
		return command.Reply{}, err
	}
	return resp.Reply()
}

func (c *Client) callBool(method command.Name) (bool, error) {
	reply, err := c.Call(method)
	if err != nil {
		return false, err
	}
	if !reply.OK() {
		return false, fmt.Errorf("%s: %s", method, reply.Status)
	}
	v, ok := reply.Bool()
	if !ok {
		return false, fmt.Errorf("%s: unexpected reply value %v", method, reply.Value)
	}
	return v, nil
}

// EnterFullscreen reports whether the window is fullscreen afterwards.
func (c *Client) EnterFullscreen() (bool, error) {
	return c.callBool(command.EnterFullscreen)
}

// ExitFullscreen always reports false on success.
func (c *Client) ExitFullscreen() (bool, error) {
	return c.callBool(command.ExitFullscreen)
}

// ToggleFullscreen reports whether the toggle succeeded.
func (c *Client) ToggleFullscreen() (bool, error) {
	return c.callBool(command.ToggleFullscreen)
}

// IsFullscreen reports the current state.
func (c *Client) IsFullscreen() (bool, error) {
	return c.callBool(command.IsFullscreen)
}

// Ping checks if the host is responding. Hosts with ping disabled answer
// NOT_IMPLEMENTED, which still proves liveness.
func (c *Client) Ping() (string, error) {
	reply, err := c.Call(command.Ping)
	if err != nil {
		return "", err
	}
	if s, ok := reply.Value.(string); ok {
		return s, nil
	}
	return string(reply.Status), nil
}
