package mcp

// FullscreenInput is the (empty) input of the fullscreen tools.
type FullscreenInput struct{}

// FullscreenOutput is the output of the fullscreen tools.
type FullscreenOutput struct {
	Fullscreen bool `json:"fullscreen" jsonschema:"Command reply: the state after enter, always false after exit, success for toggle, the current state for is"`
}

// PingInput is the (empty) input of the ping tool.
type PingInput struct{}

// PingOutput is the output of the ping tool.
type PingOutput struct {
	Reply string `json:"reply" jsonschema:"pong when the host answers ping, NOT_IMPLEMENTED when ping is disabled"`
}
