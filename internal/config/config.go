package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/1broseidon/hostwin/internal/platform"
)

const (
	DefaultWindowTitle   = "mojar-player-pro"
	DefaultApplicationID = "com.mojarplayer.mojar_player_pro"
	DefaultChannelName   = DefaultApplicationID + "/system"
)

// ChannelNameFor returns the default command channel name of an
// application id.
func ChannelNameFor(applicationID string) string {
	return applicationID + "/system"
}

// Config is the effective host configuration.
type Config struct {
	Window     WindowConfig     `yaml:"window"`
	Fullscreen FullscreenConfig `yaml:"fullscreen"`
	Shortcuts  ShortcutsConfig  `yaml:"shortcuts"`
	Channel    ChannelConfig    `yaml:"channel"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// WindowConfig describes the host window.
type WindowConfig struct {
	Title         string `yaml:"title"`
	ApplicationID string `yaml:"application_id"`
	Width         int    `yaml:"width"`
	Height        int    `yaml:"height"`
	// AttachTitle adopts an existing top-level window with this title
	// instead of creating one (X11 only).
	AttachTitle string `yaml:"attach_title"`
}

// FullscreenConfig tunes the fullscreen controller.
type FullscreenConfig struct {
	// DefaultBounds is restored when no usable windowed geometry was saved.
	DefaultBounds platform.Rect `yaml:"default_bounds"`
	// SettleTimeout bounds the wait for the window manager to apply a
	// state request.
	SettleTimeout time.Duration `yaml:"settle_timeout"`
}

// ShortcutsConfig binds the fullscreen shortcuts.
type ShortcutsConfig struct {
	ToggleKey   string        `yaml:"toggle_key"`
	ExitKey     string        `yaml:"exit_key"`
	DoubleClick time.Duration `yaml:"double_click"`
}

// ChannelConfig describes the platform command channel.
type ChannelConfig struct {
	Name string `yaml:"name"`
	// Socket overrides the IPC socket path.
	Socket string `yaml:"socket"`
	Ping   bool   `yaml:"ping"`
}

// LoggingConfig controls the log sink.
type LoggingConfig struct {
	Level     string `yaml:"level"`
	File      string `yaml:"file"`
	MaxSizeMB int    `yaml:"max_size_mb"`
	MaxFiles  int    `yaml:"max_files"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Title:         DefaultWindowTitle,
			ApplicationID: DefaultApplicationID,
			Width:         1280,
			Height:        720,
		},
		Fullscreen: FullscreenConfig{
			DefaultBounds: platform.Rect{X: 100, Y: 100, Width: 1024, Height: 768},
			SettleTimeout: 250 * time.Millisecond,
		},
		Shortcuts: ShortcutsConfig{
			ToggleKey:   "F11",
			ExitKey:     "Escape",
			DoubleClick: 400 * time.Millisecond,
		},
		Channel: ChannelConfig{
			Name: DefaultChannelName,
			// Only the Windows host ever answered ping.
			Ping: runtime.GOOS == "windows",
		},
		Logging: LoggingConfig{
			Level:     "info",
			MaxSizeMB: 10,
			MaxFiles:  3,
		},
	}
}

// Validate checks the effective configuration.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Window.Title) == "" {
		return &ValidationError{Path: "window.title", Err: fmt.Errorf("title is required")}
	}
	if strings.TrimSpace(c.Window.ApplicationID) == "" {
		return &ValidationError{Path: "window.application_id", Err: fmt.Errorf("application_id is required")}
	}
	if c.Window.Width <= 0 {
		return &ValidationError{Path: "window.width", Err: fmt.Errorf("width must be > 0")}
	}
	if c.Window.Height <= 0 {
		return &ValidationError{Path: "window.height", Err: fmt.Errorf("height must be > 0")}
	}
	if c.Fullscreen.DefaultBounds.Degenerate() {
		return &ValidationError{Path: "fullscreen.default_bounds", Err: fmt.Errorf("default_bounds must have a positive size and non-zero right/bottom edges")}
	}
	if c.Fullscreen.SettleTimeout <= 0 || c.Fullscreen.SettleTimeout > 5*time.Second {
		return &ValidationError{Path: "fullscreen.settle_timeout", Err: fmt.Errorf("settle_timeout must be in (0, 5s]")}
	}
	if strings.TrimSpace(c.Shortcuts.ToggleKey) == "" {
		return &ValidationError{Path: "shortcuts.toggle_key", Err: fmt.Errorf("toggle_key is required")}
	}
	if strings.TrimSpace(c.Shortcuts.ExitKey) == "" {
		return &ValidationError{Path: "shortcuts.exit_key", Err: fmt.Errorf("exit_key is required")}
	}
	if c.Shortcuts.ToggleKey == c.Shortcuts.ExitKey {
		return &ValidationError{Path: "shortcuts.exit_key", Err: fmt.Errorf("exit_key must differ from toggle_key")}
	}
	if c.Shortcuts.DoubleClick <= 0 {
		return &ValidationError{Path: "shortcuts.double_click", Err: fmt.Errorf("double_click must be > 0")}
	}
	if !strings.Contains(c.Channel.Name, "/") {
		return &ValidationError{Path: "channel.name", Err: fmt.Errorf("channel name must look like <application_id>/<channel>")}
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return &ValidationError{Path: "logging.level", Err: fmt.Errorf("level must be one of: debug, info, warn, error")}
	}
	if c.Logging.MaxSizeMB < 0 {
		return &ValidationError{Path: "logging.max_size_mb", Err: fmt.Errorf("max_size_mb must be >= 0")}
	}
	if c.Logging.MaxFiles < 0 {
		return &ValidationError{Path: "logging.max_files", Err: fmt.Errorf("max_files must be >= 0")}
	}
	return nil
}

// Marshal renders the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}

// SaveTo validates and writes the configuration to path.
//
// Note: this marshals the effective config and will not preserve comments
// from an existing file.
func (c *Config) SaveTo(path string) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := c.Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Save writes the configuration to the standard location.
func (c *Config) Save() error {
	path, err := DefaultConfigPath()
	if err != nil {
		return err
	}
	return c.SaveTo(path)
}
