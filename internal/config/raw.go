package config

import (
	"fmt"
	"time"
)

// RawConfig mirrors Config with optional fields so a file only overrides
// what it sets.
type RawConfig struct {
	Window     *RawWindow     `yaml:"window"`
	Fullscreen *RawFullscreen `yaml:"fullscreen"`
	Shortcuts  *RawShortcuts  `yaml:"shortcuts"`
	Channel    *RawChannel    `yaml:"channel"`
	Logging    *RawLogging    `yaml:"logging"`
}

type RawWindow struct {
	Title         *string `yaml:"title"`
	ApplicationID *string `yaml:"application_id"`
	Width         *int    `yaml:"width"`
	Height        *int    `yaml:"height"`
	AttachTitle   *string `yaml:"attach_title"`
}

type RawRect struct {
	X      *int `yaml:"x"`
	Y      *int `yaml:"y"`
	Width  *int `yaml:"width"`
	Height *int `yaml:"height"`
}

type RawFullscreen struct {
	DefaultBounds *RawRect       `yaml:"default_bounds"`
	SettleTimeout *time.Duration `yaml:"settle_timeout"`
}

type RawShortcuts struct {
	ToggleKey   *string        `yaml:"toggle_key"`
	ExitKey     *string        `yaml:"exit_key"`
	DoubleClick *time.Duration `yaml:"double_click"`
}

type RawChannel struct {
	Name   *string `yaml:"name"`
	Socket *string `yaml:"socket"`
	Ping   *bool   `yaml:"ping"`
}

type RawLogging struct {
	Level     *string `yaml:"level"`
	File      *string `yaml:"file"`
	MaxSizeMB *int    `yaml:"max_size_mb"`
	MaxFiles  *int    `yaml:"max_files"`
}

// BuildEffectiveConfig applies raw over DefaultConfig.
func BuildEffectiveConfig(raw RawConfig) (*Config, error) {
	cfg := DefaultConfig()

	if w := raw.Window; w != nil {
		setString(&cfg.Window.Title, w.Title)
		setString(&cfg.Window.ApplicationID, w.ApplicationID)
		setInt(&cfg.Window.Width, w.Width)
		setInt(&cfg.Window.Height, w.Height)
		setString(&cfg.Window.AttachTitle, w.AttachTitle)

		// A custom application id moves the default channel with it.
		if w.ApplicationID != nil && (raw.Channel == nil || raw.Channel.Name == nil) {
			cfg.Channel.Name = ChannelNameFor(*w.ApplicationID)
		}
	}

	if f := raw.Fullscreen; f != nil {
		if b := f.DefaultBounds; b != nil {
			setInt(&cfg.Fullscreen.DefaultBounds.X, b.X)
			setInt(&cfg.Fullscreen.DefaultBounds.Y, b.Y)
			setInt(&cfg.Fullscreen.DefaultBounds.Width, b.Width)
			setInt(&cfg.Fullscreen.DefaultBounds.Height, b.Height)
		}
		if f.SettleTimeout != nil {
			cfg.Fullscreen.SettleTimeout = *f.SettleTimeout
		}
	}

	if s := raw.Shortcuts; s != nil {
		setString(&cfg.Shortcuts.ToggleKey, s.ToggleKey)
		setString(&cfg.Shortcuts.ExitKey, s.ExitKey)
		if s.DoubleClick != nil {
			cfg.Shortcuts.DoubleClick = *s.DoubleClick
		}
	}

	if c := raw.Channel; c != nil {
		setString(&cfg.Channel.Name, c.Name)
		setString(&cfg.Channel.Socket, c.Socket)
		if c.Ping != nil {
			cfg.Channel.Ping = *c.Ping
		}
	}

	if l := raw.Logging; l != nil {
		setString(&cfg.Logging.Level, l.Level)
		setString(&cfg.Logging.File, l.File)
		setInt(&cfg.Logging.MaxSizeMB, l.MaxSizeMB)
		setInt(&cfg.Logging.MaxFiles, l.MaxFiles)
	}

	if cfg.Window.AttachTitle != "" && cfg.Window.AttachTitle == cfg.Window.Title {
		return nil, &ValidationError{Path: "window.attach_title", Err: fmt.Errorf("attach_title must differ from title, or the host would adopt its own window")}
	}
	return cfg, nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}
