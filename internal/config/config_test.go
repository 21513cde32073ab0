package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/1broseidon/hostwin/internal/platform"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestDefaultConfig_Valid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
	want := platform.RectFromEdges(100, 100, 1124, 868)
	if cfg.Fullscreen.DefaultBounds != want {
		t.Fatalf("default bounds = %+v, want %+v", cfg.Fullscreen.DefaultBounds, want)
	}
	if cfg.Channel.Name != "com.mojarplayer.mojar_player_pro/system" {
		t.Fatalf("channel name = %q", cfg.Channel.Name)
	}
}

func TestLoadFromPath_MissingFileUsesDefaults(t *testing.T) {
	res, err := LoadFromPath(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if res.File != "" {
		t.Fatalf("File = %q, want empty", res.File)
	}
	if res.Config.Window.Width != 1280 {
		t.Fatalf("width = %d, want 1280", res.Config.Window.Width)
	}
}

func TestLoadFromPath_EmptyFileUsesDefaults(t *testing.T) {
	res, err := LoadFromPath(writeConfig(t, "# empty\n"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if res.Config.Shortcuts.ToggleKey != "F11" {
		t.Fatalf("toggle_key = %q, want F11", res.Config.Shortcuts.ToggleKey)
	}
}

func TestLoadFromPath_Overrides(t *testing.T) {
	path := writeConfig(t, strings.Join([]string{
		"window:",
		"  width: 1920",
		"fullscreen:",
		"  default_bounds: {x: 10, y: 20, width: 640, height: 480}",
		"  settle_timeout: 500ms",
		"shortcuts:",
		"  double_click: 300ms",
		"channel:",
		"  ping: true",
		"  socket: /tmp/hostwin-test.sock",
		"logging:",
		"  level: debug",
		"",
	}, "\n"))

	res, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	cfg := res.Config
	if cfg.Window.Width != 1920 || cfg.Window.Height != 720 {
		t.Fatalf("window = %dx%d, want 1920x720", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Fullscreen.DefaultBounds != (platform.Rect{X: 10, Y: 20, Width: 640, Height: 480}) {
		t.Fatalf("default_bounds = %+v", cfg.Fullscreen.DefaultBounds)
	}
	if cfg.Fullscreen.SettleTimeout != 500*time.Millisecond {
		t.Fatalf("settle_timeout = %v", cfg.Fullscreen.SettleTimeout)
	}
	if cfg.Shortcuts.DoubleClick != 300*time.Millisecond {
		t.Fatalf("double_click = %v", cfg.Shortcuts.DoubleClick)
	}
	if !cfg.Channel.Ping || cfg.Channel.Socket != "/tmp/hostwin-test.sock" {
		t.Fatalf("channel = %+v", cfg.Channel)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("level = %q", cfg.Logging.Level)
	}
	if _, ok := res.Sources["fullscreen.settle_timeout"]; !ok {
		t.Fatalf("missing source for fullscreen.settle_timeout: %v", res.Sources)
	}
}

func TestLoadFromPath_ApplicationIDMovesChannel(t *testing.T) {
	res, err := LoadFromPath(writeConfig(t, "window:\n  application_id: org.example.player\n"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if res.Config.Channel.Name != "org.example.player/system" {
		t.Fatalf("channel name = %q", res.Config.Channel.Name)
	}

	res, err = LoadFromPath(writeConfig(t, "window:\n  application_id: org.example.player\nchannel:\n  name: org.example.player/ctl\n"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if res.Config.Channel.Name != "org.example.player/ctl" {
		t.Fatalf("explicit channel name overridden: %q", res.Config.Channel.Name)
	}
}

func TestLoadFromPath_StrictUnknownKeyErrors(t *testing.T) {
	_, err := LoadFromPath(writeConfig(t, "window:\n  titel: typo\n"))
	if err == nil {
		t.Fatal("expected error for unknown key")
	}
	if !strings.Contains(err.Error(), "titel") {
		t.Fatalf("error does not name the key: %v", err)
	}
}

func TestLoadFromPath_ValidationErrorHasSource(t *testing.T) {
	path := writeConfig(t, "fullscreen:\n  default_bounds: {x: -640, y: 0, width: 640, height: 480}\n")
	_, err := LoadFromPath(path)

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %T: %v", err, err)
	}
	if verr.Path != "fullscreen.default_bounds" {
		t.Fatalf("path = %q", verr.Path)
	}
	if verr.Source.File != path || verr.Source.Line != 2 {
		t.Fatalf("source = %+v, want %s line 2", verr.Source, path)
	}
	if !strings.HasPrefix(err.Error(), path+":2:") {
		t.Fatalf("error = %q, want file:line prefix", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		path   string
	}{
		{"empty title", func(c *Config) { c.Window.Title = " " }, "window.title"},
		{"zero width", func(c *Config) { c.Window.Width = 0 }, "window.width"},
		{"zero settle", func(c *Config) { c.Fullscreen.SettleTimeout = 0 }, "fullscreen.settle_timeout"},
		{"huge settle", func(c *Config) { c.Fullscreen.SettleTimeout = time.Minute }, "fullscreen.settle_timeout"},
		{"same keys", func(c *Config) { c.Shortcuts.ExitKey = c.Shortcuts.ToggleKey }, "shortcuts.exit_key"},
		{"bad channel", func(c *Config) { c.Channel.Name = "system" }, "channel.name"},
		{"bad level", func(c *Config) { c.Logging.Level = "loud" }, "logging.level"},
		{"negative files", func(c *Config) { c.Logging.MaxFiles = -1 }, "logging.max_files"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, got %v", err)
			}
			if verr.Path != tt.path {
				t.Fatalf("path = %q, want %q", verr.Path, tt.path)
			}
		})
	}
}

func TestBuildEffectiveConfig_AttachToSelfRejected(t *testing.T) {
	title := DefaultWindowTitle
	_, err := BuildEffectiveConfig(RawConfig{Window: &RawWindow{AttachTitle: &title}})
	if err == nil {
		t.Fatal("expected error when attach_title equals title")
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Window.Title = "custom"
	cfg.Fullscreen.SettleTimeout = 120 * time.Millisecond
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("save: %v", err)
	}
	res, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("load saved config: %v", err)
	}
	if *res.Config != *cfg {
		t.Fatalf("loaded %+v, want %+v", res.Config, cfg)
	}
}

func TestDefaultConfigPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	got, err := DefaultConfigPath()
	if err != nil {
		t.Fatalf("DefaultConfigPath: %v", err)
	}
	if want := filepath.Join(home, ".config", "hostwin", "config.yaml"); got != want {
		t.Fatalf("DefaultConfigPath = %q, want %q", got, want)
	}
}

func TestExplain(t *testing.T) {
	path := writeConfig(t, "fullscreen:\n  default_bounds: {x: 10, y: 20, width: 640, height: 480}\n")
	res, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	v, src, err := Explain(res, "fullscreen.default_bounds.width")
	if err != nil {
		t.Fatalf("Explain: %v", err)
	}
	if v != 640 {
		t.Fatalf("value = %#v, want 640", v)
	}
	if src.File != path || src.Line != 2 {
		t.Fatalf("source = %+v", src)
	}

	v, src, err = Explain(res, "window.title")
	if err != nil {
		t.Fatalf("Explain: %v", err)
	}
	if v != DefaultWindowTitle || src != (Source{}) {
		t.Fatalf("window.title = %#v from %+v, want default", v, src)
	}

	if _, _, err := Explain(res, "window.colour"); err == nil {
		t.Fatal("expected error for unknown path")
	}
	if _, _, err := Explain(res, "window.title.extra"); err == nil {
		t.Fatal("expected error for path below a scalar")
	}
}
