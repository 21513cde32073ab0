package remote

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	"github.com/1broseidon/hostwin/internal/config"
)

// setupForm holds the string values bound to the config form.
type setupForm struct {
	title         string
	applicationID string
	width         string
	height        string
	settleTimeout string
	toggleKey     string
	exitKey       string
	ping          bool
	level         string
}

func newSetupForm(cfg *config.Config) *setupForm {
	return &setupForm{
		title:         cfg.Window.Title,
		applicationID: cfg.Window.ApplicationID,
		width:         strconv.Itoa(cfg.Window.Width),
		height:        strconv.Itoa(cfg.Window.Height),
		settleTimeout: cfg.Fullscreen.SettleTimeout.String(),
		toggleKey:     cfg.Shortcuts.ToggleKey,
		exitKey:       cfg.Shortcuts.ExitKey,
		ping:          cfg.Channel.Ping,
		level:         cfg.Logging.Level,
	}
}

func validatePositiveInt(s string) error {
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return fmt.Errorf("must be a positive integer")
	}
	return nil
}

func validateDuration(s string) error {
	if _, err := time.ParseDuration(s); err != nil {
		return fmt.Errorf("must be a duration such as 250ms")
	}
	return nil
}

func (f *setupForm) form() *huh.Form {
	levels := []huh.Option[string]{
		huh.NewOption("debug", "debug"),
		huh.NewOption("info", "info"),
		huh.NewOption("warn", "warn"),
		huh.NewOption("error", "error"),
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("title").
				Title("Window Title").
				Value(&f.title),
			huh.NewInput().
				Key("application_id").
				Title("Application ID").
				Description("Also names the command channel").
				Value(&f.applicationID),
			huh.NewInput().
				Key("width").
				Title("Width").
				Validate(validatePositiveInt).
				Value(&f.width),
			huh.NewInput().
				Key("height").
				Title("Height").
				Validate(validatePositiveInt).
				Value(&f.height),
		),
		huh.NewGroup(
			huh.NewInput().
				Key("settle_timeout").
				Title("Settle Timeout").
				Description("How long to wait for the window manager").
				Validate(validateDuration).
				Value(&f.settleTimeout),
			huh.NewInput().
				Key("toggle_key").
				Title("Toggle Key").
				Value(&f.toggleKey),
			huh.NewInput().
				Key("exit_key").
				Title("Exit Key").
				Value(&f.exitKey),
			huh.NewConfirm().
				Key("ping").
				Title("Answer ping on the command channel?").
				Value(&f.ping),
			huh.NewSelect[string]().
				Key("level").
				Title("Log Level").
				Options(levels...).
				Value(&f.level),
		),
	).WithShowHelp(true).WithShowErrors(true)
}

// apply copies the form values onto a copy of cfg and validates the result.
func (f *setupForm) apply(cfg *config.Config) (*config.Config, error) {
	out := *cfg
	oldChannel := config.ChannelNameFor(cfg.Window.ApplicationID)

	out.Window.Title = f.title
	out.Window.ApplicationID = f.applicationID
	if v, err := strconv.Atoi(f.width); err == nil {
		out.Window.Width = v
	}
	if v, err := strconv.Atoi(f.height); err == nil {
		out.Window.Height = v
	}
	if d, err := time.ParseDuration(f.settleTimeout); err == nil {
		out.Fullscreen.SettleTimeout = d
	}
	out.Shortcuts.ToggleKey = f.toggleKey
	out.Shortcuts.ExitKey = f.exitKey
	out.Channel.Ping = f.ping
	out.Logging.Level = f.level

	// A channel name derived from the old application id follows the new one.
	if cfg.Channel.Name == oldChannel {
		out.Channel.Name = config.ChannelNameFor(f.applicationID)
	}

	if err := out.Validate(); err != nil {
		return nil, err
	}
	return &out, nil
}

// EditConfig runs an interactive form seeded from cfg and returns the
// edited configuration.
func EditConfig(cfg *config.Config) (*config.Config, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return nil, fmt.Errorf("config init requires an interactive terminal")
	}
	f := newSetupForm(cfg)
	if err := f.form().Run(); err != nil {
		return nil, err
	}
	return f.apply(cfg)
}
