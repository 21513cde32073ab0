package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/1broseidon/hostwin/internal/config"
	"github.com/1broseidon/hostwin/internal/host"
	"github.com/1broseidon/hostwin/internal/ipc"
	"github.com/1broseidon/hostwin/internal/logging"
	"github.com/1broseidon/hostwin/internal/runtimepath"
)

func main() {
	if len(os.Args) < 2 {
		printMainUsage(os.Stdout)
		os.Exit(0)
	}

	switch os.Args[1] {
	case "run":
		os.Exit(runHost(os.Args[2:]))
	case "call":
		os.Exit(runCall(os.Args[2:]))
	case "enter", "exit", "toggle", "is", "ping":
		os.Exit(runShortcut(os.Args[1], os.Args[2:]))
	case "remote":
		os.Exit(runRemote(os.Args[2:]))
	case "mcp":
		os.Exit(runMCP(os.Args[2:]))
	case "config":
		os.Exit(runConfig(os.Args[2:]))
	case "help", "-h", "--help":
		printMainUsage(os.Stdout)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printMainUsage(os.Stderr)
		os.Exit(2)
	}
}

func printMainUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: hostwin <command> [options]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  run                 Open the host window and serve its command channel")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  enter               Enter fullscreen")
	fmt.Fprintln(w, "  exit                Exit fullscreen")
	fmt.Fprintln(w, "  toggle              Toggle fullscreen")
	fmt.Fprintln(w, "  is                  Print whether the window is fullscreen")
	fmt.Fprintln(w, "  ping                Ping the command channel")
	fmt.Fprintln(w, "  call <method>       Invoke any channel method and print the raw reply")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  remote              Open the interactive remote control")
	fmt.Fprintln(w, "  mcp serve           Start MCP server (stdio transport)")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  config validate     Validate configuration")
	fmt.Fprintln(w, "  config print        Print configuration")
	fmt.Fprintln(w, "  config explain      Explain a config value")
	fmt.Fprintln(w, "  config path         Print the config file location")
	fmt.Fprintln(w, "  config init         Write a config file interactively")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Run 'hostwin <command> --help' for command-specific options.")
}

// loadConfig reads path, or the default location when path is empty.
func loadConfig(path string) (*config.LoadResult, error) {
	path, err := configPathOrDefault(path)
	if err != nil {
		return nil, err
	}
	return config.LoadFromPath(path)
}

func configPathOrDefault(path string) (string, error) {
	if path != "" {
		return path, nil
	}
	return config.DefaultConfigPath()
}

// newClient connects to the host described by the config at path.
func newClient(path string) (*ipc.Client, error) {
	res, err := loadConfig(path)
	if err != nil {
		return nil, err
	}
	socket, err := runtimepath.ResolveSocket(res.Config.Channel.Socket)
	if err != nil {
		return nil, err
	}
	return ipc.NewClient(socket, res.Config.Channel.Name), nil
}

func runHost(args []string) int {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	path := fs.String("path", "", "Config file path (default: ~/.config/hostwin/config.yaml)")
	attach := fs.String("attach", "", "Adopt the existing window with this title")
	level := fs.String("log-level", "", "Override logging.level")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: hostwin run [--path PATH] [--attach TITLE] [--log-level LEVEL]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Open the host window (foreground) and serve its command channel.")
		fmt.Fprintln(os.Stderr, "")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "run takes no arguments")
		fs.Usage()
		return 2
	}

	res, err := loadConfig(*path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		return 1
	}
	cfg := res.Config
	if *attach != "" {
		cfg.Window.AttachTitle = *attach
	}
	if *level != "" {
		cfg.Logging.Level = *level
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer logger.Close()
	if res.File != "" {
		logger.Info("configuration loaded", "file", res.File)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	h, err := host.New(cfg, logger.Logger)
	if err != nil {
		logger.Error("failed to open host window", "error", err)
		return 1
	}
	defer h.Close()

	if err := h.Run(ctx); err != nil {
		logger.Error("host failed", "error", err)
		return 1
	}
	return 0
}
