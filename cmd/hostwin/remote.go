package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/1broseidon/hostwin/internal/ipc"
	"github.com/1broseidon/hostwin/internal/remote"
	"github.com/1broseidon/hostwin/internal/runtimepath"
)

var _ remote.Host = (*ipc.Client)(nil)

func runRemote(args []string) int {
	fs := flag.NewFlagSet("remote", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	path := fs.String("path", "", "Config file path (default: ~/.config/hostwin/config.yaml)")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: hostwin remote [--path PATH]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Open an interactive panel that drives a running host.")
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "remote takes no arguments")
		fs.Usage()
		return 2
	}

	res, err := loadConfig(*path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	socket, err := runtimepath.ResolveSocket(res.Config.Channel.Socket)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	client := ipc.NewClient(socket, res.Config.Channel.Name)
	if err := remote.Run(client, res.Config.Channel.Name); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
