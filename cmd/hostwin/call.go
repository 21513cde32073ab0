package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/1broseidon/hostwin/internal/command"
)

var shortcutMethods = map[string]command.Name{
	"enter":  command.EnterFullscreen,
	"exit":   command.ExitFullscreen,
	"toggle": command.ToggleFullscreen,
	"is":     command.IsFullscreen,
	"ping":   command.Ping,
}

// runShortcut invokes one well-known method and prints its value.
func runShortcut(name string, args []string) int {
	method := shortcutMethods[name]

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	path := fs.String("path", "", "Config file path (default: ~/.config/hostwin/config.yaml)")
	timeout := fs.Duration("timeout", 5*time.Second, "How long to wait for the host")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: hostwin %s [--path PATH] [--timeout D]\n", name)
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintf(os.Stderr, "Send %s over the command channel and print the reply.\n", method)
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 0 {
		fmt.Fprintf(os.Stderr, "%s takes no arguments\n", name)
		fs.Usage()
		return 2
	}

	client, err := newClient(*path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	client.SetTimeout(*timeout)

	if method == command.Ping {
		reply, err := client.Ping()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		fmt.Println(reply)
		if reply != command.PongValue {
			return 1
		}
		return 0
	}

	reply, err := client.Call(method)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	v, ok := reply.Bool()
	if !ok {
		fmt.Fprintf(os.Stderr, "unexpected reply: %s\n", reply.Status)
		return 1
	}
	fmt.Println(v)
	return 0
}

func runCall(args []string) int {
	fs := flag.NewFlagSet("call", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	path := fs.String("path", "", "Config file path (default: ~/.config/hostwin/config.yaml)")
	timeout := fs.Duration("timeout", 5*time.Second, "How long to wait for the host")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: hostwin call [--path PATH] [--timeout D] <method>")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Invoke a channel method and print the reply as JSON.")
		fmt.Fprintln(os.Stderr, "Unknown methods reply NOT_IMPLEMENTED.")
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "call requires exactly one <method>")
		fs.Usage()
		return 2
	}

	client, err := newClient(*path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	client.SetTimeout(*timeout)
	reply, err := client.Call(command.Name(fs.Arg(0)))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	enc := json.NewEncoder(os.Stdout)
	if err := enc.Encode(reply); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
