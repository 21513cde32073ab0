// Package remote is an interactive panel that drives a running host over
// its command channel.
package remote

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

// Run opens the panel for host until the user quits.
func Run(host Host, channel string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("remote requires an interactive terminal (stdin/stdout must be TTYs)")
	}
	p := tea.NewProgram(newModel(host, channel), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
