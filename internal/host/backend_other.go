//go:build !linux && !windows

package host

import (
	"log/slog"

	"github.com/1broseidon/hostwin/internal/config"
)

func openBackend(*config.Config, *slog.Logger) (backend, error) {
	return nil, ErrUnsupported
}
