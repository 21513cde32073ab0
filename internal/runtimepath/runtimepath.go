package runtimepath

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

const socketName = "hostwin.sock"

// Dir returns the runtime directory holding the host's IPC socket.
// Priority:
// 1) XDG_RUNTIME_DIR (if set)
// 2) /run/user/<uid> (if present)
// 3) <tmp>/hostwin-runtime-<uid> (created)
//
// On Windows, which has no uid or XDG layout, only 3) applies and the
// suffix is the user name.
func Dir() (string, error) {
	if runtimeDir := os.Getenv("XDG_RUNTIME_DIR"); runtimeDir != "" {
		return runtimeDir, nil
	}

	owner := fmt.Sprint(os.Getuid())
	if runtime.GOOS == "windows" {
		owner = os.Getenv("USERNAME")
	} else {
		runUserDir := fmt.Sprintf("/run/user/%s", owner)
		if info, err := os.Stat(runUserDir); err == nil && info.IsDir() {
			return runUserDir, nil
		}
	}

	tmpDir := filepath.Join(os.TempDir(), "hostwin-runtime-"+owner)
	if err := os.MkdirAll(tmpDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create runtime dir: %w", err)
	}
	return tmpDir, nil
}

// SocketPath returns the default host IPC socket path.
func SocketPath() (string, error) {
	runtimeDir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(runtimeDir, socketName), nil
}

// ResolveSocket returns override when set, else SocketPath.
func ResolveSocket(override string) (string, error) {
	if override != "" {
		return override, nil
	}
	return SocketPath()
}
