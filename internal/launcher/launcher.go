//go:build unix

// Package launcher starts the chosen executable detached from the terminal.
package launcher

import (
	"fmt"
	"os/exec"
	"syscall"

	"github.com/rs/zerolog"

	"aelist/internal/domain"
)

// Launcher starts executables
type Launcher interface {
	Launch(path string) (int, error)
}

// detachedLauncher runs programs in a new session with their standard
// streams on the null device and never waits for them
type detachedLauncher struct {
	log zerolog.Logger
}

// New creates a launcher that detaches the programs it starts
func New(log zerolog.Logger) Launcher {
	return &detachedLauncher{log: log.With().Str("component", "launcher").Logger()}
}

// Launch starts path with no arguments besides its own name and returns the
// child's pid. The child is released, so the caller may exit right away.
func (l *detachedLauncher) Launch(path string) (int, error) {
	// Path is used as is: a relative path must not go through a $PATH lookup.
	// Nil standard streams are connected to os.DevNull.
	cmd := &exec.Cmd{
		Path:        path,
		Args:        []string{path},
		SysProcAttr: &syscall.SysProcAttr{Setsid: true},
	}

	if err := cmd.Start(); err != nil {
		l.log.Error().Err(err).Str("path", path).Msg("launch failed")
		return 0, fmt.Errorf("%w: %s: %w", domain.ErrLaunch, path, err)
	}

	pid := cmd.Process.Pid
	if err := cmd.Process.Release(); err != nil {
		l.log.Warn().Err(err).Int("pid", pid).Msg("release failed")
	}
	l.log.Info().Str("path", path).Int("pid", pid).Msg("launched")
	return pid, nil
}
