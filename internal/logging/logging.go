// Package logging sets up the development log. The TUI owns the
// terminal, so logs always go to a file, never to stdout.
package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// Open returns a logger writing to the app's state directory. With dev
// false it returns a disabled logger and a no-op closer, so call sites
// can log unconditionally.
func Open(dev bool) (zerolog.Logger, io.Closer, error) {
	if !dev {
		return zerolog.Nop(), nopCloser{}, nil
	}

	path, err := DefaultLogPath()
	if err != nil {
		return zerolog.Nop(), nopCloser{}, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return zerolog.Nop(), nopCloser{}, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), nopCloser{}, err
	}

	log := zerolog.New(f).With().Timestamp().Logger().Level(zerolog.DebugLevel)
	return log, f, nil
}

// DefaultLogPath resolves the log file location under XDG state.
func DefaultLogPath() (string, error) {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, "exampartner", "exampartner.log"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "state", "exampartner", "exampartner.log"), nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
