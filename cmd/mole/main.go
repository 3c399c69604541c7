package main

import (
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		newLogger().Error("command failed", "error", err)
		os.Exit(1)
	}
}

// newLogger reports on stderr: human-readable on a terminal, JSON when the
// stream is redirected.
func newLogger() *slog.Logger {
	fd := os.Stderr.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		return slog.New(slog.NewTextHandler(os.Stderr, nil))
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, nil))
}
