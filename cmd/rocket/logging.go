package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// newLogger returns the game logger and a function that closes its file.
// Without a path the log is discarded; the terminal belongs to the game.
func newLogger(path string, debug bool) (*log.Logger, func()) {
	var w io.Writer = io.Discard
	closeFn := func() {}

	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: cannot open log file: %v\n", err)
		} else {
			w = f
			closeFn = func() { _ = f.Close() }
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "rocket",
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn
}
