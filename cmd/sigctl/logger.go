package main

import (
	"io"
	"log/slog"
	"os"
)

// log is the process-wide logger. It discards everything until initLogger
// enables file logging via the --log-file flag.
var log *slog.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))

// initLogger configures logging. Called from the root command before any
// subcommand runs. Without --log-file all log output is discarded.
func initLogger() error {
	if logFile == "" {
		return nil
	}
	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	log = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	return nil
}
