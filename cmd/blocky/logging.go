package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Log file rotation limits
const (
	logMaxSizeMB  = 10
	logMaxBackups = 3
	logMaxAgeDays = 28
)

var logFile io.Closer

// setupLogging installs the default logger. The TUI owns the terminal, so
// only the SSH server writes to stderr; everything else logs to --log-file
// or nowhere.
func setupLogging(toStderr bool) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	var writers []io.Writer
	if toStderr {
		writers = append(writers, os.Stderr)
	}
	if flagLogFile != "" {
		rotator := &lumberjack.Logger{
			Filename:   flagLogFile,
			MaxSize:    logMaxSizeMB,
			MaxBackups: logMaxBackups,
			MaxAge:     logMaxAgeDays,
		}
		logFile = rotator
		writers = append(writers, rotator)
	}

	out := io.Discard
	if len(writers) > 0 {
		out = io.MultiWriter(writers...)
	}

	log.SetDefault(log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "blocky",
		Level:           level,
	}))
	return nil
}

func closeLogging() {
	if logFile != nil {
		//nolint:errcheck // Best-effort close on exit
		logFile.Close()
	}
}
