// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logging configures the diagnostic loggers used across pindrop.
// Primary user-facing output is printed by the command layer on stdout;
// loggers carry per-stage diagnostics on stderr and stay quiet below warn
// level unless verbose mode is enabled.
package logging

import (
	"io"
	"os"

	log "github.com/charmbracelet/log"
)

var (
	loggers = make(map[string]*log.Logger)
	level   = log.WarnLevel
)

// GetLogger returns the logger for the named module, creating it on first
// use. Loggers share one level so a single flag controls them all.
func GetLogger(module string) *log.Logger {
	if lg, ok := loggers[module]; ok {
		return lg
	}
	lg := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: module,
	})
	lg.SetLevel(level)
	loggers[module] = lg
	return lg
}

// SetVerbose drops every logger to debug level, including loggers created
// after the call.
func SetVerbose() {
	level = log.DebugLevel
	for _, lg := range loggers {
		lg.SetLevel(level)
	}
}

// Silence discards all diagnostic output. Tests use this to keep fixture
// runs quiet.
func Silence() {
	for _, lg := range loggers {
		lg.SetOutput(io.Discard)
	}
}
