// Package logger is the molchain CLI's stderr logger. Debug, Info and
// Section lines appear only with --verbose; Warn lines always do.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
)

// SetVerbose switches verbose output on or off.
func SetVerbose(v bool) {
	mu.Lock()
	verbose = v
	mu.Unlock()
}

// IsVerbose reports whether verbose output is on.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput redirects every log line to w (os.Stderr by default).
func SetOutput(w io.Writer) {
	mu.Lock()
	output = w
	mu.Unlock()
}

// emit writes one line when always is set or verbose output is on.
func emit(always bool, line string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if always || verbose {
		fmt.Fprintf(output, line, args...)
	}
}

func Debug(format string, args ...any) { emit(false, "[DEBUG] "+format+"\n", args...) }

func Info(format string, args ...any) { emit(false, "[INFO] "+format+"\n", args...) }

// Section prints a blank line and a "=== name ===" header.
func Section(name string) { emit(false, "\n=== %s ===\n", name) }

func Warn(format string, args ...any) { emit(true, "[WARN] "+format+"\n", args...) }

// Adapter exposes the package functions as methods, for libraries that take
// a Debugf-style logger (chain.WithLogger).
type Adapter struct{}

// Std returns the package Adapter.
func Std() Adapter { return Adapter{} }

func (Adapter) Debugf(format string, args ...any) { Debug(format, args...) }
func (Adapter) Infof(format string, args ...any)  { Info(format, args...) }
func (Adapter) Warnf(format string, args ...any)  { Warn(format, args...) }
