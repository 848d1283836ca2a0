// Package xlog wires the extension engine's logging: colorized, leveled
// output to stderr for interactive use, plus an optional rotated file sink
// for unattended hook execution, grounded on the teacher's log.Setup
// pattern of pairing a structured handler with lumberjack rotation.
package xlog

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// MaxAgeDays bounds how long rotated log files are retained.
const MaxAgeDays = 30

var (
	initOnce    sync.Once
	initialized atomic.Bool
	logger      = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "codexplus",
	})
)

// Setup points the default logger at a rotated file, in addition to
// stderr, and raises the level to debug when requested. It is safe to call
// more than once; only the first call takes effect.
func Setup(logFile string, debug bool) {
	initOnce.Do(func() {
		pid := os.Getpid()
		dir := filepath.Dir(logFile)
		ext := filepath.Ext(logFile)
		name := strings.TrimSuffix(filepath.Base(logFile), ext)
		processLogFile := filepath.Join(dir, fmt.Sprintf("%s-%d%s", name, pid, ext))

		rotator := &lumberjack.Logger{
			Filename:   processLogFile,
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     MaxAgeDays,
			Compress:   false,
		}

		logger.SetOutput(io.MultiWriter(os.Stderr, rotator))
		if debug {
			logger.SetLevel(log.DebugLevel)
		}
		initialized.Store(true)
	})
}

// Initialized reports whether Setup has run.
func Initialized() bool {
	return initialized.Load()
}

// With returns a sub-logger carrying the given key/value pairs, the way
// every component in this module tags its log lines with a "component"
// field.
func With(keyvals ...any) *log.Logger {
	return logger.With(keyvals...)
}

func Debug(msg string, keyvals ...any) { logger.Debug(msg, keyvals...) }
func Info(msg string, keyvals ...any)  { logger.Info(msg, keyvals...) }
func Warn(msg string, keyvals ...any)  { logger.Warn(msg, keyvals...) }
func Error(msg string, keyvals ...any) { logger.Error(msg, keyvals...) }
