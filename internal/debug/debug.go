// Package debug provides an opt-in debug log. Enabled by setting CWF_DEBUG
// to any non-empty value; output goes to .cwf/debug.log with rotation so a
// long watch session cannot fill the disk.
package debug

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	once    sync.Once
	logger  *log.Logger
	enabled bool
)

func setup() {
	enabled = os.Getenv("CWF_DEBUG") != ""
	if !enabled {
		return
	}
	dir := ".cwf"
	if custom := os.Getenv("CWF_DEBUG_DIR"); custom != "" {
		dir = custom
	}
	_ = os.MkdirAll(dir, 0750)
	logger = log.New(&lumberjack.Logger{
		Filename:   filepath.Join(dir, "debug.log"),
		MaxSize:    5, // megabytes
		MaxBackups: 2,
	}, "", log.LstdFlags|log.Lmicroseconds)
}

// Enabled reports whether debug logging is active.
func Enabled() bool {
	once.Do(setup)
	return enabled
}

// Logf writes a formatted line to the debug log. No-op unless CWF_DEBUG is
// set.
func Logf(format string, args ...interface{}) {
	once.Do(setup)
	if !enabled || logger == nil {
		return
	}
	logger.Output(2, fmt.Sprintf(format, args...))
}
