package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"github.com/untoldecay/CrosswalkForge/internal/debug"
)

// withOutputLock holds a file lock while fn writes into dir, so two
// concurrent runs (say, a watch loop and a manual invocation) cannot
// interleave partial outputs.
func withOutputLock(dir string, fn func() error) error {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}
	lock := flock.New(filepath.Join(dir, ".cwf.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("failed to acquire output lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("another cwf run is writing to %s", dir)
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			debug.Logf("failed to release output lock: %v", err)
		}
	}()
	return fn()
}
