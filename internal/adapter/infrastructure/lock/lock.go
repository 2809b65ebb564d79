// Package lock provides the run lock adapter implementation.
package lock

import (
	"fmt"

	"calmnetconfig/internal/port"

	"github.com/gofrs/flock"
)

// FileLockAdapter implements the Locker port with an flock(2) on a lock file.
type FileLockAdapter struct {
	fl *flock.Flock
}

// Ensure FileLockAdapter implements the Locker port
var _ port.Locker = (*FileLockAdapter)(nil)

// NewFileLockAdapter creates a lock adapter for the given lock file path.
func NewFileLockAdapter(path string) *FileLockAdapter {
	return &FileLockAdapter{fl: flock.New(path)}
}

// TryLock takes the exclusive lock without blocking.
func (l *FileLockAdapter) TryLock() (bool, error) {
	locked, err := l.fl.TryLock()
	if err != nil {
		return false, fmt.Errorf("failed to lock %s: %w", l.fl.Path(), err)
	}
	return locked, nil
}

// Unlock releases the lock. The lock file itself is left in place.
func (l *FileLockAdapter) Unlock() error {
	if err := l.fl.Unlock(); err != nil {
		return fmt.Errorf("failed to unlock %s: %w", l.fl.Path(), err)
	}
	return nil
}
