package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrLocked is returned when another process is saving the same book.
var ErrLocked = errors.New("address book is locked by another process")

// withLock holds an exclusive lock on path+".lock" while fn runs. The
// lock file is left in place.
func withLock(path string, fn func() error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}
	lockPath := path + ".lock"
	f, err := os.OpenFile(lockPath, os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return fmt.Errorf("open lock file: %w", err)
	}
	defer f.Close()

	if err := lockFileExclusiveNonBlocking(f); err != nil {
		if isWouldBlockError(err) {
			return ErrLocked
		}
		return fmt.Errorf("acquire lock: %w", err)
	}
	defer func() { _ = unlockFile(f) }()

	return fn()
}
