package todo

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"

	"github.com/wexinc/todo/internal/errors"
)

// lockRetryDelay is how often a blocked Initialize re-checks the lock.
const lockRetryDelay = 25 * time.Millisecond

// LockPath returns the advisory lock file used for a store path. The lock
// lives beside the data file because the data file is replaced on every
// write and a lock on it would not survive the rename.
func LockPath(storePath string) string {
	return storePath + ".lock"
}

// acquireLock takes the exclusive advisory lock. Callers hold s.mu.
func (s *Store) acquireLock() error {
	lockPath := LockPath(s.path)
	if err := os.MkdirAll(filepath.Dir(lockPath), 0755); err != nil {
		return errors.StorageWrite(lockPath, err)
	}

	flk := flock.New(lockPath)

	var (
		locked bool
		err    error
	)
	if s.lockTimeout <= 0 {
		locked, err = flk.TryLock()
	} else {
		ctx, cancel := context.WithTimeout(context.Background(), s.lockTimeout)
		defer cancel()
		locked, err = flk.TryLockContext(ctx, lockRetryDelay)
	}
	if err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return errors.StorageWrite(lockPath, err)
	}
	if !locked {
		return errors.StorageLocked(s.path, err)
	}

	s.flk = flk
	s.log.Debug("store locked", "lock", lockPath)
	return nil
}
