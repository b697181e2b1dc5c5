package fileutil

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
)

// ErrExists is returned when a write would replace a file the caller asked to keep.
var ErrExists = errors.New("file already exists")

const lockRetryDelay = 50 * time.Millisecond

// WriteOptions controls how WriteFile replaces the destination.
type WriteOptions struct {
	Mode      os.FileMode
	Overwrite bool
	// Lock holds an exclusive lock on LockPath(LockDir, path) for the duration
	// of the write.
	Lock    bool
	LockDir string
}

// LockPath returns the lock file guarding writes to path. With a lock directory
// the name is derived from the absolute path so the output directory stays
// clean; without one the lock sits beside path.
func LockPath(lockDir, path string) string {
	if lockDir == "" {
		return path + ".lock"
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = filepath.Clean(path)
	}
	return filepath.Join(lockDir, uuid.NewSHA1(uuid.NameSpaceURL, []byte("file://"+abs)).String()+".lock")
}

// WriteFile writes data to path by way of a temp file in the same directory and
// a rename, so readers never observe a partial result.
func WriteFile(ctx context.Context, path string, data []byte, opts WriteOptions) error {
	if opts.Mode == 0 {
		opts.Mode = 0o644
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	if opts.Lock {
		lockPath := LockPath(opts.LockDir, path)
		if err := os.MkdirAll(filepath.Dir(lockPath), 0o755); err != nil {
			return fmt.Errorf("create lock directory: %w", err)
		}
		lock := flock.New(lockPath)
		ok, err := lock.TryLockContext(ctx, lockRetryDelay)
		if err != nil {
			return fmt.Errorf("acquire lock: %w", err)
		}
		if !ok {
			return fmt.Errorf("acquire lock: %s is held by another process", lock.Path())
		}
		defer func() { _ = lock.Unlock() }()
	}

	if !opts.Overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s", ErrExists, path)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("stat output: %w", err)
		}
	}

	return writeAtomic(path, data, opts.Mode)
}

func writeAtomic(path string, data []byte, mode os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpPath) }

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Chmod(mode); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		cleanup()
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

// SamePath reports whether a and b name the same file. Paths that do not exist
// yet are compared lexically after cleaning.
func SamePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA == nil && errB == nil && absA == absB {
		return true
	}
	infoA, errA := os.Stat(a)
	infoB, errB := os.Stat(b)
	if errA != nil || errB != nil {
		return false
	}
	return os.SameFile(infoA, infoB)
}
