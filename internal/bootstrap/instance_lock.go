package bootstrap

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

const (
	lockFileName = "kiosk.lock"
	lockFilePerm = 0o600
	lockDirPerm  = 0o755
)

// ErrAlreadyRunning is returned when another kiosk holds the instance lock.
var ErrAlreadyRunning = errors.New("another kiosk instance is running")

// InstanceLock keeps a single kiosk per user session. The lock is released
// by the kernel if the process dies.
type InstanceLock struct {
	file *os.File
	path string
}

// AcquireInstanceLock takes the exclusive lock in stateDir without blocking.
func AcquireInstanceLock(stateDir string) (*InstanceLock, error) {
	if err := os.MkdirAll(stateDir, lockDirPerm); err != nil {
		return nil, fmt.Errorf("create lock directory: %w", err)
	}
	path := filepath.Join(stateDir, lockFileName)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, lockFilePerm)
	if err != nil {
		return nil, fmt.Errorf("open lock file: %w", err)
	}

	if err := unix.Flock(int(f.Fd()), unix.LOCK_EX|unix.LOCK_NB); err != nil {
		_ = f.Close()
		if errors.Is(err, unix.EWOULDBLOCK) {
			return nil, ErrAlreadyRunning
		}
		return nil, fmt.Errorf("lock %s: %w", path, err)
	}

	if err := f.Truncate(0); err == nil {
		_, _ = fmt.Fprintf(f, "%d\n", os.Getpid())
	}
	return &InstanceLock{file: f, path: path}, nil
}

// Path returns the lock file location.
func (l *InstanceLock) Path() string {
	return l.path
}

// Release unlocks and closes the lock file. Safe to call more than once.
func (l *InstanceLock) Release() error {
	if l == nil || l.file == nil {
		return nil
	}
	_ = unix.Flock(int(l.file.Fd()), unix.LOCK_UN)
	err := l.file.Close()
	l.file = nil
	return err
}
