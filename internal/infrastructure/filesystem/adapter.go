// Package filesystem measures and removes the kiosk's XDG directories.
package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bnema/kiosk/internal/application/port"
)

// ErrUnsafePath is returned when asked to remove a path that cannot be a
// kiosk directory.
var ErrUnsafePath = errors.New("refusing to remove unsafe path")

// Adapter implements port.FileSystem on the local disk.
type Adapter struct{}

// New creates a new filesystem adapter.
func New() *Adapter {
	return &Adapter{}
}

// Usage walks path and sums regular file sizes. A missing path is not an
// error. Entries that vanish mid-walk (WebKit rotating its cache) are skipped.
func (a *Adapter) Usage(ctx context.Context, path string) (port.DirUsage, error) {
	info, err := os.Lstat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return port.DirUsage{}, nil
	}
	if err != nil {
		return port.DirUsage{}, fmt.Errorf("stat %s: %w", path, err)
	}
	if !info.IsDir() {
		return port.DirUsage{Exists: true, Size: info.Size()}, nil
	}

	usage := port.DirUsage{Exists: true}
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if errors.Is(walkErr, fs.ErrNotExist) {
				return nil
			}
			return walkErr
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		fi, err := d.Info()
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		if err != nil {
			return err
		}
		usage.Size += fi.Size()
		return nil
	})
	if err != nil {
		return port.DirUsage{}, fmt.Errorf("measure %s: %w", path, err)
	}
	return usage, nil
}

// RemoveAll deletes path recursively. Relative paths and the filesystem
// root are rejected.
func (a *Adapter) RemoveAll(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	clean := filepath.Clean(path)
	if !filepath.IsAbs(clean) || clean == string(filepath.Separator) {
		return fmt.Errorf("%w: %q", ErrUnsafePath, path)
	}
	if err := os.RemoveAll(clean); err != nil {
		return fmt.Errorf("remove %s: %w", clean, err)
	}
	return nil
}

var _ port.FileSystem = (*Adapter)(nil)
