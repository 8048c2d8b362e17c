package port

import (
	"context"
	"errors"
)

var (
	// ErrPkgConfigMissing indicates pkg-config is not available on the host.
	ErrPkgConfigMissing = errors.New("pkg-config missing")
	// ErrLibraryMissing indicates the library has no pkg-config entry.
	ErrLibraryMissing = errors.New("library not installed")
)

// RuntimeVersionProbe reports installed versions of the native libraries
// the kiosk links against.
type RuntimeVersionProbe interface {
	// ModVersion returns the version of a pkg-config module, e.g. "webkitgtk-6.0".
	ModVersion(ctx context.Context, module string) (string, error)
}
