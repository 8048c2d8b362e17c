package port

import "context"

// DirUsage is what a purge target currently occupies on disk.
type DirUsage struct {
	Exists bool
	Size   int64
}

// FileSystem inspects and removes the kiosk's on-disk directories.
type FileSystem interface {
	// Usage reports whether path exists and the bytes of regular files under it.
	Usage(ctx context.Context, path string) (DirUsage, error)
	RemoveAll(ctx context.Context, path string) error
}
