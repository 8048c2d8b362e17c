package port

// XDGPaths provides XDG Base Directory paths for the kiosk.
type XDGPaths interface {
	ConfigDir() (string, error)
	DataDir() (string, error)
	StateDir() (string, error)
	CacheDir() (string, error)
}
