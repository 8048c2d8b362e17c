// Package build holds version information injected at link time.
package build

import "fmt"

// Info holds build-time information injected via ldflags.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
}

// String renders the one-line version banner.
func (i Info) String() string {
	return fmt.Sprintf("kiosk %s (%s, built %s, %s)", i.Version, i.Commit, i.BuildDate, i.GoVersion)
}
