package main

import (
	"os"
	"runtime"

	"github.com/bnema/kiosk/internal/bootstrap"
	"github.com/bnema/kiosk/internal/cli/cmd"
	"github.com/bnema/kiosk/internal/domain/build"
)

// Build-time variables (set via ldflags).
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	enableCrashForensics()

	// The kiosk window is the default; subcommands are for the operator.
	if len(os.Args) == 1 || os.Args[1] == "browse" {
		var initialURL string
		if len(os.Args) > 2 {
			initialURL = os.Args[2]
		}
		os.Args = os.Args[:1]
		os.Exit(runGUI(initialURL))
		return
	}

	cmd.SetBuildInfo(build.Info{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
	})
	cmd.Execute()
}

func runGUI(initialURL string) int {
	// GTK must stay on the thread that initialised it.
	runtime.LockOSThread()
	return bootstrap.RunGUI(bootstrap.Options{InitialURL: initialURL})
}
