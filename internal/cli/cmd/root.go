// Package cmd provides the Cobra commands of the kiosk binary.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/kiosk/internal/cli"
	"github.com/bnema/kiosk/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	rootCmd   = &cobra.Command{
		Use:   "kiosk",
		Short: "A single-site kiosk browser",
		Long: `Kiosk - a locked-down WebKitGTK browser for public terminals.

One fullscreen window, a handful of tabs on a single site, and a
password-protected menu for settings and shutdown.

Run 'kiosk' or 'kiosk browse' to start the kiosk. The other commands
manage the password, the configuration and the on-disk data.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "version", "schema":
				return nil
			}

			var err error
			app, err = cli.NewApp()
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// browseCmd is a placeholder for help - actual execution is in main.go
var browseCmd = &cobra.Command{
	Use:   "browse [url]",
	Short: "Start the kiosk window",
	Long: `Start the kiosk window.

If a URL is provided, the first tab opens it. Otherwise, the configured
default_url is used.

Examples:
  kiosk browse                          # Open the default URL
  kiosk browse https://example.com/     # Open a specific page`,
	Args: cobra.MaximumNArgs(1),
	Run: func(_ *cobra.Command, _ []string) {
		// This is handled by main.go before cobra runs
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintln(cmd.OutOrStdout(), buildInfo.String())
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(versionCmd)
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
