package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/kiosk/internal/application/usecase"
	"github.com/bnema/kiosk/internal/bootstrap"
	"github.com/bnema/kiosk/internal/infrastructure/config"
	"github.com/bnema/kiosk/internal/infrastructure/filesystem"
	xdgadapter "github.com/bnema/kiosk/internal/infrastructure/xdg"
)

var purgeYes bool

var purgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Remove kiosk data and configuration",
	Long: `Remove every directory the kiosk writes to:
  - Config directory (config.toml, password hash)
  - Data directory (settings database, cookies, site storage)
  - State directory (logs)
  - Cache directory (web cache)

The kiosk must not be running. Use --yes to skip the confirmation.`,
	Args: cobra.NoArgs,
	RunE: runPurge,
}

func init() {
	rootCmd.AddCommand(purgeCmd)
	purgeCmd.Flags().BoolVarP(&purgeYes, "yes", "y", false, "remove everything without prompting")
}

func runPurge(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	ctx := app.Ctx()
	out := cmd.OutOrStdout()

	stateDir, err := config.GetStateDir()
	if err != nil {
		return err
	}
	lock, err := bootstrap.AcquireInstanceLock(stateDir)
	if err != nil {
		if errors.Is(err, bootstrap.ErrAlreadyRunning) {
			return fmt.Errorf("close the kiosk before purging: %w", err)
		}
		return err
	}
	// Released before the state directory holding it is removed.
	releaseLock := func() { _ = lock.Release() }
	defer releaseLock()

	// The database lives in the data directory.
	_ = app.Close()

	purgeUC := usecase.NewPurgeDataUseCase(filesystem.New(), xdgadapter.New())
	targets, err := purgeUC.GetPurgeTargets(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, app.Renderer.PurgeTargets(targets))

	existing := 0
	for _, t := range targets {
		if t.Exists {
			existing++
		}
	}
	if existing == 0 {
		return nil
	}

	if !purgeYes {
		ok, err := confirm(cmd.InOrStdin(), out, "Remove all of the above? [y/N] ")
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(out, app.Theme.Subtle.Render("Aborted."))
			return nil
		}
	}

	releaseLock()
	result, err := purgeUC.PurgeAll(ctx)
	if result != nil {
		fmt.Fprintln(out, app.Renderer.PurgeResults(result.Results))
	}
	return err
}

// confirm reads a yes/no answer. Anything but y/yes is a no.
func confirm(in io.Reader, out io.Writer, prompt string) (bool, error) {
	fmt.Fprint(out, prompt)
	answer, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
