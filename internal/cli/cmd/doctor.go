package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/kiosk/internal/application/usecase"
	"github.com/bnema/kiosk/internal/infrastructure/deps"
)

var errRuntimeUnsatisfied = errors.New("runtime requirements not met")

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the GTK and WebKitGTK libraries on this machine",
	Long: `Check that the native libraries the kiosk links against are installed
and recent enough. Run it when provisioning a new terminal.`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	uc := usecase.NewCheckRuntimeDependenciesUseCase(deps.NewPkgConfigProbe(), nil)
	statuses, ok := uc.Execute(app.Ctx())

	fmt.Fprintln(cmd.OutOrStdout(), app.Renderer.RuntimeDependencies(statuses))
	if !ok {
		return errRuntimeUnsatisfied
	}
	return nil
}
