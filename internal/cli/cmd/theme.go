package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/kiosk/internal/application/usecase"
	"github.com/bnema/kiosk/internal/domain/entity"
	"github.com/bnema/kiosk/internal/infrastructure/persistence/sqlite"
)

var themeCmd = &cobra.Command{
	Use:       "theme [light|dark]",
	Short:     "Show or set the shell theme",
	Long:      `Show the persisted shell theme, or set it. The kiosk applies it on next start.`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{string(entity.ThemeLight), string(entity.ThemeDark)},
	RunE:      runTheme,
}

func init() {
	rootCmd.AddCommand(themeCmd)
}

func runTheme(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	ctx := app.Ctx()

	db, err := app.DB()
	if err != nil {
		return err
	}
	uc := usecase.NewManageThemeUseCase(sqlite.NewSettingsRepository(db), entity.ParseTheme(app.Config.Appearance.Theme))

	if len(args) == 0 {
		current, err := uc.Load(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), app.Theme.Highlight.Render(string(current)))
		return nil
	}

	theme := entity.Theme(args[0])
	if !theme.IsValid() {
		return fmt.Errorf("unknown theme %q (want light or dark)", args[0])
	}
	if err := uc.Set(ctx, theme); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), app.Renderer.Success("theme set to "+string(theme)))
	return nil
}
