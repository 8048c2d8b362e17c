package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/kiosk/internal/infrastructure/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect configuration",
	Long:  `Show where the configuration lives and print its JSON schema.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config, data, state and cache locations",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of config.toml",
	Long: `Print the JSON schema of config.toml.

Editors with TOML schema support (taplo, Even Better TOML) can use it for
completion and validation.`,
	Args: cobra.NoArgs,
	RunE: runConfigSchema,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configSchemaCmd)
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	dirs, err := config.GetXDGDirs()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	r := app.Renderer
	fmt.Fprintln(out, r.Path("config  ", app.Configs.GetConfigFile()))
	fmt.Fprintln(out, r.Path("database", app.Config.Database.Path))
	fmt.Fprintln(out, r.Path("data    ", dirs.DataHome))
	fmt.Fprintln(out, r.Path("state   ", dirs.StateHome))
	fmt.Fprintln(out, r.Path("cache   ", dirs.CacheHome))
	return nil
}

func runConfigSchema(cmd *cobra.Command, _ []string) error {
	data, err := config.GenerateSchema()
	if err != nil {
		return err
	}
	if _, err := cmd.OutOrStdout().Write(append(data, '\n')); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	return nil
}
