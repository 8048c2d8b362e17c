package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/bnema/kiosk/internal/infrastructure/auth"
)

var errPasswordMismatch = errors.New("passwords do not match")

var passwdStdin bool

var passwdCmd = &cobra.Command{
	Use:   "passwd",
	Short: "Set the kiosk password",
	Long: `Set the password that protects Settings and Close application.

The password is stored as a bcrypt hash in config.toml. A running kiosk
picks up the new password without restarting. Until a password is set,
the factory password is 1234.

Use --stdin to read the password from a pipe (provisioning scripts).`,
	Args: cobra.NoArgs,
	RunE: runPasswd,
}

func init() {
	rootCmd.AddCommand(passwdCmd)
	passwdCmd.Flags().BoolVar(&passwdStdin, "stdin", false, "read the password from standard input")
}

func runPasswd(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	var (
		secret string
		err    error
	)
	if passwdStdin || !term.IsTerminal(int(os.Stdin.Fd())) {
		secret, err = readPasswordLine(cmd.InOrStdin())
	} else {
		secret, err = promptNewPassword(cmd.ErrOrStderr(), int(os.Stdin.Fd()))
	}
	if err != nil {
		return err
	}

	hash, err := auth.HashPassword(secret)
	if err != nil {
		return err
	}
	if err := app.Configs.SetPasswordHash(hash); err != nil {
		return fmt.Errorf("save password: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), app.Renderer.PasswordSet(app.Configs.GetConfigFile()))
	return nil
}

// promptNewPassword reads the password twice without echo.
func promptNewPassword(out io.Writer, fd int) (string, error) {
	fmt.Fprint(out, "New password: ")
	first, err := term.ReadPassword(fd)
	fmt.Fprintln(out)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}

	fmt.Fprint(out, "Confirm password: ")
	second, err := term.ReadPassword(fd)
	fmt.Fprintln(out)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}

	if string(first) != string(second) {
		return "", errPasswordMismatch
	}
	return string(first), nil
}

func readPasswordLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
