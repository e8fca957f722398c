package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewSignupCmd создаёт CLI-команду для регистрации нового пользователя.
//
// После регистрации userId сохраняется локально, и последующие команды
// работают от его имени.
//
// Пример использования:
//
//	playlists signup --email test@example.com --password StrongPass123
func NewSignupCmd(app *App) *cobra.Command {
	var f credentialFlags

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Регистрация нового пользователя",
		Long: `Регистрация нового пользователя на сервере.

Пример:
  playlists signup --email test@example.com --password StrongPass123
  echo StrongPass123 | playlists signup --email test@example.com --password-stdin
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := f.resolvePassword(cmd)
			if err != nil {
				return err
			}

			c := NewAPIClient(app.ServerURL, app.Insecure)
			resp, err := c.Signup(f.email, password)
			if err != nil {
				return err
			}

			if err := app.remember(resp.UserID, f.email); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "registration successful, userId=%s\n", resp.UserID)
			return nil
		},
	}

	f.register(cmd, "registration")
	return cmd
}
