package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/video-playlists/internal/agent/config"
)

// NewLoginCmd создаёт CLI-команду для входа пользователя.
//
// Команда проверяет email и пароль на сервере и сохраняет полученный
// userId в локальный конфигурационный файл.
//
// Пример использования:
//
//	playlists login --email test@example.com --password StrongPass123
func NewLoginCmd(app *App) *cobra.Command {
	var f credentialFlags

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Вход пользователя (запоминает userId)",
		Long: `Вход пользователя.

Пример:
  playlists login --email test@example.com --password StrongPass123
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := f.resolvePassword(cmd)
			if err != nil {
				return err
			}

			// создаём API-клиент для общения с сервером
			c := NewAPIClient(app.ServerURL, app.Insecure)
			resp, err := c.Login(f.email, password)
			if err != nil {
				return err
			}

			// сохраняем userId в локальный конфигурационный файл
			if err := app.remember(resp.UserID, f.email); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "login ok, userId=%s\n", resp.UserID)
			return nil
		},
	}

	f.register(cmd, "login")
	return cmd
}

// NewLogoutCmd удаляет сохранённые учётные данные.
func NewLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Забыть сохранённый userId",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Remove(app.CredsPath); err != nil {
				return err
			}
			app.Creds = &config.Credentials{}
			fmt.Fprintln(cmd.OutOrStdout(), "logged out")
			return nil
		},
	}
}
