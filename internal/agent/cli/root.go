// Package cli реализует командный интерфейс (CLI) клиента сервера плейлистов.
//
// Пакет отвечает за:
//   - определение root-команды и набора подкоманд;
//   - разбор аргументов и флагов командной строки;
//   - загрузку локальных учётных данных (userId) из конфигурационного файла;
//   - выполнение команд и вывод результата пользователю.
//
// Точка входа пакета — функция Execute.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/video-playlists/internal/agent/config"
)

// DefaultServerURL — адрес сервера по умолчанию.
const DefaultServerURL = "http://127.0.0.1:4000"

// ErrNotLoggedIn — нет userId ни во флаге --user, ни в сохранённых учётных данных.
var ErrNotLoggedIn = errors.New("not logged in (run: playlists login, or pass --user)")

// App содержит состояние CLI-приложения, разделяемое между командами.
type App struct {
	// ServerURL — базовый URL сервера (например, "http://127.0.0.1:4000").
	ServerURL string
	// Insecure — не проверять TLS-сертификат сервера.
	Insecure bool
	// UserID — userId из флага --user, важнее сохранённого.
	UserID string

	// CredsPath — путь к файлу с сохранёнными учётными данными.
	CredsPath string
	// Creds — загруженные учётные данные из файла конфигурации.
	Creds *config.Credentials
}

// CurrentUserID возвращает userId для запросов к плейлистам.
func (a *App) CurrentUserID() (string, error) {
	if a.UserID != "" {
		return a.UserID, nil
	}
	if a.Creds != nil && a.Creds.UserID != "" {
		return a.Creds.UserID, nil
	}
	return "", ErrNotLoggedIn
}

// remember сохраняет userId после signup/login.
func (a *App) remember(userID, email string) error {
	if a.Creds == nil {
		a.Creds = &config.Credentials{}
	}
	a.Creds.UserID = userID
	a.Creds.Email = email
	a.Creds.Server = a.ServerURL
	return config.Save(a.CredsPath, a.Creds)
}

// NewRootCmd создаёт root-команду CLI и регистрирует подкоманды.
//
// buildVersion и buildDate используются для вывода информации о сборке (команда version).
// В PersistentPreRunE определяется путь к файлу учётных данных (если не задан)
// и загружается сохранённый userId.
func NewRootCmd(buildVersion, buildDate string) *cobra.Command {
	app := &App{}
	return newRootCmd(app, buildVersion, buildDate)
}

func newRootCmd(app *App, buildVersion, buildDate string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "playlists",
		Short: "CLI для сервера видео-плейлистов",
		Long: `Playlists CLI.

Команды:
  signup    Регистрация нового пользователя
  login     Вход (запоминает userId)
  logout    Забыть сохранённый userId
  data      Показать плейлисты
  playlist  Создать/удалить плейлист, добавить/убрать видео
  version   Версия и дата сборки

Примеры:
  playlists signup --email test@example.com
  playlists login --email test@example.com
  playlists playlist create Rock
  playlists playlist add Rock dQw4w9WgXcQ
  playlists data
`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if app.CredsPath == "" {
				p, err := config.DefaultPath()
				if err != nil {
					return err
				}
				app.CredsPath = p
			}

			creds, err := config.Load(app.CredsPath)
			if err != nil {
				return err
			}
			app.Creds = creds
			return nil
		},
	}

	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stderr)

	serverDefault := DefaultServerURL
	if v := os.Getenv("PLAYLISTS_SERVER"); v != "" {
		serverDefault = v
	}

	cmd.PersistentFlags().StringVar(&app.ServerURL, "server", serverDefault, "server base URL (env PLAYLISTS_SERVER)")
	cmd.PersistentFlags().BoolVar(&app.Insecure, "insecure", false, "skip TLS certificate verification (dev only)")
	cmd.PersistentFlags().StringVar(&app.UserID, "user", "", "userId to act as (default: from saved credentials)")
	cmd.PersistentFlags().StringVar(&app.CredsPath, "credentials", app.CredsPath, "path to credentials file (default ~/.playlists/credentials.json)")

	cmd.AddCommand(NewSignupCmd(app))
	cmd.AddCommand(NewLoginCmd(app))
	cmd.AddCommand(NewLogoutCmd(app))
	cmd.AddCommand(NewDataCmd(app))
	cmd.AddCommand(NewPlaylistCmd(app))
	cmd.AddCommand(NewVersionCmd(buildVersion, buildDate))

	return cmd
}

// Execute запускает обработку CLI-команд.
//
// При ошибке выполнения команды сообщение выводится в stderr, после чего процесс
// завершается с кодом 1 (os.Exit(1)).
func Execute(buildVersion, buildDate string) {
	if err := NewRootCmd(buildVersion, buildDate).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
