package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewPlaylistCmd создаёт группу команд над плейлистами текущего пользователя.
//
//	playlists playlist create <name>
//	playlists playlist delete <name>
//	playlists playlist add <name> <videoId>
//	playlists playlist remove <name> <videoId>
func NewPlaylistCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "playlist",
		Short: "Операции над плейлистами",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "create <name>",
		Short: "Создать пустой плейлист",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.runPlaylist(cmd, func(userID string) (string, error) {
				return NewAPIClient(app.ServerURL, app.Insecure).CreatePlaylist(userID, args[0])
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <name>",
		Short: "Удалить плейлист",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.runPlaylist(cmd, func(userID string) (string, error) {
				return NewAPIClient(app.ServerURL, app.Insecure).DeletePlaylist(userID, args[0])
			})
		},
	})

	for _, action := range []string{"add", "remove"} {
		short := "Добавить видео в плейлист"
		if action == "remove" {
			short = "Убрать видео из плейлиста"
		}

		cmd.AddCommand(&cobra.Command{
			Use:   action + " <name> <videoId>",
			Short: short,
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return app.runPlaylist(cmd, func(userID string) (string, error) {
					return NewAPIClient(app.ServerURL, app.Insecure).EditPlaylist(userID, args[0], action, args[1])
				})
			},
		})
	}

	return cmd
}

// runPlaylist определяет userId, выполняет call и печатает сообщение сервера.
func (a *App) runPlaylist(cmd *cobra.Command, call func(userID string) (string, error)) error {
	userID, err := a.CurrentUserID()
	if err != nil {
		return err
	}

	msg, err := call(userID)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), msg)
	return nil
}
