package cli

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

// NewDataCmd создаёт команду просмотра плейлистов пользователя.
//
// По умолчанию печатает плейлисты по алфавиту, видео в порядке добавления:
//
//	Rock (2)
//	  dQw4w9WgXcQ
//	  9bZkp7q19f0
//
// С флагом --json печатает ответ сервера как есть.
func NewDataCmd(app *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "data",
		Short: "Показать плейлисты пользователя",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := app.CurrentUserID()
			if err != nil {
				return err
			}

			c := NewAPIClient(app.ServerURL, app.Insecure)
			data, err := c.UserData(userID)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(data)
			}

			if len(data) == 0 {
				fmt.Fprintln(out, "no playlists (run: playlists playlist create <name>)")
				return nil
			}

			names := make([]string, 0, len(data))
			for name := range data {
				names = append(names, name)
			}
			sort.Strings(names)

			for _, name := range names {
				videos := data[name]
				fmt.Fprintf(out, "%s (%d)\n", name, len(videos))
				if len(videos) > 0 {
					fmt.Fprintf(out, "  %s\n", strings.Join(videos, "\n  "))
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print raw JSON")
	return cmd
}
