// Методы клиента для работы с плейлистами.
package api

import (
	"net/url"

	shared "github.com/IvanChernomyrdin/video-playlists/internal/shared/models"
)

// UserData возвращает все плейлисты пользователя.
func (c *Client) UserData(userID string) (shared.UserData, error) {
	var resp shared.UserData
	err := c.GetJSON("/user/"+url.PathEscape(userID)+"/data", &resp)
	return resp, err
}

// CreatePlaylist создаёт пустой плейлист. Возвращает сообщение сервера.
func (c *Client) CreatePlaylist(userID, name string) (string, error) {
	var resp shared.MessageResponse
	err := c.PostJSON("/playlist", shared.PlaylistRequest{UserID: userID, PlaylistName: name}, &resp)
	return resp.Message, err
}

// DeletePlaylist удаляет плейлист.
func (c *Client) DeletePlaylist(userID, name string) (string, error) {
	var resp shared.MessageResponse
	err := c.DeleteJSON("/playlist", shared.PlaylistRequest{UserID: userID, PlaylistName: name}, &resp)
	return resp.Message, err
}

// EditPlaylist добавляет (action=add) или удаляет (action=remove) видео.
func (c *Client) EditPlaylist(userID, name, action, videoID string) (string, error) {
	var resp shared.MessageResponse
	err := c.PutJSON("/playlist", shared.EditPlaylistRequest{
		UserID:       userID,
		PlaylistName: name,
		Action:       action,
		VideoID:      videoID,
	}, &resp)
	return resp.Message, err
}
