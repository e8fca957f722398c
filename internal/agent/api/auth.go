// Методы клиента для регистрации и входа.
package api

import (
	shared "github.com/IvanChernomyrdin/video-playlists/internal/shared/models"
)

// Signup регистрирует пользователя и возвращает его userId.
func (c *Client) Signup(email, password string) (shared.UserIDResponse, error) {
	var resp shared.UserIDResponse
	err := c.PostJSON("/signup", shared.CredentialsRequest{Email: email, Password: password}, &resp)
	return resp, err
}

// Login проверяет учётные данные и возвращает userId.
func (c *Client) Login(email, password string) (shared.UserIDResponse, error) {
	var resp shared.UserIDResponse
	err := c.PostJSON("/login", shared.CredentialsRequest{Email: email, Password: password}, &resp)
	return resp, err
}
