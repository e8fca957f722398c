// Серверные модели пользователя и документов хранилища
package models

import (
	shared "github.com/IvanChernomyrdin/video-playlists/internal/shared/models"
)

// User — запись пользователя.
//
// В JSON-документе хэш лежит под ключом "password".
type User struct {
	UserID       string `json:"userId"`
	Email        string `json:"email"`
	PasswordHash string `json:"password"`
}

// UsersDocument — документ users.json:
//
//	{ "users": [ {userId, email, password}, ... ] }
type UsersDocument struct {
	Users []User `json:"users"`
}

// PlaylistsDocument — документ playlists.json:
//
//	{ userId: { playlistName: [videoId, ...] } }
type PlaylistsDocument map[string]shared.UserData
