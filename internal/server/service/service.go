// Package service содержит бизнес-логику приложения (регистрация, вход, плейлисты).
// Это прослойка между HTTP-обработчиками (api) и хранилищем данных (repository).
package service

//go:generate mockgen -source=service.go -destination=mocks/repos.go -package=mocks

import (
	"context"

	"go.uber.org/zap"

	"github.com/IvanChernomyrdin/video-playlists/internal/server/config"
	"github.com/IvanChernomyrdin/video-playlists/internal/server/models"
	shared "github.com/IvanChernomyrdin/video-playlists/internal/shared/models"
)

// Repositories — набор интерфейсов, которые сервисный слой ожидает от слоя repository.
type Repositories struct {
	Users     UsersRepo
	Playlists PlaylistsRepo
}

// Services — агрегатор всех сервисов приложения.
type Services struct {
	Auth      *AuthService
	Playlists *PlaylistsService
}

// NewServices собирает все сервисы приложения.
// cfg нужен AuthService (параметры хеширования пароля) и PlaylistsService (политика автосоздания).
func NewServices(repos Repositories, cfg *config.Config, log *zap.SugaredLogger) *Services {
	return &Services{
		Auth:      NewAuthService(repos.Users, repos.Playlists, cfg, log),
		Playlists: NewPlaylistsService(repos.Playlists, cfg),
	}
}

// UsersRepo — репозиторий пользователей (нужен для signup/login).
//
// Create возвращает:
//   - ErrAlreadyExists, если email уже занят;
//   - ErrIDCollision, если занят userId.
//
// GetByEmail возвращает ErrNotFound, если пользователя нет.
type UsersRepo interface {
	Create(ctx context.Context, user models.User) error
	GetByEmail(ctx context.Context, email string) (models.User, error)
}

// PlaylistsRepo — репозиторий плейлистов пользователей.
//
// Все методы, кроме InitUser, возвращают ErrNotFound, если у userId нет записи
// в хранилище плейлистов. DeletePlaylist/AddVideo/RemoveVideo также возвращают
// ErrNotFound на отсутствующий плейлист, CreatePlaylist — ErrAlreadyExists на существующий.
type PlaylistsRepo interface {
	// InitUser создаёт пустую запись пользователя, если её нет.
	InitUser(ctx context.Context, userID string) error
	GetUserData(ctx context.Context, userID string) (shared.UserData, error)
	CreatePlaylist(ctx context.Context, userID, name string) error
	DeletePlaylist(ctx context.Context, userID, name string) error
	// AddVideo добавляет videoID в конец плейлиста, если его там ещё нет.
	AddVideo(ctx context.Context, userID, name, videoID string) error
	// RemoveVideo удаляет все вхождения videoID; отсутствие videoID не ошибка.
	RemoveVideo(ctx context.Context, userID, name, videoID string) error
}
