package service

import (
	"context"

	"github.com/IvanChernomyrdin/video-playlists/internal/server/config"
	serr "github.com/IvanChernomyrdin/video-playlists/internal/shared/errors"
	shared "github.com/IvanChernomyrdin/video-playlists/internal/shared/models"
)

// Action — операция над видео в PUT /playlist.
type Action string

const (
	ActionAdd    Action = "add"
	ActionRemove Action = "remove"
)

// PlaylistsService реализует бизнес-логику плейлистов пользователя.
// Сервис:
//   - проверяет наличие обязательных полей;
//   - применяет политику автосоздания записи пользователя (PlaylistsConfig);
//   - не знает о HTTP и формате хранилища.
type PlaylistsService struct {
	repo        PlaylistsRepo
	requireUser bool
}

// NewPlaylistsService создаёт новый PlaylistsService.
func NewPlaylistsService(repo PlaylistsRepo, cfg *config.Config) *PlaylistsService {
	return &PlaylistsService{
		repo:        repo,
		requireUser: cfg.Playlists.RequireUser,
	}
}

// GetUserData возвращает все плейлисты пользователя.
//
// Ошибки:
//   - ErrNotFound — у пользователя нет записи в хранилище плейлистов
func (s *PlaylistsService) GetUserData(ctx context.Context, userID string) (shared.UserData, error) {
	if userID == "" {
		return nil, serr.ErrNotFound
	}
	return s.repo.GetUserData(ctx, userID)
}

// CreatePlaylist создаёт пустой плейлист name.
//
// Если у пользователя нет записи, она создаётся автоматически,
// кроме режима playlists.require_user (тогда ErrNotFound).
//
// Ошибки:
//   - ErrInvalidInput — пустой userID или name;
//   - ErrAlreadyExists — плейлист с таким именем уже есть.
func (s *PlaylistsService) CreatePlaylist(ctx context.Context, userID, name string) error {
	if userID == "" || name == "" {
		return serr.ErrInvalidInput
	}

	if !s.requireUser {
		if err := s.repo.InitUser(ctx, userID); err != nil {
			return err
		}
	}
	return s.repo.CreatePlaylist(ctx, userID, name)
}

// DeletePlaylist удаляет плейлист name.
//
// Ошибки:
//   - ErrInvalidInput — пустой userID или name;
//   - ErrNotFound — нет пользователя или плейлиста.
func (s *PlaylistsService) DeletePlaylist(ctx context.Context, userID, name string) error {
	if userID == "" || name == "" {
		return serr.ErrInvalidInput
	}
	return s.repo.DeletePlaylist(ctx, userID, name)
}

// EditPlaylist добавляет или удаляет videoID в плейлисте name.
//
//   - add: добавляет в конец, повторное добавление ничего не меняет;
//   - remove: удаляет все вхождения, отсутствие videoID не ошибка.
//
// Ошибки:
//   - ErrInvalidInput — пустой userID, name или videoID;
//   - ErrNotFound — нет пользователя или плейлиста (проверяется раньше action);
//   - ErrInvalidAction — action не add и не remove.
func (s *PlaylistsService) EditPlaylist(ctx context.Context, userID, name string, action Action, videoID string) error {
	if userID == "" || name == "" || videoID == "" {
		return serr.ErrInvalidInput
	}

	switch action {
	case ActionAdd:
		return s.repo.AddVideo(ctx, userID, name, videoID)
	case ActionRemove:
		return s.repo.RemoveVideo(ctx, userID, name, videoID)
	}

	// на неизвестный action сначала отвечаем 404, если плейлиста нет
	data, err := s.repo.GetUserData(ctx, userID)
	if err != nil {
		return err
	}
	if _, ok := data[name]; !ok {
		return serr.ErrNotFound
	}
	return serr.ErrInvalidAction
}
