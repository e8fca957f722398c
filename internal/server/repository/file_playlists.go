package repository

import (
	"context"
	"slices"

	"github.com/IvanChernomyrdin/video-playlists/internal/server/models"
	"github.com/IvanChernomyrdin/video-playlists/internal/server/storage"
	serr "github.com/IvanChernomyrdin/video-playlists/internal/shared/errors"
	shared "github.com/IvanChernomyrdin/video-playlists/internal/shared/models"
)

// FilePlaylistsRepository хранит плейлисты в JSON-документе
//
//	{ userId: { playlistName: [videoId, ...] } }
//
// Каждая мутация — read-modify-write всего документа под его мьютексом.
type FilePlaylistsRepository struct {
	acc  *storage.Accessor
	path string
}

// NewFilePlaylistsRepository создаёт FilePlaylistsRepository поверх документа path.
func NewFilePlaylistsRepository(acc *storage.Accessor, path string) *FilePlaylistsRepository {
	return &FilePlaylistsRepository{acc: acc, path: path}
}

// InitUser создаёт пустую запись пользователя. Существующая запись не трогается.
func (r *FilePlaylistsRepository) InitUser(ctx context.Context, userID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return storage.Update(r.acc, r.path, func(doc *models.PlaylistsDocument) (bool, error) {
		if *doc == nil {
			*doc = models.PlaylistsDocument{}
		}
		if _, ok := (*doc)[userID]; ok {
			return false, nil
		}
		(*doc)[userID] = shared.UserData{}
		return true, nil
	})
}

// GetUserData возвращает плейлисты пользователя или ErrNotFound.
func (r *FilePlaylistsRepository) GetUserData(ctx context.Context, userID string) (shared.UserData, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc, err := storage.Read[models.PlaylistsDocument](r.acc, r.path)
	if err != nil {
		return nil, err
	}

	data, ok := doc[userID]
	if !ok {
		return nil, serr.ErrNotFound
	}

	// null в документе отдаём как пустые коллекции
	if data == nil {
		data = shared.UserData{}
	}
	for name, videos := range data {
		if videos == nil {
			data[name] = []string{}
		}
	}
	return data, nil
}

// CreatePlaylist создаёт пустой плейлист name.
func (r *FilePlaylistsRepository) CreatePlaylist(ctx context.Context, userID, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return storage.Update(r.acc, r.path, func(doc *models.PlaylistsDocument) (bool, error) {
		data, ok := (*doc)[userID]
		if !ok {
			return false, serr.ErrNotFound
		}
		if data == nil {
			data = shared.UserData{}
			(*doc)[userID] = data
		}
		if _, exists := data[name]; exists {
			return false, serr.ErrAlreadyExists
		}
		data[name] = []string{}
		return true, nil
	})
}

// DeletePlaylist удаляет плейлист name.
func (r *FilePlaylistsRepository) DeletePlaylist(ctx context.Context, userID, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return storage.Update(r.acc, r.path, func(doc *models.PlaylistsDocument) (bool, error) {
		data, ok := (*doc)[userID]
		if !ok {
			return false, serr.ErrNotFound
		}
		if _, exists := data[name]; !exists {
			return false, serr.ErrNotFound
		}
		delete(data, name)
		return true, nil
	})
}

// AddVideo добавляет videoID в конец плейлиста, если его там нет.
func (r *FilePlaylistsRepository) AddVideo(ctx context.Context, userID, name, videoID string) error {
	return r.editVideos(ctx, userID, name, func(videos []string) ([]string, bool) {
		if slices.Contains(videos, videoID) {
			return videos, false
		}
		return append(videos, videoID), true
	})
}

// RemoveVideo удаляет все вхождения videoID из плейлиста.
func (r *FilePlaylistsRepository) RemoveVideo(ctx context.Context, userID, name, videoID string) error {
	return r.editVideos(ctx, userID, name, func(videos []string) ([]string, bool) {
		kept := make([]string, 0, len(videos))
		for _, v := range videos {
			if v != videoID {
				kept = append(kept, v)
			}
		}
		return kept, len(kept) != len(videos)
	})
}

// editVideos находит плейлист и применяет к нему fn.
func (r *FilePlaylistsRepository) editVideos(ctx context.Context, userID, name string, fn func([]string) ([]string, bool)) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return storage.Update(r.acc, r.path, func(doc *models.PlaylistsDocument) (bool, error) {
		data, ok := (*doc)[userID]
		if !ok {
			return false, serr.ErrNotFound
		}
		videos, exists := data[name]
		if !exists {
			return false, serr.ErrNotFound
		}
		if videos == nil {
			videos = []string{}
		}

		updated, changed := fn(videos)
		if changed {
			data[name] = updated
		}
		return changed, nil
	})
}
