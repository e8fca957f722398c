package repository

import (
	"context"

	"github.com/IvanChernomyrdin/video-playlists/internal/server/models"
	"github.com/IvanChernomyrdin/video-playlists/internal/server/storage"
	serr "github.com/IvanChernomyrdin/video-playlists/internal/shared/errors"
)

// FileUsersRepository хранит пользователей в JSON-документе
//
//	{ "users": [ {userId, email, password}, ... ] }
//
// Документ перечитывается при каждом вызове.
type FileUsersRepository struct {
	acc  *storage.Accessor
	path string
}

// NewFileUsersRepository создаёт FileUsersRepository поверх документа path.
func NewFileUsersRepository(acc *storage.Accessor, path string) *FileUsersRepository {
	return &FileUsersRepository{acc: acc, path: path}
}

// Create добавляет пользователя в конец списка.
//
// Проверка уникальности и запись выполняются под одним мьютексом документа.
//
// Ошибки:
//   - ErrAlreadyExists — email уже занят;
//   - ErrIDCollision — userId уже занят;
//   - ErrStorage — документ не удалось прочитать (strict) или записать.
func (r *FileUsersRepository) Create(ctx context.Context, user models.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return storage.Update(r.acc, r.path, func(doc *models.UsersDocument) (bool, error) {
		for _, u := range doc.Users {
			if u.Email == user.Email {
				return false, serr.ErrAlreadyExists
			}
			if u.UserID == user.UserID {
				return false, serr.ErrIDCollision
			}
		}
		doc.Users = append(doc.Users, user)
		return true, nil
	})
}

// GetByEmail ищет пользователя по точному совпадению email.
func (r *FileUsersRepository) GetByEmail(ctx context.Context, email string) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}

	doc, err := storage.Read[models.UsersDocument](r.acc, r.path)
	if err != nil {
		return models.User{}, err
	}

	for _, u := range doc.Users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, serr.ErrNotFound
}
