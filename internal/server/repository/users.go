package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgconn"

	"github.com/IvanChernomyrdin/video-playlists/internal/server/models"
	serr "github.com/IvanChernomyrdin/video-playlists/internal/shared/errors"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"

	usersPkey     = "users_pkey"
	usersEmailKey = "users_email_key"
)

// UsersRepository хранит пользователей в таблице users (PostgreSQL).
type UsersRepository struct {
	db      *sql.DB
	timeout time.Duration
}

// NewUsersRepository создаёт UsersRepository. timeout <= 0 — без ограничения на запрос.
func NewUsersRepository(db *sql.DB, timeout time.Duration) *UsersRepository {
	return &UsersRepository{db: db, timeout: timeout}
}

func (r *UsersRepository) Create(ctx context.Context, user models.User) error {
	ctx, cancel := withQueryTimeout(ctx, r.timeout)
	defer cancel()

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (user_id, email, password_hash)
		 VALUES ($1,$2,$3)`,
		user.UserID, user.Email, user.PasswordHash,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			// уникальны и email, и user_id: различаем по имени ограничения
			if pgErr.ConstraintName == usersPkey {
				return serr.ErrIDCollision
			}
			return serr.ErrAlreadyExists
		}
		return serr.ErrInternal
	}

	return nil
}

func (r *UsersRepository) GetByEmail(ctx context.Context, email string) (models.User, error) {
	ctx, cancel := withQueryTimeout(ctx, r.timeout)
	defer cancel()

	var u models.User
	err := r.db.QueryRowContext(ctx,
		`SELECT user_id, email, password_hash FROM users WHERE email=$1`,
		email,
	).Scan(&u.UserID, &u.Email, &u.PasswordHash)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, serr.ErrNotFound
		}
		return models.User{}, serr.ErrInternal
	}

	return u, nil
}

func withQueryTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
