package tests

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgconn"
	"github.com/stretchr/testify/require"

	"github.com/IvanChernomyrdin/video-playlists/internal/server/models"
	"github.com/IvanChernomyrdin/video-playlists/internal/server/repository"
	serr "github.com/IvanChernomyrdin/video-playlists/internal/shared/errors"
)

var testUser = models.User{UserID: "AB12CD34", Email: "test@mail.com", PasswordHash: "hash"}

// Успех
func TestUsersRepository_Create_OK(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewUsersRepository(db, 0)

	mock.ExpectExec(`INSERT INTO users`).
		WithArgs("AB12CD34", "test@mail.com", "hash").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Create(context.Background(), testUser))
	require.NoError(t, mock.ExpectationsWereMet())
}

// Такой email уже есть
func TestUsersRepository_Create_AlreadyExists(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewUsersRepository(db, 0)

	mock.ExpectExec(`INSERT INTO users`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

	err := repo.Create(context.Background(), testUser)
	require.ErrorIs(t, err, serr.ErrAlreadyExists)
}

// Такой userId уже выдан
func TestUsersRepository_Create_IDCollision(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewUsersRepository(db, 0)

	mock.ExpectExec(`INSERT INTO users`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_pkey"})

	err := repo.Create(context.Background(), testUser)
	require.ErrorIs(t, err, serr.ErrIDCollision)
}

// Ошибка сервера
func TestUsersRepository_Create_InternalError(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewUsersRepository(db, 0)

	mock.ExpectExec(`INSERT INTO users`).
		WillReturnError(sql.ErrConnDone)

	err := repo.Create(context.Background(), testUser)
	require.ErrorIs(t, err, serr.ErrInternal)
}

// поиск по email
func TestUsersRepository_GetByEmail_OK(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewUsersRepository(db, 0)

	mock.ExpectQuery(`SELECT user_id, email, password_hash FROM users`).
		WithArgs("test@mail.com").
		WillReturnRows(
			sqlmock.NewRows([]string{"user_id", "email", "password_hash"}).
				AddRow("AB12CD34", "test@mail.com", "hash"),
		)

	u, err := repo.GetByEmail(context.Background(), "test@mail.com")
	require.NoError(t, err)
	require.Equal(t, testUser, u)
}

// пользователь не найден
func TestUsersRepository_GetByEmail_NotFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewUsersRepository(db, 0)

	mock.ExpectQuery(`SELECT user_id, email, password_hash FROM users`).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByEmail(context.Background(), "none@mail.com")
	require.ErrorIs(t, err, serr.ErrNotFound)
}

func TestUsersRepository_GetByEmail_InternalError(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewUsersRepository(db, 0)

	mock.ExpectQuery(`SELECT user_id, email, password_hash FROM users`).
		WillReturnError(sql.ErrConnDone)

	_, err := repo.GetByEmail(context.Background(), "test@mail.com")
	require.ErrorIs(t, err, serr.ErrInternal)
}
