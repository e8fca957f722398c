package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/IvanChernomyrdin/video-playlists/internal/server/config"
	"github.com/IvanChernomyrdin/video-playlists/internal/server/crypto"
	"github.com/IvanChernomyrdin/video-playlists/internal/server/metrics"
	"github.com/IvanChernomyrdin/video-playlists/internal/server/models"
	serr "github.com/IvanChernomyrdin/video-playlists/internal/shared/errors"
)

// AuthService реализует регистрацию и проверку учётных данных.
//
// Сессии и токены не выдаются: и Signup, и Login возвращают userId,
// который клиент передаёт в запросах к плейлистам.
type AuthService struct {
	users     UsersRepo
	playlists PlaylistsRepo
	log       *zap.SugaredLogger

	hasher        crypto.Hasher
	newID         func() string
	idMaxAttempts int
}

// NewAuthService создаёт AuthService с зависимостями и настройками из конфига.
func NewAuthService(users UsersRepo, playlists PlaylistsRepo, cfg *config.Config, log *zap.SugaredLogger) *AuthService {
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	var hasher crypto.Hasher = crypto.BcryptHasher{Cost: cfg.Password.Bcrypt.Cost}
	if strings.EqualFold(cfg.Password.Hasher, config.HasherArgon2id) {
		hasher = crypto.Argon2Params{
			Time:      cfg.Password.Argon2.Time,
			MemoryKiB: cfg.Password.Argon2.MemoryKiB,
			Threads:   cfg.Password.Argon2.Threads,
			KeyLen:    cfg.Password.Argon2.KeyLen,
			SaltLen:   cfg.Password.Argon2.SaltLen,
		}
	}

	attempts := cfg.Users.IDMaxAttempts
	if attempts <= 0 {
		attempts = 1
	}

	return &AuthService{
		users:         users,
		playlists:     playlists,
		log:           log,
		hasher:        hasher,
		newID:         crypto.NewUserID,
		idMaxAttempts: attempts,
	}
}

// WithIDGenerator подменяет генератор userId (для тестов коллизий).
func (s *AuthService) WithIDGenerator(gen func() string) *AuthService {
	s.newID = gen
	return s
}

// Signup регистрирует нового пользователя.
//
// Валидация: email и пароль обязательны (только проверка на наличие).
//
// Поведение:
//   - email сравнивается как есть, без нормализации;
//   - при коллизии userId генерируется заново (до users.id_max_attempts раз);
//   - для нового пользователя создаётся пустая запись плейлистов.
//
// Возвращает:
//   - userId
//   - ErrInvalidInput при пустых полях или ErrAlreadyExists если email уже зарегистрирован
func (s *AuthService) Signup(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", serr.ErrInvalidInput
	}

	// окончательная проверка email выполняется в Create
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return "", serr.ErrAlreadyExists
	} else if !errors.Is(err, serr.ErrNotFound) {
		return "", err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		s.log.Errorf("hash password: %v", err)
		return "", serr.ErrInternal
	}

	var userID string
	for attempt := 1; ; attempt++ {
		userID = s.newID()
		err = s.users.Create(ctx, models.User{UserID: userID, Email: email, PasswordHash: hash})
		if err == nil {
			break
		}
		if !errors.Is(err, serr.ErrIDCollision) {
			return "", err
		}
		metrics.UserIDCollisionsTotal.Inc()
		s.log.Warnf("user id collision on attempt %d/%d", attempt, s.idMaxAttempts)
		if attempt >= s.idMaxAttempts {
			return "", fmt.Errorf("generate user id: %w", serr.ErrInternal)
		}
	}

	if err := s.playlists.InitUser(ctx, userID); err != nil {
		return "", err
	}

	metrics.SignupsTotal.Inc()
	return userID, nil
}

// Login проверяет email и пароль.
//
// Ошибки:
//   - ErrNotFound — пользователя с таким email нет
//   - ErrInvalidCredentials — пароль не совпал
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, serr.ErrNotFound) {
			metrics.LoginsTotal.WithLabelValues("not_found").Inc()
		}
		return "", err
	}

	ok, err := crypto.VerifyPassword(password, user.PasswordHash)
	if err != nil {
		s.log.Errorf("verify password for %s: %v", user.UserID, err)
		return "", serr.ErrInternal
	}
	if !ok {
		metrics.LoginsTotal.WithLabelValues("bad_password").Inc()
		return "", serr.ErrInvalidCredentials
	}

	metrics.LoginsTotal.WithLabelValues("ok").Inc()
	return user.UserID, nil
}
