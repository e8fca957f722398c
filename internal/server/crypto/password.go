// Package crypto содержит криптографические примитивы сервера:
// хэширование паролей (bcrypt, argon2id) и генерацию идентификаторов пользователей.
package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/bcrypt"
)

const argon2Prefix = "argon2id$"

// bcryptMaxPasswordLen — bcrypt учитывает только первые 72 байта пароля.
const bcryptMaxPasswordLen = 72

// ErrEmptyPassword — хэшировать пустой пароль нельзя.
var ErrEmptyPassword = errors.New("empty password")

// Hasher хэширует пароль в строку, которую потом понимает VerifyPassword.
type Hasher interface {
	Hash(password string) (string, error)
}

// BcryptHasher — bcrypt с фиксированным cost (по умолчанию 10).
type BcryptHasher struct {
	Cost int
}

// Hash возвращает bcrypt-хэш вида $2a$10$...
//
// Пароль длиннее 72 байт обрезается, как это делают остальные реализации bcrypt.
func (h BcryptHasher) Hash(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}
	b, err := bcrypt.GenerateFromPassword(bcryptInput(password), h.Cost)
	if err != nil {
		return "", fmt.Errorf("bcrypt: %w", err)
	}
	return string(b), nil
}

// bcryptInput обрезает пароль до bcryptMaxPasswordLen байт.
func bcryptInput(password string) []byte {
	b := []byte(password)
	if len(b) > bcryptMaxPasswordLen {
		b = b[:bcryptMaxPasswordLen]
	}
	return b
}

// Argon2Params — параметры argon2id (password.argon2 в конфиге).
// Сами параметры пишутся в хэш, поэтому проверка от них не зависит.
type Argon2Params struct {
	Time      uint32
	MemoryKiB uint32
	Threads   uint8
	KeyLen    uint32
	SaltLen   uint32
}

// Hash реализует Hasher для argon2id.
func (p Argon2Params) Hash(password string) (string, error) {
	return HashPassword(password, p)
}

// HashPassword возвращает строку формата:
// argon2id$v=19$m=65536,t=3,p=2$<salt_b64>$<hash_b64>
func HashPassword(password string, p Argon2Params) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}

	salt := make([]byte, p.SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("read salt: %w", err)
	}

	hash := argon2.IDKey([]byte(password), salt, p.Time, p.MemoryKiB, p.Threads, p.KeyLen)

	b64Salt := base64.RawStdEncoding.EncodeToString(salt)
	b64Hash := base64.RawStdEncoding.EncodeToString(hash)

	encoded := fmt.Sprintf(
		"argon2id$v=19$m=%d,t=%d,p=%d$%s$%s",
		p.MemoryKiB, p.Time, p.Threads,
		b64Salt, b64Hash,
	)
	return encoded, nil
}

// VerifyPassword сравнивает пароль с сохранённым хэшем.
//
// Формат определяется по префиксу, поэтому смена password.hasher
// не ломает вход для уже зарегистрированных пользователей.
// Ошибка возвращается только для нераспознаваемого хэша.
func VerifyPassword(password, encoded string) (bool, error) {
	if strings.HasPrefix(encoded, argon2Prefix) {
		return verifyArgon2(password, encoded)
	}

	err := bcrypt.CompareHashAndPassword([]byte(encoded), bcryptInput(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("invalid hash format: %w", err)
	}
}

func verifyArgon2(password, encoded string) (bool, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 5 {
		return false, errors.New("invalid hash format")
	}

	// parts[0] = argon2id
	// parts[1] = v=19
	// parts[2] = m=...,t=...,p=...
	// parts[3] = salt
	// parts[4] = hash

	var memory uint32
	var time uint32
	var threads uint8
	if _, err := fmt.Sscanf(parts[2], "m=%d,t=%d,p=%d", &memory, &time, &threads); err != nil {
		return false, errors.New("invalid params format")
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[3])
	if err != nil {
		return false, errors.New("invalid salt")
	}

	wantHash, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false, errors.New("invalid hash")
	}

	got := argon2.IDKey([]byte(password), salt, time, memory, threads, uint32(len(wantHash)))
	return subtle.ConstantTimeCompare(got, wantHash) == 1, nil
}
