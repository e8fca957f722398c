package crypto

import "github.com/google/uuid"

// UserIDLength — длина идентификатора пользователя.
const UserIDLength = 8

const userIDAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// NewUserID возвращает 8-символьный идентификатор из [0-9A-Z].
//
// Случайность берётся из UUID v4. Уникальность не гарантируется:
// коллизию ловит репозиторий (ErrIDCollision), сервис перегенерирует id.
func NewUserID() string {
	u := uuid.New()

	id := make([]byte, UserIDLength)
	for i := range id {
		// два байта на символ, чтобы смещение от модуля было пренебрежимым
		n := uint16(u[2*i])<<8 | uint16(u[2*i+1])
		id[i] = userIDAlphabet[int(n)%len(userIDAlphabet)]
	}
	return string(id)
}
