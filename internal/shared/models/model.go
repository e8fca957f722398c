package models

// UserData — плейлисты одного пользователя: имя плейлиста -> упорядоченный список videoId.
//
// Используется в:
//
//	GET /user/{userId}/data
//
// Внутри одного плейлиста videoId не повторяются.
type UserData map[string][]string

// CredentialsRequest — тело запросов регистрации и входа.
//
// Используется в:
//
//	POST /signup
//	POST /login
type CredentialsRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserIDResponse — ответ регистрации и входа.
//
// Токены не выдаются: клиент сам запоминает userId
// и передаёт его в последующих запросах.
type UserIDResponse struct {
	UserID string `json:"userId"`
}

// PlaylistRequest — запрос создания или удаления плейлиста.
//
// Используется в:
//
//	POST /playlist
//	DELETE /playlist
type PlaylistRequest struct {
	UserID       string `json:"userId" validate:"required"`
	PlaylistName string `json:"playlistName" validate:"required"`
}

// EditPlaylistRequest — запрос добавления/удаления видео в плейлисте.
//
// Используется в:
//
//	PUT /playlist
//
// Action: "add" | "remove". Значение Action проверяет сервисный слой,
// чтобы сначала отдать 404 на несуществующий плейлист.
type EditPlaylistRequest struct {
	UserID       string `json:"userId" validate:"required"`
	PlaylistName string `json:"playlistName" validate:"required"`
	Action       string `json:"action"`
	VideoID      string `json:"videoId" validate:"required"`
}

// MessageResponse — успешный ответ операций над плейлистами.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse — стандартный формат ошибки API.
type ErrorResponse struct {
	Error string `json:"error"`
}
