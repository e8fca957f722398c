// Package api реализует HTTP-слой сервера плейлистов.
//
// Пакет отвечает за:
//   - разбор JSON-тел запросов и проверку обязательных полей (validator);
//   - вызов сервисного слоя;
//   - маппинг доменных ошибок (service/repository) в HTTP-коды и сообщения.
//
// Маршруты регистрируются в пакете internal/server/net/http.
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/IvanChernomyrdin/video-playlists/internal/server/service"
	serr "github.com/IvanChernomyrdin/video-playlists/internal/shared/errors"
	"github.com/IvanChernomyrdin/video-playlists/internal/shared/logger"
	shared "github.com/IvanChernomyrdin/video-playlists/internal/shared/models"
)

// Каждый метод если будет возвращать ответ то будет это делать в JSON
// Вынес Content-Type и JSON для удобства
const (
	JsonContentType string = "application/json"
	ContentType     string = "Content-Type"
)

// Handler агрегирует зависимости HTTP-слоя и предоставляет методы-хендлеры.
//
// Handler содержит:
//   - Svc: сервисный слой (бизнес-логика);
//   - Log: логгер для записи событий и ошибок;
//   - Validate: проверка обязательных полей запросов.
type Handler struct {
	Svc      *service.Services
	Log      *logger.HTTPLogger
	Validate *validator.Validate
}

// NewHandler создаёт экземпляр Handler с переданными зависимостями.
func NewHandler(svc *service.Services, log *logger.HTTPLogger) *Handler {
	return &Handler{
		Svc:      svc,
		Log:      log,
		Validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// WriteJSON пишет v в тело ответа с кодом status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set(ContentType, JsonContentType)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Вспомогательная функция вывода ошибки
func WriteError(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, shared.ErrorResponse{Error: msg})
}

// decodeJSON разбирает тело запроса в dst.
//
// На любую ошибку разбора уже отвечает клиенту и возвращает false.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			WriteError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return false
		}
		WriteError(w, http.StatusBadRequest, serr.ErrBadJSON.Error())
		return false
	}
	return true
}

// internalError логирует причину и отвечает 500 без подробностей.
func (h *Handler) internalError(w http.ResponseWriter, op string, err error) {
	h.Log.Sugar().Errorf("%s failed: %v", op, err)
	WriteError(w, http.StatusInternalServerError, serr.ErrInternal.Error())
}
