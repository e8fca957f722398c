// HTTP-хендлеры регистрации и входа
package api

import (
	"errors"
	"net/http"

	serr "github.com/IvanChernomyrdin/video-playlists/internal/shared/errors"
	shared "github.com/IvanChernomyrdin/video-playlists/internal/shared/models"
)

const (
	msgCredentialsRequired = "Email and password are required."
	msgUserExists          = "User already exists."
	msgUserNotFound        = "User not found."
	msgIncorrectPassword   = "Incorrect password."
)

// Signup обрабатывает регистрацию пользователя.
//
// Ответы:
//   - 200 OK: регистрация успешна, в теле userId;
//   - 400 Bad Request: неверный JSON или нет email/пароля;
//   - 409 Conflict: пользователь уже существует;
//   - 500 Internal Server Error: прочие ошибки.
//
// @Summary      Sign up
// @Description  Registers a new user and returns the generated userId.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body models.CredentialsRequest true "Credentials"
// @Success      200 {object} models.UserIDResponse
// @Failure      400 {object} models.ErrorResponse "Missing fields or bad JSON"
// @Failure      409 {object} models.ErrorResponse "User already exists"
// @Failure      500 {object} models.ErrorResponse "Internal server error"
// @Router       /signup [post]
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var req shared.CredentialsRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, http.StatusBadRequest, msgCredentialsRequired)
		return
	}

	id, err := h.Svc.Auth.Signup(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrInvalidInput):
			WriteError(w, http.StatusBadRequest, msgCredentialsRequired)
		case errors.Is(err, serr.ErrAlreadyExists):
			WriteError(w, http.StatusConflict, msgUserExists)
		default:
			h.internalError(w, "signup", err)
		}
		return
	}

	WriteJSON(w, http.StatusOK, shared.UserIDResponse{UserID: id})
}

// Login проверяет email и пароль и возвращает userId.
//
// Наличие полей не проверяется: пустой email просто не найдётся.
//
// Ответы:
//   - 200 OK: успешный вход;
//   - 400 Bad Request: неверный JSON;
//   - 401 Unauthorized: неверный пароль;
//   - 404 Not Found: пользователя нет;
//   - 500 Internal Server Error: прочие ошибки.
//
// @Summary      Log in
// @Description  Verifies credentials and returns the userId.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body models.CredentialsRequest true "Credentials"
// @Success      200 {object} models.UserIDResponse
// @Failure      400 {object} models.ErrorResponse "Bad JSON"
// @Failure      401 {object} models.ErrorResponse "Incorrect password"
// @Failure      404 {object} models.ErrorResponse "User not found"
// @Failure      500 {object} models.ErrorResponse "Internal server error"
// @Router       /login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req shared.CredentialsRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	id, err := h.Svc.Auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrNotFound):
			WriteError(w, http.StatusNotFound, msgUserNotFound)
		case errors.Is(err, serr.ErrInvalidCredentials):
			WriteError(w, http.StatusUnauthorized, msgIncorrectPassword)
		default:
			h.internalError(w, "login", err)
		}
		return
	}

	WriteJSON(w, http.StatusOK, shared.UserIDResponse{UserID: id})
}
