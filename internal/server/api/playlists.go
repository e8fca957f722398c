package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/IvanChernomyrdin/video-playlists/internal/server/service"
	serr "github.com/IvanChernomyrdin/video-playlists/internal/shared/errors"
	shared "github.com/IvanChernomyrdin/video-playlists/internal/shared/models"
)

const (
	msgUserDataNotFound = "User data not found."
	msgPlaylistExists   = "Playlist already exists."
	msgPlaylistNotFound = "Playlist not found."
	msgInvalidAction    = "Invalid action."

	msgPlaylistFieldsRequired = "userId and playlistName are required."
	msgEditFieldsRequired     = "userId, playlistName and videoId are required."

	msgPlaylistAdded   = "Playlist added."
	msgPlaylistDeleted = "Playlist deleted."
	msgPlaylistUpdated = "Playlist updated."
)

// GetUserData возвращает все плейлисты пользователя.
//
// @Summary      Get user playlists
// @Description  Returns the playlistName -> [videoId] mapping of the user.
// @Tags         playlists
// @Produce      json
// @Param        userId path string true "User ID"
// @Success      200 {object} models.UserData
// @Failure      404 {object} models.ErrorResponse "User data not found"
// @Failure      500 {object} models.ErrorResponse "Internal server error"
// @Router       /user/{userId}/data [get]
func (h *Handler) GetUserData(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	data, err := h.Svc.Playlists.GetUserData(r.Context(), userID)
	if err != nil {
		if errors.Is(err, serr.ErrNotFound) {
			WriteError(w, http.StatusNotFound, msgUserDataNotFound)
			return
		}
		h.internalError(w, "get user data", err)
		return
	}

	WriteJSON(w, http.StatusOK, data)
}

// CreatePlaylist создаёт пустой плейлист.
//
// @Summary      Create playlist
// @Tags         playlists
// @Accept       json
// @Produce      json
// @Param        request body models.PlaylistRequest true "Playlist"
// @Success      200 {object} models.MessageResponse
// @Failure      400 {object} models.ErrorResponse "Missing fields or bad JSON"
// @Failure      404 {object} models.ErrorResponse "User data not found"
// @Failure      409 {object} models.ErrorResponse "Playlist already exists"
// @Failure      500 {object} models.ErrorResponse "Internal server error"
// @Router       /playlist [post]
func (h *Handler) CreatePlaylist(w http.ResponseWriter, r *http.Request) {
	var req shared.PlaylistRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, http.StatusBadRequest, msgPlaylistFieldsRequired)
		return
	}

	err := h.Svc.Playlists.CreatePlaylist(r.Context(), req.UserID, req.PlaylistName)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrInvalidInput):
			WriteError(w, http.StatusBadRequest, msgPlaylistFieldsRequired)
		case errors.Is(err, serr.ErrAlreadyExists):
			WriteError(w, http.StatusConflict, msgPlaylistExists)
		case errors.Is(err, serr.ErrNotFound):
			WriteError(w, http.StatusNotFound, msgUserDataNotFound)
		default:
			h.internalError(w, "create playlist", err)
		}
		return
	}

	WriteJSON(w, http.StatusOK, shared.MessageResponse{Message: msgPlaylistAdded})
}

// DeletePlaylist удаляет плейлист вместе с видео.
//
// @Summary      Delete playlist
// @Tags         playlists
// @Accept       json
// @Produce      json
// @Param        request body models.PlaylistRequest true "Playlist"
// @Success      200 {object} models.MessageResponse
// @Failure      400 {object} models.ErrorResponse "Missing fields or bad JSON"
// @Failure      404 {object} models.ErrorResponse "Playlist not found"
// @Failure      500 {object} models.ErrorResponse "Internal server error"
// @Router       /playlist [delete]
func (h *Handler) DeletePlaylist(w http.ResponseWriter, r *http.Request) {
	var req shared.PlaylistRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, http.StatusBadRequest, msgPlaylistFieldsRequired)
		return
	}

	err := h.Svc.Playlists.DeletePlaylist(r.Context(), req.UserID, req.PlaylistName)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrInvalidInput):
			WriteError(w, http.StatusBadRequest, msgPlaylistFieldsRequired)
		case errors.Is(err, serr.ErrNotFound):
			WriteError(w, http.StatusNotFound, msgPlaylistNotFound)
		default:
			h.internalError(w, "delete playlist", err)
		}
		return
	}

	WriteJSON(w, http.StatusOK, shared.MessageResponse{Message: msgPlaylistDeleted})
}

// EditPlaylist добавляет или удаляет видео.
//
// action: "add" | "remove". На несуществующий плейлист 404 отдаётся
// раньше, чем 400 на неизвестный action.
//
// @Summary      Add or remove a video
// @Tags         playlists
// @Accept       json
// @Produce      json
// @Param        request body models.EditPlaylistRequest true "Edit"
// @Success      200 {object} models.MessageResponse
// @Failure      400 {object} models.ErrorResponse "Missing fields, bad JSON or invalid action"
// @Failure      404 {object} models.ErrorResponse "Playlist not found"
// @Failure      500 {object} models.ErrorResponse "Internal server error"
// @Router       /playlist [put]
func (h *Handler) EditPlaylist(w http.ResponseWriter, r *http.Request) {
	var req shared.EditPlaylistRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, http.StatusBadRequest, msgEditFieldsRequired)
		return
	}

	err := h.Svc.Playlists.EditPlaylist(r.Context(), req.UserID, req.PlaylistName, service.Action(req.Action), req.VideoID)
	if err != nil {
		switch {
		// ErrInvalidAction оборачивает ErrInvalidInput, проверяем его первым
		case errors.Is(err, serr.ErrInvalidAction):
			WriteError(w, http.StatusBadRequest, msgInvalidAction)
		case errors.Is(err, serr.ErrInvalidInput):
			WriteError(w, http.StatusBadRequest, msgEditFieldsRequired)
		case errors.Is(err, serr.ErrNotFound):
			WriteError(w, http.StatusNotFound, msgPlaylistNotFound)
		default:
			h.internalError(w, "edit playlist", err)
		}
		return
	}

	WriteJSON(w, http.StatusOK, shared.MessageResponse{Message: msgPlaylistUpdated})
}
