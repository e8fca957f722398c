package api

import "net/http"

const welcomeMessage = "Welcome to the Video Playlist API!"

// Home отдаёт приветственную строку.
//
// @Summary      Welcome banner
// @Tags         meta
// @Produce      plain
// @Success      200 {string} string "Welcome to the Video Playlist API!"
// @Router       / [get]
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	w.Header().Set(ContentType, "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(welcomeMessage))
}
