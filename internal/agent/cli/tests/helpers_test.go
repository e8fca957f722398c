package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"slices"
	"sync"
	"testing"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/video-playlists/internal/agent/cli"
	shared "github.com/IvanChernomyrdin/video-playlists/internal/shared/models"
)

// fakeServer — минимальный сервер плейлистов в памяти для одного пользователя.
type fakeServer struct {
	mu        sync.Mutex
	userID    string
	email     string
	password  string
	playlists shared.UserData
	// lastUser — userId из последнего запроса к плейлистам.
	lastUser string
}

func newFakeServer(t *testing.T) (*fakeServer, *httptest.Server) {
	t.Helper()

	fs := &fakeServer{userID: "ab12cd34", playlists: shared.UserData{}}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /signup", func(w http.ResponseWriter, r *http.Request) {
		var req shared.CredentialsRequest
		_ = json.NewDecoder(r.Body).Decode(&req)

		fs.mu.Lock()
		defer fs.mu.Unlock()
		if fs.email == req.Email {
			writeJSON(w, http.StatusConflict, shared.ErrorResponse{Error: "User already exists."})
			return
		}
		fs.email, fs.password = req.Email, req.Password
		writeJSON(w, http.StatusOK, shared.UserIDResponse{UserID: fs.userID})
	})
	mux.HandleFunc("POST /login", func(w http.ResponseWriter, r *http.Request) {
		var req shared.CredentialsRequest
		_ = json.NewDecoder(r.Body).Decode(&req)

		fs.mu.Lock()
		defer fs.mu.Unlock()
		switch {
		case req.Email != fs.email:
			writeJSON(w, http.StatusNotFound, shared.ErrorResponse{Error: "User not found."})
		case req.Password != fs.password:
			writeJSON(w, http.StatusUnauthorized, shared.ErrorResponse{Error: "Incorrect password."})
		default:
			writeJSON(w, http.StatusOK, shared.UserIDResponse{UserID: fs.userID})
		}
	})
	mux.HandleFunc("GET /user/{userId}/data", func(w http.ResponseWriter, r *http.Request) {
		fs.mu.Lock()
		defer fs.mu.Unlock()
		fs.lastUser = r.PathValue("userId")
		writeJSON(w, http.StatusOK, fs.playlists)
	})
	mux.HandleFunc("POST /playlist", func(w http.ResponseWriter, r *http.Request) {
		var req shared.PlaylistRequest
		_ = json.NewDecoder(r.Body).Decode(&req)

		fs.mu.Lock()
		defer fs.mu.Unlock()
		fs.lastUser = req.UserID
		if _, ok := fs.playlists[req.PlaylistName]; ok {
			writeJSON(w, http.StatusConflict, shared.ErrorResponse{Error: "Playlist already exists."})
			return
		}
		fs.playlists[req.PlaylistName] = []string{}
		writeJSON(w, http.StatusOK, shared.MessageResponse{Message: "Playlist added."})
	})
	mux.HandleFunc("DELETE /playlist", func(w http.ResponseWriter, r *http.Request) {
		var req shared.PlaylistRequest
		_ = json.NewDecoder(r.Body).Decode(&req)

		fs.mu.Lock()
		defer fs.mu.Unlock()
		fs.lastUser = req.UserID
		if _, ok := fs.playlists[req.PlaylistName]; !ok {
			writeJSON(w, http.StatusNotFound, shared.ErrorResponse{Error: "Playlist not found."})
			return
		}
		delete(fs.playlists, req.PlaylistName)
		writeJSON(w, http.StatusOK, shared.MessageResponse{Message: "Playlist deleted."})
	})
	mux.HandleFunc("PUT /playlist", func(w http.ResponseWriter, r *http.Request) {
		var req shared.EditPlaylistRequest
		_ = json.NewDecoder(r.Body).Decode(&req)

		fs.mu.Lock()
		defer fs.mu.Unlock()
		fs.lastUser = req.UserID
		videos, ok := fs.playlists[req.PlaylistName]
		if !ok {
			writeJSON(w, http.StatusNotFound, shared.ErrorResponse{Error: "Playlist not found."})
			return
		}
		switch req.Action {
		case "add":
			if !slices.Contains(videos, req.VideoID) {
				videos = append(videos, req.VideoID)
			}
		case "remove":
			videos = slices.DeleteFunc(videos, func(v string) bool { return v == req.VideoID })
		default:
			writeJSON(w, http.StatusBadRequest, shared.ErrorResponse{Error: "Invalid action."})
			return
		}
		fs.playlists[req.PlaylistName] = videos
		writeJSON(w, http.StatusOK, shared.MessageResponse{Message: "Playlist updated."})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return fs, srv
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// runRoot выполняет root-команду с временным файлом учётных данных.
func runRoot(t *testing.T, serverURL, credsPath string, args ...string) (string, error) {
	t.Helper()

	cmd := cli.NewRootCmd("test", "today")
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"--server", serverURL, "--credentials", credsPath}, args...))

	err := cmd.Execute()
	return out.String(), err
}

func credsFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "credentials.json")
}

// stubPassword подменяет интерактивный ввод пароля на время теста.
func stubPassword(t *testing.T, pw string) {
	t.Helper()

	prev := cli.ReadPassword
	cli.ReadPassword = func(_ *cobra.Command, _ bool) (string, error) {
		return pw, nil
	}
	t.Cleanup(func() { cli.ReadPassword = prev })
}
