package tests

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/IvanChernomyrdin/video-playlists/internal/agent/api"
	shared "github.com/IvanChernomyrdin/video-playlists/internal/shared/models"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestSignupAndLogin_ReturnUserID(t *testing.T) {
	mux := http.NewServeMux()
	for _, path := range []string{"/signup", "/login"} {
		mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)

			var req shared.CredentialsRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			require.Equal(t, "a@b.c", req.Email)
			require.Equal(t, "pw", req.Password)

			writeJSON(w, http.StatusOK, shared.UserIDResponse{UserID: "ab12cd34"})
		})
	}

	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := api.NewClient(srv.URL, false)

	resp, err := c.Signup("a@b.c", "pw")
	require.NoError(t, err)
	require.Equal(t, "ab12cd34", resp.UserID)

	resp, err = c.Login("a@b.c", "pw")
	require.NoError(t, err)
	require.Equal(t, "ab12cd34", resp.UserID)
}

func TestLogin_WrongPassword_Returns401(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, shared.ErrorResponse{Error: "Incorrect password."})
	}))
	defer srv.Close()

	_, err := api.NewClient(srv.URL, false).Login("a@b.c", "bad")
	require.EqualError(t, err, "Incorrect password.")
	require.Equal(t, http.StatusUnauthorized, api.StatusCode(err))
}

func TestUserData_EscapesUserID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/user/a%2Fb/data", r.URL.EscapedPath())
		writeJSON(w, http.StatusOK, shared.UserData{"Rock": {"v1", "v2"}})
	}))
	defer srv.Close()

	data, err := api.NewClient(srv.URL, false).UserData("a/b")
	require.NoError(t, err)
	require.Equal(t, shared.UserData{"Rock": {"v1", "v2"}}, data)
}

func TestPlaylistMethods_SendExpectedRequests(t *testing.T) {
	type seen struct {
		method string
		body   map[string]string
	}
	var got []seen

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/playlist", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		got = append(got, seen{method: r.Method, body: body})

		writeJSON(w, http.StatusOK, shared.MessageResponse{Message: "ok " + r.Method})
	}))
	defer srv.Close()

	c := api.NewClient(srv.URL, false)

	msg, err := c.CreatePlaylist("u1", "Rock")
	require.NoError(t, err)
	require.Equal(t, "ok POST", msg)

	msg, err = c.EditPlaylist("u1", "Rock", "add", "v1")
	require.NoError(t, err)
	require.Equal(t, "ok PUT", msg)

	msg, err = c.DeletePlaylist("u1", "Rock")
	require.NoError(t, err)
	require.Equal(t, "ok DELETE", msg)

	require.Equal(t, []seen{
		{method: http.MethodPost, body: map[string]string{"userId": "u1", "playlistName": "Rock"}},
		{method: http.MethodPut, body: map[string]string{"userId": "u1", "playlistName": "Rock", "action": "add", "videoId": "v1"}},
		{method: http.MethodDelete, body: map[string]string{"userId": "u1", "playlistName": "Rock"}},
	}, got)
}
