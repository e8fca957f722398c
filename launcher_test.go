package main

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// сервер поднимается не сразу: первые ответы 503
func TestWaitReady_PollsUntilOK(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/", r.URL.Path)
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte("Welcome to the Video Playlist API!"))
	}))
	defer srv.Close()

	require.NoError(t, waitReady(srv.URL, 5*time.Second))
	require.GreaterOrEqual(t, calls.Load(), int32(3))
}

func TestWaitReady_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	err := waitReady(srv.URL, 300*time.Millisecond)
	require.Error(t, err)
	require.Contains(t, err.Error(), "500")
}

func TestClientHint(t *testing.T) {
	hint := clientHint("linux", "playlists", "http://127.0.0.1:4000")
	require.Contains(t, hint, "./playlists signup")
	require.NotContains(t, hint, "PLAYLISTS_SERVER")

	hint = clientHint("linux", "playlists", "http://127.0.0.1:8081")
	require.Contains(t, hint, "export PLAYLISTS_SERVER=http://127.0.0.1:8081")

	hint = clientHint("windows", "playlists.exe", "http://127.0.0.1:8081")
	require.Contains(t, hint, `.\playlists.exe signup`)
	require.Contains(t, hint, `$env:PLAYLISTS_SERVER="http://127.0.0.1:8081"`)
}
