package tests

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/IvanChernomyrdin/video-playlists/internal/server/middleware"
)

func readAllHandler(t *testing.T, gotErr *error) http.Handler {
	t.Helper()

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, *gotErr = io.ReadAll(r.Body)
	})
}

func TestMaxBodyMiddleware(t *testing.T) {
	var err error
	handler := middleware.MaxBodyMiddleware(4)(readAllHandler(t, &err))

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("1234"))
	handler.ServeHTTP(httptest.NewRecorder(), req)
	require.NoError(t, err)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader("12345"))
	handler.ServeHTTP(httptest.NewRecorder(), req)

	var tooLarge *http.MaxBytesError
	require.ErrorAs(t, err, &tooLarge)
}

func TestMaxBodyMiddleware_Disabled(t *testing.T) {
	var err error
	handler := middleware.MaxBodyMiddleware(0)(readAllHandler(t, &err))

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(strings.Repeat("x", 1<<16)))
	handler.ServeHTTP(httptest.NewRecorder(), req)
	require.NoError(t, err)
}
