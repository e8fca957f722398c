package tests

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/IvanChernomyrdin/video-playlists/internal/server/api"
	"github.com/IvanChernomyrdin/video-playlists/internal/server/config"
	"github.com/IvanChernomyrdin/video-playlists/internal/server/service"
	svcmocks "github.com/IvanChernomyrdin/video-playlists/internal/server/service/mocks"
	"github.com/IvanChernomyrdin/video-playlists/internal/shared/logger"
	shared "github.com/IvanChernomyrdin/video-playlists/internal/shared/models"
)

// NewTestHandler создаёт Handler с моками репозиториев и настоящими сервисами
func NewTestHandler(t *testing.T) (*api.Handler, *svcmocks.MockUsersRepo, *svcmocks.MockPlaylistsRepo) {
	t.Helper()

	ctrl := gomock.NewController(t)
	users := svcmocks.NewMockUsersRepo(ctrl)
	playlists := svcmocks.NewMockPlaylistsRepo(ctrl)

	cfg := &config.Config{}
	config.ApplyDefaults(cfg)
	cfg.Password.Bcrypt.Cost = 4

	svc := service.NewServices(service.Repositories{Users: users, Playlists: playlists}, cfg, nil)
	log := logger.New(logger.Options{Dir: t.TempDir()})

	return api.NewHandler(svc, log), users, playlists
}

func do(h http.HandlerFunc, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, bytes.NewReader([]byte(body)))
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func errorBody(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var resp shared.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Error
}

func messageBody(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var resp shared.MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Message
}
