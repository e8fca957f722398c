package tests

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	serr "github.com/IvanChernomyrdin/video-playlists/internal/shared/errors"
	shared "github.com/IvanChernomyrdin/video-playlists/internal/shared/models"
)

func TestHandler_Home(t *testing.T) {
	t.Parallel()

	h, _, _ := NewTestHandler(t)

	rec := do(h.Home, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "Welcome to the Video Playlist API!", rec.Body.String())
}

func TestHandler_GetUserData(t *testing.T) {
	t.Parallel()

	h, _, playlists := NewTestHandler(t)

	playlists.EXPECT().GetUserData(gomock.Any(), "U1").
		Return(shared.UserData{"Rock": {"v1", "v2"}, "Jazz": {}}, nil)

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/user/U1/data", nil), "userId", "U1")
	rec := httptest.NewRecorder()
	h.GetUserData(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"Rock":["v1","v2"],"Jazz":[]}`, rec.Body.String())
}

func TestHandler_GetUserData_NotFound(t *testing.T) {
	t.Parallel()

	h, _, playlists := NewTestHandler(t)

	playlists.EXPECT().GetUserData(gomock.Any(), "UNKNOWN").Return(nil, serr.ErrNotFound)

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/user/UNKNOWN/data", nil), "userId", "UNKNOWN")
	rec := httptest.NewRecorder()
	h.GetUserData(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "User data not found.", errorBody(t, rec))
}

func TestHandler_CreatePlaylist(t *testing.T) {
	t.Parallel()

	h, _, playlists := NewTestHandler(t)

	playlists.EXPECT().InitUser(gomock.Any(), "U1").Return(nil).Times(2)
	gomock.InOrder(
		playlists.EXPECT().CreatePlaylist(gomock.Any(), "U1", "Rock").Return(nil),
		playlists.EXPECT().CreatePlaylist(gomock.Any(), "U1", "Rock").Return(serr.ErrAlreadyExists),
	)

	body := `{"userId":"U1","playlistName":"Rock"}`

	rec := do(h.CreatePlaylist, http.MethodPost, "/playlist", body)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "Playlist added.", messageBody(t, rec))

	rec = do(h.CreatePlaylist, http.MethodPost, "/playlist", body)
	require.Equal(t, http.StatusConflict, rec.Code)
	require.Equal(t, "Playlist already exists.", errorBody(t, rec))
}

func TestHandler_CreatePlaylist_BadInput(t *testing.T) {
	t.Parallel()

	h, _, _ := NewTestHandler(t)

	rec := do(h.CreatePlaylist, http.MethodPost, "/playlist", `{"userId":"U1"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(h.CreatePlaylist, http.MethodPost, "/playlist", `{"userId":`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "bad json", errorBody(t, rec))
}

func TestHandler_DeletePlaylist(t *testing.T) {
	t.Parallel()

	h, _, playlists := NewTestHandler(t)

	gomock.InOrder(
		playlists.EXPECT().DeletePlaylist(gomock.Any(), "U1", "Rock").Return(nil),
		playlists.EXPECT().DeletePlaylist(gomock.Any(), "U1", "Rock").Return(serr.ErrNotFound),
	)

	body := `{"userId":"U1","playlistName":"Rock"}`

	rec := do(h.DeletePlaylist, http.MethodDelete, "/playlist", body)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "Playlist deleted.", messageBody(t, rec))

	rec = do(h.DeletePlaylist, http.MethodDelete, "/playlist", body)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "Playlist not found.", errorBody(t, rec))
}

func TestHandler_EditPlaylist(t *testing.T) {
	t.Parallel()

	h, _, playlists := NewTestHandler(t)

	playlists.EXPECT().AddVideo(gomock.Any(), "U1", "Rock", "v1").Return(nil)
	playlists.EXPECT().RemoveVideo(gomock.Any(), "U1", "Rock", "v1").Return(nil)
	playlists.EXPECT().AddVideo(gomock.Any(), "U1", "Nope", "v1").Return(serr.ErrNotFound)

	rec := do(h.EditPlaylist, http.MethodPut, "/playlist", `{"userId":"U1","playlistName":"Rock","action":"add","videoId":"v1"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "Playlist updated.", messageBody(t, rec))

	rec = do(h.EditPlaylist, http.MethodPut, "/playlist", `{"userId":"U1","playlistName":"Rock","action":"remove","videoId":"v1"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(h.EditPlaylist, http.MethodPut, "/playlist", `{"userId":"U1","playlistName":"Nope","action":"add","videoId":"v1"}`)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "Playlist not found.", errorBody(t, rec))
}

func TestHandler_EditPlaylist_InvalidAction(t *testing.T) {
	t.Parallel()

	h, _, playlists := NewTestHandler(t)

	playlists.EXPECT().GetUserData(gomock.Any(), "U1").Return(shared.UserData{"Rock": {}}, nil).Times(2)

	rec := do(h.EditPlaylist, http.MethodPut, "/playlist", `{"userId":"U1","playlistName":"Rock","action":"shuffle","videoId":"v1"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Invalid action.", errorBody(t, rec))

	// на отсутствующий плейлист 404 важнее неизвестного action
	rec = do(h.EditPlaylist, http.MethodPut, "/playlist", `{"userId":"U1","playlistName":"Jazz","action":"shuffle","videoId":"v1"}`)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "Playlist not found.", errorBody(t, rec))
}

func TestHandler_EditPlaylist_MissingVideo(t *testing.T) {
	t.Parallel()

	h, _, _ := NewTestHandler(t)

	rec := do(h.EditPlaylist, http.MethodPut, "/playlist", `{"userId":"U1","playlistName":"Rock","action":"add"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotEqual(t, "Invalid action.", errorBody(t, rec))
}
