package tests

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/IvanChernomyrdin/video-playlists/internal/agent/cli"
	"github.com/IvanChernomyrdin/video-playlists/internal/agent/config"
	shared "github.com/IvanChernomyrdin/video-playlists/internal/shared/models"
)

func loggedIn(t *testing.T, userID string) string {
	t.Helper()
	p := credsFile(t)
	require.NoError(t, config.Save(p, &config.Credentials{UserID: userID}))
	return p
}

func TestPlaylist_FullFlow(t *testing.T) {
	fs, srv := newFakeServer(t)
	credsPath := loggedIn(t, "ab12cd34")

	out, err := runRoot(t, srv.URL, credsPath, "playlist", "create", "Rock")
	require.NoError(t, err)
	require.Equal(t, "Playlist added.\n", out)

	out, err = runRoot(t, srv.URL, credsPath, "playlist", "add", "Rock", "v1")
	require.NoError(t, err)
	require.Equal(t, "Playlist updated.\n", out)

	_, err = runRoot(t, srv.URL, credsPath, "playlist", "add", "Rock", "v2")
	require.NoError(t, err)
	_, err = runRoot(t, srv.URL, credsPath, "playlist", "create", "Jazz")
	require.NoError(t, err)

	out, err = runRoot(t, srv.URL, credsPath, "data")
	require.NoError(t, err)
	require.Equal(t, "Jazz (0)\nRock (2)\n  v1\n  v2\n", out)

	_, err = runRoot(t, srv.URL, credsPath, "playlist", "remove", "Rock", "v1")
	require.NoError(t, err)

	out, err = runRoot(t, srv.URL, credsPath, "data", "--json")
	require.NoError(t, err)
	var data shared.UserData
	require.NoError(t, json.Unmarshal([]byte(out), &data))
	require.Equal(t, shared.UserData{"Rock": {"v2"}, "Jazz": {}}, data)

	out, err = runRoot(t, srv.URL, credsPath, "playlist", "delete", "Jazz")
	require.NoError(t, err)
	require.Equal(t, "Playlist deleted.\n", out)

	require.Equal(t, "ab12cd34", fs.lastUser)
}

func TestPlaylist_ServerError_IsReturned(t *testing.T) {
	_, srv := newFakeServer(t)
	credsPath := loggedIn(t, "ab12cd34")

	_, err := runRoot(t, srv.URL, credsPath, "playlist", "delete", "Missing")
	require.EqualError(t, err, "Playlist not found.")

	_, err = runRoot(t, srv.URL, credsPath, "playlist", "add", "Missing", "v1")
	require.EqualError(t, err, "Playlist not found.")
}

func TestPlaylist_UserFlagOverridesSavedCredentials(t *testing.T) {
	fs, srv := newFakeServer(t)
	credsPath := loggedIn(t, "saved000")

	_, err := runRoot(t, srv.URL, credsPath, "--user", "other000", "playlist", "create", "Rock")
	require.NoError(t, err)
	require.Equal(t, "other000", fs.lastUser)

	_, err = runRoot(t, srv.URL, credsPath, "data")
	require.NoError(t, err)
	require.Equal(t, "saved000", fs.lastUser)
}

func TestPlaylist_NotLoggedIn(t *testing.T) {
	_, srv := newFakeServer(t)

	_, err := runRoot(t, srv.URL, credsFile(t), "playlist", "create", "Rock")
	require.ErrorIs(t, err, cli.ErrNotLoggedIn)

	_, err = runRoot(t, srv.URL, credsFile(t), "data")
	require.ErrorIs(t, err, cli.ErrNotLoggedIn)
}

func TestPlaylist_WrongArgCount(t *testing.T) {
	_, srv := newFakeServer(t)
	credsPath := loggedIn(t, "ab12cd34")

	_, err := runRoot(t, srv.URL, credsPath, "playlist", "add", "Rock")
	require.Error(t, err)
}

func TestData_EmptyPrintsHint(t *testing.T) {
	_, srv := newFakeServer(t)

	out, err := runRoot(t, srv.URL, loggedIn(t, "ab12cd34"), "data")
	require.NoError(t, err)
	require.Contains(t, out, "no playlists")
}
