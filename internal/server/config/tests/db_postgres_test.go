package tests

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/IvanChernomyrdin/video-playlists/internal/server/config"
	"github.com/IvanChernomyrdin/video-playlists/internal/server/repository"
	shared "github.com/IvanChernomyrdin/video-playlists/internal/shared/models"
)

// Неверный DSN не должен давать рабочий пул
func TestInit_BadDSN(t *testing.T) {
	cfg := &config.Config{}
	config.ApplyDefaults(cfg)
	cfg.DB.DSN = "postgres://nobody@127.0.0.1:1/none?sslmode=disable&connect_timeout=1"

	err := config.Init(cfg, zap.NewNop().Sugar())
	require.Error(t, err)
}

// Интеграционный тест с настоящей DB
func TestInit_WithDSN(t *testing.T) {
	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_DSN not set; skipping integration test")
	}

	cfg := &config.Config{}
	config.ApplyDefaults(cfg)
	cfg.DB.DSN = dsn
	cfg.Migrations.Enabled = true
	cfg.Migrations.Path = "file://../../../../migrations/postgres"

	require.NoError(t, config.Init(cfg, zap.NewNop().Sugar()))
	db := config.GetDB()
	t.Cleanup(func() { db.Close() })

	var x int
	require.NoError(t, db.QueryRow("SELECT 1").Scan(&x))
	require.Equal(t, 1, x)

	// автосоздание записи принимает userId любой длины, как и файловое хранилище
	ctx := context.Background()
	longID := strings.Repeat("u", 100)
	t.Cleanup(func() { db.Exec(`DELETE FROM playlist_owners WHERE user_id=$1`, longID) })

	repo := repository.NewPlaylistsRepository(db, 5*time.Second)
	require.NoError(t, repo.InitUser(ctx, longID))
	require.NoError(t, repo.CreatePlaylist(ctx, longID, "Rock"))

	data, err := repo.GetUserData(ctx, longID)
	require.NoError(t, err)
	require.Equal(t, shared.UserData{"Rock": {}}, data)
}
