package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgconn"

	serr "github.com/IvanChernomyrdin/video-playlists/internal/shared/errors"
	shared "github.com/IvanChernomyrdin/video-playlists/internal/shared/models"
)

// PlaylistsRepository хранит плейлисты в PostgreSQL:
//   - playlist_owners — у кого есть запись плейлистов;
//   - playlists — имена плейлистов пользователя;
//   - playlist_videos — видео с порядком добавления (position).
type PlaylistsRepository struct {
	db      *sql.DB
	timeout time.Duration
}

// NewPlaylistsRepository создаёт PlaylistsRepository.
func NewPlaylistsRepository(db *sql.DB, timeout time.Duration) *PlaylistsRepository {
	return &PlaylistsRepository{db: db, timeout: timeout}
}

func (r *PlaylistsRepository) InitUser(ctx context.Context, userID string) error {
	ctx, cancel := withQueryTimeout(ctx, r.timeout)
	defer cancel()

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO playlist_owners (user_id)
		 VALUES ($1)
		 ON CONFLICT (user_id) DO NOTHING`,
		userID,
	)
	if err != nil {
		return serr.ErrInternal
	}
	return nil
}

func (r *PlaylistsRepository) GetUserData(ctx context.Context, userID string) (shared.UserData, error) {
	ctx, cancel := withQueryTimeout(ctx, r.timeout)
	defer cancel()

	var exists bool
	if err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM playlist_owners WHERE user_id=$1)`,
		userID,
	).Scan(&exists); err != nil {
		return nil, serr.ErrInternal
	}
	if !exists {
		return nil, serr.ErrNotFound
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT p.name, v.video_id
		 FROM playlists p
		 LEFT JOIN playlist_videos v ON v.playlist_id = p.id
		 WHERE p.user_id=$1
		 ORDER BY p.id, v.position`,
		userID,
	)
	if err != nil {
		return nil, serr.ErrInternal
	}
	defer rows.Close()

	data := shared.UserData{}
	for rows.Next() {
		var (
			name    string
			videoID sql.NullString
		)
		if err := rows.Scan(&name, &videoID); err != nil {
			return nil, serr.ErrInternal
		}
		if _, ok := data[name]; !ok {
			data[name] = []string{}
		}
		if videoID.Valid {
			data[name] = append(data[name], videoID.String)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, serr.ErrInternal
	}

	return data, nil
}

func (r *PlaylistsRepository) CreatePlaylist(ctx context.Context, userID, name string) error {
	ctx, cancel := withQueryTimeout(ctx, r.timeout)
	defer cancel()

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO playlists (user_id, name) VALUES ($1,$2)`,
		userID, name,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgUniqueViolation:
				return serr.ErrAlreadyExists
			case pgForeignKeyViolation: // нет записи в playlist_owners
				return serr.ErrNotFound
			}
		}
		return serr.ErrInternal
	}
	return nil
}

func (r *PlaylistsRepository) DeletePlaylist(ctx context.Context, userID, name string) error {
	ctx, cancel := withQueryTimeout(ctx, r.timeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx,
		`DELETE FROM playlists WHERE user_id=$1 AND name=$2`,
		userID, name,
	)
	if err != nil {
		return serr.ErrInternal
	}

	n, err := res.RowsAffected()
	if err != nil {
		return serr.ErrInternal
	}
	if n == 0 {
		return serr.ErrNotFound
	}
	return nil
}

func (r *PlaylistsRepository) AddVideo(ctx context.Context, userID, name, videoID string) error {
	ctx, cancel := withQueryTimeout(ctx, r.timeout)
	defer cancel()

	playlistID, err := r.playlistID(ctx, userID, name)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO playlist_videos (playlist_id, video_id)
		 VALUES ($1,$2)
		 ON CONFLICT (playlist_id, video_id) DO NOTHING`,
		playlistID, videoID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		// плейлист удалили между запросами
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return serr.ErrNotFound
		}
		return serr.ErrInternal
	}
	return nil
}

func (r *PlaylistsRepository) RemoveVideo(ctx context.Context, userID, name, videoID string) error {
	ctx, cancel := withQueryTimeout(ctx, r.timeout)
	defer cancel()

	playlistID, err := r.playlistID(ctx, userID, name)
	if err != nil {
		return err
	}

	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM playlist_videos WHERE playlist_id=$1 AND video_id=$2`,
		playlistID, videoID,
	); err != nil {
		return serr.ErrInternal
	}
	return nil
}

func (r *PlaylistsRepository) playlistID(ctx context.Context, userID, name string) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx,
		`SELECT id FROM playlists WHERE user_id=$1 AND name=$2`,
		userID, name,
	).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, serr.ErrNotFound
		}
		return 0, serr.ErrInternal
	}
	return id, nil
}
