package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/tablero-app/bitacora/internal/db"
	"github.com/tablero-app/bitacora/internal/domain"
)

// SQLiteAvatarRepo implements AvatarRepo over SQLite. The avatar is a
// derived record; writers always replace it wholesale via Upsert.
type SQLiteAvatarRepo struct {
	db db.DBTX
}

// NewSQLiteAvatarRepo creates a new SQLiteAvatarRepo.
func NewSQLiteAvatarRepo(dbtx db.DBTX) *SQLiteAvatarRepo {
	return &SQLiteAvatarRepo{db: dbtx}
}

func (r *SQLiteAvatarRepo) GetByBitacora(ctx context.Context, bitacoraID string) (*domain.Avatar, error) {
	query := `SELECT id, bitacora_id, level, experience, total_hours, total_tasks,
		total_sessions, rank_name, rank_tier, style_key, image_ref, updated_at
		FROM avatars WHERE bitacora_id = ?`
	row := r.db.QueryRowContext(ctx, query, bitacoraID)

	var a domain.Avatar
	var imageRef sql.NullString
	var updatedAtStr string

	err := row.Scan(
		&a.ID, &a.BitacoraID, &a.Level, &a.Experience, &a.TotalHours, &a.TotalTasks,
		&a.TotalSessions, &a.RankName, &a.RankTier, &a.StyleKey, &imageRef, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("avatar: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning avatar: %w", err)
	}

	a.ImageRef = nullStringToPtr(imageRef)
	a.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &a, nil
}

func (r *SQLiteAvatarRepo) Upsert(ctx context.Context, a *domain.Avatar) error {
	query := `INSERT INTO avatars (id, bitacora_id, level, experience, total_hours, total_tasks,
		total_sessions, rank_name, rank_tier, style_key, image_ref, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(bitacora_id) DO UPDATE SET
			level = excluded.level,
			experience = excluded.experience,
			total_hours = excluded.total_hours,
			total_tasks = excluded.total_tasks,
			total_sessions = excluded.total_sessions,
			rank_name = excluded.rank_name,
			rank_tier = excluded.rank_tier,
			style_key = excluded.style_key,
			image_ref = excluded.image_ref,
			updated_at = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query,
		a.ID,
		a.BitacoraID,
		a.Level,
		a.Experience,
		a.TotalHours,
		a.TotalTasks,
		a.TotalSessions,
		a.RankName,
		a.RankTier,
		a.StyleKey,
		nullableStringToValue(a.ImageRef),
		a.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("upserting avatar: %w", err)
	}
	return nil
}
