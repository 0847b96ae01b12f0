package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/tablero-app/bitacora/internal/db"
	"github.com/tablero-app/bitacora/internal/domain"
)

// sessionColumns is the canonical SELECT column list for work_sessions.
const sessionColumns = `id, board_id, bitacora_id, date, start_time, end_time,
		duration_min, tasks_completed, note, work_type, created_at, updated_at`

// SQLiteSessionRepo implements SessionRepo over SQLite.
type SQLiteSessionRepo struct {
	db db.DBTX
}

// NewSQLiteSessionRepo creates a new SQLiteSessionRepo.
func NewSQLiteSessionRepo(dbtx db.DBTX) *SQLiteSessionRepo {
	return &SQLiteSessionRepo{db: dbtx}
}

func (r *SQLiteSessionRepo) Create(ctx context.Context, s *domain.WorkSession) error {
	query := `INSERT INTO work_sessions (` + sessionColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.BoardID,
		nullableStringToValue(s.BitacoraID),
		s.Date.Format(dateLayout),
		s.StartTime.String(),
		s.EndTime.String(),
		s.DurationMin,
		s.TasksCompleted,
		s.Note,
		s.WorkType,
		s.CreatedAt.Format(time.RFC3339),
		s.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting work session: %w", err)
	}
	return nil
}

func (r *SQLiteSessionRepo) GetByID(ctx context.Context, id string) (*domain.WorkSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM work_sessions WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	s, err := scanSession(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("work session: %w", ErrNotFound)
		}
		return nil, err
	}
	return s, nil
}

func (r *SQLiteSessionRepo) ListByBoard(ctx context.Context, boardID string) ([]*domain.WorkSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM work_sessions WHERE board_id = ? ORDER BY date, start_time`
	return r.list(ctx, query, boardID)
}

func (r *SQLiteSessionRepo) ListByBitacora(ctx context.Context, bitacoraID string) ([]*domain.WorkSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM work_sessions WHERE bitacora_id = ? ORDER BY date, start_time`
	return r.list(ctx, query, bitacoraID)
}

func (r *SQLiteSessionRepo) Update(ctx context.Context, s *domain.WorkSession) error {
	query := `UPDATE work_sessions SET board_id = ?, bitacora_id = ?, date = ?, start_time = ?,
		end_time = ?, duration_min = ?, tasks_completed = ?, note = ?, work_type = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		s.BoardID,
		nullableStringToValue(s.BitacoraID),
		s.Date.Format(dateLayout),
		s.StartTime.String(),
		s.EndTime.String(),
		s.DurationMin,
		s.TasksCompleted,
		s.Note,
		s.WorkType,
		s.UpdatedAt.Format(time.RFC3339),
		s.ID,
	)
	if err != nil {
		return fmt.Errorf("updating work session: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("work session: %w", ErrNotFound)
	}
	return nil
}

func (r *SQLiteSessionRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM work_sessions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting work session: %w", err)
	}
	return nil
}

func (r *SQLiteSessionRepo) list(ctx context.Context, query string, args ...any) ([]*domain.WorkSession, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing work sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*domain.WorkSession
	for rows.Next() {
		s, err := scanSession(rows.Scan)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating work sessions: %w", err)
	}
	return sessions, nil
}

func scanSession(scan func(...any) error) (*domain.WorkSession, error) {
	var s domain.WorkSession
	var bitacoraID sql.NullString
	var dateStr, startStr, endStr, createdAtStr, updatedAtStr string

	err := scan(
		&s.ID, &s.BoardID, &bitacoraID, &dateStr, &startStr, &endStr,
		&s.DurationMin, &s.TasksCompleted, &s.Note, &s.WorkType, &createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning work session: %w", err)
	}

	s.BitacoraID = nullStringToPtr(bitacoraID)

	s.Date, err = time.Parse(dateLayout, dateStr)
	if err != nil {
		return nil, fmt.Errorf("parsing date: %w", err)
	}
	s.StartTime, err = domain.ParseTimeOfDay(startStr)
	if err != nil {
		return nil, fmt.Errorf("parsing start_time: %w", err)
	}
	s.EndTime, err = domain.ParseTimeOfDay(endStr)
	if err != nil {
		return nil, fmt.Errorf("parsing end_time: %w", err)
	}
	s.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	s.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &s, nil
}
