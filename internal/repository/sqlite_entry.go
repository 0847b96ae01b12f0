package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/tablero-app/bitacora/internal/db"
	"github.com/tablero-app/bitacora/internal/domain"
)

const entryColumns = `id, task_id, bitacora_id, xp_awarded, impact_score, economic_value, reasoning, created_at`

// SQLiteEntryRepo implements EntryRepo over SQLite. Entries are
// append-only; the schema's unique constraint on task_id backs the
// one-entry-per-task invariant.
type SQLiteEntryRepo struct {
	db db.DBTX
}

// NewSQLiteEntryRepo creates a new SQLiteEntryRepo.
func NewSQLiteEntryRepo(dbtx db.DBTX) *SQLiteEntryRepo {
	return &SQLiteEntryRepo{db: dbtx}
}

func (r *SQLiteEntryRepo) Create(ctx context.Context, e *domain.BitacoraEntry) error {
	query := `INSERT INTO bitacora_entries (` + entryColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.TaskID,
		e.BitacoraID,
		e.XPAwarded,
		e.ImpactScore,
		nullableFloatToValue(e.EconomicValue),
		e.Reasoning,
		e.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting bitacora entry: %w", err)
	}
	return nil
}

func (r *SQLiteEntryRepo) GetByTask(ctx context.Context, taskID string) (*domain.BitacoraEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM bitacora_entries WHERE task_id = ?`
	row := r.db.QueryRowContext(ctx, query, taskID)

	e, err := scanEntry(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("bitacora entry: %w", ErrNotFound)
		}
		return nil, err
	}
	return e, nil
}

func (r *SQLiteEntryRepo) ListByBitacora(ctx context.Context, bitacoraID string) ([]*domain.BitacoraEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM bitacora_entries WHERE bitacora_id = ? ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query, bitacoraID)
	if err != nil {
		return nil, fmt.Errorf("listing bitacora entries: %w", err)
	}
	defer rows.Close()

	var entries []*domain.BitacoraEntry
	for rows.Next() {
		e, err := scanEntry(rows.Scan)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating bitacora entries: %w", err)
	}
	return entries, nil
}

func (r *SQLiteEntryRepo) ExistsForTask(ctx context.Context, taskID string) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM bitacora_entries WHERE task_id = ?`, taskID).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("checking entry existence: %w", err)
	}
	return n > 0, nil
}

func scanEntry(scan func(...any) error) (*domain.BitacoraEntry, error) {
	var e domain.BitacoraEntry
	var economicValue sql.NullFloat64
	var createdAtStr string

	err := scan(&e.ID, &e.TaskID, &e.BitacoraID, &e.XPAwarded, &e.ImpactScore, &economicValue, &e.Reasoning, &createdAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning bitacora entry: %w", err)
	}

	e.EconomicValue = nullFloatToPtr(economicValue)
	e.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &e, nil
}
