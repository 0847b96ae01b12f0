package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/tablero-app/bitacora/internal/db"
	"github.com/tablero-app/bitacora/internal/domain"
)

// SQLiteBoardRepo implements BoardRepo over SQLite.
type SQLiteBoardRepo struct {
	db db.DBTX
}

// NewSQLiteBoardRepo creates a new SQLiteBoardRepo.
func NewSQLiteBoardRepo(dbtx db.DBTX) *SQLiteBoardRepo {
	return &SQLiteBoardRepo{db: dbtx}
}

func (r *SQLiteBoardRepo) Create(ctx context.Context, b *domain.Board) error {
	query := `INSERT INTO boards (id, name, bitacora_id, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		b.ID,
		b.Name,
		nullableStringToValue(b.BitacoraID),
		b.CreatedAt.Format(time.RFC3339),
		b.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting board: %w", err)
	}
	return nil
}

func (r *SQLiteBoardRepo) GetByID(ctx context.Context, id string) (*domain.Board, error) {
	query := `SELECT id, name, bitacora_id, created_at, updated_at FROM boards WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	b, err := scanBoard(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("board: %w", ErrNotFound)
		}
		return nil, err
	}
	return b, nil
}

func (r *SQLiteBoardRepo) List(ctx context.Context) ([]*domain.Board, error) {
	query := `SELECT id, name, bitacora_id, created_at, updated_at FROM boards ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing boards: %w", err)
	}
	defer rows.Close()

	var result []*domain.Board
	for rows.Next() {
		b, err := scanBoard(rows.Scan)
		if err != nil {
			return nil, err
		}
		result = append(result, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating boards: %w", err)
	}
	return result, nil
}

func (r *SQLiteBoardRepo) Update(ctx context.Context, b *domain.Board) error {
	query := `UPDATE boards SET name = ?, bitacora_id = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		b.Name,
		nullableStringToValue(b.BitacoraID),
		b.UpdatedAt.Format(time.RFC3339),
		b.ID,
	)
	if err != nil {
		return fmt.Errorf("updating board: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("board: %w", ErrNotFound)
	}
	return nil
}

func scanBoard(scan func(...any) error) (*domain.Board, error) {
	var b domain.Board
	var bitacoraID sql.NullString
	var createdAtStr, updatedAtStr string

	if err := scan(&b.ID, &b.Name, &bitacoraID, &createdAtStr, &updatedAtStr); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning board: %w", err)
	}

	b.BitacoraID = nullStringToPtr(bitacoraID)

	var err error
	b.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	b.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &b, nil
}
