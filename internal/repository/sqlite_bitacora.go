package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/tablero-app/bitacora/internal/db"
	"github.com/tablero-app/bitacora/internal/domain"
)

// SQLiteBitacoraRepo implements BitacoraRepo over SQLite.
type SQLiteBitacoraRepo struct {
	db db.DBTX
}

// NewSQLiteBitacoraRepo creates a new SQLiteBitacoraRepo.
func NewSQLiteBitacoraRepo(dbtx db.DBTX) *SQLiteBitacoraRepo {
	return &SQLiteBitacoraRepo{db: dbtx}
}

func (r *SQLiteBitacoraRepo) Create(ctx context.Context, b *domain.Bitacora) error {
	query := `INSERT INTO bitacoras (id, name, created_at, updated_at) VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		b.ID,
		b.Name,
		b.CreatedAt.Format(time.RFC3339),
		b.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting bitacora: %w", err)
	}
	return nil
}

func (r *SQLiteBitacoraRepo) GetByID(ctx context.Context, id string) (*domain.Bitacora, error) {
	query := `SELECT id, name, created_at, updated_at FROM bitacoras WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	var b domain.Bitacora
	var createdAtStr, updatedAtStr string
	if err := row.Scan(&b.ID, &b.Name, &createdAtStr, &updatedAtStr); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("bitacora: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning bitacora: %w", err)
	}
	return populateBitacora(&b, createdAtStr, updatedAtStr)
}

func (r *SQLiteBitacoraRepo) List(ctx context.Context) ([]*domain.Bitacora, error) {
	query := `SELECT id, name, created_at, updated_at FROM bitacoras ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing bitacoras: %w", err)
	}
	defer rows.Close()

	var result []*domain.Bitacora
	for rows.Next() {
		var b domain.Bitacora
		var createdAtStr, updatedAtStr string
		if err := rows.Scan(&b.ID, &b.Name, &createdAtStr, &updatedAtStr); err != nil {
			return nil, fmt.Errorf("scanning bitacora row: %w", err)
		}
		populated, err := populateBitacora(&b, createdAtStr, updatedAtStr)
		if err != nil {
			return nil, err
		}
		result = append(result, populated)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating bitacoras: %w", err)
	}
	return result, nil
}

func populateBitacora(b *domain.Bitacora, createdAtStr, updatedAtStr string) (*domain.Bitacora, error) {
	var err error
	b.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	b.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return b, nil
}
