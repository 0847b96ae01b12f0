package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/tablero-app/bitacora/internal/db"
	"github.com/tablero-app/bitacora/internal/domain"
)

// taskColumns is the canonical SELECT column list for tasks.
const taskColumns = `id, board_id, title, description, category, difficulty, economic_value,
		status, impact_level, impact_score, xp_value, evaluated_by_ai,
		completed_at, created_at, updated_at`

// SQLiteTaskRepo implements TaskRepo over SQLite.
type SQLiteTaskRepo struct {
	db db.DBTX
}

// NewSQLiteTaskRepo creates a new SQLiteTaskRepo.
func NewSQLiteTaskRepo(dbtx db.DBTX) *SQLiteTaskRepo {
	return &SQLiteTaskRepo{db: dbtx}
}

func (r *SQLiteTaskRepo) Create(ctx context.Context, t *domain.Task) error {
	query := `INSERT INTO tasks (` + taskColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.BoardID,
		t.Title,
		t.Description,
		t.Category,
		t.Difficulty,
		nullableFloatToValue(t.EconomicValue),
		string(t.Status),
		string(t.ImpactLevel),
		t.ImpactScore,
		t.XPValue,
		boolToInt(t.EvaluatedByAI),
		nullableTimeToString(t.CompletedAt, time.RFC3339),
		t.CreatedAt.Format(time.RFC3339),
		t.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	t, err := scanTask(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("task: %w", ErrNotFound)
		}
		return nil, err
	}
	return t, nil
}

func (r *SQLiteTaskRepo) ListByBoard(ctx context.Context, boardID string) ([]*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE board_id = ? ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query, boardID)
	if err != nil {
		return nil, fmt.Errorf("listing tasks by board: %w", err)
	}
	defer rows.Close()

	var tasks []*domain.Task
	for rows.Next() {
		t, err := scanTask(rows.Scan)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}
	return tasks, nil
}

func (r *SQLiteTaskRepo) Update(ctx context.Context, t *domain.Task) error {
	query := `UPDATE tasks SET board_id = ?, title = ?, description = ?, category = ?,
		difficulty = ?, economic_value = ?, status = ?, impact_level = ?, impact_score = ?,
		xp_value = ?, evaluated_by_ai = ?, completed_at = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		t.BoardID,
		t.Title,
		t.Description,
		t.Category,
		t.Difficulty,
		nullableFloatToValue(t.EconomicValue),
		string(t.Status),
		string(t.ImpactLevel),
		t.ImpactScore,
		t.XPValue,
		boolToInt(t.EvaluatedByAI),
		nullableTimeToString(t.CompletedAt, time.RFC3339),
		t.UpdatedAt.Format(time.RFC3339),
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("updating task: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("task: %w", ErrNotFound)
	}
	return nil
}

func (r *SQLiteTaskRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}
	return nil
}

func scanTask(scan func(...any) error) (*domain.Task, error) {
	var t domain.Task
	var status, impactLevel string
	var economicValue sql.NullFloat64
	var evaluated int
	var completedAt sql.NullString
	var createdAtStr, updatedAtStr string

	err := scan(
		&t.ID, &t.BoardID, &t.Title, &t.Description, &t.Category, &t.Difficulty, &economicValue,
		&status, &impactLevel, &t.ImpactScore, &t.XPValue, &evaluated,
		&completedAt, &createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning task: %w", err)
	}

	t.Status = domain.TaskStatus(status)
	t.ImpactLevel = domain.ImpactLevel(impactLevel)
	t.EconomicValue = nullFloatToPtr(economicValue)
	t.EvaluatedByAI = intToBool(evaluated)
	t.CompletedAt = parseNullableTime(completedAt, time.RFC3339)

	t.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	t.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &t, nil
}
