package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent; the
// migration set is re-applied on every startup.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// ALTER TABLE statements re-run across versions.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS bitacoras (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS boards (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		bitacora_id TEXT REFERENCES bitacoras(id) ON DELETE SET NULL,
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS tasks (
		id             TEXT PRIMARY KEY,
		board_id       TEXT NOT NULL REFERENCES boards(id) ON DELETE CASCADE,
		title          TEXT NOT NULL,
		description    TEXT NOT NULL DEFAULT '',
		category       TEXT NOT NULL DEFAULT '',
		difficulty     INTEGER NOT NULL DEFAULT 3,
		economic_value REAL,
		status         TEXT NOT NULL DEFAULT 'pending'
		               CHECK(status IN ('pending','completed')),
		impact_level   TEXT NOT NULL DEFAULT '',
		impact_score   INTEGER NOT NULL DEFAULT 0,
		xp_value       INTEGER NOT NULL DEFAULT 0,
		evaluated_by_ai INTEGER NOT NULL DEFAULT 0,
		completed_at   TEXT,
		created_at     TEXT NOT NULL,
		updated_at     TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_tasks_board ON tasks(board_id)`,

	`CREATE TABLE IF NOT EXISTS work_sessions (
		id              TEXT PRIMARY KEY,
		board_id        TEXT NOT NULL REFERENCES boards(id) ON DELETE CASCADE,
		bitacora_id     TEXT REFERENCES bitacoras(id) ON DELETE CASCADE,
		date            TEXT NOT NULL,
		start_time      TEXT NOT NULL,
		end_time        TEXT NOT NULL,
		duration_min    INTEGER NOT NULL CHECK(duration_min > 0),
		tasks_completed INTEGER NOT NULL DEFAULT 0,
		note            TEXT NOT NULL DEFAULT '',
		work_type       TEXT NOT NULL DEFAULT '',
		created_at      TEXT NOT NULL,
		updated_at      TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_sessions_bitacora ON work_sessions(bitacora_id)`,
	`CREATE INDEX IF NOT EXISTS idx_sessions_board ON work_sessions(board_id)`,

	`CREATE TABLE IF NOT EXISTS bitacora_entries (
		id             TEXT PRIMARY KEY,
		task_id        TEXT NOT NULL UNIQUE REFERENCES tasks(id) ON DELETE CASCADE,
		bitacora_id    TEXT NOT NULL REFERENCES bitacoras(id) ON DELETE CASCADE,
		xp_awarded     INTEGER NOT NULL,
		impact_score   INTEGER NOT NULL,
		economic_value REAL,
		reasoning      TEXT NOT NULL DEFAULT '',
		created_at     TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_entries_bitacora ON bitacora_entries(bitacora_id)`,

	`CREATE TABLE IF NOT EXISTS avatars (
		id             TEXT PRIMARY KEY,
		bitacora_id    TEXT NOT NULL UNIQUE REFERENCES bitacoras(id) ON DELETE CASCADE,
		level          INTEGER NOT NULL,
		experience     INTEGER NOT NULL,
		total_hours    REAL NOT NULL,
		total_tasks    INTEGER NOT NULL,
		total_sessions INTEGER NOT NULL,
		rank_name      TEXT NOT NULL,
		rank_tier      INTEGER NOT NULL,
		style_key      TEXT NOT NULL,
		image_ref      TEXT,
		updated_at     TEXT NOT NULL
	)`,
}
