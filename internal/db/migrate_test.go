package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_CreatesAllTables(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	for _, table := range []string{"bitacoras", "boards", "tasks", "work_sessions", "bitacora_entries", "avatars"} {
		var name string
		err := database.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_Idempotent(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	require.NoError(t, Migrate(database))
	require.NoError(t, Migrate(database))
}

func TestMigrate_EntryTaskUnique(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	mustExec := func(q string, args ...any) {
		t.Helper()
		_, err := database.Exec(q, args...)
		require.NoError(t, err)
	}

	mustExec(`INSERT INTO bitacoras (id, name, created_at, updated_at) VALUES ('bi1', 'x', '2025-01-01T00:00:00Z', '2025-01-01T00:00:00Z')`)
	mustExec(`INSERT INTO boards (id, name, bitacora_id, created_at, updated_at) VALUES ('bo1', 'x', 'bi1', '2025-01-01T00:00:00Z', '2025-01-01T00:00:00Z')`)
	mustExec(`INSERT INTO tasks (id, board_id, title, created_at, updated_at) VALUES ('t1', 'bo1', 'x', '2025-01-01T00:00:00Z', '2025-01-01T00:00:00Z')`)
	mustExec(`INSERT INTO bitacora_entries (id, task_id, bitacora_id, xp_awarded, impact_score, created_at)
		VALUES ('e1', 't1', 'bi1', 25, 50, '2025-01-01T00:00:00Z')`)

	_, err = database.Exec(`INSERT INTO bitacora_entries (id, task_id, bitacora_id, xp_awarded, impact_score, created_at)
		VALUES ('e2', 't1', 'bi1', 25, 50, '2025-01-01T00:00:00Z')`)
	assert.Error(t, err, "a second entry for the same task must violate the unique constraint")
}
