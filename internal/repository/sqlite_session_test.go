package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tablero-app/bitacora/internal/domain"
	"github.com/tablero-app/bitacora/internal/testutil"
)

// sessionTestSetup creates the bitácora/board scaffolding session tests need.
func sessionTestSetup(t *testing.T) (*SQLiteSessionRepo, string, string) {
	t.Helper()
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	bitRepo := NewSQLiteBitacoraRepo(database)
	boardRepo := NewSQLiteBoardRepo(database)
	sessRepo := NewSQLiteSessionRepo(database)

	bit := testutil.NewTestBitacora("Progreso")
	require.NoError(t, bitRepo.Create(ctx, bit))

	board := testutil.NewTestBoard("Sprint", testutil.WithBitacora(bit.ID))
	require.NoError(t, boardRepo.Create(ctx, board))

	return sessRepo, board.ID, bit.ID
}

func TestSessionRepo_CreateAndGetByID(t *testing.T) {
	repo, boardID, bitID := sessionTestSetup(t)
	ctx := context.Background()

	sess := testutil.NewTestSession(boardID,
		testutil.WithSessionBitacora(bitID),
		testutil.WithTimes("09:15", "11:00"),
		testutil.WithNote("Buena sesion"),
		testutil.WithWorkType("desarrollo"),
	)
	require.NoError(t, repo.Create(ctx, sess))

	fetched, err := repo.GetByID(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, sess.ID, fetched.ID)
	assert.Equal(t, boardID, fetched.BoardID)
	require.NotNil(t, fetched.BitacoraID)
	assert.Equal(t, bitID, *fetched.BitacoraID)
	assert.Equal(t, 105, fetched.DurationMin)
	assert.Equal(t, "09:15", fetched.StartTime.String())
	assert.Equal(t, "11:00", fetched.EndTime.String())
	assert.Equal(t, "Buena sesion", fetched.Note)
	assert.Equal(t, "desarrollo", fetched.WorkType)
}

func TestSessionRepo_GetByID_NotFound(t *testing.T) {
	repo, _, _ := sessionTestSetup(t)

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSessionRepo_ListByBitacora(t *testing.T) {
	repo, boardID, bitID := sessionTestSetup(t)
	ctx := context.Background()

	linked := testutil.NewTestSession(boardID, testutil.WithSessionBitacora(bitID))
	require.NoError(t, repo.Create(ctx, linked))

	// Sessions on a plain board do not belong to any bitácora ledger.
	unlinked := testutil.NewTestSession(boardID)
	require.NoError(t, repo.Create(ctx, unlinked))

	sessions, err := repo.ListByBitacora(ctx, bitID)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, linked.ID, sessions[0].ID)

	all, err := repo.ListByBoard(ctx, boardID)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestSessionRepo_Update(t *testing.T) {
	repo, boardID, _ := sessionTestSetup(t)
	ctx := context.Background()

	sess := testutil.NewTestSession(boardID, testutil.WithTimes("09:00", "10:00"))
	require.NoError(t, repo.Create(ctx, sess))

	var err error
	sess.EndTime, err = domain.ParseTimeOfDay("12:30")
	require.NoError(t, err)
	require.NoError(t, sess.ComputeDuration())
	require.NoError(t, repo.Update(ctx, sess))

	fetched, err := repo.GetByID(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, 210, fetched.DurationMin)
}

func TestSessionRepo_Delete(t *testing.T) {
	repo, boardID, _ := sessionTestSetup(t)
	ctx := context.Background()

	sess := testutil.NewTestSession(boardID)
	require.NoError(t, repo.Create(ctx, sess))
	require.NoError(t, repo.Delete(ctx, sess.ID))

	_, err := repo.GetByID(ctx, sess.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
