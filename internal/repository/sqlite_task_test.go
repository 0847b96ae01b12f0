package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tablero-app/bitacora/internal/domain"
	"github.com/tablero-app/bitacora/internal/testutil"
)

func taskTestSetup(t *testing.T) (*SQLiteTaskRepo, string) {
	t.Helper()
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	boardRepo := NewSQLiteBoardRepo(database)
	taskRepo := NewSQLiteTaskRepo(database)

	board := testutil.NewTestBoard("Tablero")
	require.NoError(t, boardRepo.Create(ctx, board))

	return taskRepo, board.ID
}

func TestTaskRepo_CreateAndGetByID(t *testing.T) {
	repo, boardID := taskTestSetup(t)
	ctx := context.Background()

	task := testutil.NewTestTask(boardID, "Entregar reporte",
		testutil.WithDifficulty(4),
		testutil.WithCategory("administrativo"),
		testutil.WithEconomicValue(1500),
	)
	require.NoError(t, repo.Create(ctx, task))

	fetched, err := repo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "Entregar reporte", fetched.Title)
	assert.Equal(t, 4, fetched.Difficulty)
	assert.Equal(t, domain.TaskPending, fetched.Status)
	require.NotNil(t, fetched.EconomicValue)
	assert.Equal(t, 1500.0, *fetched.EconomicValue)
	assert.False(t, fetched.EvaluatedByAI)
	assert.Nil(t, fetched.CompletedAt)
}

func TestTaskRepo_GetByID_NotFound(t *testing.T) {
	repo, _ := taskTestSetup(t)

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTaskRepo_Update_PersistsCompletionWriteBack(t *testing.T) {
	repo, boardID := taskTestSetup(t)
	ctx := context.Background()

	task := testutil.NewTestTask(boardID, "Cierre de sprint")
	require.NoError(t, repo.Create(ctx, task))

	now := time.Now().UTC().Truncate(time.Second)
	require.True(t, task.Complete(now))
	task.ApplyAssessment(domain.ImpactHigh, 80, 120, now)
	require.NoError(t, repo.Update(ctx, task))

	fetched, err := repo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskCompleted, fetched.Status)
	assert.Equal(t, domain.ImpactHigh, fetched.ImpactLevel)
	assert.Equal(t, 80, fetched.ImpactScore)
	assert.Equal(t, 120, fetched.XPValue)
	assert.True(t, fetched.EvaluatedByAI)
	require.NotNil(t, fetched.CompletedAt)
	assert.Equal(t, now, fetched.CompletedAt.UTC())
}

func TestTaskRepo_ListByBoard(t *testing.T) {
	repo, boardID := taskTestSetup(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestTask(boardID, "Uno")))
	require.NoError(t, repo.Create(ctx, testutil.NewTestTask(boardID, "Dos")))

	tasks, err := repo.ListByBoard(ctx, boardID)
	require.NoError(t, err)
	assert.Len(t, tasks, 2)
}

func TestTaskRepo_Delete(t *testing.T) {
	repo, boardID := taskTestSetup(t)
	ctx := context.Background()

	task := testutil.NewTestTask(boardID, "Temporal")
	require.NoError(t, repo.Create(ctx, task))
	require.NoError(t, repo.Delete(ctx, task.ID))

	_, err := repo.GetByID(ctx, task.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
