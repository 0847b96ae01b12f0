package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tablero-app/bitacora/internal/domain"
	"github.com/tablero-app/bitacora/internal/evaluator"
	"github.com/tablero-app/bitacora/internal/progression"
	"github.com/tablero-app/bitacora/internal/repository"
	"github.com/tablero-app/bitacora/internal/service"
	"github.com/tablero-app/bitacora/internal/testutil"
)

type cliEvaluator struct{}

func (cliEvaluator) Evaluate(context.Context, evaluator.TaskContext) evaluator.Assessment {
	return evaluator.Assessment{Level: domain.ImpactMedium, Score: 50, XP: 20, Reasoning: "cli test"}
}

func newTestApp(t *testing.T) (*App, repository.SessionRepo) {
	t.Helper()
	database := testutil.NewTestDB(t)

	bitacoras := repository.NewSQLiteBitacoraRepo(database)
	boards := repository.NewSQLiteBoardRepo(database)
	tasks := repository.NewSQLiteTaskRepo(database)
	sessions := repository.NewSQLiteSessionRepo(database)
	entries := repository.NewSQLiteEntryRepo(database)
	avatars := repository.NewSQLiteAvatarRepo(database)

	avatarSvc := service.NewAvatarService(avatars, testutil.NewTestUoW(database), progression.DefaultRankTable())
	app := &App{
		Bitacoras: service.NewBitacoraService(bitacoras),
		Boards:    service.NewBoardService(boards, bitacoras),
		Tasks:     service.NewTaskService(tasks, boards, entries, sessions, cliEvaluator{}, avatarSvc),
		Sessions:  service.NewSessionService(sessions, boards, avatarSvc),
		Avatars:   avatarSvc,
		Ranks:     progression.DefaultRankTable(),
	}
	return app, sessions
}

func execute(t *testing.T, app *App, args ...string) error {
	t.Helper()
	root := NewRootCmd(app)
	root.SetArgs(args)
	return root.Execute()
}

func TestCLI_BoardAndTaskFlow(t *testing.T) {
	app, _ := newTestApp(t)
	ctx := context.Background()

	require.NoError(t, execute(t, app, "track", "add", "--name", "Progreso"))
	require.NoError(t, execute(t, app, "board", "add", "--name", "Sprint", "--track", "Progreso"))

	boards, err := app.Boards.List(ctx)
	require.NoError(t, err)
	require.Len(t, boards, 1)
	require.NotNil(t, boards[0].BitacoraID)

	require.NoError(t, execute(t, app, "task", "add", "--board", "Sprint", "--title", "Preparar demo", "--difficulty", "2"))

	tasks, err := app.Tasks.ListByBoard(ctx, boards[0].ID)
	require.NoError(t, err)
	require.Len(t, tasks, 1)

	require.NoError(t, execute(t, app, "task", "complete", tasks[0].ID, "--note", "salió bien"))

	completed, err := app.Tasks.GetByID(ctx, tasks[0].ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskCompleted, completed.Status)
	assert.True(t, completed.EvaluatedByAI)

	avatar, err := app.Avatars.GetByBitacora(ctx, *boards[0].BitacoraID)
	require.NoError(t, err)
	// 30 min synthesized session + 20 XP entry
	assert.Equal(t, 25, avatar.Experience)
}

func TestCLI_SessionLogWithFlags(t *testing.T) {
	app, sessions := newTestApp(t)
	ctx := context.Background()

	require.NoError(t, execute(t, app, "board", "add", "--name", "Suelto"))
	boards, err := app.Boards.List(ctx)
	require.NoError(t, err)

	require.NoError(t, execute(t, app, "session", "log",
		"--board", "Suelto", "--start", "09:00", "--end", "10:30", "--tasks-done", "1"))

	logged, err := sessions.ListByBoard(ctx, boards[0].ID)
	require.NoError(t, err)
	require.Len(t, logged, 1)
	assert.Equal(t, 90, logged[0].DurationMin)
	assert.Equal(t, 1, logged[0].TasksCompleted)
}

func TestCLI_SessionLogNonInteractiveNeedsTimes(t *testing.T) {
	app, _ := newTestApp(t)

	err := execute(t, app, "session", "log", "--board", "whatever")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-interactive")
}

func TestResolveBoardID_PrefixAndAmbiguity(t *testing.T) {
	app, _ := newTestApp(t)
	ctx := context.Background()

	require.NoError(t, execute(t, app, "board", "add", "--name", "Alpha"))
	require.NoError(t, execute(t, app, "board", "add", "--name", "Beta"))
	boards, err := app.Boards.List(ctx)
	require.NoError(t, err)
	byName := map[string]string{}
	for _, b := range boards {
		byName[b.Name] = b.ID
	}

	id, err := resolveBoardID(ctx, app, byName["Alpha"][:8])
	require.NoError(t, err)
	assert.Equal(t, byName["Alpha"], id)

	_, err = resolveBoardID(ctx, app, "definitely-missing")
	assert.Error(t, err)

	id, err = resolveBoardID(ctx, app, "beta")
	require.NoError(t, err)
	assert.Equal(t, byName["Beta"], id)
}
