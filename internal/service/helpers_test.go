package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tablero-app/bitacora/internal/domain"
	"github.com/tablero-app/bitacora/internal/evaluator"
	"github.com/tablero-app/bitacora/internal/progression"
	"github.com/tablero-app/bitacora/internal/repository"
	"github.com/tablero-app/bitacora/internal/testutil"
)

// stubEvaluator returns a fixed assessment and counts invocations.
type stubEvaluator struct {
	assessment evaluator.Assessment
	calls      int
}

func (e *stubEvaluator) Evaluate(_ context.Context, _ evaluator.TaskContext) evaluator.Assessment {
	e.calls++
	return e.assessment
}

func neutralStub() *stubEvaluator {
	return &stubEvaluator{assessment: evaluator.Assessment{
		Level:     domain.ImpactMedium,
		Score:     60,
		XP:        25,
		Reasoning: "stubbed verdict",
	}}
}

// testEnv wires every service over one in-memory database.
type testEnv struct {
	db        *sql.DB
	bitacoras repository.BitacoraRepo
	boards    repository.BoardRepo
	tasks     repository.TaskRepo
	sessions  repository.SessionRepo
	entries   repository.EntryRepo
	avatars   repository.AvatarRepo

	eval *stubEvaluator

	avatarSvc  AvatarService
	sessionSvc SessionService
	taskSvc    TaskService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	database := testutil.NewTestDB(t)

	env := &testEnv{
		db:        database,
		bitacoras: repository.NewSQLiteBitacoraRepo(database),
		boards:    repository.NewSQLiteBoardRepo(database),
		tasks:     repository.NewSQLiteTaskRepo(database),
		sessions:  repository.NewSQLiteSessionRepo(database),
		entries:   repository.NewSQLiteEntryRepo(database),
		avatars:   repository.NewSQLiteAvatarRepo(database),
		eval:      neutralStub(),
	}
	env.avatarSvc = NewAvatarService(env.avatars, testutil.NewTestUoW(database), progression.DefaultRankTable())
	env.sessionSvc = NewSessionService(env.sessions, env.boards, env.avatarSvc)
	env.taskSvc = NewTaskService(env.tasks, env.boards, env.entries, env.sessions, env.eval, env.avatarSvc)
	return env
}

// seedLinkedBoard creates a bitácora and a board linked to it.
func (env *testEnv) seedLinkedBoard(t *testing.T) (*domain.Bitacora, *domain.Board) {
	t.Helper()
	ctx := context.Background()

	bitacora := testutil.NewTestBitacora("Camino del héroe")
	require.NoError(t, env.bitacoras.Create(ctx, bitacora))

	board := testutil.NewTestBoard("Sprint", testutil.WithBitacora(bitacora.ID))
	require.NoError(t, env.boards.Create(ctx, board))
	return bitacora, board
}

// seedBoard creates a board with no bitácora link.
func (env *testEnv) seedBoard(t *testing.T) *domain.Board {
	t.Helper()
	board := testutil.NewTestBoard("Suelto")
	require.NoError(t, env.boards.Create(context.Background(), board))
	return board
}
