package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tablero-app/bitacora/internal/domain"
	"github.com/tablero-app/bitacora/internal/repository"
	"github.com/tablero-app/bitacora/internal/testutil"
)

func TestSessionLog_InheritsBoardBitacora(t *testing.T) {
	env := newTestEnv(t)
	bitacora, board := env.seedLinkedBoard(t)
	ctx := context.Background()

	session := testutil.NewTestSession(board.ID, testutil.WithTimes("14:00", "15:30"), testutil.WithTasksCompleted(1))
	session.BitacoraID = nil
	require.NoError(t, env.sessionSvc.Log(ctx, session))

	require.NotNil(t, session.BitacoraID)
	assert.Equal(t, bitacora.ID, *session.BitacoraID)
	assert.Equal(t, 90, session.DurationMin)

	avatar, err := env.avatars.GetByBitacora(ctx, bitacora.ID)
	require.NoError(t, err)
	// floor(1.5h) + 1 task * 10 + 1 session * 5
	assert.Equal(t, 16, avatar.Experience)
}

func TestSessionLog_OvernightWraparound(t *testing.T) {
	env := newTestEnv(t)
	board := env.seedBoard(t)

	session := testutil.NewTestSession(board.ID, testutil.WithTimes("23:30", "01:00"))
	require.NoError(t, env.sessionSvc.Log(context.Background(), session))

	assert.Equal(t, 90, session.DurationMin)
}

func TestSessionLog_RejectsZeroDuration(t *testing.T) {
	env := newTestEnv(t)
	board := env.seedBoard(t)

	session := testutil.NewTestSession(board.ID, testutil.WithTimes("10:00", "10:00"))
	err := env.sessionSvc.Log(context.Background(), session)

	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "duration", vErr.Field)
}

func TestSessionLog_UnknownBoard(t *testing.T) {
	env := newTestEnv(t)

	session := testutil.NewTestSession("missing")
	err := env.sessionSvc.Log(context.Background(), session)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestSessionUpdate_RecomputesAvatar(t *testing.T) {
	env := newTestEnv(t)
	bitacora, board := env.seedLinkedBoard(t)
	ctx := context.Background()

	session := testutil.NewTestSession(board.ID, testutil.WithTimes("09:00", "10:00"))
	require.NoError(t, env.sessionSvc.Log(ctx, session))

	end, _ := domain.ParseTimeOfDay("12:00")
	session.EndTime = end
	require.NoError(t, env.sessionSvc.Update(ctx, session))

	avatar, err := env.avatars.GetByBitacora(ctx, bitacora.ID)
	require.NoError(t, err)
	// floor(3h) + 1 session * 5
	assert.Equal(t, 8, avatar.Experience)
	assert.InDelta(t, 3.0, avatar.TotalHours, 1e-9)
}

func TestSessionDelete_RecomputesAvatar(t *testing.T) {
	env := newTestEnv(t)
	bitacora, board := env.seedLinkedBoard(t)
	ctx := context.Background()

	session := testutil.NewTestSession(board.ID, testutil.WithTimes("09:00", "11:00"))
	require.NoError(t, env.sessionSvc.Log(ctx, session))
	require.NoError(t, env.sessionSvc.Delete(ctx, session.ID))

	avatar, err := env.avatars.GetByBitacora(ctx, bitacora.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, avatar.Experience)
	assert.Equal(t, 0, avatar.TotalSessions)
	assert.Equal(t, 1, avatar.Level)
}

func TestSessionLog_BoardWithoutBitacoraSkipsRecompute(t *testing.T) {
	env := newTestEnv(t)
	board := env.seedBoard(t)
	ctx := context.Background()

	session := testutil.NewTestSession(board.ID)
	require.NoError(t, env.sessionSvc.Log(ctx, session))

	assert.Nil(t, session.BitacoraID)
	sessions, err := env.sessions.ListByBoard(ctx, board.ID)
	require.NoError(t, err)
	assert.Len(t, sessions, 1)
}
