package progression

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tablero-app/bitacora/internal/domain"
)

func session(durationMin, tasksCompleted int) domain.WorkSession {
	return domain.WorkSession{DurationMin: durationMin, TasksCompleted: tasksCompleted}
}

func entry(xp int) domain.BitacoraEntry {
	return domain.BitacoraEntry{XPAwarded: xp}
}

func TestRecompute_EmptyLedger(t *testing.T) {
	state := Recompute(Ledger{}, DefaultRankTable())

	assert.Equal(t, 0, state.Experience)
	assert.Equal(t, 1, state.Level)
	assert.Equal(t, 0.0, state.TotalHours)
	assert.Equal(t, 0, state.TotalTasks)
	assert.Equal(t, 0, state.TotalSessions)
	assert.Equal(t, "Novato", state.RankName)
	assert.Equal(t, 1, state.RankTier)
}

func TestRecompute_SessionsOnly(t *testing.T) {
	ledger := Ledger{
		Sessions: []domain.WorkSession{
			session(90, 2),
			session(30, 0),
		},
	}

	state := Recompute(ledger, DefaultRankTable())

	// 2 hours + 2 tasks * 10 + 2 sessions * 5
	assert.Equal(t, 32, state.Experience)
	assert.Equal(t, 1, state.Level)
	assert.Equal(t, 2.0, state.TotalHours)
	assert.Equal(t, 2, state.TotalTasks)
	assert.Equal(t, 2, state.TotalSessions)
}

func TestRecompute_EntriesAddXPAndTasks(t *testing.T) {
	ledger := Ledger{
		Sessions: []domain.WorkSession{session(60, 0)},
		Entries:  []domain.BitacoraEntry{entry(25), entry(40)},
	}

	state := Recompute(ledger, DefaultRankTable())

	// 1 hour + 1 session * 5 + 25 + 40
	assert.Equal(t, 71, state.Experience)
	assert.Equal(t, 2, state.TotalTasks)
	assert.Equal(t, 1, state.TotalSessions)
}

func TestRecompute_FractionalHoursNotRoundedPerSession(t *testing.T) {
	// Three 25-minute sessions are 75 minutes, 1.25 hours. Flooring
	// happens once over the total, not per session.
	ledger := Ledger{
		Sessions: []domain.WorkSession{session(25, 0), session(25, 0), session(25, 0)},
	}

	state := Recompute(ledger, DefaultRankTable())

	assert.InDelta(t, 1.25, state.TotalHours, 1e-9)
	// floor(1.25) + 3 sessions * 5
	assert.Equal(t, 16, state.Experience)
}

func TestRecompute_LevelLaw(t *testing.T) {
	cases := []struct {
		name  string
		xp    int
		level int
	}{
		{"zero", 0, 1},
		{"just below boundary", 99, 1},
		{"boundary", 100, 2},
		{"mid ladder", 250, 3},
		{"high", 999, 10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			state := Recompute(Ledger{Entries: []domain.BitacoraEntry{entry(tc.xp)}}, DefaultRankTable())
			assert.Equal(t, tc.xp, state.Experience)
			assert.Equal(t, tc.level, state.Level)
		})
	}
}

func TestRecompute_Idempotent(t *testing.T) {
	ledger := Ledger{
		Sessions: []domain.WorkSession{session(45, 1), session(125, 3)},
		Entries:  []domain.BitacoraEntry{entry(80)},
	}

	first := Recompute(ledger, DefaultRankTable())
	second := Recompute(ledger, DefaultRankTable())

	assert.Equal(t, first, second)
}

func TestRecompute_MonotoneUnderGrowth(t *testing.T) {
	ledger := Ledger{Sessions: []domain.WorkSession{session(60, 1)}}
	before := Recompute(ledger, DefaultRankTable())

	ledger.Sessions = append(ledger.Sessions, session(30, 0))
	ledger.Entries = append(ledger.Entries, entry(15))
	after := Recompute(ledger, DefaultRankTable())

	assert.GreaterOrEqual(t, after.Experience, before.Experience)
	assert.GreaterOrEqual(t, after.Level, before.Level)
	assert.GreaterOrEqual(t, after.TotalHours, before.TotalHours)
}

func TestRecompute_TopBandMaxTier(t *testing.T) {
	state := Recompute(Ledger{Entries: []domain.BitacoraEntry{entry(10000)}}, DefaultRankTable())

	assert.Equal(t, "Leyenda Máxima", state.RankName)
	assert.Equal(t, 3, state.RankTier)
	assert.Equal(t, "leyenda-maxima", state.StyleKey)
}
