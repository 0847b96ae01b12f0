package progression

import (
	"math"

	"github.com/tablero-app/bitacora/internal/domain"
)

const (
	xpPerTask     = 10
	xpPerSession  = 5
	levelSpan     = 100
	minutesInHour = 60.0
)

// Ledger is the full activity history of one bitácora: every linked
// work session plus every completion entry ever written for it.
type Ledger struct {
	Sessions []domain.WorkSession
	Entries  []domain.BitacoraEntry
}

// State is the aggregate the avatar stores. It carries no identity;
// the caller stamps ID, bitácora, and timestamp when persisting.
type State struct {
	Level         int
	Experience    int
	TotalHours    float64
	TotalTasks    int
	TotalSessions int
	RankName      string
	RankTier      int
	StyleKey      string
	ImageRef      string
}

// Recompute folds a ledger into a progression state. It is a pure
// function of its inputs: the same ledger and table always yield the
// same state, and a ledger that only grows never lowers experience.
func Recompute(ledger Ledger, table RankTable) State {
	var totalMin int
	var sessionTasks int
	for _, s := range ledger.Sessions {
		totalMin += s.DurationMin
		sessionTasks += s.TasksCompleted
	}

	var entryXP int
	for _, e := range ledger.Entries {
		entryXP += e.XPAwarded
	}

	totalHours := float64(totalMin) / minutesInHour
	experience := int(math.Floor(totalHours)) +
		sessionTasks*xpPerTask +
		len(ledger.Sessions)*xpPerSession +
		entryXP

	band, tier := table.Resolve(experience)

	return State{
		Level:         experience/levelSpan + 1,
		Experience:    experience,
		TotalHours:    totalHours,
		TotalTasks:    sessionTasks + len(ledger.Entries),
		TotalSessions: len(ledger.Sessions),
		RankName:      band.Name,
		RankTier:      tier,
		StyleKey:      band.StyleKey,
		ImageRef:      band.ImageRef,
	}
}
