package domain

import "time"

// Avatar is the derived progression snapshot for one bitácora. Every
// field is reproducible by re-running the aggregator over the
// bitácora's ledger; the record is only ever replaced wholesale, never
// incremented in place.
type Avatar struct {
	ID            string
	BitacoraID    string
	Level         int
	Experience    int
	TotalHours    float64
	TotalTasks    int
	TotalSessions int
	RankName      string
	RankTier      int
	StyleKey      string
	ImageRef      *string
	UpdatedAt     time.Time
}
