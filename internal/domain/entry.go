package domain

import "time"

// BitacoraEntry records a completed task's scored contribution to a
// bitácora. Entries are created only on the pending→completed
// transition, at most one per task, and are immutable once written.
type BitacoraEntry struct {
	ID            string
	TaskID        string
	BitacoraID    string
	XPAwarded     int
	ImpactScore   int // 0..100
	EconomicValue *float64
	Reasoning     string
	CreatedAt     time.Time
}

func (e *BitacoraEntry) Validate() error {
	if e.TaskID == "" {
		return Validationf("task_id", "entry requires a task")
	}
	if e.BitacoraID == "" {
		return Validationf("bitacora_id", "entry requires a bitacora")
	}
	if e.XPAwarded < 0 {
		return Validationf("xp_awarded", "awarded XP cannot be negative")
	}
	if e.ImpactScore < 0 || e.ImpactScore > 100 {
		return Validationf("impact_score", "impact score must be within [0,100], got %d", e.ImpactScore)
	}
	return nil
}
