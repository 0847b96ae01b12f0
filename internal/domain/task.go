package domain

import "time"

// Task is a unit of board work. The Impact* fields are written back
// exactly once, on the first pending→completed transition, by the
// completion pipeline; they are never recomputed afterwards.
type Task struct {
	ID            string
	BoardID       string
	Title         string
	Description   string
	Category      string
	Difficulty    int // 1..5
	EconomicValue *float64
	Status        TaskStatus

	// Evaluator write-back, set once on first completion.
	ImpactLevel   ImpactLevel
	ImpactScore   int
	XPValue       int
	EvaluatedByAI bool

	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate checks invariants before a write.
func (t *Task) Validate() error {
	if t.Title == "" {
		return Validationf("title", "task title is required")
	}
	if t.Difficulty < 1 || t.Difficulty > 5 {
		return Validationf("difficulty", "difficulty must be between 1 and 5, got %d", t.Difficulty)
	}
	if t.Category != "" && !ValidTaskCategories[t.Category] {
		return Validationf("category", "unknown category %q", t.Category)
	}
	return nil
}

// Complete transitions the task into the completed status. It reports
// whether the transition actually happened: completing an already
// completed task is a no-op, which keeps the downstream entry creation
// idempotent per task.
func (t *Task) Complete(now time.Time) bool {
	if t.Status == TaskCompleted {
		return false
	}
	t.Status = TaskCompleted
	t.CompletedAt = &now
	t.UpdatedAt = now
	return true
}

// ApplyAssessment records the evaluator's verdict on the task.
func (t *Task) ApplyAssessment(level ImpactLevel, score, xp int, now time.Time) {
	t.ImpactLevel = level
	t.ImpactScore = score
	t.XPValue = xp
	t.EvaluatedByAI = true
	t.UpdatedAt = now
}
