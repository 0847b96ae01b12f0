package domain

import "time"

// WorkSession is one logged block of activity on a board. Sessions are
// either submitted manually or synthesized by the task completion
// pipeline. DurationMin is always derived from (StartTime, EndTime) at
// write time and never stored independently of them.
type WorkSession struct {
	ID             string
	BoardID        string
	BitacoraID     *string
	Date           time.Time // calendar date, midnight UTC
	StartTime      TimeOfDay
	EndTime        TimeOfDay
	DurationMin    int
	TasksCompleted int
	Note           string
	WorkType       string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ComputeDuration derives DurationMin from the start/end pair,
// rejecting a zero-length session.
func (s *WorkSession) ComputeDuration() error {
	d := DurationMinutes(s.StartTime, s.EndTime)
	if d <= 0 {
		return Validationf("duration", "session duration must be positive, start %s equals end %s", s.StartTime, s.EndTime)
	}
	s.DurationMin = d
	return nil
}

// Validate checks invariants before a write. ComputeDuration must have
// run first so DurationMin reflects the current times.
func (s *WorkSession) Validate() error {
	if s.BoardID == "" {
		return Validationf("board_id", "session requires a board")
	}
	if !s.StartTime.Valid() || !s.EndTime.Valid() {
		return Validationf("time", "start and end must be valid times of day")
	}
	if s.DurationMin <= 0 {
		return Validationf("duration", "session duration must be positive")
	}
	if s.TasksCompleted < 0 {
		return Validationf("tasks_completed", "tasks completed cannot be negative")
	}
	if s.WorkType != "" && !ValidWorkTypes[s.WorkType] {
		return Validationf("work_type", "unknown work type %q", s.WorkType)
	}
	return nil
}
