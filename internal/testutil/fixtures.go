package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/tablero-app/bitacora/internal/domain"
)

// Bitacora options

func NewTestBitacora(name string) *domain.Bitacora {
	now := time.Now().UTC()
	return &domain.Bitacora{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Board options

type BoardOption func(*domain.Board)

func WithBitacora(id string) BoardOption {
	return func(b *domain.Board) {
		b.BitacoraID = &id
	}
}

func NewTestBoard(name string, opts ...BoardOption) *domain.Board {
	now := time.Now().UTC()
	b := &domain.Board{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Task options

type TaskOption func(*domain.Task)

func WithDifficulty(d int) TaskOption {
	return func(t *domain.Task) {
		t.Difficulty = d
	}
}

func WithCategory(c string) TaskOption {
	return func(t *domain.Task) {
		t.Category = c
	}
}

func WithEconomicValue(v float64) TaskOption {
	return func(t *domain.Task) {
		t.EconomicValue = &v
	}
}

func WithTaskStatus(s domain.TaskStatus) TaskOption {
	return func(t *domain.Task) {
		t.Status = s
	}
}

func NewTestTask(boardID, title string, opts ...TaskOption) *domain.Task {
	now := time.Now().UTC()
	task := &domain.Task{
		ID:         uuid.New().String(),
		BoardID:    boardID,
		Title:      title,
		Difficulty: 3,
		Status:     domain.TaskPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	for _, opt := range opts {
		opt(task)
	}
	return task
}

// WorkSession options

type SessionOption func(*domain.WorkSession)

func WithTimes(start, end string) SessionOption {
	return func(s *domain.WorkSession) {
		s.StartTime, _ = domain.ParseTimeOfDay(start)
		s.EndTime, _ = domain.ParseTimeOfDay(end)
	}
}

func WithTasksCompleted(n int) SessionOption {
	return func(s *domain.WorkSession) {
		s.TasksCompleted = n
	}
}

func WithSessionBitacora(id string) SessionOption {
	return func(s *domain.WorkSession) {
		s.BitacoraID = &id
	}
}

func WithNote(note string) SessionOption {
	return func(s *domain.WorkSession) {
		s.Note = note
	}
}

func WithWorkType(wt string) SessionOption {
	return func(s *domain.WorkSession) {
		s.WorkType = wt
	}
}

// NewTestSession builds a 09:00-10:00 session on the given board.
// Duration is computed from the final start/end pair.
func NewTestSession(boardID string, opts ...SessionOption) *domain.WorkSession {
	now := time.Now().UTC()
	start, _ := domain.ParseTimeOfDay("09:00")
	end, _ := domain.ParseTimeOfDay("10:00")
	s := &domain.WorkSession{
		ID:        uuid.New().String(),
		BoardID:   boardID,
		Date:      time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
		StartTime: start,
		EndTime:   end,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.DurationMin = domain.DurationMinutes(s.StartTime, s.EndTime)
	return s
}

// NewTestEntry builds a scored entry for the given task and bitácora.
func NewTestEntry(taskID, bitacoraID string, xp int) *domain.BitacoraEntry {
	return &domain.BitacoraEntry{
		ID:          uuid.New().String(),
		TaskID:      taskID,
		BitacoraID:  bitacoraID,
		XPAwarded:   xp,
		ImpactScore: 50,
		Reasoning:   "test entry",
		CreatedAt:   time.Now().UTC(),
	}
}
