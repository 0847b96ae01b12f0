package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tablero-app/bitacora/internal/domain"
	"github.com/tablero-app/bitacora/internal/evaluator"
	"github.com/tablero-app/bitacora/internal/repository"
)

// completionSessionMin is the duration of the work session synthesized
// for every first-time task completion.
const completionSessionMin = 30

type taskService struct {
	tasks     repository.TaskRepo
	boards    repository.BoardRepo
	entries   repository.EntryRepo
	sessions  repository.SessionRepo
	evaluator evaluator.Evaluator
	avatars   AvatarService
	observer  StepObserver
	now       func() time.Time
}

func NewTaskService(
	tasks repository.TaskRepo,
	boards repository.BoardRepo,
	entries repository.EntryRepo,
	sessions repository.SessionRepo,
	eval evaluator.Evaluator,
	avatars AvatarService,
	observers ...StepObserver,
) TaskService {
	return &taskService{
		tasks:     tasks,
		boards:    boards,
		entries:   entries,
		sessions:  sessions,
		evaluator: eval,
		avatars:   avatars,
		observer:  stepObserverOrNoop(observers),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *taskService) Create(ctx context.Context, t *domain.Task) error {
	if err := t.Validate(); err != nil {
		return err
	}
	if _, err := s.boards.GetByID(ctx, t.BoardID); err != nil {
		return err
	}
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if t.Status == "" {
		t.Status = domain.TaskPending
	}
	now := s.now()
	t.CreatedAt = now
	t.UpdatedAt = now
	return s.tasks.Create(ctx, t)
}

func (s *taskService) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	return s.tasks.GetByID(ctx, id)
}

func (s *taskService) ListByBoard(ctx context.Context, boardID string) ([]*domain.Task, error) {
	return s.tasks.ListByBoard(ctx, boardID)
}

func (s *taskService) Update(ctx context.Context, t *domain.Task) error {
	if err := t.Validate(); err != nil {
		return err
	}
	t.UpdatedAt = s.now()
	return s.tasks.Update(ctx, t)
}

func (s *taskService) Delete(ctx context.Context, id string) error {
	return s.tasks.Delete(ctx, id)
}

// Complete commits the pending→completed transition, then runs the
// completion pipeline: impact evaluation with one-time write-back,
// entry creation, session synthesis, avatar recompute. Each pipeline
// step is bounded on its own; once the transition is committed no
// failure downstream reverts it. Re-completing a completed task skips
// the pipeline entirely.
func (s *taskService) Complete(ctx context.Context, id string, resultNote string) (*domain.Task, error) {
	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := s.now()
	if !task.Complete(now) {
		return task, nil
	}
	if err := s.tasks.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("committing completion: %w", err)
	}

	assessment := s.evaluateStep(ctx, task, resultNote, now)

	board, err := s.boards.GetByID(ctx, task.BoardID)
	if err != nil {
		s.observer.ObserveStep(ctx, StepEvent{
			Pipeline: "task_complete", Step: "resolve_board", EntityID: task.ID, Err: err,
		})
		return task, nil
	}

	if board.BitacoraID != nil {
		s.entryStep(ctx, task, *board.BitacoraID, assessment, now)
	}
	s.sessionStep(ctx, task, board, now)
	if board.BitacoraID != nil {
		recomputeBestEffort(ctx, s.avatars, s.observer, "task_complete", *board.BitacoraID)
	}

	return task, nil
}

// evaluateStep scores the task and writes the verdict back once. The
// evaluator itself never fails; only the write-back can, and a failed
// write-back still leaves a usable assessment for the entry step.
func (s *taskService) evaluateStep(ctx context.Context, task *domain.Task, resultNote string, now time.Time) evaluator.Assessment {
	start := time.Now()
	assessment := s.evaluator.Evaluate(ctx, evaluator.TaskContext{
		Title:         task.Title,
		Description:   task.Description,
		Category:      task.Category,
		Difficulty:    task.Difficulty,
		EconomicValue: task.EconomicValue,
		ResultNote:    resultNote,
	})

	task.ApplyAssessment(assessment.Level, assessment.Score, assessment.XP, now)
	err := s.tasks.Update(ctx, task)
	s.observer.ObserveStep(ctx, StepEvent{
		Pipeline: "task_complete",
		Step:     "evaluate_impact",
		EntityID: task.ID,
		Duration: time.Since(start),
		Err:      err,
	})
	return assessment
}

// entryStep writes the immutable completion entry. The repository's
// uniqueness constraint on the task backs up the in-process guard, so
// a concurrent double completion still yields one entry.
func (s *taskService) entryStep(ctx context.Context, task *domain.Task, bitacoraID string, assessment evaluator.Assessment, now time.Time) {
	start := time.Now()
	err := func() error {
		exists, err := s.entries.ExistsForTask(ctx, task.ID)
		if err != nil {
			return err
		}
		if exists {
			return nil
		}
		entry := &domain.BitacoraEntry{
			ID:            uuid.New().String(),
			TaskID:        task.ID,
			BitacoraID:    bitacoraID,
			XPAwarded:     assessment.XP,
			ImpactScore:   assessment.Score,
			EconomicValue: task.EconomicValue,
			Reasoning:     assessment.Reasoning,
			CreatedAt:     now,
		}
		if err := entry.Validate(); err != nil {
			return err
		}
		return s.entries.Create(ctx, entry)
	}()
	s.observer.ObserveStep(ctx, StepEvent{
		Pipeline: "task_complete",
		Step:     "create_entry",
		EntityID: task.ID,
		Duration: time.Since(start),
		Err:      err,
	})
}

// sessionStep synthesizes the fixed-length session that represents the
// completion itself. TasksCompleted stays zero so the task is counted
// through its entry, not twice.
func (s *taskService) sessionStep(ctx context.Context, task *domain.Task, board *domain.Board, now time.Time) {
	start := time.Now()
	end := domain.TimeOfDayFromClock(now)
	session := &domain.WorkSession{
		ID:          uuid.New().String(),
		BoardID:     board.ID,
		BitacoraID:  board.BitacoraID,
		Date:        now.Truncate(24 * time.Hour),
		StartTime:   end.MinusMinutes(completionSessionMin),
		EndTime:     end,
		DurationMin: completionSessionMin,
		Note:        task.Title,
		WorkType:    "tarea",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	err := s.sessions.Create(ctx, session)
	s.observer.ObserveStep(ctx, StepEvent{
		Pipeline: "task_complete",
		Step:     "synthesize_session",
		EntityID: task.ID,
		Duration: time.Since(start),
		Err:      err,
	})
}
